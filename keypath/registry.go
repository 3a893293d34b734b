/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package keypath

import (
	"reflect"

	"dirpx.dev/treex/apis"
)

// NewRegistry returns an empty KeyPathRegistry.
//
// The registry performs no locking. Handlers are registered once at process
// startup; concurrent mutation is the caller's responsibility. The node
// registry, in contrast, serializes its registration path.
func NewRegistry() apis.KeyPathRegistry {
	return &registry{handlers: make(map[reflect.Type]apis.KeyPathHandler)}
}

// registry is a plain map-backed KeyPathRegistry.
type registry struct {
	handlers map[reflect.Type]apis.KeyPathHandler
}

// Ensure registry implements apis.KeyPathRegistry.
var _ apis.KeyPathRegistry = (*registry)(nil)

// Register associates t with h, overwriting any prior handler.
// Nil types and nil handlers are ignored.
func (r *registry) Register(t reflect.Type, h apis.KeyPathHandler) apis.KeyPathHandler {
	if t == nil || h == nil {
		return h
	}
	r.handlers[t] = h
	return h
}

// Lookup returns the handler for t if present.
func (r *registry) Lookup(t reflect.Type) (apis.KeyPathHandler, bool) {
	if t == nil {
		return nil, false
	}
	h, ok := r.handlers[t]
	return h, ok
}

// Handlers returns a snapshot copy of all associations.
func (r *registry) Handlers() map[reflect.Type]apis.KeyPathHandler {
	out := make(map[reflect.Type]apis.KeyPathHandler, len(r.handlers))
	for t, h := range r.handlers {
		out[t] = h
	}
	return out
}

// FlatEntries synthesizes the fallback entries for a node with n children:
// one FlatIndexEntry per child. Callers use it when Lookup misses.
func FlatEntries(n int) []apis.KeyPathEntry {
	out := make([]apis.KeyPathEntry, n)
	for i := range out {
		out[i] = FlatIndexEntry{Index: i}
	}
	return out
}
