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

package apis

import "reflect"

// KeyPathEntry is one navigation step from a node to one of its children.
// Concrete variants (index, attribute, flat-index) live in the keypath
// package; each renders distinctly.
type KeyPathEntry interface {
	// PathString renders the entry, e.g. `[0]`, `["y"]`, `.field`,
	// `[<flat index 3>]`.
	PathString() string
}

// KeyPathHandler reports the path entries for a node instance, one per
// child, in the exact order that type's own flatten produces children.
type KeyPathHandler func(node any) []KeyPathEntry

// KeyPathRegistry associates node types with key-path handlers. One handler
// per type; there is no namespace dimension, and re-registration overwrites.
//
// Unlike NodeRegistry, implementations perform no locking: handlers are
// expected to be registered once at startup, and concurrent mutation is the
// caller's responsibility.
type KeyPathRegistry interface {
	// Register associates t with h, overwriting any prior handler, and
	// returns h for chaining.
	Register(t reflect.Type, h KeyPathHandler) KeyPathHandler
	// Lookup returns the handler for t. On a miss the caller synthesizes
	// flat-index entries per child itself.
	Lookup(t reflect.Type) (KeyPathHandler, bool)
	// Handlers returns a snapshot copy of all associations.
	Handlers() map[reflect.Type]KeyPathHandler
}
