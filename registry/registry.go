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

// Package registry implements the node registry: the process-wide mapping
// from (namespace, type) to flatten/unflatten pairs that the traversal
// engine consults when classifying a value as node or leaf.
package registry

import (
	"fmt"
	"reflect"
	"sync"

	"dirpx.dev/treex/apis"
)

// New constructs an empty NodeRegistry. The standard container adapters are
// seeded by the builder, not here, so minimal registries stay possible.
func New(cfg apis.Config) apis.NodeRegistry {
	_ = cfg // no registry-level knobs today; kept for builder symmetry
	return &nodes{}
}

// key is a registration key: the bare type for global entries, the
// (namespace, type) pair otherwise. Namespace is a comparable value type,
// and the global sentinel compares unequal to every string-built namespace,
// so the two key shapes cannot collide.
type key struct {
	ns  apis.Namespace
	typ reflect.Type
}

// nodes is the NodeRegistry implementation.
//
// Registration takes mu for the entire mutation: engine table first, then
// the capability tag, then the shadow table, released unconditionally.
// Lock-free readers may observe the engine entry before its shadow mirror
// lands, but never the reverse: a reader that finds a shadow entry is
// guaranteed the engine already serves it. Lookups are lock-free sync.Map
// loads; writes are rare, serialized, and nothing is ever removed, so
// readers cannot race a deletion.
type nodes struct {
	// mu serializes every mutation end to end.
	mu sync.Mutex
	// engine is the table the traversal engine reads on its hot path.
	engine sync.Map // key -> apis.NodeEntry
	// capable tags types registered as nodes under any namespace.
	capable sync.Map // reflect.Type -> struct{}
	// shadow mirrors engine for introspection snapshots.
	shadow sync.Map // key -> apis.NodeRegistration
	// count tracks the number of distinct registration keys; guarded by mu.
	count int
}

// Ensure nodes implements apis.NodeRegistry.
var _ apis.NodeRegistry = (*nodes)(nil)

// Register associates t with the flatten/unflatten pair under ns.
// Re-registering the same (namespace, type) silently overwrites the prior
// entry; overwriting is the supported way to replace a default adapter.
func (r *nodes) Register(t reflect.Type, flatten apis.FlattenFunc, unflatten apis.UnflattenFunc, ns apis.Namespace) error {
	// Validate inputs early, before taking the lock.
	if t == nil {
		return apis.ErrNilType
	}
	if t.Kind() == reflect.Interface {
		return fmt.Errorf("%w: %s", apis.ErrInterfaceType, t)
	}
	if flatten == nil || unflatten == nil {
		return fmt.Errorf("%w: %s", apis.ErrNilNodeFunc, t)
	}
	if !ns.IsGlobal() && ns.Name() == "" {
		return apis.ErrEmptyNamespace
	}

	k := key{ns: ns, typ: t}
	entry := apis.NodeEntry{Flatten: flatten, Unflatten: unflatten}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, existed := r.engine.Load(k)
	// Engine table before shadow table: a reader that sees the shadow entry
	// is guaranteed the engine already serves it.
	r.engine.Store(k, entry)
	r.capable.Store(t, struct{}{})
	r.shadow.Store(k, apis.NodeRegistration{Type: t, Namespace: ns, Entry: entry})
	if !existed {
		r.count++
	}
	return nil
}

// Lookup returns the entry for t. The global entry wins unconditionally;
// the namespaced entry is consulted only when a non-global, non-empty
// namespace was supplied. A miss means "treat the value as a leaf".
func (r *nodes) Lookup(t reflect.Type, ns apis.Namespace) (apis.NodeEntry, bool) {
	if t == nil {
		return apis.NodeEntry{}, false
	}
	if v, ok := r.engine.Load(key{ns: apis.Global, typ: t}); ok {
		return v.(apis.NodeEntry), true
	}
	if ns.IsGlobal() || ns.Name() == "" {
		return apis.NodeEntry{}, false
	}
	if v, ok := r.engine.Load(key{ns: ns, typ: t}); ok {
		return v.(apis.NodeEntry), true
	}
	return apis.NodeEntry{}, false
}

// IsNode reports whether t was registered under any namespace. This is the
// capability fast path for traversal dispatch.
func (r *nodes) IsNode(t reflect.Type) bool {
	if t == nil {
		return false
	}
	_, ok := r.capable.Load(t)
	return ok
}

// Entries returns a snapshot for diagnostics/docs (order is unspecified).
func (r *nodes) Entries() []apis.NodeRegistration {
	entries := make([]apis.NodeRegistration, 0, r.Count())
	r.shadow.Range(func(_, value any) bool {
		entries = append(entries, value.(apis.NodeRegistration))
		return true
	})
	return entries
}

// Count returns the number of registered (namespace, type) pairs.
func (r *nodes) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}
