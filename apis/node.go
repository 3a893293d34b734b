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

// FlattenFunc decomposes a node value into its immediate children.
//
// It returns the children in a deterministic order, an auxiliary metadata
// value to be stored by the traversal engine and handed back to the matching
// UnflattenFunc (nil when the node carries no metadata), and an optional
// per-child key sequence. When entries is nil the engine synthesizes flat
// indices (0..len(children)-1) itself.
//
// The metadata value should be usable as part of a structural identity check
// by the traversal engine: comparable, or carrying its own equality.
type FlattenFunc func(node any) (children []any, metadata any, entries []any)

// UnflattenFunc reassembles a node value from the metadata produced by the
// matching FlattenFunc and the (possibly transformed) children.
//
// Reconstruction must yield a value the traversal engine treats as
// structurally equivalent to the original; exact value equality is the
// registrant's responsibility.
type UnflattenFunc func(metadata any, children []any) any

// NodeEntry is the immutable flatten/unflatten pair stored for a registered
// node type. A zero NodeEntry is never returned for a successful lookup.
type NodeEntry struct {
	// Flatten decomposes an instance of the registered type.
	Flatten FlattenFunc
	// Unflatten reassembles an instance of the registered type.
	Unflatten UnflattenFunc
}

// NodeRegistration is a single (namespace, type) -> entry association in a
// NodeRegistry snapshot.
type NodeRegistration struct {
	// Type is the registered reflect.Type.
	Type reflect.Type
	// Namespace is the scope the entry was registered under.
	Namespace Namespace
	// Entry is the flatten/unflatten pair.
	Entry NodeEntry
}

// NodeRegistry stores flatten/unflatten pairs keyed by exact type identity,
// optionally scoped by namespace.
//
// Registration is fully serialized by the implementation; lookups are
// lock-free reads. Entries persist for the process lifetime: there is no
// removal operation, only overwriting re-registration.
type NodeRegistry interface {
	// Register associates t with the flatten/unflatten pair under ns.
	// Re-registering the same (namespace, type) silently overwrites the
	// prior entry. Registration errors signal programmer error and are
	// never retried.
	Register(t reflect.Type, flatten FlattenFunc, unflatten UnflattenFunc, ns Namespace) error
	// Lookup returns the entry for t. The global entry wins; a namespaced
	// entry is consulted only when a non-global namespace is supplied.
	// A miss is not an error: the caller treats the value as a leaf.
	Lookup(t reflect.Type, ns Namespace) (NodeEntry, bool)
	// IsNode reports whether t is registered as a node under any namespace.
	// It is the capability fast path for traversal dispatch.
	IsNode(t reflect.Type) bool
	// Entries returns a snapshot for diagnostics/docs (order is unspecified).
	Entries() []NodeRegistration
	// Count returns the number of registered (namespace, type) pairs.
	Count() int
}

// TreeNode is implemented by self-describing node types registered through
// the type-oriented front-end. TreeFlatten must report the instance's
// children in the same order every call.
type TreeNode interface {
	// TreeFlatten decomposes the receiver; see FlattenFunc for the contract.
	TreeFlatten() (children []any, metadata any, entries []any)
}

// TreeUnflattener is the reconstruction entry point paired with TreeNode.
// It is invoked on a zero value of the registered type, so implementations
// must not touch receiver state.
type TreeUnflattener interface {
	// TreeUnflatten reassembles an instance; see UnflattenFunc for the contract.
	TreeUnflatten(metadata any, children []any) any
}
