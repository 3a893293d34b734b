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

// Package treex provides a global, process-wide registry of tree node types
// for structural traversal.
//
// treex answers one question for a traversal engine: "is this value a node
// with children, or an opaque leaf?" Client code registers a type once, with
// a flatten function (node -> children + metadata) and an unflatten function
// (metadata + children -> node). The engine then queries the registry while
// walking arbitrary nested data. A type the registry has never heard of is a
// leaf; a miss is never an error.
//
// # Design
//
// The core of treex is a read-mostly global snapshot (state). The snapshot
// holds five things:
//
//   - Config: rendering and seeding rules (the root label used when
//     formatting an empty key path, whether the default container adapters
//     are preregistered, whether plain map[string]any is adapted).
//
//   - NodeRegistry: the process-wide mapping from Go types to their
//     flatten/unflatten entries, partitioned by namespace. The global
//     namespace is a distinct sentinel value, never equal to any string.
//     A global entry always wins over a namespaced one for the same type.
//     The registry can be written to at runtime (RegisterNode) and entries
//     persist for the process lifetime; re-registration overwrites.
//
//   - KeyPathRegistry: a second, independent mapping from Go types to
//     key-path handlers. A handler reports one path entry per child, in the
//     exact order that type's flatten produces children, so path-reporting
//     utilities can render human-readable leaf locations like
//     ".users[2]["name"]".
//
//   - Builder: a pluggable factory that knows how to construct NodeRegistry
//     and KeyPathRegistry instances for a given Config (and optional
//     extension data). The Builder is also allowed to reuse/migrate entries
//     from previous registry instances.
//
// All of these live inside a single immutable struct called state.
// The package holds an atomic pointer to the current state. Readers load
// that pointer, use it, and never mutate it. Writers build a brand-new
// state and atomically swap it in.
//
// This means treex lookups are lock-free on the hot path:
//
//	entry, ok := treex.LookupNode(reflect.TypeOf(v), ns)
//	isNode := treex.IsNode(reflect.TypeOf(v))
//
// and concurrent callers always see a consistent snapshot. Individual
// registrations against the current registries are serialized by the
// registries themselves, so concurrent RegisterNode calls are safe and
// lose nothing.
//
// # Registration conventions
//
// There are two explicitly named ways to register a node type:
//
//  1. Explicit functions with an explicit namespace:
//
//     treex.RegisterNode(reflect.TypeOf(Set{}), flatten, unflatten, apis.Global)
//     treex.InNamespace("mylib").MustRegister(reflect.TypeOf(Set{}), flatten, unflatten)
//
//  2. Method-carrying types, whose flatten/unflatten pair is derived from
//     apis.TreeNode and apis.TreeUnflattener implementations:
//
//     treex.RegisterNodeType(Set{}, apis.Global)
//     treex.InNamespace("mylib").RegisterType(Set{})
//
// Crossing the conventions is rejected: a string where a node value is
// expected fails with apis.ErrNamespaceAsValue, and feeding a namespace-first
// Registration back into RegisterNodeType fails with
// apis.ErrAmbiguousNamespace.
//
// # Defaults
//
// At process start the global registries are seeded with adapters for the
// standard containers (containers.NoneType, Tuple, Dict, OrderedDict,
// DefaultDict, Deque, plain slices and string maps) and with the
// partial.Partial callable wrapper, all in the global namespace, together
// with matching key-path handlers. Seeding is controlled by Config and can
// be disabled for hermetic registries built by hand.
//
// # Concurrency model
//
// Reads (LookupNode, IsNode, LookupKeyPaths, Nodes, KeyPaths, Config) are
// wait-free: they load the current *state atomically and never take locks.
// The registries returned by that state are themselves concurrency-safe.
//
// Writes fall in two classes. Registrations mutate the current registries
// in place under the registries' own locking and are immediately visible to
// readers. Reconfigurations (SetConfig, SetBuilder, SetExt, SetNodes,
// SetKeyPaths, SetAll) take a short build mutex, assemble a brand-new state
// struct, and publish it via an atomic pointer swap.
//
// # Pinning
//
// treex supports pinning a layer:
//
//   - SetNodes(reg) makes reg the process-wide node registry and pins it.
//     Further SetConfig calls will not rebuild the node layer until
//     UnpinNodes().
//
//   - SetKeyPaths(reg) pins the key-path layer likewise, until
//     UnpinKeyPaths().
//
// Pinning is for scenarios where one layer is hand-built and must not be
// reseeded, while the other layers keep following Config changes.
//
// # Usage pattern in a binary
//
// A typical client does:
//
//  1. Let treex init with the default builder/config; the standard
//     containers are already registered.
//
//  2. Register its own node types up front:
//
//     treex.MustRegisterNode(reflect.TypeOf(MyTree{}), flatten, unflatten, apis.Global)
//
//  3. During traversal, classify values with treex.IsNode and
//     treex.LookupNode, and render leaf locations with keypath.Path and
//     treex.FormatPath.
//
//  4. In tests, call treex.SetAll(...) to get deterministic snapshots and
//     to inject a mock Builder.
//
// # Scope
//
// treex is intentionally small. It owns registration, lookup, and path
// rendering. The traversal engine that walks values, calls flatten entries,
// and reassembles trees lives in higher layers.
package treex
