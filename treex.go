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

package treex

import (
	"errors"
	"reflect"
	"sync"
	"sync/atomic"

	"dirpx.dev/treex/apis"
	"dirpx.dev/treex/builder"
	"dirpx.dev/treex/config"
	"dirpx.dev/treex/keypath"
)

// init initializes the global state: default config, default builder, and
// registries preseeded with the standard container adapters, the Partial
// node, and the built-in key-path handlers.
func init() {
	s := &state{cfg: config.DefaultConfig()}
	b := builder.New()
	s.nodes = b.BuildNodes(s.cfg, nil, nil)
	s.paths = b.BuildKeyPaths(s.cfg, nil, nil)
	s.bld = b
	// Store the initial state atomically.
	st.Store(s)
}

var (
	// ErrNilNodes is returned when a builder returns a nil node registry.
	ErrNilNodes = errors.New("treex: builder returned nil node registry")
	// ErrNilKeyPaths is returned when a builder returns a nil key-path registry.
	ErrNilKeyPaths = errors.New("treex: builder returned nil key-path registry")
)

// LookupNode returns the flatten/unflatten entry for t, applying the
// global-over-namespaced precedence. A miss is not an error: the value is
// a leaf. This is the lookup the traversal engine uses while classifying.
func LookupNode(t reflect.Type, ns apis.Namespace) (apis.NodeEntry, bool) {
	return st.Load().nodes.Lookup(t, ns)
}

// IsNode reports whether t is registered as a node under any namespace.
// This is the capability fast path for traversal dispatch.
func IsNode(t reflect.Type) bool {
	return st.Load().nodes.IsNode(t)
}

// RegisterKeyPaths associates a key-path handler with t, overwriting any
// prior handler, and returns the handler for chaining. Handlers must report
// entries in the exact order t's flatten produces children.
func RegisterKeyPaths(t reflect.Type, h apis.KeyPathHandler) apis.KeyPathHandler {
	return st.Load().paths.Register(t, h)
}

// LookupKeyPaths returns the key-path handler for t if present.
func LookupKeyPaths(t reflect.Type) (apis.KeyPathHandler, bool) {
	return st.Load().paths.Lookup(t)
}

// PathEntries returns the path entries for node's children: the registered
// handler's output when one exists, otherwise one flat-index entry per
// child, numChildren in total.
func PathEntries(node any, numChildren int) []apis.KeyPathEntry {
	if h, ok := LookupKeyPaths(reflect.TypeOf(node)); ok {
		return h(node)
	}
	return keypath.FlatEntries(numChildren)
}

// FormatPath renders p under the current configuration: the empty path
// yields the configured root label.
func FormatPath(p keypath.Path) string {
	return keypath.Render(p, st.Load().cfg)
}

// SetAll explicitly sets all global state components.
//
// Nil arguments leave the corresponding component unchanged,
// except for ext which is always replaced.
//
// This is a convenience wrapper around the global state.
func SetAll(cfg *apis.Config, ext any, nodes apis.NodeRegistry, paths apis.KeyPathRegistry, bld apis.Builder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Configuration
	ncfg := old.cfg
	if cfg != nil {
		ncfg = *cfg
	}

	// Extension
	next := ext

	// Builder
	nbld := old.bld
	if bld != nil {
		nbld = bld
	}

	// Node registry
	nnodes := nodes
	npnodes := false
	if nnodes == nil {
		nnodes = nbld.BuildNodes(ncfg, old.nodes, next)
	} else {
		npnodes = true
	}

	// Key-path registry
	npaths := paths
	nppaths := false
	if npaths == nil {
		npaths = nbld.BuildKeyPaths(ncfg, old.paths, next)
	} else {
		nppaths = true
	}

	// Ensure non-nil registries.
	if nnodes == nil {
		panic(ErrNilNodes)
	}
	if npaths == nil {
		panic(ErrNilKeyPaths)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:    ncfg,
			ext:    next,
			nodes:  nnodes,
			paths:  npaths,
			bld:    nbld,
			pnodes: npnodes,
			ppaths: nppaths,
		},
	)
}

// Config returns the global configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global configuration to cfg.
// It rebuilds the unpinned registries using the new configuration.
// This is a convenience wrapper around the global state.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new registries based on the new cfg and old state.
	nnodes := old.nodes
	if !old.pnodes {
		nnodes = b.BuildNodes(cfg, old.nodes, old.ext)
	}
	npaths := old.paths
	if !old.ppaths {
		npaths = b.BuildKeyPaths(cfg, old.paths, old.ext)
	}

	// Ensure non-nil registries.
	if nnodes == nil {
		panic(ErrNilNodes)
	}
	if npaths == nil {
		panic(ErrNilKeyPaths)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:    cfg,
			ext:    old.ext,
			nodes:  nnodes,
			paths:  npaths,
			bld:    b,
			pnodes: old.pnodes,
			ppaths: old.ppaths,
		},
	)
}

// Nodes returns the global node registry.
func Nodes() apis.NodeRegistry {
	return st.Load().nodes
}

// SetNodes sets the global node registry to nodes and pins it.
// This is a convenience wrapper around the global state.
func SetNodes(nodes apis.NodeRegistry) {
	if nodes == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:    old.cfg,
			ext:    old.ext,
			nodes:  nodes,
			paths:  old.paths,
			bld:    old.bld,
			pnodes: true,
			ppaths: old.ppaths,
		},
	)
}

// KeyPaths returns the global key-path registry.
func KeyPaths() apis.KeyPathRegistry {
	return st.Load().paths
}

// SetKeyPaths sets the global key-path registry to paths and pins it.
// This is a convenience wrapper around the global state.
func SetKeyPaths(paths apis.KeyPathRegistry) {
	if paths == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:    old.cfg,
			ext:    old.ext,
			nodes:  old.nodes,
			paths:  paths,
			bld:    old.bld,
			pnodes: old.pnodes,
			ppaths: true,
		},
	)
}

// Builder returns the global builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder sets the global builder to b.
// This is a convenience wrapper around the global state.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Build new registries based on the new builder and old state.
	nnodes := old.nodes
	if !old.pnodes {
		nnodes = b.BuildNodes(old.cfg, old.nodes, old.ext)
	}
	npaths := old.paths
	if !old.ppaths {
		npaths = b.BuildKeyPaths(old.cfg, old.paths, old.ext)
	}

	// Ensure non-nil registries.
	if nnodes == nil {
		panic(ErrNilNodes)
	}
	if npaths == nil {
		panic(ErrNilKeyPaths)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:    old.cfg,
			ext:    old.ext,
			nodes:  nnodes,
			paths:  npaths,
			bld:    b,
			pnodes: old.pnodes,
			ppaths: old.ppaths,
		},
	)
}

// SetExt replaces extension config and rebuilds non-pinned layers via the builder.
func SetExt[T any](ext T) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new registries based on the new ext and old state.
	nnodes := old.nodes
	if !old.pnodes {
		nnodes = b.BuildNodes(old.cfg, old.nodes, ext)
	}
	npaths := old.paths
	if !old.ppaths {
		npaths = b.BuildKeyPaths(old.cfg, old.paths, ext)
	}

	// Ensure non-nil registries.
	if nnodes == nil {
		panic(ErrNilNodes)
	}
	if npaths == nil {
		panic(ErrNilKeyPaths)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:    old.cfg,
			ext:    ext,
			nodes:  nnodes,
			paths:  npaths,
			bld:    b,
			pnodes: old.pnodes,
			ppaths: old.ppaths,
		},
	)
}

// ExtAs returns the global extension config as type T.
func ExtAs[T any]() (T, bool) {
	ext, ok := st.Load().ext.(T)
	return ext, ok
}

// IsNodesPinned returns whether the global node registry is pinned (immutable).
func IsNodesPinned() bool {
	return st.Load().pnodes
}

// PinNodes makes the global node registry immutable.
func PinNodes() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:    old.cfg,
			ext:    old.ext,
			nodes:  old.nodes,
			paths:  old.paths,
			bld:    old.bld,
			pnodes: true,
			ppaths: old.ppaths,
		},
	)
}

// UnpinNodes makes the global node registry mutable again.
func UnpinNodes() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:    old.cfg,
			ext:    old.ext,
			nodes:  old.nodes,
			paths:  old.paths,
			bld:    old.bld,
			pnodes: false,
			ppaths: old.ppaths,
		},
	)
}

// IsKeyPathsPinned returns whether the global key-path registry is pinned (immutable).
func IsKeyPathsPinned() bool {
	return st.Load().ppaths
}

// PinKeyPaths makes the global key-path registry immutable.
func PinKeyPaths() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:    old.cfg,
			ext:    old.ext,
			nodes:  old.nodes,
			paths:  old.paths,
			bld:    old.bld,
			pnodes: old.pnodes,
			ppaths: true,
		},
	)
}

// UnpinKeyPaths makes the global key-path registry mutable again.
func UnpinKeyPaths() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:    old.cfg,
			ext:    old.ext,
			nodes:  old.nodes,
			paths:  old.paths,
			bld:    old.bld,
			pnodes: old.pnodes,
			ppaths: false,
		},
	)
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global treex state.
var st atomic.Pointer[state]

// state is the global treex state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate fields
// of a published state. Writers create a new state and swap it atomically.
type state struct {
	// cfg is the global configuration.
	cfg apis.Config
	// ext is the global extension configuration.
	ext any
	// nodes is the global node registry.
	nodes apis.NodeRegistry
	// paths is the global key-path registry.
	paths apis.KeyPathRegistry
	// bld is the global builder.
	bld apis.Builder
	// pnodes indicates whether the node registry is pinned (immutable).
	pnodes bool
	// ppaths indicates whether the key-path registry is pinned (immutable).
	ppaths bool
}
