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

// Package keypath renders navigation paths from a tree root to individual
// leaves, and hosts the handler registry that maps node types to per-child
// path entries.
package keypath

import (
	"fmt"
	"strconv"
	"strings"

	"dirpx.dev/treex/apis"
)

// IndexEntry is the path entry for keyed and positional lookups in
// sequences and mappings. It renders as `[key]`, with string keys quoted.
type IndexEntry struct {
	// Key is the position or mapping key.
	Key any
}

// PathString implements apis.KeyPathEntry.
func (e IndexEntry) PathString() string { return "[" + formatKey(e.Key) + "]" }

// AttributeEntry is the path entry for field-style access on record types.
// It renders as `.name`.
type AttributeEntry struct {
	// Name is the field name.
	Name string
}

// PathString implements apis.KeyPathEntry.
func (e AttributeEntry) PathString() string { return "." + e.Name }

// FlatIndexEntry is the fallback path entry synthesized for children of
// types without a registered handler. It renders as `[<flat index k>]`.
type FlatIndexEntry struct {
	// Index is the child's flat position.
	Index int
}

// PathString implements apis.KeyPathEntry.
func (e FlatIndexEntry) PathString() string {
	return "[<flat index " + strconv.Itoa(e.Index) + ">]"
}

// Ensure the variants implement apis.KeyPathEntry.
var (
	_ apis.KeyPathEntry = IndexEntry{}
	_ apis.KeyPathEntry = AttributeEntry{}
	_ apis.KeyPathEntry = FlatIndexEntry{}
)

// Path is an ordered sequence of entries describing navigation from the
// tree root to a specific node. The zero Path is the root. Paths are
// immutable; Append and Join return new values.
type Path struct {
	entries []apis.KeyPathEntry
}

// New returns a Path over the given entries.
func New(entries ...apis.KeyPathEntry) Path {
	if len(entries) == 0 {
		return Path{}
	}
	out := make([]apis.KeyPathEntry, len(entries))
	copy(out, entries)
	return Path{entries: out}
}

// Append returns the path extended by the given entries.
func (p Path) Append(entries ...apis.KeyPathEntry) Path {
	if len(entries) == 0 {
		return p
	}
	out := make([]apis.KeyPathEntry, 0, len(p.entries)+len(entries))
	out = append(out, p.entries...)
	out = append(out, entries...)
	return Path{entries: out}
}

// Join returns the concatenation of p and other.
func (p Path) Join(other Path) Path {
	return p.Append(other.entries...)
}

// Len returns the number of entries.
func (p Path) Len() int { return len(p.entries) }

// Entries returns a copy of the entries in order.
func (p Path) Entries() []apis.KeyPathEntry {
	out := make([]apis.KeyPathEntry, len(p.entries))
	copy(out, p.entries)
	return out
}

// Equal reports whether two paths hold equal entries in the same order.
func (p Path) Equal(other Path) bool {
	if len(p.entries) != len(other.entries) {
		return false
	}
	for i, e := range p.entries {
		if e != other.entries[i] {
			return false
		}
	}
	return true
}

// PathString renders the path with the default root label. It also lets a
// Path stand in anywhere a single apis.KeyPathEntry is accepted.
func (p Path) PathString() string {
	return Render(p, apis.Config{RootLabel: DefaultRootLabel})
}

// DefaultRootLabel is rendered for the empty path when no configuration is
// supplied. It mirrors config.DefaultRootLabel without importing it.
const DefaultRootLabel = " tree root"

// Render renders the path under cfg: the empty path yields cfg.RootLabel,
// otherwise the concatenated entry renderings.
func Render(p Path, cfg apis.Config) string {
	if len(p.entries) == 0 {
		return cfg.RootLabel
	}
	var b strings.Builder
	for _, e := range p.entries {
		b.WriteString(e.PathString())
	}
	return b.String()
}

// formatKey quotes string keys and renders everything else with %v.
func formatKey(key any) string {
	if s, ok := key.(string); ok {
		return strconv.Quote(s)
	}
	return fmt.Sprintf("%v", key)
}
