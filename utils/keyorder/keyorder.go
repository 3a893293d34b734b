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

// Package keyorder produces a deterministic order for mapping keys that may
// not be mutually comparable.
//
// Three tiers are tried in order; the first applicable one wins, and the
// final tier is unconditional, so ordering is total and never panics:
//
//  1. Direct ordering, when every key belongs to a single orderable class
//     (numeric kinds, strings, or booleans).
//  2. Composite ordering by (fully-qualified type name, key): keys are
//     grouped by their declaring type first, then ordered within each
//     group. This handles mixes such as integer and string keys.
//  3. Insertion order, when an unorderable group holds two or more keys
//     (e.g. same-typed custom struct keys).
//
// The same input always yields the same output: sorting is stable and the
// input slice is never mutated. Items ranged out of a Go map have no
// meaningful insertion order; SortedMapItems substitutes a stable
// rendering order before applying the tiers.
package keyorder

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Item is a single key/value pair taken from a mapping.
type Item struct {
	// Key is the mapping key.
	Key any
	// Value is the mapped value.
	Value any
}

// class partitions keys by how they can be ordered.
type class int

const (
	classNumeric class = iota
	classString
	classBool
	classOther // not orderable without the type-name tier
)

// SortedItems returns the items in deterministic key order.
func SortedItems(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	if len(out) < 2 {
		return out
	}

	if cls, ok := commonClass(out); ok {
		sort.SliceStable(out, func(i, j int) bool {
			return compareScalar(cls, out[i].Key, out[j].Key) < 0
		})
		return out
	}

	if groupsOrderable(out) {
		sort.SliceStable(out, func(i, j int) bool {
			return compareComposite(out[i].Key, out[j].Key) < 0
		})
		return out
	}

	// Insertion order.
	return out
}

// SortedMapItems returns items taken from an unordered Go map in
// deterministic key order. Map iteration is randomized, so such items carry
// no insertion order for the final tier to preserve; they are first placed
// in key-rendering order, then the usual tiers apply. The rendering order
// is stable across calls within a process.
func SortedMapItems(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return renderKey(out[i].Key) < renderKey(out[j].Key)
	})
	return SortedItems(out)
}

// SortedKeys returns the keys in deterministic order. It applies the same
// tiers as SortedItems.
func SortedKeys(keys []any) []any {
	items := make([]Item, len(keys))
	for i, k := range keys {
		items[i] = Item{Key: k}
	}
	items = SortedItems(items)
	out := make([]any, len(items))
	for i, it := range items {
		out[i] = it.Key
	}
	return out
}

// commonClass reports the single orderable class shared by every key, if any.
func commonClass(items []Item) (class, bool) {
	cls := classify(items[0].Key)
	if cls == classOther {
		return 0, false
	}
	for _, it := range items[1:] {
		if classify(it.Key) != cls {
			return 0, false
		}
	}
	return cls, true
}

// groupsOrderable reports whether composite ordering is total for the keys:
// every type-name group containing two or more keys must be orderable.
func groupsOrderable(items []Item) bool {
	seen := make(map[string]int, len(items))
	for _, it := range items {
		name := typeName(it.Key)
		seen[name]++
		if seen[name] > 1 && classify(it.Key) == classOther {
			return false
		}
	}
	return true
}

// compareComposite orders by (fully-qualified type name, key). Keys sharing
// a type name share a class, so the scalar comparison is well-defined.
func compareComposite(a, b any) int {
	an, bn := typeName(a), typeName(b)
	if c := strings.Compare(an, bn); c != 0 {
		return c
	}
	return compareScalar(classify(a), a, b)
}

// classify maps a key to its orderable class.
func classify(k any) class {
	v := reflect.ValueOf(k)
	if !v.IsValid() {
		return classOther
	}
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return classNumeric
	case reflect.String:
		return classString
	case reflect.Bool:
		return classBool
	default:
		return classOther
	}
}

// compareScalar compares two keys of the same orderable class.
// classOther keys compare equal, preserving their insertion order under
// stable sorting.
func compareScalar(cls class, a, b any) int {
	switch cls {
	case classNumeric:
		return compareNumeric(reflect.ValueOf(a), reflect.ValueOf(b))
	case classString:
		return strings.Compare(reflect.ValueOf(a).String(), reflect.ValueOf(b).String())
	case classBool:
		ab, bb := reflect.ValueOf(a).Bool(), reflect.ValueOf(b).Bool()
		switch {
		case ab == bb:
			return 0
		case !ab:
			return -1
		default:
			return 1
		}
	default:
		return 0
	}
}

// compareNumeric orders across integer, unsigned, and float widths.
func compareNumeric(a, b reflect.Value) int {
	af, bf := toFloat(a), toFloat(b)
	switch {
	case af < bf:
		return -1
	case af > bf:
		return 1
	default:
		return 0
	}
}

func toFloat(v reflect.Value) float64 {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(v.Uint())
	default:
		return v.Float()
	}
}

// renderKey gives every key a stable textual stand-in for pre-ordering.
func renderKey(k any) string { return fmt.Sprintf("%#v", k) }

// typeName returns the fully-qualified name of the key's type, e.g.
// "dirpx.dev/treex/containers.Tuple" or "int". Untyped nil keys share the
// "<nil>" group.
func typeName(k any) string {
	t := reflect.TypeOf(k)
	if t == nil {
		return "<nil>"
	}
	if p := t.PkgPath(); p != "" {
		return p + "." + t.Name()
	}
	return t.String()
}
