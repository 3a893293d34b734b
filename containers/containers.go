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

// Package containers defines the standard container kinds that participate
// in tree decomposition, together with their preregistered flatten/unflatten
// adapters and key-path handlers.
//
// Go does not ship these kinds as distinct builtin types, so they are
// defined here: an absence marker (NoneType), a fixed ordered sequence
// (Tuple), an unordered mapping (Dict), an insertion-ordered mapping
// (OrderedDict), a default-valued mapping (DefaultDict), and a bounded
// double-ended sequence (Deque). The native []any and map[string]any shapes
// are handled as the variable-length sequence and a pragmatic extra mapping
// shape, respectively.
package containers

import (
	"dirpx.dev/treex/utils/keyorder"
)

// NoneType is the absence marker kind. It flattens to zero children and
// reconstructs to the marker regardless of input.
type NoneType struct{}

// None is the canonical absence marker.
var None NoneType

// Tuple is a fixed-length ordered sequence. It is a distinct kind from the
// variable-length []any: reconstruction preserves the kind.
type Tuple []any

// Dict is an unordered mapping with arbitrary comparable keys. Flattening
// orders its entries with the keyorder tiers, so decomposition is
// deterministic even for mixed or unorderable key types.
type Dict map[any]any

// Items returns the entries in deterministic key order. The map itself has
// no insertion order, so unorderable key groups fall back to the stable
// rendering order rather than iteration order.
func (d Dict) Items() []keyorder.Item {
	items := make([]keyorder.Item, 0, len(d))
	for k, v := range d {
		items = append(items, keyorder.Item{Key: k, Value: v})
	}
	return keyorder.SortedMapItems(items)
}

// OrderedDict is an insertion-ordered mapping. Iteration, flattening, and
// key paths all follow insertion order; overwriting a key keeps its
// original position.
type OrderedDict struct {
	keys   []any
	values map[any]any
}

// NewOrderedDict returns an empty OrderedDict.
func NewOrderedDict() *OrderedDict {
	return &OrderedDict{values: make(map[any]any)}
}

// OrderedDictOf returns an OrderedDict holding the given items in order.
func OrderedDictOf(items ...keyorder.Item) *OrderedDict {
	d := NewOrderedDict()
	for _, it := range items {
		d.Set(it.Key, it.Value)
	}
	return d
}

// Set associates key with value. A new key is appended; an existing key
// keeps its insertion position.
func (d *OrderedDict) Set(key, value any) {
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
}

// Get returns the value for key.
func (d *OrderedDict) Get(key any) (any, bool) {
	v, ok := d.values[key]
	return v, ok
}

// Delete removes key and reports whether it was present.
func (d *OrderedDict) Delete(key any) bool {
	if _, ok := d.values[key]; !ok {
		return false
	}
	delete(d.values, key)
	for i, k := range d.keys {
		if k == key {
			d.keys = append(d.keys[:i], d.keys[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of entries.
func (d *OrderedDict) Len() int { return len(d.keys) }

// Keys returns the keys in insertion order.
func (d *OrderedDict) Keys() []any {
	out := make([]any, len(d.keys))
	copy(out, d.keys)
	return out
}

// Values returns the values in insertion order.
func (d *OrderedDict) Values() []any {
	out := make([]any, 0, len(d.keys))
	for _, k := range d.keys {
		out = append(out, d.values[k])
	}
	return out
}

// Items returns the entries in insertion order.
func (d *OrderedDict) Items() []keyorder.Item {
	out := make([]keyorder.Item, 0, len(d.keys))
	for _, k := range d.keys {
		out = append(out, keyorder.Item{Key: k, Value: d.values[k]})
	}
	return out
}

// DefaultDict is an unordered mapping that materializes a default value,
// produced by its factory, for missing keys on Get.
type DefaultDict struct {
	Dict
	factory func() any
}

// NewDefaultDict returns an empty DefaultDict with the given factory.
// A nil factory makes Get behave like a plain Dict lookup returning nil.
func NewDefaultDict(factory func() any) *DefaultDict {
	return &DefaultDict{Dict: make(Dict), factory: factory}
}

// Factory returns the default-value factory.
func (d *DefaultDict) Factory() func() any { return d.factory }

// Get returns the value for key, materializing and storing the factory
// default when the key is missing.
func (d *DefaultDict) Get(key any) any {
	if v, ok := d.Dict[key]; ok {
		return v
	}
	if d.factory == nil {
		return nil
	}
	v := d.factory()
	d.Dict[key] = v
	return v
}

// Unbounded is the Deque capacity meaning "no bound".
const Unbounded = -1

// Deque is a double-ended sequence with an optional capacity bound. When
// full, a push evicts from the opposite end.
type Deque struct {
	items  []any
	maxLen int
}

// NewDeque returns a Deque over the given items. A maxLen of Unbounded
// means no capacity bound; otherwise items beyond the bound are dropped
// from the front, keeping the most recently appended ones.
func NewDeque(items []any, maxLen int) *Deque {
	d := &Deque{maxLen: maxLen}
	if maxLen < 0 {
		d.maxLen = Unbounded
	}
	for _, v := range items {
		d.PushBack(v)
	}
	return d
}

// PushBack appends v at the back, evicting the front element when full.
func (d *Deque) PushBack(v any) {
	if d.maxLen == 0 {
		return
	}
	if d.maxLen != Unbounded && len(d.items) == d.maxLen {
		d.items = d.items[1:]
	}
	d.items = append(d.items, v)
}

// PushFront prepends v at the front, evicting the back element when full.
func (d *Deque) PushFront(v any) {
	if d.maxLen == 0 {
		return
	}
	if d.maxLen != Unbounded && len(d.items) == d.maxLen {
		d.items = d.items[:len(d.items)-1]
	}
	d.items = append([]any{v}, d.items...)
}

// PopBack removes and returns the back element.
func (d *Deque) PopBack() (any, bool) {
	if len(d.items) == 0 {
		return nil, false
	}
	v := d.items[len(d.items)-1]
	d.items = d.items[:len(d.items)-1]
	return v, true
}

// PopFront removes and returns the front element.
func (d *Deque) PopFront() (any, bool) {
	if len(d.items) == 0 {
		return nil, false
	}
	v := d.items[0]
	d.items = d.items[1:]
	return v, true
}

// Len returns the number of elements.
func (d *Deque) Len() int { return len(d.items) }

// MaxLen returns the capacity bound and whether one is set.
func (d *Deque) MaxLen() (int, bool) {
	if d.maxLen == Unbounded {
		return 0, false
	}
	return d.maxLen, true
}

// At returns the element at position i from the front.
func (d *Deque) At(i int) any { return d.items[i] }

// Items returns a copy of the elements, front to back.
func (d *Deque) Items() []any {
	out := make([]any, len(d.items))
	copy(out, d.items)
	return out
}
