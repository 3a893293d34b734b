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

package containers

import (
	"reflect"

	"dirpx.dev/treex/apis"
	"dirpx.dev/treex/utils/keyorder"
)

// DefaultDictMetadata is the auxiliary data stored for a flattened
// DefaultDict: the default-value factory plus the ordered key sequence.
type DefaultDictMetadata struct {
	// Factory is the default-value factory.
	Factory func() any
	// Keys holds the keys in the order the children were produced.
	Keys []any
}

// RegisterDefaults installs the standard container adapters into reg under
// the global namespace. The entries are overwritable per the registry's
// last-write-wins rule but not removable. nativeMaps additionally registers
// the native map[string]any shape.
func RegisterDefaults(reg apis.NodeRegistry, nativeMaps bool) error {
	type adapter struct {
		t         reflect.Type
		flatten   apis.FlattenFunc
		unflatten apis.UnflattenFunc
	}
	adapters := []adapter{
		{reflect.TypeOf(NoneType{}), flattenNone, unflattenNone},
		{reflect.TypeOf(Tuple(nil)), flattenTuple, unflattenTuple},
		{reflect.TypeOf([]any(nil)), flattenList, unflattenList},
		{reflect.TypeOf(Dict(nil)), flattenDict, unflattenDict},
		{reflect.TypeOf((*OrderedDict)(nil)), flattenOrderedDict, unflattenOrderedDict},
		{reflect.TypeOf((*DefaultDict)(nil)), flattenDefaultDict, unflattenDefaultDict},
		{reflect.TypeOf((*Deque)(nil)), flattenDeque, unflattenDeque},
	}
	if nativeMaps {
		adapters = append(adapters, adapter{reflect.TypeOf(map[string]any(nil)), flattenStringMap, unflattenStringMap})
	}
	for _, a := range adapters {
		if err := reg.Register(a.t, a.flatten, a.unflatten, apis.Global); err != nil {
			return err
		}
	}
	return nil
}

func flattenNone(any) ([]any, any, []any) { return nil, nil, nil }

func unflattenNone(any, []any) any { return None }

func flattenTuple(node any) ([]any, any, []any) {
	t := node.(Tuple)
	children := make([]any, len(t))
	copy(children, t)
	return children, nil, nil
}

func unflattenTuple(_ any, children []any) any {
	t := make(Tuple, len(children))
	copy(t, children)
	return t
}

func flattenList(node any) ([]any, any, []any) {
	l := node.([]any)
	children := make([]any, len(l))
	copy(children, l)
	return children, nil, nil
}

func unflattenList(_ any, children []any) any {
	l := make([]any, len(children))
	copy(l, children)
	return l
}

func flattenDict(node any) ([]any, any, []any) {
	items := node.(Dict).Items()
	children := make([]any, len(items))
	keys := make([]any, len(items))
	for i, it := range items {
		keys[i] = it.Key
		children[i] = it.Value
	}
	return children, keys, keys
}

func unflattenDict(metadata any, children []any) any {
	keys := metadata.([]any)
	d := make(Dict, len(keys))
	for i, k := range keys {
		d[k] = children[i]
	}
	return d
}

func flattenOrderedDict(node any) ([]any, any, []any) {
	d := node.(*OrderedDict)
	keys := d.Keys()
	return d.Values(), keys, keys
}

func unflattenOrderedDict(metadata any, children []any) any {
	keys := metadata.([]any)
	d := NewOrderedDict()
	for i, k := range keys {
		d.Set(k, children[i])
	}
	return d
}

func flattenDefaultDict(node any) ([]any, any, []any) {
	d := node.(*DefaultDict)
	children, keys, entries := flattenDict(d.Dict)
	return children, DefaultDictMetadata{Factory: d.factory, Keys: keys.([]any)}, entries
}

func unflattenDefaultDict(metadata any, children []any) any {
	md := metadata.(DefaultDictMetadata)
	d := NewDefaultDict(md.Factory)
	for i, k := range md.Keys {
		d.Dict[k] = children[i]
	}
	return d
}

func flattenDeque(node any) ([]any, any, []any) {
	d := node.(*Deque)
	if maxLen, ok := d.MaxLen(); ok {
		return d.Items(), maxLen, nil
	}
	return d.Items(), nil, nil
}

func unflattenDeque(metadata any, children []any) any {
	if maxLen, ok := metadata.(int); ok {
		return NewDeque(children, maxLen)
	}
	return NewDeque(children, Unbounded)
}

func flattenStringMap(node any) ([]any, any, []any) {
	m := node.(map[string]any)
	items := make([]keyorder.Item, 0, len(m))
	for k, v := range m {
		items = append(items, keyorder.Item{Key: k, Value: v})
	}
	items = keyorder.SortedMapItems(items)
	children := make([]any, len(items))
	keys := make([]any, len(items))
	for i, it := range items {
		keys[i] = it.Key
		children[i] = it.Value
	}
	return children, keys, keys
}

func unflattenStringMap(metadata any, children []any) any {
	keys := metadata.([]any)
	m := make(map[string]any, len(keys))
	for i, k := range keys {
		m[k.(string)] = children[i]
	}
	return m
}
