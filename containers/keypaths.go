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
	"dirpx.dev/treex/keypath"
	"dirpx.dev/treex/utils/keyorder"
)

// RegisterDefaultKeyPaths installs the built-in key-path handlers into reg.
// Each handler reports entries in the exact order the matching adapter
// produces children: positions for sequences, keyorder-sorted keys for
// unordered mappings, insertion order for OrderedDict.
func RegisterDefaultKeyPaths(reg apis.KeyPathRegistry) {
	reg.Register(reflect.TypeOf(Tuple(nil)), positionalKeyPaths(func(node any) int {
		return len(node.(Tuple))
	}))
	reg.Register(reflect.TypeOf([]any(nil)), positionalKeyPaths(func(node any) int {
		return len(node.([]any))
	}))
	reg.Register(reflect.TypeOf((*Deque)(nil)), positionalKeyPaths(func(node any) int {
		return node.(*Deque).Len()
	}))
	reg.Register(reflect.TypeOf(Dict(nil)), func(node any) []apis.KeyPathEntry {
		return keyedEntries(node.(Dict).Items())
	})
	reg.Register(reflect.TypeOf((*DefaultDict)(nil)), func(node any) []apis.KeyPathEntry {
		return keyedEntries(node.(*DefaultDict).Dict.Items())
	})
	reg.Register(reflect.TypeOf((*OrderedDict)(nil)), func(node any) []apis.KeyPathEntry {
		return keyedEntries(node.(*OrderedDict).Items())
	})
	reg.Register(reflect.TypeOf(map[string]any(nil)), func(node any) []apis.KeyPathEntry {
		_, _, keys := flattenStringMap(node)
		out := make([]apis.KeyPathEntry, len(keys))
		for i, k := range keys {
			out[i] = keypath.IndexEntry{Key: k}
		}
		return out
	})
}

func positionalKeyPaths(length func(node any) int) apis.KeyPathHandler {
	return func(node any) []apis.KeyPathEntry {
		n := length(node)
		out := make([]apis.KeyPathEntry, n)
		for i := range out {
			out[i] = keypath.IndexEntry{Key: i}
		}
		return out
	}
}

func keyedEntries(items []keyorder.Item) []apis.KeyPathEntry {
	out := make([]apis.KeyPathEntry, len(items))
	for i, it := range items {
		out[i] = keypath.IndexEntry{Key: it.Key}
	}
	return out
}
