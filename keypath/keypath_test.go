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

package keypath_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	apis "dirpx.dev/treex/apis"
	"dirpx.dev/treex/keypath"
)

func TestEntryRendering(t *testing.T) {
	cases := []struct {
		entry apis.KeyPathEntry
		want  string
	}{
		{keypath.IndexEntry{Key: 2}, "[2]"},
		{keypath.IndexEntry{Key: "y"}, `["y"]`},
		{keypath.IndexEntry{Key: true}, "[true]"},
		{keypath.AttributeEntry{Name: "users"}, ".users"},
		{keypath.FlatIndexEntry{Index: 0}, "[<flat index 0>]"},
		{keypath.FlatIndexEntry{Index: 7}, "[<flat index 7>]"},
	}
	for _, tc := range cases {
		if got := tc.entry.PathString(); got != tc.want {
			t.Fatalf("PathString(%#v) = %q, want %q", tc.entry, got, tc.want)
		}
	}
}

func TestPath_BuildAndRender(t *testing.T) {
	p := keypath.New(
		keypath.AttributeEntry{Name: "users"},
		keypath.IndexEntry{Key: 2},
		keypath.IndexEntry{Key: "name"},
	)
	require.Equal(t, 3, p.Len())
	require.Equal(t, `.users[2]["name"]`, p.PathString())
}

func TestPath_RootLabel(t *testing.T) {
	var root keypath.Path
	require.Equal(t, " tree root", root.PathString())

	got := keypath.Render(root, apis.Config{RootLabel: "<r>"})
	require.Equal(t, "<r>", got)
}

func TestPath_AppendIsImmutable(t *testing.T) {
	base := keypath.New(keypath.AttributeEntry{Name: "a"})
	left := base.Append(keypath.IndexEntry{Key: 0})
	right := base.Append(keypath.IndexEntry{Key: 1})

	require.Equal(t, ".a", base.PathString())
	require.Equal(t, ".a[0]", left.PathString())
	require.Equal(t, ".a[1]", right.PathString())
}

func TestPath_JoinAndEqual(t *testing.T) {
	a := keypath.New(keypath.AttributeEntry{Name: "a"})
	b := keypath.New(keypath.IndexEntry{Key: 1}, keypath.IndexEntry{Key: "k"})

	joined := a.Join(b)
	require.Equal(t, `.a[1]["k"]`, joined.PathString())

	same := keypath.New(
		keypath.AttributeEntry{Name: "a"},
		keypath.IndexEntry{Key: 1},
		keypath.IndexEntry{Key: "k"},
	)
	require.True(t, joined.Equal(same))
	require.False(t, joined.Equal(a))
	require.True(t, keypath.Path{}.Equal(keypath.New()))
}

func TestPath_EntriesCopy(t *testing.T) {
	p := keypath.New(keypath.AttributeEntry{Name: "a"})
	entries := p.Entries()
	entries[0] = keypath.AttributeEntry{Name: "mutated"}
	require.Equal(t, ".a", p.PathString())
}

type nodeA struct{}
type nodeB struct{}

func TestRegistry_RegisterLookup(t *testing.T) {
	reg := keypath.NewRegistry()

	h := func(node any) []apis.KeyPathEntry {
		return []apis.KeyPathEntry{keypath.AttributeEntry{Name: "x"}}
	}
	got := reg.Register(reflect.TypeOf(nodeA{}), h)
	require.NotNil(t, got)

	found, ok := reg.Lookup(reflect.TypeOf(nodeA{}))
	require.True(t, ok)
	require.Equal(t, ".x", found(nodeA{})[0].PathString())

	_, ok = reg.Lookup(reflect.TypeOf(nodeB{}))
	require.False(t, ok)

	// Nil types and handlers are ignored.
	reg.Register(nil, h)
	reg.Register(reflect.TypeOf(nodeB{}), nil)
	_, ok = reg.Lookup(reflect.TypeOf(nodeB{}))
	require.False(t, ok)
}

func TestRegistry_OverwriteLastWins(t *testing.T) {
	reg := keypath.NewRegistry()
	typ := reflect.TypeOf(nodeA{})

	reg.Register(typ, func(any) []apis.KeyPathEntry {
		return []apis.KeyPathEntry{keypath.AttributeEntry{Name: "first"}}
	})
	reg.Register(typ, func(any) []apis.KeyPathEntry {
		return []apis.KeyPathEntry{keypath.AttributeEntry{Name: "second"}}
	})

	h, ok := reg.Lookup(typ)
	require.True(t, ok)
	require.Equal(t, ".second", h(nodeA{})[0].PathString())
	require.Len(t, reg.Handlers(), 1)
}

func TestFlatEntries(t *testing.T) {
	entries := keypath.FlatEntries(3)
	require.Len(t, entries, 3)
	require.Equal(t, "[<flat index 0>]", entries[0].PathString())
	require.Equal(t, "[<flat index 2>]", entries[2].PathString())

	require.Empty(t, keypath.FlatEntries(0))
}
