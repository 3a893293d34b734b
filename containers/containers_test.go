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

package containers_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"dirpx.dev/treex/containers"
	"dirpx.dev/treex/utils/keyorder"
)

func TestDict_ItemsDeterministicOrder(t *testing.T) {
	d := containers.Dict{3: "c", 1: "a", 2: "b"}

	items := d.Items()
	want := []keyorder.Item{
		{Key: 1, Value: "a"},
		{Key: 2, Value: "b"},
		{Key: 3, Value: "c"},
	}
	if diff := cmp.Diff(want, items); diff != "" {
		t.Fatalf("Items() order mismatch (-want +got):\n%s", diff)
	}

	// Repeated calls agree even though map iteration does not.
	for i := 0; i < 10; i++ {
		if diff := cmp.Diff(want, d.Items()); diff != "" {
			t.Fatalf("Items() unstable on run %d:\n%s", i, diff)
		}
	}
}

type structKey struct{ id int }

// Struct keys defeat every ordering tier, and the map itself has no
// insertion order; Items must still report the same order on every call.
func TestDict_ItemsStableForUnorderableKeys(t *testing.T) {
	d := containers.Dict{}
	for i := 0; i < 10; i++ {
		d[structKey{id: i}] = i
	}

	first := d.Items()
	require.Len(t, first, 10)
	for i := 0; i < 50; i++ {
		if diff := cmp.Diff(first, d.Items(), cmp.AllowUnexported(structKey{})); diff != "" {
			t.Fatalf("Items() order changed between calls (run %d):\n%s", i, diff)
		}
	}
}

func TestOrderedDict_InsertionOrder(t *testing.T) {
	d := containers.NewOrderedDict()
	d.Set("z", 1)
	d.Set("a", 2)
	d.Set("m", 3)

	require.Equal(t, []any{"z", "a", "m"}, d.Keys())
	require.Equal(t, []any{1, 2, 3}, d.Values())
	require.Equal(t, 3, d.Len())

	// Overwriting keeps the original position.
	d.Set("a", 20)
	require.Equal(t, []any{"z", "a", "m"}, d.Keys())
	v, ok := d.Get("a")
	require.True(t, ok)
	require.Equal(t, 20, v)

	// Delete removes the key from the order.
	require.True(t, d.Delete("z"))
	require.False(t, d.Delete("z"))
	require.Equal(t, []any{"a", "m"}, d.Keys())
}

func TestOrderedDictOf(t *testing.T) {
	d := containers.OrderedDictOf(
		keyorder.Item{Key: "b", Value: 1},
		keyorder.Item{Key: "a", Value: 2},
	)
	require.Equal(t, []any{"b", "a"}, d.Keys())
}

func TestDefaultDict_MaterializesDefaults(t *testing.T) {
	d := containers.NewDefaultDict(func() any { return []any{} })

	v := d.Get("missing")
	require.Equal(t, []any{}, v)

	// The default was stored, not just returned.
	stored, ok := d.Dict["missing"]
	require.True(t, ok)
	require.Equal(t, []any{}, stored)

	// Present keys bypass the factory.
	d.Dict["hit"] = 7
	require.Equal(t, 7, d.Get("hit"))

	// Nil factory degrades to a plain lookup.
	plain := containers.NewDefaultDict(nil)
	require.Nil(t, plain.Get("missing"))
	_, ok = plain.Dict["missing"]
	require.False(t, ok)
}

func TestDeque_Unbounded(t *testing.T) {
	d := containers.NewDeque([]any{1, 2, 3}, containers.Unbounded)
	require.Equal(t, 3, d.Len())
	if _, ok := d.MaxLen(); ok {
		t.Fatalf("unbounded deque reports a capacity bound")
	}

	d.PushFront(0)
	d.PushBack(4)
	require.Equal(t, []any{0, 1, 2, 3, 4}, d.Items())

	v, ok := d.PopFront()
	require.True(t, ok)
	require.Equal(t, 0, v)
	v, ok = d.PopBack()
	require.True(t, ok)
	require.Equal(t, 4, v)
	require.Equal(t, []any{1, 2, 3}, d.Items())
}

func TestDeque_Bounded(t *testing.T) {
	// Construction drops from the front, keeping the most recent items.
	d := containers.NewDeque([]any{1, 2, 3, 4, 5}, 3)
	require.Equal(t, []any{3, 4, 5}, d.Items())
	maxLen, ok := d.MaxLen()
	require.True(t, ok)
	require.Equal(t, 3, maxLen)

	// A full deque evicts from the opposite end on push.
	d.PushBack(6)
	require.Equal(t, []any{4, 5, 6}, d.Items())
	d.PushFront(3)
	require.Equal(t, []any{3, 4, 5}, d.Items())
}

func TestDeque_Empty(t *testing.T) {
	d := containers.NewDeque(nil, containers.Unbounded)
	if _, ok := d.PopFront(); ok {
		t.Fatalf("PopFront on empty deque returned ok")
	}
	if _, ok := d.PopBack(); ok {
		t.Fatalf("PopBack on empty deque returned ok")
	}
}
