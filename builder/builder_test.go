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

package builder_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	apis "dirpx.dev/treex/apis"
	"dirpx.dev/treex/builder"
	"dirpx.dev/treex/config"
	"dirpx.dev/treex/containers"
	"dirpx.dev/treex/keypath"
	"dirpx.dev/treex/partial"
)

type userNode struct{}

func userFlatten(node any) ([]any, any, []any) { return []any{"user"}, "user", nil }

func userUnflatten(metadata any, children []any) any { return userNode{} }

func TestBuildNodes_SeedsDefaults(t *testing.T) {
	b := builder.New()
	reg := b.BuildNodes(config.DefaultConfig(), nil, nil)

	require.True(t, reg.IsNode(reflect.TypeOf(containers.Tuple(nil))))
	require.True(t, reg.IsNode(reflect.TypeOf(containers.Dict(nil))))
	require.True(t, reg.IsNode(reflect.TypeOf(map[string]any(nil))))
	require.True(t, reg.IsNode(reflect.TypeOf((*partial.Partial)(nil))))

	// The Partial adapter round trips through its own methods.
	e, ok := reg.Lookup(reflect.TypeOf((*partial.Partial)(nil)), apis.Global)
	require.True(t, ok)
	p := partial.New(collectFn{}, 1, 2)
	children, metadata, _ := e.Flatten(p)
	back := e.Unflatten(metadata, children).(*partial.Partial)
	require.True(t, p.Equal(back))
}

func TestBuildNodes_NoDefaults(t *testing.T) {
	b := builder.New()
	cfg := config.NewConfig(config.WithDefaultAdapters(false))
	reg := b.BuildNodes(cfg, nil, nil)

	require.Equal(t, 0, reg.Count())
	require.False(t, reg.IsNode(reflect.TypeOf(containers.Tuple(nil))))
}

func TestBuildNodes_NativeMapsOff(t *testing.T) {
	b := builder.New()
	cfg := config.NewConfig(config.WithNativeMaps(false))
	reg := b.BuildNodes(cfg, nil, nil)

	require.True(t, reg.IsNode(reflect.TypeOf(containers.Dict(nil))))
	require.False(t, reg.IsNode(reflect.TypeOf(map[string]any(nil))))
}

func TestBuildNodes_MigratesPrevEntries(t *testing.T) {
	b := builder.New()
	cfg := config.DefaultConfig()

	prev := b.BuildNodes(cfg, nil, nil)
	ns := apis.MustNamespace("user")
	require.NoError(t, prev.Register(reflect.TypeOf(userNode{}), userFlatten, userUnflatten, ns))

	next := b.BuildNodes(cfg, prev, nil)
	e, ok := next.Lookup(reflect.TypeOf(userNode{}), ns)
	require.True(t, ok)
	_, metadata, _ := e.Flatten(userNode{})
	require.Equal(t, "user", metadata)

	// The defaults are still present alongside the migrated entry.
	require.True(t, next.IsNode(reflect.TypeOf(containers.Tuple(nil))))
}

func TestBuildNodes_UserOverrideSurvivesRebuild(t *testing.T) {
	b := builder.New()
	cfg := config.DefaultConfig()

	prev := b.BuildNodes(cfg, nil, nil)
	override := func(node any) ([]any, any, []any) { return nil, "override", nil }
	require.NoError(t, prev.Register(reflect.TypeOf(containers.Tuple(nil)), override, userUnflatten, apis.Global))

	next := b.BuildNodes(cfg, prev, nil)
	e, ok := next.Lookup(reflect.TypeOf(containers.Tuple(nil)), apis.Global)
	require.True(t, ok)
	_, metadata, _ := e.Flatten(containers.Tuple{})
	require.Equal(t, "override", metadata)
}

func TestBuildKeyPaths_SeedsAndMigrates(t *testing.T) {
	b := builder.New()
	cfg := config.DefaultConfig()

	prev := b.BuildKeyPaths(cfg, nil, nil)
	_, ok := prev.Lookup(reflect.TypeOf(containers.Tuple(nil)))
	require.True(t, ok, "built-in handlers not seeded")

	prev.Register(reflect.TypeOf(userNode{}), func(node any) []apis.KeyPathEntry {
		return []apis.KeyPathEntry{keypath.AttributeEntry{Name: "u"}}
	})

	next := b.BuildKeyPaths(cfg, prev, nil)
	h, ok := next.Lookup(reflect.TypeOf(userNode{}))
	require.True(t, ok)
	require.Equal(t, ".u", h(userNode{})[0].PathString())
}

func TestBuildKeyPaths_NoDefaults(t *testing.T) {
	b := builder.New()
	cfg := config.NewConfig(config.WithDefaultAdapters(false))
	reg := b.BuildKeyPaths(cfg, nil, nil)

	_, ok := reg.Lookup(reflect.TypeOf(containers.Tuple(nil)))
	require.False(t, ok)
	require.Empty(t, reg.Handlers())
}

// collectFn is a comparable callable for Partial round trips.
type collectFn struct{}

func (collectFn) Call(args ...any) any { return args }
