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

package builder

import (
	"reflect"

	"dirpx.dev/treex/apis"
	"dirpx.dev/treex/containers"
	"dirpx.dev/treex/keypath"
	"dirpx.dev/treex/partial"
	"dirpx.dev/treex/registry"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildNodes builds and returns a new apis.NodeRegistry based on the
// provided configuration and pre-existing registry. The standard container
// adapters and the Partial node are seeded first (when cfg.DefaultAdapters
// is set), then entries from the pre-existing registry are copied in;
// last-write-wins keeps any user overrides of the defaults.
func (b *builder) BuildNodes(cfg apis.Config, prev apis.NodeRegistry, _ any) apis.NodeRegistry {
	nreg := registry.New(cfg)
	if cfg.DefaultAdapters {
		_ = containers.RegisterDefaults(nreg, cfg.NativeMaps)
		registerPartial(nreg)
	}
	if prev != nil {
		for _, e := range prev.Entries() {
			_ = nreg.Register(e.Type, e.Entry.Flatten, e.Entry.Unflatten, e.Namespace)
		}
	}
	return nreg
}

// BuildKeyPaths builds and returns a new apis.KeyPathRegistry based on the
// provided configuration and pre-existing registry. Built-in handlers are
// seeded first, then handlers from the pre-existing registry are copied in.
func (b *builder) BuildKeyPaths(cfg apis.Config, prev apis.KeyPathRegistry, _ any) apis.KeyPathRegistry {
	kp := keypath.NewRegistry()
	if cfg.DefaultAdapters {
		containers.RegisterDefaultKeyPaths(kp)
	}
	if prev != nil {
		for t, h := range prev.Handlers() {
			kp.Register(t, h)
		}
	}
	return kp
}

// registerPartial installs the wrapped-callable node in the global
// namespace using its own TreeFlatten/TreeUnflatten.
func registerPartial(reg apis.NodeRegistry) {
	t := reflect.TypeOf((*partial.Partial)(nil))
	flatten, unflatten, err := registry.FuncsForType(t)
	if err != nil {
		panic(err) // Partial always implements the node contract
	}
	_ = reg.Register(t, flatten, unflatten, apis.Global)
}
