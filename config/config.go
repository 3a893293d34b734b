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

package config

import (
	"dirpx.dev/treex/apis"
)

const (
	// DefaultRootLabel represents the default for RootLabel.
	// It matches the engine-side rendering of an empty key path.
	DefaultRootLabel = " tree root"
	// DefaultDefaultAdapters represents the default for DefaultAdapters.
	// When true, built registries are preseeded with the standard container
	// adapters.
	DefaultDefaultAdapters = true
	// DefaultNativeMaps represents the default for NativeMaps.
	// When true, the native map[string]any shape is registered too.
	DefaultNativeMaps = true
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure RootLabel is renderable.
	if cfg.RootLabel == "" {
		cfg.RootLabel = DefaultRootLabel
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		RootLabel:       DefaultRootLabel,
		DefaultAdapters: DefaultDefaultAdapters,
		NativeMaps:      DefaultNativeMaps,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithRootLabel sets the RootLabel option.
// The empty string resets to the default.
func WithRootLabel(label string) Option {
	return func(c *apis.Config) {
		if label == "" {
			c.RootLabel = DefaultRootLabel
			return
		}
		c.RootLabel = label
	}
}

// WithDefaultAdapters sets the DefaultAdapters option.
func WithDefaultAdapters(seed bool) Option {
	return func(c *apis.Config) {
		c.DefaultAdapters = seed
	}
}

// WithNativeMaps sets the NativeMaps option.
func WithNativeMaps(native bool) Option {
	return func(c *apis.Config) {
		c.NativeMaps = native
	}
}
