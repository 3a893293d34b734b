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

package apis

// Config carries read-only knobs that influence how registries are built
// and how key paths render. It is passed by value and should be treated as
// immutable by implementations.
type Config struct {
	// RootLabel is rendered for the empty key path (the tree root).
	RootLabel string

	// DefaultAdapters controls whether built node registries are preseeded
	// with the standard container adapters and built-in key-path handlers.
	// Disable it to build minimal per-test registries.
	DefaultAdapters bool

	// NativeMaps controls whether the native map[string]any shape is
	// registered alongside the container kinds. It has no effect when
	// DefaultAdapters is false.
	NativeMaps bool
}
