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

package partial

import (
	"reflect"

	"dirpx.dev/treex/apis"
)

// shim boxes an inner *Partial so that an outer Partial treats it as a
// single opaque callable. It forwards invocation and equality to the inner
// wrapper but is not itself a *Partial, so the merge branch in New never
// folds the layers.
//
// shim is a comparable struct; two shims boxing the same inner wrapper
// compare equal under ==, and Equal extends that to shims boxing equal
// (but distinct) wrappers.
type shim struct {
	inner *Partial
}

// Ensure the shim stays callable and equality-forwarding.
var (
	_ apis.Callable = shim{}
	_ apis.Equaler  = shim{}
)

// Call forwards to the boxed wrapper.
func (s shim) Call(args ...any) any { return s.inner.Call(args...) }

// Equal forwards to the boxed wrapper: a shim equals another shim, a
// *Partial, or anything the wrapper itself considers equal.
func (s shim) Equal(other any) bool {
	if o, ok := other.(shim); ok {
		return s.inner.Equal(o.inner)
	}
	return s.inner.Equal(other)
}

// Unwrap exposes the boxed wrapper as a callable, for callers that need to
// follow the delegation chain (e.g. diagnostics).
func (s shim) Unwrap() apis.Callable { return s.inner }

// callableEqual compares callables: Equaler wins, then == when both
// dynamic types are comparable.
func callableEqual(a, b apis.Callable) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if eq, ok := a.(apis.Equaler); ok {
		return eq.Equal(b)
	}
	if eq, ok := b.(apis.Equaler); ok {
		return eq.Equal(a)
	}
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	if !av.Comparable() || !bv.Comparable() {
		return false
	}
	return a == b
}
