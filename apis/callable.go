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

// Callable is anything invocable with positional arguments. It is the
// contract for values wrapped by partial.Partial.
//
// Go funcs are not comparable, so callables that should participate in
// structural identity (equality of metadata across flatten/unflatten)
// either use a comparable concrete type or implement Equaler.
type Callable interface {
	// Call invokes the callable with the given arguments.
	Call(args ...any) any
}

// Func adapts a plain variadic function to Callable. Note that Func values
// are not comparable; wrap them in a named comparable type or implement
// Equaler when identity matters.
type Func func(args ...any) any

// Call implements Callable.
func (f Func) Call(args ...any) any { return f(args...) }

// Ensure Func implements Callable.
var _ Callable = (Func)(nil)

// Equaler is optionally implemented by callables (and metadata values) that
// define their own equality. Implementations must be reflexive, symmetric,
// and safe for concurrent use.
type Equaler interface {
	// Equal reports whether the receiver equals other.
	Equal(other any) bool
}
