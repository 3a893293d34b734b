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

// Namespace is a string-scoped partition of the node registry. It isolates
// competing flatten/unflatten behaviors registered for the same type by
// different libraries.
//
// A Namespace is either built from a non-empty string via NewNamespace, or
// is the Global sentinel. The sentinel is a distinct value that never
// compares equal to any string-built namespace, including one that would be
// built from the empty string (which NewNamespace rejects). The zero
// Namespace is neither: it is invalid for registration and behaves like
// Global for lookups.
type Namespace struct {
	name   string
	global bool
}

// Global is the sentinel namespace for process-wide registrations.
// Entries registered under Global are keyed by the bare type and take
// precedence over namespaced entries during lookup.
var Global = Namespace{global: true}

// NewNamespace builds a namespace from name. The empty string is rejected
// with ErrEmptyNamespace.
func NewNamespace(name string) (Namespace, error) {
	if name == "" {
		return Namespace{}, ErrEmptyNamespace
	}
	return Namespace{name: name}, nil
}

// MustNamespace is NewNamespace that panics on error. Intended for
// package-level registration of well-known namespaces.
func MustNamespace(name string) Namespace {
	ns, err := NewNamespace(name)
	if err != nil {
		panic(err)
	}
	return ns
}

// IsGlobal reports whether ns is the Global sentinel.
func (ns Namespace) IsGlobal() bool { return ns.global }

// Name returns the namespace string. It is empty for the Global sentinel
// and for the zero Namespace.
func (ns Namespace) Name() string { return ns.name }

// String implements fmt.Stringer.
func (ns Namespace) String() string {
	if ns.global {
		return "<global>"
	}
	return ns.name
}
