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

import (
	"errors"
	"fmt"
)

// Registration errors form a two-category taxonomy. Every specific error
// wraps one of the two category sentinels, so callers can branch with
// errors.Is on either the category or the specific condition. All of them
// are raised synchronously at registration time and signal programmer
// error, never transient failure. Lookups never return errors: absence is
// reported through a false ok, and the caller treats the value as a leaf.
var (
	// ErrTypeConfig is the category for registrations whose target is not
	// a registrable concrete type.
	ErrTypeConfig = errors.New("treex: invalid registration type")
	// ErrValueConfig is the category for registrations carrying an invalid
	// or ambiguous argument value.
	ErrValueConfig = errors.New("treex: invalid registration value")

	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = fmt.Errorf("%w: nil reflect.Type provided", ErrTypeConfig)
	// ErrInterfaceType is returned when an interface type is provided.
	// Node dispatch is by exact dynamic type; values never carry an
	// interface type at runtime, so such an entry could never match.
	ErrInterfaceType = fmt.Errorf("%w: interface types cannot be registered", ErrTypeConfig)
	// ErrNotTreeNode is returned by the type-oriented front-end when the
	// target type does not implement both TreeNode and TreeUnflattener.
	ErrNotTreeNode = fmt.Errorf("%w: type does not implement TreeNode and TreeUnflattener", ErrTypeConfig)

	// ErrEmptyNamespace is returned when a namespace would be built from
	// the empty string.
	ErrEmptyNamespace = fmt.Errorf("%w: namespace cannot be an empty string", ErrValueConfig)
	// ErrNilNodeFunc is returned when a flatten or unflatten function is nil.
	ErrNilNodeFunc = fmt.Errorf("%w: nil flatten/unflatten function", ErrValueConfig)
	// ErrAmbiguousNamespace is returned when both the namespace-first
	// convention and an explicit namespace are used in the same call.
	ErrAmbiguousNamespace = fmt.Errorf("%w: namespace supplied through both conventions", ErrValueConfig)
	// ErrNamespaceAsValue is returned when a namespace string is passed
	// where a registrable value is expected.
	ErrNamespaceAsValue = fmt.Errorf("%w: a namespace string is not a registrable value", ErrValueConfig)
)
