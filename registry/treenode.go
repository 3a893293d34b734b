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

package registry

import (
	"fmt"
	"reflect"

	"dirpx.dev/treex/apis"
)

var (
	treeNodeType        = reflect.TypeOf((*apis.TreeNode)(nil)).Elem()
	treeUnflattenerType = reflect.TypeOf((*apis.TreeUnflattener)(nil)).Elem()
)

// FuncsForType derives a flatten/unflatten pair from a self-describing node
// type: t must implement apis.TreeNode and apis.TreeUnflattener. The
// unflatten side is bound to a zero value of t, so TreeUnflatten acts as
// the type's reconstruction entry point.
func FuncsForType(t reflect.Type) (apis.FlattenFunc, apis.UnflattenFunc, error) {
	if t == nil {
		return nil, nil, apis.ErrNilType
	}
	if !t.Implements(treeNodeType) || !t.Implements(treeUnflattenerType) {
		return nil, nil, fmt.Errorf("%w: %s", apis.ErrNotTreeNode, t)
	}

	flatten := func(node any) ([]any, any, []any) {
		return node.(apis.TreeNode).TreeFlatten()
	}

	zero := zeroValueOf(t)
	unflattener := zero.(apis.TreeUnflattener)
	unflatten := func(metadata any, children []any) any {
		return unflattener.TreeUnflatten(metadata, children)
	}
	return flatten, unflatten, nil
}

// zeroValueOf builds a callable zero value: a fresh allocation for pointer
// types (so methods with pointer receivers have a valid, if empty, target),
// the plain zero value otherwise.
func zeroValueOf(t reflect.Type) any {
	if t.Kind() == reflect.Pointer {
		return reflect.New(t.Elem()).Interface()
	}
	return reflect.Zero(t).Interface()
}
