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

package treex

import (
	"fmt"
	"reflect"

	"dirpx.dev/treex/apis"
	"dirpx.dev/treex/registry"
)

// RegisterNode registers t with explicit flatten/unflatten functions in the
// global node registry. Namespace is an explicit argument: pass apis.Global
// to register for every namespace. The registered type is returned for
// chaining. Re-registering a (namespace, type) pair overwrites the entry.
func RegisterNode(t reflect.Type, flatten apis.FlattenFunc, unflatten apis.UnflattenFunc, ns apis.Namespace) (reflect.Type, error) {
	if err := st.Load().nodes.Register(t, flatten, unflatten, ns); err != nil {
		return nil, err
	}
	return t, nil
}

// MustRegisterNode is RegisterNode but panics on error. Intended for
// package-level var blocks and init functions.
func MustRegisterNode(t reflect.Type, flatten apis.FlattenFunc, unflatten apis.UnflattenFunc, ns apis.Namespace) reflect.Type {
	t, err := RegisterNode(t, flatten, unflatten, ns)
	if err != nil {
		panic(err)
	}
	return t
}

// RegisterNodeType registers the dynamic type of v, which must implement
// both apis.TreeNode and apis.TreeUnflattener. The flatten/unflatten pair is
// derived from the type's own methods.
//
// Passing a namespace name where a node value is expected is a common slip
// when converting between the two registration conventions, so a string v
// is rejected outright.
func RegisterNodeType(v any, ns apis.Namespace) (reflect.Type, error) {
	switch v := v.(type) {
	case string:
		return nil, fmt.Errorf("%w: got string %q, use InNamespace for namespace-first registration", apis.ErrNamespaceAsValue, v)
	case *Registration:
		return nil, fmt.Errorf("%w: registration already bound to namespace %q", apis.ErrAmbiguousNamespace, v.ns.Name())
	case nil:
		return nil, apis.ErrNilType
	}
	t := reflect.TypeOf(v)
	flatten, unflatten, err := registry.FuncsForType(t)
	if err != nil {
		return nil, err
	}
	return RegisterNode(t, flatten, unflatten, ns)
}

// InNamespace returns a Registration bound to the named namespace, enabling
// namespace-first chains:
//
//	treex.InNamespace("mylib").MustRegister(reflect.TypeOf(Set{}), flatten, unflatten)
//
// The name must be non-empty; the error surfaces on Register.
func InNamespace(name string) *Registration {
	ns, err := apis.NewNamespace(name)
	return &Registration{ns: ns, err: err}
}

// Registration is a namespace-bound registration handle.
type Registration struct {
	ns  apis.Namespace
	err error
}

// Namespace returns the bound namespace.
func (r *Registration) Namespace() apis.Namespace {
	return r.ns
}

// Register registers t under the bound namespace.
func (r *Registration) Register(t reflect.Type, flatten apis.FlattenFunc, unflatten apis.UnflattenFunc) (reflect.Type, error) {
	if r.err != nil {
		return nil, r.err
	}
	return RegisterNode(t, flatten, unflatten, r.ns)
}

// MustRegister is Register but panics on error.
func (r *Registration) MustRegister(t reflect.Type, flatten apis.FlattenFunc, unflatten apis.UnflattenFunc) reflect.Type {
	t, err := r.Register(t, flatten, unflatten)
	if err != nil {
		panic(err)
	}
	return t
}

// RegisterType registers the dynamic type of v, which must implement both
// apis.TreeNode and apis.TreeUnflattener, under the bound namespace.
func (r *Registration) RegisterType(v any) (reflect.Type, error) {
	if r.err != nil {
		return nil, r.err
	}
	return RegisterNodeType(v, r.ns)
}
