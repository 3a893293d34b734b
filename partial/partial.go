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

// Package partial provides a callable wrapper that participates in tree
// decomposition without losing its own nested structure.
//
// A Partial stores a callable plus positional and keyword arguments and is
// itself callable: stored positional arguments are prepended to call-time
// ones, and stored keywords are overlaid by call-time ones. As a registered
// node it flattens into (args, keywords) children with the wrapped callable
// as metadata, so argument trees can be mapped over like any other tree.
package partial

import (
	"reflect"

	"dirpx.dev/treex/apis"
	"dirpx.dev/treex/containers"
)

// Keywords carries keyword arguments through Call. When the final call-time
// argument is a Keywords value it is split off and merged over the stored
// keywords; the wrapped callable receives the merged set the same way, as a
// trailing Keywords argument.
type Keywords map[string]any

// Partial wraps {callable, positional args, keyword args}.
type Partial struct {
	fn       apis.Callable
	args     []any
	keywords Keywords
}

// Ensure Partial is callable and self-describing.
var (
	_ apis.Callable        = (*Partial)(nil)
	_ apis.TreeNode        = (*Partial)(nil)
	_ apis.TreeUnflattener = (*Partial)(nil)
)

// New returns a Partial over fn with the given stored arguments. When the
// final argument is a Keywords value it becomes the stored keywords.
//
// Wrapping an existing *Partial would naively fold the two layers into one,
// merging the argument lists and silently losing the intended nesting. New
// defeats that: the inner wrapper is boxed in an opaque shim that forwards
// invocation and equality but is not itself a *Partial, so the outer layer
// keeps it as a single metadata unit and both nesting levels survive a
// flatten.
func New(fn apis.Callable, args ...any) *Partial {
	keywords := Keywords{}
	if n := len(args); n > 0 {
		if kw, ok := args[n-1].(Keywords); ok {
			args = args[:n-1]
			for k, v := range kw {
				keywords[k] = v
			}
		}
	}
	if inner, ok := fn.(*Partial); ok {
		fn = shim{inner: inner}
	}
	stored := make([]any, len(args))
	copy(stored, args)
	return &Partial{fn: fn, args: stored, keywords: keywords}
}

// Fn returns the wrapped callable. For a Partial built over another
// Partial this is the opaque shim, not the inner wrapper itself.
func (p *Partial) Fn() apis.Callable { return p.fn }

// Args returns a copy of the stored positional arguments.
func (p *Partial) Args() []any {
	out := make([]any, len(p.args))
	copy(out, p.args)
	return out
}

// KeywordArgs returns a copy of the stored keyword arguments.
func (p *Partial) KeywordArgs() Keywords {
	out := make(Keywords, len(p.keywords))
	for k, v := range p.keywords {
		out[k] = v
	}
	return out
}

// Call invokes the wrapped callable with the stored positional arguments
// prepended to args. Stored keywords are overlaid by a trailing Keywords
// argument, and the merged set (when non-empty) is passed through as a
// trailing Keywords argument.
func (p *Partial) Call(args ...any) any {
	callKw := Keywords(nil)
	if n := len(args); n > 0 {
		if kw, ok := args[n-1].(Keywords); ok {
			args = args[:n-1]
			callKw = kw
		}
	}

	merged := make([]any, 0, len(p.args)+len(args)+1)
	merged = append(merged, p.args...)
	merged = append(merged, args...)

	if len(p.keywords) > 0 || len(callKw) > 0 {
		kw := make(Keywords, len(p.keywords)+len(callKw))
		for k, v := range p.keywords {
			kw[k] = v
		}
		for k, v := range callKw {
			kw[k] = v
		}
		merged = append(merged, kw)
	}
	return p.fn.Call(merged...)
}

// Equal reports whether other is a Partial (or a shim over one) wrapping an
// equal callable with equal arguments.
func (p *Partial) Equal(other any) bool {
	if s, ok := other.(shim); ok {
		return p.Equal(s.inner)
	}
	o, ok := other.(*Partial)
	if !ok {
		return false
	}
	if p == o {
		return true
	}
	return callableEqual(p.fn, o.fn) &&
		reflect.DeepEqual(p.args, o.args) &&
		reflect.DeepEqual(p.keywords, o.keywords)
}

// TreeFlatten decomposes the wrapper: children are the positional argument
// tuple and the keyword mapping; metadata is the wrapped callable.
func (p *Partial) TreeFlatten() (children []any, metadata any, entries []any) {
	args := make(containers.Tuple, len(p.args))
	copy(args, p.args)
	keywords := make(containers.Dict, len(p.keywords))
	for k, v := range p.keywords {
		keywords[k] = v
	}
	return []any{args, keywords}, p.fn, nil
}

// TreeUnflatten rebuilds a Partial from the callable metadata and the
// (args, keywords) children. The fields are assembled directly: the
// children are already split, so New's trailing-Keywords convention does
// not apply, and a Keywords value sitting in the last positional slot
// stays a positional argument.
func (p *Partial) TreeUnflatten(metadata any, children []any) any {
	fn := metadata.(apis.Callable)
	if inner, ok := fn.(*Partial); ok {
		fn = shim{inner: inner}
	}
	args := toAnySlice(children[0])
	stored := make([]any, len(args))
	copy(stored, args)
	keywords := Keywords{}
	for k, v := range toDict(children[1]) {
		keywords[k.(string)] = v
	}
	return &Partial{fn: fn, args: stored, keywords: keywords}
}

func toAnySlice(v any) []any {
	switch s := v.(type) {
	case containers.Tuple:
		return s
	case []any:
		return s
	default:
		return nil
	}
}

func toDict(v any) containers.Dict {
	switch m := v.(type) {
	case containers.Dict:
		return m
	case map[string]any:
		d := make(containers.Dict, len(m))
		for k, val := range m {
			d[k] = val
		}
		return d
	default:
		return nil
	}
}
