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

package apis_test

import (
	"errors"
	"testing"

	apis "dirpx.dev/treex/apis"
)

func TestNewNamespace(t *testing.T) {
	ns, err := apis.NewNamespace("mylib")
	if err != nil {
		t.Fatalf("NewNamespace(mylib): %v", err)
	}
	if ns.IsGlobal() {
		t.Fatalf("string-built namespace reports global")
	}
	if ns.Name() != "mylib" {
		t.Fatalf("Name() = %q, want mylib", ns.Name())
	}

	// Equal names build equal values.
	again := apis.MustNamespace("mylib")
	if ns != again {
		t.Fatalf("namespaces with equal names compare unequal")
	}
}

func TestNewNamespace_EmptyRejected(t *testing.T) {
	_, err := apis.NewNamespace("")
	if !errors.Is(err, apis.ErrEmptyNamespace) {
		t.Fatalf("want ErrEmptyNamespace, got %v", err)
	}
	if !errors.Is(err, apis.ErrValueConfig) {
		t.Fatalf("ErrEmptyNamespace not in the value category: %v", err)
	}
}

func TestMustNamespace_PanicsOnEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("MustNamespace(\"\") did not panic")
		}
	}()
	_ = apis.MustNamespace("")
}

// The global sentinel is never equal to a string-built namespace, and the
// zero Namespace is neither global nor string-built.
func TestGlobalSentinel(t *testing.T) {
	if !apis.Global.IsGlobal() {
		t.Fatalf("Global.IsGlobal() = false")
	}
	if apis.Global.Name() != "" {
		t.Fatalf("Global.Name() = %q, want empty", apis.Global.Name())
	}

	ns := apis.MustNamespace("g")
	if ns == apis.Global {
		t.Fatalf("string-built namespace equals the global sentinel")
	}

	var zero apis.Namespace
	if zero == apis.Global {
		t.Fatalf("zero namespace equals the global sentinel")
	}
	if zero.IsGlobal() {
		t.Fatalf("zero namespace reports global")
	}
}
