// Copyright 2015 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package expr

import (
	"testing"

	"github.com/openconfig/gnmi/errdiff"
)

func TestSimplifyRange(t *testing.T) {
	tests := []struct {
		name string
		in   *Expr
		want string
	}{
		{"same variable", Bin(Var("i"), RangeOp, Var("i")), "i"},
		{"different variables", Bin(Var("i"), RangeOp, Var("j")), "i..j"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Print(Simplify(tt.in))
			if got != tt.want {
				t.Errorf("Print(Simplify(%v)) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestEvaluateConstantFolding(t *testing.T) {
	// (3+(2*4)) == 11
	e := Bin(Const(3), Add, Bin(Const(2), Mul, Const(4)))
	ev, err := Evaluate(e)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if !ev.IsConst() || ev.Value != 11 {
		t.Fatalf("Evaluate() = %+v, want Const(11)", ev)
	}
	if got, want := Print(ev), "11"; got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	e := Bin(Const(3), Add, Bin(Const(2), Mul, Const(4)))
	once, err := Evaluate(e)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	twice, err := Evaluate(Clone(once))
	if err != nil {
		t.Fatalf("Evaluate twice: %v", err)
	}
	if !equalFolded(once, twice) {
		t.Errorf("Evaluate is not idempotent: %v vs %v", Print(once), Print(twice))
	}
}

func TestSubstituteThenEvaluate(t *testing.T) {
	e := Bin(Var("n"), Add, Const(1))
	e = Substitute(e, "n", 7)
	ev, err := Evaluate(e)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if !ev.IsConst() || ev.Value != 8 {
		t.Fatalf("got %+v, want Const(8)", ev)
	}
}

func TestSubstituteReplacesEveryOccurrence(t *testing.T) {
	e := Bin(Var("n"), Add, Bin(Var("n"), Mul, Const(2)))
	e = Substitute(e, "n", 5)
	var remaining bool
	Walk(e, func(n *Expr) bool {
		if n.Kind == KindVar && n.Name == "n" {
			remaining = true
		}
		return true
	})
	if remaining {
		t.Errorf("Substitute left a Var(n) node in %s", Print(e))
	}
}

func TestEvaluateNumericErrors(t *testing.T) {
	tests := []struct {
		name       string
		in         *Expr
		wantErrStr string
	}{
		{"div by zero", Bin(Const(1), Div, Const(0)), "division or modulo by zero"},
		{"mod by zero", Bin(Const(1), Mod, Const(0)), "division or modulo by zero"},
		{"shift by negative", Bin(Const(1), Shl, Const(-1)), "shift by negative count"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Evaluate(tt.in)
			if diff := errdiff.Substring(err, tt.wantErrStr); diff != "" {
				t.Error(diff)
			}
		})
	}
}

func TestEqualEvaluatesBeforeComparing(t *testing.T) {
	// Two syntactically different expressions that fold to the same
	// constant compare equal. Channel identity itself is tested in pkg/role.
	a := Bin(Const(1), Add, Const(1))
	b := Bin(Const(2), Add, Const(0))
	if !Equal(a, b) {
		t.Errorf("Equal(%s, %s) = false, want true", Print(a), Print(b))
	}
}
