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
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/stsession/mpst/internal/xtrace"
)

// tracer traces with key 'mpst.expr'.
func tracer() tracing.Trace {
	return xtrace.Select("expr")
}

// ErrDivByZero is returned by Evaluate when a Div or Mod node's right
// operand folds to zero.
var ErrDivByZero = errors.New("expr: division or modulo by zero")

// ErrShiftNegative is returned by Evaluate when a Shl or Shr node's right
// operand folds to a negative count.
var ErrShiftNegative = errors.New("expr: shift by negative count")

// Evaluate performs bottom-up constant folding over the arithmetic and
// shift kinds {+,-,*,/,mod,shl,shr}. When both operands of such a node
// evaluate to a constant, the node is rewritten in place to a KindConst
// holding the host-integer result. Non-arithmetic kinds (range, tuple,
// equal, bind) are preserved as-is, but their children are still evaluated
// recursively.
//
// On a numeric error (division/modulo by zero, negative shift count) the
// offending node is left unchanged and the error is returned immediately;
// already-folded siblings evaluated before the error was hit keep their
// folded form.
func Evaluate(e *Expr) (*Expr, error) {
	if e == nil {
		return nil, nil
	}
	if e.Kind != KindBin {
		return e, nil
	}

	l, err := Evaluate(e.L)
	if err != nil {
		return e, err
	}
	e.L = l

	r, err := Evaluate(e.R)
	if err != nil {
		return e, err
	}
	e.R = r

	if !e.Op.arithmetic() || !e.L.IsConst() || !e.R.IsConst() {
		return e, nil
	}

	v, err := foldArithmetic(e.Op, e.L.Value, e.R.Value)
	if err != nil {
		tracer().Errorf("evaluate: %s %s %s: %s", Print(e.L), e.Op, Print(e.R), err)
		return e, fmt.Errorf("expr: %s %s %s: %w", Print(e.L), e.Op, Print(e.R), err)
	}

	e.Kind = KindConst
	e.Value = v
	e.Name = ""
	e.L, e.R = nil, nil
	return e, nil
}

func foldArithmetic(op Op, l, r int64) (int64, error) {
	switch op {
	case Add:
		return l + r, nil
	case Sub:
		return l - r, nil
	case Mul:
		return l * r, nil
	case Div:
		if r == 0 {
			return 0, ErrDivByZero
		}
		return l / r, nil
	case Mod:
		if r == 0 {
			return 0, ErrDivByZero
		}
		return l % r, nil
	case Shl:
		if r < 0 {
			return 0, ErrShiftNegative
		}
		return l << uint64(r), nil
	case Shr:
		if r < 0 {
			return 0, ErrShiftNegative
		}
		return l >> uint64(r), nil
	default:
		return 0, fmt.Errorf("expr: not an arithmetic op: %s", op)
	}
}
