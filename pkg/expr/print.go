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
	"strconv"
	"strings"
)

// Print evaluates a clone of e and renders it with the grammar below. The
// precise spelling is part of the external contract: golden-file tests
// depend on it.
//
//	arithmetic binary kinds: fully-parenthesised infix, e.g. (1+2)
//	range:                   L..R
//	tuple:                   L][R
//	equal:                   L==R
//	bind:                    L:R
//	Const(i):                decimal of i
//	Var(n):                  n
//
// If evaluation fails (division/modulo by zero, negative shift), Print
// falls back to rendering the pre-evaluation form so that a caller
// diagnosing the error can still see the offending expression.
func Print(e *Expr) string {
	if e == nil {
		return ""
	}
	if ev, err := Evaluate(Clone(e)); err == nil {
		return print(ev)
	}
	return print(e)
}

func print(e *Expr) string {
	if e == nil {
		return ""
	}
	switch e.Kind {
	case KindConst:
		return strconv.FormatInt(e.Value, 10)
	case KindVar:
		return e.Name
	case KindBin:
		var b strings.Builder
		switch e.Op {
		case RangeOp:
			b.WriteString(print(e.L))
			b.WriteString("..")
			b.WriteString(print(e.R))
		case TupleOp:
			b.WriteString(print(e.L))
			b.WriteString("][")
			b.WriteString(print(e.R))
		case EqualOp:
			b.WriteString(print(e.L))
			b.WriteString("==")
			b.WriteString(print(e.R))
		case BindOp:
			b.WriteString(print(e.L))
			b.WriteString(":")
			b.WriteString(print(e.R))
		default:
			b.WriteByte('(')
			b.WriteString(print(e.L))
			b.WriteString(e.Op.String())
			b.WriteString(print(e.R))
			b.WriteByte(')')
		}
		return b.String()
	default:
		return ""
	}
}
