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

// Package expr implements the symbolic integer expression algebra used to
// decorate parameterised roles and conditional branches in a protocol tree:
// construction, constant folding, variable substitution, structural
// simplification and printing.
package expr

import "fmt"

// A Kind identifies the shape of an Expr node.
type Kind int

// The kinds of expression node.
const (
	_ Kind = iota
	KindConst
	KindVar
	KindBin
)

func (k Kind) String() string {
	switch k {
	case KindConst:
		return "const"
	case KindVar:
		return "var"
	case KindBin:
		return "bin"
	default:
		return fmt.Sprintf("unknown-kind-%d", k)
	}
}

// An Op identifies the operator of a binary Expr.
type Op int

// The binary operators an Expr may carry.
const (
	_ Op = iota
	Add
	Sub
	Mul
	Div
	Mod
	Shl
	Shr
	RangeOp // inclusive numeric interval: L..R
	TupleOp // pair of index dimensions: L][R
	EqualOp // boolean predicate: L==R
	BindOp  // bound variable over a range: L:R
)

var opNames = map[Op]string{
	Add:     "+",
	Sub:     "-",
	Mul:     "*",
	Div:     "/",
	Mod:     "mod",
	Shl:     "shl",
	Shr:     "shr",
	RangeOp: "..",
	TupleOp: "][",
	EqualOp: "==",
	BindOp:  ":",
}

func (op Op) String() string {
	if s, ok := opNames[op]; ok {
		return s
	}
	return fmt.Sprintf("unknown-op-%d", op)
}

// arithmetic reports whether op is one of the constant-foldable arithmetic
// or shift kinds {+,-,*,/,mod,shl,shr}.
func (op Op) arithmetic() bool {
	switch op {
	case Add, Sub, Mul, Div, Mod, Shl, Shr:
		return true
	default:
		return false
	}
}

// An Expr is a node in the symbolic integer expression tree. Only one of
// the kind-specific fields is meaningful at a time, selected by Kind — the
// same tagged-struct shape the rest of this codebase uses for protocol tree
// nodes, rather than one Go interface implementation per kind.
type Expr struct {
	Kind Kind

	// Value holds the integer value when Kind == KindConst.
	Value int64

	// Name holds the identifier when Kind == KindVar.
	Name string

	// Op, L and R are populated when Kind == KindBin. L and R are owned by
	// this node: a substitution replaces one of them in place and discards
	// the displaced subtree.
	Op   Op
	L, R *Expr
}

// Const returns a fresh constant expression.
func Const(i int64) *Expr {
	return &Expr{Kind: KindConst, Value: i}
}

// Var returns a fresh variable reference.
func Var(name string) *Expr {
	return &Expr{Kind: KindVar, Name: name}
}

// Bin returns a fresh binary expression. Ownership of l and r transfers to
// the returned node.
func Bin(l *Expr, op Op, r *Expr) *Expr {
	return &Expr{Kind: KindBin, Op: op, L: l, R: r}
}

// IsConst reports whether e is a KindConst leaf.
func (e *Expr) IsConst() bool {
	return e != nil && e.Kind == KindConst
}

// Clone returns a deep copy of e. Print and the comparator evaluate clones
// so that read-only callers never observe Evaluate's in-place folding.
func Clone(e *Expr) *Expr {
	if e == nil {
		return nil
	}
	c := &Expr{Kind: e.Kind, Value: e.Value, Name: e.Name, Op: e.Op}
	c.L = Clone(e.L)
	c.R = Clone(e.R)
	return c
}

// Walk visits e and its descendants depth-first, pre-order. If visit
// returns false for a node, its children are not visited.
func Walk(e *Expr, visit func(*Expr) bool) {
	if e == nil {
		return
	}
	if !visit(e) {
		return
	}
	Walk(e.L, visit)
	Walk(e.R, visit)
}

// Equal reports whether a and b are structurally equal after Evaluate has
// folded every constant-foldable subexpression in independent clones of
// both. Numeric errors during evaluation (division by zero, negative
// shifts) make the offending side compare unequal to everything rather
// than panic, since Equal has no error return of its own.
func Equal(a, b *Expr) bool {
	ea, errA := Evaluate(Clone(a))
	eb, errB := Evaluate(Clone(b))
	if errA != nil || errB != nil {
		return false
	}
	return equalFolded(ea, eb)
}

func equalFolded(a, b *Expr) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindConst:
		return a.Value == b.Value
	case KindVar:
		return a.Name == b.Name
	case KindBin:
		return a.Op == b.Op && equalFolded(a.L, b.L) && equalFolded(a.R, b.R)
	default:
		return false
	}
}
