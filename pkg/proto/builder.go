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

package proto

import (
	"github.com/stsession/mpst/pkg/expr"
	"github.com/stsession/mpst/pkg/role"
)

// NewRoot returns a fresh Root node.
func NewRoot() *Node {
	return &Node{Kind: KindRoot}
}

// NewSendRecv returns a fresh global-kind interaction node.
func NewSendRecv(from role.Role, to []role.Role, msgsig MsgSig, msgCond *role.Role, cond *expr.Expr) *Node {
	return &Node{
		Kind: KindSendRecv,
		Interaction: &Interaction{
			From:    &from,
			To:      to,
			MsgSig:  msgsig,
			MsgCond: msgCond,
			Cond:    cond,
		},
	}
}

// NewSend returns a fresh Send leaf.
func NewSend(to []role.Role, msgsig MsgSig, msgCond *role.Role, cond *expr.Expr) *Node {
	return &Node{
		Kind: KindSend,
		Interaction: &Interaction{
			To:      to,
			MsgSig:  msgsig,
			MsgCond: msgCond,
			Cond:    cond,
		},
	}
}

// NewRecv returns a fresh Recv leaf.
func NewRecv(from role.Role, msgsig MsgSig, msgCond *role.Role, cond *expr.Expr) *Node {
	return &Node{
		Kind: KindRecv,
		Interaction: &Interaction{
			From:    &from,
			MsgSig:  msgsig,
			MsgCond: msgCond,
			Cond:    cond,
		},
	}
}

// NewChoice returns a fresh Choice node; each child appended to it is a
// branch.
func NewChoice(at string) *Node {
	return &Node{Kind: KindChoice, Choice: &ChoiceAttr{At: at}}
}

// NewParallel returns a fresh Parallel node; each child appended to it is a
// concurrently executed thread.
func NewParallel() *Node {
	return &Node{Kind: KindParallel}
}

// NewRecur returns a fresh Recur node labelled label.
func NewRecur(label string) *Node {
	return &Node{Kind: KindRecur, Recur: &RecurAttr{Label: label}}
}

// NewContinue returns a fresh Continue leaf jumping back to the enclosing
// Recur sharing label.
func NewContinue(label string) *Node {
	return &Node{Kind: KindContinue, Continue: &ContinueAttr{Label: label}}
}

// NewFor returns a fresh For node iterating variable over rang.
func NewFor(variable string, rang *expr.Expr) *Node {
	return &Node{Kind: KindFor, For: &ForAttr{Var: variable, Range: rang}}
}

// Append adds child to the end of n's ordered child list and returns n, so
// calls can be chained during construction.
func (n *Node) Append(child *Node) *Node {
	n.Children = append(n.Children, child)
	return n
}

// Free releases n and every node it owns: its Children (recursively), its
// payload, and any Expr it holds. Go's garbage collector reclaims memory
// on its own, but Free still matters as a contract: it is the only
// operation that walks an owned subtree, and "Free is total" (every node
// visited exactly once) is a property both the builder and a prior C
// implementation of this tree needed to uphold. Calling Free on n again
// after n's children have already been cleared is a no-op, not a
// double-free, since Children is reset to nil the first time through.
func Free(n *Node) {
	if n == nil {
		return
	}
	for _, c := range n.Children {
		Free(c)
	}
	n.Children = nil
	n.Interaction = nil
	n.Choice = nil
	n.Recur = nil
	n.Continue = nil
	n.For = nil
}

// FreeTree releases t's root (and, transitively, its whole body) along
// with its metadata. The original C implementation freed the root only
// when it was NULL, which is inverted from the evident intent; FreeTree
// frees the root whenever it is non-nil.
func FreeTree(t *Tree) {
	if t == nil {
		return
	}
	t.Info = nil
	if t.Root != nil {
		Free(t.Root)
		t.Root = nil
	}
}
