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

// Package proto implements the protocol tree: a tagged tree of protocol
// constructs (root, send, recv, sendrecv, choice, parallel, recurrence,
// continuation, for-loop) together with the protocol metadata (name, kind,
// roles, imports) that decorates the tree as a whole.
package proto

import (
	"fmt"

	"github.com/stsession/mpst/pkg/expr"
	"github.com/stsession/mpst/pkg/role"
)

// A Kind identifies the variant of a Node, mirroring the tagged-union
// discriminator of the original C tree.
type Kind int

// The node variants a protocol tree is built from.
const (
	_ Kind = iota
	KindRoot
	KindSendRecv
	KindSend
	KindRecv
	KindChoice
	KindParallel
	KindRecur
	KindContinue
	KindFor
)

var kindNames = map[Kind]string{
	KindRoot:     "root",
	KindSendRecv: "interaction",
	KindSend:     "send",
	KindRecv:     "recv",
	KindChoice:   "choice",
	KindParallel: "par",
	KindRecur:    "recur",
	KindContinue: "continue",
	KindFor:      "for",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("unknown-kind-%d", k)
}

// A MsgSig is a message signature: an optional operator and a required
// payload type name. Two signatures are equal iff their payloads are equal
// and either both operators are absent or both are present and equal.
type MsgSig struct {
	Op      *string
	Payload string
}

// Equal reports whether m and o are the same message signature.
func (m MsgSig) Equal(o MsgSig) bool {
	if (m.Op == nil) != (o.Op == nil) {
		return false
	}
	if m.Op != nil && *m.Op != *o.Op {
		return false
	}
	return m.Payload == o.Payload
}

func (m MsgSig) String() string {
	op := ""
	if m.Op != nil {
		op = *m.Op
	}
	return fmt.Sprintf("{ op: %s, payload: %s }", op, m.Payload)
}

// Interaction is the payload shared by SendRecv, Send and Recv nodes. From
// is unused (nil) for Send; MsgCond and Cond are unused on plain
// (non-choice-guarded) interactions.
type Interaction struct {
	From    *role.Role
	To      []role.Role
	MsgSig  MsgSig
	MsgCond *role.Role
	Cond    *expr.Expr
}

// ChoiceAttr is the payload of a Choice node.
type ChoiceAttr struct {
	At string
}

// RecurAttr is the payload of a Recur node.
type RecurAttr struct {
	Label string
}

// ContinueAttr is the payload of a Continue node.
type ContinueAttr struct {
	Label string
}

// ForAttr is the payload of a For node.
type ForAttr struct {
	Var   string
	Range *expr.Expr
}

// A Node is a single element of a protocol tree. At most one of the
// kind-specific payload fields is non-nil, selected by Kind (Root and
// Parallel carry none); the rest are nil, mirroring the original tagged union but expressed as a Go struct of
// optional pointers (the same shape the rest of this tree uses for every
// tagged variant, e.g. expr.Expr or a yang.Entry).
//
// A Node exclusively owns its Children: freeing a subtree frees all
// descendants (see Free). Marked is a cross-cutting diagnostic bit, set
// only by package compare, initially false on every node D allocates.
type Node struct {
	Kind Kind

	Interaction *Interaction // SendRecv, Send, Recv
	Choice      *ChoiceAttr  // Choice
	Recur       *RecurAttr   // Recur
	Continue    *ContinueAttr
	For         *ForAttr

	Children []*Node
	Marked   bool
}

// Leaf reports whether n's variant never carries children (Send/Recv/
// Continue are leaves; every other variant's Children holds its body).
func (n *Node) Leaf() bool {
	switch n.Kind {
	case KindSend, KindRecv, KindContinue:
		return true
	default:
		return false
	}
}
