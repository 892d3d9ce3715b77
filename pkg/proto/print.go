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
	"fmt"
	"io"
	"strings"

	"github.com/stsession/mpst/pkg/expr"
	"github.com/stsession/mpst/pkg/indent"
	"github.com/stsession/mpst/pkg/role"
)

// Print writes a deterministic, human-readable dump of t to w: one line
// per node, indented by depth. This is a golden-file contract — tests
// depend on its exact byte output, so changes to the format below are
// changes to that contract.
func (t *Tree) Print(w io.Writer) {
	fmt.Fprintf(w, "Protocol: %s (%s)\n", t.Info.Name, t.Info.Kind)
	if t.Info.Kind != Global {
		fmt.Fprintf(w, "Endpoint role: %s\n", t.Info.MyRole)
	}
	fmt.Fprintf(w, "Roles: [")
	for i, r := range t.Info.Roles {
		if i > 0 {
			fmt.Fprint(w, " ")
		}
		fmt.Fprint(w, r.String())
	}
	fmt.Fprintln(w, "]")
	for _, im := range t.Info.Imports {
		fmt.Fprintf(w, "Import: { name: %s, as: %s, from: %s }\n", im.Name, im.As, im.From)
	}
	if t.Root == nil {
		fmt.Fprintln(w, "Protocol tree is empty")
		return
	}
	printNodeR(w, w, t.Root, 0)
}

// printNodeR writes n and its descendants. root is the unwrapped sink the
// "depth + marker" column is always written to, flush left, regardless of
// nesting; iw is an indent.Writer accumulated one "  " layer per level
// (the same nested-wrap-per-recursion pattern the teacher's own
// Entry.Print uses for its sub-entries, e.g. `e.Dir[k].Print(indent.
// NewWriter(w, "  "))`), used only for the record's two-spaces-per-depth
// prefix.
func printNodeR(root, iw io.Writer, n *Node, depth int) {
	printNode(root, iw, n, depth)
	childIW := indent.NewWriter(iw, "  ")
	for _, c := range n.Children {
		printNodeR(root, childIW, c, depth+1)
	}
}

func printNode(root, iw io.Writer, n *Node, depth int) {
	marker := " | "
	if n.Marked {
		marker = " *>"
	}
	fmt.Fprintf(root, "%3d%s", depth, marker)
	fmt.Fprintf(iw, "%s\n", recordOf(n))
}

func recordOf(n *Node) string {
	switch n.Kind {
	case KindRoot:
		return "Node { type: root }"
	case KindSendRecv:
		ia := n.Interaction
		return fmt.Sprintf("Node { type: interaction, from: %s, to(%d): [%s], msgsig: %s }",
			ia.From.String(), len(ia.To), joinRoles(ia.To), ia.MsgSig)
	case KindSend:
		ia := n.Interaction
		return fmt.Sprintf("Node { type: send, to(%d): [%s], msgsig: %s }",
			len(ia.To), joinRoles(ia.To), ia.MsgSig)
	case KindRecv:
		ia := n.Interaction
		return fmt.Sprintf("Node { type: recv, from: %s, msgsig: %s }", ia.From.String(), ia.MsgSig)
	case KindChoice:
		return fmt.Sprintf("Node { type: choice, at: %s }", n.Choice.At)
	case KindParallel:
		return "Node { type: par }"
	case KindRecur:
		return fmt.Sprintf("Node { type: recur, label: %s }", n.Recur.Label)
	case KindContinue:
		return fmt.Sprintf("Node { type: continue, label: %s }", n.Continue.Label)
	case KindFor:
		return fmt.Sprintf("Node { type: for, var: %s, range: %s }", n.For.Var, expr.Print(n.For.Range))
	default:
		return fmt.Sprintf("Node { type: unknown-%d }", n.Kind)
	}
}

func joinRoles(rs []role.Role) string {
	parts := make([]string, len(rs))
	for i, r := range rs {
		parts[i] = r.String()
	}
	return strings.Join(parts, ", ")
}
