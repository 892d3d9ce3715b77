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
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/stsession/mpst/pkg/expr"
	"github.com/stsession/mpst/pkg/role"
)

func intSig() MsgSig { return MsgSig{Payload: "int"} }

// piMaster builds the global Pi protocol from the seed scenario in §8 of
// the specification: Master sends a seed to each worker, then loops
// receiving one sample from each.
func piMaster() *Tree {
	master := role.New("Master", nil)
	w0 := role.New("Worker0", nil)
	w1 := role.New("Worker1", nil)

	inner := NewRecur("inner")
	inner.Append(NewSendRecv(w0, []role.Role{master}, intSig(), nil, nil))
	inner.Append(NewSendRecv(w1, []role.Role{master}, intSig(), nil, nil))

	outer := NewRecur("L")
	outer.Append(NewSendRecv(master, []role.Role{w0}, intSig(), nil, nil))
	outer.Append(NewSendRecv(master, []role.Role{w1}, intSig(), nil, nil))
	outer.Append(inner)

	root := NewRoot()
	root.Append(outer)

	t := NewTree().SetName("Pi").SetKind(Global)
	t.AddRole(master).AddRole(w0).AddRole(w1)
	t.SetRoot(root)
	return t
}

func TestValidateWellFormedTree(t *testing.T) {
	tree := piMaster()
	if errs := tree.Validate(); len(errs) != 0 {
		t.Fatalf("Validate() = %v, want no errors", errs)
	}
}

func TestValidateUndeclaredRole(t *testing.T) {
	tree := NewTree().SetName("Bad").SetKind(Global)
	m := role.New("Master", nil)
	tree.AddRole(m)
	root := NewRoot()
	root.Append(NewSendRecv(m, []role.Role{role.New("Ghost", nil)}, intSig(), nil, nil))
	tree.SetRoot(root)

	errs := tree.Validate()
	if len(errs) == 0 {
		t.Fatal("Validate() = no errors, want undeclared-role error")
	}
}

func TestValidateContinueWithoutRecur(t *testing.T) {
	tree := NewTree().SetName("Bad").SetKind(Global)
	root := NewRoot()
	root.Append(NewContinue("L"))
	tree.SetRoot(root)

	errs := tree.Validate()
	if len(errs) == 0 {
		t.Fatal("Validate() = no errors, want undominated-continue error")
	}
}

func TestValidateDuplicateRole(t *testing.T) {
	tree := NewTree().SetName("Bad").SetKind(Global)
	tree.AddRole(role.New("Master", nil)).AddRole(role.New("Master", nil))
	tree.SetRoot(NewRoot())

	errs := tree.Validate()
	if len(errs) == 0 {
		t.Fatal("Validate() = no errors, want duplicate-role error")
	}
}

func TestPrintDeterministic(t *testing.T) {
	var b1, b2 bytes.Buffer
	piMaster().Print(&b1)
	piMaster().Print(&b2)
	if b1.String() != b2.String() {
		t.Errorf("Print is not deterministic across structurally equal trees:\n%s\nvs\n%s", b1.String(), b2.String())
	}
	if !strings.Contains(b1.String(), "Node { type: recur, label: L }") {
		t.Errorf("Print output missing expected recur record:\n%s", b1.String())
	}
}

func TestFreeIsTotal(t *testing.T) {
	tree := piMaster()
	var nodes []*Node
	var collect func(*Node)
	collect = func(n *Node) {
		nodes = append(nodes, n)
		for _, c := range n.Children {
			collect(c)
		}
	}
	collect(tree.Root)

	FreeTree(tree)
	if tree.Root != nil {
		t.Errorf("FreeTree left Root non-nil")
	}
	if len(nodes) == 0 {
		t.Fatal("test bug: walked zero nodes")
	}
	for i, n := range nodes {
		if n.Children != nil || n.Interaction != nil || n.Recur != nil {
			t.Errorf("node %d (%s) was not freed by FreeTree", i, n.Kind)
		}
	}
}

// TestAddRolePreservesOrderAndParams exercises AddRole's ordering
// guarantee with go-cmp rather than a field-by-field walk, the same
// cmp.Diff-over-structs idiom this codebase's teacher uses for its own
// record comparisons. cmpopts.EquateComparable treats two role.Role
// values as equal via == (safe here: Param is either nil or a leaf
// expr.Expr) instead of recursing into Expr's unexported-free but
// still pointer-shaped fields.
func TestAddRolePreservesOrderAndParams(t *testing.T) {
	tree := NewTree().SetName("Family").SetKind(Global)
	master := role.New("Master", nil)
	worker := role.New("Worker", expr.Const(2))
	tree.AddRole(master).AddRole(worker)

	want := []role.Role{master, worker}
	if diff := cmp.Diff(want, tree.Info.Roles, cmpopts.EquateComparable(role.Role{})); diff != "" {
		t.Errorf("Info.Roles diff (-want +got):\n%s", diff)
	}
}
