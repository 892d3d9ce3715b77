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

package main

import (
	"fmt"

	"github.com/stsession/mpst/pkg/proto"
	"github.com/stsession/mpst/pkg/role"
)

// A Loader resolves a small descriptor string (the analogue of the
// "SOURCE" argument goyang resolves to a *yang.Entry tree) to a protocol
// tree. The core package never implements this: it is a boundary
// concern of whatever reads protocols into the engine, here a
// demonstration registry rather than a real file or network source.
type Loader interface {
	Load(descriptor string) (*proto.Tree, error)
}

// demoLoader resolves a fixed set of built-in descriptors, each built
// directly with pkg/proto's builder API rather than parsed from text:
// there is no mandated on-disk protocol format (§6), so the trivial
// loader skips inventing one.
type demoLoader struct{}

func (demoLoader) Load(descriptor string) (*proto.Tree, error) {
	build, ok := demoProtocols[descriptor]
	if !ok {
		return nil, fmt.Errorf("stc: unknown descriptor %q (known: %s)", descriptor, knownDescriptors())
	}
	return build(), nil
}

func knownDescriptors() string {
	s := ""
	for k := range demoProtocols {
		if s != "" {
			s += ", "
		}
		s += k
	}
	return s
}

var demoProtocols = map[string]func() *proto.Tree{
	"pi-global":               piGlobal,
	"pi-master-local":         piMasterLocal,
	"pi-master-local-reorder": piMasterLocalReordered,
	"pi-worker-local":         piWorkerLocal,
}

// sig builds a message signature carrying just a payload description;
// the demo protocols never need a parametrised channel condition.
func sig(payload string) proto.MsgSig { return proto.MsgSig{Payload: payload} }

// piGlobal is the Monte Carlo Pi estimation protocol, at global scope:
// a master seeds every worker, then a recurrence collects one sample
// back from each before converging.
func piGlobal() *proto.Tree {
	master := role.New("Master", nil)
	w0 := role.New("Worker0", nil)
	w1 := role.New("Worker1", nil)

	seed := proto.NewRecur("L")
	seed.Append(proto.NewSendRecv(master, []role.Role{w0}, sig("seed"), nil, nil))
	seed.Append(proto.NewSendRecv(master, []role.Role{w1}, sig("seed"), nil, nil))

	sample := proto.NewRecur("inner")
	sample.Append(proto.NewSendRecv(w0, []role.Role{master}, sig("sample"), nil, nil))
	sample.Append(proto.NewSendRecv(w1, []role.Role{master}, sig("sample"), nil, nil))
	seed.Append(sample)

	root := proto.NewRoot()
	root.Append(seed)

	t := proto.NewTree().SetName("Pi").SetKind(proto.Global)
	t.AddRole(master).AddRole(w0).AddRole(w1)
	t.SetRoot(root)
	return t
}

// piMasterLocal is Master's own endpoint projection of piGlobal: it
// sends a seed to each worker, then receives one sample back from each.
func piMasterLocal() *proto.Tree {
	master := role.New("Master", nil)
	w0 := role.New("Worker0", nil)
	w1 := role.New("Worker1", nil)

	inner := proto.NewRecur("inner")
	inner.Append(proto.NewRecv(w0, sig("sample"), nil, nil))
	inner.Append(proto.NewRecv(w1, sig("sample"), nil, nil))

	outer := proto.NewRecur("L")
	outer.Append(proto.NewSend([]role.Role{w0}, sig("seed"), nil, nil))
	outer.Append(proto.NewSend([]role.Role{w1}, sig("seed"), nil, nil))
	outer.Append(inner)

	root := proto.NewRoot()
	root.Append(outer)

	t := proto.NewTree().SetName("Pi").SetKind(proto.Local).SetMyRole("Master")
	t.AddRole(master).AddRole(w0).AddRole(w1)
	t.SetRoot(root)
	return t
}

// piMasterLocalReordered is piMasterLocal with its inner recurrence's
// two Recv children swapped: since Worker0's and Worker1's samples
// arrive on distinct channels, the async-permissive comparator treats
// this as the same protocol as piMasterLocal.
func piMasterLocalReordered() *proto.Tree {
	master := role.New("Master", nil)
	w0 := role.New("Worker0", nil)
	w1 := role.New("Worker1", nil)

	inner := proto.NewRecur("inner")
	inner.Append(proto.NewRecv(w1, sig("sample"), nil, nil))
	inner.Append(proto.NewRecv(w0, sig("sample"), nil, nil))

	outer := proto.NewRecur("L")
	outer.Append(proto.NewSend([]role.Role{w0}, sig("seed"), nil, nil))
	outer.Append(proto.NewSend([]role.Role{w1}, sig("seed"), nil, nil))
	outer.Append(inner)

	root := proto.NewRoot()
	root.Append(outer)

	t := proto.NewTree().SetName("Pi").SetKind(proto.Local).SetMyRole("Master")
	t.AddRole(master).AddRole(w0).AddRole(w1)
	t.SetRoot(root)
	return t
}

// piWorkerLocal is Worker0's endpoint projection: receive a seed, send
// back one sample, per recurrence.
func piWorkerLocal() *proto.Tree {
	master := role.New("Master", nil)
	w0 := role.New("Worker0", nil)

	outer := proto.NewRecur("L")
	outer.Append(proto.NewRecv(master, sig("seed"), nil, nil))
	inner := proto.NewRecur("inner")
	inner.Append(proto.NewSend([]role.Role{master}, sig("sample"), nil, nil))
	outer.Append(inner)

	root := proto.NewRoot()
	root.Append(outer)

	t := proto.NewTree().SetName("Pi").SetKind(proto.Local).SetMyRole("Worker0")
	t.AddRole(master).AddRole(w0)
	t.SetRoot(root)
	return t
}
