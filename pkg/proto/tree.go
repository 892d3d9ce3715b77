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

import "github.com/stsession/mpst/pkg/role"

// A ProtocolKind distinguishes a global protocol from a projected endpoint
// view of one.
type ProtocolKind int

// The kinds of protocol a Tree can represent.
const (
	_ ProtocolKind = iota
	Global
	Local
	ParametrisedLocal
)

func (k ProtocolKind) String() string {
	switch k {
	case Global:
		return "Global"
	case Local:
		return "Local"
	case ParametrisedLocal:
		return "ParametrisedLocal"
	default:
		return "unknown"
	}
}

// An Import records a single `import` declaration: module Name, aliased As
// (empty if not aliased), From the given source. The core never interprets
// these; they are retained for diagnostics and round-tripping.
type Import struct {
	Name string
	As   string
	From string
}

// Info is the metadata that decorates a Tree as a whole: its declared
// name, whether it is a global or local (endpoint) protocol, the
// owning endpoint's role name (meaningful only when Kind != Global), its
// ordered, named participant list, and its imports.
type Info struct {
	Name    string
	Kind    ProtocolKind
	MyRole  string
	Roles   []role.Role
	Imports []Import
}

// A Tree is a complete protocol: its Info metadata plus the root Node of
// its body. Info is owned by the Tree; Root (and everything it owns) is
// freed along with it.
type Tree struct {
	Info *Info
	Root *Node
}

// NewTree returns an empty Tree with initialised (zero-role, zero-import)
// metadata and no root, mirroring st_tree_init.
func NewTree() *Tree {
	return &Tree{Info: &Info{}}
}

// SetName sets the protocol's declared name.
func (t *Tree) SetName(name string) *Tree {
	t.Info.Name = name
	return t
}

// SetKind sets whether t is a global protocol or an endpoint projection.
func (t *Tree) SetKind(k ProtocolKind) *Tree {
	t.Info.Kind = k
	return t
}

// SetMyRole sets the endpoint role name. Required when Kind != Global.
func (t *Tree) SetMyRole(name string) *Tree {
	t.Info.MyRole = name
	return t
}

// AddRole appends r to the tree's ordered role list. Duplicate names are
// permitted here (construction is not where that invariant is enforced);
// see Validate, which reports a duplicate as an invariant violation.
// Package compare does not read the role list.
func (t *Tree) AddRole(r role.Role) *Tree {
	t.Info.Roles = append(t.Info.Roles, r)
	return t
}

// AddImport appends im to the tree's import list.
func (t *Tree) AddImport(im Import) *Tree {
	t.Info.Imports = append(t.Info.Imports, im)
	return t
}

// SetRoot attaches n as the tree's top-level body.
func (t *Tree) SetRoot(n *Node) *Tree {
	t.Root = n
	return t
}

// HasRole reports whether name appears in t's role list.
func (t *Tree) HasRole(name string) bool {
	for _, r := range t.Info.Roles {
		if r.Name == name {
			return true
		}
	}
	return false
}
