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

// Package role implements the named-participant model: a Role is a
// protocol participant, optionally parameterised by an index expression to
// denote a family of participants (e.g. Worker[i]).
package role

import "github.com/stsession/mpst/pkg/expr"

// A Role is a named participant, optionally parameterised by an index
// expression. Two roles are channel-identical iff their names are equal;
// parameter expressions are ignored for that purpose but retained for
// diagnostics (they are evaluated lazily, only when the owning node is
// printed or compared).
type Role struct {
	Name  string
	Param *expr.Expr
}

// New returns a Role named name, parameterised by param (nil if the role
// is not a family).
func New(name string, param *expr.Expr) Role {
	return Role{Name: name, Param: param}
}

// SameChannel reports whether r and other denote the same channel, i.e.
// whether they carry the same role name. Parameter expressions play no
// part in this decision.
func (r Role) SameChannel(other Role) bool {
	return r.Name == other.Name
}

// Parameterised reports whether r is a family of roles rather than a
// single participant.
func (r Role) Parameterised() bool {
	return r.Param != nil
}

// String renders r as "name" or, when parameterised, "name[expr]".
func (r Role) String() string {
	if r.Param == nil {
		return r.Name
	}
	return r.Name + "[" + expr.Print(r.Param) + "]"
}
