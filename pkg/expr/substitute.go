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

// Substitute recursively replaces every Var(name) subtree of e with
// Const(value). No evaluation is performed; arithmetic nodes that become
// fully constant as a result of the substitution are left unfolded until a
// caller runs Evaluate. Substitute returns the (possibly new) root: if e
// itself is the matching variable, the returned value is a fresh constant
// and the original node is discarded.
func Substitute(e *Expr, name string, value int64) *Expr {
	if e == nil {
		return nil
	}
	switch e.Kind {
	case KindVar:
		if e.Name == name {
			return Const(value)
		}
		return e
	case KindBin:
		e.L = Substitute(e.L, name, value)
		e.R = Substitute(e.R, name, value)
		return e
	default:
		return e
	}
}
