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

// Simplify applies structural simplification rules to e and returns the
// possibly-new root; callers must use the returned value, since the rule
// below replaces the root itself and discards the wrapper that used to own
// it.
//
// Currently implemented rule:
//
//	Range(Var(n), Var(n)) -> Var(n)
//
// Children are simplified first, so the rule also fires on nested ranges.
// Additional structural rules can be added to this function as new cases.
func Simplify(e *Expr) *Expr {
	if e == nil {
		return nil
	}
	if e.Kind == KindBin {
		e.L = Simplify(e.L)
		e.R = Simplify(e.R)
		if e.Op == RangeOp && e.L != nil && e.R != nil &&
			e.L.Kind == KindVar && e.R.Kind == KindVar && e.L.Name == e.R.Name {
			return Var(e.L.Name)
		}
	}
	return e
}
