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

	"github.com/npillmayer/schuko/tracing"
	"github.com/stsession/mpst/internal/xtrace"
)

// tracer traces with key 'mpst.proto'.
func tracer() tracing.Trace {
	return xtrace.Select("proto")
}

// Validate walks t and reports every invariant violation it can find,
// rather than stopping at the first one — the same error-accumulation
// idiom the teacher's Entry.GetErrors uses, so a caller gets a full
// diagnostic batch instead of fixing one mistake at a time. An empty
// result means t is well-formed with respect to:
//
//   - every Continue(L) is dominated by an enclosing Recur(L);
//   - every role name referenced by a node appears in t.Info.Roles;
//   - t.Info.Roles contains no duplicate names;
//   - SendRecv only appears in a Global tree, and Send/Recv only in a
//     Local or ParametrisedLocal one (SendRecv is the global-kind form;
//     projection decomposes it into Send/Recv).
func (t *Tree) Validate() []error {
	var errs []error

	if t.Info == nil {
		return []error{fmt.Errorf("proto: tree has no metadata")}
	}

	seen := map[string]bool{}
	for _, r := range t.Info.Roles {
		if seen[r.Name] {
			errs = append(errs, fmt.Errorf("proto: duplicate role name %q", r.Name))
		}
		seen[r.Name] = true
	}

	if t.Root != nil {
		errs = append(errs, validateNode(t, t.Root, nil)...)
	}

	if len(errs) > 0 {
		tracer().Infof("validate: tree %q failed with %d error(s)", t.Info.Name, len(errs))
	}
	return errs
}

func validateNode(t *Tree, n *Node, recurLabels []string) []error {
	var errs []error

	switch n.Kind {
	case KindSendRecv:
		if t.Info.Kind != Global {
			errs = append(errs, fmt.Errorf("proto: interaction (SendRecv) node found in non-Global tree %q", t.Info.Name))
		}
		errs = append(errs, checkInteractionRoles(t, n.Interaction)...)
	case KindSend, KindRecv:
		if t.Info.Kind == Global {
			errs = append(errs, fmt.Errorf("proto: send/recv node found in Global tree %q; expected interaction", t.Info.Name))
		}
		errs = append(errs, checkInteractionRoles(t, n.Interaction)...)
	case KindContinue:
		label := n.Continue.Label
		dominated := false
		for _, l := range recurLabels {
			if l == label {
				dominated = true
				break
			}
		}
		if !dominated {
			errs = append(errs, fmt.Errorf("proto: continue %q is not dominated by an enclosing recur with the same label", label))
		}
	}

	childLabels := recurLabels
	if n.Kind == KindRecur {
		childLabels = append(append([]string{}, recurLabels...), n.Recur.Label)
	}
	for _, c := range n.Children {
		errs = append(errs, validateNode(t, c, childLabels)...)
	}
	return errs
}

func checkInteractionRoles(t *Tree, ia *Interaction) []error {
	var errs []error
	if ia == nil {
		return errs
	}
	if ia.From != nil && !t.HasRole(ia.From.Name) {
		errs = append(errs, fmt.Errorf("proto: role %q referenced but not declared", ia.From.Name))
	}
	for _, r := range ia.To {
		if !t.HasRole(r.Name) {
			errs = append(errs, fmt.Errorf("proto: role %q referenced but not declared", r.Name))
		}
	}
	if ia.MsgCond != nil && !t.HasRole(ia.MsgCond.Name) {
		errs = append(errs, fmt.Errorf("proto: role %q referenced but not declared", ia.MsgCond.Name))
	}
	return errs
}
