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

// Package compare implements the async-permissive structural comparator:
// it decides whether a global protocol tree and a local (endpoint)
// projection of it denote the same protocol modulo legal asynchronous
// permutations within a recurrence body ("message overtaking"). On a
// mismatch it marks every offending node (see proto.Node.Marked) for
// diagnostic value rather than stopping at the first one, the same
// accumulate-and-report idiom pkg/proto's Validate uses.
package compare

import (
	"github.com/stsession/mpst/internal/xtrace"
	"github.com/stsession/mpst/pkg/expr"
	"github.com/stsession/mpst/pkg/proto"
	"github.com/stsession/mpst/pkg/role"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mpst.compare'.
func tracer() tracing.Trace {
	return xtrace.Select("compare")
}

// Equal reports whether g (the global or reference tree) and l (the
// projection or candidate tree) are structurally equivalent. Two empty
// trees are equal; an empty tree is never equal to a non-empty one.
func Equal(g, l *proto.Tree) bool {
	if g.Root == nil && l.Root == nil {
		return true
	}
	if g.Root == nil || l.Root == nil {
		return false
	}
	return Compare(g.Root, l.Root)
}

// Compare recursively compares a against b (compare_r in the reference
// walk): it post-compares the node's own payload, then, for a Recur
// node, delegates the whole body to the async-permissive scan; for
// every other kind it recurses pairwise over children in index order.
// It returns the overall verdict but keeps comparing the remaining
// siblings after a mismatch so that each of them can be marked; the
// children of a node whose own payload or shape mismatches are not
// compared.
func Compare(a, b *proto.Node) bool {
	ok := compareNode(a, b)

	if a.Kind == proto.KindRecur && b.Kind == proto.KindRecur {
		if !ok {
			return false
		}
		return compareAsync(a, b)
	}
	if !ok {
		return false
	}

	result := true
	for i := range a.Children {
		if !Compare(a.Children[i], b.Children[i]) {
			result = false
		}
	}
	return result
}

// compareNode holds iff a and b have the same Kind, the same number of
// children, and variant-specific payload equal per the table in the
// specification (msgsig, channel roles and their parameter expressions,
// choice discriminant, for-loop variable and range; Recur/Continue
// labels are ignored since generated names may differ). On mismatch it
// marks both a and b.
func compareNode(a, b *proto.Node) bool {
	ok := a.Kind == b.Kind && len(a.Children) == len(b.Children)

	if ok {
		switch a.Kind {
		case proto.KindRoot, proto.KindParallel, proto.KindRecur, proto.KindContinue:
			// no payload beyond structure (labels ignored for Recur/Continue)

		case proto.KindSendRecv:
			ia, ib := a.Interaction, b.Interaction
			ok = ia.MsgSig.Equal(ib.MsgSig) &&
				ia.From != nil && ib.From != nil &&
				roleEqual(*ia.From, *ib.From) &&
				rolesEqual(ia.To, ib.To)

		case proto.KindSend:
			ia, ib := a.Interaction, b.Interaction
			ok = ia.MsgSig.Equal(ib.MsgSig) && rolesEqual(ia.To, ib.To)

		case proto.KindRecv:
			ia, ib := a.Interaction, b.Interaction
			ok = ia.MsgSig.Equal(ib.MsgSig) &&
				ia.From != nil && ib.From != nil &&
				roleEqual(*ia.From, *ib.From)

		case proto.KindChoice:
			ok = a.Choice.At == b.Choice.At

		case proto.KindFor:
			ok = a.For.Var == b.For.Var && expr.Equal(a.For.Range, b.For.Range)
		}
	}

	if !ok {
		a.Marked = true
		b.Marked = true
	}
	return ok
}

func roleEqual(r1, r2 role.Role) bool {
	if r1.Name != r2.Name {
		return false
	}
	if r1.Parameterised() != r2.Parameterised() {
		return false
	}
	if r1.Parameterised() {
		return expr.Equal(r1.Param, r2.Param)
	}
	return true
}

func rolesEqual(rs1, rs2 []role.Role) bool {
	if len(rs1) != len(rs2) {
		return false
	}
	for i := range rs1 {
		if !roleEqual(rs1[i], rs2[i]) {
			return false
		}
	}
	return true
}

// channel outcomes for a single (a[i], b[j]) pairing during the
// async-permissive scan.
type scanOutcome int

const (
	outcomeSkip scanOutcome = iota
	outcomeMatch
	outcomeViolation
)

// compareAsync implements compare_async: a and b are both Recur nodes
// with equal child counts (guaranteed by the caller's compareNode
// check). It finds the first async segment of a's body, which starts at
// the first async-eligible child, matches its entries against b's
// same-range entries modulo legal channel reordering, then falls back to
// plain pairwise Compare for whatever follows the segment. Children that
// precede the segment are not compared.
func compareAsync(a, b *proto.Node) bool {
	if len(a.Children) != len(b.Children) {
		a.Marked = true
		b.Marked = true
		return false
	}

	from, to := asyncSegment(a.Children)

	visited := treeset.NewWithIntComparator()
	verdict := true

	for i := from; i < to; i++ {
		ai := a.Children[i]
		matched := false
		for j := from; j < to; j++ {
			if visited.Contains(j) {
				continue
			}
			bj := b.Children[j]
			switch channelOutcome(ai, bj) {
			case outcomeSkip:
				continue
			case outcomeMatch:
				visited.Add(j)
				matched = true
			case outcomeViolation:
				visited.Add(j)
				ai.Marked = true
				bj.Marked = true
				verdict = false
				matched = true
				tracer().Infof("compare: forbidden overtake on channel %q at segment index %d", channelOf(ai), i)
			}
			break
		}
		if !matched {
			ai.Marked = true
			verdict = false
		}
	}

	for i := to; i < len(a.Children); i++ {
		if !Compare(a.Children[i], b.Children[i]) {
			verdict = false
		}
	}
	return verdict
}

// asyncSegment identifies the single maximal run [from, to) of children
// that are plain (non-parameterised-peer) Send or Recv nodes. If
// children has no such node, it returns (0, 0): an empty segment, so
// the whole body falls through to ordinary pairwise comparison.
func asyncSegment(children []*proto.Node) (from, to int) {
	from = -1
	for i, c := range children {
		if isAsyncEligible(c) {
			from = i
			break
		}
	}
	if from == -1 {
		return 0, 0
	}
	to = from
	for i := from; i < len(children); i++ {
		if !isAsyncEligible(children[i]) {
			break
		}
		to = i + 1
	}
	return from, to
}

func isAsyncEligible(n *proto.Node) bool {
	switch n.Kind {
	case proto.KindSend:
		return len(n.Interaction.To) > 0 && !n.Interaction.To[0].Parameterised()
	case proto.KindRecv:
		return n.Interaction.From != nil && !n.Interaction.From.Parameterised()
	default:
		return false
	}
}

// channelOf returns the peer role name a Send or Recv node exchanges
// on: to[0] for Send, from for Recv.
func channelOf(n *proto.Node) string {
	switch n.Kind {
	case proto.KindSend:
		if len(n.Interaction.To) > 0 {
			return n.Interaction.To[0].Name
		}
	case proto.KindRecv:
		if n.Interaction.From != nil {
			return n.Interaction.From.Name
		}
	}
	return ""
}

// channelOutcome implements the channel ordering rules table: given
// ai from a's async segment and a candidate bj from b's, it decides
// whether bj is a legal match for ai, a forbidden same-channel
// reordering, or simply not on ai's channel (keep scanning).
func channelOutcome(ai, bj *proto.Node) scanOutcome {
	if channelOf(ai) != channelOf(bj) {
		return outcomeSkip
	}

	switch {
	case ai.Kind == proto.KindRecv && bj.Kind == proto.KindRecv:
		if ai.Interaction.MsgSig.Equal(bj.Interaction.MsgSig) {
			return outcomeMatch
		}
		return outcomeViolation

	case ai.Kind == proto.KindRecv && bj.Kind == proto.KindSend:
		// Same-channel Send may overtake a pending Recv.
		return outcomeSkip

	case ai.Kind == proto.KindSend && bj.Kind == proto.KindSend:
		if ai.Interaction.MsgSig.Equal(bj.Interaction.MsgSig) {
			return outcomeMatch
		}
		return outcomeViolation

	case ai.Kind == proto.KindSend && bj.Kind == proto.KindRecv:
		// Recv-send overtake forbidden on the same channel.
		return outcomeViolation

	default:
		return outcomeSkip
	}
}
