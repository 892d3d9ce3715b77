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

package endpoint

import (
	"context"
	"fmt"
)

// A group is the shared hub a set of GroupRoles fan in and out
// through: one inbound data channel per member, one shared channel
// carrying barrier phase-1 ("S1") arrivals, and one phase-2 ("S2")
// release channel per member. Building it once and handing each member
// its own GroupRole is the in-process analogue of every participant
// subscribing to the same pub/sub topic.
type group struct {
	members []string
	in      map[string]chan []int
	s1      chan struct{}
	release map[string]chan struct{}
}

// A GroupRole is one member's view of a fan-out/fan-in participant
// group: SendInt/SendInts broadcast to every other member; RecvInt/
// RecvInts read this member's own inbound queue.
type GroupRole struct {
	name string
	g    *group
}

// NewGroup returns one GroupRole per name in members, all wired to the
// same hub. buf sets each member's inbound queue depth.
func NewGroup(members []string, buf int) map[string]*GroupRole {
	g := &group{
		members: append([]string(nil), members...),
		in:      make(map[string]chan []int, len(members)),
		s1:      make(chan struct{}, len(members)),
		release: make(map[string]chan struct{}, len(members)),
	}
	for _, m := range members {
		g.in[m] = make(chan []int, buf)
		g.release[m] = make(chan struct{}, 1)
	}

	roles := make(map[string]*GroupRole, len(members))
	for _, m := range members {
		roles[m] = &GroupRole{name: m, g: g}
	}
	return roles
}

// Name returns this role's own member name within the group.
func (r *GroupRole) Name() string { return r.name }

// SendInt implements Handle: it broadcasts v to every other member.
func (r *GroupRole) SendInt(ctx context.Context, v int) error {
	return r.SendInts(ctx, []int{v})
}

// SendInts implements Handle: it broadcasts buf to every other member
// of the group, in member order. It keeps sending to the rest even
// after a context cancellation on one member's channel, mirroring the
// original's "accumulate every failure, don't stop at the first" send
// loop (vsend_int's `rc |= ...`).
func (r *GroupRole) SendInts(ctx context.Context, buf []int) error {
	msg := append([]int(nil), buf...)
	var firstErr error
	for _, m := range r.g.members {
		if m == r.name {
			continue
		}
		select {
		case r.g.in[m] <- msg:
		case <-ctx.Done():
			if firstErr == nil {
				firstErr = ctx.Err()
			}
		}
	}
	return firstErr
}

// RecvInt implements Handle.
func (r *GroupRole) RecvInt(ctx context.Context) (int, error) {
	vals, _, err := r.RecvInts(ctx, 1)
	if err != nil {
		return 0, err
	}
	if len(vals) == 0 {
		return 0, ErrEmptyMessage
	}
	return vals[0], nil
}

// RecvInts implements Handle.
func (r *GroupRole) RecvInts(ctx context.Context, max int) (vals []int, truncated bool, err error) {
	select {
	case msg := <-r.g.in[r.name]:
		if len(msg) > max {
			return append([]int(nil), msg[:max]...), true, nil
		}
		return append([]int(nil), msg...), false, nil
	case <-ctx.Done():
		return nil, false, ctx.Err()
	}
}

// VSendInt sends v to every handle in rs, continuing past a failure on
// any one of them and returning the first error encountered (if any),
// the same accumulate-and-continue behaviour as SendInts' broadcast.
func VSendInt(ctx context.Context, v int, rs ...Handle) error {
	var firstErr error
	for _, r := range rs {
		if err := r.SendInt(ctx, v); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Barrier implements the two-phase group synchronisation: every
// non-coordinator member sends a phase-1 signal then waits for the
// coordinator's phase-2 release; the coordinator waits for one
// phase-1 signal per other member, then releases everyone. Unlike the
// ZeroMQ-socket original, there is no subscription filter to install
// and later reset around the two phases: each phase already has its
// own dedicated channel, so there is no window in which a stray
// message on the wrong "topic" could be misread.
func Barrier(ctx context.Context, g *GroupRole, coordinator string) error {
	if g.name == coordinator {
		want := 0
		for _, m := range g.g.members {
			if m != coordinator {
				want++
			}
		}
		for i := 0; i < want; i++ {
			select {
			case <-g.g.s1:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		for _, m := range g.g.members {
			if m == coordinator {
				continue
			}
			select {
			case g.g.release[m] <- struct{}{}:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	}

	if _, ok := g.g.release[coordinator]; !ok {
		return fmt.Errorf("endpoint: barrier coordinator %q is not a member of this group", coordinator)
	}

	select {
	case g.g.s1 <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-g.g.release[g.name]:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
