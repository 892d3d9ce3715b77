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

import "context"

// A P2PRole is a single-peer role handle: everything sent through it
// arrives, in order, at the peer's matching P2PRole.
type P2PRole struct {
	peer string
	send chan<- []int
	recv <-chan []int
}

// NewP2PPair returns two P2PRoles wired to each other: the first is a's
// endpoint of the pipe, whose peer is b; the second is b's endpoint,
// whose peer is a. buf sets how many pending messages either
// direction can queue before Send blocks.
func NewP2PPair(a, b string, buf int) (*P2PRole, *P2PRole) {
	aToB := make(chan []int, buf)
	bToA := make(chan []int, buf)
	return &P2PRole{peer: b, send: aToB, recv: bToA},
		&P2PRole{peer: a, send: bToA, recv: aToB}
}

// Peer returns the name of the role on the other end of the pipe.
func (p *P2PRole) Peer() string { return p.peer }

// SendInt implements Handle.
func (p *P2PRole) SendInt(ctx context.Context, v int) error {
	return p.SendInts(ctx, []int{v})
}

// SendInts implements Handle.
func (p *P2PRole) SendInts(ctx context.Context, buf []int) error {
	msg := append([]int(nil), buf...)
	select {
	case p.send <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RecvInt implements Handle.
func (p *P2PRole) RecvInt(ctx context.Context) (int, error) {
	vals, _, err := p.RecvInts(ctx, 1)
	if err != nil {
		return 0, err
	}
	if len(vals) == 0 {
		return 0, ErrEmptyMessage
	}
	return vals[0], nil
}

// RecvInts implements Handle. max is the receive capacity and comes
// directly from the caller (RecvInt passes 1): there is no uninitialised
// intermediate count the way the original recv_int left the count it
// passed to recv_int_array unset, so a truncating receive can never
// return more than max values. The returned slice holds only the values
// received; its capacity is not tied to max.
func (p *P2PRole) RecvInts(ctx context.Context, max int) (vals []int, truncated bool, err error) {
	select {
	case msg := <-p.recv:
		if len(msg) > max {
			tracer().Infof("recv from %s: truncated %d values to %d", p.peer, len(msg), max)
			return append([]int(nil), msg[:max]...), true, nil
		}
		return append([]int(nil), msg...), false, nil
	case <-ctx.Done():
		tracer().Errorf("recv from %s: %s", p.peer, ctx.Err())
		return nil, false, ctx.Err()
	}
}
