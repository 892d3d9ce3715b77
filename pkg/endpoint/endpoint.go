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

// Package endpoint is the boundary façade a running participant uses to
// exchange the integers a protocol tree describes: point-to-point roles
// (a single peer) and group roles (fan-out send, fan-in receive, with a
// two-phase barrier). There is no message broker anywhere in this
// module's dependency surface, so the façade is built directly on Go
// channels and context.Context — the same "select on a channel or
// ctx.Done()" shape the rest of the ecosystem's networking code uses at
// its lowest layer.
package endpoint

import (
	"context"
	"errors"

	"github.com/npillmayer/schuko/tracing"
	"github.com/stsession/mpst/internal/xtrace"
)

// tracer traces with key 'mpst.endpoint'.
func tracer() tracing.Trace {
	return xtrace.Select("endpoint")
}

// ErrEmptyMessage is returned by RecvInt when the peer sent a
// zero-length payload.
var ErrEmptyMessage = errors.New("endpoint: received empty message")

// A Handle is a role endpoint a running participant sends to or
// receives from. P2PRole and GroupRole both implement it.
type Handle interface {
	// SendInt sends a single integer.
	SendInt(ctx context.Context, v int) error

	// SendInts sends an integer array in one message.
	SendInts(ctx context.Context, buf []int) error

	// RecvInt receives a single integer.
	RecvInt(ctx context.Context) (int, error)

	// RecvInts receives an integer array into a buffer of capacity max.
	// If the sender's payload has more than max elements, the result is
	// truncated to the first max and truncated is reported true.
	RecvInts(ctx context.Context, max int) (vals []int, truncated bool, err error)
}
