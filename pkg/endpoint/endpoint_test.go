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
	"sync"
	"testing"
	"time"
)

func TestP2PRoundTrip(t *testing.T) {
	ctx := context.Background()
	a, b := NewP2PPair("A", "B", 1)

	go func() {
		if err := a.SendInt(ctx, 42); err != nil {
			t.Errorf("SendInt: %v", err)
		}
	}()

	v, err := b.RecvInt(ctx)
	if err != nil {
		t.Fatalf("RecvInt: %v", err)
	}
	if v != 42 {
		t.Errorf("RecvInt = %d, want 42", v)
	}
}

func TestP2PTruncation(t *testing.T) {
	ctx := context.Background()
	a, b := NewP2PPair("A", "B", 1)

	go a.SendInts(ctx, []int{1, 2, 3, 4})

	vals, truncated, err := b.RecvInts(ctx, 2)
	if err != nil {
		t.Fatalf("RecvInts: %v", err)
	}
	if !truncated {
		t.Error("RecvInts did not report truncation for an oversized payload")
	}
	if len(vals) != 2 || vals[0] != 1 || vals[1] != 2 {
		t.Errorf("RecvInts = %v, want [1 2]", vals)
	}
}

func TestP2PRecvIntsSeedsCapacityFromMax(t *testing.T) {
	ctx := context.Background()
	a, b := NewP2PPair("A", "B", 1)

	go a.SendInts(ctx, []int{7})

	vals, truncated, err := b.RecvInts(ctx, 5)
	if err != nil {
		t.Fatalf("RecvInts: %v", err)
	}
	if truncated {
		t.Error("RecvInts reported truncation for an undersized payload")
	}
	if len(vals) != 1 || vals[0] != 7 {
		t.Errorf("RecvInts = %v, want [7]", vals)
	}
}

func TestP2PContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, b := NewP2PPair("A", "B", 0)
	if _, err := b.RecvInt(ctx); err != context.Canceled {
		t.Errorf("RecvInt after cancel = %v, want context.Canceled", err)
	}
}

func TestVSendIntBroadcastsToAllHandles(t *testing.T) {
	ctx := context.Background()
	a1, b1 := NewP2PPair("A", "B1", 1)
	a2, b2 := NewP2PPair("A", "B2", 1)

	if err := VSendInt(ctx, 9, a1, a2); err != nil {
		t.Fatalf("VSendInt: %v", err)
	}

	v1, err := b1.RecvInt(ctx)
	if err != nil || v1 != 9 {
		t.Errorf("b1.RecvInt = %d, %v, want 9, nil", v1, err)
	}
	v2, err := b2.RecvInt(ctx)
	if err != nil || v2 != 9 {
		t.Errorf("b2.RecvInt = %d, %v, want 9, nil", v2, err)
	}
}

func TestGroupBarrierRoundTrip(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	roles := NewGroup([]string{"Master", "W0", "W1", "W2"}, 4)

	var wg sync.WaitGroup
	errs := make([]error, 4)
	names := []string{"Master", "W0", "W1", "W2"}
	for i, name := range names {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			errs[i] = Barrier(ctx, roles[name], "Master")
		}(i, name)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Errorf("Barrier for %s: %v", names[i], err)
		}
	}
}

func TestGroupSendRecv(t *testing.T) {
	ctx := context.Background()
	roles := NewGroup([]string{"Master", "W0", "W1"}, 4)

	if err := roles["Master"].SendInt(ctx, 5); err != nil {
		t.Fatalf("SendInt: %v", err)
	}

	v0, err := roles["W0"].RecvInt(ctx)
	if err != nil || v0 != 5 {
		t.Errorf("W0.RecvInt = %d, %v, want 5, nil", v0, err)
	}
	v1, err := roles["W1"].RecvInt(ctx)
	if err != nil || v1 != 5 {
		t.Errorf("W1.RecvInt = %d, %v, want 5, nil", v1, err)
	}
}
