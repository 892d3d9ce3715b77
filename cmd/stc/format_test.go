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

package main

import (
	"bytes"
	"testing"

	"github.com/kylelemons/godebug/pretty"
)

// TestRenderRawGolden pins the "raw" formatter's exact byte output for
// the smallest demo descriptor, the same pretty.Compare-against-a-golden-
// string idiom used for marshalled output elsewhere in this codebase's
// test style.
func TestRenderRawGolden(t *testing.T) {
	tree, err := (demoLoader{}).Load("pi-worker-local")
	if err != nil {
		t.Fatal(err)
	}

	var b bytes.Buffer
	renderRaw(&b, tree)

	want := `Protocol: Pi (Local)
Endpoint role: Worker0
Roles: [Master Worker0]
  0 | Node { type: root }
  1 |   Node { type: recur, label: L }
  2 |     Node { type: recv, from: Master, msgsig: { op: , payload: seed } }
  2 |     Node { type: recur, label: inner }
  3 |       Node { type: send, to(1): [Master], msgsig: { op: , payload: sample } }
`

	if diff := pretty.Compare(b.String(), want); diff != "" {
		t.Errorf("renderRaw(pi-worker-local) did not match golden output, diff(-got,+want):\n%s", diff)
	}
}
