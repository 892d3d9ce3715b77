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

// Package indent inserts a prefix at the start of every line written
// through it. It is used by pkg/proto's Print to indent nested protocol
// tree output without having to pre-render whole subtrees as strings.
package indent

import "io"

// Writer indents every line written to it with a fixed prefix. A line is
// everything up to and including a '\n'; a trailing partial line (no
// final newline) is prefixed too.
type Writer struct {
	w          io.Writer
	prefix     []byte
	needPrefix bool
}

// NewWriter returns a Writer that inserts prefix at the start of w and
// after every newline written to it.
func NewWriter(w io.Writer, prefix string) *Writer {
	return &Writer{w: w, prefix: []byte(prefix), needPrefix: true}
}

// Write implements io.Writer. Each call assembles the fully-prefixed form
// of p and issues a single underlying Write. If the underlying Write
// reports fewer bytes accepted than were offered, n is translated back
// into the count of leading bytes of p that are fully accounted for by
// the accepted prefixed bytes — never more than was actually flushed.
func (iw *Writer) Write(p []byte) (n int, err error) {
	out := make([]byte, 0, len(p)+len(iw.prefix)*4)
	// counted[k] is the number of bytes of p represented by out[:k].
	counted := make([]int, 0, cap(out)+1)
	counted = append(counted, 0)

	needPrefix := iw.needPrefix
	for i := 0; i < len(p); i++ {
		if needPrefix {
			out = append(out, iw.prefix...)
			for range iw.prefix {
				counted = append(counted, counted[len(counted)-1])
			}
			needPrefix = false
		}
		out = append(out, p[i])
		counted = append(counted, counted[len(counted)-1]+1)
		if p[i] == '\n' {
			needPrefix = true
		}
	}

	written, werr := iw.w.Write(out)
	if written < 0 {
		written = 0
	}
	if written > len(out) {
		written = len(out)
	}
	iw.needPrefix = needPrefix
	if werr == nil {
		return len(p), nil
	}
	return counted[written], werr
}

// Bytes returns in with prefix inserted at the start and after every
// newline.
func Bytes(prefix, in []byte) []byte {
	var buf []byte
	w := &sliceWriter{&buf}
	iw := NewWriter(w, string(prefix))
	iw.Write(in)
	return buf
}

// String returns in with prefix inserted at the start and after every
// newline.
func String(prefix, in string) string {
	return string(Bytes([]byte(prefix), []byte(in)))
}

type sliceWriter struct {
	buf *[]byte
}

func (s *sliceWriter) Write(p []byte) (int, error) {
	*s.buf = append(*s.buf, p...)
	return len(p), nil
}
