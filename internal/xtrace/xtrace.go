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

// Package xtrace is the ambient diagnostics layer every core package
// selects its own tracer from, by key, the way gorgo's lr packages each
// call tracing.Select with their own "gorgo.<pkg>" key. Keys here are
// namespaced "mpst.<pkg>" instead.
package xtrace

import "github.com/npillmayer/schuko/tracing"

// Select returns the trace sink for key, creating it if this is the
// first call for that key. Packages call this once from their own
// unexported tracer() function rather than calling tracing.Select
// directly, so the "mpst." prefix lives in one place.
func Select(pkg string) tracing.Trace {
	return tracing.Select("mpst." + pkg)
}
