// Copyright 2026 The Copybook Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build trace

// Package trace records a per-goroutine decode trace, built only with
// -tags trace. Each worker goroutine gets its own buffer, so concurrent
// decode workers never interleave their trace lines.
package trace

import (
	"fmt"
	"io"
	"strings"

	"github.com/timandy/routine"
)

var local = routine.NewThreadLocalWithInitial(func() any { return &strings.Builder{} })

// Enabled reports whether tracing is compiled in.
func Enabled() bool { return true }

// Logf appends a formatted line to the calling goroutine's trace buffer.
func Logf(format string, args ...any) {
	b := local.Get().(*strings.Builder)
	fmt.Fprintf(b, format+"\n", args...)
}

// Flush writes the calling goroutine's buffered trace to w and clears it.
func Flush(w io.Writer) {
	b := local.Get().(*strings.Builder)
	io.WriteString(w, b.String())
	b.Reset()
}
