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

//go:build !trace

// Package trace is the no-op build of the decode tracer; it compiles to
// nothing when -tags trace is absent, so production builds pay no cost.
package trace

import "io"

// Enabled reports whether tracing is compiled in.
func Enabled() bool { return false }

// Logf is a no-op in non-trace builds.
func Logf(format string, args ...any) {}

// Flush is a no-op in non-trace builds.
func Flush(w io.Writer) {}
