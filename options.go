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

package copybook

import "github.com/fixedrec/copybook/internal/codepage"

type compileConfig struct {
	codePage string
}

// CompileOption configures Compile.
type CompileOption func(*compileConfig)

// WithCodePage selects the EBCDIC code page used to decode text and
// digits. The default is CP037.
func WithCodePage(name string) CompileOption {
	return func(c *compileConfig) { c.codePage = name }
}

func defaultCompileConfig() compileConfig {
	return compileConfig{codePage: codepage.Default}
}

type decodeConfig struct {
	workers int
}

// DecodeOption configures a concurrent decode run.
type DecodeOption func(*decodeConfig)

// WithWorkers sets the maximum number of goroutines decoding records
// concurrently. The default, 0, means unlimited (bounded only by the
// number of records).
func WithWorkers(n int) DecodeOption {
	return func(c *decodeConfig) { c.workers = n }
}

func defaultDecodeConfig() decodeConfig {
	return decodeConfig{}
}

type validateConfig struct {
	tolerance     float64
	maxMismatches int
}

// ValidateOption configures a dual-pass validation run.
type ValidateOption func(*validateConfig)

// WithTolerance sets the numeric tolerance τ used when comparing decoded
// values across the two passes.
func WithTolerance(tolerance float64) ValidateOption {
	return func(c *validateConfig) { c.tolerance = tolerance }
}

// WithMaxMismatches bounds how many mismatch details are retained. The
// aggregated counts are never bounded, only the detail list. 0 means
// unbounded.
func WithMaxMismatches(n int) ValidateOption {
	return func(c *validateConfig) { c.maxMismatches = n }
}

func defaultValidateConfig() validateConfig {
	return validateConfig{tolerance: 0.0001}
}
