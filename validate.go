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

import (
	"io"

	"github.com/fixedrec/copybook/internal/reporter"
	"github.com/fixedrec/copybook/internal/validator"
)

// ValidationResult aggregates one dual-pass validation run.
type ValidationResult = validator.Result

// Validate re-decodes every record independently of firstPass (the
// caller's primary decode), flattens and normalizes both sides, and
// classifies any discrepancy. It never returns an error for a mismatch;
// mismatches are accumulated in the returned ValidationResult.
func (s *Schema) Validate(records [][]byte, firstPass []*Value, opts ...ValidateOption) (*ValidationResult, error) {
	cfg := defaultValidateConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return validator.New(s.root, records, firstPass, validator.Options{
		Tolerance:     cfg.tolerance,
		MaxMismatches: cfg.maxMismatches,
		CodePage:      s.codePage,
	})
}

// WriteReport renders result to w, choosing a format from outputPath's
// extension (tabular, marked-up, structured, or plain).
func WriteReport(w io.Writer, result *ValidationResult, outputPath string) error {
	return reporter.Write(w, reporter.FromResult(result), outputPath)
}
