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

package validator

import (
	"fmt"
	"math"
	"strings"

	"github.com/fixedrec/copybook/internal/value"
)

// Classification names, in the order classify applies them — the first
// matching class wins.
const (
	CategoryMissingField      = "missing_field"
	CategoryTypeMismatch      = "type_mismatch"
	CategorySignError         = "sign_error"
	CategoryOffByOne          = "off_by_one"
	CategoryPrecisionLoss     = "precision_loss"
	CategoryScaleError        = "scale_error"
	CategoryNumericMismatch   = "numeric_mismatch"
	CategoryWhitespaceError   = "whitespace_error"
	CategoryCaseError         = "case_error"
	CategoryCharacterEncoding = "character_encoding"
	CategoryTruncation        = "truncation"
	CategoryStringMismatch    = "string_mismatch"
)

// classify compares the normalized pair (normA, normB) for equality within
// tolerance and, on mismatch, uses the pre-normalization pair (rawA, rawB)
// to pick the most specific diagnostic category.
func classify(rawA, rawB, normA, normB *value.Value, tolerance float64) (equal bool, category, detail string) {
	aNumeric, bNumeric := normA.IsNumeric(), normB.IsNumeric()
	aText, bText := normA.Kind == value.Text, normB.Kind == value.Text

	switch {
	case aNumeric && bNumeric:
		fa, fb := normA.AsFloat(), normB.AsFloat()
		// Tolerance only ever applies when at least one side is a binary
		// float; integer and fixed-scale decimal comparisons are exact,
		// which is the whole point of carrying Decimal as an unscaled
		// integer pair instead of a float.
		if normA.Kind == value.Float || normB.Kind == value.Float {
			if math.Abs(fa-fb) <= tolerance {
				return true, "", ""
			}
		} else if fa == fb {
			return true, "", ""
		}
		cat := classifyNumeric(rawA, rawB, tolerance)
		return false, cat, fmt.Sprintf("%v vs %v (tolerance %v)", rawA.String(), rawB.String(), tolerance)

	case aText && bText:
		if normA.TextValue == normB.TextValue {
			return true, "", ""
		}
		cat := classifyString(rawA.TextValue, rawB.TextValue)
		return false, cat, fmt.Sprintf("%q vs %q", rawA.TextValue, rawB.TextValue)

	default:
		return false, CategoryTypeMismatch, fmt.Sprintf("%s vs %s", normA.Kind, normB.Kind)
	}
}

func classifyNumeric(a, b *value.Value, tolerance float64) string {
	fa, fb := a.AsFloat(), b.AsFloat()
	diff := math.Abs(fa - fb)

	if fa != 0 && fb != 0 && (fa < 0) != (fb < 0) {
		return CategorySignError
	}
	if a.Kind == value.Int && b.Kind == value.Int && diff == 1 {
		return CategoryOffByOne
	}
	if diff > 0 && diff <= tolerance {
		return CategoryPrecisionLoss
	}
	for k := 1; k <= 9; k++ {
		p := math.Pow10(k)
		if math.Abs(fa*p-fb) <= tolerance || math.Abs(fa-fb*p) <= tolerance {
			return CategoryScaleError
		}
	}
	return CategoryNumericMismatch
}

func classifyString(a, b string) string {
	if strings.TrimSpace(a) == strings.TrimSpace(b) {
		return CategoryWhitespaceError
	}
	if strings.EqualFold(a, b) {
		return CategoryCaseError
	}
	if nonASCIIDiffers(a, b) {
		return CategoryCharacterEncoding
	}
	if strings.HasPrefix(a, b) || strings.HasPrefix(b, a) {
		return CategoryTruncation
	}
	return CategoryStringMismatch
}

// nonASCIIDiffers reports whether any differing rune position between a
// and b involves a non-ASCII code point.
func nonASCIIDiffers(a, b string) bool {
	ra, rb := []rune(a), []rune(b)
	n := len(ra)
	if len(rb) < n {
		n = len(rb)
	}
	for i := 0; i < n; i++ {
		if ra[i] != rb[i] && (ra[i] > 127 || rb[i] > 127) {
			return true
		}
	}
	return false
}
