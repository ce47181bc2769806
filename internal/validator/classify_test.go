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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fixedrec/copybook/internal/value"
)

const testTolerance = 0.0001

func TestClassifyEqualNumericWithinTolerance(t *testing.T) {
	a, b := value.NewInt(5), value.NewInt(5)
	equal, category, _ := classify(a, b, a, b, testTolerance)
	require.True(t, equal)
	require.Empty(t, category)
}

func TestClassifyFloatEqualWithinTolerance(t *testing.T) {
	a, b := value.NewFloat(1.00001), value.NewFloat(1.0)
	equal, category, _ := classify(a, b, a, b, testTolerance)
	require.True(t, equal)
	require.Empty(t, category)
}

func TestClassifyDecimalRequiresExactEqualityEvenWithinTolerance(t *testing.T) {
	// 1.0001 vs 1.0000 differ by exactly testTolerance, but neither side is
	// a binary float, so exact equality is required — no float tolerance
	// applies to fixed-scale decimal comparisons.
	a, b := value.NewDecimal(10001, 4), value.NewDecimal(10000, 4)
	equal, category, _ := classify(a, b, a, b, testTolerance)
	require.False(t, equal)
	require.Equal(t, CategoryPrecisionLoss, category)
}

func TestClassifyIntRequiresExactEquality(t *testing.T) {
	a, b := value.NewInt(100000), value.NewInt(100001)
	equal, category, _ := classify(a, b, a, b, 1.0)
	require.False(t, equal, "integers must compare exactly regardless of tolerance")
	require.Equal(t, CategoryOffByOne, category)
}

func TestClassifyTypeMismatch(t *testing.T) {
	a, b := value.NewInt(5), value.NewText("hello")
	equal, category, _ := classify(a, b, a, b, testTolerance)
	require.False(t, equal)
	require.Equal(t, CategoryTypeMismatch, category)
}

func TestClassifySignError(t *testing.T) {
	a, b := value.NewInt(5), value.NewInt(-5)
	equal, category, _ := classify(a, b, a, b, testTolerance)
	require.False(t, equal)
	require.Equal(t, CategorySignError, category)
}

func TestClassifyOffByOne(t *testing.T) {
	a, b := value.NewInt(5), value.NewInt(6)
	equal, category, _ := classify(a, b, a, b, testTolerance)
	require.False(t, equal)
	require.Equal(t, CategoryOffByOne, category)
}

func TestClassifyScaleError(t *testing.T) {
	// spec scenario 6: 123.45 vs 12345, a scale factor of 10^2 apart.
	a, b := value.NewDecimal(12345, 2), value.NewInt(12345)
	equal, category, _ := classify(a, b, a, b, testTolerance)
	require.False(t, equal)
	require.Equal(t, CategoryScaleError, category)
}

func TestClassifyNumericMismatch(t *testing.T) {
	a, b := value.NewInt(5), value.NewInt(997)
	equal, category, _ := classify(a, b, a, b, testTolerance)
	require.False(t, equal)
	require.Equal(t, CategoryNumericMismatch, category)
}

func TestClassifyPrecisionLoss(t *testing.T) {
	// Exercises the classifyNumeric precision_loss branch directly: the
	// normalized pair disagrees enough to fail the outer equality gate,
	// while the raw pair used for diagnosis differs by less than tolerance.
	normA, normB := value.NewInt(10), value.NewInt(11)
	rawA, rawB := value.NewFloat(10.00005), value.NewFloat(10.0)
	equal, category, _ := classify(rawA, rawB, normA, normB, testTolerance)
	require.False(t, equal)
	require.Equal(t, CategoryPrecisionLoss, category)
}

func TestClassifyWhitespaceError(t *testing.T) {
	rawA, rawB := value.NewText(" abc "), value.NewText("abc")
	equal, category, _ := classify(rawA, rawB, rawA, rawB, testTolerance)
	require.False(t, equal)
	require.Equal(t, CategoryWhitespaceError, category)
}

func TestClassifyCaseError(t *testing.T) {
	rawA, rawB := value.NewText("ABC"), value.NewText("abc")
	equal, category, _ := classify(rawA, rawB, rawA, rawB, testTolerance)
	require.False(t, equal)
	require.Equal(t, CategoryCaseError, category)
}

func TestClassifyCharacterEncoding(t *testing.T) {
	rawA, rawB := value.NewText("café"), value.NewText("cafe")
	equal, category, _ := classify(rawA, rawB, rawA, rawB, testTolerance)
	require.False(t, equal)
	require.Equal(t, CategoryCharacterEncoding, category)
}

func TestClassifyTruncation(t *testing.T) {
	rawA, rawB := value.NewText("hello world"), value.NewText("hello")
	equal, category, _ := classify(rawA, rawB, rawA, rawB, testTolerance)
	require.False(t, equal)
	require.Equal(t, CategoryTruncation, category)
}

func TestClassifyStringMismatch(t *testing.T) {
	rawA, rawB := value.NewText("abc"), value.NewText("xyz")
	equal, category, _ := classify(rawA, rawB, rawA, rawB, testTolerance)
	require.False(t, equal)
	require.Equal(t, CategoryStringMismatch, category)
}
