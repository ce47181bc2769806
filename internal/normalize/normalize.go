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

// Package normalize implements C7: it reduces a decoded value to a
// canonical form so that two values carrying the same information but
// produced through different decode paths compare equal. Normalization
// is idempotent; running it twice yields the same tree as running it once.
package normalize

import (
	"math"
	"strconv"
	"strings"

	"github.com/fixedrec/copybook/internal/value"
)

// Value reduces v to canonical form:
//   - integer-valued floats collapse to Int
//   - Decimal values drop trailing zero fractional digits, collapsing to
//     Int once the scale reaches zero
//   - Text values are trimmed of surrounding whitespace and promoted to
//     Int or Float when the trimmed text parses as one
//   - Group and Sequence recurse into every member
//
// Value returns nil for a nil input; callers use that to represent an
// absent field, which normalize never confuses with an empty string.
func Value(v *value.Value) *value.Value {
	if v == nil {
		return nil
	}
	switch v.Kind {
	case value.Group:
		fields := make([]value.Field, len(v.GroupFields))
		for i, f := range v.GroupFields {
			fields[i] = value.Field{Name: f.Name, Value: Value(f.Value)}
		}
		return value.NewGroup(fields)

	case value.Sequence:
		items := make([]*value.Value, len(v.Items))
		for i, it := range v.Items {
			items[i] = Value(it)
		}
		return value.NewSequence(items)

	case value.Float:
		if !math.IsInf(v.FloatValue, 0) && v.FloatValue == math.Trunc(v.FloatValue) {
			return value.NewInt(int64(v.FloatValue))
		}
		return value.NewFloat(v.FloatValue)

	case value.Decimal:
		unscaled, scale := v.DecimalValue.Unscaled, v.DecimalValue.Scale
		for scale > 0 && unscaled%10 == 0 {
			unscaled /= 10
			scale--
		}
		if scale == 0 {
			return value.NewInt(unscaled)
		}
		return value.NewDecimal(unscaled, scale)

	case value.Text:
		trimmed := strings.TrimSpace(v.TextValue)
		if trimmed == "" {
			return value.NewText("")
		}
		if n, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
			return value.NewInt(n)
		}
		if fl, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return value.NewFloat(fl)
		}
		return value.NewText(trimmed)

	default:
		return v
	}
}
