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

// Package codec implements C3 (the codec registry) and C4 (the per-usage
// byte decoders): DISPLAY, BINARY/COMP/COMP-4, COMP-1, COMP-2, COMP-3,
// COMP-5, COMP-6, and SIGN SEPARATE. Dispatch is a closed switch over the
// fixed usage set (spec §9: "polymorphism is closed"), not an open
// registry of plugins.
package codec

import (
	"github.com/fixedrec/copybook/internal/cerrors"
	"github.com/fixedrec/copybook/internal/codepage"
	"github.com/fixedrec/copybook/internal/schema"
	"github.com/fixedrec/copybook/internal/value"
)

// Decoder decodes one elementary field's raw bytes into a typed Value.
type Decoder func(b []byte, f *schema.Field, cp *codepage.CodePage) (*value.Value, error)

// Select returns the decoder for f's usage, applying the three C3
// refinements: DISPLAY+SIGN SEPARATE routes to the separate-sign decoder,
// and numeric DISPLAY (picture has 9, no X/A) routes to the zoned path
// rather than the alphanumeric one.
func Select(f *schema.Field) (Decoder, error) {
	switch f.Usage {
	case schema.Display:
		switch {
		case f.SignSeparate:
			return decodeSignSeparate, nil
		case f.Numeric:
			return decodeZoned, nil
		default:
			return decodeAlphanumeric, nil
		}
	case schema.Binary:
		return decodeBinary, nil
	case schema.Comp5:
		return decodeNativeBinary, nil
	case schema.Comp3:
		return decodePacked, nil
	case schema.Comp6:
		return decodeUnsignedPacked, nil
	case schema.Comp1:
		return decodeFloat32, nil
	case schema.Comp2:
		return decodeFloat64, nil
	default:
		return nil, cerrors.ErrUnknownUsage
	}
}

// digitsOf decodes every byte of b to a decimal digit via cp, failing on
// the first byte whose low nibble is not 0-9.
func digitsOf(b []byte, cp *codepage.CodePage) ([]int, error) {
	digits := make([]int, len(b))
	for i, by := range b {
		d, ok := cp.Digit(by)
		if !ok {
			return nil, cerrors.ErrNonDigitNibble
		}
		digits[i] = d
	}
	return digits, nil
}

func combine(digits []int, negative bool) int64 {
	var v int64
	for _, d := range digits {
		v = v*10 + int64(d)
	}
	if negative {
		v = -v
	}
	return v
}

func scalar(unscaled int64, scale int) *value.Value {
	if scale > 0 {
		return value.NewDecimal(unscaled, scale)
	}
	return value.NewInt(unscaled)
}
