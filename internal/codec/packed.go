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

package codec

import (
	"github.com/fixedrec/copybook/internal/cerrors"
	"github.com/fixedrec/copybook/internal/codepage"
	"github.com/fixedrec/copybook/internal/schema"
	"github.com/fixedrec/copybook/internal/value"
)

// decodePacked handles COMP-3/PACKED-DECIMAL: two BCD digits per byte,
// most significant nibble first, except the final byte whose low nibble
// is the sign (A/C/E/F positive, B/D negative; anything else is a decode
// error). Every other nibble must be 0-9.
func decodePacked(b []byte, f *schema.Field, cp *codepage.CodePage) (*value.Value, error) {
	if len(b) == 0 {
		return nil, cerrors.ErrUnsupportedSize
	}
	digits := make([]int, 0, len(b)*2)
	for i, by := range b {
		hi, lo := by>>4, by&0x0F
		if i == len(b)-1 {
			if hi > 9 {
				return nil, cerrors.ErrNonDigitNibble
			}
			digits = append(digits, int(hi))
			continue
		}
		if hi > 9 || lo > 9 {
			return nil, cerrors.ErrNonDigitNibble
		}
		digits = append(digits, int(hi), int(lo))
	}

	negative, err := packedSign(b[len(b)-1] & 0x0F)
	if err != nil {
		return nil, err
	}
	return scalar(combine(digits, negative), f.Scale), nil
}

func packedSign(signNibble byte) (negative bool, err error) {
	switch signNibble {
	case 0xA, 0xC, 0xE, 0xF:
		return false, nil
	case 0xB, 0xD:
		return true, nil
	default:
		return false, cerrors.ErrInvalidSign
	}
}

// decodeUnsignedPacked handles COMP-6: as COMP-3 but every nibble,
// including the final byte's low nibble, is a digit; there is no sign.
func decodeUnsignedPacked(b []byte, f *schema.Field, cp *codepage.CodePage) (*value.Value, error) {
	digits := make([]int, 0, len(b)*2)
	for _, by := range b {
		hi, lo := by>>4, by&0x0F
		if hi > 9 || lo > 9 {
			return nil, cerrors.ErrNonDigitNibble
		}
		digits = append(digits, int(hi), int(lo))
	}
	return scalar(combine(digits, false), f.Scale), nil
}
