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

// decodeSignSeparate handles DISPLAY fields declared SIGN SEPARATE: the
// digit bytes decode exactly like zoned DISPLAY, and one extra byte
// carries '+' or '-' before (SIGN LEADING) or after (SIGN TRAILING) them.
func decodeSignSeparate(b []byte, f *schema.Field, cp *codepage.CodePage) (*value.Value, error) {
	if len(b) < 1 {
		return nil, cerrors.ErrUnsupportedSize
	}

	var signByte byte
	var digitBytes []byte
	if f.SignLeading {
		signByte, digitBytes = b[0], b[1:]
	} else {
		signByte, digitBytes = b[len(b)-1], b[:len(b)-1]
	}

	signText, err := cp.DecodeText([]byte{signByte})
	if err != nil {
		return nil, err
	}
	var negative bool
	switch signText {
	case "+":
		negative = false
	case "-":
		negative = true
	default:
		return nil, cerrors.ErrInvalidSign
	}

	digits, err := digitsOf(digitBytes, cp)
	if err != nil {
		return nil, err
	}
	return scalar(combine(digits, negative), f.Scale), nil
}
