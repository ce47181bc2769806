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
	"strings"

	"github.com/fixedrec/copybook/internal/cerrors"
	"github.com/fixedrec/copybook/internal/codepage"
	"github.com/fixedrec/copybook/internal/schema"
	"github.com/fixedrec/copybook/internal/value"
)

// decodeAlphanumeric handles DISPLAY fields whose picture is X or A:
// each byte decodes through the code page to a character. JUSTIFIED
// RIGHT fields have trailing spaces stripped; others are returned as-is.
func decodeAlphanumeric(b []byte, f *schema.Field, cp *codepage.CodePage) (*value.Value, error) {
	text, err := cp.DecodeText(b)
	if err != nil {
		return nil, err
	}
	if f.JustifiedRight {
		text = strings.TrimRight(text, " ")
	}
	return value.NewText(text), nil
}

// decodeZoned handles numeric DISPLAY (zoned decimal) fields: every byte
// carries one digit in its low nibble, and if the picture declares a
// sign (a leading S), the last byte's high nibble carries it (C/F
// positive, D negative).
func decodeZoned(b []byte, f *schema.Field, cp *codepage.CodePage) (*value.Value, error) {
	digits, err := digitsOf(b, cp)
	if err != nil {
		return nil, err
	}

	var negative bool
	if f.Signed && len(b) > 0 {
		neg, ok := cp.Sign(b[len(b)-1])
		if !ok {
			return nil, cerrors.ErrInvalidSign
		}
		negative = neg
	}

	return scalar(combine(digits, negative), f.Scale), nil
}
