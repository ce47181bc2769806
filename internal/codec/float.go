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
	"encoding/binary"
	"math"

	"github.com/fixedrec/copybook/internal/cerrors"
	"github.com/fixedrec/copybook/internal/codepage"
	"github.com/fixedrec/copybook/internal/schema"
	"github.com/fixedrec/copybook/internal/value"
)

// decodeFloat32 handles COMP-1: a big-endian IEEE-754 single-precision
// float. Historic IBM hexadecimal floating point is out of scope (spec §9).
func decodeFloat32(b []byte, f *schema.Field, cp *codepage.CodePage) (*value.Value, error) {
	if len(b) != 4 {
		return nil, cerrors.ErrUnsupportedSize
	}
	bits := binary.BigEndian.Uint32(b)
	return value.NewFloat(float64(math.Float32frombits(bits))), nil
}

// decodeFloat64 handles COMP-2: a big-endian IEEE-754 double-precision float.
func decodeFloat64(b []byte, f *schema.Field, cp *codepage.CodePage) (*value.Value, error) {
	if len(b) != 8 {
		return nil, cerrors.ErrUnsupportedSize
	}
	bits := binary.BigEndian.Uint64(b)
	return value.NewFloat(math.Float64frombits(bits)), nil
}
