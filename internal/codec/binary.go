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

	"github.com/fixedrec/copybook/internal/cerrors"
	"github.com/fixedrec/copybook/internal/codepage"
	"github.com/fixedrec/copybook/internal/schema"
	"github.com/fixedrec/copybook/internal/value"
)

// decodeBinary handles BINARY/COMP/COMP-4: a big-endian two's-complement
// (or unsigned) integer of 2, 4, or 8 bytes, as resolved by internal/layout.
func decodeBinary(b []byte, f *schema.Field, cp *codepage.CodePage) (*value.Value, error) {
	raw, err := signExtend(b, f.Signed)
	if err != nil {
		return nil, err
	}
	return scalar(raw, f.Scale), nil
}

// decodeNativeBinary handles COMP-5: identical to BINARY except the byte
// order is the host's native order rather than big-endian.
func decodeNativeBinary(b []byte, f *schema.Field, cp *codepage.CodePage) (*value.Value, error) {
	var u uint64
	switch len(b) {
	case 2:
		u = uint64(binary.NativeEndian.Uint16(b))
	case 4:
		u = uint64(binary.NativeEndian.Uint32(b))
	case 8:
		u = binary.NativeEndian.Uint64(b)
	default:
		return nil, cerrors.ErrUnsupportedSize
	}
	raw := applySign(u, len(b), f.Signed)
	return scalar(raw, f.Scale), nil
}

func signExtend(b []byte, signed bool) (int64, error) {
	var u uint64
	for _, by := range b {
		u = u<<8 | uint64(by)
	}
	switch len(b) {
	case 2, 4, 8:
		return applySign(u, len(b), signed), nil
	default:
		return 0, cerrors.ErrUnsupportedSize
	}
}

func applySign(u uint64, size int, signed bool) int64 {
	if !signed {
		return int64(u)
	}
	switch size {
	case 2:
		return int64(int16(u))
	case 4:
		return int64(int32(u))
	default:
		return int64(u)
	}
}
