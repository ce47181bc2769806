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
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fixedrec/copybook/internal/cerrors"
	"github.com/fixedrec/copybook/internal/codepage"
	"github.com/fixedrec/copybook/internal/schema"
)

func cp037(t *testing.T) *codepage.CodePage {
	t.Helper()
	cp, err := codepage.Lookup("cp037")
	require.NoError(t, err)
	return cp
}

func TestDecodePackedNonDigitNibbleIsError(t *testing.T) {
	f := &schema.Field{Name: "QTY", Usage: schema.Comp3, Digits: 5, Scale: 0, Signed: true}
	_, err := decodePacked([]byte{0x01, 0x2A, 0x4C}, f, cp037(t))
	require.ErrorIs(t, err, cerrors.ErrNonDigitNibble)
}

func TestDecodePackedRoundTrip(t *testing.T) {
	f := &schema.Field{Name: "QTY", Usage: schema.Comp3, Digits: 5, Scale: 0, Signed: true}
	v, err := decodePacked([]byte{0x01, 0x23, 0x4C}, f, cp037(t))
	require.NoError(t, err)
	require.Equal(t, int64(1234), v.IntValue)

	v, err = decodePacked([]byte{0x01, 0x23, 0x4D}, f, cp037(t))
	require.NoError(t, err)
	require.Equal(t, int64(-1234), v.IntValue)
}

func TestDecodePackedInvalidSignNibble(t *testing.T) {
	f := &schema.Field{Name: "QTY", Usage: schema.Comp3, Digits: 5, Scale: 0, Signed: true}
	_, err := decodePacked([]byte{0x01, 0x23, 0x41}, f, cp037(t))
	require.ErrorIs(t, err, cerrors.ErrInvalidSign)
}

func TestDecodeBinarySigned(t *testing.T) {
	f := &schema.Field{Name: "CNT", Usage: schema.Binary, Digits: 9, Signed: true}
	v, err := decodeBinary([]byte{0xFF, 0xFF, 0xFF, 0xFE}, f, nil)
	require.NoError(t, err)
	require.Equal(t, int64(-2), v.IntValue)

	v, err = decodeBinary([]byte{0x00, 0x00, 0x00, 0x02}, f, nil)
	require.NoError(t, err)
	require.Equal(t, int64(2), v.IntValue)
}

func TestDecodeZonedWithScale(t *testing.T) {
	f := &schema.Field{Name: "AMT", Usage: schema.Display, Numeric: true, Signed: true, Scale: 2}
	cp := cp037(t)

	v, err := decodeZoned([]byte{0xF0, 0xF0, 0xF1, 0xF2, 0xC3}, f, cp)
	require.NoError(t, err)
	require.Equal(t, int64(123), v.DecimalValue.Unscaled)
	require.Equal(t, 2, v.DecimalValue.Scale)
	require.InDelta(t, 1.23, v.DecimalValue.Float(), 1e-9)

	v, err = decodeZoned([]byte{0xF0, 0xF0, 0xF1, 0xF2, 0xD3}, f, cp)
	require.NoError(t, err)
	require.Equal(t, int64(-123), v.DecimalValue.Unscaled)
}

func TestDecodeFloat32RequiresFourBytes(t *testing.T) {
	_, err := decodeFloat32([]byte{0x00, 0x00, 0x00}, &schema.Field{Usage: schema.Comp1}, nil)
	require.ErrorIs(t, err, cerrors.ErrUnsupportedSize)
}

func TestDecodeFloat64RoundTrip(t *testing.T) {
	bits := math.Float64bits(3.5)
	b := []byte{
		byte(bits >> 56), byte(bits >> 48), byte(bits >> 40), byte(bits >> 32),
		byte(bits >> 24), byte(bits >> 16), byte(bits >> 8), byte(bits),
	}
	v, err := decodeFloat64(b, &schema.Field{Usage: schema.Comp2}, nil)
	require.NoError(t, err)
	require.Equal(t, 3.5, v.FloatValue)
}

func TestSelectDispatchesBySignSeparateAndNumeric(t *testing.T) {
	signSep, err := Select(&schema.Field{Usage: schema.Display, SignSeparate: true})
	require.NoError(t, err)
	require.NotNil(t, signSep)

	numeric, err := Select(&schema.Field{Usage: schema.Display, Numeric: true})
	require.NoError(t, err)
	require.NotNil(t, numeric)

	_, err = Select(&schema.Field{Usage: schema.Usage(99)})
	require.ErrorIs(t, err, cerrors.ErrUnknownUsage)
}
