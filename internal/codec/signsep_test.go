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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fixedrec/copybook/internal/cerrors"
	"github.com/fixedrec/copybook/internal/schema"
)

func TestDecodeSignSeparateTrailing(t *testing.T) {
	f := &schema.Field{Usage: schema.Display, Signed: true, SignSeparate: true, Scale: 0}
	v, err := decodeSignSeparate([]byte{0xF1, 0xF2, 0x60}, f, cp037(t)) // "12-"
	require.NoError(t, err)
	require.Equal(t, int64(-12), v.IntValue)
}

func TestDecodeSignSeparateLeading(t *testing.T) {
	f := &schema.Field{Usage: schema.Display, Signed: true, SignSeparate: true, SignLeading: true, Scale: 0}
	v, err := decodeSignSeparate([]byte{0x4E, 0xF1, 0xF2}, f, cp037(t)) // "+12"
	require.NoError(t, err)
	require.Equal(t, int64(12), v.IntValue)
}

func TestDecodeSignSeparateInvalidSignByte(t *testing.T) {
	f := &schema.Field{Usage: schema.Display, Signed: true, SignSeparate: true, Scale: 0}
	_, err := decodeSignSeparate([]byte{0xF1, 0xF2, 0xF3}, f, cp037(t))
	require.ErrorIs(t, err, cerrors.ErrInvalidSign)
}
