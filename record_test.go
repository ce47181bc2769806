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

package copybook_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fixedrec/copybook"
)

func TestDecodeAllPreservesOrder(t *testing.T) {
	schema, err := copybook.Compile("01 R.\n    05 N PIC 9(2).\n")
	require.NoError(t, err)

	records := [][]byte{
		{0xF0, 0xF1},
		{0xF0, 0xF2},
		{0xF0, 0xF3},
	}
	decoded, err := schema.DecodeAll(context.Background(), records, copybook.WithWorkers(2))
	require.NoError(t, err)
	require.Len(t, decoded, 3)
	require.Equal(t, int64(1), decoded[0].Get("R").Get("N").IntValue)
	require.Equal(t, int64(2), decoded[1].Get("R").Get("N").IntValue)
	require.Equal(t, int64(3), decoded[2].Get("R").Get("N").IntValue)
}

func TestSchemaStringReportsSizeAndCodePage(t *testing.T) {
	schema, err := copybook.Compile("01 R.\n    05 N PIC 9(4).\n", copybook.WithCodePage("cp1047"))
	require.NoError(t, err)
	require.Equal(t, "copybook.Schema{record_size=4, code_page=cp1047}", schema.String())
}
