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

package cpybk

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fixedrec/copybook/internal/cerrors"
	"github.com/fixedrec/copybook/internal/schema"
)

func TestParseBuildsLevelTree(t *testing.T) {
	root, err := Parse(`
		01 RECORD-ONE.
		    05 FIELD-A PIC X(4).
		    05 GROUP-B.
		        10 FIELD-C PIC 9(3).
		        10 FIELD-D PIC 9(2).
	`)
	require.NoError(t, err)
	require.Len(t, root.Children, 1)

	recordOne := root.Children[0]
	require.Equal(t, "RECORD-ONE", recordOne.Name)
	require.Len(t, recordOne.Children, 2)

	fieldA := recordOne.Find("FIELD-A")
	require.NotNil(t, fieldA)
	require.Equal(t, "X(4)", fieldA.Picture)

	groupB := recordOne.Find("GROUP-B")
	require.NotNil(t, groupB)
	require.True(t, groupB.IsGroup())
	require.Len(t, groupB.Children, 2)
}

func TestParseRecognizesUsageAliases(t *testing.T) {
	root, err := Parse("01 R.\n    05 N PIC S9(9) COMPUTATIONAL-4.\n")
	require.NoError(t, err)
	n := root.Children[0].Find("N")
	require.NotNil(t, n)
	require.Equal(t, schema.Binary, n.Usage)
}

func TestParseBareUsageWithoutUsageKeyword(t *testing.T) {
	root, err := Parse("01 R.\n    05 N PIC S9(5) COMP-3.\n")
	require.NoError(t, err)
	n := root.Children[0].Find("N")
	require.NotNil(t, n)
	require.Equal(t, schema.Comp3, n.Usage)
}

func TestParseOccursAndRedefines(t *testing.T) {
	root, err := Parse(`
		01 R.
		    05 A PIC X(4).
		    05 B REDEFINES A PIC 9(4).
		    05 ITEM OCCURS 3 TIMES PIC 9(2).
	`)
	require.NoError(t, err)
	r := root.Children[0]

	b := r.Find("B")
	require.NotNil(t, b)
	require.Equal(t, "A", b.Redefines)

	item := r.Find("ITEM")
	require.NotNil(t, item)
	require.Equal(t, 3, item.Occurs)
}

func TestParse88LevelAttachesToParentConditions(t *testing.T) {
	root, err := Parse(`
		01 R.
		    05 STATUS-CODE PIC X(1).
		        88 STATUS-OK VALUE 'Y'.
		        88 STATUS-BAD VALUE 'N'.
	`)
	require.NoError(t, err)
	statusCode := root.Children[0].Find("STATUS-CODE")
	require.NotNil(t, statusCode)
	require.Len(t, statusCode.Children, 0)
	require.Equal(t, "Y", statusCode.Conditions["STATUS-OK"])
	require.Equal(t, "N", statusCode.Conditions["STATUS-BAD"])
}

func TestParseFillerFieldsShareReservedName(t *testing.T) {
	root, err := Parse("01 R.\n    05 FILLER PIC X(2).\n    05 FILLER PIC X(3).\n")
	require.NoError(t, err)
	r := root.Children[0]
	require.Len(t, r.Children, 2)
	for _, c := range r.Children {
		require.True(t, c.IsFiller())
	}
}

func TestParseSignClauseLeadingSeparate(t *testing.T) {
	root, err := Parse("01 R.\n    05 AMT PIC S9(5) SIGN IS LEADING SEPARATE.\n")
	require.NoError(t, err)
	amt := root.Children[0].Find("AMT")
	require.NotNil(t, amt)
	require.True(t, amt.SignLeading)
	require.True(t, amt.SignSeparate)
}

func TestParseJustifiedAndBlankWhenZero(t *testing.T) {
	root, err := Parse("01 R.\n    05 A PIC X(4) JUSTIFIED RIGHT.\n    05 B PIC 9(4) BLANK WHEN ZERO.\n")
	require.NoError(t, err)
	r := root.Children[0]
	require.True(t, r.Find("A").JustifiedRight)
	require.True(t, r.Find("B").BlankWhenZero)
}

func TestParseRejectsMalformedLevelNumber(t *testing.T) {
	_, err := Parse("AB R.\n")
	require.Error(t, err)
	var schemaErr *cerrors.SchemaError
	require.ErrorAs(t, err, &schemaErr)
}

func TestParseRejectsLevelAboveForty9ExceptCondition(t *testing.T) {
	_, err := Parse("50 R PIC X(1).\n")
	require.Error(t, err)
}

func TestParseRejectsUnknownUsage(t *testing.T) {
	_, err := Parse("01 R.\n    05 N PIC 9(3) USAGE IS COMP-9.\n")
	require.Error(t, err)
}

func TestParseRejectsUnterminatedPictureParen(t *testing.T) {
	_, err := Parse("01 R.\n    05 N PIC 9(3.\n")
	require.Error(t, err)
}

func TestParseRejectsUnrecognizedClause(t *testing.T) {
	_, err := Parse("01 R.\n    05 N PIC 9(3) NONSENSE-CLAUSE.\n")
	require.Error(t, err)
}

func TestStripCommentsDropsStarLinesAndInlineMarker(t *testing.T) {
	out := stripComments("* full comment line\n01 R PIC X(1). *> trailing note\n")
	require.NotContains(t, out, "full comment line")
	require.Contains(t, out, "01 R PIC X(1).")
	require.NotContains(t, out, "trailing note")
}

func TestSplitStatementsIgnoresPeriodInsideLiteral(t *testing.T) {
	stmts := splitStatements("88 OK VALUE 'A.B'. 05 N PIC X(1).")
	require.Len(t, stmts, 2)
	require.Contains(t, stmts[0], "'A.B'")
}

func TestTokenizeKeepsQuotedLiteralAsOneToken(t *testing.T) {
	tokens := tokenize("88 OK VALUE 'Y N'")
	require.Equal(t, []string{"88", "OK", "VALUE", "'Y N'"}, tokens)
}
