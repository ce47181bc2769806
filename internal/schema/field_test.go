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

package schema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsGroupIsFillerIsRedefine(t *testing.T) {
	group := &Field{Name: "R", Children: []*Field{{Name: "A"}}}
	require.True(t, group.IsGroup())

	leaf := &Field{Name: "A"}
	require.False(t, leaf.IsGroup())

	filler := &Field{Name: FillerName}
	require.True(t, filler.IsFiller())
	require.False(t, leaf.IsFiller())

	redef := &Field{Name: "B", Redefines: "A"}
	require.True(t, redef.IsRedefine())
	require.False(t, leaf.IsRedefine())
}

func TestWalkVisitsPreOrder(t *testing.T) {
	root := &Field{
		Name: "R",
		Children: []*Field{
			{Name: "A"},
			{Name: "B", Children: []*Field{{Name: "B1"}}},
		},
	}

	var seen []string
	root.Walk(func(f *Field) { seen = append(seen, f.Name) })
	require.Equal(t, []string{"R", "A", "B", "B1"}, seen)
}

func TestFindReturnsImmediateChildOnly(t *testing.T) {
	root := &Field{
		Name: "R",
		Children: []*Field{
			{Name: "A", Children: []*Field{{Name: "NESTED"}}},
			{Name: "B"},
		},
	}
	require.Equal(t, "A", root.Find("A").Name)
	require.Equal(t, "B", root.Find("B").Name)
	require.Nil(t, root.Find("NESTED"), "Find does not recurse into grandchildren")
	require.Nil(t, root.Find("MISSING"))
}

func TestOccupiedMultipliesSizeByOccursOrOne(t *testing.T) {
	plain := &Field{Size: 4}
	require.Equal(t, 4, plain.Occupied())

	repeated := &Field{Size: 4, Occurs: 3}
	require.Equal(t, 12, repeated.Occupied())
}

func TestUsageString(t *testing.T) {
	cases := map[Usage]string{
		Display: "DISPLAY",
		Binary:  "COMP",
		Comp1:   "COMP-1",
		Comp2:   "COMP-2",
		Comp3:   "COMP-3",
		Comp5:   "COMP-5",
		Comp6:   "COMP-6",
		Usage(99): "UNKNOWN",
	}
	for usage, want := range cases {
		require.Equal(t, want, usage.String())
	}
}
