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

// Package layout resolves a copybook field tree's sizes and byte offsets
// (C2): elementary sizes from (picture, usage), group sizes by summation,
// and offsets by a running cursor that REDEFINES children do not advance.
package layout

import (
	"github.com/fixedrec/copybook/internal/cerrors"
	"github.com/fixedrec/copybook/internal/schema"
)

// Resolve sizes and offsets every field in the tree rooted at root,
// in place. root is normally the synthetic level-0 node returned by
// cpybk.Parse.
func Resolve(root *schema.Field) error {
	if err := resolveSizes(root); err != nil {
		return err
	}
	if err := assignOffsets(root, 0); err != nil {
		return err
	}
	if root.Size == 0 {
		return &cerrors.LayoutError{Field: root.Name, Reason: "resolved record size is zero"}
	}
	return nil
}

// resolveSizes walks the tree post-order, computing each field's
// per-instance Size (Digits/Scale/Signed/Numeric are filled in as a
// byproduct for elementary fields).
func resolveSizes(f *schema.Field) error {
	if f.IsGroup() {
		for _, c := range f.Children {
			if err := resolveSizes(c); err != nil {
				return err
			}
		}
		var total int
		for _, c := range f.Children {
			if c.IsRedefine() {
				continue
			}
			total += c.Occupied()
		}
		f.Size = total
		return nil
	}

	if f.Level == 0 {
		// The synthetic root with no declared children at all: nothing to size.
		return nil
	}

	info, err := normalizePicture(f.Picture)
	if err != nil {
		return &cerrors.LayoutError{Field: f.Name, Reason: err.Error()}
	}
	f.Digits = info.Digits
	f.Scale = info.Scale
	f.Signed = info.Signed
	f.Numeric = info.Numeric

	size, err := elementarySize(f, info)
	if err != nil {
		return &cerrors.LayoutError{Field: f.Name, Reason: err.Error()}
	}
	f.Size = size
	return nil
}

func elementarySize(f *schema.Field, info pictureInfo) (int, error) {
	switch f.Usage {
	case schema.Display:
		size := info.Digits
		if f.SignSeparate {
			size++
		}
		return size, nil

	case schema.Binary, schema.Comp5:
		switch {
		case info.Digits <= 4:
			return 2, nil
		case info.Digits <= 9:
			return 4, nil
		case info.Digits <= 18:
			return 8, nil
		default:
			return 0, cerrors.ErrUnsupportedSize
		}

	case schema.Comp3:
		// ceil((d+1)/2): one nibble per digit plus one sign nibble,
		// rounded up to a whole byte.
		return (info.Digits + 2) / 2, nil

	case schema.Comp6:
		return (info.Digits + 1) / 2, nil

	case schema.Comp1:
		return 4, nil

	case schema.Comp2:
		return 8, nil

	default:
		return 0, cerrors.ErrUnknownUsage
	}
}

// assignOffsets walks the tree top-down, giving each field its Offset
// from base. REDEFINES children take their target's offset without
// advancing the cursor; everything else advances by its Occupied() size.
func assignOffsets(f *schema.Field, base int) error {
	f.Offset = base
	if !f.IsGroup() {
		return nil
	}

	cursor := base
	byName := make(map[string]*schema.Field, len(f.Children))
	for i, c := range f.Children {
		if c.IsRedefine() {
			target, ok := byName[c.Redefines]
			if !ok || i == 0 || f.Children[i-1].Name != c.Redefines {
				return &cerrors.LayoutError{
					Field:  c.Name,
					Reason: "REDEFINES target must be the immediately preceding sibling at the same level: " + c.Redefines,
				}
			}
			if err := assignOffsets(c, target.Offset); err != nil {
				return err
			}
			byName[c.Name] = c
			continue
		}

		if err := assignOffsets(c, cursor); err != nil {
			return err
		}
		byName[c.Name] = c
		cursor += c.Occupied()
	}
	return nil
}
