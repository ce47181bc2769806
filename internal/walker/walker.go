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

// Package walker implements C5, the record walker: it traverses a
// resolved field tree against one record's bytes and builds a nested
// decoded value. FILLER and 88-level items never appear in the result;
// REDEFINES children each produce their own key, so both interpretations
// of overlayed bytes coexist.
package walker

import (
	"errors"
	"fmt"

	"github.com/fixedrec/copybook/internal/cerrors"
	"github.com/fixedrec/copybook/internal/codec"
	"github.com/fixedrec/copybook/internal/codepage"
	"github.com/fixedrec/copybook/internal/schema"
	"github.com/fixedrec/copybook/internal/value"
)

var errTruncatedField = errors.New("field extends past end of record")

// Walk decodes record against the tree rooted at root (normally the
// synthetic level-0 node), returning a Group value keyed by each
// top-level field's name. recordIndex is attached to any DecodeError for
// diagnostics.
func Walk(root *schema.Field, record []byte, recordIndex int, cp *codepage.CodePage) (*value.Value, error) {
	return walk(root, record, recordIndex, cp, 0, "")
}

func walk(f *schema.Field, record []byte, recordIndex int, cp *codepage.CodePage, shift int, path string) (*value.Value, error) {
	if f.Occurs > 0 {
		items := make([]*value.Value, f.Occurs)
		for i := 0; i < f.Occurs; i++ {
			v, err := decodeInstance(f, record, recordIndex, cp, shift+i*f.Size, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return nil, err
			}
			items[i] = v
		}
		return value.NewSequence(items), nil
	}
	return decodeInstance(f, record, recordIndex, cp, shift, path)
}

func decodeInstance(f *schema.Field, record []byte, recordIndex int, cp *codepage.CodePage, shift int, path string) (*value.Value, error) {
	if f.IsGroup() {
		var fields []value.Field
		for _, c := range f.Children {
			childPath := joinPath(path, c.Name)
			cv, err := walk(c, record, recordIndex, cp, shift, childPath)
			if err != nil {
				return nil, err
			}
			if c.IsFiller() {
				continue
			}
			fields = append(fields, value.Field{Name: c.Name, Value: cv})
		}
		return value.NewGroup(fields), nil
	}

	off := f.Offset + shift
	end := off + f.Size
	if off < 0 || end > len(record) {
		return nil, &cerrors.DecodeError{RecordIndex: recordIndex, Path: path, Offset: off, Size: f.Size, Err: errTruncatedField}
	}

	dec, err := codec.Select(f)
	if err != nil {
		return nil, &cerrors.DecodeError{RecordIndex: recordIndex, Path: path, Offset: off, Size: f.Size, Err: err}
	}
	v, err := dec(record[off:end], f, cp)
	if err != nil {
		return nil, &cerrors.DecodeError{RecordIndex: recordIndex, Path: path, Offset: off, Size: f.Size, Err: err}
	}
	return v, nil
}

func joinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}
