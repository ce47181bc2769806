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

package copybook

import (
	"github.com/fixedrec/copybook/internal/codepage"
	"github.com/fixedrec/copybook/internal/cpybk"
	"github.com/fixedrec/copybook/internal/layout"
	"github.com/fixedrec/copybook/internal/schema"
)

// Schema is a compiled copybook: a resolved field tree with fixed sizes
// and offsets, plus the code page its DISPLAY fields decode through. A
// Schema is immutable after Compile returns and safe for concurrent use.
type Schema struct {
	root     *schema.Field
	codePage *codepage.CodePage
}

// Compile parses copybookText, resolves every field's size and offset,
// and returns a Schema ready to decode records. Compile fails fast with a
// SchemaError or LayoutError identifying the offending statement or field.
func Compile(copybookText string, opts ...CompileOption) (*Schema, error) {
	cfg := defaultCompileConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	root, err := cpybk.Parse(copybookText)
	if err != nil {
		return nil, err
	}
	if err := layout.Resolve(root); err != nil {
		return nil, err
	}
	cp, err := codepage.Lookup(cfg.codePage)
	if err != nil {
		return nil, err
	}
	return &Schema{root: root, codePage: cp}, nil
}

// RecordSize returns size(root): the fixed byte length every record in a
// run governed by this Schema must have.
func (s *Schema) RecordSize() int {
	return s.root.Size
}
