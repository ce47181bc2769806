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
	"context"

	"github.com/fixedrec/copybook/internal/value"
	"github.com/fixedrec/copybook/internal/walker"
	"github.com/fixedrec/copybook/internal/worker"
)

// Value is a decoded field: a Group (nested mapping), a Sequence (from
// OCCURS), or one of the scalar kinds (Int, Decimal, Text, Float, Bytes).
type Value = value.Value

// Kind discriminates the variant held by a Value.
type Kind = value.Kind

// The closed set of value kinds.
const (
	KindGroup    = value.Group
	KindSequence = value.Sequence
	KindInt      = value.Int
	KindDecimal  = value.Decimal
	KindText     = value.Text
	KindFloat    = value.Float
	KindBytes    = value.Bytes
)

// Decode walks record against s's resolved tree and returns the decoded
// record as a Value of kind Group. recordIndex is attached to any
// DecodeError this call returns, for diagnostics.
func (s *Schema) Decode(record []byte, recordIndex int) (*Value, error) {
	return walker.Walk(s.root, record, recordIndex, s.codePage)
}

// DecodeAll decodes every record in records, partitioning the work across
// goroutines by record index per opts' worker count. Results preserve
// input order. The first decode error cancels the remaining work.
func (s *Schema) DecodeAll(ctx context.Context, records [][]byte, opts ...DecodeOption) ([]*Value, error) {
	cfg := defaultDecodeConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return worker.DecodeAll(ctx, s.root, records, s.codePage, cfg.workers)
}
