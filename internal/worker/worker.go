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

// Package worker partitions decode work across goroutines by record
// index, never by fields within a record — the resolved field tree is
// immutable and the decoders hold no state, so sharing it by reference
// across workers needs no locking.
package worker

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/fixedrec/copybook/internal/codepage"
	"github.com/fixedrec/copybook/internal/schema"
	"github.com/fixedrec/copybook/internal/value"
	"github.com/fixedrec/copybook/internal/walker"
)

// DecodeAll decodes every record in records against root, using up to
// concurrency goroutines. Results preserve input order regardless of
// completion order. Cancellation is cooperative: ctx is checked before
// each record's decode begins, and the first decode error cancels the
// remaining work.
func DecodeAll(ctx context.Context, root *schema.Field, records [][]byte, cp *codepage.CodePage, concurrency int) ([]*value.Value, error) {
	results := make([]*value.Value, len(records))
	g, gctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}

	for i, record := range records {
		i, record := i, record
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			v, err := walker.Walk(root, record, i, cp)
			if err != nil {
				return err
			}
			results[i] = v
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
