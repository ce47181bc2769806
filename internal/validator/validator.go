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

// Package validator implements C8, the dual-pass validator: it re-decodes
// each record independently of the first pass, flattens and normalizes
// both sides, and classifies any discrepancy. A validation discrepancy is
// never fatal; it is accumulated and reported.
package validator

import (
	"fmt"
	"sort"

	"github.com/fixedrec/copybook/internal/codepage"
	"github.com/fixedrec/copybook/internal/normalize"
	"github.com/fixedrec/copybook/internal/schema"
	"github.com/fixedrec/copybook/internal/value"
	"github.com/fixedrec/copybook/internal/walker"
)

// Mismatch describes one discrepancy between a record's two decodings.
type Mismatch struct {
	RecordIndex int
	Path        string
	FirstPass   *value.Value
	SecondPass  *value.Value
	Category    string
	Detail      string
}

// Result aggregates a validation run across every record examined.
type Result struct {
	RecordCount   int
	FieldCount    int
	MismatchCount int
	Mismatches    []Mismatch
}

// MismatchRate returns mismatches divided by fields examined, or 0 if no
// fields were examined.
func (r *Result) MismatchRate() float64 {
	if r.FieldCount == 0 {
		return 0
	}
	return float64(r.MismatchCount) / float64(r.FieldCount)
}

// Options controls a validation run.
type Options struct {
	Tolerance     float64
	MaxMismatches int // 0 means unbounded
	CodePage      *codepage.CodePage
}

// New runs the dual-pass validator over every record, comparing each
// record's firstPass decoding (produced by the caller's primary decode
// pass) against an independent second-pass decode of the same raw bytes.
// The second pass uses a freshly invoked walker.Walk call against the same
// immutable tree, so no decoder state carries between the two passes.
//
// firstPass must be the same length as records; a nil entry marks a record
// the caller never decoded (e.g. skipped after a first-pass decode error),
// and every leaf of its second-pass decoding is reported as missing_field
// rather than compared.
func New(root *schema.Field, records [][]byte, firstPass []*value.Value, opts Options) (*Result, error) {
	if len(firstPass) != len(records) {
		return nil, fmt.Errorf("validator: firstPass has %d records, want %d (one entry per record, nil for skipped)", len(firstPass), len(records))
	}
	result := &Result{}
	for i, record := range records {
		secondPass, err := walker.Walk(root, record, i, opts.CodePage)
		if err != nil {
			return nil, err
		}
		mismatches, fields := compareRecord(i, firstPass[i], secondPass, opts.Tolerance)
		result.RecordCount++
		result.FieldCount += fields
		result.MismatchCount += len(mismatches)
		if opts.MaxMismatches == 0 || len(result.Mismatches) < opts.MaxMismatches {
			room := len(mismatches)
			if opts.MaxMismatches != 0 {
				if avail := opts.MaxMismatches - len(result.Mismatches); avail < room {
					room = avail
				}
			}
			result.Mismatches = append(result.Mismatches, mismatches[:room]...)
		}
	}
	sort.Slice(result.Mismatches, func(i, j int) bool {
		a, b := result.Mismatches[i], result.Mismatches[j]
		if a.RecordIndex != b.RecordIndex {
			return a.RecordIndex < b.RecordIndex
		}
		return a.Path < b.Path
	})
	return result, nil
}

// compareRecord flattens and normalizes both decodings of one record and
// returns the mismatches found, along with the number of distinct field
// paths examined.
func compareRecord(recordIndex int, first, second *value.Value, tolerance float64) ([]Mismatch, int) {
	rawA, rawB := flatten(first), flatten(second)

	paths := make(map[string]struct{}, len(rawA)+len(rawB))
	for p := range rawA {
		paths[p] = struct{}{}
	}
	for p := range rawB {
		paths[p] = struct{}{}
	}

	var mismatches []Mismatch
	for path := range paths {
		a, aOK := rawA[path]
		b, bOK := rawB[path]
		if !aOK || !bOK {
			mismatches = append(mismatches, Mismatch{
				RecordIndex: recordIndex,
				Path:        path,
				FirstPass:   a,
				SecondPass:  b,
				Category:    CategoryMissingField,
				Detail:      "field present on only one side",
			})
			continue
		}
		normA, normB := normalize.Value(a), normalize.Value(b)
		equal, category, detail := classify(a, b, normA, normB, tolerance)
		if equal {
			continue
		}
		mismatches = append(mismatches, Mismatch{
			RecordIndex: recordIndex,
			Path:        path,
			FirstPass:   a,
			SecondPass:  b,
			Category:    category,
			Detail:      detail,
		})
	}
	return mismatches, len(paths)
}
