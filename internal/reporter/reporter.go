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

// Package reporter implements C9: it renders a validation outcome in one
// of several formats, chosen by the output path's suffix. Every format
// carries the same summary and the same per-mismatch rows, sorted by
// (record index, field path).
package reporter

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/fixedrec/copybook/internal/validator"
	"github.com/fixedrec/copybook/internal/value"
)

// Row is one mismatch rendered for output.
type Row struct {
	RecordIndex int
	Path        string
	FirstPass   string
	SecondPass  string
	Category    string
	Detail      string
}

// Report is the rendering-agnostic validation outcome.
type Report struct {
	RunID         string  `yaml:"run_id"`
	RecordCount   int     `yaml:"record_count"`
	FieldCount    int     `yaml:"field_count"`
	MismatchCount int     `yaml:"mismatch_count"`
	MismatchRate  float64 `yaml:"mismatch_rate"`
	Rows          []Row   `yaml:"mismatches"`
}

// FromResult builds a Report from a validator.Result, stamping it with a
// fresh run identifier so separate report files from the same run can be
// correlated.
func FromResult(res *validator.Result) *Report {
	rows := make([]Row, len(res.Mismatches))
	for i, m := range res.Mismatches {
		rows[i] = Row{
			RecordIndex: m.RecordIndex,
			Path:        m.Path,
			FirstPass:   literalOf(m.FirstPass),
			SecondPass:  literalOf(m.SecondPass),
			Category:    m.Category,
			Detail:      m.Detail,
		}
	}
	return &Report{
		RunID:         uuid.NewString(),
		RecordCount:   res.RecordCount,
		FieldCount:    res.FieldCount,
		MismatchCount: res.MismatchCount,
		MismatchRate:  res.MismatchRate(),
		Rows:          rows,
	}
}

func literalOf(v *value.Value) string {
	if v == nil {
		return "<missing>"
	}
	return v.String()
}

// Format names a renderer, selected by output path suffix.
type Format int

const (
	Plain Format = iota
	Tabular
	Markup
	Structured
)

// DetectFormat maps a filename extension to a renderer. Unknown or absent
// extensions fall back to Plain.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".tsv":
		return Tabular
	case ".md", ".html", ".htm":
		return Markup
	case ".yaml", ".yml", ".json":
		return Structured
	default:
		return Plain
	}
}

// Write renders report to w using the format selected for outputPath.
func Write(w io.Writer, report *Report, outputPath string) error {
	switch DetectFormat(outputPath) {
	case Tabular:
		return writeTabular(w, report)
	case Markup:
		return writeMarkup(w, report)
	case Structured:
		return writeStructured(w, report)
	default:
		return writePlain(w, report)
	}
}
