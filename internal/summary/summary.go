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

// Package summary logs run progress and writes the end-of-run summary.
// It deliberately stays on the standard log package rather than a
// structured-logging library, matching the rest of the ambient stack.
package summary

import (
	"fmt"
	"io"
	"log"
	"time"
)

const defaultInterval = 10000

// Progress logs a line every N records decoded, so a long run shows signs
// of life without flooding the log.
type Progress struct {
	logger   *log.Logger
	interval int
	count    int
}

// NewProgress returns a Progress that logs to w every interval records.
// interval <= 0 uses the default of 10,000.
func NewProgress(w io.Writer, interval int) *Progress {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Progress{logger: log.New(w, "", log.LstdFlags), interval: interval}
}

// Tick records one more decoded record, logging if the interval is hit.
func (p *Progress) Tick() {
	p.count++
	if p.count%p.interval == 0 {
		p.logger.Printf("processed %d records", p.count)
	}
}

// Count returns the number of records ticked so far.
func (p *Progress) Count() int { return p.count }

// Run captures the facts of one conversion run for the end-of-run summary.
type Run struct {
	CopybookFile     string
	InputFile        string
	OutputFile       string
	RecordsProcessed int
	RecordsSkipped   int
	DecodeErrors     int
	ValidationReport string
	Mismatches       int
	Started          time.Time
	Finished         time.Time
}

// Write renders a human-readable end-of-run summary to w.
func (r Run) Write(w io.Writer) error {
	_, err := fmt.Fprintf(w, ""+
		"run summary\n"+
		"  copybook:   %s\n"+
		"  input:      %s\n"+
		"  output:     %s\n"+
		"  records:    %d processed, %d skipped\n"+
		"  errors:     %d\n"+
		"  duration:   %s\n",
		r.CopybookFile, r.InputFile, r.OutputFile,
		r.RecordsProcessed, r.RecordsSkipped, r.DecodeErrors,
		r.Finished.Sub(r.Started))
	if err != nil {
		return err
	}
	if r.ValidationReport != "" {
		_, err = fmt.Fprintf(w, "  validation: report=%s mismatches=%d\n", r.ValidationReport, r.Mismatches)
	}
	return err
}
