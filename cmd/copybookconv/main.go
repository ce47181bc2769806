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

// Command copybookconv decodes a fixed-length EBCDIC file against a
// COBOL copybook and, optionally, validates its own decoding with a
// second, independent pass.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fixedrec/copybook"
	"github.com/fixedrec/copybook/internal/config"
	"github.com/fixedrec/copybook/internal/summary"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// First pass: only pull --config out, so its values can seed the rest
	// of the flags' defaults (precedence: defaults < YAML < flags). Every
	// other argument is left for the full flag set parsed below.
	configPath := ""
	for i := 0; i < len(args); i++ {
		if !strings.HasPrefix(args[i], "-") {
			continue
		}
		name, val, hasVal := strings.Cut(strings.TrimLeft(args[i], "-"), "=")
		if name != "config" {
			continue
		}
		if !hasVal && i+1 < len(args) {
			val = args[i+1]
		}
		configPath = val
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	fs := flag.NewFlagSet("copybookconv", flag.ContinueOnError)
	fs.String("config", configPath, "path to a YAML config file layered under built-in defaults")
	copybookPath := fs.String("copybook", cfg.Copybook.File, "path to the copybook schema file")
	inputPath := fs.String("input", cfg.Input.File, "path to the fixed-length input file")
	codePage := fs.String("codepage", cfg.Input.Encoding, "EBCDIC code page: cp037, cp1047, or cp1140")
	outputPath := fs.String("output", cfg.Output.File, "path to write decoded records to")
	outputFormat := fs.String("format", cfg.Output.Format, "output record format: plain, tabular, or structured")
	validate := fs.Bool("validate", cfg.Validation.Enabled, "run the dual-pass validator after decoding")
	tolerance := fs.Float64("tolerance", cfg.Validation.Tolerance, "numeric tolerance for the validator")
	reportPath := fs.String("report", cfg.Validation.ReportFile, "validation report path (format chosen by extension)")
	errorThreshold := fs.Float64("error-threshold", cfg.Validation.ErrorThreshold, "maximum tolerated mismatch rate before a non-zero exit")
	workers := fs.Int("workers", cfg.Performance.Workers, "maximum concurrent decode workers (0 = unlimited)")
	bufferSize := fs.Int("buffer-size", cfg.Performance.BufferSize, "input read buffer size in bytes")
	skipOnError := fs.Bool("skip-on-error", cfg.SkipOnError, "skip records that fail to decode instead of aborting the run")
	summaryPath := fs.String("summary", cfg.Summary, "optional path to write the end-of-run summary")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *copybookPath == "" || *inputPath == "" {
		fmt.Fprintln(os.Stderr, "copybookconv: --copybook and --input are required")
		return 2
	}

	started := time.Now()
	run := summary.Run{CopybookFile: *copybookPath, InputFile: *inputPath, OutputFile: *outputPath, Started: started}

	copybookText, err := os.ReadFile(*copybookPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	schema, err := copybook.Compile(string(copybookText), copybook.WithCodePage(*codePage))
	if err != nil {
		fmt.Fprintln(os.Stderr, "copybookconv: compile:", err)
		return 1
	}

	in, err := os.Open(*inputPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer in.Close()

	records, err := readAllRecords(in, schema.RecordSize(), *bufferSize)
	if err != nil {
		fmt.Fprintln(os.Stderr, "copybookconv: read:", err)
		return 1
	}

	progress := summary.NewProgress(os.Stderr, 10000)
	decoded, decodeErrs := decodeRecords(schema, records, *workers, *skipOnError, progress)
	processed := 0
	for _, v := range decoded {
		if v != nil {
			processed++
		}
	}
	run.RecordsProcessed = processed
	run.RecordsSkipped = len(records) - processed
	run.DecodeErrors = len(decodeErrs)
	if len(decodeErrs) > 0 && !*skipOnError {
		for _, e := range decodeErrs {
			fmt.Fprintln(os.Stderr, "copybookconv: decode:", e)
		}
		return 1
	}

	exitCode := 0
	if *outputPath != "" {
		out, err := os.Create(*outputPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		if err := writeRecords(out, decodedOnly(decoded), *outputFormat); err != nil {
			fmt.Fprintln(os.Stderr, "copybookconv: write:", err)
			exitCode = 1
		}
		out.Close()
	}

	if *validate {
		result, err := schema.Validate(records, decoded, copybook.WithTolerance(*tolerance), copybook.WithMaxMismatches(10000))
		if err != nil {
			fmt.Fprintln(os.Stderr, "copybookconv: validate:", err)
			return 1
		}
		run.Mismatches = result.MismatchCount
		run.ValidationReport = *reportPath

		var reportWriter io.Writer = os.Stderr
		if *reportPath != "" {
			reportFile, err := os.Create(*reportPath)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return 1
			}
			defer reportFile.Close()
			reportWriter = reportFile
		}
		if err := copybook.WriteReport(reportWriter, result, *reportPath); err != nil {
			fmt.Fprintln(os.Stderr, "copybookconv: report:", err)
			exitCode = 1
		}
		if result.MismatchRate() > *errorThreshold {
			fmt.Fprintf(os.Stderr, "copybookconv: mismatch rate %.6f exceeds threshold %.6f\n", result.MismatchRate(), *errorThreshold)
			exitCode = 1
		}
	}

	run.Finished = time.Now()
	if *summaryPath != "" {
		f, err := os.Create(*summaryPath)
		if err == nil {
			run.Write(f)
			f.Close()
		}
	}
	run.Write(os.Stderr)

	return exitCode
}

// readAllRecords reads every whole record in r into memory. A trailing
// partial record is a FramingError, surfaced to the caller unchanged.
func readAllRecords(r io.Reader, recordSize, bufferSize int) ([][]byte, error) {
	reader := copybook.NewReader(r, recordSize, bufferSize)
	var records [][]byte
	for {
		rec, err := reader.Next()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return records, err
		}
		records = append(records, rec)
	}
}

// decodeRecords decodes every record, optionally skipping (rather than
// aborting on) individual decode errors. Without skipOnError, the first
// decode error aborts and the returned slice is nil. Otherwise the
// returned slice is len(records) long and index-aligned with it — a
// skipped record leaves a nil hole rather than shifting every later
// index — so it can be passed to Schema.Validate alongside the original
// records unmodified.
func decodeRecords(schema *copybook.Schema, records [][]byte, workers int, skipOnError bool, progress *summary.Progress) ([]*copybook.Value, []error) {
	if !skipOnError {
		decoded, err := schema.DecodeAll(context.Background(), records, copybook.WithWorkers(workers))
		if err != nil {
			return nil, []error{err}
		}
		for range decoded {
			progress.Tick()
		}
		return decoded, nil
	}

	decoded := make([]*copybook.Value, len(records))
	var errs []error
	for i, rec := range records {
		v, err := schema.Decode(rec, i)
		progress.Tick()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		decoded[i] = v
	}
	return decoded, errs
}

// decodedOnly drops the nil holes decodeRecords leaves for skipped records,
// for output writers that have no use for an "absent" placeholder.
func decodedOnly(decoded []*copybook.Value) []*copybook.Value {
	out := make([]*copybook.Value, 0, len(decoded))
	for _, v := range decoded {
		if v != nil {
			out = append(out, v)
		}
	}
	return out
}

func writeRecords(w io.Writer, records []*copybook.Value, format string) error {
	switch format {
	case "structured":
		for _, rec := range records {
			if _, err := fmt.Fprintln(w, rec.String()); err != nil {
				return err
			}
		}
		return nil
	case "tabular":
		for i, rec := range records {
			if _, err := fmt.Fprintf(w, "%d\t%s\n", i, rec.String()); err != nil {
				return err
			}
		}
		return nil
	default:
		for _, rec := range records {
			if _, err := fmt.Fprintln(w, rec.String()); err != nil {
				return err
			}
		}
		return nil
	}
}
