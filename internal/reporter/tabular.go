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

package reporter

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"golang.org/x/term"
)

const defaultTermWidth = 100

// terminalWidth returns the width to wrap the detail column to. When w is
// a terminal, it asks the terminal directly; otherwise it falls back to a
// fixed width so piped/file output stays deterministic.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return defaultTermWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultTermWidth
	}
	return width
}

// writeTabular renders one CSV-style row per mismatch, preceded by a
// header row and the run summary as comment lines.
func writeTabular(w io.Writer, r *Report) error {
	width := terminalWidth(w)
	detailLimit := width - 60
	if detailLimit < 20 {
		detailLimit = 20
	}

	if _, err := fmt.Fprintf(w, "# run_id,%s\n", r.RunID); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "# records,%d,fields,%d,mismatches,%d,rate,%s\n",
		r.RecordCount, r.FieldCount, r.MismatchCount, strconv.FormatFloat(r.MismatchRate, 'f', 6, 64)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "record_index,field_path,category,first_pass,second_pass,detail"); err != nil {
		return err
	}
	for _, row := range r.Rows {
		detail := row.Detail
		if len(detail) > detailLimit {
			detail = detail[:detailLimit]
		}
		_, err := fmt.Fprintf(w, "%d,%s,%s,%s,%s,%s\n",
			row.RecordIndex, csvField(row.Path), row.Category, csvField(row.FirstPass), csvField(row.SecondPass), csvField(detail))
		if err != nil {
			return err
		}
	}
	return nil
}

func csvField(s string) string {
	needsQuote := false
	for _, r := range s {
		if r == ',' || r == '"' || r == '\n' {
			needsQuote = true
			break
		}
	}
	if !needsQuote {
		return s
	}
	quoted := make([]byte, 0, len(s)+2)
	quoted = append(quoted, '"')
	for i := 0; i < len(s); i++ {
		if s[i] == '"' {
			quoted = append(quoted, '"')
		}
		quoted = append(quoted, s[i])
	}
	quoted = append(quoted, '"')
	return string(quoted)
}
