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
)

// writeMarkup renders a marked-up hierarchical document: a summary
// section followed by one subsection per record that has mismatches.
func writeMarkup(w io.Writer, r *Report) error {
	if _, err := fmt.Fprintf(w, "# Validation report %s\n\n", r.RunID); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "- records: %d\n- fields: %d\n- mismatches: %d\n- rate: %.6f\n\n",
		r.RecordCount, r.FieldCount, r.MismatchCount, r.MismatchRate); err != nil {
		return err
	}

	currentRecord := -1
	for _, row := range r.Rows {
		if row.RecordIndex != currentRecord {
			if currentRecord != -1 {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, "## Record %d\n\n", row.RecordIndex); err != nil {
				return err
			}
			currentRecord = row.RecordIndex
		}
		_, err := fmt.Fprintf(w, "- `%s` **%s** — first `%s`, second `%s`: %s\n",
			row.Path, row.Category, row.FirstPass, row.SecondPass, row.Detail)
		if err != nil {
			return err
		}
	}
	return nil
}
