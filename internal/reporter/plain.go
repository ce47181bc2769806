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

func writePlain(w io.Writer, r *Report) error {
	if _, err := fmt.Fprintf(w, "validation run %s\n", r.RunID); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "records=%d fields=%d mismatches=%d rate=%.6f\n",
		r.RecordCount, r.FieldCount, r.MismatchCount, r.MismatchRate); err != nil {
		return err
	}
	for _, row := range r.Rows {
		_, err := fmt.Fprintf(w, "record %d: %s: %s (first=%s second=%s) %s\n",
			row.RecordIndex, row.Path, row.Category, row.FirstPass, row.SecondPass, row.Detail)
		if err != nil {
			return err
		}
	}
	return nil
}
