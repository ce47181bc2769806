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

// Package cerrors holds the error kinds shared across the decoder's
// internal packages: schema (copybook syntax), layout (size/offset/
// REDEFINES resolution), decode (per-record, per-field), and framing
// (record stream length). The root package re-exports these as public
// types so callers can errors.As against a single, stable set.
package cerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for decode failures, matched via errors.Is/errors.As
// through DecodeError.Unwrap.
var (
	ErrNonDigitNibble  = errors.New("non-digit nibble in packed field")
	ErrInvalidSign     = errors.New("invalid sign nibble or character")
	ErrUnsupportedSize = errors.New("unsupported byte length for numeric usage")
	ErrUnknownUsage    = errors.New("unknown usage")
	ErrInvalidUTF8     = errors.New("invalid text for configured code page")
)

// SchemaError reports a copybook syntax or semantic error detected while
// parsing (C1). It is fatal at startup.
type SchemaError struct {
	Statement string // the offending statement text
	Reason    string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("copybook: schema error in statement %q: %s", e.Statement, e.Reason)
}

// LayoutError reports an unresolved REDEFINES, an empty picture, or a
// zero-size root detected while resolving layout (C2). It is fatal at
// startup.
type LayoutError struct {
	Field  string
	Reason string
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("copybook: layout error at field %q: %s", e.Field, e.Reason)
}

// DecodeError reports a failure decoding one field of one record (C4/C5).
// It attaches the field's dotted path and its byte range within the
// record so the caller can locate the failure without re-walking the
// tree. Record-fatal by default; a skip policy may downgrade it to a
// logged, skipped record.
type DecodeError struct {
	RecordIndex int
	Path        string
	Offset      int
	Size        int
	Err         error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("copybook: decode error: record %d, field %q, bytes [%d:%d]: %v",
		e.RecordIndex, e.Path, e.Offset, e.Offset+e.Size, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// FramingError reports a record stream whose length is not a whole
// multiple of the resolved record size. Run-fatal.
type FramingError struct {
	RecordSize int
	Remainder  int
}

func (e *FramingError) Error() string {
	return fmt.Sprintf("copybook: truncated trailing record: %d bytes left over, record size is %d", e.Remainder, e.RecordSize)
}
