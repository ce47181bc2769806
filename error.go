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

import "github.com/fixedrec/copybook/internal/cerrors"

// SchemaError reports a copybook syntax or semantic error; fatal at
// compile time.
type SchemaError = cerrors.SchemaError

// LayoutError reports an unresolved REDEFINES or a zero-size record;
// fatal at compile time.
type LayoutError = cerrors.LayoutError

// DecodeError reports a record-fatal decode failure, with the field path
// and byte range that triggered it.
type DecodeError = cerrors.DecodeError

// FramingError reports a truncated trailing record; run-fatal.
type FramingError = cerrors.FramingError

// Sentinel decode errors, suitable for errors.Is.
var (
	ErrNonDigitNibble  = cerrors.ErrNonDigitNibble
	ErrInvalidSign     = cerrors.ErrInvalidSign
	ErrUnsupportedSize = cerrors.ErrUnsupportedSize
	ErrUnknownUsage    = cerrors.ErrUnknownUsage
	ErrInvalidUTF8     = cerrors.ErrInvalidUTF8
)
