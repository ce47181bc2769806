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

// Package copybook decodes fixed-length EBCDIC records into structured
// values, using a COBOL copybook as the schema.
//
// Compile a copybook once with [Compile] to obtain a [Schema]; the
// resulting value resolves every field's size and byte offset up front.
// Decode each record against it with [Schema.Decode], which selects each
// field's decoder from its usage as it walks the record.
//
// # Support status
//
// This package implements the fixed-length copybook subset described in its
// design notes: DISPLAY, BINARY/COMP/COMP-4, COMP-1, COMP-2, COMP-3,
// COMP-5, COMP-6, and SIGN SEPARATE usages, OCCURS with a fixed count, and
// REDEFINES. The following are explicitly out of scope:
//
//   - Variable-length or record-descriptor-word framing.
//   - OCCURS DEPENDING ON.
//   - Schema inference from data.
//   - Writing ASCII back out to EBCDIC.
package copybook
