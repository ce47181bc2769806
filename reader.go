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

import (
	"bufio"
	"io"

	"github.com/fixedrec/copybook/internal/cerrors"
)

const defaultReaderBuffer = 64 * 1024

// Reader streams fixed-length records of size recordSize from an
// underlying byte stream. No character decoding happens here; Reader
// hands back raw bytes for the walker to interpret.
type Reader struct {
	br         *bufio.Reader
	recordSize int
	scratch    []byte
}

// NewReader wraps r, reading recordSize-byte records through an internal
// buffer of bufSize bytes (0 selects a 64KiB default).
func NewReader(r io.Reader, recordSize, bufSize int) *Reader {
	if bufSize <= 0 {
		bufSize = defaultReaderBuffer
	}
	return &Reader{
		br:         bufio.NewReaderSize(r, bufSize),
		recordSize: recordSize,
		scratch:    make([]byte, recordSize),
	}
}

// Next returns the next record's bytes. It returns io.EOF once every
// whole record has been read. A trailing partial record is a
// FramingError, not io.EOF.
//
// The returned slice is a fresh copy, safe to retain past the next call
// to Next — a conservative choice over reusing the scratch buffer, since
// callers frequently hand records off to concurrent decode workers.
func (r *Reader) Next() ([]byte, error) {
	n, err := io.ReadFull(r.br, r.scratch)
	switch {
	case err == io.EOF:
		return nil, io.EOF
	case err == io.ErrUnexpectedEOF:
		return nil, &cerrors.FramingError{RecordSize: r.recordSize, Remainder: n}
	case err != nil:
		return nil, err
	}
	out := make([]byte, r.recordSize)
	copy(out, r.scratch)
	return out, nil
}
