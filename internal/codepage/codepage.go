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

// Package codepage wraps the fixed 8-bit EBCDIC code pages the decoders
// need, registered once at startup rather than assumed as global state
// (spec §9, "implicit encoding assumptions"). Alphanumeric decoding goes
// through golang.org/x/text/encoding/charmap; zoned-decimal digit and
// sign-nibble conventions are the same across every EBCDIC code page this
// package registers, so they are implemented directly rather than routed
// through the charmap decoder (whose job is printable glyphs, not the
// sign overpunch in the last byte of a signed zoned number).
package codepage

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// CodePage decodes bytes encoded in one EBCDIC variant.
type CodePage struct {
	name string
	dec  *encoding.Decoder
}

// Name returns the registered name this CodePage was looked up by.
func (c *CodePage) Name() string { return c.name }

// DecodeText decodes b (an alphanumeric DISPLAY field's raw bytes) to a
// UTF-8 string.
func (c *CodePage) DecodeText(b []byte) (string, error) {
	out, err := c.dec.Bytes(b)
	if err != nil {
		return "", fmt.Errorf("codepage %s: %w", c.name, err)
	}
	return string(out), nil
}

// Digit reports the decimal digit encoded by b's low nibble, used for
// every byte of a zoned-numeric field except (possibly) the last.
func (c *CodePage) Digit(b byte) (int, bool) {
	d := int(b & 0x0F)
	if d > 9 {
		return 0, false
	}
	return d, true
}

// Sign reports the sign carried by a zoned-numeric field's final byte:
// its low nibble is still the last digit, and its high nibble is the
// overpunched sign (0xC/0xF positive, 0xD negative). This convention is
// shared by CP037, CP1047, and CP1140 alike.
func (c *CodePage) Sign(b byte) (negative bool, ok bool) {
	switch b >> 4 {
	case 0xC, 0xF:
		return false, true
	case 0xD:
		return true, true
	default:
		return false, false
	}
}

var registry = map[string]*CodePage{
	"cp037":  {name: "cp037", dec: charmap.CodePage037.NewDecoder()},
	"cp1047": {name: "cp1047", dec: charmap.CodePage1047.NewDecoder()},
	"cp1140": {name: "cp1140", dec: charmap.CodePage1140.NewDecoder()},
}

// Default is the code page used when none is configured: IBM code page
// 037, the most common mainframe EBCDIC variant.
const Default = "cp037"

// Lookup returns the registered CodePage for name, or an error if name is
// not one of the registered alternatives.
func Lookup(name string) (*CodePage, error) {
	if name == "" {
		name = Default
	}
	cp, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("codepage: unknown code page %q", name)
	}
	return cp, nil
}
