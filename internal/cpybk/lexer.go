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

package cpybk

import "strings"

// stripComments removes full comment lines (conventionally marked with an
// indicator column, which this subset treats as any line whose first
// non-space character is '*') and inline "*>" end-of-line comments.
func stripComments(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "*") {
			continue
		}
		if idx := strings.Index(line, "*>"); idx >= 0 {
			line = line[:idx]
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// collapseWhitespace reduces every run of whitespace outside a quoted
// literal to a single space, so that later tokenization can split on a
// single space without losing literal content.
func collapseWhitespace(text string) string {
	var b strings.Builder
	inQuote := byte(0)
	lastWasSpace := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		if inQuote != 0 {
			b.WriteByte(c)
			if c == inQuote {
				inQuote = 0
			}
			lastWasSpace = false
			continue
		}
		if c == '\'' || c == '"' {
			inQuote = c
			b.WriteByte(c)
			lastWasSpace = false
			continue
		}
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			if !lastWasSpace {
				b.WriteByte(' ')
			}
			lastWasSpace = true
			continue
		}
		b.WriteByte(c)
		lastWasSpace = false
	}
	return strings.TrimSpace(b.String())
}

// splitStatements splits cleaned copybook text into period-terminated
// statements, ignoring periods inside quoted literals. Empty statements
// are discarded.
func splitStatements(text string) []string {
	var stmts []string
	var cur strings.Builder
	inQuote := byte(0)
	for i := 0; i < len(text); i++ {
		c := text[i]
		if inQuote != 0 {
			cur.WriteByte(c)
			if c == inQuote {
				inQuote = 0
			}
			continue
		}
		switch c {
		case '\'', '"':
			inQuote = c
			cur.WriteByte(c)
		case '.':
			s := strings.TrimSpace(cur.String())
			if s != "" {
				stmts = append(stmts, s)
			}
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	if s := strings.TrimSpace(cur.String()); s != "" {
		stmts = append(stmts, s)
	}
	return stmts
}

// tokenize splits a single (already whitespace-collapsed) statement into
// tokens, treating a quoted literal as one token including its quotes.
func tokenize(stmt string) []string {
	var tokens []string
	var cur strings.Builder
	inQuote := byte(0)
	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}
	for i := 0; i < len(stmt); i++ {
		c := stmt[i]
		if inQuote != 0 {
			cur.WriteByte(c)
			if c == inQuote {
				inQuote = 0
				flush()
			}
			continue
		}
		if c == '\'' || c == '"' {
			flush()
			inQuote = c
			cur.WriteByte(c)
			continue
		}
		if c == ' ' {
			flush()
			continue
		}
		cur.WriteByte(c)
	}
	flush()
	return tokens
}
