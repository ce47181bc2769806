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

// Package cpybk tokenizes a copybook (the fixed-form COBOL data-division
// subset described in the design notes) and builds a field tree rooted at
// a synthetic level-0 node. It performs no layout: sizes and offsets are
// left zero for internal/layout to resolve.
package cpybk

import (
	"strconv"
	"strings"

	"github.com/fixedrec/copybook/internal/cerrors"
	"github.com/fixedrec/copybook/internal/schema"
)

var usageAliases = map[string]schema.Usage{
	"DISPLAY":         schema.Display,
	"COMP":            schema.Binary,
	"COMP-4":          schema.Binary,
	"COMPUTATIONAL":   schema.Binary,
	"COMPUTATIONAL-4": schema.Binary,
	"BINARY":          schema.Binary,
	"COMP-1":          schema.Comp1,
	"COMPUTATIONAL-1": schema.Comp1,
	"COMP-2":          schema.Comp2,
	"COMPUTATIONAL-2": schema.Comp2,
	"COMP-3":          schema.Comp3,
	"COMPUTATIONAL-3": schema.Comp3,
	"PACKED-DECIMAL":  schema.Comp3,
	"COMP-5":          schema.Comp5,
	"COMPUTATIONAL-5": schema.Comp5,
	"COMP-6":          schema.Comp6,
	"COMPUTATIONAL-6": schema.Comp6,
}

// Parse builds a field tree from copybook text. The returned root is a
// synthetic level-0 node whose children are the 01-level (or higher)
// records declared in text.
func Parse(text string) (*schema.Field, error) {
	cleaned := collapseWhitespace(stripComments(text))
	statements := splitStatements(cleaned)

	root := &schema.Field{Level: 0, Name: "ROOT"}
	stack := []*schema.Field{root}

	for _, stmt := range statements {
		f, err := parseStatement(stmt)
		if err != nil {
			return nil, err
		}

		for len(stack) > 1 && stack[len(stack)-1].Level >= f.Level {
			stack = stack[:len(stack)-1]
		}
		parent := stack[len(stack)-1]

		if f.Level == 88 {
			if parent.Conditions == nil {
				parent.Conditions = make(map[string]string)
			}
			parent.Conditions[f.Name] = f.Picture // literal stashed in Picture by parseStatement
			continue
		}

		parent.Children = append(parent.Children, f)
		stack = append(stack, f)
	}

	return root, nil
}

func parseStatement(stmt string) (*schema.Field, error) {
	tokens := tokenize(stmt)
	fail := func(reason string) (*schema.Field, error) {
		return nil, &cerrors.SchemaError{Statement: stmt, Reason: reason}
	}

	if len(tokens) < 2 {
		return fail("expected at least a level number and a name")
	}

	level, err := strconv.Atoi(tokens[0])
	if err != nil || level < 1 || (level > 49 && level != 88) {
		return fail("malformed level number")
	}

	name := tokens[1]
	if strings.ToUpper(name) == schema.FillerName {
		name = schema.FillerName
	} else if !isIdentifier(name) {
		return fail("malformed field name")
	}

	f := &schema.Field{Level: level, Name: name}

	if level == 88 {
		idx := 2
		if idx < len(tokens) && strings.EqualFold(tokens[idx], "VALUE") {
			idx++
		}
		if idx < len(tokens) && strings.EqualFold(tokens[idx], "IS") {
			idx++
		}
		if idx >= len(tokens) {
			return fail("88-level item missing VALUE literal")
		}
		f.Picture = unquote(tokens[idx]) // literal stored here, consumed by Parse
		return f, nil
	}

	idx := 2
	for idx < len(tokens) {
		tok := tokens[idx]
		upper := strings.ToUpper(tok)
		switch {
		case upper == "PIC" || upper == "PICTURE":
			idx++
			if idx < len(tokens) && strings.EqualFold(tokens[idx], "IS") {
				idx++
			}
			if idx >= len(tokens) {
				return fail("PIC clause missing picture string")
			}
			pic := tokens[idx]
			if err := validatePicture(pic); err != nil {
				return fail(err.Error())
			}
			f.Picture = pic
			idx++

		case upper == "USAGE":
			idx++
			if idx < len(tokens) && strings.EqualFold(tokens[idx], "IS") {
				idx++
			}
			if idx >= len(tokens) {
				return fail("USAGE clause missing kind")
			}
			usage, ok := usageAliases[strings.ToUpper(tokens[idx])]
			if !ok {
				return fail("unknown usage " + tokens[idx])
			}
			f.Usage = usage
			idx++

		case isBareUsage(upper):
			// A usage keyword may appear without a preceding "USAGE" token.
			f.Usage = usageAliases[upper]
			idx++

		case upper == "OCCURS":
			idx++
			if idx >= len(tokens) {
				return fail("OCCURS clause missing count")
			}
			n, err := strconv.Atoi(tokens[idx])
			if err != nil || n < 1 {
				return fail("OCCURS count must be a positive integer")
			}
			f.Occurs = n
			idx++
			if idx < len(tokens) && strings.EqualFold(tokens[idx], "TIMES") {
				idx++
			}

		case upper == "REDEFINES":
			idx++
			if idx >= len(tokens) {
				return fail("REDEFINES clause missing target name")
			}
			f.Redefines = tokens[idx]
			idx++

		case upper == "VALUE":
			idx++
			if idx < len(tokens) && strings.EqualFold(tokens[idx], "IS") {
				idx++
			}
			if idx >= len(tokens) {
				return fail("VALUE clause missing literal")
			}
			// VALUE on an elementary (non-88) item is accepted and its
			// literal skipped, not stored; it has no bearing on decoding.
			idx++

		case upper == "JUSTIFIED" || upper == "JUST":
			idx++
			if idx < len(tokens) && strings.EqualFold(tokens[idx], "RIGHT") {
				idx++
			}
			f.JustifiedRight = true

		case upper == "BLANK":
			idx++
			if idx < len(tokens) && strings.EqualFold(tokens[idx], "WHEN") {
				idx++
			}
			if idx < len(tokens) && strings.EqualFold(tokens[idx], "ZERO") {
				idx++
			}
			f.BlankWhenZero = true

		case upper == "SIGN":
			idx++
			if idx < len(tokens) && strings.EqualFold(tokens[idx], "IS") {
				idx++
			}
			if idx >= len(tokens) {
				return fail("SIGN clause missing LEADING/TRAILING")
			}
			switch strings.ToUpper(tokens[idx]) {
			case "LEADING":
				f.SignLeading = true
			case "TRAILING":
				f.SignLeading = false
			default:
				return fail("SIGN clause must be LEADING or TRAILING")
			}
			idx++
			if idx < len(tokens) && strings.EqualFold(tokens[idx], "SEPARATE") {
				f.SignSeparate = true
				idx++
				if idx < len(tokens) && strings.EqualFold(tokens[idx], "CHARACTER") {
					idx++
				}
			}

		case upper == "SYNCHRONIZED" || upper == "SYNC":
			idx++
			f.Synchronized = true
			if idx < len(tokens) && (strings.EqualFold(tokens[idx], "LEFT") || strings.EqualFold(tokens[idx], "RIGHT")) {
				idx++
			}

		default:
			return fail("unrecognized clause token " + tok)
		}
	}

	return f, nil
}

func isBareUsage(upper string) bool {
	_, ok := usageAliases[upper]
	return ok && upper != "DISPLAY"
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !(r == '-' || (r >= '0' && r <= '9') || (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')) {
			return false
		}
	}
	return true
}

func unquote(tok string) string {
	if len(tok) >= 2 && (tok[0] == '\'' || tok[0] == '"') && tok[len(tok)-1] == tok[0] {
		return tok[1 : len(tok)-1]
	}
	return tok
}

// validatePicture performs a cheap syntactic sanity check: balanced
// parentheses and a restricted character set. Semantic normalization
// (expanding repeat counts, computing digit/scale counts) happens in
// internal/layout, which has the usage context needed to size the field.
func validatePicture(pic string) error {
	depth := 0
	for _, r := range pic {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return &pictureError{"unmatched ')' in picture clause"}
			}
		}
	}
	if depth != 0 {
		return &pictureError{"unterminated '(' in picture clause"}
	}
	if pic == "" {
		return &pictureError{"empty picture clause"}
	}
	return nil
}

type pictureError struct{ msg string }

func (e *pictureError) Error() string { return e.msg }
