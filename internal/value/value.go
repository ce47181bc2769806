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

// Package value defines the decoded-record value model: a closed tagged
// variant over {group, sequence, int, decimal, text, float, bytes}, per
// the redesign note in spec §9 replacing "nested dictionaries" with an
// explicit, closed representation the walker and normalizer branch over
// directly instead of type-switching on interface{}.
package value

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind discriminates a Value's active field.
type Kind int

const (
	Group Kind = iota
	Sequence
	Int
	Decimal
	Text
	Float
	Bytes
)

func (k Kind) String() string {
	switch k {
	case Group:
		return "group"
	case Sequence:
		return "sequence"
	case Int:
		return "int"
	case Decimal:
		return "decimal"
	case Text:
		return "text"
	case Float:
		return "float"
	case Bytes:
		return "bytes"
	default:
		return "unknown"
	}
}

// Field is one named member of a Group value, in declaration order.
type Field struct {
	Name  string
	Value *Value
}

// Fixed is a fixed-scale decimal: the integer Unscaled value divided by
// 10^Scale. Integer and fixed-scale decimal comparisons are always exact;
// tolerance only ever applies to Float (spec §9).
type Fixed struct {
	Unscaled int64
	Scale    int
}

func (f Fixed) Float() float64 {
	return float64(f.Unscaled) / math.Pow10(f.Scale)
}

func (f Fixed) String() string {
	s := strconv.FormatInt(f.Unscaled, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	for len(s) <= f.Scale {
		s = "0" + s
	}
	if f.Scale == 0 {
		if neg {
			return "-" + s
		}
		return s
	}
	whole, frac := s[:len(s)-f.Scale], s[len(s)-f.Scale:]
	out := whole + "." + frac
	if neg {
		out = "-" + out
	}
	return out
}

// Value is a single decoded datum: a group, a sequence of values, or a
// scalar of one of the remaining kinds.
type Value struct {
	Kind Kind

	GroupFields []Field
	Items       []*Value

	IntValue     int64
	DecimalValue Fixed
	TextValue    string
	FloatValue   float64
	BytesValue   []byte
}

// NewGroup builds a Group value.
func NewGroup(fields []Field) *Value { return &Value{Kind: Group, GroupFields: fields} }

// NewSequence builds a Sequence value.
func NewSequence(items []*Value) *Value { return &Value{Kind: Sequence, Items: items} }

// NewInt builds an Int value.
func NewInt(v int64) *Value { return &Value{Kind: Int, IntValue: v} }

// NewDecimal builds a Decimal value.
func NewDecimal(unscaled int64, scale int) *Value {
	return &Value{Kind: Decimal, DecimalValue: Fixed{Unscaled: unscaled, Scale: scale}}
}

// NewText builds a Text value.
func NewText(v string) *Value { return &Value{Kind: Text, TextValue: v} }

// NewFloat builds a Float value.
func NewFloat(v float64) *Value { return &Value{Kind: Float, FloatValue: v} }

// NewBytes builds a Bytes value.
func NewBytes(v []byte) *Value { return &Value{Kind: Bytes, BytesValue: v} }

// Get returns the named field of a Group value, or nil if absent or if v
// is not a Group.
func (v *Value) Get(name string) *Value {
	if v == nil || v.Kind != Group {
		return nil
	}
	for _, f := range v.GroupFields {
		if f.Name == name {
			return f.Value
		}
	}
	return nil
}

// IsNumeric reports whether v's kind is one that participates in numeric
// comparison (Int, Decimal, or Float).
func (v *Value) IsNumeric() bool {
	return v != nil && (v.Kind == Int || v.Kind == Decimal || v.Kind == Float)
}

// AsFloat returns v's numeric value as a float64. Panics if !v.IsNumeric().
func (v *Value) AsFloat() float64 {
	switch v.Kind {
	case Int:
		return float64(v.IntValue)
	case Decimal:
		return v.DecimalValue.Float()
	case Float:
		return v.FloatValue
	default:
		panic("value: AsFloat on non-numeric kind " + v.Kind.String())
	}
}

// String renders v for debugging and for textual serializer output.
func (v *Value) String() string {
	if v == nil {
		return "<absent>"
	}
	switch v.Kind {
	case Group:
		var b strings.Builder
		b.WriteByte('{')
		for i, f := range v.GroupFields {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s: %s", f.Name, f.Value.String())
		}
		b.WriteByte('}')
		return b.String()
	case Sequence:
		var b strings.Builder
		b.WriteByte('[')
		for i, it := range v.Items {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(it.String())
		}
		b.WriteByte(']')
		return b.String()
	case Int:
		return strconv.FormatInt(v.IntValue, 10)
	case Decimal:
		return v.DecimalValue.String()
	case Text:
		return v.TextValue
	case Float:
		return strconv.FormatFloat(v.FloatValue, 'g', -1, 64)
	case Bytes:
		return fmt.Sprintf("% x", v.BytesValue)
	default:
		return "<unknown>"
	}
}
