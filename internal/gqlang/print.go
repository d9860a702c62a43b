// Copyright 2019 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package gqlang

import (
	"strings"
	"unicode/utf8"
)

// String returns the selection set in the form "{ foo bar }". An empty or nil
// selection set is printed as "{ }".
func (set *SelectionSet) String() string {
	sb := new(strings.Builder)
	set.writeTo(sb)
	return sb.String()
}

// Body returns the selection set's fields separated by single spaces, without
// the enclosing braces.
func (set *SelectionSet) Body() string {
	sb := new(strings.Builder)
	set.writeBody(sb)
	return sb.String()
}

func (set *SelectionSet) writeTo(sb *strings.Builder) {
	sb.WriteString("{ ")
	if set.Len() > 0 {
		set.writeBody(sb)
		sb.WriteByte(' ')
	}
	sb.WriteByte('}')
}

func (set *SelectionSet) writeBody(sb *strings.Builder) {
	if set == nil {
		return
	}
	for i, sel := range set.Sel {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sel.Field.writeTo(sb)
	}
}

// Len returns the number of selections in the set. A nil set has length 0.
func (set *SelectionSet) Len() int {
	if set == nil {
		return 0
	}
	return len(set.Sel)
}

// String returns the field in the form "alias: name(args) { ... }".
func (f *Field) String() string {
	sb := new(strings.Builder)
	f.writeTo(sb)
	return sb.String()
}

func (f *Field) writeTo(sb *strings.Builder) {
	if f.Alias != nil {
		sb.WriteString(f.Alias.Value)
		sb.WriteString(": ")
	}
	sb.WriteString(f.Name.String())
	if f.Arguments != nil {
		f.Arguments.writeTo(sb)
	}
	if f.SelectionSet != nil {
		sb.WriteByte(' ')
		f.SelectionSet.writeTo(sb)
	}
}

// String returns the arguments in the form "(a: 1, b: 2)".
func (args *Arguments) String() string {
	sb := new(strings.Builder)
	args.writeTo(sb)
	return sb.String()
}

func (args *Arguments) writeTo(sb *strings.Builder) {
	sb.WriteByte('(')
	if args != nil {
		for i, arg := range args.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(arg.Name.String())
			sb.WriteString(": ")
			arg.Value.writeTo(sb)
		}
	}
	sb.WriteByte(')')
}

// String returns the value as a GraphQL literal.
func (v *InputValue) String() string {
	sb := new(strings.Builder)
	v.writeTo(sb)
	return sb.String()
}

func (v *InputValue) writeTo(sb *strings.Builder) {
	switch {
	case v == nil || v.Null != nil:
		sb.WriteString("null")
	case v.Scalar != nil:
		sb.WriteString(v.Scalar.String())
	case v.List != nil:
		sb.WriteByte('[')
		for i, elem := range v.List.Values {
			if i > 0 {
				sb.WriteString(", ")
			}
			elem.writeTo(sb)
		}
		sb.WriteByte(']')
	case v.InputObject != nil:
		sb.WriteByte('{')
		for i, field := range v.InputObject.Fields {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(field.Name.String())
			sb.WriteString(": ")
			field.Value.writeTo(sb)
		}
		sb.WriteByte('}')
	default:
		panic("unknown input value")
	}
}

// Quote returns a double-quoted GraphQL string literal representing s.
// Quotation marks, backslashes, and control characters are escaped. Other
// Unicode characters are copied as-is. Invalid UTF-8 bytes are replaced with
// U+FFFD.
func Quote(s string) string {
	const hex = "0123456789abcdef"

	sb := new(strings.Builder)
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(s); {
		c := s[i]
		if c >= utf8.RuneSelf {
			r, size := utf8.DecodeRuneInString(s[i:])
			if r == utf8.RuneError && size == 1 {
				sb.WriteRune('\uFFFD')
			} else {
				sb.WriteString(s[i : i+size])
			}
			i += size
			continue
		}
		switch c {
		case '"', '\\':
			sb.WriteByte('\\')
			sb.WriteByte(c)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if c < 0x20 || c == 0x7f {
				sb.WriteString(`\u00`)
				sb.WriteByte(hex[c>>4])
				sb.WriteByte(hex[c&0xf])
			} else {
				sb.WriteByte(c)
			}
		}
		i++
	}
	sb.WriteByte('"')
	return sb.String()
}
