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
	"strconv"
	"strings"
	"testing"
)

func TestSelectionSetString(t *testing.T) {
	tests := []struct {
		name     string
		set      *SelectionSet
		wantBody string
		want     string
	}{
		{
			name:     "Nil",
			set:      nil,
			wantBody: "",
			want:     "{ }",
		},
		{
			name:     "Empty",
			set:      &SelectionSet{},
			wantBody: "",
			want:     "{ }",
		},
		{
			name: "Fields",
			set: &SelectionSet{Sel: []*Selection{
				{Field: &Field{Name: &Name{Value: "id"}}},
				{Field: &Field{Name: &Name{Value: "name"}}},
			}},
			wantBody: "id name",
			want:     "{ id name }",
		},
		{
			name: "Nested",
			set: &SelectionSet{Sel: []*Selection{
				{Field: &Field{
					Name: &Name{Value: "user"},
					SelectionSet: &SelectionSet{Sel: []*Selection{
						{Field: &Field{Name: &Name{Value: "id"}}},
					}},
				}},
			}},
			wantBody: "user { id }",
			want:     "{ user { id } }",
		},
		{
			name: "EmptyNested",
			set: &SelectionSet{Sel: []*Selection{
				{Field: &Field{
					Name:         &Name{Value: "user"},
					SelectionSet: &SelectionSet{},
				}},
			}},
			wantBody: "user { }",
			want:     "{ user { } }",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.set.Body(); got != test.wantBody {
				t.Errorf("Body() = %q; want %q", got, test.wantBody)
			}
			if got := test.set.String(); got != test.want {
				t.Errorf("String() = %q; want %q", got, test.want)
			}
		})
	}
}

func TestFieldString(t *testing.T) {
	intArg := func(name, raw string) *Argument {
		return &Argument{
			Name:  &Name{Value: name},
			Value: &InputValue{Scalar: &ScalarValue{Type: IntScalar, Raw: raw}},
		}
	}
	tests := []struct {
		name  string
		field *Field
		want  string
	}{
		{
			name:  "Bare",
			field: &Field{Name: &Name{Value: "id"}},
			want:  "id",
		},
		{
			name: "Alias",
			field: &Field{
				Alias:        &Name{Value: "allUsers"},
				Name:         &Name{Value: "users"},
				SelectionSet: &SelectionSet{Sel: []*Selection{{Field: &Field{Name: &Name{Value: "id"}}}}},
			},
			want: "allUsers: users { id }",
		},
		{
			name: "ArgumentsOnly",
			field: &Field{
				Name:      &Name{Value: "deleteUser"},
				Arguments: &Arguments{Args: []*Argument{intArg("id", "123")}},
			},
			want: "deleteUser(id: 123)",
		},
		{
			name: "EmptyArguments",
			field: &Field{
				Name:      &Name{Value: "logout"},
				Arguments: &Arguments{},
			},
			want: "logout()",
		},
		{
			name: "Everything",
			field: &Field{
				Alias:     &Name{Value: "first"},
				Name:      &Name{Value: "users"},
				Arguments: &Arguments{Args: []*Argument{intArg("limit", "10"), intArg("offset", "0")}},
				SelectionSet: &SelectionSet{Sel: []*Selection{
					{Field: &Field{Name: &Name{Value: "id"}}},
				}},
			},
			want: "first: users(limit: 10, offset: 0) { id }",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.field.String(); got != test.want {
				t.Errorf("String() = %q; want %q", got, test.want)
			}
		})
	}
}

func TestInputValueString(t *testing.T) {
	str := func(s string) *InputValue {
		return &InputValue{Scalar: &ScalarValue{Type: StringScalar, Raw: Quote(s)}}
	}
	tests := []struct {
		name  string
		value *InputValue
		want  string
	}{
		{
			name:  "Nil",
			value: nil,
			want:  "null",
		},
		{
			name:  "Null",
			value: &InputValue{Null: &Name{Value: "null"}},
			want:  "null",
		},
		{
			name:  "Float",
			value: &InputValue{Scalar: &ScalarValue{Type: FloatScalar, Raw: "99.99"}},
			want:  "99.99",
		},
		{
			name:  "String",
			value: str("a"),
			want:  `"a"`,
		},
		{
			name:  "EmptyList",
			value: &InputValue{List: &ListValue{}},
			want:  "[]",
		},
		{
			name:  "List",
			value: &InputValue{List: &ListValue{Values: []*InputValue{str("A"), str("B")}}},
			want:  `["A", "B"]`,
		},
		{
			name:  "EmptyObject",
			value: &InputValue{InputObject: &InputObjectValue{}},
			want:  "{}",
		},
		{
			name: "Object",
			value: &InputValue{InputObject: &InputObjectValue{Fields: []*ObjectField{
				{Name: &Name{Value: "first_name"}, Value: str("a")},
				{Name: &Name{Value: "tags"}, Value: &InputValue{List: &ListValue{Values: []*InputValue{str("x")}}}},
			}}},
			want: `{first_name: "a", tags: ["x"]}`,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.value.String(); got != test.want {
				t.Errorf("String() = %q; want %q", got, test.want)
			}
		})
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		s    string
		want string
	}{
		{"", `""`},
		{"hello", `"hello"`},
		{"456", `"456"`},
		{`hello "world"`, `"hello \"world\""`},
		{`C:\temp`, `"C:\\temp"`},
		{"line1\nline2\ttab\r", `"line1\nline2\ttab\r"`},
		{"\b\f", `"\b\f"`},
		{"\x00\x1f", `"\u0000\u001f"`},
		{"a/b", `"a/b"`},
		{"中文 café 🎉", `"中文 café 🎉"`},
		{"bad\xffbyte", "\"bad\uFFFDbyte\""},
	}
	for _, test := range tests {
		if got := Quote(test.s); got != test.want {
			t.Errorf("Quote(%q) = %s; want %s", test.s, got, test.want)
		}
	}
}

func TestQuoteDecodes(t *testing.T) {
	tests := []string{
		"",
		"hello",
		`hello "world"`,
		`back\slash`,
		"multi\nline\ttext\r\b\f",
		"\x00\x01\x1f\x7f",
		"a/b",
		"中文 café 🎉",
	}
	for _, s := range tests {
		quoted := Quote(s)
		if got := unquote(quoted); got != s {
			t.Errorf("unquote(Quote(%q)) = %q; want %q", s, got, s)
		}
	}
}

// unquote decodes a GraphQL string literal.
func unquote(raw string) string {
	raw = strings.TrimPrefix(raw, `"`)
	raw = strings.TrimSuffix(raw, `"`)
	sb := new(strings.Builder)
	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' || i+1 >= len(raw) {
			sb.WriteByte(raw[i])
			continue
		}
		i++
		switch raw[i] {
		case 'b':
			sb.WriteByte('\b')
		case 'f':
			sb.WriteByte('\f')
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case 'u':
			if i+5 > len(raw) {
				sb.WriteRune('\uFFFD')
				i = len(raw)
				continue
			}
			codePoint, err := strconv.ParseUint(raw[i+1:i+5], 16, 16)
			i += 4
			if err != nil {
				sb.WriteRune('\uFFFD')
				continue
			}
			sb.WriteRune(rune(codePoint))
		default:
			sb.WriteByte(raw[i])
		}
	}
	return sb.String()
}
