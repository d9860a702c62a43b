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

package gqltree

import (
	"strconv"

	"zombiezen.com/go/graphql-tree/internal/gqlang"
)

// FormatArgument returns v as a GraphQL argument literal using the default
// options. See Builder.FormatArgument for details.
func FormatArgument(v Value) string {
	return defaultBuilder.FormatArgument(v)
}

// FormatArgument returns v as a GraphQL argument literal:
//
//   - an empty list or empty map is written as "{}"
//   - a list, or a map whose keys are exactly "0" through "n-1" in order, is
//     written as "[a, b]"
//   - any other map is written as "{key: value, ...}"
//   - booleans are written as true or false
//   - numbers are written unquoted, unless the builder quotes numbers
//   - strings are written quoted, even if they look like numbers
//   - null is written as null
func (b *Builder) FormatArgument(v Value) string {
	return b.inputValue(v).String()
}

func (b *Builder) inputValue(v Value) *gqlang.InputValue {
	switch val := v.val.(type) {
	case nil:
		return &gqlang.InputValue{Null: &gqlang.Name{Value: "null"}}
	case bool:
		return &gqlang.InputValue{Scalar: &gqlang.ScalarValue{
			Type: gqlang.BooleanScalar,
			Raw:  strconv.FormatBool(val),
		}}
	case string:
		return stringInputValue(val)
	case []Value:
		if len(val) == 0 {
			return emptyObject()
		}
		list := &gqlang.ListValue{Values: make([]*gqlang.InputValue, 0, len(val))}
		for _, elem := range val {
			list.Values = append(list.Values, b.inputValue(elem))
		}
		return &gqlang.InputValue{List: list}
	case *Map:
		if val.Len() == 0 {
			return emptyObject()
		}
		if val.isListShaped() {
			list := &gqlang.ListValue{Values: make([]*gqlang.InputValue, 0, val.Len())}
			for _, elem := range val.vals {
				list.Values = append(list.Values, b.inputValue(elem))
			}
			return &gqlang.InputValue{List: list}
		}
		obj := &gqlang.InputObjectValue{Fields: make([]*gqlang.ObjectField, 0, val.Len())}
		for i := 0; i < val.Len(); i++ {
			key, elem := val.At(i)
			obj.Fields = append(obj.Fields, &gqlang.ObjectField{
				Name:  &gqlang.Name{Value: key},
				Value: b.inputValue(elem),
			})
		}
		return &gqlang.InputValue{InputObject: obj}
	default:
		text, isFloat := v.numberText()
		if text == "null" {
			return &gqlang.InputValue{Null: &gqlang.Name{Value: "null"}}
		}
		if b.quoteNumbers {
			return stringInputValue(text)
		}
		typ := gqlang.IntScalar
		if isFloat {
			typ = gqlang.FloatScalar
		}
		return &gqlang.InputValue{Scalar: &gqlang.ScalarValue{Type: typ, Raw: text}}
	}
}

func stringInputValue(s string) *gqlang.InputValue {
	return &gqlang.InputValue{Scalar: &gqlang.ScalarValue{
		Type: gqlang.StringScalar,
		Raw:  gqlang.Quote(s),
	}}
}

// emptyObject returns the literal used for empty lists and maps alike.
func emptyObject() *gqlang.InputValue {
	return &gqlang.InputValue{InputObject: new(gqlang.InputObjectValue)}
}
