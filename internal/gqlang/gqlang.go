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

// Package gqlang provides the subset of the GraphQL language AST needed to
// print selection sets.
package gqlang

// SelectionSet is the set of information a field requests.
// https://graphql.github.io/graphql-spec/June2018/#SelectionSet
type SelectionSet struct {
	Sel []*Selection
}

// A Selection is a field in a selection set.
// https://graphql.github.io/graphql-spec/June2018/#sec-Selection-Sets
type Selection struct {
	Field *Field
}

// A Field is a discrete piece of information available to request within a
// selection set.
// https://graphql.github.io/graphql-spec/June2018/#sec-Language.Fields
type Field struct {
	Alias        *Name
	Name         *Name
	Arguments    *Arguments
	SelectionSet *SelectionSet
}

// Arguments is a set of named arguments on a field.
// https://graphql.github.io/graphql-spec/June2018/#sec-Language.Arguments
type Arguments struct {
	Args []*Argument
}

// Argument is a single element in Arguments.
// https://graphql.github.io/graphql-spec/June2018/#sec-Language.Arguments
type Argument struct {
	Name  *Name
	Value *InputValue
}

// An InputValue is a literal. Only one of its fields will be set.
// https://graphql.github.io/graphql-spec/June2018/#sec-Input-Values
type InputValue struct {
	Null        *Name
	Scalar      *ScalarValue
	List        *ListValue
	InputObject *InputObjectValue
}

// ScalarValue is a primitive literal like a string or integer.
type ScalarValue struct {
	Type ScalarType
	Raw  string
}

// ScalarType indicates the type of a ScalarValue.
type ScalarType int

// Scalar types.
const (
	StringScalar ScalarType = iota
	BooleanScalar
	IntScalar
	FloatScalar
)

// String returns sval.Raw.
func (sval *ScalarValue) String() string {
	return sval.Raw
}

// ListValue is an ordered sequence of input values.
// https://graphql.github.io/graphql-spec/June2018/#sec-List-Value
type ListValue struct {
	Values []*InputValue
}

// InputObjectValue is an unordered set of keyed input values.
// https://graphql.github.io/graphql-spec/June2018/#sec-Input-Object-Values
type InputObjectValue struct {
	Fields []*ObjectField
}

// ObjectField is a single element in an InputObjectValue.
// https://graphql.github.io/graphql-spec/June2018/#ObjectField
type ObjectField struct {
	Name  *Name
	Value *InputValue
}

// A Name is an identifier.
// https://graphql.github.io/graphql-spec/June2018/#sec-Names
type Name struct {
	Value string
}

// String returns the name or the empty string if the name is nil.
func (n *Name) String() string {
	if n == nil {
		return ""
	}
	return n.Value
}
