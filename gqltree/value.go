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
	"encoding"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

// A Value is a node in a query tree: a field's selection marker or an
// argument's value. The zero value is null.
type Value struct {
	val interface{} // one of nil, bool, string, int64, uint64, float32, float64, json.Number, []Value, or *Map.
}

// Kind is the variant held by a Value.
type Kind int

// Value kinds.
const (
	NullKind Kind = iota
	BoolKind
	StringKind
	NumberKind
	ListKind
	MapKind
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case NullKind:
		return "null"
	case BoolKind:
		return "bool"
	case StringKind:
		return "string"
	case NumberKind:
		return "number"
	case ListKind:
		return "list"
	case MapKind:
		return "map"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Common values.
var (
	True  = Bool(true)
	False = Bool(false)
)

// Bool returns a boolean value.
func Bool(b bool) Value {
	return Value{val: b}
}

// String returns a string value. A string is never treated as a number, even
// if it contains only digits.
func String(s string) Value {
	return Value{val: s}
}

// Int returns a number value holding a signed integer.
func Int(i int64) Value {
	return Value{val: i}
}

// Uint returns a number value holding an unsigned integer.
func Uint(u uint64) Value {
	return Value{val: u}
}

// Float returns a number value holding a 64-bit floating-point number.
func Float(f float64) Value {
	return Value{val: f}
}

// Float32 returns a number value holding a 32-bit floating-point number.
func Float32(f float32) Value {
	return Value{val: f}
}

// JSONNumber returns a number value whose literal text is n.
func JSONNumber(n json.Number) Value {
	return Value{val: n}
}

// List returns a list value. The slice is copied.
func List(elems ...Value) Value {
	return Value{val: append([]Value(nil), elems...)}
}

// Object returns a value holding the given map. Object(nil) is null.
func Object(m *Map) Value {
	if m == nil {
		return Value{}
	}
	return Value{val: m}
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind {
	switch v.val.(type) {
	case nil:
		return NullKind
	case bool:
		return BoolKind
	case string:
		return StringKind
	case int64, uint64, float32, float64, json.Number:
		return NumberKind
	case []Value:
		return ListKind
	case *Map:
		return MapKind
	default:
		panic("unknown type in Value.val")
	}
}

// IsNull reports whether v is null.
func (v Value) IsNull() bool {
	return v.val == nil
}

// Boolean reports whether v is the boolean true.
func (v Value) Boolean() bool {
	b, _ := v.val.(bool)
	return b
}

// isFalse reports whether v is the boolean false.
func (v Value) isFalse() bool {
	b, ok := v.val.(bool)
	return ok && !b
}

// Scalar returns the text of a boolean, string, or number value and the empty
// string otherwise.
func (v Value) Scalar() string {
	switch val := v.val.(type) {
	case bool:
		return strconv.FormatBool(val)
	case string:
		return val
	case int64, uint64, float32, float64, json.Number:
		s, _ := v.numberText()
		return s
	default:
		return ""
	}
}

// numberText returns the literal text of a number value and whether it should
// be written as a GraphQL Float. It returns "null" for non-finite floats.
func (v Value) numberText() (_ string, isFloat bool) {
	switch val := v.val.(type) {
	case int64:
		return strconv.FormatInt(val, 10), false
	case uint64:
		return strconv.FormatUint(val, 10), false
	case float32:
		return formatFloat(float64(val), 32), true
	case float64:
		return formatFloat(val, 64), true
	case json.Number:
		s := string(val)
		return s, strings.ContainsAny(s, ".eE")
	default:
		panic("numberText called on non-number")
	}
}

func formatFloat(f float64, bitSize int) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "null"
	}
	fmtByte := byte('f')
	if abs := math.Abs(f); abs != 0 && (abs < 1e-7 || abs >= 1e21) {
		fmtByte = 'e'
	}
	s := strconv.FormatFloat(f, fmtByte, -1, bitSize)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// Len returns the number of elements in a list or the number of entries in a
// map. Len returns 0 for any other value.
func (v Value) Len() int {
	switch val := v.val.(type) {
	case []Value:
		return len(val)
	case *Map:
		return val.Len()
	default:
		return 0
	}
}

// At returns v's i'th element. At panics if v is not a list or i is not in the
// range [0, v.Len()).
func (v Value) At(i int) Value {
	list := v.val.([]Value)
	return list[i]
}

// Map returns the map held by v or nil if v is not a map.
func (v Value) Map() *Map {
	m, _ := v.val.(*Map)
	return m
}

// tree returns v as a map if v is a map or list. Lists are keyed by their
// indices.
func (v Value) tree() (*Map, bool) {
	switch val := v.val.(type) {
	case *Map:
		return val, true
	case []Value:
		m := &Map{}
		for i, elem := range val {
			m.Set(strconv.Itoa(i), elem)
		}
		return m, true
	default:
		return nil, false
	}
}

// String returns the value formatted as a GraphQL argument literal.
func (v Value) String() string {
	return FormatArgument(v)
}

// ValueOf converts a Go value into a Value. Conversions are:
//
//   - nil, nil pointers, nil maps, and nil slices become null
//   - Value is returned as-is and *Map is wrapped with Object
//   - bools, strings, integers, floats, and json.Number keep their variant
//   - slices and arrays become lists
//   - yaml.MapSlice becomes a map with the same key order
//   - other maps become maps with keys sorted by their fmt.Sprint form
//
// Any other type is converted to a string using, in order,
// encoding.TextMarshaler, fmt.Stringer, or fmt.Sprint.
func ValueOf(x interface{}) Value {
	if v, ok := knownValue(x); ok {
		return v
	}
	return valueFromGo(reflect.ValueOf(x))
}

// knownValue converts the types that ValueOf handles without reflection.
func knownValue(x interface{}) (_ Value, ok bool) {
	switch x := x.(type) {
	case nil:
		return Value{}, true
	case Value:
		return x, true
	case *Map:
		return Object(x), true
	case bool:
		return Bool(x), true
	case string:
		return String(x), true
	case json.Number:
		return JSONNumber(x), true
	case yaml.MapSlice:
		return Object(mapFromYAML(x)), true
	case yaml.MapItem:
		return Object(mapFromYAML(yaml.MapSlice{x})), true
	default:
		return Value{}, false
	}
}

func valueFromGo(goValue reflect.Value) Value {
	for {
		if !goValue.IsValid() {
			return Value{}
		}
		if goValue.CanInterface() {
			if v, ok := knownValue(goValue.Interface()); ok {
				return v
			}
		}
		if k := goValue.Kind(); k != reflect.Ptr && k != reflect.Interface {
			break
		}
		if goValue.IsNil() {
			return Value{}
		}
		goValue = goValue.Elem()
	}
	switch goValue.Kind() {
	case reflect.Bool:
		return Bool(goValue.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(goValue.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Uint(goValue.Uint())
	case reflect.Float32:
		return Float32(float32(goValue.Float()))
	case reflect.Float64:
		return Float(goValue.Float())
	case reflect.String:
		return String(goValue.String())
	case reflect.Slice, reflect.Array:
		if goValue.Kind() == reflect.Slice && goValue.IsNil() {
			return Value{}
		}
		list := make([]Value, goValue.Len())
		for i := range list {
			list[i] = valueFromGo(goValue.Index(i))
		}
		return Value{val: list}
	case reflect.Map:
		if goValue.IsNil() {
			return Value{}
		}
		type entry struct {
			key string
			val reflect.Value
		}
		entries := make([]entry, 0, goValue.Len())
		iter := goValue.MapRange()
		for iter.Next() {
			entries = append(entries, entry{
				key: fmt.Sprint(interfaceValueForAssertions(iter.Key())),
				val: iter.Value(),
			})
		}
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].key < entries[j].key
		})
		m := &Map{}
		for _, e := range entries {
			m.Set(e.key, valueFromGo(e.val))
		}
		return Object(m)
	}
	return String(stringFromGo(goValue))
}

func stringFromGo(goValue reflect.Value) string {
	if !goValue.CanInterface() {
		return goValue.String()
	}
	switch goIface := interfaceValueForAssertions(goValue).(type) {
	case encoding.TextMarshaler:
		text, err := goIface.MarshalText()
		if err == nil {
			return string(text)
		}
	case fmt.Stringer:
		return goIface.String()
	}
	return fmt.Sprint(goValue.Interface())
}

func unwrapPointer(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

// interfaceValueForAssertions returns the value's innermost pointer or v itself
// if v does not represent a pointer.
func interfaceValueForAssertions(v reflect.Value) interface{} {
	v = unwrapPointer(v)
	if !v.IsValid() {
		return nil
	}
	if v.Kind() == reflect.Interface || !v.CanAddr() {
		return v.Interface()
	}
	return v.Addr().Interface()
}
