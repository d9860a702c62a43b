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
	"bytes"
	"encoding/json"
	"io"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/xerrors"
)

// maxDepth limits how deeply nested JSON input may be.
const maxDepth = 1000

// ParseJSON parses a JSON object into a map. Object key order is preserved,
// numbers are kept as json.Number, and duplicate keys keep the last value.
func ParseJSON(data []byte) (*Map, error) {
	v, err := parseJSONValue(data)
	if err != nil {
		return nil, xerrors.Errorf("parse json: %w", err)
	}
	m := v.Map()
	if m == nil {
		return nil, xerrors.Errorf("parse json: top-level value is a %v, not an object", v.Kind())
	}
	return m, nil
}

// UnmarshalJSON replaces the map's contents with the given JSON object.
// A JSON null leaves the map unchanged.
func (m *Map) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		return nil
	}
	parsed, err := ParseJSON(data)
	if err != nil {
		return err
	}
	*m = *parsed
	return nil
}

// UnmarshalJSON converts JSON into a value, preserving object key order.
func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := parseJSONValue(data)
	if err != nil {
		return xerrors.Errorf("unmarshal value json: %w", err)
	}
	*v = parsed
	return nil
}

func parseJSONValue(data []byte) (Value, error) {
	iter := jsoniter.ConfigDefault.BorrowIterator(data)
	defer jsoniter.ConfigDefault.ReturnIterator(iter)
	v := readJSONValue(iter, 0)
	if iter.Error != nil && iter.Error != io.EOF {
		return Value{}, iter.Error
	}
	if iter.WhatIsNext() != jsoniter.InvalidValue || iter.Error != io.EOF {
		return Value{}, xerrors.New("trailing data after value")
	}
	return v, nil
}

func readJSONValue(iter *jsoniter.Iterator, depth int) Value {
	if depth > maxDepth {
		iter.ReportError("read value", "exceeded max depth")
		return Value{}
	}
	switch iter.WhatIsNext() {
	case jsoniter.NilValue:
		iter.ReadNil()
		return Value{}
	case jsoniter.BoolValue:
		return Bool(iter.ReadBool())
	case jsoniter.StringValue:
		return String(iter.ReadString())
	case jsoniter.NumberValue:
		return JSONNumber(iter.ReadNumber())
	case jsoniter.ArrayValue:
		list := []Value{}
		iter.ReadArrayCB(func(iter *jsoniter.Iterator) bool {
			list = append(list, readJSONValue(iter, depth+1))
			return iter.Error == nil
		})
		return Value{val: list}
	case jsoniter.ObjectValue:
		m := &Map{}
		iter.ReadObjectCB(func(iter *jsoniter.Iterator, key string) bool {
			m.Set(key, readJSONValue(iter, depth+1))
			return iter.Error == nil
		})
		return Object(m)
	default:
		iter.ReportError("read value", "unexpected character")
		return Value{}
	}
}

// MarshalJSON converts the map into a JSON object with keys in insertion
// order.
func (m *Map) MarshalJSON() ([]byte, error) {
	return marshalJSON(Object(m))
}

// MarshalJSON converts the value to JSON. Null, booleans, and numbers are
// written as JSON literals, and maps keep their key order.
func (v Value) MarshalJSON() ([]byte, error) {
	return marshalJSON(v)
}

func marshalJSON(v Value) ([]byte, error) {
	stream := jsoniter.ConfigDefault.BorrowStream(nil)
	defer jsoniter.ConfigDefault.ReturnStream(stream)
	writeJSONValue(stream, v)
	if stream.Error != nil {
		return nil, xerrors.Errorf("marshal json: %w", stream.Error)
	}
	return append([]byte(nil), stream.Buffer()...), nil
}

func writeJSONValue(stream *jsoniter.Stream, v Value) {
	switch val := v.val.(type) {
	case nil:
		stream.WriteNil()
	case bool:
		stream.WriteBool(val)
	case string:
		stream.WriteString(val)
	case json.Number:
		stream.WriteRaw(string(val))
	case int64, uint64, float32, float64:
		stream.WriteRaw(v.Scalar())
	case []Value:
		stream.WriteArrayStart()
		for i, elem := range val {
			if i > 0 {
				stream.WriteMore()
			}
			writeJSONValue(stream, elem)
		}
		stream.WriteArrayEnd()
	case *Map:
		stream.WriteObjectStart()
		for i := 0; i < val.Len(); i++ {
			if i > 0 {
				stream.WriteMore()
			}
			key, elem := val.At(i)
			stream.WriteObjectField(key)
			writeJSONValue(stream, elem)
		}
		stream.WriteObjectEnd()
	default:
		panic("unknown type in Value.val")
	}
}
