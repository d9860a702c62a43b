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
	"fmt"
	"strconv"
)

// Map is a string-keyed mapping that remembers insertion order. The zero value
// is an empty map ready to use. A nil *Map is an empty map that cannot be
// modified.
type Map struct {
	keys  []string
	vals  []Value
	index map[string]int
}

// NewMap returns a new map with the given entries. pairs must alternate
// between string keys and values, and values are converted with ValueOf.
// NewMap panics if pairs has an odd length or if a key is not a string.
//
//	gqltree.NewMap(
//		"id", true,
//		"posts", gqltree.NewMap("title", true),
//	)
func NewMap(pairs ...interface{}) *Map {
	if len(pairs)%2 != 0 {
		panic("gqltree.NewMap: odd number of arguments")
	}
	m := &Map{}
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			panic(fmt.Sprintf("gqltree.NewMap: key at position %d is %T, not string", i, pairs[i]))
		}
		m.Set(key, ValueOf(pairs[i+1]))
	}
	return m
}

// Set assigns the value for key and returns m. If key is already present, its
// value is replaced and it keeps its original position.
func (m *Map) Set(key string, v Value) *Map {
	if i, ok := m.index[key]; ok {
		m.vals[i] = v
		return m
	}
	if m.index == nil {
		m.index = make(map[string]int)
	}
	m.index[key] = len(m.keys)
	m.keys = append(m.keys, key)
	m.vals = append(m.vals, v)
	return m
}

// Get returns the value for key and whether key is present.
func (m *Map) Get(key string) (_ Value, ok bool) {
	if m == nil {
		return Value{}, false
	}
	i, ok := m.index[key]
	if !ok {
		return Value{}, false
	}
	return m.vals[i], true
}

// Len returns the number of entries in m.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// At returns m's i'th entry in insertion order. At panics if i is not in the
// range [0, m.Len()).
func (m *Map) At(i int) (key string, v Value) {
	return m.keys[i], m.vals[i]
}

// Keys returns the map's keys in insertion order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	return append([]string(nil), m.keys...)
}

// without returns a copy of m with the given keys removed. m is not modified.
func (m *Map) without(keys ...string) *Map {
	dropped := make(map[string]bool, len(keys))
	for _, k := range keys {
		dropped[k] = true
	}
	filtered := &Map{}
	for i := 0; i < m.Len(); i++ {
		if k := m.keys[i]; !dropped[k] {
			filtered.Set(k, m.vals[i])
		}
	}
	return filtered
}

// isListShaped reports whether m's keys are exactly "0" through "n-1" in
// order. An empty map is not list-shaped.
func (m *Map) isListShaped() bool {
	if m.Len() == 0 {
		return false
	}
	for i, k := range m.keys {
		if k != strconv.Itoa(i) {
			return false
		}
	}
	return true
}
