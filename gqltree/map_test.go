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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMapSet(t *testing.T) {
	m := new(Map)
	m.Set("b", Int(1)).Set("a", Int(2)).Set("b", Int(3)).Set("c", Int(4))
	if diff := cmp.Diff([]string{"b", "a", "c"}, m.Keys()); diff != "" {
		t.Errorf("Keys() (-want +got):\n%s", diff)
	}
	if got := m.Len(); got != 3 {
		t.Errorf("Len() = %d; want 3", got)
	}
	v, ok := m.Get("b")
	if !ok || v.Scalar() != "3" {
		t.Errorf("Get(\"b\") = %v, %t; want 3, true", v, ok)
	}
	if _, ok := m.Get("missing"); ok {
		t.Error("Get(\"missing\") reported present")
	}
	key, v := m.At(2)
	if key != "c" || v.Scalar() != "4" {
		t.Errorf("At(2) = %q, %v; want \"c\", 4", key, v)
	}
}

func TestNilMap(t *testing.T) {
	var m *Map
	if got := m.Len(); got != 0 {
		t.Errorf("Len() = %d; want 0", got)
	}
	if _, ok := m.Get("x"); ok {
		t.Error("Get(\"x\") reported present")
	}
	if got := m.Keys(); got != nil {
		t.Errorf("Keys() = %q; want nil", got)
	}
	if got := m.without("x").Len(); got != 0 {
		t.Errorf("without(\"x\").Len() = %d; want 0", got)
	}
}

func TestMapWithout(t *testing.T) {
	m := NewMap("aliasFor", "users", "id", true, "arguments", NewMap("n", 1), "name", true)
	filtered := m.without("aliasFor", "arguments")
	if diff := cmp.Diff([]string{"id", "name"}, filtered.Keys()); diff != "" {
		t.Errorf("without(...).Keys() (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"aliasFor", "id", "arguments", "name"}, m.Keys()); diff != "" {
		t.Errorf("original Keys() after without (-want +got):\n%s", diff)
	}
	filtered.Set("extra", True)
	if _, ok := m.Get("extra"); ok {
		t.Error("setting on filtered copy changed original")
	}
}

func TestMapIsListShaped(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want bool
	}{
		{name: "Empty", keys: nil, want: false},
		{name: "Single", keys: []string{"0"}, want: true},
		{name: "Contiguous", keys: []string{"0", "1", "2"}, want: true},
		{name: "StartsAtOne", keys: []string{"1", "2"}, want: false},
		{name: "OutOfOrder", keys: []string{"1", "0"}, want: false},
		{name: "Gap", keys: []string{"0", "2"}, want: false},
		{name: "LeadingZero", keys: []string{"00"}, want: false},
		{name: "Named", keys: []string{"0", "a"}, want: false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			m := new(Map)
			for _, k := range test.keys {
				m.Set(k, True)
			}
			if got := m.isListShaped(); got != test.want {
				t.Errorf("isListShaped() = %t; want %t", got, test.want)
			}
		})
	}
}

func TestNewMapPanics(t *testing.T) {
	tests := []struct {
		name  string
		pairs []interface{}
	}{
		{name: "OddLength", pairs: []interface{}{"a", true, "b"}},
		{name: "NonStringKey", pairs: []interface{}{1, true}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("NewMap(%v...) did not panic", test.pairs)
				}
			}()
			NewMap(test.pairs...)
		})
	}
}
