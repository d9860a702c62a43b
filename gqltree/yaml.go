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

	"github.com/goccy/go-yaml"
	"golang.org/x/xerrors"
)

// ParseYAML parses a YAML mapping into a map. Mapping key order is preserved
// and quoted scalars stay strings. Non-string keys such as 0 are converted to
// their text, so a mapping keyed 0, 1, 2 is formatted as a list.
func ParseYAML(data []byte) (*Map, error) {
	var doc interface{}
	if err := yaml.UnmarshalWithOptions(data, &doc, yaml.UseOrderedMap()); err != nil {
		return nil, xerrors.Errorf("parse yaml: %w", err)
	}
	v := ValueOf(doc)
	m := v.Map()
	if m == nil {
		return nil, xerrors.Errorf("parse yaml: top-level value is a %v, not a mapping", v.Kind())
	}
	return m, nil
}

func mapFromYAML(slice yaml.MapSlice) *Map {
	m := &Map{}
	for _, item := range slice {
		m.Set(yamlKey(item.Key), ValueOf(item.Value))
	}
	return m
}

func yamlKey(k interface{}) string {
	switch k := k.(type) {
	case string:
		return k
	case nil:
		return "null"
	default:
		return fmt.Sprint(k)
	}
}
