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

/*
Package gqltree converts ordered trees of field selections into GraphQL
query text. The output is the body of a selection set, which the caller
embeds in a "query { ... }" or "mutation { ... }" document. GraphQL syntax
follows https://graphql.github.io/graphql-spec/June2018/

Trees

A tree is a *Map from field name to Value. Each value says what to do with
its field:

	false                 the field is omitted
	true, a string, ...   the field is selected by name
	a nested *Map         the field is selected with a nested selection set

Numbers, strings, and null act like true, and their contents are ignored.
This lets a tree describing a record's shape be reused as a selection.

Control keys

A nested map may contain two reserved keys that describe the field instead of
selecting sub-fields. By default they are named "arguments" and "aliasFor";
see ControlKeys to rename them.

	gqltree.NewMap("searchUsers", gqltree.NewMap(
		"aliasFor", "users",
		"arguments", gqltree.NewMap("limit", 10),
		"id", true,
	))

builds

	searchUsers: users(limit: 10) { id }

Argument values

Argument values keep the difference between numbers and strings: Int(123)
renders as 123, but String("123") renders as "123". Lists render as
[a, b] and maps render as {key: value}. A map whose keys are exactly "0"
through "n-1" is treated as a list. Empty lists and empty maps both render as
{}.

Trees can also be decoded from JSON or YAML documents with ParseJSON and
ParseYAML, which keep key order and the number/string distinction.
*/
package gqltree
