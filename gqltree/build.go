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
	"go.uber.org/zap"
	"zombiezen.com/go/graphql-tree/internal/gqlang"
)

// ControlKeys names the reserved map keys that a nested field uses to carry
// metadata instead of sub-fields.
type ControlKeys struct {
	// Arguments is the key whose map or list value holds the field's
	// arguments.
	Arguments string
	// AliasFor is the key whose string value is the field to call. When it
	// is present, the field's own key becomes the alias.
	AliasFor string
}

// DefaultKeys is the set of control keys used when none are specified.
var DefaultKeys = ControlKeys{
	Arguments: "arguments",
	AliasFor:  "aliasFor",
}

// LegacyKeys is the set of control keys used by older double-underscore trees.
var LegacyKeys = ControlKeys{
	Arguments: "__args",
	AliasFor:  "__aliasFor",
}

// Options configures a Builder.
type Options struct {
	// Keys sets the control key names. Empty names fall back to DefaultKeys.
	Keys ControlKeys

	// QuoteNumbers makes number arguments render as quoted strings, matching
	// the output of older query generators. Booleans and null are unaffected.
	QuoteNumbers bool

	// Logger receives debug entries for control keys that were ignored
	// because of their type. nil disables logging.
	Logger *zap.Logger
}

// A Builder renders query trees as GraphQL selection sets. It is safe to use
// a Builder from multiple goroutines.
type Builder struct {
	keys         ControlKeys
	quoteNumbers bool
	log          *zap.Logger
}

// NewBuilder returns a new builder. A nil opts is the same as an empty
// Options.
func NewBuilder(opts *Options) *Builder {
	if opts == nil {
		opts = new(Options)
	}
	b := &Builder{
		keys:         opts.Keys,
		quoteNumbers: opts.QuoteNumbers,
		log:          opts.Logger,
	}
	if b.keys.Arguments == "" {
		b.keys.Arguments = DefaultKeys.Arguments
	}
	if b.keys.AliasFor == "" {
		b.keys.AliasFor = DefaultKeys.AliasFor
	}
	if b.log == nil {
		b.log = zap.NewNop()
	}
	return b
}

var defaultBuilder = NewBuilder(nil)

// Build renders tree as the body of a GraphQL selection set using the default
// options. See Builder.Build for details.
func Build(tree *Map) string {
	return defaultBuilder.Build(tree)
}

// Build renders tree as the body of a GraphQL selection set: the fields
// separated by single spaces, without enclosing braces. Entries are written in
// insertion order, and each value selects its key as follows:
//
//   - false omits the field
//   - true, null, strings, and numbers select the field by name
//   - maps and lists select the field with a nested selection set
//
// A nested map may carry control keys (see ControlKeys). An alias key renders
// the field as "key: alias". An arguments key renders an argument list, and if
// nothing else in the nested map is selected, the field is written as a call
// with no selection set, like "deleteUser(id: 123)". Without arguments, a
// nested map is always written with braces, even if they are empty.
//
// Control keys in tree itself are ordinary fields. Build does not modify tree.
func (b *Builder) Build(tree *Map) string {
	return b.selectionSet(tree).Body()
}

func (b *Builder) selectionSet(tree *Map) *gqlang.SelectionSet {
	set := new(gqlang.SelectionSet)
	for i := 0; i < tree.Len(); i++ {
		name, value := tree.At(i)
		if f := b.field(name, value); f != nil {
			set.Sel = append(set.Sel, &gqlang.Selection{Field: f})
		}
	}
	return set
}

// field converts a single tree entry into a field or returns nil if the entry
// omits the field.
func (b *Builder) field(name string, value Value) *gqlang.Field {
	sub, ok := value.tree()
	if !ok {
		if value.isFalse() {
			return nil
		}
		return &gqlang.Field{Name: &gqlang.Name{Value: name}}
	}

	f := &gqlang.Field{Name: &gqlang.Name{Value: name}}
	if alias, ok := sub.Get(b.keys.AliasFor); ok && !alias.IsNull() {
		if s, isString := alias.val.(string); isString && s != "" {
			f.Alias = &gqlang.Name{Value: name}
			f.Name = &gqlang.Name{Value: s}
		} else {
			b.log.Debug("ignoring alias that is not a non-empty string",
				zap.String("field", name),
				zap.String("key", b.keys.AliasFor),
				zap.Stringer("kind", alias.Kind()))
		}
	}
	if args, ok := sub.Get(b.keys.Arguments); ok && !args.IsNull() {
		if argTree, isTree := args.tree(); isTree {
			f.Arguments = b.arguments(argTree)
		} else {
			b.log.Debug("ignoring arguments that are not a map or list",
				zap.String("field", name),
				zap.String("key", b.keys.Arguments),
				zap.Stringer("kind", args.Kind()))
		}
	}

	rest := b.selectionSet(sub.without(b.keys.AliasFor, b.keys.Arguments))
	if f.Arguments == nil || rest.Len() > 0 {
		f.SelectionSet = rest
	}
	return f
}

func (b *Builder) arguments(args *Map) *gqlang.Arguments {
	list := &gqlang.Arguments{Args: make([]*gqlang.Argument, 0, args.Len())}
	for i := 0; i < args.Len(); i++ {
		name, value := args.At(i)
		list.Args = append(list.Args, &gqlang.Argument{
			Name:  &gqlang.Name{Value: name},
			Value: b.inputValue(value),
		})
	}
	return list
}
