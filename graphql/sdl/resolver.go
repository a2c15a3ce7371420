/**
 * Copyright (c) 2026, The Selene Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package sdl

import (
	"sort"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/selenegql/selene/graphql"
	"github.com/selenegql/selene/internal/util"
)

// Resolution of type references in a schema document. A named reference is looked up in the
// builtin scalars first, then the introspection types, then the document's own definitions.
// Wrapping type notation ([T], T!) is unwrapped recursively.

var builtinScalars = graphql.SpecifiedScalarTypes()

// lookupName finds the type designated by name during a build. It returns nil for an unknown
// name.
func (b *builder) lookupName(name string) graphql.Type {
	if t, ok := builtinScalars[name]; ok {
		return t
	}
	if t := graphql.IntrospectionType(name); t != nil {
		return t
	}
	return b.types[name]
}

// knownTypeNames returns the names a reference could legally designate, as candidates for "did
// you mean" hints. The introspection types are left out: a typo is never plausibly one of them.
func (b *builder) knownTypeNames() []string {
	names := make([]string, 0, len(b.types)+len(builtinScalars))
	for name := range b.types {
		names = append(names, name)
	}
	for name := range builtinScalars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// unknownTypeError reports a reference to a type that no definition provides, suggesting
// similarly named candidates.
func unknownTypeError(name string, pos *ast.Position, candidates []string) error {
	message := `Unknown type "` + name + `".`
	if suggestions := util.SuggestionList(name, candidates); len(suggestions) > 0 {
		message += " Did you mean " + util.QuotedOrList(suggestions, 5) + "?"
	}
	return graphql.NewValidationError(pos, "%s", message)
}

// lookupNamed resolves a named reference or fails with an unknown-type error carrying the
// reference's source position.
func (b *builder) lookupNamed(name string, pos *ast.Position) (graphql.Type, error) {
	if t := b.lookupName(name); t != nil {
		return t, nil
	}
	return nil, unknownTypeError(name, pos, b.knownTypeNames())
}

// resolveType resolves an AST type reference to the Type it designates, wrapping with List and
// NonNull as the notation demands.
func (b *builder) resolveType(node *ast.Type) (graphql.Type, error) {
	if node == nil {
		return nil, graphql.NewError("Must provide a type reference.")
	}

	var t graphql.Type
	if node.NamedType != "" {
		named, err := b.lookupNamed(node.NamedType, node.Position)
		if err != nil {
			return nil, err
		}
		t = named
	} else {
		elemType, err := b.resolveType(node.Elem)
		if err != nil {
			return nil, err
		}
		list, err := graphql.NewListOfType(elemType)
		if err != nil {
			return nil, err
		}
		t = list
	}

	if node.NonNull {
		nonNull, err := graphql.NewNonNullOfType(t)
		if err != nil {
			return nil, err
		}
		t = nonNull
	}
	return t, nil
}
