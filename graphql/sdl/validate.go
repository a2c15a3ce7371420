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
	"strings"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/selenegql/selene/graphql"
)

// Structural pre-pass run by BuildSchema before any type is created: names must be unique and
// unreserved, every reference must resolve, root operations must name object types, and the
// document must be extension-free. The pre-pass fails fast on the first violation so no partially
// built schema ever escapes.

// documentIndex is the name table a pre-pass resolves references against.
type documentIndex struct {
	defs map[string]*ast.Definition
}

func (index documentIndex) resolvable(name string) bool {
	if _, ok := builtinScalars[name]; ok {
		return true
	}
	if graphql.IntrospectionType(name) != nil {
		return true
	}
	_, ok := index.defs[name]
	return ok
}

// candidates returns every resolvable name, sorted, for "did you mean" hints.
func (index documentIndex) candidates() []string {
	names := make([]string, 0, len(index.defs)+len(builtinScalars))
	for name := range index.defs {
		names = append(names, name)
	}
	for name := range builtinScalars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// checkTypeRef unwraps a type reference to its named type and verifies the name resolves.
func (index documentIndex) checkTypeRef(node *ast.Type) error {
	if node == nil {
		return nil
	}
	for node.NamedType == "" && node.Elem != nil {
		node = node.Elem
	}
	if node.NamedType == "" || index.resolvable(node.NamedType) {
		return nil
	}
	return unknownTypeError(node.NamedType, node.Position, index.candidates())
}

// checkName rejects names in the introspection-reserved namespace.
func checkName(kind, name string, pos *ast.Position) error {
	if strings.HasPrefix(name, "__") {
		return graphql.NewValidationError(pos,
			`Name "%s" must not begin with "__", which is reserved by GraphQL introspection. (%s)`,
			name, kind)
	}
	return nil
}

func validateSchemaDocument(doc *ast.SchemaDocument) error {
	if len(doc.Extensions) > 0 {
		ext := doc.Extensions[0]
		return graphql.NewValidationError(ext.Position,
			`Cannot build a schema from a document that extends type "%s". Apply extension documents with ExtendSchema.`,
			ext.Name)
	}
	if len(doc.SchemaExtension) > 0 {
		return graphql.NewValidationError(doc.SchemaExtension[0].Position,
			"Cannot build a schema from a document containing a schema extension. Apply extension documents with ExtendSchema.")
	}
	if len(doc.Schema) > 1 {
		return graphql.NewValidationError(doc.Schema[1].Position,
			"Must provide only one schema definition.")
	}

	// Unique, unreserved type names.
	index := documentIndex{defs: map[string]*ast.Definition{}}
	for _, def := range doc.Definitions {
		if def.BuiltIn {
			continue
		}
		if err := checkName("type", def.Name, def.Position); err != nil {
			return err
		}
		if _, exists := index.defs[def.Name]; exists {
			return graphql.NewValidationError(def.Position,
				`There can be only one type named "%s".`, def.Name)
		}
		index.defs[def.Name] = def
	}

	// Unique, unreserved directive names.
	directiveNames := map[string]bool{}
	for _, def := range doc.Directives {
		if err := checkName("directive", def.Name, def.Position); err != nil {
			return err
		}
		if directiveNames[def.Name] {
			return graphql.NewValidationError(def.Position,
				`There can be only one directive named "@%s".`, def.Name)
		}
		directiveNames[def.Name] = true
	}

	// Every reference must resolve.
	for _, def := range doc.Definitions {
		if def.BuiltIn {
			continue
		}
		for _, name := range def.Interfaces {
			if !index.resolvable(name) {
				return unknownTypeError(name, def.Position, index.candidates())
			}
		}
		for _, name := range def.Types {
			if !index.resolvable(name) {
				return unknownTypeError(name, def.Position, index.candidates())
			}
		}
		for _, fieldDef := range def.Fields {
			if err := checkName("field", fieldDef.Name, fieldDef.Position); err != nil {
				return err
			}
			if err := index.checkTypeRef(fieldDef.Type); err != nil {
				return err
			}
			for _, argDef := range fieldDef.Arguments {
				if err := index.checkTypeRef(argDef.Type); err != nil {
					return err
				}
			}
		}
	}
	for _, def := range doc.Directives {
		for _, argDef := range def.Arguments {
			if err := index.checkTypeRef(argDef.Type); err != nil {
				return err
			}
		}
	}

	// Root operations must name object types, and a query root must exist.
	queryTypeName := "Query"
	if len(doc.Schema) > 0 {
		queryTypeName = ""
		for _, opDef := range doc.Schema[0].OperationTypes {
			def, ok := index.defs[opDef.Type]
			if !ok {
				return unknownTypeError(opDef.Type, opDef.Position, index.candidates())
			}
			if def.Kind != ast.Object {
				return graphql.NewValidationError(opDef.Position,
					"%s root type must be Object type, it cannot be %s.",
					operationName(opDef.Operation), def.Name)
			}
			if opDef.Operation == ast.Query {
				queryTypeName = opDef.Type
			}
		}
		if queryTypeName == "" {
			return graphql.NewValidationError(doc.Schema[0].Position,
				"Must provide schema definition with query type or a type named Query.")
		}
	} else {
		if def, ok := index.defs[queryTypeName]; ok && def.Kind != ast.Object {
			return graphql.NewValidationError(def.Position,
				"Query root type must be Object type, it cannot be %s.", def.Name)
		}
		if _, ok := index.defs[queryTypeName]; !ok {
			return graphql.NewError(
				"Must provide schema definition with query type or a type named Query.")
		}
	}

	return nil
}
