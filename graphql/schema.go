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

package graphql

import (
	"sync"

	"github.com/vektah/gqlparser/v2/ast"
)

// Contains interfaces and definitions for a GraphQL schema.

// TypeMap keeps track of all named types referenced within a schema.
type TypeMap struct {
	types map[string]Type
}

// typeWithErr is implemented by the named types whose members are resolved through thunks.
type typeWithErr interface {
	Err() error
}

// add puts a type and every type reachable from it into the map. This is only used by NewSchema
// to initialize the type map incrementally.
func (typeMap TypeMap) add(t Type, checked bool) error {
	// stack contains types to be added to the map.
	stack := []Type{t}

	for len(stack) > 0 {
		// Pop a type from stack.
		t, stack = stack[len(stack)-1], stack[:len(stack)-1]
		if t == nil {
			continue
		}

		// Map type name to the corresponding Type.
		if namedType, ok := t.(TypeWithName); ok {
			name := namedType.Name()
			prev, exists := typeMap.types[name]
			if !exists {
				typeMap.types[name] = t
			} else {
				if prev != t {
					return NewError(
						"Schema must contain uniquely named types but contains multiple types named " +
							`"` + name + `".`)
				}
				// Skip t which has been processed.
				continue
			}
		}

		// A failed member thunk makes the type graph unenumerable; surface the failure here when
		// running in checked mode.
		if checked {
			if t, ok := t.(typeWithErr); ok {
				if err := t.Err(); err != nil {
					return err
				}
			}
		}

		// Add types referenced by t to stack.
		switch t := t.(type) {
		case *Scalar, *Enum:
			// Leaf types reference no further types.

		case *Object:
			for _, iface := range t.Interfaces() {
				stack = append(stack, iface)
			}
			for _, field := range t.Fields() {
				stack = append(stack, field.Type())
				for _, arg := range field.Args() {
					stack = append(stack, arg.Type())
				}
			}

		case *Interface:
			for _, iface := range t.Interfaces() {
				stack = append(stack, iface)
			}
			for _, field := range t.Fields() {
				stack = append(stack, field.Type())
				for _, arg := range field.Args() {
					stack = append(stack, arg.Type())
				}
			}

		case *Union:
			for _, possibleType := range t.PossibleTypes() {
				stack = append(stack, possibleType)
			}

		case *InputObject:
			for _, field := range t.Fields() {
				stack = append(stack, field.Type())
			}

		case *List:
			stack = append(stack, t.ElementType())

		case *NonNull:
			stack = append(stack, t.InnerType())

		default:
			return NewError("Cannot add " + t.String() + " to schema: unsupported type.")
		}
	}

	return nil
}

// Lookup finds a type with given name or returns nil if no type has the name.
func (typeMap TypeMap) Lookup(name string) Type {
	return typeMap.types[name]
}

// Size returns the number of types in the map.
func (typeMap TypeMap) Size() int {
	return len(typeMap.types)
}

// Range calls f for each named type in the map until f returns false. Iteration order is
// unspecified.
func (typeMap TypeMap) Range(f func(name string, t Type) bool) {
	for name, t := range typeMap.types {
		if !f(name, t) {
			return
		}
	}
}

// SchemaConfig contains configuration to define a GraphQL schema.
type SchemaConfig struct {
	// Description of the schema
	Description string

	// Query, Mutation and Subscription are the GraphQL Root Operations defined by the schema. Query
	// is mandatory unless AssumeValid is set.
	Query        *Object
	Mutation     *Object
	Subscription *Object

	// Types lists additional named types to include in the schema. Types that are reachable from
	// the root operations need not be listed.
	Types []Type

	// Directives lists the directives to be added to the schema. The specification directives
	// (@skip, @include and @deprecated) are appended unless a directive with the same name is
	// already given.
	Directives DirectiveList

	// AssumeValid skips the structural checks during construction: member thunks are left
	// unresolved and a missing query root is tolerated. Errors surface on first use instead.
	AssumeValid bool
}

// Schema is a GraphQL service's collective type system capabilities. A schema is defined in terms
// of the types and directives it supports as well as the root operation types for each kind of
// operation: query, mutation, and subscription.
//
// Definitions including types and directives in a schema are immutable after creation. This allows
// results of some operations (such as PossibleTypes) to be cached.
//
// Reference: https://spec.graphql.org/draft/#sec-Schema
type Schema struct {
	description string

	// query, mutation and subscription are the root operation objects.
	query        *Object
	mutation     *Object
	subscription *Object

	// typeMap contains all named types defined in the schema.
	typeMap TypeMap

	// directives contains all directives defined in the schema.
	directives DirectiveList

	// implementations indexes the object types by the name of each interface they implement. It is
	// built on first use.
	implementationsOnce sync.Once
	implementations     map[string][]*Object
}

// NewSchema initializes a Schema from the given config.
func NewSchema(config *SchemaConfig) (*Schema, error) {
	checked := !config.AssumeValid

	if checked && config.Query == nil {
		return nil, NewError("Schema must define a Query root type.")
	}

	schema := &Schema{
		description:  config.Description,
		query:        config.Query,
		mutation:     config.Mutation,
		subscription: config.Subscription,
	}

	// Collect directives, first one wins on a name collision so user-supplied directives shadow
	// the specification ones.
	directives := make(DirectiveList, 0, len(config.Directives)+3)
	for _, directive := range config.Directives {
		if directive == nil {
			continue
		}
		if directives.ForName(directive.Name()) == nil {
			directives = append(directives, directive)
		}
	}
	for _, directive := range StandardDirectives() {
		if directives.ForName(directive.Name()) == nil {
			directives = append(directives, directive)
		}
	}
	schema.directives = directives

	// Build type map now to detect any errors within this schema.
	typeMap := TypeMap{
		types: map[string]Type{},
	}

	// Add root operation types.
	if config.Query != nil {
		if err := typeMap.add(config.Query, checked); err != nil {
			return nil, err
		}
	}
	if config.Mutation != nil {
		if err := typeMap.add(config.Mutation, checked); err != nil {
			return nil, err
		}
	}
	if config.Subscription != nil {
		if err := typeMap.add(config.Subscription, checked); err != nil {
			return nil, err
		}
	}

	// Add built-in scalar types.
	for _, t := range []Type{Int(), Float(), String(), Boolean(), ID()} {
		if err := typeMap.add(t, checked); err != nil {
			return nil, err
		}
	}

	// Add introspection types.
	for _, t := range IntrospectionTypes() {
		if err := typeMap.add(t, checked); err != nil {
			return nil, err
		}
	}

	// Visit all enumerated types in config.
	for _, t := range config.Types {
		if err := typeMap.add(t, checked); err != nil {
			return nil, err
		}
	}

	// Visit types referenced by directive arguments.
	for _, directive := range schema.directives {
		for _, arg := range directive.Args() {
			if err := typeMap.add(arg.Type(), checked); err != nil {
				return nil, err
			}
		}
	}

	schema.typeMap = typeMap

	return schema, nil
}

// MustNewSchema is a convenience function equivalent to NewSchema but panics on failure instead
// of returning an error.
func MustNewSchema(config *SchemaConfig) *Schema {
	schema, err := NewSchema(config)
	if err != nil {
		panic(err)
	}
	return schema
}

// Description of the schema
func (schema *Schema) Description() string {
	return schema.description
}

// TypeMap keeps track of all named types referenced within the schema.
func (schema *Schema) TypeMap() TypeMap {
	return schema.typeMap
}

// Directives keeps track of all valid directives within the schema.
func (schema *Schema) Directives() DirectiveList {
	return schema.directives
}

// Query is one of the three GraphQL Root Operations.
//
// Reference: https://spec.graphql.org/draft/#sec-Root-Operation-Types
func (schema *Schema) Query() *Object {
	return schema.query
}

// Mutation is one of the three GraphQL Root Operations.
//
// Reference: https://spec.graphql.org/draft/#sec-Root-Operation-Types
func (schema *Schema) Mutation() *Object {
	return schema.mutation
}

// Subscription is one of the three GraphQL Root Operations.
//
// Reference: https://spec.graphql.org/draft/#sec-Root-Operation-Types
func (schema *Schema) Subscription() *Object {
	return schema.subscription
}

// PossibleTypes returns the concrete types for an abstract type in the schema. For an Interface,
// this is the list of Object types that implement it. For a Union, this is the list of its member
// types.
func (schema *Schema) PossibleTypes(t AbstractType) []*Object {
	switch t := t.(type) {
	case *Union:
		return t.PossibleTypes()
	case *Interface:
		schema.implementationsOnce.Do(schema.buildImplementations)
		return schema.implementations[t.Name()]
	}
	return nil
}

func (schema *Schema) buildImplementations() {
	implementations := map[string][]*Object{}
	schema.typeMap.Range(func(name string, t Type) bool {
		if object, ok := t.(*Object); ok {
			for _, iface := range object.Interfaces() {
				implementations[iface.Name()] = append(implementations[iface.Name()], object)
			}
		}
		return true
	})
	schema.implementations = implementations
}

// TypeFromAST returns the Type that the given AST type node names within this schema. For example,
// given the node for `[User]`, a List instance is returned whose element is the type named "User"
// in the schema. It returns nil if the named type is not found.
func (schema *Schema) TypeFromAST(node *ast.Type) Type {
	if node == nil {
		return nil
	}

	var t Type
	if node.NamedType != "" {
		t = schema.typeMap.Lookup(node.NamedType)
	} else if elemType := schema.TypeFromAST(node.Elem); elemType != nil {
		t = MustNewListOfType(elemType)
	}
	if t == nil {
		return nil
	}

	if node.NonNull {
		t = MustNewNonNullOfType(t)
	}
	return t
}
