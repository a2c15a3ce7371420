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
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/selenegql/selene/graphql"
)

// buildOptions carries the settings shared by BuildSchema and ExtendSchema.
type buildOptions struct {
	assumeValid bool
}

// BuildOption configures BuildSchema and ExtendSchema.
type BuildOption func(*buildOptions)

// AssumeValid skips the structural pre-pass and defers thunk resolution to first use. It is meant
// for documents that are known to be valid, e.g. schemas rebuilt from a trusted snapshot.
func AssumeValid() BuildOption {
	return func(o *buildOptions) {
		o.assumeValid = true
	}
}

// builder carries the state of one BuildSchema (or ExtendSchema) call: the document's type
// definitions and the eagerly created type shells whose members resolve lazily against the
// completed name table.
type builder struct {
	opts buildOptions

	// types maps each defined type name to its shell. Thunks close over the builder and consult
	// this table after every shell exists, which is what lets definitions reference each other
	// regardless of their order in the document.
	types map[string]graphql.Type

	// order records type names in declaration order.
	order []string
}

func newBuilder(opts buildOptions) *builder {
	return &builder{
		opts:  opts,
		types: map[string]graphql.Type{},
	}
}

// addType registers a shell for the given definition.
func (b *builder) addType(def *ast.Definition) error {
	if _, exists := b.types[def.Name]; exists {
		return graphql.NewValidationError(def.Position,
			`There can be only one type named "%s".`, def.Name)
	}
	t, err := b.createType(def)
	if err != nil {
		return err
	}
	b.types[def.Name] = t
	b.order = append(b.order, def.Name)
	return nil
}

// createType creates the shell for one type definition. Only the name and description are
// materialized here; fields, interfaces, members and values resolve on first access.
func (b *builder) createType(def *ast.Definition) (graphql.Type, error) {
	switch def.Kind {
	case ast.Scalar:
		return graphql.NewScalar(&graphql.ScalarConfig{
			Name:        def.Name,
			Description: def.Description,
		})

	case ast.Object:
		return graphql.NewObject(&graphql.ObjectConfig{
			Name:        def.Name,
			Description: def.Description,
			Fields:      b.fieldsThunk(def),
			Interfaces:  b.interfacesThunk(def),
		})

	case ast.Interface:
		return graphql.NewInterface(&graphql.InterfaceConfig{
			Name:        def.Name,
			Description: def.Description,
			Fields:      b.fieldsThunk(def),
			Interfaces:  b.interfacesThunk(def),
		})

	case ast.Union:
		return graphql.NewUnion(&graphql.UnionConfig{
			Name:        def.Name,
			Description: def.Description,
			Members:     b.membersThunk(def),
		})

	case ast.Enum:
		return graphql.NewEnum(&graphql.EnumConfig{
			Name:        def.Name,
			Description: def.Description,
			Values:      b.enumValuesThunk(def),
		})

	case ast.InputObject:
		return graphql.NewInputObject(&graphql.InputObjectConfig{
			Name:        def.Name,
			Description: def.Description,
			Fields:      b.inputFieldsThunk(def),
			OneOf:       def.Directives.ForName("oneOf") != nil,
		})
	}

	return nil, graphql.NewValidationError(def.Position,
		"Cannot build type %s: unexpected definition kind %s.", def.Name, def.Kind)
}

// deprecationOf extracts the deprecation tag carried by @deprecated, if any.
func deprecationOf(directives ast.DirectiveList) *graphql.Deprecation {
	deprecated := directives.ForName("deprecated")
	if deprecated == nil {
		return nil
	}
	reason := graphql.DefaultDeprecationReason
	if arg := deprecated.Arguments.ForName("reason"); arg != nil && arg.Value != nil {
		reason = arg.Value.Raw
	}
	return &graphql.Deprecation{Reason: reason}
}

// defaultValueOf wraps a default value literal, or returns nil when the element declares none.
func defaultValueOf(literal *ast.Value) *graphql.DefaultValue {
	if literal == nil {
		return nil
	}
	return graphql.NewDefaultValueLiteral(literal)
}

func (b *builder) buildArgumentConfigs(defs ast.ArgumentDefinitionList) ([]graphql.ArgumentConfig, error) {
	if len(defs) == 0 {
		return nil, nil
	}
	args := make([]graphql.ArgumentConfig, len(defs))
	for i, def := range defs {
		argType, err := b.resolveType(def.Type)
		if err != nil {
			return nil, err
		}
		args[i] = graphql.ArgumentConfig{
			Name:        def.Name,
			Description: def.Description,
			Type:        argType,
			Default:     defaultValueOf(def.DefaultValue),
			Deprecation: deprecationOf(def.Directives),
		}
	}
	return args, nil
}

func (b *builder) buildField(def *ast.FieldDefinition) (*graphql.Field, error) {
	fieldType, err := b.resolveType(def.Type)
	if err != nil {
		return nil, err
	}
	args, err := b.buildArgumentConfigs(def.Arguments)
	if err != nil {
		return nil, err
	}
	return graphql.NewField(&graphql.FieldConfig{
		Name:        def.Name,
		Description: def.Description,
		Type:        fieldType,
		Args:        args,
		Deprecation: deprecationOf(def.Directives),
	})
}

func (b *builder) fieldsThunk(def *ast.Definition) graphql.FieldsThunk {
	return func() (graphql.FieldList, error) {
		fields := make(graphql.FieldList, len(def.Fields))
		for i, fieldDef := range def.Fields {
			field, err := b.buildField(fieldDef)
			if err != nil {
				return nil, err
			}
			fields[i] = field
		}
		return fields, nil
	}
}

func (b *builder) interfacesThunk(def *ast.Definition) graphql.InterfacesThunk {
	if len(def.Interfaces) == 0 {
		return nil
	}
	return func() ([]*graphql.Interface, error) {
		interfaces := make([]*graphql.Interface, len(def.Interfaces))
		for i, name := range def.Interfaces {
			t, err := b.lookupNamed(name, def.Position)
			if err != nil {
				return nil, err
			}
			iface, ok := t.(*graphql.Interface)
			if !ok {
				return nil, graphql.NewValidationError(def.Position,
					"Type %s must only implement Interface types, it cannot implement %s.",
					def.Name, t)
			}
			interfaces[i] = iface
		}
		return interfaces, nil
	}
}

func (b *builder) membersThunk(def *ast.Definition) graphql.MembersThunk {
	return func() ([]*graphql.Object, error) {
		members := make([]*graphql.Object, len(def.Types))
		for i, name := range def.Types {
			t, err := b.lookupNamed(name, def.Position)
			if err != nil {
				return nil, err
			}
			object, ok := t.(*graphql.Object)
			if !ok {
				return nil, graphql.NewValidationError(def.Position,
					"Union type %s can only include Object types, it cannot include %s.",
					def.Name, t)
			}
			members[i] = object
		}
		return members, nil
	}
}

func (b *builder) enumValuesThunk(def *ast.Definition) graphql.EnumValuesThunk {
	return func() (graphql.EnumValueList, error) {
		values := make(graphql.EnumValueList, len(def.EnumValues))
		for i, valueDef := range def.EnumValues {
			value, err := graphql.NewEnumValue(&graphql.EnumValueConfig{
				Name:        valueDef.Name,
				Description: valueDef.Description,
				Deprecation: deprecationOf(valueDef.Directives),
			})
			if err != nil {
				return nil, err
			}
			values[i] = value
		}
		return values, nil
	}
}

func (b *builder) inputFieldsThunk(def *ast.Definition) graphql.InputFieldsThunk {
	return func() (graphql.InputFieldList, error) {
		fields := make(graphql.InputFieldList, len(def.Fields))
		for i, fieldDef := range def.Fields {
			fieldType, err := b.resolveType(fieldDef.Type)
			if err != nil {
				return nil, err
			}
			field, err := graphql.NewInputField(&graphql.InputFieldConfig{
				Name:        fieldDef.Name,
				Description: fieldDef.Description,
				Type:        fieldType,
				Default:     defaultValueOf(fieldDef.DefaultValue),
				Deprecation: deprecationOf(fieldDef.Directives),
			})
			if err != nil {
				return nil, err
			}
			fields[i] = field
		}
		return fields, nil
	}
}

// buildDirective builds a directive definition. Argument types resolve eagerly: directives are
// built after every type shell already exists.
func (b *builder) buildDirective(def *ast.DirectiveDefinition) (*graphql.Directive, error) {
	args, err := b.buildArgumentConfigs(def.Arguments)
	if err != nil {
		return nil, err
	}
	locations := make([]graphql.DirectiveLocation, len(def.Locations))
	for i, location := range def.Locations {
		locations[i] = graphql.DirectiveLocation(location)
	}
	return graphql.NewDirective(&graphql.DirectiveConfig{
		Name:         def.Name,
		Description:  def.Description,
		Locations:    locations,
		Args:         args,
		IsRepeatable: def.IsRepeatable,
	})
}

// operationName renders an operation kind the way root-type diagnostics spell it.
func operationName(op ast.Operation) string {
	switch op {
	case ast.Query:
		return "Query"
	case ast.Mutation:
		return "Mutation"
	case ast.Subscription:
		return "Subscription"
	}
	return string(op)
}

// setRootType assigns the root object for one operation kind in the schema config.
func setRootType(config *graphql.SchemaConfig, op ast.Operation, object *graphql.Object) {
	switch op {
	case ast.Query:
		config.Query = object
	case ast.Mutation:
		config.Mutation = object
	case ast.Subscription:
		config.Subscription = object
	}
}

// BuildSchema compiles a parsed schema document into an immutable Schema. Definitions may
// reference each other in any order, including cyclically; member resolution is deferred until
// the whole document has been indexed. Unless AssumeValid is given, the document is structurally
// validated first and every deferred member is forced before the schema is returned, so a
// non-nil Schema is fully resolvable.
//
// Documents containing extension blocks are rejected; extensions are applied with ExtendSchema.
func BuildSchema(doc *ast.SchemaDocument, opts ...BuildOption) (*graphql.Schema, error) {
	var options buildOptions
	for _, opt := range opts {
		opt(&options)
	}

	if doc == nil {
		return nil, graphql.NewError("Must provide a schema document.")
	}
	if !options.assumeValid {
		if err := validateSchemaDocument(doc); err != nil {
			return nil, err
		}
	}

	b := newBuilder(options)

	// Seed the name table with a shell per definition.
	for _, def := range doc.Definitions {
		if def.BuiltIn {
			continue
		}
		if err := b.addType(def); err != nil {
			return nil, err
		}
	}

	config := &graphql.SchemaConfig{
		AssumeValid: options.assumeValid,
	}

	// Build directive definitions.
	for _, def := range doc.Directives {
		directive, err := b.buildDirective(def)
		if err != nil {
			return nil, err
		}
		config.Directives = append(config.Directives, directive)
	}

	// Determine root operation types: an explicit schema declaration wins, otherwise the types
	// literally named Query, Mutation and Subscription take the roles.
	if len(doc.Schema) > 0 {
		schemaDef := doc.Schema[0]
		config.Description = schemaDef.Description
		for _, opDef := range schemaDef.OperationTypes {
			t, err := b.lookupNamed(opDef.Type, opDef.Position)
			if err != nil {
				return nil, err
			}
			object, ok := t.(*graphql.Object)
			if !ok {
				return nil, graphql.NewValidationError(opDef.Position,
					"%s root type must be Object type, it cannot be %s.",
					operationName(opDef.Operation), t)
			}
			setRootType(config, opDef.Operation, object)
		}
	} else {
		for _, op := range []ast.Operation{ast.Query, ast.Mutation, ast.Subscription} {
			t, ok := b.types[operationName(op)]
			if !ok {
				continue
			}
			object, ok := t.(*graphql.Object)
			if !ok {
				if options.assumeValid {
					continue
				}
				return nil, graphql.NewError(
					operationName(op) + " root type must be Object type, it cannot be " + t.String() + ".")
			}
			setRootType(config, op, object)
		}
	}

	// Enumerate types in declaration order so unreferenced definitions survive into the schema.
	config.Types = make([]graphql.Type, len(b.order))
	for i, name := range b.order {
		config.Types[i] = b.types[name]
	}

	return graphql.NewSchema(config)
}

// MustBuildSchema is a convenience function equivalent to BuildSchema but panics on failure
// instead of returning an error.
func MustBuildSchema(doc *ast.SchemaDocument, opts ...BuildOption) *graphql.Schema {
	schema, err := BuildSchema(doc, opts...)
	if err != nil {
		panic(err)
	}
	return schema
}
