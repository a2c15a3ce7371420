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
)

// Schema extension. An extension document never mutates the schema it extends: every named type
// of the original schema is rebuilt through a replacement table so that a type whose members now
// reach an extended type is itself a fresh instance (the copy is infectious). Builtin scalars and
// introspection types pass through by identity, as do the specification directives.

// extender layers an extension document over an existing schema. It embeds builder so that type
// references in the document resolve against the combined table of rebuilt and newly defined
// types.
type extender struct {
	*builder
	schema *graphql.Schema

	// extensions groups the document's extension blocks by target type name.
	extensions map[string][]*ast.Definition
}

// isNoOpDocument reports whether applying doc can't possibly change a schema.
func isNoOpDocument(doc *ast.SchemaDocument) bool {
	return doc == nil ||
		(len(doc.Definitions) == 0 &&
			len(doc.Extensions) == 0 &&
			len(doc.Directives) == 0 &&
			len(doc.Schema) == 0 &&
			len(doc.SchemaExtension) == 0)
}

// typeKindName spells the kind of a compiled type the way extension diagnostics phrase it.
func typeKindName(t graphql.Type) string {
	switch t.(type) {
	case *graphql.Scalar:
		return "scalar"
	case *graphql.Object:
		return "object"
	case *graphql.Interface:
		return "interface"
	case *graphql.Union:
		return "union"
	case *graphql.Enum:
		return "enum"
	case *graphql.InputObject:
		return "input object"
	}
	return "unknown"
}

// definitionKindName spells an AST definition kind the same way.
func definitionKindName(kind ast.DefinitionKind) string {
	switch kind {
	case ast.Scalar:
		return "scalar"
	case ast.Object:
		return "object"
	case ast.Interface:
		return "interface"
	case ast.Union:
		return "union"
	case ast.Enum:
		return "enum"
	case ast.InputObject:
		return "input object"
	}
	return "unknown"
}

// ExtendSchema produces a schema that layers the extension document over the given schema. The
// original schema is left untouched. Applying an empty document returns the original schema
// itself, so callers can key caches off identity.
func ExtendSchema(schema *graphql.Schema, doc *ast.SchemaDocument, opts ...BuildOption) (*graphql.Schema, error) {
	var options buildOptions
	for _, opt := range opts {
		opt(&options)
	}

	if schema == nil {
		return nil, graphql.NewError("Must provide a schema to extend.")
	}
	if isNoOpDocument(doc) {
		return schema, nil
	}

	e := &extender{
		builder:    newBuilder(options),
		schema:     schema,
		extensions: map[string][]*ast.Definition{},
	}
	for _, ext := range doc.Extensions {
		e.extensions[ext.Name] = append(e.extensions[ext.Name], ext)
	}

	if !options.assumeValid {
		if err := e.validate(doc); err != nil {
			return nil, err
		}
	}

	// Rebuild every named type of the original schema, in name order for determinism. Builtin
	// scalars and introspection types keep their identity and are re-added by NewSchema anyway.
	var existingNames []string
	schema.TypeMap().Range(func(name string, t graphql.Type) bool {
		if !graphql.IsSpecifiedScalarType(t) && !graphql.IsIntrospectionType(t) {
			existingNames = append(existingNames, name)
		}
		return true
	})
	sort.Strings(existingNames)
	for _, name := range existingNames {
		rebuilt, err := e.rebuildType(schema.TypeMap().Lookup(name))
		if err != nil {
			return nil, err
		}
		e.types[name] = rebuilt
		e.order = append(e.order, name)
	}

	// Add the document's new type definitions. Extension blocks may target a type introduced by
	// the same document; their additions fold into the definition before it is built.
	for _, def := range doc.Definitions {
		if def.BuiltIn {
			continue
		}
		merged, err := mergeExtensions(def, e.extensions[def.Name])
		if err != nil {
			return nil, err
		}
		if err := e.addType(merged); err != nil {
			return nil, err
		}
	}

	config := &graphql.SchemaConfig{
		Description: schema.Description(),
		AssumeValid: options.assumeValid,
	}
	if len(doc.Schema) > 0 && doc.Schema[0].Description != "" {
		config.Description = doc.Schema[0].Description
	}

	// Directives: specification directives pass by identity, other existing directives are
	// rebuilt with their argument types re-routed, new definitions are appended.
	for _, directive := range schema.Directives() {
		if graphql.IsSpecifiedDirective(directive) {
			config.Directives = append(config.Directives, directive)
			continue
		}
		rebuilt, err := e.rebuildDirective(directive)
		if err != nil {
			return nil, err
		}
		config.Directives = append(config.Directives, rebuilt)
	}
	for _, def := range doc.Directives {
		directive, err := e.buildDirective(def)
		if err != nil {
			return nil, err
		}
		config.Directives = append(config.Directives, directive)
	}

	// Root operations layer: the original roots (replaced), then schema definitions, then schema
	// extensions.
	if err := e.layerRoots(config, doc); err != nil {
		return nil, err
	}

	config.Types = make([]graphql.Type, len(e.order))
	for i, name := range e.order {
		config.Types[i] = e.types[name]
	}

	return graphql.NewSchema(config)
}

func (e *extender) layerRoots(config *graphql.SchemaConfig, doc *ast.SchemaDocument) error {
	replaceRoot := func(root *graphql.Object) (*graphql.Object, error) {
		if root == nil {
			return nil, nil
		}
		replaced, err := e.replaceType(root)
		if err != nil {
			return nil, err
		}
		return replaced.(*graphql.Object), nil
	}

	var err error
	if config.Query, err = replaceRoot(e.schema.Query()); err != nil {
		return err
	}
	if config.Mutation, err = replaceRoot(e.schema.Mutation()); err != nil {
		return err
	}
	if config.Subscription, err = replaceRoot(e.schema.Subscription()); err != nil {
		return err
	}

	applyOperationTypes := func(defs []*ast.SchemaDefinition) error {
		for _, schemaDef := range defs {
			for _, opDef := range schemaDef.OperationTypes {
				t, err := e.lookupNamed(opDef.Type, opDef.Position)
				if err != nil {
					return err
				}
				object, ok := t.(*graphql.Object)
				if !ok {
					return graphql.NewValidationError(opDef.Position,
						"%s root type must be Object type, it cannot be %s.",
						operationName(opDef.Operation), t)
				}
				setRootType(config, opDef.Operation, object)
			}
		}
		return nil
	}
	if err := applyOperationTypes(doc.Schema); err != nil {
		return err
	}
	return applyOperationTypes(doc.SchemaExtension)
}

// mergeExtensions folds extension blocks into a type definition from the same document,
// producing a combined definition for the builder. The input definition is left untouched.
func mergeExtensions(def *ast.Definition, exts []*ast.Definition) (*ast.Definition, error) {
	if len(exts) == 0 {
		return def, nil
	}

	merged := *def
	merged.Fields = append(ast.FieldList(nil), def.Fields...)
	merged.Interfaces = append([]string(nil), def.Interfaces...)
	merged.Types = append([]string(nil), def.Types...)
	merged.EnumValues = append(ast.EnumValueList(nil), def.EnumValues...)

	for _, ext := range exts {
		for _, fieldDef := range ext.Fields {
			if merged.Fields.ForName(fieldDef.Name) != nil {
				return nil, graphql.NewValidationError(fieldDef.Position,
					`Field "%s.%s" already exists in the schema. It cannot also be defined in this type extension.`,
					def.Name, fieldDef.Name)
			}
			merged.Fields = append(merged.Fields, fieldDef)
		}
		for _, name := range ext.Interfaces {
			for _, existing := range merged.Interfaces {
				if existing == name {
					return nil, graphql.NewValidationError(ext.Position,
						`Type "%s" already implements "%s". It cannot also be implemented in this type extension.`,
						def.Name, name)
				}
			}
			merged.Interfaces = append(merged.Interfaces, name)
		}
		for _, name := range ext.Types {
			for _, existing := range merged.Types {
				if existing == name {
					return nil, graphql.NewValidationError(ext.Position,
						`Union member "%s" already exists in union "%s". It cannot also be defined in this type extension.`,
						name, def.Name)
				}
			}
			merged.Types = append(merged.Types, name)
		}
		for _, valueDef := range ext.EnumValues {
			if merged.EnumValues.ForName(valueDef.Name) != nil {
				return nil, graphql.NewValidationError(valueDef.Position,
					`Enum value "%s.%s" already exists in the schema. It cannot also be defined in this type extension.`,
					def.Name, valueDef.Name)
			}
			merged.EnumValues = append(merged.EnumValues, valueDef)
		}
	}
	return &merged, nil
}

// replaceType maps a type of the original schema to its counterpart in the extended schema.
// Wrapping types are rebuilt around the replaced inner type; builtin scalars and introspection
// types map to themselves.
func (e *extender) replaceType(t graphql.Type) (graphql.Type, error) {
	switch t := t.(type) {
	case *graphql.List:
		elemType, err := e.replaceType(t.ElementType())
		if err != nil {
			return nil, err
		}
		return graphql.NewListOfType(elemType)
	case *graphql.NonNull:
		innerType, err := e.replaceType(t.InnerType())
		if err != nil {
			return nil, err
		}
		return graphql.NewNonNullOfType(innerType)
	}

	if graphql.IsSpecifiedScalarType(t) || graphql.IsIntrospectionType(t) {
		return t, nil
	}

	name := t.(graphql.TypeWithName).Name()
	replacement, ok := e.types[name]
	if !ok {
		return nil, graphql.NewError(`Missing replacement for type "` + name + `".`)
	}
	return replacement, nil
}

// replaceArgumentConfigs re-routes the types of compiled arguments through the replacement
// table. Default value records are carried over as-is; they are immutable.
func (e *extender) replaceArgumentConfigs(args graphql.ArgumentList) ([]graphql.ArgumentConfig, error) {
	if len(args) == 0 {
		return nil, nil
	}
	configs := make([]graphql.ArgumentConfig, len(args))
	for i, arg := range args {
		argType, err := e.replaceType(arg.Type())
		if err != nil {
			return nil, err
		}
		configs[i] = graphql.ArgumentConfig{
			Name:        arg.Name(),
			Description: arg.Description(),
			Type:        argType,
			Default:     arg.Default(),
			Deprecation: arg.Deprecation(),
		}
	}
	return configs, nil
}

// rebuildType creates the extended-schema counterpart of one named type: same name and
// description, members re-routed through the replacement table, extension blocks appended.
func (e *extender) rebuildType(t graphql.Type) (graphql.Type, error) {
	exts := e.extensions[t.(graphql.TypeWithName).Name()]

	switch t := t.(type) {
	case *graphql.Scalar:
		return graphql.NewScalar(&graphql.ScalarConfig{
			Name:          t.Name(),
			Description:   t.Description(),
			ResultCoercer: graphql.CoerceScalarResultFunc(t.CoerceResultValue),
			InputCoercer: graphql.ScalarInputCoercerFuncs{
				CoerceVariableValueFunc: t.CoerceVariableValue,
				CoerceLiteralValueFunc:  t.CoerceLiteralValue,
			},
		})

	case *graphql.Object:
		return graphql.NewObject(&graphql.ObjectConfig{
			Name:        t.Name(),
			Description: t.Description(),
			Fields:      e.extendFieldsThunk(t.Name(), t.Fields, t.Err, exts),
			Interfaces:  e.extendInterfacesThunk(t.Interfaces, t.Err, exts),
		})

	case *graphql.Interface:
		return graphql.NewInterface(&graphql.InterfaceConfig{
			Name:        t.Name(),
			Description: t.Description(),
			Fields:      e.extendFieldsThunk(t.Name(), t.Fields, t.Err, exts),
			Interfaces:  e.extendInterfacesThunk(t.Interfaces, t.Err, exts),
		})

	case *graphql.Union:
		return graphql.NewUnion(&graphql.UnionConfig{
			Name:        t.Name(),
			Description: t.Description(),
			Members:     e.extendMembersThunk(t, exts),
		})

	case *graphql.Enum:
		return graphql.NewEnum(&graphql.EnumConfig{
			Name:        t.Name(),
			Description: t.Description(),
			Values:      e.extendEnumValuesThunk(t, exts),
		})

	case *graphql.InputObject:
		return graphql.NewInputObject(&graphql.InputObjectConfig{
			Name:        t.Name(),
			Description: t.Description(),
			Fields:      e.extendInputFieldsThunk(t, exts),
			OneOf:       t.OneOf(),
		})
	}

	return nil, graphql.NewError("Cannot extend " + t.String() + ": unsupported type.")
}

func (e *extender) extendFieldsThunk(typeName string, oldFields func() graphql.FieldList, oldErr func() error, exts []*ast.Definition) graphql.FieldsThunk {
	return func() (graphql.FieldList, error) {
		old := oldFields()
		if old == nil {
			if err := oldErr(); err != nil {
				return nil, err
			}
		}

		fields := make(graphql.FieldList, 0, len(old))
		for _, f := range old {
			fieldType, err := e.replaceType(f.Type())
			if err != nil {
				return nil, err
			}
			args, err := e.replaceArgumentConfigs(f.Args())
			if err != nil {
				return nil, err
			}
			field, err := graphql.NewField(&graphql.FieldConfig{
				Name:        f.Name(),
				Description: f.Description(),
				Type:        fieldType,
				Args:        args,
				Deprecation: f.Deprecation(),
			})
			if err != nil {
				return nil, err
			}
			fields = append(fields, field)
		}

		for _, ext := range exts {
			for _, fieldDef := range ext.Fields {
				if fields.ForName(fieldDef.Name) != nil {
					return nil, graphql.NewValidationError(fieldDef.Position,
						`Field "%s.%s" already exists in the schema. It cannot also be defined in this type extension.`,
						typeName, fieldDef.Name)
				}
				field, err := e.buildField(fieldDef)
				if err != nil {
					return nil, err
				}
				fields = append(fields, field)
			}
		}
		return fields, nil
	}
}

func (e *extender) extendInterfacesThunk(oldInterfaces func() []*graphql.Interface, oldErr func() error, exts []*ast.Definition) graphql.InterfacesThunk {
	return func() ([]*graphql.Interface, error) {
		old := oldInterfaces()
		if old == nil {
			if err := oldErr(); err != nil {
				return nil, err
			}
		}

		interfaces := make([]*graphql.Interface, 0, len(old))
		for _, iface := range old {
			replaced, err := e.replaceType(iface)
			if err != nil {
				return nil, err
			}
			interfaces = append(interfaces, replaced.(*graphql.Interface))
		}

		for _, ext := range exts {
			for _, name := range ext.Interfaces {
				t, err := e.lookupNamed(name, ext.Position)
				if err != nil {
					return nil, err
				}
				iface, ok := t.(*graphql.Interface)
				if !ok {
					return nil, graphql.NewValidationError(ext.Position,
						"Type %s must only implement Interface types, it cannot implement %s.",
						ext.Name, t)
				}
				for _, existing := range interfaces {
					if existing.Name() == iface.Name() {
						return nil, graphql.NewValidationError(ext.Position,
							`Type "%s" already implements "%s". It cannot also be implemented in this type extension.`,
							ext.Name, iface.Name())
					}
				}
				interfaces = append(interfaces, iface)
			}
		}
		return interfaces, nil
	}
}

func (e *extender) extendMembersThunk(union *graphql.Union, exts []*ast.Definition) graphql.MembersThunk {
	return func() ([]*graphql.Object, error) {
		old := union.PossibleTypes()
		if old == nil {
			if err := union.Err(); err != nil {
				return nil, err
			}
		}

		members := make([]*graphql.Object, 0, len(old))
		for _, member := range old {
			replaced, err := e.replaceType(member)
			if err != nil {
				return nil, err
			}
			members = append(members, replaced.(*graphql.Object))
		}

		for _, ext := range exts {
			for _, name := range ext.Types {
				t, err := e.lookupNamed(name, ext.Position)
				if err != nil {
					return nil, err
				}
				object, ok := t.(*graphql.Object)
				if !ok {
					return nil, graphql.NewValidationError(ext.Position,
						"Union type %s can only include Object types, it cannot include %s.",
						union.Name(), t)
				}
				for _, existing := range members {
					if existing.Name() == object.Name() {
						return nil, graphql.NewValidationError(ext.Position,
							`Union member "%s" already exists in union "%s". It cannot also be defined in this type extension.`,
							object.Name(), union.Name())
					}
				}
				members = append(members, object)
			}
		}
		return members, nil
	}
}

func (e *extender) extendEnumValuesThunk(enum *graphql.Enum, exts []*ast.Definition) graphql.EnumValuesThunk {
	return func() (graphql.EnumValueList, error) {
		old := enum.Values()
		if old == nil {
			if err := enum.Err(); err != nil {
				return nil, err
			}
		}

		// Enum values reference no types; the compiled records carry over by identity.
		values := make(graphql.EnumValueList, 0, len(old))
		values = append(values, old...)

		for _, ext := range exts {
			for _, valueDef := range ext.EnumValues {
				if values.ForName(valueDef.Name) != nil {
					return nil, graphql.NewValidationError(valueDef.Position,
						`Enum value "%s.%s" already exists in the schema. It cannot also be defined in this type extension.`,
						enum.Name(), valueDef.Name)
				}
				value, err := graphql.NewEnumValue(&graphql.EnumValueConfig{
					Name:        valueDef.Name,
					Description: valueDef.Description,
					Deprecation: deprecationOf(valueDef.Directives),
				})
				if err != nil {
					return nil, err
				}
				values = append(values, value)
			}
		}
		return values, nil
	}
}

func (e *extender) extendInputFieldsThunk(inputObject *graphql.InputObject, exts []*ast.Definition) graphql.InputFieldsThunk {
	return func() (graphql.InputFieldList, error) {
		old := inputObject.Fields()
		if old == nil {
			if err := inputObject.Err(); err != nil {
				return nil, err
			}
		}

		fields := make(graphql.InputFieldList, 0, len(old))
		for _, f := range old {
			fieldType, err := e.replaceType(f.Type())
			if err != nil {
				return nil, err
			}
			field, err := graphql.NewInputField(&graphql.InputFieldConfig{
				Name:        f.Name(),
				Description: f.Description(),
				Type:        fieldType,
				Default:     f.Default(),
				Deprecation: f.Deprecation(),
			})
			if err != nil {
				return nil, err
			}
			fields = append(fields, field)
		}

		for _, ext := range exts {
			for _, fieldDef := range ext.Fields {
				if fields.ForName(fieldDef.Name) != nil {
					return nil, graphql.NewValidationError(fieldDef.Position,
						`Field "%s.%s" already exists in the schema. It cannot also be defined in this type extension.`,
						inputObject.Name(), fieldDef.Name)
				}
				fieldType, err := e.resolveType(fieldDef.Type)
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
				fields = append(fields, field)
			}
		}
		return fields, nil
	}
}

// rebuildDirective recreates a compiled directive with its argument types re-routed through the
// replacement table.
func (e *extender) rebuildDirective(directive *graphql.Directive) (*graphql.Directive, error) {
	args, err := e.replaceArgumentConfigs(directive.Args())
	if err != nil {
		return nil, err
	}
	return graphql.NewDirective(&graphql.DirectiveConfig{
		Name:         directive.Name(),
		Description:  directive.Description(),
		Locations:    directive.Locations(),
		Args:         args,
		IsRepeatable: directive.IsRepeatable(),
	})
}

// validate is the structural pre-pass for an extension document: extension targets must exist
// with matching kinds, new names must not collide with existing ones, and references must
// resolve against the union of the old schema and the new definitions.
func (e *extender) validate(doc *ast.SchemaDocument) error {
	schema := e.schema

	// New type definitions must not collide.
	newDefs := map[string]*ast.Definition{}
	for _, def := range doc.Definitions {
		if def.BuiltIn {
			continue
		}
		if err := checkName("type", def.Name, def.Position); err != nil {
			return err
		}
		if schema.TypeMap().Lookup(def.Name) != nil {
			return graphql.NewValidationError(def.Position,
				`Type "%s" already exists in the schema. It cannot also be defined in this type definition.`,
				def.Name)
		}
		if _, exists := newDefs[def.Name]; exists {
			return graphql.NewValidationError(def.Position,
				`There can be only one type named "%s".`, def.Name)
		}
		newDefs[def.Name] = def
	}

	// New directives must not redefine existing ones.
	newDirectives := map[string]bool{}
	for _, def := range doc.Directives {
		if err := checkName("directive", def.Name, def.Position); err != nil {
			return err
		}
		if schema.Directives().ForName(def.Name) != nil {
			return graphql.NewValidationError(def.Position,
				`Directive "@%s" already exists in the schema. It cannot be redefined.`, def.Name)
		}
		if newDirectives[def.Name] {
			return graphql.NewValidationError(def.Position,
				`There can be only one directive named "@%s".`, def.Name)
		}
		newDirectives[def.Name] = true
	}

	resolvable := func(name string) bool {
		if _, ok := builtinScalars[name]; ok {
			return true
		}
		if graphql.IntrospectionType(name) != nil {
			return true
		}
		if schema.TypeMap().Lookup(name) != nil {
			return true
		}
		_, ok := newDefs[name]
		return ok
	}
	candidates := func() []string {
		var names []string
		schema.TypeMap().Range(func(name string, t graphql.Type) bool {
			names = append(names, name)
			return true
		})
		for name := range newDefs {
			names = append(names, name)
		}
		sort.Strings(names)
		return names
	}

	// Extension targets must exist with matching kinds.
	for _, ext := range doc.Extensions {
		target := schema.TypeMap().Lookup(ext.Name)
		if target == nil {
			if _, isNew := newDefs[ext.Name]; !isNew {
				message := `Cannot extend type "` + ext.Name + `" because it is not defined.`
				return graphql.NewValidationError(ext.Position, "%s", message)
			}
			// Extending a type introduced by the same document: match kinds against the new
			// definition instead.
			if newDefs[ext.Name].Kind != ext.Kind {
				return graphql.NewValidationError(ext.Position,
					`Cannot extend %s type "%s" as %s.`,
					definitionKindName(newDefs[ext.Name].Kind), ext.Name, definitionKindName(ext.Kind))
			}
			continue
		}
		if typeKindName(target) != definitionKindName(ext.Kind) {
			return graphql.NewValidationError(ext.Position,
				`Cannot extend %s type "%s" as %s.`,
				typeKindName(target), ext.Name, definitionKindName(ext.Kind))
		}
	}

	// References in new definitions and extension blocks must resolve.
	checkDefinition := func(def *ast.Definition) error {
		for _, name := range def.Interfaces {
			if !resolvable(name) {
				return unknownTypeError(name, def.Position, candidates())
			}
		}
		for _, name := range def.Types {
			if !resolvable(name) {
				return unknownTypeError(name, def.Position, candidates())
			}
		}
		for _, fieldDef := range def.Fields {
			if err := checkName("field", fieldDef.Name, fieldDef.Position); err != nil {
				return err
			}
			node := fieldDef.Type
			for node.NamedType == "" && node.Elem != nil {
				node = node.Elem
			}
			if node.NamedType != "" && !resolvable(node.NamedType) {
				return unknownTypeError(node.NamedType, node.Position, candidates())
			}
			for _, argDef := range fieldDef.Arguments {
				argNode := argDef.Type
				for argNode.NamedType == "" && argNode.Elem != nil {
					argNode = argNode.Elem
				}
				if argNode.NamedType != "" && !resolvable(argNode.NamedType) {
					return unknownTypeError(argNode.NamedType, argNode.Position, candidates())
				}
			}
		}
		return nil
	}
	for _, def := range doc.Definitions {
		if def.BuiltIn {
			continue
		}
		if err := checkDefinition(def); err != nil {
			return err
		}
	}
	for _, ext := range doc.Extensions {
		if err := checkDefinition(ext); err != nil {
			return err
		}
	}
	for _, def := range doc.Directives {
		for _, argDef := range def.Arguments {
			node := argDef.Type
			for node.NamedType == "" && node.Elem != nil {
				node = node.Elem
			}
			if node.NamedType != "" && !resolvable(node.NamedType) {
				return unknownTypeError(node.NamedType, node.Position, candidates())
			}
		}
	}

	// Root operations named by schema definitions and extensions must be object types.
	checkOperationTypes := func(defs []*ast.SchemaDefinition) error {
		for _, schemaDef := range defs {
			for _, opDef := range schemaDef.OperationTypes {
				if !resolvable(opDef.Type) {
					return unknownTypeError(opDef.Type, opDef.Position, candidates())
				}
			}
		}
		return nil
	}
	if err := checkOperationTypes(doc.Schema); err != nil {
		return err
	}
	return checkOperationTypes(doc.SchemaExtension)
}
