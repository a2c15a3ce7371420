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

// This file defines the type definitions backing schema introspection. The set is fixed and
// process-wide: every schema includes these types, name resolution treats them as always present,
// and schema extension passes them through by identity.
//
// Reference: https://spec.graphql.org/draft/#sec-Introspection

var (
	_schema            *Object
	_type              *Object
	_field             *Object
	_inputValue        *Object
	_enumValue         *Object
	_directive         *Object
	_typeKind          *Enum
	_directiveLocation *Enum

	introspectionTypeMap map[string]Type
)

// deferredFields builds a FieldsThunk that materializes its field configs lazily. The
// introspection types reference each other in cycles; the configs must not be evaluated until
// every definition in this file has been initialized.
func deferredFields(configs func() []FieldConfig) FieldsThunk {
	return func() (FieldList, error) {
		configList := configs()
		fields := make(FieldList, len(configList))
		for i := range configList {
			field, err := NewField(&configList[i])
			if err != nil {
				return nil, err
			}
			fields[i] = field
		}
		return fields, nil
	}
}

// includeDeprecatedArg is the argument taken by every introspection field that enumerates
// possibly-deprecated elements.
func includeDeprecatedArg() ArgumentConfig {
	return ArgumentConfig{
		Name:    "includeDeprecated",
		Type:    Boolean(),
		Default: NewDefaultValue(false),
	}
}

func init() {
	_typeKind = MustNewEnum(&EnumConfig{
		Name:        "__TypeKind",
		Description: "An enum describing what kind of type a given `__Type` is.",
		Values: func() (EnumValueList, error) {
			configs := []EnumValueConfig{
				{Name: "SCALAR", Description: "Indicates this type is a scalar."},
				{Name: "OBJECT", Description: "Indicates this type is an object. `fields` and `interfaces` are valid fields."},
				{Name: "INTERFACE", Description: "Indicates this type is an interface. `fields`, `interfaces`, and `possibleTypes` are valid fields."},
				{Name: "UNION", Description: "Indicates this type is a union. `possibleTypes` is a valid field."},
				{Name: "ENUM", Description: "Indicates this type is an enum. `enumValues` is a valid field."},
				{Name: "INPUT_OBJECT", Description: "Indicates this type is an input object. `inputFields` is a valid field."},
				{Name: "LIST", Description: "Indicates this type is a list. `ofType` is a valid field."},
				{Name: "NON_NULL", Description: "Indicates this type is a non-null. `ofType` is a valid field."},
			}
			values := make(EnumValueList, len(configs))
			for i := range configs {
				value, err := NewEnumValue(&configs[i])
				if err != nil {
					return nil, err
				}
				values[i] = value
			}
			return values, nil
		},
	})

	_directiveLocation = MustNewEnum(&EnumConfig{
		Name: "__DirectiveLocation",
		Description: "A Directive can be adjacent to many parts of the GraphQL language, a " +
			"__DirectiveLocation describes one such possible adjacencies.",
		Values: func() (EnumValueList, error) {
			locations := []struct {
				location    DirectiveLocation
				description string
			}{
				{DirectiveLocationQuery, "Location adjacent to a query operation."},
				{DirectiveLocationMutation, "Location adjacent to a mutation operation."},
				{DirectiveLocationSubscription, "Location adjacent to a subscription operation."},
				{DirectiveLocationField, "Location adjacent to a field."},
				{DirectiveLocationFragmentDefinition, "Location adjacent to a fragment definition."},
				{DirectiveLocationFragmentSpread, "Location adjacent to a fragment spread."},
				{DirectiveLocationInlineFragment, "Location adjacent to an inline fragment."},
				{DirectiveLocationVariableDefinition, "Location adjacent to a variable definition."},
				{DirectiveLocationSchema, "Location adjacent to a schema definition."},
				{DirectiveLocationScalar, "Location adjacent to a scalar definition."},
				{DirectiveLocationObject, "Location adjacent to an object type definition."},
				{DirectiveLocationFieldDefinition, "Location adjacent to a field definition."},
				{DirectiveLocationArgumentDefinition, "Location adjacent to an argument definition."},
				{DirectiveLocationInterface, "Location adjacent to an interface definition."},
				{DirectiveLocationUnion, "Location adjacent to a union definition."},
				{DirectiveLocationEnum, "Location adjacent to an enum definition."},
				{DirectiveLocationEnumValue, "Location adjacent to an enum value definition."},
				{DirectiveLocationInputObject, "Location adjacent to an input object type definition."},
				{DirectiveLocationInputFieldDefinition, "Location adjacent to an input object field definition."},
			}
			values := make(EnumValueList, len(locations))
			for i, l := range locations {
				value, err := NewEnumValue(&EnumValueConfig{
					Name:        string(l.location),
					Description: l.description,
					Value:       l.location,
				})
				if err != nil {
					return nil, err
				}
				values[i] = value
			}
			return values, nil
		},
	})

	_type = MustNewObject(&ObjectConfig{
		Name: "__Type",
		Description: "The fundamental unit of any GraphQL Schema is the type. There are many " +
			"kinds of types in GraphQL as represented by the `__TypeKind` enum.\n\nDepending on " +
			"the kind of a type, certain fields describe information about that type. Scalar " +
			"types provide no information beyond a name and description, while Enum types " +
			"provide their values. Object and Interface types provide the fields they describe. " +
			"Abstract types, Union and Interface, provide the Object types possible at runtime. " +
			"List and NonNull types compose other types.",
		Fields: deferredFields(func() []FieldConfig {
			return []FieldConfig{
				{Name: "kind", Type: MustNewNonNullOfType(_typeKind)},
				{Name: "name", Type: String()},
				{Name: "description", Type: String()},
				{
					Name: "fields",
					Type: MustNewListOfType(MustNewNonNullOfType(_field)),
					Args: []ArgumentConfig{includeDeprecatedArg()},
				},
				{Name: "interfaces", Type: MustNewListOfType(MustNewNonNullOfType(_type))},
				{Name: "possibleTypes", Type: MustNewListOfType(MustNewNonNullOfType(_type))},
				{
					Name: "enumValues",
					Type: MustNewListOfType(MustNewNonNullOfType(_enumValue)),
					Args: []ArgumentConfig{includeDeprecatedArg()},
				},
				{
					Name: "inputFields",
					Type: MustNewListOfType(MustNewNonNullOfType(_inputValue)),
					Args: []ArgumentConfig{includeDeprecatedArg()},
				},
				{Name: "ofType", Type: _type},
				{Name: "isOneOf", Type: Boolean()},
			}
		}),
	})

	_field = MustNewObject(&ObjectConfig{
		Name: "__Field",
		Description: "Object and Interface types are described by a list of Fields, each of " +
			"which has a name, potentially a list of arguments, and a return type.",
		Fields: deferredFields(func() []FieldConfig {
			return []FieldConfig{
				{Name: "name", Type: MustNewNonNullOfType(String())},
				{Name: "description", Type: String()},
				{
					Name: "args",
					Type: MustNewNonNullOfType(MustNewListOfType(MustNewNonNullOfType(_inputValue))),
					Args: []ArgumentConfig{includeDeprecatedArg()},
				},
				{Name: "type", Type: MustNewNonNullOfType(_type)},
				{Name: "isDeprecated", Type: MustNewNonNullOfType(Boolean())},
				{Name: "deprecationReason", Type: String()},
			}
		}),
	})

	_inputValue = MustNewObject(&ObjectConfig{
		Name: "__InputValue",
		Description: "Arguments provided to Fields or Directives and the input fields of an " +
			"InputObject are represented as Input Values which describe their type and " +
			"optionally a default value.",
		Fields: deferredFields(func() []FieldConfig {
			return []FieldConfig{
				{Name: "name", Type: MustNewNonNullOfType(String())},
				{Name: "description", Type: String()},
				{Name: "type", Type: MustNewNonNullOfType(_type)},
				{
					Name: "defaultValue",
					Type: String(),
					Description: "A GraphQL-formatted string representing the default value for this " +
						"input value.",
				},
				{Name: "isDeprecated", Type: MustNewNonNullOfType(Boolean())},
				{Name: "deprecationReason", Type: String()},
			}
		}),
	})

	_enumValue = MustNewObject(&ObjectConfig{
		Name: "__EnumValue",
		Description: "One possible value for a given Enum. Enum values are unique values, not " +
			"a placeholder for a string or numeric value. However an Enum value is returned in " +
			"a JSON response as a string.",
		Fields: deferredFields(func() []FieldConfig {
			return []FieldConfig{
				{Name: "name", Type: MustNewNonNullOfType(String())},
				{Name: "description", Type: String()},
				{Name: "isDeprecated", Type: MustNewNonNullOfType(Boolean())},
				{Name: "deprecationReason", Type: String()},
			}
		}),
	})

	_directive = MustNewObject(&ObjectConfig{
		Name: "__Directive",
		Description: "A Directive provides a way to describe alternate runtime execution and " +
			"type validation behavior in a GraphQL document.\n\nIn some cases, you need to " +
			"provide options to alter GraphQL's execution behavior in ways field arguments will " +
			"not suffice, such as conditionally including or skipping a field. Directives " +
			"provide this by describing additional information to the executor.",
		Fields: deferredFields(func() []FieldConfig {
			return []FieldConfig{
				{Name: "name", Type: MustNewNonNullOfType(String())},
				{Name: "description", Type: String()},
				{Name: "isRepeatable", Type: MustNewNonNullOfType(Boolean())},
				{
					Name: "locations",
					Type: MustNewNonNullOfType(MustNewListOfType(MustNewNonNullOfType(_directiveLocation))),
				},
				{
					Name: "args",
					Type: MustNewNonNullOfType(MustNewListOfType(MustNewNonNullOfType(_inputValue))),
					Args: []ArgumentConfig{includeDeprecatedArg()},
				},
			}
		}),
	})

	_schema = MustNewObject(&ObjectConfig{
		Name: "__Schema",
		Description: "A GraphQL Schema defines the capabilities of a GraphQL server. It exposes " +
			"all available types and directives on the server, as well as the entry points for " +
			"query, mutation, and subscription operations.",
		Fields: deferredFields(func() []FieldConfig {
			return []FieldConfig{
				{Name: "description", Type: String()},
				{
					Name:        "types",
					Description: "A list of all types supported by this server.",
					Type:        MustNewNonNullOfType(MustNewListOfType(MustNewNonNullOfType(_type))),
				},
				{
					Name:        "queryType",
					Description: "The type that query operations will be rooted at.",
					Type:        MustNewNonNullOfType(_type),
				},
				{
					Name: "mutationType",
					Description: "If this server supports mutation, the type that mutation operations " +
						"will be rooted at.",
					Type: _type,
				},
				{
					Name: "subscriptionType",
					Description: "If this server supports subscription, the type that subscription " +
						"operations will be rooted at.",
					Type: _type,
				},
				{
					Name:        "directives",
					Description: "A list of all directives supported by this server.",
					Type:        MustNewNonNullOfType(MustNewListOfType(MustNewNonNullOfType(_directive))),
				},
			}
		}),
	})

	introspectionTypeMap = map[string]Type{}
	for _, t := range []Type{
		_schema, _type, _field, _inputValue, _enumValue, _directive, _typeKind, _directiveLocation,
	} {
		introspectionTypeMap[t.(TypeWithName).Name()] = t
	}
}

// SchemaType returns the type definition for __Schema.
func SchemaType() *Object {
	return _schema
}

// TypeType returns the type definition for __Type.
func TypeType() *Object {
	return _type
}

// FieldType returns the type definition for __Field.
func FieldType() *Object {
	return _field
}

// InputValueType returns the type definition for __InputValue.
func InputValueType() *Object {
	return _inputValue
}

// EnumValueType returns the type definition for __EnumValue.
func EnumValueType() *Object {
	return _enumValue
}

// DirectiveType returns the type definition for __Directive.
func DirectiveType() *Object {
	return _directive
}

// TypeKindEnum returns the type definition for __TypeKind.
func TypeKindEnum() *Enum {
	return _typeKind
}

// DirectiveLocationEnumType returns the type definition for __DirectiveLocation.
func DirectiveLocationEnumType() *Enum {
	return _directiveLocation
}

// IntrospectionTypes returns the types that every schema includes to support introspection.
func IntrospectionTypes() []Type {
	return []Type{
		_schema, _type, _field, _inputValue, _enumValue, _directive, _typeKind, _directiveLocation,
	}
}

// IntrospectionType finds the introspection type with the given name. It returns nil if the name
// doesn't designate an introspection type.
func IntrospectionType(name string) Type {
	return introspectionTypeMap[name]
}

// IsIntrospectionType returns true if the given type is one of the types backing introspection.
func IsIntrospectionType(t Type) bool {
	namedType, ok := t.(TypeWithName)
	return ok && introspectionTypeMap[namedType.Name()] == t
}
