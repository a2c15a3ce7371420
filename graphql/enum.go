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
	"errors"
	"reflect"

	"github.com/vektah/gqlparser/v2/ast"
)

// EnumValueConfig provides definition for a value when defining an Enum type.
type EnumValueConfig struct {
	// Name of the enum value
	Name string

	// Description of the enum value
	Description string

	// Value is the internal value to be used when the enum value is read from input. If nil, the
	// name of the enum value is used.
	Value interface{}

	// Deprecation is non-nil when the value is tagged as deprecated.
	Deprecation *Deprecation
}

// EnumValue provides definition for a value in enum.
//
// Reference: https://spec.graphql.org/draft/#sec-Enums
type EnumValue struct {
	name        string
	description string
	value       interface{}
	deprecation *Deprecation
}

// NewEnumValue defines an EnumValue from an EnumValueConfig.
func NewEnumValue(config *EnumValueConfig) (*EnumValue, error) {
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for EnumValue.")
	}
	value := config.Value
	if value == nil {
		// Use name for internal value of the enum value.
		value = config.Name
	}
	return &EnumValue{
		name:        config.Name,
		description: config.Description,
		value:       value,
		deprecation: config.Deprecation,
	}, nil
}

// MustNewEnumValue is a convenience function equivalent to NewEnumValue but panics on failure
// instead of returning an error.
func MustNewEnumValue(config *EnumValueConfig) *EnumValue {
	value, err := NewEnumValue(config)
	if err != nil {
		panic(err)
	}
	return value
}

// Name of enum value.
func (value *EnumValue) Name() string {
	return value.name
}

// Description of the enum value
func (value *EnumValue) Description() string {
	return value.description
}

// Value returns the internal value to be used when the enum value is read from input.
func (value *EnumValue) Value() interface{} {
	return value.value
}

// IsDeprecated returns true if this value is deprecated.
func (value *EnumValue) IsDeprecated() bool {
	return value.deprecation.Defined()
}

// Deprecation is non-nil when the value is tagged as deprecated.
func (value *EnumValue) Deprecation() *Deprecation {
	return value.deprecation
}

// EnumValueList is an ordered list of EnumValue's.
type EnumValueList []*EnumValue

// ForName finds the enum value with given name or returns nil if there's no such one.
func (values EnumValueList) ForName(name string) *EnumValue {
	for _, value := range values {
		if value.name == name {
			return value
		}
	}
	return nil
}

// EnumConfig provides specification to define an Enum type.
type EnumConfig struct {
	// Name of the enum type
	Name string

	// Description for the enum type
	Description string

	// Values resolves the values defined in the enum. Use EnumValuesOf for a fixed list.
	Values EnumValuesThunk
}

// Enum Type Definition
//
// Some leaf values of requests and input values are Enums. GraphQL serializes Enum values as
// strings, however internally Enums can be represented by any kind of type, often integers.
//
// Reference: https://spec.graphql.org/draft/#sec-Enums
type Enum struct {
	name        string
	description string
	values      thunkCell[EnumValueList]
}

var (
	_ Type                = (*Enum)(nil)
	_ LeafType            = (*Enum)(nil)
	_ TypeWithName        = (*Enum)(nil)
	_ TypeWithDescription = (*Enum)(nil)
)

// NewEnum defines an Enum type from an EnumConfig.
func NewEnum(config *EnumConfig) (*Enum, error) {
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Enum.")
	}

	enum := &Enum{
		name:        config.Name,
		description: config.Description,
	}
	enum.values.fn = config.Values
	return enum, nil
}

// MustNewEnum is a convenience function equivalent to NewEnum but panics on failure instead of
// returning an error.
func MustNewEnum(config *EnumConfig) *Enum {
	enum, err := NewEnum(config)
	if err != nil {
		panic(err)
	}
	return enum
}

// Name implements TypeWithName.
func (e *Enum) Name() string {
	return e.name
}

// Description implements TypeWithDescription.
func (e *Enum) Description() string {
	return e.description
}

// String implements fmt.Stringer.
func (e *Enum) String() string {
	return e.name
}

// Values returns all enum values defined in this Enum type.
func (e *Enum) Values() EnumValueList {
	values, err := e.values.resolve()
	if err != nil {
		return nil
	}
	return values
}

// Value finds the enum value with given name or returns nil if there's no such one.
func (e *Enum) Value(name string) *EnumValue {
	return e.Values().ForName(name)
}

// Err forces resolution of the type's deferred value list and returns the resolution failure, if
// any.
func (e *Enum) Err() error {
	_, err := e.values.resolve()
	return err
}

// CoerceResultValue implements LeafType.
func (e *Enum) CoerceResultValue(value interface{}) (interface{}, error) {
	for _, enumValue := range e.Values() {
		if enumValue.value == value {
			return enumValue.name, nil
		}
	}
	return nil, NewCoercionError("Enum %s cannot represent value: %s", e.name, Inspect(value))
}

// These errors are returned when coercion failed in CoerceVariableValue and CoerceLiteralValue.
// These are ordinary errors instead of CoercionError to let the caller present a default message
// to the user instead of these internal details.
var (
	errNilEnumValue      = errors.New("enum value is not provided")
	errInvalidEnumValue  = errors.New("invalid enum value")
	errEnumValueNotFound = errors.New("not a value for the type")
)

// CoerceVariableValue coerces a value read from an input variable that specifies a name of enum
// value and returns the internal value that represents the enum.
func (e *Enum) CoerceVariableValue(value interface{}) (interface{}, error) {
	var enumValue *EnumValue
	switch name := value.(type) {
	case string:
		enumValue = e.Value(name)

	case *string:
		if name == nil {
			return nil, errNilEnumValue
		}
		enumValue = e.Value(*name)

	default:
		// Check whether the given value is string-like or pointer to string-like via reflection.
		nameValue := reflect.ValueOf(value)
		if nameValue.Kind() == reflect.Ptr {
			if nameValue.IsNil() {
				return nil, errNilEnumValue
			}
			nameValue = nameValue.Elem()
		}

		if nameValue.Kind() != reflect.String {
			return nil, errInvalidEnumValue
		}

		enumValue = e.Value(nameValue.String())
	}

	if enumValue != nil {
		return enumValue.Value(), nil
	}

	return nil, errEnumValueNotFound
}

// CoerceLiteralValue is similar to CoerceVariableValue but coerces an enum literal in a parsed
// document.
func (e *Enum) CoerceLiteralValue(value *ast.Value) (interface{}, error) {
	if value != nil && value.Kind == ast.EnumValue {
		if enumValue := e.Value(value.Raw); enumValue != nil {
			return enumValue.Value(), nil
		}
		return nil, errEnumValueNotFound
	}
	return nil, errInvalidEnumValue
}
