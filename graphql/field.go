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

// Member lists in this file are ordered slices, not maps: declaration order must be preserved so
// tools that re-emit a schema produce deterministic output.

// FieldConfig provides definition of a field when defining an object or interface type.
type FieldConfig struct {
	// Name of the defining field
	Name string

	// Description of the defining field
	Description string

	// Type of value yielded by the field
	Type Type

	// Args lists the arguments taken by the field.
	Args []ArgumentConfig

	// Deprecation is non-nil when the field is tagged as deprecated.
	Deprecation *Deprecation
}

// Field represents a field in an object or an interface. It yields a value of a specific type.
//
// Reference: https://spec.graphql.org/draft/#sec-Objects
type Field struct {
	name        string
	description string
	ttype       Type
	args        ArgumentList
	deprecation *Deprecation
}

// NewField defines a Field from a FieldConfig.
func NewField(config *FieldConfig) (*Field, error) {
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Field.")
	}
	if config.Type == nil {
		return nil, NewError("Must provide type for Field " + config.Name + ".")
	}

	args, err := buildArguments(config.Args)
	if err != nil {
		return nil, err
	}

	return &Field{
		name:        config.Name,
		description: config.Description,
		ttype:       config.Type,
		args:        args,
		deprecation: config.Deprecation,
	}, nil
}

// MustNewField is a convenience function equivalent to NewField but panics on failure instead of
// returning an error.
func MustNewField(config *FieldConfig) *Field {
	field, err := NewField(config)
	if err != nil {
		panic(err)
	}
	return field
}

// Name of the field
func (f *Field) Name() string {
	return f.name
}

// Description of the field
func (f *Field) Description() string {
	return f.description
}

// Type of value yielded by the field
func (f *Field) Type() Type {
	return f.ttype
}

// Args indicates the arguments taken by the field.
func (f *Field) Args() ArgumentList {
	return f.args
}

// Deprecation is non-nil when the field is tagged as deprecated.
func (f *Field) Deprecation() *Deprecation {
	return f.deprecation
}

// FieldList is an ordered list of Field's.
type FieldList []*Field

// ForName finds the field with given name or returns nil if there's no such one.
func (fields FieldList) ForName(name string) *Field {
	for _, field := range fields {
		if field.name == name {
			return field
		}
	}
	return nil
}

//===----------------------------------------------------------------------------------------====//
// Argument
//===----------------------------------------------------------------------------------------====//

// ArgumentConfig provides definition of an argument when defining a field or a directive.
type ArgumentConfig struct {
	// Name of the defining argument
	Name string

	// Description of the defining argument
	Description string

	// Type of the value that can be given to the argument
	Type Type

	// Default specifies the value to be assigned to the argument when no input is provided. Leave
	// nil when the argument has no default.
	Default *DefaultValue

	// Deprecation is non-nil when the argument is tagged as deprecated.
	Deprecation *Deprecation
}

// Argument is an argument taken by a field or a directive.
//
/// Reference: https://spec.graphql.org/draft/#sec-Field-Arguments
type Argument struct {
	name         string
	description  string
	ttype        Type
	defaultValue *DefaultValue
	deprecation  *Deprecation
}

// NewArgument defines an Argument from an ArgumentConfig.
func NewArgument(config *ArgumentConfig) (*Argument, error) {
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Argument.")
	}
	if config.Type == nil {
		return nil, NewError("Must provide type for Argument " + config.Name + ".")
	}
	return &Argument{
		name:         config.Name,
		description:  config.Description,
		ttype:        config.Type,
		defaultValue: config.Default,
		deprecation:  config.Deprecation,
	}, nil
}

func buildArguments(configs []ArgumentConfig) (ArgumentList, error) {
	if len(configs) == 0 {
		return nil, nil
	}
	args := make(ArgumentList, len(configs))
	for i := range configs {
		arg, err := NewArgument(&configs[i])
		if err != nil {
			return nil, err
		}
		args[i] = arg
	}
	return args, nil
}

// Name of the argument
func (arg *Argument) Name() string {
	return arg.name
}

// Description of the argument
func (arg *Argument) Description() string {
	return arg.description
}

// Type of the value that can be given to the argument
func (arg *Argument) Type() Type {
	return arg.ttype
}

// HasDefaultValue returns true if the argument has a default value.
func (arg *Argument) HasDefaultValue() bool {
	return arg.defaultValue != nil
}

// Default returns the argument's default-value record, or nil if the argument has no default.
func (arg *Argument) Default() *DefaultValue {
	return arg.defaultValue
}

// Deprecation is non-nil when the argument is tagged as deprecated.
func (arg *Argument) Deprecation() *Deprecation {
	return arg.deprecation
}

// ArgumentList is an ordered list of Argument's.
type ArgumentList []*Argument

// ForName finds the argument with given name or returns nil if there's no such one.
func (args ArgumentList) ForName(name string) *Argument {
	for _, arg := range args {
		if arg.name == name {
			return arg
		}
	}
	return nil
}

//===----------------------------------------------------------------------------------------====//
// InputField
//===----------------------------------------------------------------------------------------====//

// InputFieldConfig provides definition of a field when defining an input object type.
type InputFieldConfig struct {
	// Name of the defining field
	Name string

	// Description of the defining field
	Description string

	// Type of the value that can be given to the field
	Type Type

	// Default specifies the value to be assigned to the field when no input is provided. Leave nil
	// when the field has no default.
	Default *DefaultValue

	// Deprecation is non-nil when the field is tagged as deprecated.
	Deprecation *Deprecation
}

// InputField defines a field in an InputObject. It is much simpler than Field because it doesn't
// resolve value nor can have arguments.
type InputField struct {
	name         string
	description  string
	ttype        Type
	defaultValue *DefaultValue
	deprecation  *Deprecation
}

// NewInputField defines an InputField from an InputFieldConfig.
func NewInputField(config *InputFieldConfig) (*InputField, error) {
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for InputField.")
	}
	if config.Type == nil {
		return nil, NewError("Must provide type for InputField " + config.Name + ".")
	}
	return &InputField{
		name:         config.Name,
		description:  config.Description,
		ttype:        config.Type,
		defaultValue: config.Default,
		deprecation:  config.Deprecation,
	}, nil
}

// MustNewInputField is a convenience function equivalent to NewInputField but panics on failure
// instead of returning an error.
func MustNewInputField(config *InputFieldConfig) *InputField {
	field, err := NewInputField(config)
	if err != nil {
		panic(err)
	}
	return field
}

// Name of the field
func (f *InputField) Name() string {
	return f.name
}

// Description of the field
func (f *InputField) Description() string {
	return f.description
}

// Type of the value that can be given to the field
func (f *InputField) Type() Type {
	return f.ttype
}

// HasDefaultValue returns true if the input field has a default value.
func (f *InputField) HasDefaultValue() bool {
	return f.defaultValue != nil
}

// Default returns the field's default-value record, or nil if the field has no default.
func (f *InputField) Default() *DefaultValue {
	return f.defaultValue
}

// Deprecation is non-nil when the field is tagged as deprecated.
func (f *InputField) Deprecation() *Deprecation {
	return f.deprecation
}

// InputFieldList is an ordered list of InputField's.
type InputFieldList []*InputField

// ForName finds the field with given name or returns nil if there's no such one.
func (fields InputFieldList) ForName(name string) *InputField {
	for _, field := range fields {
		if field.name == name {
			return field
		}
	}
	return nil
}
