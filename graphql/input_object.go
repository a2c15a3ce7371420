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

// InputObjectConfig provides specification to define an InputObject type.
type InputObjectConfig struct {
	// Name of the defining InputObject type
	Name string

	// Description for the InputObject type
	Description string

	// Fields resolves the fields in the type. Use InputFieldsOf for a fixed list.
	Fields InputFieldsThunk

	// OneOf constrains input values for the type to contain exactly one non-null field.
	OneOf bool
}

// InputObject Type Definition
//
// An input object defines a structured collection of fields which may be supplied to a field
// argument. It is essentially an Object type but with some constraints on the fields so it can be
// used as an input argument.
//
// Reference: https://spec.graphql.org/draft/#sec-Input-Objects
type InputObject struct {
	name        string
	description string
	fields      thunkCell[InputFieldList]
	oneOf       bool
}

var (
	_ Type                = (*InputObject)(nil)
	_ TypeWithName        = (*InputObject)(nil)
	_ TypeWithDescription = (*InputObject)(nil)
)

// NewInputObject defines an InputObject type from an InputObjectConfig.
func NewInputObject(config *InputObjectConfig) (*InputObject, error) {
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for InputObject.")
	}

	inputObject := &InputObject{
		name:        config.Name,
		description: config.Description,
		oneOf:       config.OneOf,
	}
	inputObject.fields.fn = config.Fields
	return inputObject, nil
}

// MustNewInputObject is a convenience function equivalent to NewInputObject but panics on failure
// instead of returning an error.
func MustNewInputObject(config *InputObjectConfig) *InputObject {
	inputObject, err := NewInputObject(config)
	if err != nil {
		panic(err)
	}
	return inputObject
}

// Name implements TypeWithName.
func (o *InputObject) Name() string {
	return o.name
}

// Description implements TypeWithDescription.
func (o *InputObject) Description() string {
	return o.description
}

// String implements fmt.Stringer.
func (o *InputObject) String() string {
	return o.name
}

// Fields returns the fields in the input object.
func (o *InputObject) Fields() InputFieldList {
	fields, err := o.fields.resolve()
	if err != nil {
		return nil
	}
	return fields
}

// OneOf returns true if input values for the type must contain exactly one non-null field.
//
// Reference: https://spec.graphql.org/draft/#sec--oneOf
func (o *InputObject) OneOf() bool {
	return o.oneOf
}

// Err forces resolution of the type's deferred field list and returns the resolution failure, if
// any.
func (o *InputObject) Err() error {
	_, err := o.fields.resolve()
	return err
}
