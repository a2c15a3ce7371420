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

// ObjectConfig provides specification to define an Object type.
type ObjectConfig struct {
	// Name of the defining Object type
	Name string

	// Description for the Object type
	Description string

	// Fields resolves the fields in the type. Use FieldsOf for a fixed list.
	Fields FieldsThunk

	// Interfaces resolves the interfaces implemented by the type.
	Interfaces InterfacesThunk
}

// Object Type Definition
//
// GraphQL queries are hierarchical and composed, describing a tree of information. While Scalar
// types describe the leaf values of these hierarchical queries, Objects describe the intermediate
// levels.
//
// Reference: https://spec.graphql.org/draft/#sec-Objects
type Object struct {
	name        string
	description string
	fields      thunkCell[FieldList]
	interfaces  thunkCell[[]*Interface]
}

var (
	_ Type                = (*Object)(nil)
	_ TypeWithName        = (*Object)(nil)
	_ TypeWithDescription = (*Object)(nil)
)

// NewObject defines an Object type from an ObjectConfig.
func NewObject(config *ObjectConfig) (*Object, error) {
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Object.")
	}

	object := &Object{
		name:        config.Name,
		description: config.Description,
	}
	object.fields.fn = config.Fields
	object.interfaces.fn = config.Interfaces
	return object, nil
}

// MustNewObject is a convenience function equivalent to NewObject but panics on failure instead of
// returning an error.
func MustNewObject(config *ObjectConfig) *Object {
	object, err := NewObject(config)
	if err != nil {
		panic(err)
	}
	return object
}

// Name implements TypeWithName.
func (o *Object) Name() string {
	return o.name
}

// Description implements TypeWithDescription.
func (o *Object) Description() string {
	return o.description
}

// String implements fmt.Stringer.
func (o *Object) String() string {
	return o.name
}

// Fields returns the fields in the object. The first access resolves the deferred field list; on
// resolution failure it returns nil and the failure is reported by Err.
func (o *Object) Fields() FieldList {
	fields, err := o.fields.resolve()
	if err != nil {
		return nil
	}
	return fields
}

// Interfaces includes interfaces that are implemented by the Object type.
func (o *Object) Interfaces() []*Interface {
	interfaces, err := o.interfaces.resolve()
	if err != nil {
		return nil
	}
	return interfaces
}

// Err forces resolution of the type's deferred member lists and returns the first resolution
// failure, if any. A schema built in checked mode never yields a type whose Err is non-nil.
func (o *Object) Err() error {
	if _, err := o.fields.resolve(); err != nil {
		return err
	}
	_, err := o.interfaces.resolve()
	return err
}
