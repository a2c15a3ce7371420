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

// InterfaceConfig provides specification to define an Interface type.
type InterfaceConfig struct {
	// Name of the defining Interface type
	Name string

	// Description for the Interface type
	Description string

	// Fields resolves the set of fields that needs to be provided when implementing this interface.
	Fields FieldsThunk

	// Interfaces resolves the interfaces that this interface itself implements.
	Interfaces InterfacesThunk
}

// Interface Type Definition
//
// When a field can return one of a heterogeneous set of types, an Interface type is used to
// describe what types are possible and what fields are in common across all types.
//
// Reference: https://spec.graphql.org/draft/#sec-Interfaces
type Interface struct {
	name        string
	description string
	fields      thunkCell[FieldList]
	interfaces  thunkCell[[]*Interface]
}

var (
	_ Type                = (*Interface)(nil)
	_ AbstractType        = (*Interface)(nil)
	_ TypeWithName        = (*Interface)(nil)
	_ TypeWithDescription = (*Interface)(nil)
)

// NewInterface defines an Interface type from an InterfaceConfig.
func NewInterface(config *InterfaceConfig) (*Interface, error) {
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Interface.")
	}

	iface := &Interface{
		name:        config.Name,
		description: config.Description,
	}
	iface.fields.fn = config.Fields
	iface.interfaces.fn = config.Interfaces
	return iface, nil
}

// MustNewInterface is a convenience function equivalent to NewInterface but panics on failure
// instead of returning an error.
func MustNewInterface(config *InterfaceConfig) *Interface {
	iface, err := NewInterface(config)
	if err != nil {
		panic(err)
	}
	return iface
}

// Name implements TypeWithName.
func (i *Interface) Name() string {
	return i.name
}

// Description implements TypeWithDescription.
func (i *Interface) Description() string {
	return i.description
}

// String implements fmt.Stringer.
func (i *Interface) String() string {
	return i.name
}

// Fields returns the set of fields that needs to be provided when implementing this interface.
func (i *Interface) Fields() FieldList {
	fields, err := i.fields.resolve()
	if err != nil {
		return nil
	}
	return fields
}

// Interfaces includes interfaces that this interface itself implements.
func (i *Interface) Interfaces() []*Interface {
	interfaces, err := i.interfaces.resolve()
	if err != nil {
		return nil
	}
	return interfaces
}

// Err forces resolution of the type's deferred member lists and returns the first resolution
// failure, if any.
func (i *Interface) Err() error {
	if _, err := i.fields.resolve(); err != nil {
		return err
	}
	_, err := i.interfaces.resolve()
	return err
}
