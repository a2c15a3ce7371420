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

// DirectiveLocation specifies a valid location for a directive to be used.
type DirectiveLocation string

// Reference: https://spec.graphql.org/draft/#DirectiveLocations
const (
	// Executable directive locations
	DirectiveLocationQuery              DirectiveLocation = "QUERY"
	DirectiveLocationMutation           DirectiveLocation = "MUTATION"
	DirectiveLocationSubscription       DirectiveLocation = "SUBSCRIPTION"
	DirectiveLocationField              DirectiveLocation = "FIELD"
	DirectiveLocationFragmentDefinition DirectiveLocation = "FRAGMENT_DEFINITION"
	DirectiveLocationFragmentSpread     DirectiveLocation = "FRAGMENT_SPREAD"
	DirectiveLocationInlineFragment     DirectiveLocation = "INLINE_FRAGMENT"
	DirectiveLocationVariableDefinition DirectiveLocation = "VARIABLE_DEFINITION"

	// Type system directive locations
	DirectiveLocationSchema               DirectiveLocation = "SCHEMA"
	DirectiveLocationScalar               DirectiveLocation = "SCALAR"
	DirectiveLocationObject               DirectiveLocation = "OBJECT"
	DirectiveLocationFieldDefinition      DirectiveLocation = "FIELD_DEFINITION"
	DirectiveLocationArgumentDefinition   DirectiveLocation = "ARGUMENT_DEFINITION"
	DirectiveLocationInterface            DirectiveLocation = "INTERFACE"
	DirectiveLocationUnion                DirectiveLocation = "UNION"
	DirectiveLocationEnum                 DirectiveLocation = "ENUM"
	DirectiveLocationEnumValue            DirectiveLocation = "ENUM_VALUE"
	DirectiveLocationInputObject          DirectiveLocation = "INPUT_OBJECT"
	DirectiveLocationInputFieldDefinition DirectiveLocation = "INPUT_FIELD_DEFINITION"
)

// IsExecutableDirectiveLocation returns true if the location names a place inside an executable
// document.
func IsExecutableDirectiveLocation(location DirectiveLocation) bool {
	switch location {
	case DirectiveLocationQuery,
		DirectiveLocationMutation,
		DirectiveLocationSubscription,
		DirectiveLocationField,
		DirectiveLocationFragmentDefinition,
		DirectiveLocationFragmentSpread,
		DirectiveLocationInlineFragment,
		DirectiveLocationVariableDefinition:
		return true
	}
	return false
}

// IsTypeSystemDirectiveLocation returns true if the location names a place inside a type system
// document.
func IsTypeSystemDirectiveLocation(location DirectiveLocation) bool {
	switch location {
	case DirectiveLocationSchema,
		DirectiveLocationScalar,
		DirectiveLocationObject,
		DirectiveLocationFieldDefinition,
		DirectiveLocationArgumentDefinition,
		DirectiveLocationInterface,
		DirectiveLocationUnion,
		DirectiveLocationEnum,
		DirectiveLocationEnumValue,
		DirectiveLocationInputObject,
		DirectiveLocationInputFieldDefinition:
		return true
	}
	return false
}

// DirectiveConfig provides definition for creating a Directive.
type DirectiveConfig struct {
	// Name of the defining Directive
	Name string

	// Description for the Directive
	Description string

	// Locations in the schema where the defining directive can appear
	Locations []DirectiveLocation

	// Args to be provided when using the directive
	Args []ArgumentConfig

	// IsRepeatable indicates that the directive may appear more than once at a single location.
	IsRepeatable bool
}

// Directive is used by the GraphQL runtime as a way of modifying validator, execution or client
// tool behavior.
//
// Reference: https://spec.graphql.org/draft/#sec-Type-System.Directives
type Directive struct {
	name         string
	description  string
	locations    []DirectiveLocation
	args         ArgumentList
	isRepeatable bool
	// notation is the cached value returned from String().
	notation string
}

// NewDirective creates a Directive from a DirectiveConfig.
func NewDirective(config *DirectiveConfig) (*Directive, error) {
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Directive.")
	}

	args, err := buildArguments(config.Args)
	if err != nil {
		return nil, err
	}

	locations := make([]DirectiveLocation, len(config.Locations))
	copy(locations, config.Locations)

	return &Directive{
		name:         config.Name,
		description:  config.Description,
		locations:    locations,
		args:         args,
		isRepeatable: config.IsRepeatable,
		notation:     "@" + config.Name,
	}, nil
}

// MustNewDirective is a convenience function equivalent to NewDirective but panics on failure
// instead of returning an error.
func MustNewDirective(config *DirectiveConfig) *Directive {
	directive, err := NewDirective(config)
	if err != nil {
		panic(err)
	}
	return directive
}

// Name of the directive
func (d *Directive) Name() string {
	return d.name
}

// Description provides documentation for the directive.
func (d *Directive) Description() string {
	return d.description
}

// Locations specifies the places where the directive must only be used.
func (d *Directive) Locations() []DirectiveLocation {
	return d.locations
}

// Args indicates the arguments taken by the directive.
func (d *Directive) Args() ArgumentList {
	return d.args
}

// IsRepeatable reports whether the directive may appear multiple times at one location.
func (d *Directive) IsRepeatable() bool {
	return d.isRepeatable
}

// String implements fmt.Stringer.
func (d *Directive) String() string {
	return d.notation
}

// DirectiveList is an ordered collection of directives.
type DirectiveList []*Directive

// ForName finds the directive with given name or returns nil if there's no such one.
func (directives DirectiveList) ForName(name string) *Directive {
	for _, directive := range directives {
		if directive.name == name {
			return directive
		}
	}
	return nil
}
