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

// UnionConfig provides specification to define a Union type.
type UnionConfig struct {
	// Name of the defining Union type
	Name string

	// Description for the Union type
	Description string

	// Members resolves the member types of the union. Use MembersOf for a fixed list.
	Members MembersThunk
}

// Union Type Definition
//
// When a field can return one of a heterogeneous set of types, a Union type is used to describe
// what types are possible.
//
// Reference: https://spec.graphql.org/draft/#sec-Unions
type Union struct {
	name        string
	description string
	members     thunkCell[[]*Object]
}

var (
	_ Type                = (*Union)(nil)
	_ AbstractType        = (*Union)(nil)
	_ TypeWithName        = (*Union)(nil)
	_ TypeWithDescription = (*Union)(nil)
)

// NewUnion defines a Union type from a UnionConfig.
func NewUnion(config *UnionConfig) (*Union, error) {
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Union.")
	}

	union := &Union{
		name:        config.Name,
		description: config.Description,
	}
	union.members.fn = config.Members
	return union, nil
}

// MustNewUnion is a convenience function equivalent to NewUnion but panics on failure instead of
// returning an error.
func MustNewUnion(config *UnionConfig) *Union {
	union, err := NewUnion(config)
	if err != nil {
		panic(err)
	}
	return union
}

// Name implements TypeWithName.
func (u *Union) Name() string {
	return u.name
}

// Description implements TypeWithDescription.
func (u *Union) Description() string {
	return u.description
}

// String implements fmt.Stringer.
func (u *Union) String() string {
	return u.name
}

// PossibleTypes returns the members of the union type.
func (u *Union) PossibleTypes() []*Object {
	members, err := u.members.resolve()
	if err != nil {
		return nil
	}
	return members
}

// Err forces resolution of the type's deferred member list and returns the resolution failure, if
// any.
func (u *Union) Err() error {
	_, err := u.members.resolve()
	return err
}
