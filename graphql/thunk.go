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

import "sync"

// Thunks defer resolution of a type's member lists until first access. This is the mechanism that
// breaks construction-order cycles: two mutually referencing types can both be registered before
// either's internals are resolved.

// FieldsThunk resolves the field list of an Object or Interface type.
type FieldsThunk func() (FieldList, error)

// InterfacesThunk resolves the interfaces implemented by an Object or Interface type.
type InterfacesThunk func() ([]*Interface, error)

// MembersThunk resolves the member types of a Union type.
type MembersThunk func() ([]*Object, error)

// InputFieldsThunk resolves the field list of an InputObject type.
type InputFieldsThunk func() (InputFieldList, error)

// EnumValuesThunk resolves the values of an Enum type.
type EnumValuesThunk func() (EnumValueList, error)

// FieldsOf adapts a fixed field list into a FieldsThunk.
func FieldsOf(fields ...*Field) FieldsThunk {
	return func() (FieldList, error) { return fields, nil }
}

// InterfacesOf adapts a fixed interface list into an InterfacesThunk.
func InterfacesOf(interfaces ...*Interface) InterfacesThunk {
	return func() ([]*Interface, error) { return interfaces, nil }
}

// MembersOf adapts a fixed member list into a MembersThunk.
func MembersOf(members ...*Object) MembersThunk {
	return func() ([]*Object, error) { return members, nil }
}

// InputFieldsOf adapts a fixed input field list into an InputFieldsThunk.
func InputFieldsOf(fields ...*InputField) InputFieldsThunk {
	return func() (InputFieldList, error) { return fields, nil }
}

// EnumValuesOf adapts a fixed value list into an EnumValuesThunk.
func EnumValuesOf(values ...*EnumValue) EnumValuesThunk {
	return func() (EnumValueList, error) { return values, nil }
}

// thunkCell memoizes the result of a deferred resolution. The sync.Once guarantees a single
// evaluation even when two goroutines race on the first access, so every reader observes one
// consistent object graph.
type thunkCell[T any] struct {
	once  sync.Once
	fn    func() (T, error)
	value T
	err   error
}

func (c *thunkCell[T]) resolve() (T, error) {
	c.once.Do(func() {
		if c.fn != nil {
			c.value, c.err = c.fn()
			c.fn = nil
		}
	})
	return c.value, c.err
}
