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

// NonNull Type Modifier
//
// A non-null is a wrapping type which points to another type. Non-null types enforce that their
// values are never null. A NonNull must never directly wrap another NonNull.
//
// Reference: https://spec.graphql.org/draft/#sec-Non-Null
type NonNull struct {
	innerType Type
}

var _ WrappingType = (*NonNull)(nil)

// NewNonNullOfType creates a NonNull wrapping the given type.
func NewNonNullOfType(innerType Type) (*NonNull, error) {
	if innerType == nil {
		return nil, NewError("Must provide an non-nil inner type for NonNull.")
	}
	if _, alreadyNonNull := innerType.(*NonNull); alreadyNonNull {
		return nil, NewError("Cannot wrap a Non-Null type with another Non-Null type.")
	}
	return &NonNull{innerType: innerType}, nil
}

// MustNewNonNullOfType is a convenience function equivalent to NewNonNullOfType but panics on
// failure instead of returning an error.
func MustNewNonNullOfType(innerType Type) *NonNull {
	nonNull, err := NewNonNullOfType(innerType)
	if err != nil {
		panic(err)
	}
	return nonNull
}

// InnerType indicates the type of the element wrapped in this non-null type.
func (nonNull *NonNull) InnerType() Type {
	return nonNull.innerType
}

// UnwrappedType implements WrappingType.
func (nonNull *NonNull) UnwrappedType() Type {
	return nonNull.innerType
}

// String implements fmt.Stringer.
func (nonNull *NonNull) String() string {
	return nonNull.innerType.String() + "!"
}
