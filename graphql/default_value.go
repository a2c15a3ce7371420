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
	"sync"

	"github.com/vektah/gqlparser/v2/ast"
)

// DefaultValue stores the default for an argument or an input field. The default is either an
// already-internal Go value or a pre-parsed literal fragment which is coerced to an internal value
// on first read and then cached on the record. Both forms must coerce identically for a given
// type.
//
// A DefaultValue is immutable once attached to its argument or input field. The memoization uses
// sync.Once so concurrent first reads compute the coercion exactly once; a coercion of a default
// is a pure computation, so even a lost race would only have recomputed the same value.
type DefaultValue struct {
	literal *ast.Value

	once  sync.Once
	value interface{}
	ok    bool
}

// NewDefaultValue creates a record holding an already-internal value.
func NewDefaultValue(value interface{}) *DefaultValue {
	d := &DefaultValue{value: value, ok: true}
	// Mark the cell resolved so Resolve never invokes the coercer.
	d.once.Do(func() {})
	return d
}

// NewDefaultValueLiteral creates a record holding a pre-parsed literal fragment. The literal is
// coerced lazily via Resolve.
func NewDefaultValueLiteral(literal *ast.Value) *DefaultValue {
	return &DefaultValue{literal: literal}
}

// Literal returns the pre-parsed literal fragment, or nil if the record holds an internal value.
func (d *DefaultValue) Literal() *ast.Value {
	return d.literal
}

// Resolve returns the internal form of the default. For a literal record the given coerce
// function is invoked at most once for the lifetime of the record; its result is cached, including
// a failure (ok=false means the record yields no usable value).
func (d *DefaultValue) Resolve(coerce func(literal *ast.Value) (interface{}, bool)) (interface{}, bool) {
	d.once.Do(func() {
		d.value, d.ok = coerce(d.literal)
	})
	return d.value, d.ok
}
