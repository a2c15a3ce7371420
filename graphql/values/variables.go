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

package values

// VariableValues supplies values for variable references during literal coercion. Scopes chain:
// a lookup consults the innermost scope first and falls back to its parent. A nil
// *VariableValues is a valid empty set.
type VariableValues struct {
	parent *VariableValues
	values map[string]interface{}
}

// NewVariableValues creates a root scope over the given map. The map is referenced, not copied.
func NewVariableValues(values map[string]interface{}) *VariableValues {
	return &VariableValues{values: values}
}

// WithScope returns a child scope that shadows this one with the given map. Lookups that miss
// the child fall through to the receiver.
func (vars *VariableValues) WithScope(values map[string]interface{}) *VariableValues {
	return &VariableValues{parent: vars, values: values}
}

// Lookup finds the value bound to name. The second result reports whether any scope in the
// chain defines the variable; a defined variable may still carry a nil value.
func (vars *VariableValues) Lookup(name string) (interface{}, bool) {
	for v := vars; v != nil; v = v.parent {
		if value, ok := v.values[name]; ok {
			return value, true
		}
	}
	return nil, false
}
