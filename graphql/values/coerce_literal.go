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

import (
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/selenegql/selene/graphql"
)

// isMissingVariable returns true if node is a variable reference that the given set of variable
// values does not define.
func isMissingVariable(node *ast.Value, vars *VariableValues) bool {
	if node.Kind == ast.Variable {
		_, exists := vars.Lookup(node.Raw)
		return !exists
	}
	return false
}

// CoerceLiteral produces a Go value from a pre-parsed literal fragment given an input type.
//
// Unlike CoerceValue it short-circuits: the second result is false as soon as any part of the
// literal is invalid for the type, and the whole value is discarded. ok=false means "no usable
// value", which is distinct from a usable null (nil, true).
//
// Variable references inside the literal are resolved against vars; a nil vars is an empty set.
// This assumes the document was validated, so no further type check is applied to a resolved
// variable value.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Coercing-Argument-Values
func CoerceLiteral(node *ast.Value, t graphql.Type, vars *VariableValues) (interface{}, bool) {
	if node == nil {
		// No node, no value.
		return nil, false
	}

	// Variables resolve before the non-null wrapper is unwrapped so that a variable bound to null
	// still fails against a non-null target.
	if node.Kind == ast.Variable {
		varValue, exists := vars.Lookup(node.Raw)
		if !exists {
			return nil, false
		}
		if varValue == nil && graphql.IsNonNullType(t) {
			return nil, false
		}
		return varValue, true
	}

	isNullValue := node.Kind == ast.NullValue
	if nonNullType, isNonNull := t.(*graphql.NonNull); isNonNull {
		if isNullValue {
			return nil, false
		}
		return CoerceLiteral(node, nonNullType.InnerType(), vars)
	}

	if isNullValue {
		// Explicitly the value null.
		return nil, true
	}

	switch t := t.(type) {
	case *graphql.List:
		return coerceListLiteral(node, t, vars)
	case *graphql.InputObject:
		return coerceInputObjectLiteral(node, t, vars)
	case *graphql.Scalar:
		coerced, err := t.CoerceLiteralValue(node)
		if err != nil {
			return nil, false
		}
		return coerced, true
	case *graphql.Enum:
		coerced, err := t.CoerceLiteralValue(node)
		if err != nil {
			return nil, false
		}
		return coerced, true
	}

	return nil, false
}

func coerceListLiteral(node *ast.Value, t *graphql.List, vars *VariableValues) (interface{}, bool) {
	elementType := t.ElementType()
	isNonNullElementType := graphql.IsNonNullType(elementType)

	if node.Kind == ast.ListValue {
		children := node.Children
		coercedValues := make([]interface{}, len(children))
		for i, child := range children {
			if isMissingVariable(child.Value, vars) {
				// A missing variable in a list position coerces to null, or invalidates the whole
				// list when the element type is non-null.
				if isNonNullElementType {
					return nil, false
				}
				coercedValues[i] = nil
				continue
			}
			elementValue, ok := CoerceLiteral(child.Value, elementType, vars)
			if !ok {
				return nil, false
			}
			coercedValues[i] = elementValue
		}
		return coercedValues, true
	}

	// A non-list literal coerces as a list of one.
	coercedValue, ok := CoerceLiteral(node, elementType, vars)
	if !ok {
		return nil, false
	}
	return []interface{}{coercedValue}, true
}

func coerceInputObjectLiteral(node *ast.Value, t *graphql.InputObject, vars *VariableValues) (interface{}, bool) {
	if node.Kind != ast.ObjectValue {
		return nil, false
	}

	fields := t.Fields()

	astFields := make(map[string]*ast.ChildValue, len(node.Children))
	for _, child := range node.Children {
		if fields.ForName(child.Name) == nil {
			return nil, false
		}
		astFields[child.Name] = child
	}

	coercedValues := make(map[string]interface{}, len(astFields))
	for _, field := range fields {
		astField, exists := astFields[field.Name()]
		if !exists || isMissingVariable(astField.Value, vars) {
			// An absent field, or a field bound to an undefined variable, falls back to the
			// default when one exists.
			if field.HasDefaultValue() {
				if coerced, ok := resolveDefault(field); ok {
					coercedValues[field.Name()] = coerced
				} else {
					return nil, false
				}
			} else if graphql.IsNonNullType(field.Type()) {
				return nil, false
			}
			continue
		}

		fieldValue, ok := CoerceLiteral(astField.Value, field.Type(), vars)
		if !ok {
			return nil, false
		}
		coercedValues[field.Name()] = fieldValue
	}

	if t.OneOf() {
		if len(coercedValues) != 1 {
			return nil, false
		}
		for _, fieldValue := range coercedValues {
			if fieldValue == nil {
				return nil, false
			}
		}
	}

	return coercedValues, true
}
