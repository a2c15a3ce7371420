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
	"strconv"

	"github.com/vektah/gqlparser/v2/ast"
)

// ScalarResultCoercer coerces a result value into a value represented in the Scalar type.
//
// Reference: https://spec.graphql.org/draft/#sec-Scalars.Result-Coercion
type ScalarResultCoercer interface {
	// CoerceResultValue coerces the given value for the field to return.
	CoerceResultValue(value interface{}) (interface{}, error)
}

// CoerceScalarResultFunc is an adapter to allow the use of ordinary functions as
// ScalarResultCoercer.
type CoerceScalarResultFunc func(value interface{}) (interface{}, error)

// CoerceResultValue calls f(value).
func (f CoerceScalarResultFunc) CoerceResultValue(value interface{}) (interface{}, error) {
	return f(value)
}

var _ ScalarResultCoercer = (CoerceScalarResultFunc)(nil)

// ScalarInputCoercer coerces input values into a value represented in the Scalar type.
//
// Reference: https://spec.graphql.org/draft/#sec-Scalars.Input-Coercion
type ScalarInputCoercer interface {
	// CoerceVariableValue coerces a scalar value supplied by a variable.
	CoerceVariableValue(value interface{}) (interface{}, error)

	// CoerceLiteralValue coerces a scalar value given as a literal in a parsed document. Variable
	// placeholders are substituted by the caller before the literal reaches the coercer.
	CoerceLiteralValue(value *ast.Value) (interface{}, error)
}

// ScalarInputCoercerFuncs is an adapter to create a ScalarInputCoercer from function values.
type ScalarInputCoercerFuncs struct {
	CoerceVariableValueFunc func(value interface{}) (interface{}, error)
	CoerceLiteralValueFunc  func(value *ast.Value) (interface{}, error)
}

// CoerceVariableValue calls f.CoerceVariableValueFunc(value).
func (f ScalarInputCoercerFuncs) CoerceVariableValue(value interface{}) (interface{}, error) {
	return f.CoerceVariableValueFunc(value)
}

// CoerceLiteralValue calls f.CoerceLiteralValueFunc(value).
func (f ScalarInputCoercerFuncs) CoerceLiteralValue(value *ast.Value) (interface{}, error) {
	return f.CoerceLiteralValueFunc(value)
}

var _ ScalarInputCoercer = ScalarInputCoercerFuncs{}

// ScalarConfig provides specification to define a Scalar type.
type ScalarConfig struct {
	// Name of the defining Scalar type
	Name string

	// Description for the Scalar type
	Description string

	// ResultCoercer serializes values for the scalar. If nil, values pass through unchanged.
	ResultCoercer ScalarResultCoercer

	// InputCoercer parses input values for the scalar. If nil, variable values pass through
	// unchanged and literals are converted structurally without type interpretation.
	InputCoercer ScalarInputCoercer
}

// Scalar Type Definition
//
// The leaf values of any request and input values to arguments are Scalars (or Enums) and are
// defined with a name and a series of functions used to parse input and ensure validity.
//
// Reference: https://spec.graphql.org/draft/#sec-Scalars
type Scalar struct {
	name          string
	description   string
	resultCoercer ScalarResultCoercer
	inputCoercer  ScalarInputCoercer
}

var (
	_ Type                = (*Scalar)(nil)
	_ LeafType            = (*Scalar)(nil)
	_ TypeWithName        = (*Scalar)(nil)
	_ TypeWithDescription = (*Scalar)(nil)
)

// NewScalar defines a Scalar type from a ScalarConfig.
func NewScalar(config *ScalarConfig) (*Scalar, error) {
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Scalar.")
	}
	return &Scalar{
		name:          config.Name,
		description:   config.Description,
		resultCoercer: config.ResultCoercer,
		inputCoercer:  config.InputCoercer,
	}, nil
}

// MustNewScalar is a convenience function equivalent to NewScalar but panics on failure instead of
// returning an error.
func MustNewScalar(config *ScalarConfig) *Scalar {
	scalar, err := NewScalar(config)
	if err != nil {
		panic(err)
	}
	return scalar
}

// Name implements TypeWithName.
func (s *Scalar) Name() string {
	return s.name
}

// Description implements TypeWithDescription.
func (s *Scalar) Description() string {
	return s.description
}

// String implements fmt.Stringer.
func (s *Scalar) String() string {
	return s.name
}

// CoerceResultValue implements LeafType.
func (s *Scalar) CoerceResultValue(value interface{}) (interface{}, error) {
	if s.resultCoercer == nil {
		return value, nil
	}
	return s.resultCoercer.CoerceResultValue(value)
}

// CoerceVariableValue coerces a value supplied by a variable into an eligible Go value for the
// scalar.
func (s *Scalar) CoerceVariableValue(value interface{}) (interface{}, error) {
	if s.inputCoercer == nil {
		return value, nil
	}
	return s.inputCoercer.CoerceVariableValue(value)
}

// CoerceLiteralValue coerces a literal in a parsed document into an eligible Go value for the
// scalar.
func (s *Scalar) CoerceLiteralValue(value *ast.Value) (interface{}, error) {
	if s.inputCoercer == nil {
		return untypedLiteral(value)
	}
	return s.inputCoercer.CoerceLiteralValue(value)
}

// untypedLiteral converts a literal value node into a Go value without any type interpretation.
// This backs literal parsing for custom scalars that don't install their own input coercer.
func untypedLiteral(value *ast.Value) (interface{}, error) {
	if value == nil {
		return nil, NewCoercionError("no literal value provided")
	}

	switch value.Kind {
	case ast.NullValue:
		return nil, nil

	case ast.IntValue:
		if v, err := strconv.ParseInt(value.Raw, 10, 64); err == nil {
			return int(v), nil
		}
		return nil, NewCoercionError("invalid integer literal %s", value.Raw)

	case ast.FloatValue:
		if v, err := strconv.ParseFloat(value.Raw, 64); err == nil {
			return v, nil
		}
		return nil, NewCoercionError("invalid float literal %s", value.Raw)

	case ast.StringValue, ast.BlockValue, ast.EnumValue:
		return value.Raw, nil

	case ast.BooleanValue:
		return value.Raw == "true", nil

	case ast.ListValue:
		values := make([]interface{}, len(value.Children))
		for i, child := range value.Children {
			v, err := untypedLiteral(child.Value)
			if err != nil {
				return nil, err
			}
			values[i] = v
		}
		return values, nil

	case ast.ObjectValue:
		values := make(map[string]interface{}, len(value.Children))
		for _, child := range value.Children {
			v, err := untypedLiteral(child.Value)
			if err != nil {
				return nil, err
			}
			values[child.Name] = v
		}
		return values, nil

	case ast.Variable:
		return nil, NewCoercionError("cannot convert variable $%s without bindings", value.Raw)
	}

	return nil, NewCoercionError("unexpected literal value kind %d", value.Kind)
}
