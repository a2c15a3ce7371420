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
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/vektah/gqlparser/v2/ast"
)

// The "type of internal value" for each built-in scalar is listed as follows,
//
// +--------------+---------------------------------+
// | GraphQL Type | Go Type ("internal value type") |
// +--------------+---------------------------------+
// | Int          | int                             |
// | Float        | float64                         |
// | String       | string                          |
// | Boolean      | bool                            |
// | ID           | string                          |
// +--------------+---------------------------------+
//
// That is, the type of underlying value behind the interface{} returned by CoerceLiteralValue and
// CoerceVariableValue is fixed to the one given in the table for each type. Therefore, for
// example, when you receive an Int argument, you can expect you got an "int" not int32 or others.

// Reasons for the error when coercing built-in scalar types
const (
	coercionErrNonInteger      = "not an integer"
	coercionErrIntegerTooLarge = "value too large for 32-bit signed integer"
	coercionErrIntegerTooSmall = "value too small for 32-bit signed integer"
	coercionErrNonNumeric      = "not a numeric value"
	coercionErrNonString       = "not a string value"
	coercionErrNonBoolean      = "not a boolean value"
	coercionErrNonID           = "not a valid ID value (expect a string or an integer)"
)

// raiseCoercionError builds an error indicating a value that cannot be represented in the given
// scalar type.
func raiseCoercionError(typeName string, value interface{}, reason string) error {
	if v, ok := value.(string); ok {
		// Quote the string for pretty printing.
		value = strconv.Quote(v)
	}
	return NewCoercionError("%s cannot represent %v: %s", typeName, value, reason)
}

// raiseInvalidLiteralError builds an error indicating an unexpected literal node kind.
func raiseInvalidLiteralError(typeName string, value *ast.Value) error {
	if value == nil {
		return NewCoercionError("%s cannot represent a missing value", typeName)
	}
	return NewCoercionError("%s cannot represent %s: unexpected literal kind", typeName, value.String())
}

//===-----------------------------------------------------------------------------------------===//
// Int
//===-----------------------------------------------------------------------------------------===//

// intCoercer implements input coercion and result coercion for the Int type. The Int scalar type
// represents a signed 32-bit numeric non-fractional value as per spec.
//
// Reference: https://spec.graphql.org/draft/#sec-Int
type intCoercer struct{}

var (
	_ ScalarResultCoercer = intCoercer{}
	_ ScalarInputCoercer  = intCoercer{}
)

// coerceInt validates the 32-bit range and fixes the internal representation to "int".
func (c intCoercer) coerceInt(value int64) (interface{}, error) {
	if value > math.MaxInt32 {
		return nil, raiseCoercionError("Int", value, coercionErrIntegerTooLarge)
	}
	if value < math.MinInt32 {
		return nil, raiseCoercionError("Int", value, coercionErrIntegerTooSmall)
	}
	return int(value), nil
}

// coerceFloat accepts a floating point value only when the conversion to Int is lossless.
func (c intCoercer) coerceFloat(value float64) (interface{}, error) {
	intValue := int64(value)
	if float64(intValue) != value {
		return nil, raiseCoercionError("Int", value, coercionErrNonInteger)
	}
	return c.coerceInt(intValue)
}

// CoerceVariableValue implements ScalarInputCoercer.
func (c intCoercer) CoerceVariableValue(value interface{}) (interface{}, error) {
	switch value := value.(type) {
	case int:
		return c.coerceInt(int64(value))
	case int8:
		return c.coerceInt(int64(value))
	case int16:
		return c.coerceInt(int64(value))
	case int32:
		return c.coerceInt(int64(value))
	case int64:
		return c.coerceInt(value)
	case uint:
		if uint64(value) > math.MaxInt32 {
			return nil, raiseCoercionError("Int", value, coercionErrIntegerTooLarge)
		}
		return int(value), nil
	case uint8:
		return c.coerceInt(int64(value))
	case uint16:
		return c.coerceInt(int64(value))
	case uint32:
		return c.coerceInt(int64(value))
	case uint64:
		if value > math.MaxInt32 {
			return nil, raiseCoercionError("Int", value, coercionErrIntegerTooLarge)
		}
		return int(value), nil
	case float32:
		return c.coerceFloat(float64(value))
	case float64:
		return c.coerceFloat(value)
	case json.Number:
		if v, err := value.Int64(); err == nil {
			return c.coerceInt(v)
		}
		if v, err := value.Float64(); err == nil {
			return c.coerceFloat(v)
		}
		return nil, raiseCoercionError("Int", value, coercionErrNonInteger)
	}
	return nil, raiseCoercionError("Int", value, coercionErrNonInteger)
}

// CoerceLiteralValue implements ScalarInputCoercer.
func (c intCoercer) CoerceLiteralValue(value *ast.Value) (interface{}, error) {
	if value != nil && value.Kind == ast.IntValue {
		v, err := strconv.ParseInt(value.Raw, 10, 64)
		if err != nil {
			return nil, raiseCoercionError("Int", value.Raw, coercionErrNonInteger)
		}
		return c.coerceInt(v)
	}
	return nil, raiseInvalidLiteralError("Int", value)
}

// CoerceResultValue implements ScalarResultCoercer. Result coercion is more lenient than input
// coercion: booleans and numeric strings are accepted as per spec.
func (c intCoercer) CoerceResultValue(value interface{}) (interface{}, error) {
	switch value := value.(type) {
	case bool:
		if value {
			return 1, nil
		}
		return 0, nil
	case string:
		v, err := strconv.ParseInt(value, 10, 32)
		if err != nil {
			return nil, raiseCoercionError("Int", value, coercionErrNonInteger)
		}
		return int(v), nil
	}
	return c.CoerceVariableValue(value)
}

var intType = &Scalar{
	name: "Int",
	description: "The `Int` scalar type represents non-fractional signed whole numeric " +
		"values. Int can represent values between -(2^31) and 2^31 - 1.",
	resultCoercer: intCoercer{},
	inputCoercer:  intCoercer{},
}

// Int returns the GraphQL builtin Int type definition.
func Int() *Scalar {
	return intType
}

//===-----------------------------------------------------------------------------------------===//
// Float
//===-----------------------------------------------------------------------------------------===//

// floatCoercer implements input coercion and result coercion for the Float type. The Float scalar
// type represents signed double-precision fractional values as specified by IEEE 754.
//
// Reference: https://spec.graphql.org/draft/#sec-Float
type floatCoercer struct{}

var (
	_ ScalarResultCoercer = floatCoercer{}
	_ ScalarInputCoercer  = floatCoercer{}
)

// ensureValue rejects values that are not valid IEEE 754 numbers (NaN and Inf).
func (floatCoercer) ensureValue(value float64) (interface{}, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, raiseCoercionError("Float", value, coercionErrNonNumeric)
	}
	return value, nil
}

// CoerceVariableValue implements ScalarInputCoercer.
func (c floatCoercer) CoerceVariableValue(value interface{}) (interface{}, error) {
	switch value := value.(type) {
	case float64:
		return c.ensureValue(value)
	case float32:
		return c.ensureValue(float64(value))
	case int:
		return float64(value), nil
	case int8:
		return float64(value), nil
	case int16:
		return float64(value), nil
	case int32:
		return float64(value), nil
	case int64:
		return float64(value), nil
	case uint:
		return float64(value), nil
	case uint8:
		return float64(value), nil
	case uint16:
		return float64(value), nil
	case uint32:
		return float64(value), nil
	case uint64:
		return float64(value), nil
	case json.Number:
		if v, err := value.Float64(); err == nil {
			return c.ensureValue(v)
		}
		return nil, raiseCoercionError("Float", value, coercionErrNonNumeric)
	}
	return nil, raiseCoercionError("Float", value, coercionErrNonNumeric)
}

// CoerceLiteralValue implements ScalarInputCoercer.
func (c floatCoercer) CoerceLiteralValue(value *ast.Value) (interface{}, error) {
	if value != nil && (value.Kind == ast.FloatValue || value.Kind == ast.IntValue) {
		v, err := strconv.ParseFloat(value.Raw, 64)
		if err != nil {
			return nil, raiseCoercionError("Float", value.Raw, coercionErrNonNumeric)
		}
		return c.ensureValue(v)
	}
	return nil, raiseInvalidLiteralError("Float", value)
}

// CoerceResultValue implements ScalarResultCoercer.
func (c floatCoercer) CoerceResultValue(value interface{}) (interface{}, error) {
	switch value := value.(type) {
	case bool:
		if value {
			return 1.0, nil
		}
		return 0.0, nil
	case string:
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, raiseCoercionError("Float", value, coercionErrNonNumeric)
		}
		return c.ensureValue(v)
	}
	return c.CoerceVariableValue(value)
}

var floatType = &Scalar{
	name: "Float",
	description: "The `Float` scalar type represents signed double-precision fractional " +
		"values as specified by [IEEE 754](https://en.wikipedia.org/wiki/IEEE_754).",
	resultCoercer: floatCoercer{},
	inputCoercer:  floatCoercer{},
}

// Float returns the GraphQL builtin Float type definition.
func Float() *Scalar {
	return floatType
}

//===-----------------------------------------------------------------------------------------===//
// String
//===-----------------------------------------------------------------------------------------===//

// stringCoercer implements input coercion and result coercion for the String type.
//
// Reference: https://spec.graphql.org/draft/#sec-String
type stringCoercer struct{}

var (
	_ ScalarResultCoercer = stringCoercer{}
	_ ScalarInputCoercer  = stringCoercer{}
)

// CoerceVariableValue implements ScalarInputCoercer. Input coercion accepts string values only.
func (stringCoercer) CoerceVariableValue(value interface{}) (interface{}, error) {
	if value, ok := value.(string); ok {
		return value, nil
	}
	return nil, raiseCoercionError("String", value, coercionErrNonString)
}

// CoerceLiteralValue implements ScalarInputCoercer.
func (stringCoercer) CoerceLiteralValue(value *ast.Value) (interface{}, error) {
	if value != nil && (value.Kind == ast.StringValue || value.Kind == ast.BlockValue) {
		return value.Raw, nil
	}
	return nil, raiseInvalidLiteralError("String", value)
}

// CoerceResultValue implements ScalarResultCoercer. Result coercion serializes booleans and
// numbers in addition to strings.
func (stringCoercer) CoerceResultValue(value interface{}) (interface{}, error) {
	switch value := value.(type) {
	case string:
		return value, nil
	case bool:
		if value {
			return "true", nil
		}
		return "false", nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, json.Number:
		return fmt.Sprintf("%v", value), nil
	}
	return nil, raiseCoercionError("String", value, coercionErrNonString)
}

var stringType = &Scalar{
	name: "String",
	description: "The `String` scalar type represents textual data, represented as UTF-8 " +
		"character sequences. The String type is most often used by GraphQL to " +
		"represent free-form human-readable text.",
	resultCoercer: stringCoercer{},
	inputCoercer:  stringCoercer{},
}

// String returns the GraphQL builtin String type definition.
func String() *Scalar {
	return stringType
}

//===-----------------------------------------------------------------------------------------===//
// Boolean
//===-----------------------------------------------------------------------------------------===//

// booleanCoercer implements input coercion and result coercion for the Boolean type.
//
// Reference: https://spec.graphql.org/draft/#sec-Boolean
type booleanCoercer struct{}

var (
	_ ScalarResultCoercer = booleanCoercer{}
	_ ScalarInputCoercer  = booleanCoercer{}
)

// CoerceVariableValue implements ScalarInputCoercer. Input coercion accepts boolean values only.
func (booleanCoercer) CoerceVariableValue(value interface{}) (interface{}, error) {
	if value, ok := value.(bool); ok {
		return value, nil
	}
	return nil, raiseCoercionError("Boolean", value, coercionErrNonBoolean)
}

// CoerceLiteralValue implements ScalarInputCoercer.
func (booleanCoercer) CoerceLiteralValue(value *ast.Value) (interface{}, error) {
	if value != nil && value.Kind == ast.BooleanValue {
		return value.Raw == "true", nil
	}
	return nil, raiseInvalidLiteralError("Boolean", value)
}

// CoerceResultValue implements ScalarResultCoercer. Result coercion accepts numbers, mapping
// non-zero to true.
func (c booleanCoercer) CoerceResultValue(value interface{}) (interface{}, error) {
	switch value := value.(type) {
	case bool:
		return value, nil
	case int:
		return value != 0, nil
	case int32:
		return value != 0, nil
	case int64:
		return value != 0, nil
	case uint:
		return value != 0, nil
	case float64:
		return value != 0, nil
	}
	return nil, raiseCoercionError("Boolean", value, coercionErrNonBoolean)
}

var booleanType = &Scalar{
	name:          "Boolean",
	description:   "The `Boolean` scalar type represents `true` or `false`.",
	resultCoercer: booleanCoercer{},
	inputCoercer:  booleanCoercer{},
}

// Boolean returns the GraphQL builtin Boolean type definition.
func Boolean() *Scalar {
	return booleanType
}

//===-----------------------------------------------------------------------------------------===//
// ID
//===-----------------------------------------------------------------------------------------===//

// idCoercer implements input coercion and result coercion for the ID type. The ID type appears in
// a JSON response as a String, but it is not intended to be human-readable; it accepts both string
// and integer input.
//
// Reference: https://spec.graphql.org/draft/#sec-ID
type idCoercer struct{}

var (
	_ ScalarResultCoercer = idCoercer{}
	_ ScalarInputCoercer  = idCoercer{}
)

// CoerceVariableValue implements ScalarInputCoercer.
func (idCoercer) CoerceVariableValue(value interface{}) (interface{}, error) {
	switch value := value.(type) {
	case string:
		return value, nil
	case int:
		return strconv.FormatInt(int64(value), 10), nil
	case int32:
		return strconv.FormatInt(int64(value), 10), nil
	case int64:
		return strconv.FormatInt(value, 10), nil
	case uint:
		return strconv.FormatUint(uint64(value), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(value), 10), nil
	case uint64:
		return strconv.FormatUint(value, 10), nil
	case json.Number:
		if _, err := value.Int64(); err == nil {
			return value.String(), nil
		}
		return nil, raiseCoercionError("ID", value, coercionErrNonID)
	}
	return nil, raiseCoercionError("ID", value, coercionErrNonID)
}

// CoerceLiteralValue implements ScalarInputCoercer.
func (idCoercer) CoerceLiteralValue(value *ast.Value) (interface{}, error) {
	if value != nil && (value.Kind == ast.StringValue || value.Kind == ast.IntValue) {
		return value.Raw, nil
	}
	return nil, raiseInvalidLiteralError("ID", value)
}

// CoerceResultValue implements ScalarResultCoercer.
func (c idCoercer) CoerceResultValue(value interface{}) (interface{}, error) {
	return c.CoerceVariableValue(value)
}

var idType = &Scalar{
	name: "ID",
	description: "The `ID` scalar type represents a unique identifier, often used to " +
		"refetch an object or as key for a cache. The ID type appears in a JSON " +
		"response as a String; however, it is not intended to be human-readable. " +
		"When expected as an input type, any string (such as `\"4\"`) or integer " +
		"(such as `4`) input value will be accepted as an ID.",
	resultCoercer: idCoercer{},
	inputCoercer:  idCoercer{},
}

// ID returns the GraphQL builtin ID type definition.
func ID() *Scalar {
	return idType
}

// SpecifiedScalarTypes returns the set of scalar types defined by the GraphQL specification,
// keyed by name. The returned map is freshly allocated and safe to keep.
func SpecifiedScalarTypes() map[string]*Scalar {
	return map[string]*Scalar{
		"Int":     Int(),
		"Float":   Float(),
		"String":  String(),
		"Boolean": Boolean(),
		"ID":      ID(),
	}
}

// IsSpecifiedScalarType returns true if the given type is one of the scalar types defined by the
// GraphQL specification.
func IsSpecifiedScalarType(t Type) bool {
	switch t {
	case intType, floatType, stringType, booleanType, idType:
		return true
	}
	return false
}
