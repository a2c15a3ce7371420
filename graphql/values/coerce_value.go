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
	"fmt"
	"reflect"
	"sort"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/selenegql/selene/graphql"
	"github.com/selenegql/selene/internal/util"
)

// ErrorSink receives every diagnostic produced during value coercion. path locates the offending
// part of the input, value is the part that failed to coerce, and err carries the message.
type ErrorSink func(path *Path, value interface{}, err error)

type coerceConfig struct {
	suppressSuggestions bool
}

// CoerceOption configures value coercion.
type CoerceOption func(*coerceConfig)

// SuppressSuggestions disables "did you mean" hints in diagnostics. Useful when the input comes
// from a machine rather than a person.
func SuppressSuggestions() CoerceOption {
	return func(config *coerceConfig) {
		config.suppressSuggestions = true
	}
}

// CoerceValue coerces an externally provided Go value (e.g., decoded variable values) to the
// given input type.
//
// Coercion never stops at the first problem: every diagnostic found in value is collected in the
// returned Errors. The returned value is the best-effort coercion result; when errors occurred
// it still carries the parts that coerced cleanly, with the failed parts left out (object
// fields) or set to nil (list elements).
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Coercing-Variable-Values
func CoerceValue(value interface{}, t graphql.Type, opts ...CoerceOption) (interface{}, graphql.Errors) {
	errs := graphql.NoErrors()
	coerced := CoerceValueWith(value, t, func(path *Path, value interface{}, err error) {
		errs.Append(err)
	}, opts...)
	return coerced, errs
}

// CoerceValueWith is CoerceValue with the diagnostics delivered to sink instead of collected.
// The sink may retain the *Path beyond the call.
func CoerceValueWith(value interface{}, t graphql.Type, sink ErrorSink, opts ...CoerceOption) interface{} {
	c := valueCoercer{sink: sink}
	for _, opt := range opts {
		opt(&c.config)
	}
	return c.coerce(value, t, nil)
}

type valueCoercer struct {
	sink    ErrorSink
	config  coerceConfig
	numErrs int
}

func (c *valueCoercer) report(path *Path, value interface{}, message string, subMessage string, originalErr error) {
	c.numErrs++
	var buf util.StringBuilder
	buf.WriteString(message)
	if !path.Empty() {
		buf.WriteString(" at ")
		buf.WriteString(path.String())
	}
	if len(subMessage) > 0 {
		buf.WriteString("; ")
		buf.WriteString(subMessage)
	} else {
		buf.WriteString(".")
	}

	var err error
	if originalErr != nil {
		err = graphql.NewError(buf.String(), graphql.ErrKindCoercion, originalErr)
	} else {
		err = graphql.NewError(buf.String(), graphql.ErrKindCoercion)
	}
	c.sink(path, value, err)
}

// reportAt delivers a diagnostic whose message already locates the offending part, so no path
// suffix is appended; the path still reaches the sink.
func (c *valueCoercer) reportAt(path *Path, value interface{}, message string) {
	c.numErrs++
	c.sink(path, value, graphql.NewError(message, graphql.ErrKindCoercion))
}

// didYouMean builds the suggestion clause for a diagnostic, or "" when there is nothing worth
// suggesting (or suggestions are suppressed).
func (c *valueCoercer) didYouMean(input string, options []string) string {
	if c.config.suppressSuggestions {
		return ""
	}
	suggestions := util.SuggestionList(input, options)
	if len(suggestions) == 0 {
		return ""
	}
	var buf util.StringBuilder
	buf.WriteString("did you mean ")
	util.WriteOrList(&buf, suggestions, 5, false)
	buf.WriteString("?")
	return buf.String()
}

func (c *valueCoercer) coerce(value interface{}, t graphql.Type, path *Path) interface{} {
	// A value must be provided if the type is non-null.
	if nonNullType, isNonNull := t.(*graphql.NonNull); isNonNull {
		if value == nil {
			c.report(path, value,
				fmt.Sprintf("Expected non-nullable type %s not to be null", graphql.Inspect(t)),
				"", nil)
			return nil
		}
		return c.coerce(value, nonNullType.InnerType(), path)
	}

	if value == nil {
		// Explicitly the value null.
		return nil
	}

	switch t := t.(type) {
	case *graphql.Scalar:
		return c.coerceScalar(value, t, path)
	case *graphql.Enum:
		return c.coerceEnum(value, t, path)
	case *graphql.List:
		return c.coerceList(value, t, path)
	case *graphql.InputObject:
		return c.coerceInputObject(value, t, path)
	}

	c.report(path, value, fmt.Sprintf("%s is not a valid input type", graphql.Inspect(t)), "", nil)
	return nil
}

func (c *valueCoercer) coerceScalar(value interface{}, t *graphql.Scalar, path *Path) interface{} {
	// Scalars determine validity via CoerceVariableValue. Keep a reference to the original error
	// and surface its message as the submessage.
	coerced, err := t.CoerceVariableValue(value)
	if err != nil {
		var subMessage string
		if e, ok := err.(*graphql.Error); ok && e.Kind == graphql.ErrKindCoercion {
			subMessage = e.Message
		}
		c.report(path, value, fmt.Sprintf("Expected type %s", graphql.Inspect(t)), subMessage, err)
		return nil
	}
	return coerced
}

func (c *valueCoercer) coerceEnum(value interface{}, t *graphql.Enum, path *Path) interface{} {
	coerced, err := t.CoerceVariableValue(value)
	if err != nil {
		enumValues := t.Values()
		names := make([]string, 0, len(enumValues))
		for _, enumValue := range enumValues {
			names = append(names, enumValue.Name())
		}
		c.report(path, value,
			fmt.Sprintf("Expected type %s", graphql.Inspect(t)),
			c.didYouMean(fmt.Sprintf("%v", value), names),
			err)
		return nil
	}
	return coerced
}

func (c *valueCoercer) coerceList(value interface{}, t *graphql.List, path *Path) interface{} {
	elementType := t.ElementType()

	reflectValue := reflect.ValueOf(value)
	if reflectValue.Kind() == reflect.Slice || reflectValue.Kind() == reflect.Array {
		numElements := reflectValue.Len()
		coercedValues := make([]interface{}, numElements)
		for i := 0; i < numElements; i++ {
			coercedValues[i] = c.coerce(reflectValue.Index(i).Interface(), elementType, path.WithIndex(i))
		}
		return coercedValues
	}

	// Lists accept a non-list value as a list of one.
	return []interface{}{c.coerce(value, elementType, path)}
}

func (c *valueCoercer) coerceInputObject(value interface{}, t *graphql.InputObject, path *Path) interface{} {
	// Currently the only accepted representation is map[string]interface{}.
	objectValue, isObjectValue := value.(map[string]interface{})
	if !isObjectValue {
		c.report(path, value,
			fmt.Sprintf("Expected type %s to be an object", graphql.Inspect(t)),
			"",
			graphql.NewError(fmt.Sprintf("value for input object should be given in a map[string]interface{}, but got: %T", value)))
		return nil
	}

	fields := t.Fields()
	coercedValue := make(map[string]interface{}, len(fields))

	// Ensure every defined field is valid.
	for _, field := range fields {
		name := field.Name()
		fieldPath := path.WithField(name)
		fieldValue, hasFieldValue := objectValue[name]
		if !hasFieldValue {
			if field.HasDefaultValue() {
				if coerced, ok := resolveDefault(field); ok {
					coercedValue[name] = coerced
				}
			} else if graphql.IsNonNullType(field.Type()) {
				c.reportAt(fieldPath, nil,
					fmt.Sprintf("Field %s of required type %s was not provided.",
						fieldPath.String(), graphql.Inspect(field.Type())))
			}
			continue
		}

		numErrsBefore := c.numErrs
		coercedField := c.coerce(fieldValue, field.Type(), fieldPath)
		if c.numErrs == numErrsBefore {
			coercedValue[name] = coercedField
		}
	}

	// Ensure every provided field is defined. Unknown names report in sorted order so repeated
	// runs produce the same diagnostics.
	var unknownNames []string
	for name := range objectValue {
		if fields.ForName(name) == nil {
			unknownNames = append(unknownNames, name)
		}
	}
	sort.Strings(unknownNames)
	if len(unknownNames) > 0 {
		fieldNames := make([]string, 0, len(fields))
		for _, field := range fields {
			fieldNames = append(fieldNames, field.Name())
		}
		for _, name := range unknownNames {
			c.report(path, objectValue[name],
				fmt.Sprintf(`Field "%s" is not defined by type %s`, name, graphql.Inspect(t)),
				c.didYouMean(name, fieldNames),
				nil)
		}
	}

	if t.OneOf() {
		c.checkOneOf(objectValue, t, path)
	}

	return coercedValue
}

// checkOneOf enforces the exclusivity rule on a oneOf input object: exactly one field provided,
// and its value must not be null.
func (c *valueCoercer) checkOneOf(objectValue map[string]interface{}, t *graphql.InputObject, path *Path) {
	if len(objectValue) != 1 {
		c.report(path, objectValue,
			fmt.Sprintf(`Exactly one key must be specified for OneOf type "%s"`, t.Name()),
			"", nil)
		return
	}
	for name, fieldValue := range objectValue {
		if fieldValue == nil {
			c.report(path.WithField(name), fieldValue,
				fmt.Sprintf(`Field "%s" must be non-null`, name),
				"", nil)
		}
	}
}

// resolveDefault coerces a field default on first use; the result is memoized on the field's
// DefaultValue record, so repeated reads observe the identical value.
func resolveDefault(field *graphql.InputField) (interface{}, bool) {
	return field.Default().Resolve(func(literal *ast.Value) (interface{}, bool) {
		return CoerceLiteral(literal, field.Type(), nil)
	})
}
