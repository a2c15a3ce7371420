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
	"strconv"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/selenegql/selene/graphql"
)

// FromLiteralUntyped converts a literal fragment to a Go value without a type to steer the
// conversion. Numbers stay on their literal form (int for integer literals, float64 for float
// literals), enum names become strings, and variable references resolve against vars with a
// missing variable producing nil.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Input-Values
func FromLiteralUntyped(node *ast.Value, vars *VariableValues) (interface{}, error) {
	if node == nil {
		return nil, graphql.NewError("no literal to convert")
	}

	switch node.Kind {
	case ast.NullValue:
		return nil, nil

	case ast.IntValue:
		n, err := strconv.ParseInt(node.Raw, 10, 64)
		if err != nil {
			return nil, graphql.WrapErrorf(err, "invalid integer literal %q", node.Raw)
		}
		return int(n), nil

	case ast.FloatValue:
		f, err := strconv.ParseFloat(node.Raw, 64)
		if err != nil {
			return nil, graphql.WrapErrorf(err, "invalid float literal %q", node.Raw)
		}
		return f, nil

	case ast.StringValue, ast.BlockValue, ast.EnumValue:
		return node.Raw, nil

	case ast.BooleanValue:
		return node.Raw == "true", nil

	case ast.ListValue:
		list := make([]interface{}, len(node.Children))
		for i, child := range node.Children {
			value, err := FromLiteralUntyped(child.Value, vars)
			if err != nil {
				return nil, err
			}
			list[i] = value
		}
		return list, nil

	case ast.ObjectValue:
		object := make(map[string]interface{}, len(node.Children))
		for _, child := range node.Children {
			value, err := FromLiteralUntyped(child.Value, vars)
			if err != nil {
				return nil, err
			}
			object[child.Name] = value
		}
		return object, nil

	case ast.Variable:
		value, _ := vars.Lookup(node.Raw)
		return value, nil
	}

	return nil, graphql.NewError("unexpected literal kind")
}
