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

package values_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/selenegql/selene/graphql"
	"github.com/selenegql/selene/graphql/values"
)

var _ = Describe("CoerceLiteral", func() {
	It("produces no value without a node", func() {
		_, ok := values.CoerceLiteral(nil, graphql.Int(), nil)
		Expect(ok).Should(BeFalse())
	})

	It("distinguishes a usable null from no value", func() {
		value, ok := values.CoerceLiteral(literal(ast.NullValue, "null"), graphql.Int(), nil)
		Expect(ok).Should(BeTrue())
		Expect(value).Should(BeNil())

		_, ok = values.CoerceLiteral(
			literal(ast.NullValue, "null"), graphql.MustNewNonNullOfType(graphql.Int()), nil)
		Expect(ok).Should(BeFalse())
	})

	It("coerces scalar literals", func() {
		value, ok := values.CoerceLiteral(literal(ast.IntValue, "123"), graphql.Int(), nil)
		Expect(ok).Should(BeTrue())
		Expect(value).Should(Equal(123))
	})

	It("discards literals of the wrong kind", func() {
		_, ok := values.CoerceLiteral(literal(ast.StringValue, "123"), graphql.Int(), nil)
		Expect(ok).Should(BeFalse())
	})

	It("coerces enum literals", func() {
		value, ok := values.CoerceLiteral(literal(ast.EnumValue, "JEDI"), episodeEnum, nil)
		Expect(ok).Should(BeTrue())
		Expect(value).Should(Equal("JEDI"))

		_, ok = values.CoerceLiteral(literal(ast.EnumValue, "JEDY"), episodeEnum, nil)
		Expect(ok).Should(BeFalse())
	})

	Describe("with variable references", func() {
		It("resolves against the given variable values", func() {
			vars := values.NewVariableValues(map[string]interface{}{"n": 5})
			value, ok := values.CoerceLiteral(variableLiteral("n"), graphql.Int(), vars)
			Expect(ok).Should(BeTrue())
			Expect(value).Should(Equal(5))
		})

		It("produces no value for an undefined variable", func() {
			_, ok := values.CoerceLiteral(variableLiteral("n"), graphql.Int(), nil)
			Expect(ok).Should(BeFalse())
		})

		It("passes a null variable value for nullable types only", func() {
			vars := values.NewVariableValues(map[string]interface{}{"n": nil})

			value, ok := values.CoerceLiteral(variableLiteral("n"), graphql.Int(), vars)
			Expect(ok).Should(BeTrue())
			Expect(value).Should(BeNil())

			_, ok = values.CoerceLiteral(
				variableLiteral("n"), graphql.MustNewNonNullOfType(graphql.Int()), vars)
			Expect(ok).Should(BeFalse())
		})

		It("resolves child scopes before their parents", func() {
			vars := values.NewVariableValues(map[string]interface{}{"n": 1}).
				WithScope(map[string]interface{}{"n": 2})
			value, ok := values.CoerceLiteral(variableLiteral("n"), graphql.Int(), vars)
			Expect(ok).Should(BeTrue())
			Expect(value).Should(Equal(2))
		})
	})

	Describe("with list types", func() {
		intList := graphql.MustNewListOfType(graphql.Int())
		requiredIntList := graphql.MustNewListOfType(graphql.MustNewNonNullOfType(graphql.Int()))

		It("coerces list literals element-wise", func() {
			node := listLiteral(literal(ast.IntValue, "1"), literal(ast.IntValue, "2"))
			value, ok := values.CoerceLiteral(node, intList, nil)
			Expect(ok).Should(BeTrue())
			Expect(value).Should(Equal([]interface{}{1, 2}))
		})

		It("coerces a non-list literal as a list of one", func() {
			value, ok := values.CoerceLiteral(literal(ast.IntValue, "42"), intList, nil)
			Expect(ok).Should(BeTrue())
			Expect(value).Should(Equal([]interface{}{42}))
		})

		It("discards the whole list when an element is invalid", func() {
			node := listLiteral(literal(ast.IntValue, "1"), literal(ast.StringValue, "x"))
			_, ok := values.CoerceLiteral(node, intList, nil)
			Expect(ok).Should(BeFalse())
		})

		It("turns a missing variable in a nullable position into null", func() {
			node := listLiteral(literal(ast.IntValue, "1"), variableLiteral("missing"))
			value, ok := values.CoerceLiteral(node, intList, nil)
			Expect(ok).Should(BeTrue())
			Expect(value).Should(Equal([]interface{}{1, nil}))
		})

		It("discards the whole list when a missing variable sits in a non-null position", func() {
			node := listLiteral(literal(ast.IntValue, "1"), variableLiteral("missing"))
			_, ok := values.CoerceLiteral(node, requiredIntList, nil)
			Expect(ok).Should(BeFalse())
		})

		It("discards the whole list when a null variable sits in a non-null position", func() {
			vars := values.NewVariableValues(map[string]interface{}{"n": nil})
			node := listLiteral(literal(ast.IntValue, "1"), variableLiteral("n"))
			_, ok := values.CoerceLiteral(node, requiredIntList, vars)
			Expect(ok).Should(BeFalse())
		})
	})

	Describe("with input object types", func() {
		It("fills in defaults for absent fields", func() {
			node := objectLiteral(objectField("term", literal(ast.StringValue, "go")))
			value, ok := values.CoerceLiteral(node, filterInput, nil)
			Expect(ok).Should(BeTrue())
			Expect(value).Should(Equal(map[string]interface{}{
				"first": 10,
				"term":  "go",
			}))
		})

		It("falls back to the default when a field names a missing variable", func() {
			node := objectLiteral(
				objectField("first", variableLiteral("undef")),
				objectField("term", literal(ast.StringValue, "go")),
			)
			value, ok := values.CoerceLiteral(node, filterInput, nil)
			Expect(ok).Should(BeTrue())
			Expect(value).Should(Equal(map[string]interface{}{
				"first": 10,
				"term":  "go",
			}))
		})

		It("discards literals that are not objects", func() {
			_, ok := values.CoerceLiteral(literal(ast.StringValue, "nope"), filterInput, nil)
			Expect(ok).Should(BeFalse())
		})

		It("discards objects carrying unknown fields", func() {
			node := objectLiteral(objectField("trem", literal(ast.StringValue, "go")))
			_, ok := values.CoerceLiteral(node, filterInput, nil)
			Expect(ok).Should(BeFalse())
		})

		It("discards objects missing a required field", func() {
			_, ok := values.CoerceLiteral(objectLiteral(), reviewInput, nil)
			Expect(ok).Should(BeFalse())
		})
	})

	Describe("with oneOf input object types", func() {
		It("accepts exactly one non-null field", func() {
			node := objectLiteral(objectField("id", literal(ast.StringValue, "4")))
			value, ok := values.CoerceLiteral(node, locatorInput, nil)
			Expect(ok).Should(BeTrue())
			Expect(value).Should(Equal(map[string]interface{}{"id": "4"}))
		})

		It("discards objects with multiple fields", func() {
			node := objectLiteral(
				objectField("id", literal(ast.StringValue, "4")),
				objectField("url", literal(ast.StringValue, "https://example.com/4")),
			)
			_, ok := values.CoerceLiteral(node, locatorInput, nil)
			Expect(ok).Should(BeFalse())
		})

		It("discards objects whose only field is null", func() {
			node := objectLiteral(objectField("id", literal(ast.NullValue, "null")))
			_, ok := values.CoerceLiteral(node, locatorInput, nil)
			Expect(ok).Should(BeFalse())
		})
	})
})
