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

package graphql_test

import (
	"github.com/selenegql/selene/graphql"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/vektah/gqlparser/v2/ast"
)

var _ = Describe("DefaultValue", func() {
	It("holds an internal value", func() {
		d := graphql.NewDefaultValue(42)
		Expect(d.Literal()).Should(BeNil())

		value, ok := d.Resolve(nil)
		Expect(ok).Should(BeTrue())
		Expect(value).Should(Equal(42))
	})

	It("coerces a literal on first use only", func() {
		d := graphql.NewDefaultValueLiteral(&ast.Value{Kind: ast.IntValue, Raw: "3"})
		Expect(d.Literal()).ShouldNot(BeNil())

		var calls int
		coerce := func(literal *ast.Value) (interface{}, bool) {
			calls++
			value, err := graphql.Int().CoerceLiteralValue(literal)
			return value, err == nil
		}

		value, ok := d.Resolve(coerce)
		Expect(ok).Should(BeTrue())
		Expect(value).Should(Equal(3))

		// The second read must observe the cached result without recomputation.
		again, ok := d.Resolve(coerce)
		Expect(ok).Should(BeTrue())
		Expect(again).Should(BeIdenticalTo(value))
		Expect(calls).Should(Equal(1))
	})

	It("caches a failed coercion", func() {
		d := graphql.NewDefaultValueLiteral(&ast.Value{Kind: ast.StringValue, Raw: "abc"})

		var calls int
		coerce := func(literal *ast.Value) (interface{}, bool) {
			calls++
			value, err := graphql.Int().CoerceLiteralValue(literal)
			return value, err == nil
		}

		_, ok := d.Resolve(coerce)
		Expect(ok).Should(BeFalse())
		_, ok = d.Resolve(coerce)
		Expect(ok).Should(BeFalse())
		Expect(calls).Should(Equal(1))
	})
})
