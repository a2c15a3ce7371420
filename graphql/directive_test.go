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
)

var _ = Describe("Directive", func() {
	It("defines a directive with arguments", func() {
		directive := graphql.MustNewDirective(&graphql.DirectiveConfig{
			Name:        "cacheControl",
			Description: "Sets cache hints for the selected field.",
			Locations: []graphql.DirectiveLocation{
				graphql.DirectiveLocationField,
				graphql.DirectiveLocationFieldDefinition,
			},
			Args: []graphql.ArgumentConfig{
				{Name: "maxAge", Type: graphql.Int()},
			},
			IsRepeatable: true,
		})

		Expect(directive.Name()).Should(Equal("cacheControl"))
		Expect(directive.String()).Should(Equal("@cacheControl"))
		Expect(directive.Locations()).Should(Equal([]graphql.DirectiveLocation{
			graphql.DirectiveLocationField,
			graphql.DirectiveLocationFieldDefinition,
		}))
		Expect(directive.IsRepeatable()).Should(BeTrue())

		args := directive.Args()
		Expect(args).Should(HaveLen(1))
		Expect(args.ForName("maxAge").Type()).Should(BeIdenticalTo(graphql.Int()))
		Expect(args.ForName("unknown")).Should(BeNil())
	})

	It("requires a name", func() {
		_, err := graphql.NewDirective(&graphql.DirectiveConfig{})
		Expect(err).Should(MatchError("Must provide name for Directive."))
	})

	It("classifies directive locations", func() {
		Expect(graphql.IsExecutableDirectiveLocation(graphql.DirectiveLocationField)).Should(BeTrue())
		Expect(graphql.IsExecutableDirectiveLocation(graphql.DirectiveLocationSchema)).Should(BeFalse())
		Expect(graphql.IsTypeSystemDirectiveLocation(graphql.DirectiveLocationEnumValue)).Should(BeTrue())
		Expect(graphql.IsTypeSystemDirectiveLocation(graphql.DirectiveLocationQuery)).Should(BeFalse())
	})

	Describe("Specification directives", func() {
		It("provides @skip and @include on selection locations", func() {
			for _, directive := range []*graphql.Directive{
				graphql.SkipDirective(),
				graphql.IncludeDirective(),
			} {
				Expect(directive.Locations()).Should(Equal([]graphql.DirectiveLocation{
					graphql.DirectiveLocationField,
					graphql.DirectiveLocationFragmentSpread,
					graphql.DirectiveLocationInlineFragment,
				}))

				ifArg := directive.Args().ForName("if")
				Expect(ifArg).ShouldNot(BeNil())
				nonNull, ok := ifArg.Type().(*graphql.NonNull)
				Expect(ok).Should(BeTrue())
				Expect(nonNull.InnerType()).Should(BeIdenticalTo(graphql.Boolean()))
			}
		})

		It("provides @deprecated with a default reason", func() {
			directive := graphql.DeprecatedDirective()
			reason := directive.Args().ForName("reason")
			Expect(reason).ShouldNot(BeNil())
			Expect(reason.Type()).Should(BeIdenticalTo(graphql.String()))

			value, ok := reason.Default().Resolve(nil)
			Expect(ok).Should(BeTrue())
			Expect(value).Should(Equal(graphql.DefaultDeprecationReason))
		})

		It("recognizes the specification directives by identity", func() {
			Expect(graphql.IsSpecifiedDirective(graphql.SkipDirective())).Should(BeTrue())
			Expect(graphql.IsSpecifiedDirective(graphql.IncludeDirective())).Should(BeTrue())
			Expect(graphql.IsSpecifiedDirective(graphql.DeprecatedDirective())).Should(BeTrue())

			lookalike := graphql.MustNewDirective(&graphql.DirectiveConfig{
				Name:      "skip",
				Locations: []graphql.DirectiveLocation{graphql.DirectiveLocationField},
			})
			Expect(graphql.IsSpecifiedDirective(lookalike)).Should(BeFalse())
		})
	})
})
