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

var _ = Describe("Introspection types", func() {
	It("exposes the full set of introspection types", func() {
		types := graphql.IntrospectionTypes()
		Expect(types).Should(HaveLen(8))

		names := make([]string, 0, len(types))
		for _, t := range types {
			names = append(names, t.(graphql.TypeWithName).Name())
		}
		Expect(names).Should(ConsistOf(
			"__Schema", "__Type", "__Field", "__InputValue", "__EnumValue", "__Directive",
			"__TypeKind", "__DirectiveLocation",
		))
	})

	It("links the type graph through __Type", func() {
		fields := graphql.TypeType().Fields()

		kind := fields.ForName("kind")
		Expect(kind).ShouldNot(BeNil())
		nonNullKind, ok := kind.Type().(*graphql.NonNull)
		Expect(ok).Should(BeTrue())
		Expect(nonNullKind.InnerType()).Should(BeIdenticalTo(graphql.TypeKindEnum()))

		ofType := fields.ForName("ofType")
		Expect(ofType).ShouldNot(BeNil())
		Expect(ofType.Type()).Should(BeIdenticalTo(graphql.TypeType()))

		typeFields := fields.ForName("fields")
		Expect(typeFields).ShouldNot(BeNil())
		list, ok := typeFields.Type().(*graphql.List)
		Expect(ok).Should(BeTrue())
		nonNullField, ok := list.ElementType().(*graphql.NonNull)
		Expect(ok).Should(BeTrue())
		Expect(nonNullField.InnerType()).Should(BeIdenticalTo(graphql.FieldType()))

		// Deprecated members are hidden unless asked for.
		includeDeprecated := typeFields.Args().ForName("includeDeprecated")
		Expect(includeDeprecated).ShouldNot(BeNil())
		Expect(includeDeprecated.Type()).Should(BeIdenticalTo(graphql.Boolean()))
		value, ok := includeDeprecated.Default().Resolve(nil)
		Expect(ok).Should(BeTrue())
		Expect(value).Should(Equal(false))

		Expect(fields.ForName("isOneOf").Type()).Should(BeIdenticalTo(graphql.Boolean()))
	})

	It("describes the roots and directives through __Schema", func() {
		fields := graphql.SchemaType().Fields()

		queryType := fields.ForName("queryType")
		Expect(queryType).ShouldNot(BeNil())
		nonNull, ok := queryType.Type().(*graphql.NonNull)
		Expect(ok).Should(BeTrue())
		Expect(nonNull.InnerType()).Should(BeIdenticalTo(graphql.TypeType()))

		// Mutation and subscription roots are optional.
		Expect(fields.ForName("mutationType").Type()).Should(BeIdenticalTo(graphql.TypeType()))
		Expect(fields.ForName("subscriptionType").Type()).Should(BeIdenticalTo(graphql.TypeType()))
		Expect(fields.ForName("directives")).ShouldNot(BeNil())
	})

	It("enumerates every type kind", func() {
		values := graphql.TypeKindEnum().Values()
		names := make([]string, 0, len(values))
		for _, value := range values {
			names = append(names, value.Name())
		}
		Expect(names).Should(Equal([]string{
			"SCALAR", "OBJECT", "INTERFACE", "UNION", "ENUM", "INPUT_OBJECT", "LIST", "NON_NULL",
		}))
	})

	It("enumerates every directive location", func() {
		values := graphql.DirectiveLocationEnumType().Values()
		Expect(values).Should(HaveLen(19))
		Expect(values.ForName("FIELD")).ShouldNot(BeNil())
		Expect(values.ForName("INPUT_FIELD_DEFINITION")).ShouldNot(BeNil())
	})

	It("recognizes introspection types by identity", func() {
		Expect(graphql.IntrospectionType("__Type")).Should(BeIdenticalTo(graphql.TypeType()))
		Expect(graphql.IntrospectionType("Query")).Should(BeNil())

		Expect(graphql.IsIntrospectionType(graphql.SchemaType())).Should(BeTrue())
		Expect(graphql.IsIntrospectionType(graphql.Int())).Should(BeFalse())

		lookalike := graphql.MustNewObject(&graphql.ObjectConfig{
			Name: "__Type",
			Fields: graphql.FieldsOf(
				graphql.MustNewField(&graphql.FieldConfig{Name: "name", Type: graphql.String()}),
			),
		})
		Expect(graphql.IsIntrospectionType(lookalike)).Should(BeFalse())
	})
})
