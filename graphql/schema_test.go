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

func simpleQueryType() *graphql.Object {
	return graphql.MustNewObject(&graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.FieldsOf(
			graphql.MustNewField(&graphql.FieldConfig{
				Name: "hello",
				Type: graphql.String(),
			}),
		),
	})
}

var _ = Describe("Schema", func() {
	Describe("Construction", func() {
		It("requires a query root type", func() {
			_, err := graphql.NewSchema(&graphql.SchemaConfig{})
			Expect(err).Should(MatchError("Schema must define a Query root type."))
		})

		It("tolerates a missing query root when validity is assumed", func() {
			schema, err := graphql.NewSchema(&graphql.SchemaConfig{
				AssumeValid: true,
			})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(schema.Query()).Should(BeNil())
		})

		It("defines root operation types", func() {
			query := simpleQueryType()
			mutation := graphql.MustNewObject(&graphql.ObjectConfig{
				Name: "Mutation",
				Fields: graphql.FieldsOf(
					graphql.MustNewField(&graphql.FieldConfig{
						Name: "setHello",
						Type: graphql.String(),
					}),
				),
			})

			schema := graphql.MustNewSchema(&graphql.SchemaConfig{
				Query:    query,
				Mutation: mutation,
			})
			Expect(schema.Query()).Should(BeIdenticalTo(query))
			Expect(schema.Mutation()).Should(BeIdenticalTo(mutation))
			Expect(schema.Subscription()).Should(BeNil())
		})

		It("surfaces a failing member resolution during construction", func() {
			broken := graphql.MustNewObject(&graphql.ObjectConfig{
				Name: "Query",
				Fields: func() (graphql.FieldList, error) {
					return nil, graphql.NewError("cannot resolve fields")
				},
			})

			_, err := graphql.NewSchema(&graphql.SchemaConfig{Query: broken})
			Expect(err).Should(MatchError("cannot resolve fields"))
		})

		It("defers a failing member resolution when validity is assumed", func() {
			broken := graphql.MustNewObject(&graphql.ObjectConfig{
				Name: "Query",
				Fields: func() (graphql.FieldList, error) {
					return nil, graphql.NewError("cannot resolve fields")
				},
			})

			schema, err := graphql.NewSchema(&graphql.SchemaConfig{
				Query:       broken,
				AssumeValid: true,
			})
			Expect(err).ShouldNot(HaveOccurred())
			// The failure surfaces on first use.
			Expect(schema.Query().Err()).Should(MatchError("cannot resolve fields"))
		})

		It("rejects distinct types with the same name", func() {
			typeA := graphql.MustNewScalar(&graphql.ScalarConfig{Name: "Foo"})
			typeB := graphql.MustNewScalar(&graphql.ScalarConfig{Name: "Foo"})

			_, err := graphql.NewSchema(&graphql.SchemaConfig{
				Query: simpleQueryType(),
				Types: []graphql.Type{typeA, typeB},
			})
			Expect(err).Should(MatchError(
				`Schema must contain uniquely named types but contains multiple types named "Foo".`))
		})
	})

	Describe("Type map", func() {
		It("includes types reachable from the roots", func() {
			image := graphql.MustNewObject(&graphql.ObjectConfig{
				Name: "Image",
				Fields: graphql.FieldsOf(
					graphql.MustNewField(&graphql.FieldConfig{
						Name: "url",
						Type: graphql.String(),
					}),
				),
			})
			article := graphql.MustNewObject(&graphql.ObjectConfig{
				Name: "Article",
				Fields: graphql.FieldsOf(
					graphql.MustNewField(&graphql.FieldConfig{
						Name: "image",
						Type: image,
					}),
				),
			})
			query := graphql.MustNewObject(&graphql.ObjectConfig{
				Name: "Query",
				Fields: graphql.FieldsOf(
					graphql.MustNewField(&graphql.FieldConfig{
						Name: "article",
						Type: article,
					}),
				),
			})

			schema := graphql.MustNewSchema(&graphql.SchemaConfig{Query: query})
			typeMap := schema.TypeMap()
			Expect(typeMap.Lookup("Query")).Should(BeIdenticalTo(query))
			Expect(typeMap.Lookup("Article")).Should(BeIdenticalTo(article))
			Expect(typeMap.Lookup("Image")).Should(BeIdenticalTo(image))
		})

		It("includes the built-in scalar and introspection types", func() {
			schema := graphql.MustNewSchema(&graphql.SchemaConfig{Query: simpleQueryType()})
			typeMap := schema.TypeMap()
			Expect(typeMap.Lookup("Int")).Should(BeIdenticalTo(graphql.Int()))
			Expect(typeMap.Lookup("Boolean")).Should(BeIdenticalTo(graphql.Boolean()))
			Expect(typeMap.Lookup("__Schema")).Should(BeIdenticalTo(graphql.SchemaType()))
			Expect(typeMap.Lookup("__Type")).Should(BeIdenticalTo(graphql.TypeType()))
			Expect(typeMap.Lookup("__TypeKind")).Should(BeIdenticalTo(graphql.TypeKindEnum()))
		})

		It("includes types referenced only by directive arguments", func() {
			length := graphql.MustNewScalar(&graphql.ScalarConfig{Name: "Length"})
			directive := graphql.MustNewDirective(&graphql.DirectiveConfig{
				Name:      "limit",
				Locations: []graphql.DirectiveLocation{graphql.DirectiveLocationField},
				Args: []graphql.ArgumentConfig{
					{Name: "max", Type: length},
				},
			})

			schema := graphql.MustNewSchema(&graphql.SchemaConfig{
				Query:      simpleQueryType(),
				Directives: graphql.DirectiveList{directive},
			})
			Expect(schema.TypeMap().Lookup("Length")).Should(BeIdenticalTo(length))
		})
	})

	Describe("Directives", func() {
		It("appends the specification directives", func() {
			schema := graphql.MustNewSchema(&graphql.SchemaConfig{Query: simpleQueryType()})
			directives := schema.Directives()
			Expect(directives.ForName("skip")).ShouldNot(BeNil())
			Expect(directives.ForName("include")).ShouldNot(BeNil())
			Expect(directives.ForName("deprecated")).ShouldNot(BeNil())
		})

		It("lets a user-supplied directive shadow a specification directive", func() {
			mySkip := graphql.MustNewDirective(&graphql.DirectiveConfig{
				Name:      "skip",
				Locations: []graphql.DirectiveLocation{graphql.DirectiveLocationField},
			})

			schema := graphql.MustNewSchema(&graphql.SchemaConfig{
				Query:      simpleQueryType(),
				Directives: graphql.DirectiveList{mySkip},
			})
			Expect(schema.Directives().ForName("skip")).Should(BeIdenticalTo(mySkip))
			Expect(schema.Directives().ForName("include")).ShouldNot(BeNil())
		})
	})

	Describe("PossibleTypes", func() {
		It("returns the members of a union", func() {
			dog := graphql.MustNewObject(&graphql.ObjectConfig{
				Name: "Dog",
				Fields: graphql.FieldsOf(
					graphql.MustNewField(&graphql.FieldConfig{Name: "name", Type: graphql.String()}),
				),
			})
			cat := graphql.MustNewObject(&graphql.ObjectConfig{
				Name: "Cat",
				Fields: graphql.FieldsOf(
					graphql.MustNewField(&graphql.FieldConfig{Name: "name", Type: graphql.String()}),
				),
			})
			pet := graphql.MustNewUnion(&graphql.UnionConfig{
				Name:    "Pet",
				Members: graphql.MembersOf(dog, cat),
			})
			query := graphql.MustNewObject(&graphql.ObjectConfig{
				Name: "Query",
				Fields: graphql.FieldsOf(
					graphql.MustNewField(&graphql.FieldConfig{Name: "pet", Type: pet}),
				),
			})

			schema := graphql.MustNewSchema(&graphql.SchemaConfig{Query: query})
			Expect(schema.PossibleTypes(pet)).Should(ConsistOf(dog, cat))
		})

		It("returns the objects implementing an interface", func() {
			named := graphql.MustNewInterface(&graphql.InterfaceConfig{
				Name: "Named",
				Fields: graphql.FieldsOf(
					graphql.MustNewField(&graphql.FieldConfig{Name: "name", Type: graphql.String()}),
				),
			})
			dog := graphql.MustNewObject(&graphql.ObjectConfig{
				Name: "Dog",
				Fields: graphql.FieldsOf(
					graphql.MustNewField(&graphql.FieldConfig{Name: "name", Type: graphql.String()}),
				),
				Interfaces: graphql.InterfacesOf(named),
			})
			query := graphql.MustNewObject(&graphql.ObjectConfig{
				Name: "Query",
				Fields: graphql.FieldsOf(
					graphql.MustNewField(&graphql.FieldConfig{Name: "dog", Type: dog}),
				),
			})

			schema := graphql.MustNewSchema(&graphql.SchemaConfig{Query: query})
			Expect(schema.PossibleTypes(named)).Should(ConsistOf(dog))
		})
	})

	Describe("TypeFromAST", func() {
		var schema *graphql.Schema

		BeforeEach(func() {
			schema = graphql.MustNewSchema(&graphql.SchemaConfig{Query: simpleQueryType()})
		})

		It("resolves a named type reference", func() {
			Expect(schema.TypeFromAST(&ast.Type{NamedType: "Query"})).
				Should(BeIdenticalTo(schema.Query()))
			Expect(schema.TypeFromAST(&ast.Type{NamedType: "String"})).
				Should(BeIdenticalTo(graphql.String()))
		})

		It("wraps list and non-null references", func() {
			t := schema.TypeFromAST(&ast.Type{
				Elem:    &ast.Type{NamedType: "String", NonNull: true},
				NonNull: true,
			})
			nonNullList, ok := t.(*graphql.NonNull)
			Expect(ok).Should(BeTrue())
			list, ok := nonNullList.InnerType().(*graphql.List)
			Expect(ok).Should(BeTrue())
			nonNullString, ok := list.ElementType().(*graphql.NonNull)
			Expect(ok).Should(BeTrue())
			Expect(nonNullString.InnerType()).Should(BeIdenticalTo(graphql.String()))
		})

		It("returns nil for an unknown name", func() {
			Expect(schema.TypeFromAST(&ast.Type{NamedType: "Unknown"})).Should(BeNil())
			Expect(schema.TypeFromAST(&ast.Type{Elem: &ast.Type{NamedType: "Unknown"}})).Should(BeNil())
			Expect(schema.TypeFromAST(nil)).Should(BeNil())
		})
	})
})
