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

package sdl_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/selenegql/selene/graphql"
	"github.com/selenegql/selene/graphql/sdl"
	"github.com/selenegql/selene/internal/testutil"
)

var _ = Describe("ExtendSchema", func() {
	It("rejects a nil schema", func() {
		_, err := sdl.ExtendSchema(nil, parseSDL(`scalar Foo`))
		Expect(err).Should(MatchError("Must provide a schema to extend."))
	})

	It("returns the original schema for an empty document", func() {
		schema := sdl.MustBuildSchema(parseSDL(`
			type Query {
				hello: String
			}
		`))

		extended, err := sdl.ExtendSchema(schema, nil)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(extended).Should(BeIdenticalTo(schema))

		extended, err = sdl.ExtendSchema(schema, parseSDL("# nothing to see"))
		Expect(err).ShouldNot(HaveOccurred())
		Expect(extended).Should(BeIdenticalTo(schema))
	})

	It("adds fields to an object without mutating the original schema", func() {
		schema := sdl.MustBuildSchema(parseSDL(`
			type Query {
				hello: String
			}
		`))

		extended, err := sdl.ExtendSchema(schema, parseSDL(`
			extend type Query {
				world: String
			}
		`))
		Expect(err).ShouldNot(HaveOccurred())

		query := extended.Query()
		Expect(query).ShouldNot(BeIdenticalTo(schema.Query()))
		Expect(query.Fields().ForName("hello")).ShouldNot(BeNil())
		Expect(query.Fields().ForName("world")).ShouldNot(BeNil())

		// The original schema keeps its original shape.
		Expect(schema.Query().Fields()).Should(HaveLen(1))
	})

	It("replaces types transitively", func() {
		schema := sdl.MustBuildSchema(parseSDL(`
			type Query {
				article: Article
			}

			type Article {
				title: String
			}
		`))

		extended, err := sdl.ExtendSchema(schema, parseSDL(`
			extend type Article {
				body: String
			}
		`))
		Expect(err).ShouldNot(HaveOccurred())

		newArticle := extended.TypeMap().Lookup("Article").(*graphql.Object)
		oldArticle := schema.TypeMap().Lookup("Article").(*graphql.Object)
		Expect(newArticle).ShouldNot(BeIdenticalTo(oldArticle))
		Expect(newArticle.Fields().ForName("body")).ShouldNot(BeNil())

		// Query holds a field of type Article, so it is rebuilt around the new instance.
		Expect(extended.Query().Fields().ForName("article").Type()).Should(
			BeIdenticalTo(newArticle))
	})

	It("keeps builtin scalars and specification directives by identity", func() {
		schema := sdl.MustBuildSchema(parseSDL(`
			type Query {
				hello: String
			}
		`))

		extended, err := sdl.ExtendSchema(schema, parseSDL(`
			extend type Query {
				count: Int
			}
		`))
		Expect(err).ShouldNot(HaveOccurred())

		Expect(extended.Query().Fields().ForName("count").Type()).Should(
			BeIdenticalTo(graphql.Int()))
		Expect(extended.Directives().ForName("skip")).Should(
			BeIdenticalTo(graphql.SkipDirective()))
	})

	It("adds enum values, union members and interface implementations", func() {
		schema := sdl.MustBuildSchema(parseSDL(`
			type Query {
				pet: Pet
				state: State
			}

			interface Named {
				name: String
			}

			type Dog {
				name: String
			}

			union Pet = Dog

			enum State {
				OPEN
			}
		`))

		extended, err := sdl.ExtendSchema(schema, parseSDL(`
			type Cat {
				name: String
			}

			extend union Pet = Cat
			extend type Dog implements Named

			extend enum State {
				CLOSED
			}
		`))
		Expect(err).ShouldNot(HaveOccurred())

		pet := extended.TypeMap().Lookup("Pet").(*graphql.Union)
		memberNames := make([]string, 0, 2)
		for _, member := range pet.PossibleTypes() {
			memberNames = append(memberNames, member.Name())
		}
		Expect(memberNames).Should(ConsistOf("Dog", "Cat"))

		dog := extended.TypeMap().Lookup("Dog").(*graphql.Object)
		named := extended.TypeMap().Lookup("Named").(*graphql.Interface)
		Expect(dog.Interfaces()).Should(ConsistOf(named))

		state := extended.TypeMap().Lookup("State").(*graphql.Enum)
		Expect(state.Values().ForName("CLOSED")).ShouldNot(BeNil())
	})

	It("adds fields to input objects", func() {
		schema := sdl.MustBuildSchema(parseSDL(`
			type Query {
				search(filter: Filter): String
			}

			input Filter {
				term: String
			}
		`))

		extended, err := sdl.ExtendSchema(schema, parseSDL(`
			extend input Filter {
				first: Int = 10
			}
		`))
		Expect(err).ShouldNot(HaveOccurred())

		filter := extended.TypeMap().Lookup("Filter").(*graphql.InputObject)
		first := filter.Fields().ForName("first")
		Expect(first).ShouldNot(BeNil())
		defaultValue, ok := resolveDefault(first.Default(), first.Type())
		Expect(ok).Should(BeTrue())
		Expect(defaultValue).Should(Equal(10))
	})

	It("accepts new types and directives, including extensions of same-document types", func() {
		schema := sdl.MustBuildSchema(parseSDL(`
			type Query {
				hello: String
			}
		`))

		extended, err := sdl.ExtendSchema(schema, parseSDL(`
			type Widget {
				id: ID!
			}

			extend type Widget {
				label: String
			}

			extend type Query {
				widget: Widget
			}

			directive @tag(name: String!) on FIELD_DEFINITION
		`))
		Expect(err).ShouldNot(HaveOccurred())

		widget := extended.TypeMap().Lookup("Widget").(*graphql.Object)
		Expect(widget.Fields().ForName("id")).ShouldNot(BeNil())
		Expect(widget.Fields().ForName("label")).ShouldNot(BeNil())
		Expect(extended.Query().Fields().ForName("widget").Type()).Should(
			BeIdenticalTo(widget))
		Expect(extended.Directives().ForName("tag")).ShouldNot(BeNil())
	})

	It("installs root operation types from schema extensions", func() {
		schema := sdl.MustBuildSchema(parseSDL(`
			type Query {
				hello: String
			}
		`))

		extended, err := sdl.ExtendSchema(schema, parseSDL(`
			type Mutation {
				bump: Int
			}

			extend schema {
				mutation: Mutation
			}
		`))
		Expect(err).ShouldNot(HaveOccurred())
		Expect(extended.Mutation()).ShouldNot(BeNil())
		Expect(extended.Mutation().Name()).Should(Equal("Mutation"))
		Expect(schema.Mutation()).Should(BeNil())
	})

	Describe("validation", func() {
		var schema *graphql.Schema

		BeforeEach(func() {
			schema = sdl.MustBuildSchema(parseSDL(`
				type Query {
					hello: String
					pet: Pet
				}

				interface Named {
					name: String
				}

				type Dog implements Named {
					name: String
				}

				union Pet = Dog

				enum State {
					OPEN
				}
			`))
		})

		It("rejects extensions of undefined types", func() {
			_, err := sdl.ExtendSchema(schema, parseSDL(`
				extend type Missing {
					value: Int
				}
			`))
			Expect(err).Should(testutil.MatchGraphQLError(
				testutil.MessageEqual(`Cannot extend type "Missing" because it is not defined.`),
				testutil.KindIs(graphql.ErrKindValidation),
			))
		})

		It("rejects extensions with a mismatched kind", func() {
			_, err := sdl.ExtendSchema(schema, parseSDL(`
				extend interface Query {
					value: Int
				}
			`))
			Expect(err).Should(testutil.MatchGraphQLError(
				testutil.MessageEqual(`Cannot extend object type "Query" as interface.`),
				testutil.KindIs(graphql.ErrKindValidation),
			))
		})

		It("rejects new types colliding with existing ones", func() {
			_, err := sdl.ExtendSchema(schema, parseSDL(`
				type Dog {
					name: String
				}
			`))
			Expect(err).Should(testutil.MatchGraphQLError(
				testutil.MessageEqual(`Type "Dog" already exists in the schema. It cannot also `+
					`be defined in this type definition.`),
				testutil.KindIs(graphql.ErrKindValidation),
			))
		})

		It("rejects redefinitions of existing directives", func() {
			_, err := sdl.ExtendSchema(schema, parseSDL(`
				directive @skip(if: Boolean!) on FIELD
			`))
			Expect(err).Should(testutil.MatchGraphQLError(
				testutil.MessageEqual(`Directive "@skip" already exists in the schema. It `+
					`cannot be redefined.`),
				testutil.KindIs(graphql.ErrKindValidation),
			))
		})

		It("rejects duplicate fields introduced by an extension", func() {
			_, err := sdl.ExtendSchema(schema, parseSDL(`
				extend type Query {
					hello: String
				}
			`))
			Expect(err).Should(testutil.MatchGraphQLError(
				testutil.MessageEqual(`Field "Query.hello" already exists in the schema. It `+
					`cannot also be defined in this type extension.`),
				testutil.KindIs(graphql.ErrKindValidation),
			))
		})

		It("rejects duplicate fields when extending a same-document type", func() {
			_, err := sdl.ExtendSchema(schema, parseSDL(`
				type Widget {
					id: ID!
				}

				extend type Widget {
					id: ID!
				}
			`))
			Expect(err).Should(testutil.MatchGraphQLError(
				testutil.MessageEqual(`Field "Widget.id" already exists in the schema. It `+
					`cannot also be defined in this type extension.`),
				testutil.KindIs(graphql.ErrKindValidation),
			))
		})

		It("rejects duplicate enum values introduced by an extension", func() {
			_, err := sdl.ExtendSchema(schema, parseSDL(`
				extend enum State {
					OPEN
				}
			`))
			Expect(err).Should(testutil.MatchGraphQLError(
				testutil.MessageEqual(`Enum value "State.OPEN" already exists in the schema. `+
					`It cannot also be defined in this type extension.`),
				testutil.KindIs(graphql.ErrKindValidation),
			))
		})

		It("rejects duplicate union members introduced by an extension", func() {
			_, err := sdl.ExtendSchema(schema, parseSDL(`
				extend union Pet = Dog
			`))
			Expect(err).Should(testutil.MatchGraphQLError(
				testutil.MessageEqual(`Union member "Dog" already exists in union "Pet". It `+
					`cannot also be defined in this type extension.`),
				testutil.KindIs(graphql.ErrKindValidation),
			))
		})

		It("rejects duplicate interface implementations introduced by an extension", func() {
			_, err := sdl.ExtendSchema(schema, parseSDL(`
				extend type Dog implements Named
			`))
			Expect(err).Should(testutil.MatchGraphQLError(
				testutil.MessageEqual(`Type "Dog" already implements "Named". It cannot also `+
					`be implemented in this type extension.`),
				testutil.KindIs(graphql.ErrKindValidation),
			))
		})

		It("rejects unresolvable references in extension blocks", func() {
			_, err := sdl.ExtendSchema(schema, parseSDL(`
				extend type Query {
					widget: Widget
				}
			`))
			Expect(err).Should(testutil.MatchGraphQLError(
				testutil.MessageContainSubstring(`Unknown type "Widget".`),
				testutil.KindIs(graphql.ErrKindValidation),
			))
		})
	})
})
