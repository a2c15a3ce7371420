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
	"errors"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/selenegql/selene/graphql"
	"github.com/selenegql/selene/internal/testutil"
)

var _ = Describe("Error", func() {
	It("renders a plain error as its message", func() {
		err := graphql.NewError("something went wrong")
		Expect(err.Error()).Should(Equal("something went wrong"))
	})

	It("renders the operation and kind around the message", func() {
		err := graphql.NewError("something went wrong",
			graphql.Op("sdl.BuildSchema"), graphql.ErrKindValidation)
		Expect(err.Error()).Should(
			Equal("sdl.BuildSchema: something went wrong: validation error"))
	})

	It("takes a location from a source position", func() {
		err := graphql.NewError("bad syntax element", &ast.Position{Line: 2, Column: 4})
		Expect(err).Should(testutil.MatchGraphQLError(
			testutil.MessageEqual("bad syntax element"),
			testutil.LocationEqual(graphql.ErrorLocation{Line: 2, Column: 4}),
		))
	})

	Describe("wrapping", func() {
		It("exposes the underlying error to errors.Is", func() {
			cause := errors.New("connection reset")
			err := graphql.WrapError(cause, "failed to decode variable values")
			Expect(errors.Is(err, cause)).Should(BeTrue())
			Expect(err.Error()).Should(
				Equal("failed to decode variable values: connection reset"))
		})

		It("formats the wrapping message", func() {
			cause := errors.New("boom")
			err := graphql.WrapErrorf(cause, "stage %d failed", 3)
			Expect(err.Error()).Should(Equal("stage 3 failed: boom"))
		})

		It("propagates kind and locations from a wrapped error", func() {
			inner := graphql.NewError("inner problem",
				graphql.ErrKindCoercion,
				graphql.ErrorLocation{Line: 6, Column: 7})
			outer := graphql.WrapError(inner, "outer context")

			Expect(outer).Should(testutil.MatchGraphQLError(
				testutil.MessageEqual("outer context"),
				testutil.KindIs(graphql.ErrKindCoercion),
				testutil.LocationsConsistOf([]graphql.ErrorLocation{
					{Line: 6, Column: 7},
				}),
			))
		})
	})

	Describe("JSON serialization", func() {
		It("serializes message, locations, path and extensions", func() {
			var path graphql.ResponsePath
			path.AppendFieldName("a")
			path.AppendIndex(0)

			err := graphql.NewError("bad input value",
				[]graphql.ErrorLocation{{Line: 6, Column: 7}},
				path,
				graphql.ErrorExtensions{"code": "BAD_USER_INPUT"})

			Expect(err).Should(testutil.SerializeToJSONAs(map[string]interface{}{
				"message": "bad input value",
				"locations": []interface{}{
					map[string]interface{}{"line": 6, "column": 7},
				},
				"path":       []interface{}{"a", 0},
				"extensions": map[string]interface{}{"code": "BAD_USER_INPUT"},
			}))
		})

		It("omits absent fields", func() {
			Expect(graphql.NewError("just a message")).Should(
				testutil.SerializeToJSONAs(map[string]interface{}{
					"message": "just a message",
				}))
		})
	})
})

var _ = Describe("ResponsePath", func() {
	It("renders field names and list indices", func() {
		var path graphql.ResponsePath
		Expect(path.Empty()).Should(BeTrue())

		path.AppendFieldName("a")
		path.AppendIndex(0)
		path.AppendFieldName("b")
		Expect(path.Empty()).Should(BeFalse())
		Expect(path.String()).Should(Equal("a[0].b"))
		Expect(path.Keys()).Should(Equal([]interface{}{"a", 0, "b"}))
	})

	It("clones into an independent path", func() {
		var path graphql.ResponsePath
		path.AppendFieldName("a")

		clone := path.Clone()
		clone.AppendIndex(1)
		Expect(path.String()).Should(Equal("a"))
		Expect(clone.String()).Should(Equal("a[1]"))
	})
})

var _ = Describe("Errors", func() {
	It("starts without any error", func() {
		errs := graphql.NoErrors()
		Expect(errs.HaveOccurred()).Should(BeFalse())
	})

	It("accumulates constructed and appended errors", func() {
		errs := graphql.NoErrors()
		errs.Emplace("first problem", graphql.ErrKindCoercion)
		errs.Append(graphql.NewError("second problem"))

		more := graphql.ErrorsOf("third problem")
		errs.AppendErrors(more)

		Expect(errs.HaveOccurred()).Should(BeTrue())
		Expect(errs).Should(testutil.ConsistOfGraphQLErrors(
			testutil.MatchGraphQLError(
				testutil.MessageEqual("first problem"),
				testutil.KindIs(graphql.ErrKindCoercion),
			),
			testutil.MatchGraphQLError(testutil.MessageEqual("second problem")),
			testutil.MatchGraphQLError(testutil.MessageEqual("third problem")),
		))
	})
})
