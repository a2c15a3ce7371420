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

	"github.com/selenegql/selene/graphql/values"
)

var _ = Describe("Path", func() {
	It("treats the nil path as the root", func() {
		var path *values.Path
		Expect(path.Empty()).Should(BeTrue())
		Expect(path.Keys()).Should(BeEmpty())
		Expect(path.String()).Should(Equal(""))
	})

	It("renders field and index segments", func() {
		var root *values.Path
		path := root.WithField("a").WithIndex(0).WithField("b")
		Expect(path.Empty()).Should(BeFalse())
		Expect(path.String()).Should(Equal("value.a[0].b"))
		Expect(path.Keys()).Should(Equal([]interface{}{"a", 0, "b"}))
	})

	It("extends a prefix without affecting its sibling branches", func() {
		var root *values.Path
		prefix := root.WithField("items")
		first := prefix.WithIndex(0)
		second := prefix.WithIndex(1)

		Expect(first.String()).Should(Equal("value.items[0]"))
		Expect(second.String()).Should(Equal("value.items[1]"))
		Expect(prefix.String()).Should(Equal("value.items"))
	})
})
