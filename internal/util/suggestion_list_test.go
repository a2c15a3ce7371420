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

package util_test

import (
	"github.com/selenegql/selene/internal/util"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("SuggestionList", func() {
	It("returns results when input is empty", func() {
		Expect(util.SuggestionList("", []string{"a"})).Should(Equal([]string{"a"}))
	})

	It("returns empty array when there are no options", func() {
		Expect(util.SuggestionList("input", []string{})).Should(BeEmpty())
	})

	It("returns options with small lexical distance", func() {
		Expect(util.SuggestionList("greenish", []string{"green"})).Should(Equal([]string{"green"}))
		Expect(util.SuggestionList("green", []string{"greenish"})).Should(Equal([]string{"greenish"}))
	})

	It("rejects options with distance that exceeds threshold", func() {
		Expect(util.SuggestionList("aaaa", []string{"aaab"})).Should(Equal([]string{"aaab"}))
		Expect(util.SuggestionList("aaaa", []string{"aabb"})).Should(Equal([]string{"aabb"}))
		Expect(util.SuggestionList("aaaa", []string{"abbb"})).Should(BeEmpty())
		Expect(util.SuggestionList("ab", []string{"ca"})).Should(BeEmpty())
	})

	It("considers case changes as a single edit", func() {
		// Though all 3 characters in "ABC" differ from "abc", its distance (1) is lower than the
		// distance to "a" (2) because a case change is specially treated as a single edit.
		Expect(util.SuggestionList("abc", []string{"a", "ABC"})).Should(Equal([]string{"ABC"}))
	})

	It("considers a swap of two adjacent characters as distance 1", func() {
		Expect(util.SuggestionList("agr", []string{"arg"})).Should(Equal([]string{"arg"}))
		Expect(util.SuggestionList("214365879", []string{"123456789"})).
			Should(Equal([]string{"123456789"}))
	})

	It("sorts results by distance", func() {
		// "a" is dropped: its distance (2) exceeds the threshold (1.5).
		Expect(util.SuggestionList("abc", []string{"a", "ab", "abc"})).
			Should(Equal([]string{"abc", "ab"}))
	})

	It("breaks distance ties lexicographically", func() {
		Expect(util.SuggestionList("ab", []string{"ad", "ac"})).Should(Equal([]string{"ac", "ad"}))
	})
})
