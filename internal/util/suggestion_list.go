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

package util

import (
	"math"
	"sort"
	"strings"
)

// SuggestionList, given an invalid input string and a list of valid options, returns a filtered
// list of the valid options sorted by their similarity with the input. Ties are broken
// lexicographically so the result is stable for a given option set.
func SuggestionList(input string, options []string) []string {
	if len(options) == 0 {
		return nil
	}

	type scoredOption struct {
		option   string
		distance int
	}

	var candidates []scoredOption
	inputThreshold := float64(len(input)) / 2.0
	for _, option := range options {
		distance := lexicalDistance(input, option)
		threshold := math.Max(math.Max(inputThreshold, float64(len(option))/2.0), 1)
		if float64(distance) <= threshold {
			candidates = append(candidates, scoredOption{option, distance})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].distance != candidates[j].distance {
			return candidates[i].distance < candidates[j].distance
		}
		return candidates[i].option < candidates[j].option
	})

	suggestions := make([]string, len(candidates))
	for i, candidate := range candidates {
		suggestions[i] = candidate.option
	}
	return suggestions
}

// lexicalDistance computes the editing distance between strings a and b.
//
// The distance between two strings is the minimum number of edits needed to transform one into
// the other, where an edit is an insertion, deletion, or substitution of a single character, or a
// swap of two adjacent characters.
//
// A custom alteration from Damerau-Levenshtein counts any case change as a single edit, which
// helps identify mis-cased values with an edit distance of 1.
func lexicalDistance(a, b string) int {
	if a == b {
		return 0
	}

	lowerA := strings.ToLower(a)
	lowerB := strings.ToLower(b)
	if lowerA == lowerB {
		return 1
	}

	lenA := len(lowerA)
	lenB := len(lowerB)
	d := make([][]int, lenA+1)
	for i := 0; i <= lenA; i++ {
		d[i] = make([]int, lenB+1)
		d[i][0] = i
	}
	for j := 1; j <= lenB; j++ {
		d[0][j] = j
	}

	for i := 1; i <= lenA; i++ {
		for j := 1; j <= lenB; j++ {
			cost := 0
			if lowerA[i-1] != lowerB[j-1] {
				cost = 1
			}

			min := d[i-1][j] + 1
			if deletion := d[i][j-1] + 1; deletion < min {
				min = deletion
			}
			if substitution := d[i-1][j-1] + cost; substitution < min {
				min = substitution
			}
			if i > 1 && j > 1 && lowerA[i-1] == lowerB[j-2] && lowerA[i-2] == lowerB[j-1] {
				if swap := d[i-2][j-2] + cost; swap < min {
					min = swap
				}
			}

			d[i][j] = min
		}
	}

	return d[lenA][lenB]
}
