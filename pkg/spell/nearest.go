// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package spell

import (
	"strings"
)

// maxDistance is the largest edit distance still considered a misspelling.
const maxDistance = 2

// Nearest returns the candidate closest to word, ignoring case, or "" if
// none is close enough to be a likely misspelling. Ties go to the earlier
// candidate.
func Nearest(word string, candidates []string) string {
	var best string
	bestDistance := maxDistance + 1

	lowerWord := strings.ToLower(word)
	for _, candidate := range candidates {
		d := distance(lowerWord, strings.ToLower(candidate))
		if d < bestDistance && d < len([]rune(word)) {
			best = candidate
			bestDistance = d
		}
	}
	return best
}

// distance is the Levenshtein distance between a and b, counted in runes.
func distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
