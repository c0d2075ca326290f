// StreamRush - Video Discovery Services
// Copyright 2026 StreamRush contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sudanva21/StreamRush2.0

package recommend

import "strings"

// TagsMatch reports whether two tags fuzzily match: after lowercasing,
// either one contains the other.
//
// Short tags match broadly ("a" matches "jazz", "" matches everything).
func TagsMatch(a, b string) bool {
	return containsEither(strings.ToLower(a), strings.ToLower(b))
}

// CountTagMatches counts candidate tags that match at least one reference tag.
// Each candidate tag counts once regardless of how many reference tags it matches.
func CountTagMatches(candidateTags, referenceTags []string) int {
	return countLoweredMatches(candidateTags, lowerTags(referenceTags))
}

func countLoweredMatches(candidateTags, refLower []string) int {
	if len(candidateTags) == 0 || len(refLower) == 0 {
		return 0
	}

	count := 0
	for _, tag := range candidateTags {
		t := strings.ToLower(tag)
		for _, ref := range refLower {
			if containsEither(t, ref) {
				count++
				break
			}
		}
	}
	return count
}

func containsEither(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}

func lowerTags(tags []string) []string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = strings.ToLower(t)
	}
	return out
}
