// StreamRush - Video Discovery Services
// Copyright 2026 StreamRush contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sudanva21/StreamRush2.0

package recommend

import "testing"

func TestTagsMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b string
		want bool
	}{
		{"live", "live", true},
		{"Live Performance", "live", true},
		{"live", "LIVE PERFORMANCE", true},
		{"concert", "Concerts", true},
		{"rock", "jazz", false},
		{"guitar", "bass", false},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			t.Parallel()
			if got := TagsMatch(tt.a, tt.b); got != tt.want {
				t.Errorf("TagsMatch(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestCountTagMatches(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		candidate []string
		reference []string
		want      int
	}{
		{"no candidate tags", nil, []string{"live"}, 0},
		{"no reference tags", []string{"live"}, nil, 0},
		{"single match", []string{"Live Performance"}, []string{"live", "concert"}, 1},
		// "live concert" contains both reference tags but counts once.
		{"multi-reference tag counts once", []string{"live concert"}, []string{"live", "concert"}, 1},
		{"each candidate tag counts", []string{"live", "LIVE", "concert"}, []string{"live", "concert"}, 3},
		{"reference contains candidate", []string{"art"}, []string{"martial arts"}, 1},
		{"partial overlap only", []string{"live", "studio"}, []string{"live", "concert"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := CountTagMatches(tt.candidate, tt.reference); got != tt.want {
				t.Errorf("CountTagMatches(%v, %v) = %d, want %d", tt.candidate, tt.reference, got, tt.want)
			}
		})
	}
}

// TestCountTagMatches_ShortTagFalsePositives pins the current substring
// behavior: single-letter and empty tags match almost anything. This looks
// like a defect in the ranking heuristic but is kept so related lists stay
// identical to the web client's. Change deliberately, not as a side effect.
func TestCountTagMatches_ShortTagFalsePositives(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		candidate []string
		reference []string
		want      int
	}{
		{"single letter candidate tag", []string{"a"}, []string{"jazz"}, 1},
		{"single letter reference tag", []string{"guitar", "drums", "piano"}, []string{"a"}, 2},
		{"empty candidate tag", []string{""}, []string{"jazz"}, 1},
		{"empty reference tag", []string{"rock", "metal"}, []string{""}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := CountTagMatches(tt.candidate, tt.reference); got != tt.want {
				t.Errorf("CountTagMatches(%v, %v) = %d, want %d (preserved false positive)",
					tt.candidate, tt.reference, got, tt.want)
			}
		})
	}
}
