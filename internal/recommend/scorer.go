// StreamRush - Video Discovery Services
// Copyright 2026 StreamRush contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sudanva21/StreamRush2.0

package recommend

import (
	"math"
	"sort"
	"time"

	"github.com/sudanva21/StreamRush2.0/internal/models"
)

// Score weights. These match the web client and must not be tuned.
const (
	CategoryMatchWeight = 50.0
	UploaderMatchWeight = 30.0
	TagMatchWeight      = 20.0
	ViewsWeight         = 5.0
	LikesWeight         = 3.0
	FreshBonus          = 10.0
	RecentBonus         = 5.0
	SubscriptionBonus   = 25.0
)

// Recency buckets in days.
const (
	FreshWindowDays  = 7.0
	RecentWindowDays = 30.0
)

// DefaultLimit is the number of related videos shown on the watch page.
const DefaultLimit = 15

// Clock returns the current time.
type Clock func() time.Time

// Scored pairs a video with its computed score.
type Scored struct {
	Video models.Video `json:"video"`
	Score float64      `json:"score"`
}

// Scorer ranks candidates against an injectable clock.
type Scorer struct {
	now Clock
}

// NewScorer creates a scorer. A nil clock uses time.Now.
func NewScorer(clock Clock) *Scorer {
	if clock == nil {
		clock = time.Now
	}
	return &Scorer{now: clock}
}

// Rank returns up to limit candidates ordered by descending score.
func (s *Scorer) Rank(reference *models.Video, candidates []models.Video, subs models.Subscriptions, limit int) []models.Video {
	return Rank(reference, candidates, subs, s.now(), limit)
}

// Explain is Rank with the scores attached.
func (s *Scorer) Explain(reference *models.Video, candidates []models.Video, subs models.Subscriptions, limit int) []Scored {
	return Explain(reference, candidates, subs, s.now(), limit)
}

// Rank scores every candidate except the reference itself, sorts by
// descending score (stable), and returns the first limit videos.
// A nil reference or a limit <= 0 yields an empty, non-nil result.
func Rank(reference *models.Video, candidates []models.Video, subs models.Subscriptions, now time.Time, limit int) []models.Video {
	scored := Explain(reference, candidates, subs, now, limit)
	out := make([]models.Video, len(scored))
	for i := range scored {
		out[i] = scored[i].Video
	}
	return out
}

// Explain returns the ranked candidates with their scores.
func Explain(reference *models.Video, candidates []models.Video, subs models.Subscriptions, now time.Time, limit int) []Scored {
	if reference == nil || limit <= 0 {
		return []Scored{}
	}

	refTags := lowerTags(reference.Tags)
	scored := make([]Scored, 0, len(candidates))
	for i := range candidates {
		c := &candidates[i]
		if c.ID == reference.ID {
			continue
		}
		scored = append(scored, Scored{
			Video: *c,
			Score: score(reference, refTags, c, subs, now),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}

// Score computes a single candidate's score against the reference.
func Score(reference, candidate *models.Video, subs models.Subscriptions, now time.Time) float64 {
	return score(reference, lowerTags(reference.Tags), candidate, subs, now)
}

func score(ref *models.Video, refTags []string, v *models.Video, subs models.Subscriptions, now time.Time) float64 {
	var total float64

	if v.Category == ref.Category {
		total += CategoryMatchWeight
	}
	if v.UploaderID == ref.UploaderID {
		total += UploaderMatchWeight
	}

	total += TagMatchWeight * float64(countLoweredMatches(v.Tags, refTags))

	total += ViewsWeight * math.Log10(clampCount(float64(v.Views))+1)
	total += LikesWeight * math.Log10(clampCount(float64(v.Likes))+1)

	total += recencyBonus(v.AgeDays(now))

	if subs.Has(v.UploaderID) {
		total += SubscriptionBonus
	}

	return total
}

func recencyBonus(ageDays float64) float64 {
	switch {
	case ageDays < FreshWindowDays:
		return FreshBonus
	case ageDays < RecentWindowDays:
		return RecentBonus
	default:
		return 0
	}
}

// clampCount maps negative and non-finite counts to zero.
func clampCount(n float64) float64 {
	if math.IsNaN(n) || math.IsInf(n, 0) || n < 0 {
		return 0
	}
	return n
}
