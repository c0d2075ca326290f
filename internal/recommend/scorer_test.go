// StreamRush - Video Discovery Services
// Copyright 2026 StreamRush contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sudanva21/StreamRush2.0

package recommend

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/sudanva21/StreamRush2.0/internal/models"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func daysAgo(d float64) time.Time {
	return testNow.Add(-time.Duration(d * 24 * float64(time.Hour)))
}

func fixedClock() time.Time { return testNow }

// musicReference is the reference video used by the ranking scenarios.
func musicReference() models.Video {
	return models.Video{
		ID:         "ref",
		Category:   "Music",
		UploaderID: "U1",
		Tags:       []string{"live", "concert"},
		CreatedAt:  daysAgo(40),
	}
}

// plain returns a candidate that matches nothing about the reference and
// sits outside both recency windows, so it scores exactly zero.
func plain(id string) models.Video {
	return models.Video{
		ID:         id,
		Category:   "Gaming",
		UploaderID: "U9",
		CreatedAt:  daysAgo(365),
	}
}

func ids(videos []models.Video) []string {
	out := make([]string, len(videos))
	for i := range videos {
		out[i] = videos[i].ID
	}
	return out
}

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestScore_ConcreteScenario(t *testing.T) {
	t.Parallel()

	ref := musicReference()
	a := models.Video{
		ID:         "A",
		Category:   "Music",
		UploaderID: "U2",
		Tags:       []string{"Live Performance"},
		Views:      1000,
		Likes:      100,
		CreatedAt:  daysAgo(2),
	}
	b := a
	b.ID = "B"
	b.UploaderID = "U1"

	scoreA := Score(&ref, &a, nil, testNow)
	scoreB := Score(&ref, &b, nil, testNow)

	wantA := 50 + 20 + 5*math.Log10(1001) + 3*math.Log10(101) + 10
	if !approxEqual(scoreA, wantA, 1e-9) {
		t.Errorf("score(A) = %.4f, want %.4f", scoreA, wantA)
	}
	if !approxEqual(scoreA, 101.0, 0.05) {
		t.Errorf("score(A) = %.4f, want ~101.0", scoreA)
	}
	if !approxEqual(scoreB, 131.0, 0.05) {
		t.Errorf("score(B) = %.4f, want ~131.0", scoreB)
	}
	if !approxEqual(scoreB-scoreA, UploaderMatchWeight, 1e-9) {
		t.Errorf("score(B) - score(A) = %.4f, want %.1f", scoreB-scoreA, UploaderMatchWeight)
	}

	got := ids(Rank(&ref, []models.Video{a, b}, nil, testNow, DefaultLimit))
	if len(got) != 2 || got[0] != "B" || got[1] != "A" {
		t.Errorf("Rank() = %v, want [B A]", got)
	}
}

func TestScore_Components(t *testing.T) {
	t.Parallel()

	ref := musicReference()

	tests := []struct {
		name string
		edit func(v *models.Video)
		subs models.Subscriptions
		want float64
	}{
		{"baseline scores zero", func(v *models.Video) {}, nil, 0},
		{"category match", func(v *models.Video) { v.Category = "Music" }, nil, CategoryMatchWeight},
		{"category is case-sensitive", func(v *models.Video) { v.Category = "music" }, nil, 0},
		{"uploader match", func(v *models.Video) { v.UploaderID = "U1" }, nil, UploaderMatchWeight},
		{"one tag", func(v *models.Video) { v.Tags = []string{"LIVE"} }, nil, TagMatchWeight},
		{"two tags", func(v *models.Video) { v.Tags = []string{"live", "Concert Hall"} }, nil, 2 * TagMatchWeight},
		{"non-matching tag", func(v *models.Video) { v.Tags = []string{"speedrun"} }, nil, 0},
		{"views", func(v *models.Video) { v.Views = 99 }, nil, ViewsWeight * 2},
		{"likes", func(v *models.Video) { v.Likes = 9 }, nil, LikesWeight * 1},
		{"fresh", func(v *models.Video) { v.CreatedAt = daysAgo(6.9) }, nil, FreshBonus},
		{"seven days is recent not fresh", func(v *models.Video) { v.CreatedAt = daysAgo(7) }, nil, RecentBonus},
		{"recent", func(v *models.Video) { v.CreatedAt = daysAgo(29.9) }, nil, RecentBonus},
		{"thirty days is old", func(v *models.Video) { v.CreatedAt = daysAgo(30) }, nil, 0},
		{"future upload counts as fresh", func(v *models.Video) { v.CreatedAt = testNow.Add(time.Hour) }, nil, FreshBonus},
		{"subscribed", func(v *models.Video) {}, models.NewSubscriptions("U9"), SubscriptionBonus},
		{"subscribed elsewhere", func(v *models.Video) {}, models.NewSubscriptions("U2"), 0},
		{"negative counts clamp", func(v *models.Video) { v.Views = -50; v.Likes = -1 }, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			v := plain("c")
			tt.edit(&v)
			got := Score(&ref, &v, tt.subs, testNow)
			if !approxEqual(got, tt.want, 1e-9) {
				t.Errorf("Score() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClampCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{42, 42},
		{-1, 0},
		{math.NaN(), 0},
		{math.Inf(1), 0},
		{math.Inf(-1), 0},
	}

	for _, tt := range tests {
		if got := clampCount(tt.in); got != tt.want {
			t.Errorf("clampCount(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRank_ExcludesReference(t *testing.T) {
	t.Parallel()

	ref := musicReference()
	self := ref
	self.Views = 1_000_000

	candidates := []models.Video{plain("x"), self, plain("y"), ref}
	got := Rank(&ref, candidates, nil, testNow, DefaultLimit)

	for _, id := range ids(got) {
		if id == ref.ID {
			t.Fatalf("reference video %q returned in %v", ref.ID, ids(got))
		}
	}
	if len(got) != 2 {
		t.Errorf("len = %d, want 2", len(got))
	}
}

func TestRank_LengthBounds(t *testing.T) {
	t.Parallel()

	ref := musicReference()
	pool := make([]models.Video, 0, 40)
	for i := 0; i < 40; i++ {
		v := plain(fmt.Sprintf("v%02d", i))
		v.Views = int64(i * 10)
		pool = append(pool, v)
	}
	pool = append(pool, ref)

	tests := []struct {
		name  string
		pool  []models.Video
		limit int
		want  int
	}{
		{"default limit truncates", pool, DefaultLimit, 15},
		{"limit above pool", pool[:5], 10, 5},
		{"pool with only reference", []models.Video{ref}, 10, 0},
		{"limit one", pool, 1, 1},
		{"limit zero", pool, 0, 0},
		{"negative limit", pool, -3, 0},
		{"nil candidates", nil, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Rank(&ref, tt.pool, nil, testNow, tt.limit)
			if got == nil {
				t.Fatal("Rank() returned nil, want empty slice")
			}
			if len(got) != tt.want {
				t.Errorf("len = %d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestRank_DescendingOrder(t *testing.T) {
	t.Parallel()

	ref := musicReference()
	pool := []models.Video{plain("low"), plain("high"), plain("mid")}
	pool[1].Category = "Music"
	pool[1].UploaderID = "U1"
	pool[2].Category = "Music"

	got := Explain(&ref, pool, nil, testNow, DefaultLimit)
	for i := 1; i < len(got); i++ {
		if got[i-1].Score < got[i].Score {
			t.Errorf("scores not descending at %d: %v < %v", i, got[i-1].Score, got[i].Score)
		}
	}
	want := []string{"high", "mid", "low"}
	for i, s := range got {
		if s.Video.ID != want[i] {
			t.Errorf("position %d = %q, want %q", i, s.Video.ID, want[i])
		}
	}
}

func TestRank_StableTies(t *testing.T) {
	t.Parallel()

	ref := musicReference()
	pool := make([]models.Video, 0, 20)
	want := make([]string, 0, 20)
	for i := 0; i < 20; i++ {
		v := plain(fmt.Sprintf("tie-%02d", 19-i))
		v.Category = "Music"
		v.Views = 500
		pool = append(pool, v)
		want = append(want, v.ID)
	}

	// A higher scorer in the middle must not disturb the tie order around it.
	winner := plain("winner")
	winner.UploaderID = "U1"
	winner.Category = "Music"
	pool = append(pool[:10], append([]models.Video{winner}, pool[10:]...)...)

	got := ids(Rank(&ref, pool, nil, testNow, 100))
	if got[0] != "winner" {
		t.Fatalf("first = %q, want winner", got[0])
	}
	for i, id := range got[1:] {
		if id != want[i] {
			t.Errorf("position %d = %q, want %q (input order)", i+1, id, want[i])
		}
	}
}

func TestRank_CategoryAdvantage(t *testing.T) {
	t.Parallel()

	ref := musicReference()
	same := plain("same")
	same.Category = "Music"
	other := plain("other")

	diff := Score(&ref, &same, nil, testNow) - Score(&ref, &other, nil, testNow)
	if diff < CategoryMatchWeight {
		t.Errorf("category advantage = %v, want >= %v", diff, CategoryMatchWeight)
	}
}

func TestRank_SubscriptionOutranks(t *testing.T) {
	t.Parallel()

	ref := musicReference()
	unsubscribed := plain("unsub")
	unsubscribed.UploaderID = "U7"
	subscribed := plain("sub")
	subscribed.UploaderID = "U8"

	got := ids(Rank(&ref, []models.Video{unsubscribed, subscribed}, models.NewSubscriptions("U8"), testNow, DefaultLimit))
	if got[0] != "sub" {
		t.Errorf("Rank() = %v, want subscribed uploader first", got)
	}
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	ref := musicReference()
	pool := []models.Video{plain("a"), plain("b"), plain("c")}
	pool[2].Category = "Music"

	Rank(&ref, pool, nil, testNow, DefaultLimit)

	if got := ids(pool); got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Errorf("input reordered: %v", got)
	}
}

func TestRank_NilReference(t *testing.T) {
	t.Parallel()

	got := Rank(nil, []models.Video{plain("a")}, nil, testNow, DefaultLimit)
	if got == nil || len(got) != 0 {
		t.Errorf("Rank(nil) = %v, want empty", got)
	}
}

func TestScorer_UsesInjectedClock(t *testing.T) {
	t.Parallel()

	ref := musicReference()
	v := plain("v")
	v.CreatedAt = testNow.Add(-3 * 24 * time.Hour)

	fresh := NewScorer(fixedClock).Explain(&ref, []models.Video{v}, nil, 1)
	if fresh[0].Score != FreshBonus {
		t.Errorf("score with fixed clock = %v, want %v", fresh[0].Score, FreshBonus)
	}

	later := NewScorer(func() time.Time { return testNow.Add(60 * 24 * time.Hour) })
	aged := later.Explain(&ref, []models.Video{v}, nil, 1)
	if aged[0].Score != 0 {
		t.Errorf("score 60 days later = %v, want 0", aged[0].Score)
	}

	if NewScorer(nil).now == nil {
		t.Error("NewScorer(nil) should default to time.Now")
	}
}
