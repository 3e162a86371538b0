package stats

import (
	"testing"
	"time"

	"github.com/verte-zerg/sumitore/internal/model"
)

func results(passes ...bool) []model.TrainingResult {
	out := make([]model.TrainingResult, 0, len(passes))
	base := time.Unix(0, 0)
	for i, p := range passes {
		out = append(out, model.TrainingResult{
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Passed:    p,
		})
	}
	return out
}

func repeat(passed bool, n int) []bool {
	out := make([]bool, n)
	for i := range out {
		out[i] = passed
	}
	return out
}

func TestRecomputeTrailingStreak(t *testing.T) {
	streak, _ := Recompute(results(true, true, false, true))
	if streak != 1 {
		t.Fatalf("expected streak 1, got %d", streak)
	}
}

func TestRecomputeStreakZeroOnTrailingFail(t *testing.T) {
	streak, _ := Recompute(results(true, true, false))
	if streak != 0 {
		t.Fatalf("expected streak 0, got %d", streak)
	}
	streak, _ = Recompute(nil)
	if streak != 0 {
		t.Fatalf("expected streak 0 for empty history, got %d", streak)
	}
}

func TestRecomputeFiveConsecutivePasses(t *testing.T) {
	streak, badges := Recompute(results(repeat(true, 5)...))
	if streak != 5 {
		t.Fatalf("expected streak 5, got %d", streak)
	}
	streaks, milestones := BadgesByKind(badges)
	if len(streaks) != 1 || streaks[0].N != 5 {
		t.Fatalf("expected one streak badge of 5, got %+v", streaks)
	}
	if len(milestones) != 1 || milestones[0].N != 5 {
		t.Fatalf("expected one milestone badge of 5, got %+v", milestones)
	}
}

func TestRecomputeMilestoneWithoutConsecutive(t *testing.T) {
	// Five total passes broken by failures: milestone earned, no streak badge.
	history := results(true, true, false, true, true, false, true)
	_, badges := Recompute(history)
	streaks, milestones := BadgesByKind(badges)
	if len(streaks) != 0 {
		t.Fatalf("expected no streak badges, got %+v", streaks)
	}
	if len(milestones) != 1 || milestones[0].N != 5 {
		t.Fatalf("expected milestone badge of 5, got %+v", milestones)
	}
}

func TestRecomputeIdempotent(t *testing.T) {
	history := results(true, true, true, true, true, false, true, true, true, true, true)
	s1, b1 := Recompute(history)
	s2, b2 := Recompute(history)
	if s1 != s2 {
		t.Fatalf("streak not deterministic: %d vs %d", s1, s2)
	}
	if len(b1) != len(b2) {
		t.Fatalf("badge sets differ: %d vs %d", len(b1), len(b2))
	}
	for i := range b1 {
		if b1[i] != b2[i] {
			t.Fatalf("badge %d differs: %+v vs %+v", i, b1[i], b2[i])
		}
	}
}

func TestRecomputeBadgesMonotonicOnFailure(t *testing.T) {
	history := results(repeat(true, 10)...)
	_, before := Recompute(history)
	withFail := append(append([]model.TrainingResult{}, history...), model.TrainingResult{
		Timestamp: time.Unix(0, 0).Add(time.Hour),
		Passed:    false,
	})
	streak, after := Recompute(withFail)
	if streak != 0 {
		t.Fatalf("expected streak reset to 0, got %d", streak)
	}
	if len(after) < len(before) {
		t.Fatalf("badges revoked on failure: %d -> %d", len(before), len(after))
	}
	for i, b := range before {
		if after[i] != b {
			t.Fatalf("earned badge changed: %+v vs %+v", b, after[i])
		}
	}
}

func TestRecomputeStreakBadgeCap(t *testing.T) {
	history := results(repeat(true, 60)...)
	_, badges := Recompute(history)
	streaks, milestones := BadgesByKind(badges)
	if len(streaks) != MaxStreakBadge/BadgeInterval {
		t.Fatalf("expected %d streak badges, got %d", MaxStreakBadge/BadgeInterval, len(streaks))
	}
	if streaks[len(streaks)-1].N != MaxStreakBadge {
		t.Fatalf("expected last streak badge %d, got %d", MaxStreakBadge, streaks[len(streaks)-1].N)
	}
	if len(milestones) != 60/BadgeInterval {
		t.Fatalf("expected %d milestone badges, got %d", 60/BadgeInterval, len(milestones))
	}
}

func TestRecomputeStreakBadgeNotReearnedAfterReset(t *testing.T) {
	// Reach 5-streak twice; the badge is earned once.
	passes := append(repeat(true, 5), false)
	passes = append(passes, repeat(true, 5)...)
	_, badges := Recompute(results(passes...))
	streaks, milestones := BadgesByKind(badges)
	if len(streaks) != 1 {
		t.Fatalf("expected one streak badge, got %+v", streaks)
	}
	if len(milestones) != 2 {
		t.Fatalf("expected milestones at 5 and 10, got %+v", milestones)
	}
}
