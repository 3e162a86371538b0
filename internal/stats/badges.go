package stats

import "github.com/verte-zerg/sumitore/internal/model"

const (
	// BadgeInterval is the step between consecutive badge thresholds.
	BadgeInterval = 5
	// MaxStreakBadge caps the consecutive-streak badge family.
	MaxStreakBadge = 50
	// MaxMilestoneBadge caps the cumulative-milestone badge family.
	MaxMilestoneBadge = 100
)

// Recompute derives the current streak and the full badge set from the
// result history. It is a pure function of the history sequence: calling it
// twice on the same slice yields identical output, and appending a failing
// result never removes a badge that an earlier prefix already earned.
func Recompute(history []model.TrainingResult) (int, []model.Badge) {
	var badges []model.Badge
	haveStreak := map[int]bool{}
	haveMilestone := map[int]bool{}

	streak := 0
	total := 0
	for _, r := range history {
		if !r.Passed {
			streak = 0
			continue
		}
		streak++
		total++
		if streak%BadgeInterval == 0 && streak <= MaxStreakBadge && !haveStreak[streak] {
			haveStreak[streak] = true
			badges = append(badges, model.Badge{Kind: model.BadgeStreak, N: streak, EarnedAt: r.Timestamp})
		}
		if total%BadgeInterval == 0 && total <= MaxMilestoneBadge && !haveMilestone[total] {
			haveMilestone[total] = true
			badges = append(badges, model.Badge{Kind: model.BadgeMilestone, N: total, EarnedAt: r.Timestamp})
		}
	}
	return trailingStreak(history), badges
}

func trailingStreak(history []model.TrainingResult) int {
	streak := 0
	for i := len(history) - 1; i >= 0; i-- {
		if !history[i].Passed {
			break
		}
		streak++
	}
	return streak
}

// BadgesByKind splits badges into streak and milestone groups, preserving
// the earned order within each group.
func BadgesByKind(badges []model.Badge) (streaks, milestones []model.Badge) {
	for _, b := range badges {
		if b.Kind == model.BadgeStreak {
			streaks = append(streaks, b)
		} else {
			milestones = append(milestones, b)
		}
	}
	return streaks, milestones
}
