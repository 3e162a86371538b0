// Package model defines shared data structures.
package model

import "time"

// Config defines training settings.
type Config struct {
	Model          string
	BaseURL        string
	TimeoutSeconds int
	Lengths        []int
}

// DefaultLengths are the passage lengths offered in the menu, in characters.
var DefaultLengths = []int{200, 400, 600, 800}

// Scores holds optional 1-5 sub-scores parsed from an evaluation.
// A nil field means the evaluator output had no parseable line for it.
type Scores struct {
	Importance  *int
	Conciseness *int
	Accuracy    *int
}

// TrainingResult is a single pass/fail outcome. Immutable once created;
// the history is append-only.
type TrainingResult struct {
	Timestamp time.Time
	Passed    bool
	Scores    Scores
}

// BadgeKind distinguishes the two badge families.
type BadgeKind int

const (
	// BadgeStreak marks n consecutive passes.
	BadgeStreak BadgeKind = iota
	// BadgeMilestone marks n cumulative passes.
	BadgeMilestone
)

// Badge is a permanent achievement derived from the result history.
type Badge struct {
	Kind     BadgeKind
	N        int
	EarnedAt time.Time
}

// Icon returns the display icon for the badge kind.
func (b Badge) Icon() string {
	if b.Kind == BadgeStreak {
		return "🔥"
	}
	return "⭐"
}

// DailyStats aggregates outcomes for one calendar day.
type DailyStats struct {
	Correct   int
	Incorrect int
}

// Total returns the number of results for the day.
func (d DailyStats) Total() int {
	return d.Correct + d.Incorrect
}

// WeeklyStats aggregates outcomes for one week.
type WeeklyStats struct {
	Week      int
	Correct   int
	Incorrect int
}

// ScoreStats summarizes one evaluation criterion across the history.
type ScoreStats struct {
	Count   int
	Average float64
	Median  float64
}
