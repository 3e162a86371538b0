package stats

import (
	"sort"
	"time"

	"github.com/verte-zerg/sumitore/internal/model"
)

const (
	// ReportDays is the daily-aggregation window for the report view.
	ReportDays = 30
	// ReportWeeks is the weekly-aggregation window for the report view.
	ReportWeeks = 4
)

// Report contains precomputed data for report rendering.
type Report struct {
	Streak     int
	Badges     []model.Badge
	TotalPass  int
	TotalFail  int
	Daily      []DailyEntry
	Weekly     []model.WeeklyStats
	ScoreStats ScoreSummary
}

// DailyEntry pairs a calendar date with its aggregated outcomes.
type DailyEntry struct {
	Date  time.Time
	Stats model.DailyStats
}

// ScoreSummary aggregates the optional sub-scores across the history.
type ScoreSummary struct {
	Importance  *model.ScoreStats
	Conciseness *model.ScoreStats
	Accuracy    *model.ScoreStats
}

// BuildReport derives everything the report view shows from the history.
// All values are recomputed from the log; nothing is read from storage
// besides the results themselves.
func BuildReport(history []model.TrainingResult, now time.Time) Report {
	streak, badges := Recompute(history)
	report := Report{
		Streak: streak,
		Badges: badges,
		Daily:  Daily(history, ReportDays, now),
		Weekly: Weekly(history, ReportWeeks, now),
		ScoreStats: ScoreSummary{
			Importance:  summarizeScores(history, func(s model.Scores) *int { return s.Importance }),
			Conciseness: summarizeScores(history, func(s model.Scores) *int { return s.Conciseness }),
			Accuracy:    summarizeScores(history, func(s model.Scores) *int { return s.Accuracy }),
		},
	}
	for _, r := range history {
		if r.Passed {
			report.TotalPass++
		} else {
			report.TotalFail++
		}
	}
	return report
}

// Daily aggregates outcomes per calendar day over the last `days` days,
// oldest first. Days without results are present with zero counts.
func Daily(history []model.TrainingResult, days int, now time.Time) []DailyEntry {
	if days <= 0 {
		return nil
	}
	today := truncateToDay(now)
	index := make(map[time.Time]int, days)
	entries := make([]DailyEntry, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := today.AddDate(0, 0, -i)
		index[date] = len(entries)
		entries = append(entries, DailyEntry{Date: date})
	}
	for _, r := range history {
		date := truncateToDay(r.Timestamp)
		i, ok := index[date]
		if !ok {
			continue
		}
		if r.Passed {
			entries[i].Stats.Correct++
		} else {
			entries[i].Stats.Incorrect++
		}
	}
	return entries
}

// Weekly aggregates outcomes per week over the last `weeks` weeks,
// oldest first. Week 1 is the oldest shown week.
func Weekly(history []model.TrainingResult, weeks int, now time.Time) []model.WeeklyStats {
	if weeks <= 0 {
		return nil
	}
	out := make([]model.WeeklyStats, 0, weeks)
	for week := 0; week < weeks; week++ {
		start := now.AddDate(0, 0, -7*(weeks-week-1)-7)
		end := start.AddDate(0, 0, 7)
		entry := model.WeeklyStats{Week: week + 1}
		for _, r := range history {
			if r.Timestamp.Before(start) || !r.Timestamp.Before(end) {
				continue
			}
			if r.Passed {
				entry.Correct++
			} else {
				entry.Incorrect++
			}
		}
		out = append(out, entry)
	}
	return out
}

func summarizeScores(history []model.TrainingResult, pick func(model.Scores) *int) *model.ScoreStats {
	var values []float64
	for _, r := range history {
		if v := pick(r.Scores); v != nil {
			values = append(values, float64(*v))
		}
	}
	if len(values) == 0 {
		return nil
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	median := sorted[len(sorted)/2]
	if len(sorted)%2 == 0 {
		median = (sorted[len(sorted)/2-1] + sorted[len(sorted)/2]) / 2
	}
	return &model.ScoreStats{
		Count:   len(values),
		Average: sum / float64(len(values)),
		Median:  median,
	}
}

func truncateToDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
