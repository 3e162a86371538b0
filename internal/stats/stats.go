// Package stats contains statistics calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/verte-zerg/sumitore/internal/model"
)

const sparkChars = " .:-=+*#%@"

// PassRates converts the history into a cumulative pass-rate series,
// one point per result, in chronological order.
func PassRates(history []model.TrainingResult) []float64 {
	out := make([]float64, 0, len(history))
	passes := 0
	for i, r := range history {
		if r.Passed {
			passes++
		}
		out = append(out, float64(passes)/float64(i+1)*100)
	}
	return out
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// RenderSummary prints overall totals, the current streak, and the
// per-criterion score table.
func RenderSummary(w io.Writer, report Report) error {
	total := report.TotalPass + report.TotalFail
	if total == 0 {
		_, err := fmt.Fprintln(w, "No results found.")
		return err
	}
	if _, err := fmt.Fprintln(w, "Summary"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Results: %d\n", total); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Passed: %d (%.1f%%)\n", report.TotalPass, float64(report.TotalPass)/float64(total)*100); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Current streak: %d\n", report.Streak); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return renderScoreTable(w, report.ScoreStats)
}

func renderScoreTable(w io.Writer, summary ScoreSummary) error {
	rows := scoreRows(summary)
	if len(rows) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "Evaluation Scores"); err != nil {
		return err
	}
	headers := []string{"Criterion", "Count", "Average", "Median"}
	rightAlign := map[int]bool{1: true, 2: true, 3: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

func scoreRows(summary ScoreSummary) [][]string {
	var rows [][]string
	add := func(name string, s *model.ScoreStats) {
		if s == nil {
			return
		}
		rows = append(rows, []string{
			name,
			fmt.Sprintf("%d", s.Count),
			fmt.Sprintf("%.2f", s.Average),
			fmt.Sprintf("%.1f", s.Median),
		})
	}
	add("Importance", summary.Importance)
	add("Conciseness", summary.Conciseness)
	add("Accuracy", summary.Accuracy)
	return rows
}

// RenderBadges prints the badge shelf grouped by kind.
func RenderBadges(w io.Writer, badges []model.Badge) error {
	streaks, milestones := BadgesByKind(badges)
	if len(streaks) == 0 && len(milestones) == 0 {
		_, err := fmt.Fprintln(w, "No badges earned yet.")
		return err
	}
	if _, err := fmt.Fprintln(w, "Badges"); err != nil {
		return err
	}
	if err := renderBadgeRow(w, "Streak", streaks); err != nil {
		return err
	}
	if err := renderBadgeRow(w, "Milestone", milestones); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

func renderBadgeRow(w io.Writer, label string, badges []model.Badge) error {
	if len(badges) == 0 {
		return nil
	}
	parts := make([]string, 0, len(badges))
	for _, b := range badges {
		parts = append(parts, fmt.Sprintf("%s%d", b.Icon(), b.N))
	}
	_, err := fmt.Fprintf(w, "%s: %s\n", label, strings.Join(parts, " "))
	return err
}

// RenderPassCurve prints the smoothed pass-rate curve as a sparkline with
// its min/max bounds.
func RenderPassCurve(w io.Writer, history []model.TrainingResult, window, width int) error {
	rates := MovingAverage(PassRates(history), window)
	if len(rates) == 0 {
		return nil
	}
	if width > 0 && len(rates) > width {
		rates = rates[len(rates)-width:]
	}
	minVal, maxVal := rates[0], rates[0]
	for _, v := range rates[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if _, err := fmt.Fprintln(w, "Pass Rate"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, Sparkline(rates)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "min %.1f%% · max %.1f%% · window %d\n\n", minVal, maxVal, window)
	return err
}
