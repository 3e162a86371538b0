package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/sumitore/internal/model"
	statsPkg "github.com/verte-zerg/sumitore/internal/stats"
)

var (
	dayEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#3A3A3A"))
	dayGoodStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A"))
	dayMixedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	dayBadStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	barStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
)

func (m *Model) openReport(from viewMode) {
	m.returnMode = from
	m.mode = modeReport
	m.status = "Report. Press 'r' to close."
}

func (m *Model) viewReport() string {
	report := statsPkg.BuildReport(m.history, time.Now())
	width := m.width - 4
	if width < 20 {
		width = 20
	}

	sections := []string{
		titleStyle.Render("Report"),
		m.renderTotals(report),
		renderBadgeShelf(report.Badges),
		renderDailyHeatmap(report.Daily),
		renderWeeklyBars(report.Weekly, width-4),
		renderScoreTable(report.ScoreStats),
	}
	content := paneStyle.Width(width).Render(strings.Join(sections, "\n\n"))
	footer := m.renderStatusBar("r close · q quit")
	return m.placeWithFooter(content, footer)
}

func (m *Model) renderTotals(report statsPkg.Report) string {
	total := report.TotalPass + report.TotalFail
	if total == 0 {
		return menuItemStyle.Render("No results yet. Finish a training to see stats here.")
	}
	rate := float64(report.TotalPass) / float64(total) * 100
	return fmt.Sprintf("%s %d  ·  %s %d/%d (%.0f%%)",
		headerStyle.Render("Streak"), report.Streak,
		headerStyle.Render("Passed"), report.TotalPass, total, rate)
}

func renderBadgeShelf(badges []model.Badge) string {
	streaks, milestones := statsPkg.BadgesByKind(badges)
	if len(streaks) == 0 && len(milestones) == 0 {
		return headerStyle.Render("Badges") + "\n" + menuItemStyle.Render("None yet.")
	}
	var b strings.Builder
	b.WriteString(headerStyle.Render("Badges"))
	if len(streaks) > 0 {
		b.WriteString("\n")
		b.WriteString(badgeLine("Streak    ", streaks))
	}
	if len(milestones) > 0 {
		b.WriteString("\n")
		b.WriteString(badgeLine("Milestone ", milestones))
	}
	return b.String()
}

func badgeLine(label string, badges []model.Badge) string {
	parts := make([]string, 0, len(badges))
	for _, badge := range badges {
		parts = append(parts, fmt.Sprintf("%s%d", badge.Icon(), badge.N))
	}
	return label + strings.Join(parts, " ")
}

// renderDailyHeatmap lays the last 30 days out in calendar rows, one cell
// per day, colored by that day's pass ratio.
func renderDailyHeatmap(daily []statsPkg.DailyEntry) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Last 30 days"))
	for i, entry := range daily {
		if i%7 == 0 {
			b.WriteString("\n")
			b.WriteString(menuItemStyle.Render(entry.Date.Format("Jan 02 ")))
		}
		b.WriteString(dayCell(entry.Stats))
		b.WriteString(" ")
	}
	return b.String()
}

func dayCell(stats model.DailyStats) string {
	if stats.Total() == 0 {
		return dayEmptyStyle.Render("·")
	}
	ratio := float64(stats.Correct) / float64(stats.Total())
	switch {
	case ratio >= 0.8:
		return dayGoodStyle.Render("■")
	case ratio >= 0.5:
		return dayMixedStyle.Render("■")
	default:
		return dayBadStyle.Render("■")
	}
}

// renderWeeklyBars draws one bar per week, scaled to the widest week.
func renderWeeklyBars(weekly []model.WeeklyStats, width int) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Last 4 weeks"))
	maxTotal := 0
	for _, w := range weekly {
		if total := w.Correct + w.Incorrect; total > maxTotal {
			maxTotal = total
		}
	}
	barWidth := width - 16
	if barWidth < 5 {
		barWidth = 5
	}
	for _, w := range weekly {
		total := w.Correct + w.Incorrect
		filled := 0
		if maxTotal > 0 {
			filled = total * barWidth / maxTotal
		}
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("W%d %s %d/%d",
			w.Week,
			barStyle.Render(strings.Repeat("█", filled)+strings.Repeat("░", barWidth-filled)),
			w.Correct, total))
	}
	return b.String()
}

// renderScoreTable shows per-criterion averages via a bubbles table.
func renderScoreTable(summary statsPkg.ScoreSummary) string {
	rows := []table.Row{}
	add := func(name string, s *model.ScoreStats) {
		if s == nil {
			return
		}
		rows = append(rows, table.Row{
			name,
			fmt.Sprintf("%d", s.Count),
			fmt.Sprintf("%.2f", s.Average),
			fmt.Sprintf("%.1f", s.Median),
		})
	}
	add("Importance", summary.Importance)
	add("Conciseness", summary.Conciseness)
	add("Accuracy", summary.Accuracy)
	if len(rows) == 0 {
		return headerStyle.Render("Evaluation scores") + "\n" + menuItemStyle.Render("No scored evaluations yet.")
	}
	columns := []table.Column{
		{Title: "Criterion", Width: 12},
		{Title: "Count", Width: 6},
		{Title: "Avg", Width: 6},
		{Title: "Median", Width: 7},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)
	styles := table.DefaultStyles()
	styles.Selected = styles.Cell
	t.SetStyles(styles)
	return headerStyle.Render("Evaluation scores") + "\n" + t.View()
}
