package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	switch m.mode {
	case modeMenu:
		return m.viewMenu()
	case modeReport:
		return m.viewReport()
	case modeHelp:
		return m.viewHelp()
	default:
		return m.viewTraining()
	}
}

func (m *Model) viewMenu() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("sumitore · summary trainer"))
	b.WriteString("\n\n")
	b.WriteString(headerStyle.Render("Passage length"))
	b.WriteString("\n")
	for i, length := range m.cfg.Lengths {
		label := fmt.Sprintf("%d characters", length)
		if i == m.menuIndex {
			b.WriteString(selectedStyle.Render("> " + label))
		} else {
			b.WriteString(menuItemStyle.Render("  " + label))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if m.streak > 0 {
		b.WriteString(menuItemStyle.Render(fmt.Sprintf("Current streak: %d", m.streak)))
		b.WriteString("\n")
	}
	content := b.String()
	footer := m.renderStatusBar("enter start · r report · h help · q quit")
	return m.placeWithFooter(content, footer)
}

func (m *Model) viewTraining() string {
	contentWidth := m.width - 4
	if contentWidth < 10 {
		contentWidth = 10
	}
	footerHint := "i edit · e verdict · n next · r report · h help · q quit"
	if m.editing {
		footerHint = "Ctrl+S submit · Esc stop editing"
	}
	footer := m.renderStatusBar(footerHint)

	paneHeight := (m.height - 3) / 2
	if paneHeight < 3 {
		paneHeight = 3
	}

	passage := m.renderPassagePane(contentWidth, paneHeight)
	editor := m.renderEditorPane(contentWidth, paneHeight)
	body := passage + "\n" + editor

	if m.showOverlay && m.verdict != nil {
		overlay := m.renderVerdictOverlay()
		return lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, overlay) + "\n" + footer
	}
	return m.placeWithFooter(body, footer)
}

func (m *Model) renderPassagePane(width, height int) string {
	title := headerStyle.Render("Passage")
	text := m.passage
	if text == "" {
		switch m.pending {
		case pendingGenerate:
			text = "Generating..."
		default:
			text = "No passage yet. Press Esc to pick a length."
		}
	}
	wrapped := wrapPlain(text, width-2)
	lines := strings.Split(wrapped, "\n")
	lines = scrollLines(lines, m.passageScroll, height)
	return paneStyle.Width(width).Render(title + "\n" + passageStyle.Render(strings.Join(lines, "\n")))
}

func (m *Model) renderEditorPane(width, height int) string {
	title := headerStyle.Render("Your summary")
	if m.pending == pendingEvaluate {
		title = headerStyle.Render("Your summary (evaluating...)")
	}
	styled := buildEditorRunes(m.buf.Runes(), m.buf.Cursor(), m.editing)
	wrapped := wrapStyledRunes(styled, width-2)
	lines := strings.Split(wrapped, "\n")
	if len(lines) > height {
		lines = lines[len(lines)-height:]
	}
	return paneStyle.Width(width).Render(title + "\n" + strings.Join(lines, "\n"))
}

func (m *Model) renderVerdictOverlay() string {
	v := m.verdict
	overlayWidth := m.width * 3 / 4
	if overlayWidth < 20 {
		overlayWidth = 20
	}
	innerWidth := overlayWidth - 6

	var b strings.Builder
	if !v.Determinate {
		b.WriteString(errorStyle.Render("Evaluator output had no overall result"))
	} else if v.OverallPass {
		b.WriteString(passStyle.Render("PASS"))
		b.WriteString(menuItemStyle.Render(fmt.Sprintf("  streak %d", m.streak)))
	} else {
		b.WriteString(failStyle.Render("FAIL"))
	}
	b.WriteString("\n\n")

	writeScore := func(name string, score *int) {
		if score == nil {
			return
		}
		b.WriteString(fmt.Sprintf("%s %d/5\n", name, *score))
	}
	writeScore("Importance ", v.Importance)
	writeScore("Conciseness", v.Conciseness)
	writeScore("Accuracy   ", v.Accuracy)
	if len(v.Improvements) > 0 {
		b.WriteString("\n")
		b.WriteString(headerStyle.Render("Improvements"))
		b.WriteString("\n")
		for _, imp := range v.Improvements {
			b.WriteString(wrapPlain("- "+imp, innerWidth))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(headerStyle.Render("Raw evaluation"))
	b.WriteString("\n")
	b.WriteString(wrapPlain(v.Raw, innerWidth))

	lines := strings.Split(b.String(), "\n")
	maxLines := m.height * 3 / 4
	if maxLines < 5 {
		maxLines = 5
	}
	lines = scrollLines(lines, m.overlayScroll, maxLines)
	return overlayStyle.Width(overlayWidth).Render(strings.Join(lines, "\n"))
}

func (m *Model) viewHelp() string {
	width := m.width - 4
	if width < 10 {
		width = 10
	}
	lines := strings.Split(wrapPlain(helpText, width-2), "\n")
	lines = scrollLines(lines, m.helpScroll, m.height-3)
	content := paneStyle.Width(width).Render(headerStyle.Render("Help") + "\n" + strings.Join(lines, "\n"))
	footer := m.renderStatusBar("j/k scroll · h close · q quit")
	return m.placeWithFooter(content, footer)
}

func (m *Model) renderStatusBar(hint string) string {
	status := m.status
	if status != "" && hint != "" {
		return statusStyle.Render(status + "  ·  " + hint)
	}
	return statusStyle.Render(status + hint)
}

func (m *Model) placeWithFooter(content, footer string) string {
	bodyHeight := m.height - 1
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	body := lipgloss.Place(m.width, bodyHeight, lipgloss.Left, lipgloss.Top, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Left, lipgloss.Top, footer)
	return body + "\n" + footerLine
}

// scrollLines applies a scroll offset and height clamp to rendered lines.
func scrollLines(lines []string, scroll, height int) []string {
	if height <= 0 {
		return lines
	}
	maxScroll := len(lines) - height
	if maxScroll < 0 {
		maxScroll = 0
	}
	if scroll > maxScroll {
		scroll = maxScroll
	}
	if scroll < 0 {
		scroll = 0
	}
	end := scroll + height
	if end > len(lines) {
		end = len(lines)
	}
	return lines[scroll:end]
}
