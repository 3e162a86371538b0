package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

type styledRune struct {
	s       string
	width   int
	isSpace bool
	isBreak bool
}

// buildEditorRunes styles the edit buffer content, underlining the rune at
// the cursor when the buffer is being edited.
func buildEditorRunes(content []rune, cursor int, editing bool) []styledRune {
	out := make([]styledRune, 0, len(content)+1)
	for i, r := range content {
		if r == '\n' {
			out = append(out, styledRune{s: "", isBreak: true})
			continue
		}
		style := editorStyle
		if editing && i == cursor {
			style = cursorStyle
		}
		out = append(out, styledRune{
			s:       style.Render(string(r)),
			width:   runewidth.RuneWidth(r),
			isSpace: r == ' ',
		})
	}
	if editing && cursor >= len(content) {
		out = append(out, styledRune{s: cursorStyle.Render(" "), width: 1, isSpace: true})
	}
	return out
}

func renderStyledRunes(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteString(item.s)
	}
	return b.String()
}

// wrapStyledRunes word-wraps styled runes to the given width. Hard breaks
// are honored; soft breaks prefer the last space on the line.
func wrapStyledRunes(runes []styledRune, width int) string {
	if width <= 0 {
		return renderStyledRunes(runes)
	}
	var out strings.Builder
	line := make([]styledRune, 0, len(runes))
	lineWidth := 0
	lastSpaceIdx := -1

	flush := func(upTo int) {
		out.WriteString(renderStyledRunes(line[:upTo]))
		out.WriteRune('\n')
	}

	for i := 0; i < len(runes); {
		item := runes[i]
		if item.isBreak {
			flush(len(line))
			line = line[:0]
			lineWidth = 0
			lastSpaceIdx = -1
			i++
			continue
		}
		if lineWidth+item.width > width && len(line) > 0 {
			if lastSpaceIdx >= 0 {
				flush(lastSpaceIdx)
				line = append([]styledRune{}, line[lastSpaceIdx+1:]...)
				lineWidth = lineWidthOf(line)
				lastSpaceIdx = lastSpaceIndex(line)
			} else {
				flush(len(line))
				line = line[:0]
				lineWidth = 0
				lastSpaceIdx = -1
			}
			continue
		}
		line = append(line, item)
		lineWidth += item.width
		if item.isSpace {
			lastSpaceIdx = len(line) - 1
		}
		i++
	}
	out.WriteString(renderStyledRunes(line))
	return out.String()
}

func lineWidthOf(line []styledRune) int {
	total := 0
	for _, item := range line {
		total += item.width
	}
	return total
}

func lastSpaceIndex(line []styledRune) int {
	for i := len(line) - 1; i >= 0; i-- {
		if line[i].isSpace {
			return i
		}
	}
	return -1
}

// wrapPlain word-wraps plain text to the given width, honoring existing
// line breaks. Used for the passage, overlay, and help content.
func wrapPlain(text string, width int) string {
	if width <= 0 {
		return text
	}
	var out []string
	for _, paragraph := range strings.Split(text, "\n") {
		out = append(out, wrapParagraph(paragraph, width)...)
	}
	return strings.Join(out, "\n")
}

func wrapParagraph(paragraph string, width int) []string {
	words := strings.Fields(paragraph)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	var line strings.Builder
	lineWidth := 0
	for _, word := range words {
		wordWidth := runewidth.StringWidth(word)
		if lineWidth > 0 && lineWidth+1+wordWidth > width {
			lines = append(lines, line.String())
			line.Reset()
			lineWidth = 0
		}
		if lineWidth > 0 {
			line.WriteByte(' ')
			lineWidth++
		}
		line.WriteString(word)
		lineWidth += wordWidth
	}
	lines = append(lines, line.String())
	return lines
}
