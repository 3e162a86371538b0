package stats

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Criterion", "Count", "Average"}
	rows := [][]string{
		{"Importance", "12", "4.25"},
		{"Accuracy", "3", "3.00"},
	}
	rightAlign := map[int]bool{1: true, 2: true}

	lines := formatTable(headers, rows, rightAlign)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Criterion  Count Average" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "Importance    12    4.25" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "Accuracy       3    3.00" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestFormatTableWideCells(t *testing.T) {
	lines := formatTable([]string{"Badge"}, [][]string{{"🔥5"}}, nil)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	// The emoji is double-width; the header cell pads to match.
	if lines[0] != "Badge" || lines[1] != "🔥5  " {
		t.Fatalf("unexpected lines: %q", lines)
	}
}
