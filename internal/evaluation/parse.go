// Package evaluation parses evaluator output into a structured verdict.
package evaluation

import (
	"strconv"
	"strings"
)

// Line-prefix vocabulary emitted by the evaluator. The overall markers are
// matched as substrings anywhere in the text; the evaluator occasionally
// wraps them in prose.
const (
	PassMarker = "OVERALL: PASS"
	FailMarker = "OVERALL: FAIL"

	importancePrefix  = "IMPORTANCE:"
	concisenessPrefix = "CONCISENESS:"
	accuracyPrefix    = "ACCURACY:"
	improvementPrefix = "IMPROVEMENT"
)

const maxImprovements = 3

// Verdict is the structured result of an evaluation. Scores are optional:
// a missing or malformed line leaves the field nil. Determinate reports
// whether either overall marker was found at all; an indeterminate verdict
// must not be recorded as a pass or a fail.
type Verdict struct {
	OverallPass  bool
	Determinate  bool
	Importance   *int
	Conciseness  *int
	Accuracy     *int
	Improvements []string
	Raw          string
}

// Parse extracts a Verdict from raw evaluator text. It is best-effort and
// never fails: worst case is an all-absent verdict with OverallPass false.
func Parse(raw string) Verdict {
	v := Verdict{Raw: raw}
	v.OverallPass = strings.Contains(raw, PassMarker)
	v.Determinate = v.OverallPass || strings.Contains(raw, FailMarker)

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case hasFoldPrefix(line, importancePrefix):
			v.Importance = parseScore(line, importancePrefix)
		case hasFoldPrefix(line, concisenessPrefix):
			v.Conciseness = parseScore(line, concisenessPrefix)
		case hasFoldPrefix(line, accuracyPrefix):
			v.Accuracy = parseScore(line, accuracyPrefix)
		case hasFoldPrefix(line, improvementPrefix):
			if text := parseImprovement(line); text != "" && len(v.Improvements) < maxImprovements {
				v.Improvements = append(v.Improvements, text)
			}
		}
	}
	return v
}

func hasFoldPrefix(line, prefix string) bool {
	return len(line) >= len(prefix) && strings.EqualFold(line[:len(prefix)], prefix)
}

// parseScore reads the 1-5 integer after the prefix. Out-of-range or
// unparseable values are treated as absent.
func parseScore(line, prefix string) *int {
	rest := strings.TrimSpace(line[len(prefix):])
	if i := strings.IndexAny(rest, " /"); i >= 0 {
		rest = rest[:i]
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 1 || n > 5 {
		return nil
	}
	return &n
}

// parseImprovement reads the text after "IMPROVEMENT<n>:".
func parseImprovement(line string) string {
	i := strings.Index(line, ":")
	if i < 0 {
		return ""
	}
	return strings.TrimSpace(line[i+1:])
}
