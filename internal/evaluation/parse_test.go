package evaluation

import "testing"

const sampleVerdict = `Here is the evaluation of your summary.

IMPORTANCE: 4
CONCISENESS: 3/5
ACCURACY: 5
IMPROVEMENT1: Mention the study's sample size.
IMPROVEMENT2: Drop the second example.
OVERALL: PASS
`

func TestParseFullVerdict(t *testing.T) {
	v := Parse(sampleVerdict)
	if !v.OverallPass {
		t.Fatalf("expected pass")
	}
	if !v.Determinate {
		t.Fatalf("expected determinate verdict")
	}
	if v.Importance == nil || *v.Importance != 4 {
		t.Fatalf("unexpected importance: %+v", v.Importance)
	}
	if v.Conciseness == nil || *v.Conciseness != 3 {
		t.Fatalf("unexpected conciseness: %+v", v.Conciseness)
	}
	if v.Accuracy == nil || *v.Accuracy != 5 {
		t.Fatalf("unexpected accuracy: %+v", v.Accuracy)
	}
	if len(v.Improvements) != 2 {
		t.Fatalf("expected 2 improvements, got %+v", v.Improvements)
	}
	if v.Improvements[0] != "Mention the study's sample size." {
		t.Fatalf("unexpected improvement: %q", v.Improvements[0])
	}
}

func TestParsePassMarkerAnywhere(t *testing.T) {
	v := Parse("Great work! OVERALL: PASS — keep it up.")
	if !v.OverallPass || !v.Determinate {
		t.Fatalf("marker embedded in prose should still pass: %+v", v)
	}
}

func TestParseInvalidFormat(t *testing.T) {
	v := Parse("not a valid format")
	if v.OverallPass {
		t.Fatalf("expected overall fail")
	}
	if v.Determinate {
		t.Fatalf("expected indeterminate verdict")
	}
	if v.Importance != nil || v.Conciseness != nil || v.Accuracy != nil {
		t.Fatalf("expected all scores absent: %+v", v)
	}
	if len(v.Improvements) != 0 {
		t.Fatalf("expected no improvements: %+v", v.Improvements)
	}
}

func TestParseDeterminateFail(t *testing.T) {
	v := Parse("IMPORTANCE: 2\nOVERALL: FAIL")
	if v.OverallPass {
		t.Fatalf("expected overall fail")
	}
	if !v.Determinate {
		t.Fatalf("fail marker should be determinate")
	}
	if v.Importance == nil || *v.Importance != 2 {
		t.Fatalf("unexpected importance: %+v", v.Importance)
	}
}

func TestParseMalformedScoreLines(t *testing.T) {
	v := Parse("IMPORTANCE: six\nCONCISENESS: 9\nACCURACY:\nOVERALL: PASS")
	if v.Importance != nil {
		t.Fatalf("non-numeric score should be absent: %+v", v.Importance)
	}
	if v.Conciseness != nil {
		t.Fatalf("out-of-range score should be absent: %+v", v.Conciseness)
	}
	if v.Accuracy != nil {
		t.Fatalf("empty score should be absent: %+v", v.Accuracy)
	}
	if !v.OverallPass {
		t.Fatalf("malformed score lines must not affect the overall result")
	}
}

func TestParseCapsImprovements(t *testing.T) {
	v := Parse("IMPROVEMENT1: a\nIMPROVEMENT2: b\nIMPROVEMENT3: c\nIMPROVEMENT4: d\nOVERALL: FAIL")
	if len(v.Improvements) != 3 {
		t.Fatalf("expected at most 3 improvements, got %+v", v.Improvements)
	}
}

func TestParseCaseInsensitivePrefixes(t *testing.T) {
	v := Parse("importance: 3\noverall: pass")
	if v.Importance == nil || *v.Importance != 3 {
		t.Fatalf("prefix matching should ignore case: %+v", v.Importance)
	}
	// The overall markers are fixed literals; lowercase does not count.
	if v.OverallPass || v.Determinate {
		t.Fatalf("overall marker must match the exact literal: %+v", v)
	}
}
