package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/verte-zerg/sumitore/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "sumitore.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestInsertAndListResults(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	importance := 4
	first := model.TrainingResult{
		Timestamp: time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC),
		Passed:    true,
		Scores:    model.Scores{Importance: &importance},
	}
	second := model.TrainingResult{
		Timestamp: time.Date(2026, 8, 30, 11, 0, 0, 0, time.UTC),
		Passed:    false,
	}
	if _, err := st.InsertResult(ctx, first); err != nil {
		t.Fatalf("insert first: %v", err)
	}
	if _, err := st.InsertResult(ctx, second); err != nil {
		t.Fatalf("insert second: %v", err)
	}

	results, err := st.ListResults(ctx)
	if err != nil {
		t.Fatalf("list results: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if !results[0].Passed || results[1].Passed {
		t.Fatalf("unexpected order or outcomes: %+v", results)
	}
	if !results[0].Timestamp.Equal(first.Timestamp) {
		t.Fatalf("timestamp mismatch: %v vs %v", results[0].Timestamp, first.Timestamp)
	}
	if results[0].Scores.Importance == nil || *results[0].Scores.Importance != 4 {
		t.Fatalf("importance not round-tripped: %+v", results[0].Scores)
	}
	if results[0].Scores.Conciseness != nil {
		t.Fatalf("expected absent conciseness, got %+v", results[0].Scores)
	}
	if results[1].Scores.Importance != nil {
		t.Fatalf("expected absent scores on failure entry, got %+v", results[1].Scores)
	}
}

func TestListResultsSkipsMalformedRows(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	if _, err := st.InsertResult(ctx, model.TrainingResult{Timestamp: time.Now(), Passed: true}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if _, err := st.db.ExecContext(ctx,
		`INSERT INTO results (created_at, passed) VALUES ('garbage', 1)`); err != nil {
		t.Fatalf("insert malformed: %v", err)
	}
	if _, err := st.InsertResult(ctx, model.TrainingResult{Timestamp: time.Now(), Passed: false}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	results, err := st.ListResults(ctx)
	if err != nil {
		t.Fatalf("list results: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected malformed row skipped, got %d results", len(results))
	}
	if !results[0].Passed || results[1].Passed {
		t.Fatalf("remaining rows out of order: %+v", results)
	}
}
