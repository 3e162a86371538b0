// Package store handles SQLite persistence.
package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/verte-zerg/sumitore/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for the training result log.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY,
			created_at TEXT NOT NULL,
			passed INTEGER NOT NULL,
			importance INTEGER,
			conciseness INTEGER,
			accuracy INTEGER
		);`,
		`CREATE INDEX IF NOT EXISTS idx_results_created_at ON results(created_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertResult appends one result to the log. Results are never updated
// or deleted afterwards.
func (s *Store) InsertResult(ctx context.Context, result model.TrainingResult) (int64, error) {
	passed := 0
	if result.Passed {
		passed = 1
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO results (created_at, passed, importance, conciseness, accuracy)
		 VALUES (?, ?, ?, ?, ?)`,
		result.Timestamp.Format(time.RFC3339Nano),
		passed,
		nullableInt(result.Scores.Importance),
		nullableInt(result.Scores.Conciseness),
		nullableInt(result.Scores.Accuracy),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListResults returns the full history in insertion order. Rows with an
// unparseable timestamp are skipped rather than failing the load.
func (s *Store) ListResults(ctx context.Context) ([]model.TrainingResult, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT created_at, passed, importance, conciseness, accuracy
		 FROM results ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var results []model.TrainingResult
	for rows.Next() {
		var createdAt string
		var passed int
		var importance, conciseness, accuracy sql.NullInt64
		if err := rows.Scan(&createdAt, &passed, &importance, &conciseness, &accuracy); err != nil {
			return nil, err
		}
		ts, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			// Malformed entry; omit it, keep the rest of the log.
			continue
		}
		results = append(results, model.TrainingResult{
			Timestamp: ts,
			Passed:    passed != 0,
			Scores: model.Scores{
				Importance:  intFromNull(importance),
				Conciseness: intFromNull(conciseness),
				Accuracy:    intFromNull(accuracy),
			},
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func nullableInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func intFromNull(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	out := int(v.Int64)
	return &out
}
