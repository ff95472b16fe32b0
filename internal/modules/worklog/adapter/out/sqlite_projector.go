package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"dwt/internal/modules/worklog/domain"
	worklogout "dwt/internal/modules/worklog/port/out"

	_ "modernc.org/sqlite"
)

type SQLiteIndexProjector struct {
	db *sql.DB
}

func NewSQLiteIndexProjector(dbPath string) (worklogout.IndexProjector, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	projector := &SQLiteIndexProjector{db: db}
	if err := projector.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return projector, nil
}

func (s *SQLiteIndexProjector) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS sessions (
  id TEXT PRIMARY KEY,
  started_at TEXT NOT NULL,
  ended_at TEXT NOT NULL,
  minutes INTEGER NOT NULL,
  completed INTEGER NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create sessions table: %w", err)
	}
	return nil
}

func (s *SQLiteIndexProjector) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions`); err != nil {
		return fmt.Errorf("reset sessions: %w", err)
	}
	return nil
}

func (s *SQLiteIndexProjector) Upsert(ctx context.Context, entry domain.Entry) error {
	const stmt = `
INSERT INTO sessions (id, started_at, ended_at, minutes, completed)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  started_at=excluded.started_at,
  ended_at=excluded.ended_at,
  minutes=excluded.minutes,
  completed=excluded.completed;
`
	completed := 0
	if entry.Completed {
		completed = 1
	}
	_, err := s.db.ExecContext(ctx, stmt,
		entry.ID,
		entry.StartedAt.UTC().Format(time.RFC3339),
		entry.EndedAt.UTC().Format(time.RFC3339),
		entry.Minutes,
		completed,
	)
	if err != nil {
		return fmt.Errorf("upsert session: %w", err)
	}
	return nil
}

func (s *SQLiteIndexProjector) Recent(ctx context.Context, limit int) ([]domain.Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	const query = `
SELECT id, started_at, ended_at, minutes, completed
FROM sessions
ORDER BY started_at DESC
LIMIT ?;
`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent sessions: %w", err)
	}
	defer rows.Close()

	entries := []domain.Entry{}
	for rows.Next() {
		var entry domain.Entry
		var startedAt, endedAt string
		var completed int
		if err := rows.Scan(&entry.ID, &startedAt, &endedAt, &entry.Minutes, &completed); err != nil {
			return nil, fmt.Errorf("scan session row: %w", err)
		}
		if entry.StartedAt, err = time.Parse(time.RFC3339, startedAt); err != nil {
			return nil, fmt.Errorf("parse started_at: %w", err)
		}
		if entry.EndedAt, err = time.Parse(time.RFC3339, endedAt); err != nil {
			return nil, fmt.Errorf("parse ended_at: %w", err)
		}
		entry.Completed = completed != 0
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// DailyMinutes sums completed minutes per calendar date (UTC) since the given
// instant. Keys are 2006-01-02 strings.
func (s *SQLiteIndexProjector) DailyMinutes(ctx context.Context, since time.Time) (map[string]int, error) {
	const query = `
SELECT substr(started_at, 1, 10) AS day, SUM(minutes)
FROM sessions
WHERE completed = 1 AND minutes > 0 AND started_at >= ?
GROUP BY day;
`
	rows, err := s.db.QueryContext(ctx, query, since.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("query daily minutes: %w", err)
	}
	defer rows.Close()

	totals := map[string]int{}
	for rows.Next() {
		var day string
		var minutes int
		if err := rows.Scan(&day, &minutes); err != nil {
			return nil, fmt.Errorf("scan daily total: %w", err)
		}
		totals[day] = minutes
	}
	return totals, rows.Err()
}
