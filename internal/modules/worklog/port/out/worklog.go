package out

import (
	"context"
	"time"

	"dwt/internal/modules/worklog/domain"
)

// LogStore owns the authoritative append-only JSON log. Reading a missing
// file creates an empty one; a corrupt file lists as empty but refuses
// appends.
type LogStore interface {
	Append(ctx context.Context, entry domain.Entry) error
	List(ctx context.Context) ([]domain.Entry, error)
}

// IndexProjector mirrors the log into SQLite for history queries; the JSON
// file stays the source of truth and Reindex can rebuild the mirror from it.
type IndexProjector interface {
	Reset(ctx context.Context) error
	Upsert(ctx context.Context, entry domain.Entry) error
	Recent(ctx context.Context, limit int) ([]domain.Entry, error)
	DailyMinutes(ctx context.Context, since time.Time) (map[string]int, error)
}
