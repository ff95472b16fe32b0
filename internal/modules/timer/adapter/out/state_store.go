package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"dwt/internal/modules/timer/domain"
	timerout "dwt/internal/modules/timer/port/out"
	"dwt/internal/platform/atomicfile"
	apperrors "dwt/internal/platform/errors"
)

// stateRecord is the on-disk shape: unix seconds for instants, whole seconds
// for durations.
type stateRecord struct {
	Active         bool   `json:"active"`
	StartTime      int64  `json:"start_time"`
	Duration       int64  `json:"duration"`
	PausedDuration int64  `json:"paused_duration"`
	PausedAt       *int64 `json:"paused_at"`
	Remaining      int64  `json:"remaining"`
	SchemaVersion  int    `json:"schema_version"`
}

// FileStateStore holds the single in-progress session record. Saves go
// through a temp-file rename so a reader never sees a half-written record;
// a record that fails to parse is backed up and reported as absent, keeping
// the tool usable after corruption.
type FileStateStore struct {
	path string
}

func NewFileStateStore(path string) timerout.StateStore {
	return &FileStateStore{path: path}
}

func (s *FileStateStore) Load(_ context.Context) (domain.Session, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Session{}, apperrors.ErrNoActiveSession
		}
		return domain.Session{}, fmt.Errorf("read session state: %w", err)
	}
	record := stateRecord{}
	if err := json.Unmarshal(payload, &record); err != nil {
		_ = os.Rename(s.path, s.path+".corrupt")
		return domain.Session{}, apperrors.ErrNoActiveSession
	}
	if !record.Active {
		return domain.Session{}, apperrors.ErrNoActiveSession
	}
	session := domain.Session{
		StartedAt:     time.Unix(record.StartTime, 0).UTC(),
		Planned:       time.Duration(record.Duration) * time.Second,
		PausedTotal:   time.Duration(record.PausedDuration) * time.Second,
		RemainingSnap: time.Duration(record.Remaining) * time.Second,
	}
	if record.PausedAt != nil {
		pausedAt := time.Unix(*record.PausedAt, 0).UTC()
		session.PausedAt = &pausedAt
	}
	return session, nil
}

func (s *FileStateStore) Save(_ context.Context, session domain.Session) error {
	record := stateRecord{
		Active:         true,
		StartTime:      session.StartedAt.Unix(),
		Duration:       int64(session.Planned / time.Second),
		PausedDuration: int64(session.PausedTotal / time.Second),
		Remaining:      int64(session.RemainingSnap / time.Second),
		SchemaVersion:  domain.SchemaVersion,
	}
	if session.PausedAt != nil {
		pausedAt := session.PausedAt.Unix()
		record.PausedAt = &pausedAt
	}
	payload, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal session state: %w", err)
	}
	return atomicfile.Write(s.path, payload)
}

func (s *FileStateStore) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("clear session state: %w", err)
	}
	return nil
}
