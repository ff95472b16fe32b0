package out

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"dwt/internal/modules/worklog/domain"
	worklogout "dwt/internal/modules/worklog/port/out"
	"dwt/internal/platform/atomicfile"
	"dwt/internal/platform/clock"
	apperrors "dwt/internal/platform/errors"
)

// FileLogStore keeps the whole log in one JSON object. Appends rewrite the
// file through a temp-file rename so a crash mid-write leaves the previous
// log intact.
type FileLogStore struct {
	path  string
	clock clock.Clock
}

func NewFileLogStore(path string, clk clock.Clock) worklogout.LogStore {
	return &FileLogStore{path: path, clock: clk}
}

func (s *FileLogStore) Append(ctx context.Context, entry domain.Entry) error {
	log, err := s.read(ctx)
	if err != nil {
		return err
	}
	log.Sessions = append(log.Sessions, entry)
	log.TotalSessions = len(log.Sessions)
	log.Extracted = s.clock.Now().UTC()
	return s.write(log)
}

// List degrades a corrupt log to empty so read-only commands keep working;
// Append still refuses, keeping the broken file intact for manual recovery.
func (s *FileLogStore) List(ctx context.Context) ([]domain.Entry, error) {
	log, err := s.read(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrCorruptLog) {
			_, _ = fmt.Fprintf(os.Stderr, "warning: %v, treating log as empty\n", err)
			return []domain.Entry{}, nil
		}
		return nil, err
	}
	return log.Sessions, nil
}

func (s *FileLogStore) read(_ context.Context) (domain.Log, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			empty := domain.Log{Sessions: []domain.Entry{}}
			if err := s.write(empty); err != nil {
				return domain.Log{}, err
			}
			return empty, nil
		}
		return domain.Log{}, fmt.Errorf("read session log: %w", err)
	}
	log := domain.Log{}
	if err := json.Unmarshal(payload, &log); err != nil {
		return domain.Log{}, fmt.Errorf("%w: %s: %v", apperrors.ErrCorruptLog, s.path, err)
	}
	if log.Sessions == nil {
		log.Sessions = []domain.Entry{}
	}
	return log, nil
}

func (s *FileLogStore) write(log domain.Log) error {
	payload, err := json.MarshalIndent(log, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal session log: %w", err)
	}
	return atomicfile.Write(s.path, payload)
}
