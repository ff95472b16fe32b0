package service

import (
	"context"
	"fmt"
	"time"

	"dwt/internal/modules/worklog/domain"
	worklogout "dwt/internal/modules/worklog/port/out"
	"dwt/internal/platform/id"
)

type WorklogService struct {
	idGen     id.Generator
	store     worklogout.LogStore
	projector worklogout.IndexProjector
}

func NewWorklogService(idGen id.Generator, store worklogout.LogStore, projector worklogout.IndexProjector) *WorklogService {
	return &WorklogService{idGen: idGen, store: store, projector: projector}
}

func (s *WorklogService) Append(ctx context.Context, startedAt, endedAt time.Time, minutes int, completed bool) (domain.Entry, error) {
	if minutes < 0 {
		return domain.Entry{}, fmt.Errorf("duration must be non-negative")
	}
	entry := domain.Entry{
		ID:        s.idGen.New(),
		StartedAt: startedAt.UTC(),
		EndedAt:   endedAt.UTC(),
		Minutes:   minutes,
		Completed: completed,
	}
	if err := s.store.Append(ctx, entry); err != nil {
		return domain.Entry{}, err
	}
	if s.projector != nil {
		if err := s.projector.Upsert(ctx, entry); err != nil {
			return domain.Entry{}, fmt.Errorf("project entry: %w", err)
		}
	}
	return entry, nil
}

func (s *WorklogService) Reindex(ctx context.Context) (int, error) {
	if s.projector == nil {
		return 0, fmt.Errorf("no index projector is configured")
	}
	entries, err := s.store.List(ctx)
	if err != nil {
		return 0, err
	}
	if err := s.projector.Reset(ctx); err != nil {
		return 0, err
	}
	for _, entry := range entries {
		if err := s.projector.Upsert(ctx, entry); err != nil {
			return 0, fmt.Errorf("project entry %s: %w", entry.ID, err)
		}
	}
	return len(entries), nil
}
