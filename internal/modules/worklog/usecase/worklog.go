package usecase

import (
	"context"
	"sort"
	"time"

	"dwt/internal/modules/worklog/domain"
	"dwt/internal/modules/worklog/dto"
	worklogin "dwt/internal/modules/worklog/port/in"
	worklogout "dwt/internal/modules/worklog/port/out"
	"dwt/internal/modules/worklog/service"
	"dwt/internal/platform/clock"
)

type Interactor struct {
	svc       *service.WorklogService
	store     worklogout.LogStore
	projector worklogout.IndexProjector
	clock     clock.Clock
}

func NewInteractor(svc *service.WorklogService, store worklogout.LogStore, projector worklogout.IndexProjector, clk clock.Clock) worklogin.Usecase {
	return &Interactor{svc: svc, store: store, projector: projector, clock: clk}
}

func (i *Interactor) Append(ctx context.Context, input dto.AppendInput) (dto.EntryOutput, error) {
	entry, err := i.svc.Append(ctx, input.StartedAt, input.EndedAt, input.Minutes, input.Completed)
	if err != nil {
		return dto.EntryOutput{}, err
	}
	return toOutput(entry), nil
}

func (i *Interactor) List(ctx context.Context) ([]dto.EntryOutput, error) {
	entries, err := i.store.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EntryOutput, 0, len(entries))
	for _, entry := range entries {
		out = append(out, toOutput(entry))
	}
	return out, nil
}

func (i *Interactor) Recent(ctx context.Context, limit int) ([]dto.EntryOutput, error) {
	entries, err := i.projector.Recent(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EntryOutput, 0, len(entries))
	for _, entry := range entries {
		out = append(out, toOutput(entry))
	}
	return out, nil
}

// DailyTotals sums logged minutes per calendar date over the trailing window,
// today included, oldest date first.
func (i *Interactor) DailyTotals(ctx context.Context, days int) ([]dto.DayTotal, error) {
	if days <= 0 {
		days = 7
	}
	since := i.clock.Now().UTC().AddDate(0, 0, -(days - 1)).Truncate(24 * time.Hour)
	totals, err := i.projector.DailyMinutes(ctx, since)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DayTotal, 0, len(totals))
	for date, minutes := range totals {
		out = append(out, dto.DayTotal{Date: date, Minutes: minutes})
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Date < out[b].Date })
	return out, nil
}

func (i *Interactor) Reindex(ctx context.Context) (int, error) {
	return i.svc.Reindex(ctx)
}

func toOutput(entry domain.Entry) dto.EntryOutput {
	return dto.EntryOutput{
		ID:        entry.ID,
		StartedAt: entry.StartedAt,
		EndedAt:   entry.EndedAt,
		Minutes:   entry.Minutes,
		Completed: entry.Completed,
	}
}
