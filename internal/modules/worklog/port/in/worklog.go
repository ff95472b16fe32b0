package in

import (
	"context"

	"dwt/internal/modules/worklog/dto"
)

type Usecase interface {
	Append(ctx context.Context, input dto.AppendInput) (dto.EntryOutput, error)
	List(ctx context.Context) ([]dto.EntryOutput, error)
	Recent(ctx context.Context, limit int) ([]dto.EntryOutput, error)
	DailyTotals(ctx context.Context, days int) ([]dto.DayTotal, error)
	Reindex(ctx context.Context) (int, error)
}
