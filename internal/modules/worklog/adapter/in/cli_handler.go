package in

import (
	"context"

	"dwt/internal/modules/worklog/dto"
	worklogin "dwt/internal/modules/worklog/port/in"
)

type CLIHandler struct {
	usecase worklogin.Usecase
}

func NewCLIHandler(usecase worklogin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Recent(ctx context.Context, limit int) ([]dto.EntryOutput, error) {
	return h.usecase.Recent(ctx, limit)
}

func (h CLIHandler) DailyTotals(ctx context.Context, days int) ([]dto.DayTotal, error) {
	return h.usecase.DailyTotals(ctx, days)
}

func (h CLIHandler) Reindex(ctx context.Context) (int, error) {
	return h.usecase.Reindex(ctx)
}
