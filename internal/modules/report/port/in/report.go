package in

import (
	"context"

	"dwt/internal/modules/report/dto"
)

type Usecase interface {
	Report(ctx context.Context) (dto.ReportOutput, error)
	GetGoal(ctx context.Context) (dto.GoalOutput, error)
	SetGoal(ctx context.Context, hours float64) (dto.GoalOutput, error)
}
