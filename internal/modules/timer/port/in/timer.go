package in

import (
	"context"

	"dwt/internal/modules/timer/dto"
)

type Usecase interface {
	Start(ctx context.Context) (dto.StartOutput, error)
	Pause(ctx context.Context) (dto.PauseOutput, error)
	Resume(ctx context.Context) (dto.ResumeOutput, error)
	Complete(ctx context.Context) (dto.CompleteOutput, error)
	EndEarly(ctx context.Context) (dto.EndEarlyOutput, error)
	Quit(ctx context.Context) (dto.QuitOutput, error)
	Status(ctx context.Context) (dto.StatusOutput, error)
}
