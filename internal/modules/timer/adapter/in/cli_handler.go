package in

import (
	"context"

	"dwt/internal/modules/timer/dto"
	timerin "dwt/internal/modules/timer/port/in"
)

type CLIHandler struct {
	usecase timerin.Usecase
}

func NewCLIHandler(usecase timerin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Start(ctx context.Context) (dto.StartOutput, error) {
	return h.usecase.Start(ctx)
}

func (h CLIHandler) Pause(ctx context.Context) (dto.PauseOutput, error) {
	return h.usecase.Pause(ctx)
}

func (h CLIHandler) Resume(ctx context.Context) (dto.ResumeOutput, error) {
	return h.usecase.Resume(ctx)
}

func (h CLIHandler) Complete(ctx context.Context) (dto.CompleteOutput, error) {
	return h.usecase.Complete(ctx)
}

func (h CLIHandler) EndEarly(ctx context.Context) (dto.EndEarlyOutput, error) {
	return h.usecase.EndEarly(ctx)
}

func (h CLIHandler) Quit(ctx context.Context) (dto.QuitOutput, error) {
	return h.usecase.Quit(ctx)
}

func (h CLIHandler) Status(ctx context.Context) (dto.StatusOutput, error) {
	return h.usecase.Status(ctx)
}
