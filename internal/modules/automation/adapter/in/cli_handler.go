package in

import (
	"context"

	"dwt/internal/modules/automation/dto"
	automationin "dwt/internal/modules/automation/port/in"
)

type CLIHandler struct {
	usecase automationin.Usecase
}

func NewCLIHandler(usecase automationin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Doctor(ctx context.Context) ([]dto.DoctorResult, error) {
	return h.usecase.Doctor(ctx)
}
