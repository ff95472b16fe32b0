package usecase

import (
	"context"

	"dwt/internal/modules/automation/domain"
	"dwt/internal/modules/automation/dto"
	automationin "dwt/internal/modules/automation/port/in"
	"dwt/internal/modules/automation/service"
)

type Interactor struct {
	svc *service.AutomationService
}

func NewInteractor(svc *service.AutomationService) automationin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Fire(ctx context.Context, signal string) ([]dto.HookResult, error) {
	return i.svc.Fire(ctx, domain.Signal(signal))
}

func (i *Interactor) Doctor(ctx context.Context) ([]dto.DoctorResult, error) {
	return i.svc.Doctor(ctx)
}
