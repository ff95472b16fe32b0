package in

import (
	"context"

	"dwt/internal/modules/automation/dto"
)

type Usecase interface {
	// Fire dispatches a lifecycle signal to every subscribed hook. One
	// result per hook that ran; failures live in the result, never in the
	// returned error, which is reserved for manifest problems.
	Fire(ctx context.Context, signal string) ([]dto.HookResult, error)
	Doctor(ctx context.Context) ([]dto.DoctorResult, error)
}
