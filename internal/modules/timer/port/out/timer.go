package out

import (
	"context"

	"dwt/internal/modules/timer/domain"
)

// StateStore is the durable single-record home of the in-progress session.
// Load returns apperrors.ErrNoActiveSession when no record exists; a corrupt
// record is treated the same way, never as a fatal error.
type StateStore interface {
	Load(ctx context.Context) (domain.Session, error)
	Save(ctx context.Context, session domain.Session) error
	Clear(ctx context.Context) error
}

// Signal names the lifecycle moment a hook fires on.
type Signal string

const (
	SignalBegin  Signal = "begin"
	SignalEnd    Signal = "end"
	SignalNotify Signal = "notify"
)

// HookRunner fires external automations. Failures are reported back as the
// HookReport slice, never as an error that would block a state transition.
type HookRunner interface {
	Fire(ctx context.Context, signal Signal) []HookReport
}

type HookReport struct {
	Name string
	Err  error
}

// ConfirmPrompt asks the operator a yes/no question. Used only when the begin
// hook fails on start.
type ConfirmPrompt interface {
	Confirm(question string) bool
}
