package usecase

import (
	"context"
	"fmt"

	"dwt/internal/modules/timer/domain"
	"dwt/internal/modules/timer/dto"
	timerin "dwt/internal/modules/timer/port/in"
	timerout "dwt/internal/modules/timer/port/out"
	"dwt/internal/modules/timer/service"
	worklogdto "dwt/internal/modules/worklog/dto"
	worklogin "dwt/internal/modules/worklog/port/in"
	apperrors "dwt/internal/platform/errors"
)

type Interactor struct {
	svc     *service.TimerService
	store   timerout.StateStore
	hooks   timerout.HookRunner
	worklog worklogin.Usecase
	prompt  timerout.ConfirmPrompt
}

func NewInteractor(svc *service.TimerService, store timerout.StateStore, hooks timerout.HookRunner, worklog worklogin.Usecase, prompt timerout.ConfirmPrompt) timerin.Usecase {
	return &Interactor{svc: svc, store: store, hooks: hooks, worklog: worklog, prompt: prompt}
}

// Start refuses to touch an existing record. The begin hook fires before any
// state is written; if it fails the operator decides whether to proceed, and
// declining leaves the world exactly as it was.
func (i *Interactor) Start(ctx context.Context) (dto.StartOutput, error) {
	if _, err := i.store.Load(ctx); err == nil {
		return dto.StartOutput{}, apperrors.ErrSessionActive
	} else if err != apperrors.ErrNoActiveSession {
		return dto.StartOutput{}, err
	}

	failures := i.fire(ctx, timerout.SignalBegin)
	if len(failures) > 0 && i.prompt != nil {
		if !i.prompt.Confirm("Failed to run begin automation. Continue anyway?") {
			return dto.StartOutput{}, fmt.Errorf("start cancelled by operator")
		}
	}

	session := i.svc.Begin()
	if err := i.store.Save(ctx, session); err != nil {
		return dto.StartOutput{}, err
	}
	return dto.StartOutput{StartedAt: session.StartedAt, Planned: session.Planned, HookFailures: failures}, nil
}

func (i *Interactor) Pause(ctx context.Context) (dto.PauseOutput, error) {
	session, err := i.store.Load(ctx)
	if err != nil {
		return dto.PauseOutput{}, err
	}
	paused, err := i.svc.Pause(session)
	if err != nil {
		return dto.PauseOutput{}, err
	}
	if err := i.store.Save(ctx, paused); err != nil {
		return dto.PauseOutput{}, err
	}
	failures := i.fire(ctx, timerout.SignalEnd)
	return dto.PauseOutput{PausedAt: *paused.PausedAt, Remaining: paused.RemainingSnap, HookFailures: failures}, nil
}

func (i *Interactor) Resume(ctx context.Context) (dto.ResumeOutput, error) {
	session, err := i.store.Load(ctx)
	if err != nil {
		return dto.ResumeOutput{}, err
	}
	running, err := i.svc.Resume(session)
	if err != nil {
		return dto.ResumeOutput{}, err
	}
	if err := i.store.Save(ctx, running); err != nil {
		return dto.ResumeOutput{}, err
	}
	failures := i.fire(ctx, timerout.SignalBegin)
	return dto.ResumeOutput{
		Remaining:    i.svc.Remaining(running),
		PausedTotal:  running.PausedTotal,
		HookFailures: failures,
	}, nil
}

// Complete logs the planned duration, not wall-clock elapsed: pauses already
// stopped the countdown, so a finished session is a full session. The record
// is cleared only after the log append succeeds.
func (i *Interactor) Complete(ctx context.Context) (dto.CompleteOutput, error) {
	session, err := i.store.Load(ctx)
	if err != nil {
		return dto.CompleteOutput{}, err
	}
	failures := i.fire(ctx, timerout.SignalEnd)
	failures = append(failures, i.fire(ctx, timerout.SignalNotify)...)

	entry, err := i.worklog.Append(ctx, worklogdto.AppendInput{
		StartedAt: session.StartedAt,
		EndedAt:   i.svc.Now(),
		Minutes:   session.PlannedMinutes(),
		Completed: true,
	})
	if err != nil {
		return dto.CompleteOutput{}, fmt.Errorf("log completed session: %w", err)
	}
	if err := i.store.Clear(ctx); err != nil {
		return dto.CompleteOutput{}, err
	}
	return dto.CompleteOutput{EntryID: entry.ID, Minutes: entry.Minutes, HookFailures: failures}, nil
}

// EndEarly accepts the partial session only when at least MinLoggableMinutes
// of real work happened; anything shorter is discarded without a record.
func (i *Interactor) EndEarly(ctx context.Context) (dto.EndEarlyOutput, error) {
	session, err := i.store.Load(ctx)
	if err != nil {
		return dto.EndEarlyOutput{}, err
	}
	worked := i.svc.WorkedMinutes(session)
	failures := i.fire(ctx, timerout.SignalEnd)

	out := dto.EndEarlyOutput{Minutes: worked, HookFailures: failures}
	if worked >= domain.MinLoggableMinutes {
		entry, err := i.worklog.Append(ctx, worklogdto.AppendInput{
			StartedAt: session.StartedAt,
			EndedAt:   i.svc.Now(),
			Minutes:   worked,
			Completed: true,
		})
		if err != nil {
			return dto.EndEarlyOutput{}, fmt.Errorf("log partial session: %w", err)
		}
		out.EntryID = entry.ID
		out.Logged = true
	}
	if err := i.store.Clear(ctx); err != nil {
		return dto.EndEarlyOutput{}, err
	}
	return out, nil
}

// Quit abandons the session: state cleared, nothing logged.
func (i *Interactor) Quit(ctx context.Context) (dto.QuitOutput, error) {
	if _, err := i.store.Load(ctx); err != nil {
		return dto.QuitOutput{}, err
	}
	failures := i.fire(ctx, timerout.SignalEnd)
	if err := i.store.Clear(ctx); err != nil {
		return dto.QuitOutput{}, err
	}
	return dto.QuitOutput{HookFailures: failures}, nil
}

// Status never mutates anything, including the state file.
func (i *Interactor) Status(ctx context.Context) (dto.StatusOutput, error) {
	session, err := i.store.Load(ctx)
	if err == apperrors.ErrNoActiveSession {
		return dto.StatusOutput{}, nil
	}
	if err != nil {
		return dto.StatusOutput{}, err
	}
	out := dto.StatusOutput{
		Active:      true,
		Paused:      session.IsPaused(),
		StartedAt:   session.StartedAt,
		Remaining:   i.svc.Remaining(session),
		PausedTotal: session.PausedTotal,
	}
	if session.PausedAt != nil {
		out.PausedAt = *session.PausedAt
	}
	return out, nil
}

func (i *Interactor) fire(ctx context.Context, signal timerout.Signal) []dto.HookFailure {
	if i.hooks == nil {
		return nil
	}
	reports := i.hooks.Fire(ctx, signal)
	failures := make([]dto.HookFailure, 0, len(reports))
	for _, report := range reports {
		if report.Err != nil {
			failures = append(failures, dto.HookFailure{Name: report.Name, Reason: report.Err.Error()})
		}
	}
	if len(failures) == 0 {
		return nil
	}
	return failures
}
