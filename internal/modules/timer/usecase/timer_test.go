package usecase_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	timeradapter "dwt/internal/modules/timer/adapter/out"
	timerout "dwt/internal/modules/timer/port/out"
	"dwt/internal/modules/timer/service"
	"dwt/internal/modules/timer/usecase"
	worklogdto "dwt/internal/modules/worklog/dto"
	apperrors "dwt/internal/platform/errors"
)

type fakeClock struct {
	values []time.Time
	idx    int
}

func (f *fakeClock) Now() time.Time {
	if f.idx >= len(f.values) {
		return f.values[len(f.values)-1]
	}
	v := f.values[f.idx]
	f.idx++
	return v
}

type fakeWorklog struct {
	appended []worklogdto.AppendInput
	err      error
}

func (f *fakeWorklog) Append(_ context.Context, input worklogdto.AppendInput) (worklogdto.EntryOutput, error) {
	if f.err != nil {
		return worklogdto.EntryOutput{}, f.err
	}
	f.appended = append(f.appended, input)
	return worklogdto.EntryOutput{
		ID:        "entry-1",
		StartedAt: input.StartedAt,
		EndedAt:   input.EndedAt,
		Minutes:   input.Minutes,
		Completed: input.Completed,
	}, nil
}

func (f *fakeWorklog) List(context.Context) ([]worklogdto.EntryOutput, error) { return nil, nil }
func (f *fakeWorklog) Recent(context.Context, int) ([]worklogdto.EntryOutput, error) {
	return nil, nil
}
func (f *fakeWorklog) DailyTotals(context.Context, int) ([]worklogdto.DayTotal, error) {
	return nil, nil
}
func (f *fakeWorklog) Reindex(context.Context) (int, error) { return 0, nil }

type fakeHooks struct {
	fired   []timerout.Signal
	reports []timerout.HookReport
}

func (f *fakeHooks) Fire(_ context.Context, signal timerout.Signal) []timerout.HookReport {
	f.fired = append(f.fired, signal)
	return f.reports
}

type fakePrompt struct {
	answer bool
	asked  int
}

func (f *fakePrompt) Confirm(string) bool {
	f.asked++
	return f.answer
}

func base() time.Time {
	return time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
}

func TestStartRejectsSecondSession(t *testing.T) {
	t.Parallel()
	store := timeradapter.NewFileStateStore(filepath.Join(t.TempDir(), "session-state.json"))
	clk := &fakeClock{values: []time.Time{base(), base().Add(time.Minute)}}
	hooks := &fakeHooks{}
	uc := usecase.NewInteractor(service.NewTimerService(clk), store, hooks, &fakeWorklog{}, nil)

	if _, err := uc.Start(context.Background()); err != nil {
		t.Fatalf("first start: %v", err)
	}
	if _, err := uc.Start(context.Background()); !errors.Is(err, apperrors.ErrSessionActive) {
		t.Fatalf("second start: %v", err)
	}

	// The refused start must not have touched the stored record.
	session, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load after refused start: %v", err)
	}
	if !session.StartedAt.Equal(base()) {
		t.Fatalf("stored start moved to %v", session.StartedAt)
	}
}

func TestCompleteLogsPlannedMinutes(t *testing.T) {
	t.Parallel()
	store := timeradapter.NewFileStateStore(filepath.Join(t.TempDir(), "session-state.json"))
	end := base().Add(70 * time.Minute)
	clk := &fakeClock{values: []time.Time{base(), end}}
	worklog := &fakeWorklog{}
	hooks := &fakeHooks{}
	uc := usecase.NewInteractor(service.NewTimerService(clk), store, hooks, worklog, nil)

	if _, err := uc.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	out, err := uc.Complete(context.Background())
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if out.Minutes != 60 {
		t.Fatalf("completed session logs the planned 60 minutes, got %d", out.Minutes)
	}
	if len(worklog.appended) != 1 || !worklog.appended[0].Completed {
		t.Fatalf("expected one completed entry, got %+v", worklog.appended)
	}
	if _, err := store.Load(context.Background()); !errors.Is(err, apperrors.ErrNoActiveSession) {
		t.Fatalf("state must be cleared after complete: %v", err)
	}
	if len(hooks.fired) != 3 || hooks.fired[1] != timerout.SignalEnd || hooks.fired[2] != timerout.SignalNotify {
		t.Fatalf("hook signals = %v", hooks.fired)
	}
}

func TestCompleteKeepsStateWhenLogAppendFails(t *testing.T) {
	t.Parallel()
	store := timeradapter.NewFileStateStore(filepath.Join(t.TempDir(), "session-state.json"))
	clk := &fakeClock{values: []time.Time{base(), base().Add(time.Hour)}}
	worklog := &fakeWorklog{err: errors.New("disk full")}
	uc := usecase.NewInteractor(service.NewTimerService(clk), store, &fakeHooks{}, worklog, nil)

	if _, err := uc.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := uc.Complete(context.Background()); err == nil {
		t.Fatalf("complete must surface the append failure")
	}
	if _, err := store.Load(context.Background()); err != nil {
		t.Fatalf("state must survive a failed log append: %v", err)
	}
}

func TestEndEarlyBelowThresholdDiscards(t *testing.T) {
	t.Parallel()
	store := timeradapter.NewFileStateStore(filepath.Join(t.TempDir(), "session-state.json"))
	clk := &fakeClock{values: []time.Time{base(), base().Add(7 * time.Minute)}}
	worklog := &fakeWorklog{}
	uc := usecase.NewInteractor(service.NewTimerService(clk), store, &fakeHooks{}, worklog, nil)

	if _, err := uc.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	out, err := uc.EndEarly(context.Background())
	if err != nil {
		t.Fatalf("end early: %v", err)
	}
	if out.Logged {
		t.Fatalf("7 worked minutes must not be logged")
	}
	if out.Minutes != 7 {
		t.Fatalf("worked minutes = %d", out.Minutes)
	}
	if len(worklog.appended) != 0 {
		t.Fatalf("no entry expected, got %+v", worklog.appended)
	}
	if _, err := store.Load(context.Background()); !errors.Is(err, apperrors.ErrNoActiveSession) {
		t.Fatalf("state must be cleared: %v", err)
	}
}

func TestEndEarlyAboveThresholdLogsWorkedMinutes(t *testing.T) {
	t.Parallel()
	store := timeradapter.NewFileStateStore(filepath.Join(t.TempDir(), "session-state.json"))
	clk := &fakeClock{values: []time.Time{base(), base().Add(25*time.Minute + 40*time.Second), base().Add(26 * time.Minute)}}
	worklog := &fakeWorklog{}
	uc := usecase.NewInteractor(service.NewTimerService(clk), store, &fakeHooks{}, worklog, nil)

	if _, err := uc.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	out, err := uc.EndEarly(context.Background())
	if err != nil {
		t.Fatalf("end early: %v", err)
	}
	if !out.Logged || out.Minutes != 25 {
		t.Fatalf("expected 25 logged minutes, got %+v", out)
	}
	if len(worklog.appended) != 1 || worklog.appended[0].Minutes != 25 {
		t.Fatalf("appended = %+v", worklog.appended)
	}
}

func TestQuitLogsNothing(t *testing.T) {
	t.Parallel()
	store := timeradapter.NewFileStateStore(filepath.Join(t.TempDir(), "session-state.json"))
	clk := &fakeClock{values: []time.Time{base(), base().Add(45 * time.Minute)}}
	worklog := &fakeWorklog{}
	uc := usecase.NewInteractor(service.NewTimerService(clk), store, &fakeHooks{}, worklog, nil)

	if _, err := uc.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := uc.Quit(context.Background()); err != nil {
		t.Fatalf("quit: %v", err)
	}
	if len(worklog.appended) != 0 {
		t.Fatalf("quit must not log, got %+v", worklog.appended)
	}
	if _, err := store.Load(context.Background()); !errors.Is(err, apperrors.ErrNoActiveSession) {
		t.Fatalf("state must be cleared: %v", err)
	}
}

func TestPauseResumeThroughStore(t *testing.T) {
	t.Parallel()
	store := timeradapter.NewFileStateStore(filepath.Join(t.TempDir(), "session-state.json"))
	clk := &fakeClock{values: []time.Time{
		base(),
		base().Add(10 * time.Second),
		base().Add(70 * time.Second),
		base().Add(70 * time.Second),
	}}
	uc := usecase.NewInteractor(service.NewTimerService(clk), store, &fakeHooks{}, &fakeWorklog{}, nil)

	if _, err := uc.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	paused, err := uc.Pause(context.Background())
	if err != nil {
		t.Fatalf("pause: %v", err)
	}
	if paused.Remaining != 59*time.Minute+50*time.Second {
		t.Fatalf("remaining at pause = %v", paused.Remaining)
	}

	if _, err := uc.Pause(context.Background()); !errors.Is(err, apperrors.ErrAlreadyPaused) {
		t.Fatalf("second pause: %v", err)
	}

	resumed, err := uc.Resume(context.Background())
	if err != nil {
		t.Fatalf("resume: %v", err)
	}
	if resumed.PausedTotal != time.Minute {
		t.Fatalf("paused total = %v", resumed.PausedTotal)
	}
	if resumed.Remaining != 59*time.Minute+50*time.Second {
		t.Fatalf("remaining after resume = %v", resumed.Remaining)
	}
}

func TestStatusIsReadOnlyAndZeroWhenAbsent(t *testing.T) {
	t.Parallel()
	store := timeradapter.NewFileStateStore(filepath.Join(t.TempDir(), "session-state.json"))
	clk := &fakeClock{values: []time.Time{base()}}
	uc := usecase.NewInteractor(service.NewTimerService(clk), store, &fakeHooks{}, &fakeWorklog{}, nil)

	status, err := uc.Status(context.Background())
	if err != nil {
		t.Fatalf("status with no session: %v", err)
	}
	if status.Active {
		t.Fatalf("no session must report inactive")
	}
}

func TestStartWithFailingBeginHook(t *testing.T) {
	t.Parallel()
	failing := func() *fakeHooks {
		return &fakeHooks{reports: []timerout.HookReport{{Name: "focus", Err: errors.New("exit 1")}}}
	}

	t.Run("declined", func(t *testing.T) {
		t.Parallel()
		store := timeradapter.NewFileStateStore(filepath.Join(t.TempDir(), "session-state.json"))
		clk := &fakeClock{values: []time.Time{base()}}
		prompt := &fakePrompt{answer: false}
		uc := usecase.NewInteractor(service.NewTimerService(clk), store, failing(), &fakeWorklog{}, prompt)

		if _, err := uc.Start(context.Background()); err == nil {
			t.Fatalf("declined start must fail")
		}
		if prompt.asked != 1 {
			t.Fatalf("prompt asked %d times", prompt.asked)
		}
		if _, err := store.Load(context.Background()); !errors.Is(err, apperrors.ErrNoActiveSession) {
			t.Fatalf("declined start must write nothing: %v", err)
		}
	})

	t.Run("accepted", func(t *testing.T) {
		t.Parallel()
		store := timeradapter.NewFileStateStore(filepath.Join(t.TempDir(), "session-state.json"))
		clk := &fakeClock{values: []time.Time{base()}}
		uc := usecase.NewInteractor(service.NewTimerService(clk), store, failing(), &fakeWorklog{}, &fakePrompt{answer: true})

		out, err := uc.Start(context.Background())
		if err != nil {
			t.Fatalf("accepted start: %v", err)
		}
		if len(out.HookFailures) != 1 || out.HookFailures[0].Name != "focus" {
			t.Fatalf("hook failures = %+v", out.HookFailures)
		}
	})
}
