package dto

import "time"

// HookFailure describes one automation hook that failed. Failures ride along
// on the outputs so the handler can print them; they never fail a transition.
type HookFailure struct {
	Name   string
	Reason string
}

type StartOutput struct {
	StartedAt    time.Time
	Planned      time.Duration
	HookFailures []HookFailure
}

type PauseOutput struct {
	PausedAt     time.Time
	Remaining    time.Duration
	HookFailures []HookFailure
}

type ResumeOutput struct {
	Remaining    time.Duration
	PausedTotal  time.Duration
	HookFailures []HookFailure
}

type CompleteOutput struct {
	EntryID      string
	Minutes      int
	HookFailures []HookFailure
}

// EndEarlyOutput reports what an explicit early stop did with the partial
// session: Logged is false when worked time fell under the minimum.
type EndEarlyOutput struct {
	EntryID      string
	Minutes      int
	Logged       bool
	HookFailures []HookFailure
}

type QuitOutput struct {
	HookFailures []HookFailure
}

type StatusOutput struct {
	Active      bool
	Paused      bool
	StartedAt   time.Time
	PausedAt    time.Time
	Remaining   time.Duration
	PausedTotal time.Duration
}
