package apperrors

import "errors"

var (
	ErrNoActiveSession = errors.New("no active session")
	ErrSessionActive   = errors.New("a session is already active")
	ErrAlreadyPaused   = errors.New("session is already paused")
	ErrNotPaused       = errors.New("session is not paused")
	ErrHookTimeout     = errors.New("automation hook timed out")
	ErrCorruptLog      = errors.New("session log is corrupt")
)
