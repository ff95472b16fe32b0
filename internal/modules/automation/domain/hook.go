package domain

import (
	"errors"
	"fmt"
)

type Signal string

const (
	SignalBegin  Signal = "begin"
	SignalEnd    Signal = "end"
	SignalNotify Signal = "notify"
)

func (s Signal) Validate() error {
	switch s {
	case SignalBegin, SignalEnd, SignalNotify:
		return nil
	default:
		return fmt.Errorf("unknown signal: %s", s)
	}
}

type Kind string

const (
	KindExec   Kind = "exec"
	KindPlugin Kind = "plugin"
)

var (
	ErrHookDisabled = errors.New("hook is disabled")
	ErrHookTimeout  = errors.New("hook timed out")
)

// DefaultTimeoutMS bounds a hook invocation when the manifest does not say
// otherwise.
const DefaultTimeoutMS = 10_000

// Hook is one configured external automation. Exec hooks run a command line;
// plugin hooks dispatch to a long-form automation binary over the plugin rpc.
type Hook struct {
	Name      string   `yaml:"name"`
	Kind      Kind     `yaml:"kind"`
	Signals   []Signal `yaml:"signals"`
	Argv      []string `yaml:"argv,omitempty"`
	Binary    string   `yaml:"binary,omitempty"`
	TimeoutMS int      `yaml:"timeout_ms,omitempty"`
	Enabled   bool     `yaml:"enabled"`
}

func (h Hook) Validate() error {
	if h.Name == "" {
		return fmt.Errorf("hook name is required")
	}
	switch h.Kind {
	case KindExec:
		if len(h.Argv) == 0 {
			return fmt.Errorf("exec hook %s requires argv", h.Name)
		}
	case KindPlugin:
		if h.Binary == "" {
			return fmt.Errorf("plugin hook %s requires a binary path", h.Name)
		}
	default:
		return fmt.Errorf("unknown hook kind: %s", h.Kind)
	}
	if len(h.Signals) == 0 {
		return fmt.Errorf("hook %s must subscribe to at least one signal", h.Name)
	}
	seen := map[Signal]struct{}{}
	for _, signal := range h.Signals {
		if err := signal.Validate(); err != nil {
			return err
		}
		if _, ok := seen[signal]; ok {
			return fmt.Errorf("hook %s has duplicate signal: %s", h.Name, signal)
		}
		seen[signal] = struct{}{}
	}
	if h.TimeoutMS < 0 {
		return fmt.Errorf("hook %s timeout must be non-negative", h.Name)
	}
	return nil
}

func (h Hook) SubscribesTo(signal Signal) bool {
	for _, s := range h.Signals {
		if s == signal {
			return true
		}
	}
	return false
}

type Metadata struct {
	Name    string
	Version string
}
