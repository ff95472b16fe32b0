package domain_test

import (
	"testing"

	"dwt/internal/modules/automation/domain"
)

func valid() domain.Hook {
	return domain.Hook{
		Name:    "focus",
		Kind:    domain.KindExec,
		Signals: []domain.Signal{domain.SignalBegin},
		Argv:    []string{"true"},
		Enabled: true,
	}
}

func TestHookValidate(t *testing.T) {
	t.Parallel()
	if err := valid().Validate(); err != nil {
		t.Fatalf("valid hook: %v", err)
	}

	cases := map[string]func(h *domain.Hook){
		"missing name":      func(h *domain.Hook) { h.Name = "" },
		"exec without argv": func(h *domain.Hook) { h.Argv = nil },
		"unknown kind":      func(h *domain.Hook) { h.Kind = "cron" },
		"no signals":        func(h *domain.Hook) { h.Signals = nil },
		"bad signal":        func(h *domain.Hook) { h.Signals = []domain.Signal{"launch"} },
		"duplicate signal": func(h *domain.Hook) {
			h.Signals = []domain.Signal{domain.SignalBegin, domain.SignalBegin}
		},
		"negative timeout": func(h *domain.Hook) { h.TimeoutMS = -1 },
		"plugin without binary": func(h *domain.Hook) {
			h.Kind = domain.KindPlugin
			h.Binary = ""
		},
	}
	for name, mutate := range cases {
		hook := valid()
		mutate(&hook)
		if err := hook.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}

func TestSubscribesTo(t *testing.T) {
	t.Parallel()
	hook := valid()
	hook.Signals = []domain.Signal{domain.SignalBegin, domain.SignalEnd}
	if !hook.SubscribesTo(domain.SignalEnd) {
		t.Fatalf("must subscribe to end")
	}
	if hook.SubscribesTo(domain.SignalNotify) {
		t.Fatalf("must not subscribe to notify")
	}
}
