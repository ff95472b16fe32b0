package service

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"

	"dwt/internal/modules/automation/domain"
	"dwt/internal/modules/automation/dto"
	automationout "dwt/internal/modules/automation/port/out"
)

type AutomationService struct {
	store automationout.ManifestStore
	exec  automationout.ExecRunner
	host  automationout.PluginHost
}

func NewAutomationService(store automationout.ManifestStore, exec automationout.ExecRunner, host automationout.PluginHost) *AutomationService {
	return &AutomationService{store: store, exec: exec, host: host}
}

// Fire runs every enabled hook subscribed to the signal, each under its own
// timeout. Hook failures are collected, never propagated: a broken shortcut
// must not be able to block a timer transition.
func (s *AutomationService) Fire(ctx context.Context, signal domain.Signal) ([]dto.HookResult, error) {
	if err := signal.Validate(); err != nil {
		return nil, err
	}
	hooks, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	results := []dto.HookResult{}
	for _, hook := range hooks {
		if !hook.Enabled || !hook.SubscribesTo(signal) {
			continue
		}
		result := dto.HookResult{Name: hook.Name}
		if err := hook.Validate(); err != nil {
			result.Error = err.Error()
			results = append(results, result)
			continue
		}
		if err := s.runOne(ctx, hook, signal); err != nil {
			result.Error = err.Error()
		}
		results = append(results, result)
	}
	return results, nil
}

func (s *AutomationService) runOne(ctx context.Context, hook domain.Hook, signal domain.Signal) error {
	timeout := time.Duration(hook.TimeoutMS) * time.Millisecond
	if timeout <= 0 {
		timeout = domain.DefaultTimeoutMS * time.Millisecond
	}
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var err error
	switch hook.Kind {
	case domain.KindExec:
		err = s.exec.Run(callCtx, hook)
	case domain.KindPlugin:
		err = s.host.Signal(callCtx, hook, signal)
	}
	if err != nil && callCtx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("%w after %s", domain.ErrHookTimeout, timeout)
	}
	return err
}

func (s *AutomationService) Doctor(ctx context.Context) ([]dto.DoctorResult, error) {
	hooks, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	results := make([]dto.DoctorResult, 0, len(hooks))
	for _, hook := range hooks {
		result := dto.DoctorResult{Name: hook.Name, Kind: string(hook.Kind)}
		if err := hook.Validate(); err != nil {
			result.Error = err.Error()
			results = append(results, result)
			continue
		}
		switch hook.Kind {
		case domain.KindExec:
			_, lookErr := exec.LookPath(hook.Argv[0])
			result.BinaryReachable = lookErr == nil
			if !result.BinaryReachable {
				result.Error = fmt.Sprintf("command not found: %s", hook.Argv[0])
			}
		case domain.KindPlugin:
			result.BinaryReachable = fileExists(hook.Binary)
			if !result.BinaryReachable {
				result.Error = fmt.Sprintf("binary does not exist: %s", hook.Binary)
				break
			}
			if hook.Enabled && s.host != nil {
				if err := s.host.CheckLifecycle(ctx, hook); err != nil {
					result.Error = err.Error()
				} else {
					result.LifecycleOK = true
				}
			}
		}
		results = append(results, result)
	}
	return results, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
