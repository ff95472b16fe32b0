package out

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"dwt/internal/modules/automation/domain"
	automationout "dwt/internal/modules/automation/port/out"
)

// OSExecRunner runs exec hooks through the OS shell-less exec path, bounded
// by the caller's context deadline. Output is captured only to improve the
// failure message.
type OSExecRunner struct{}

func NewOSExecRunner() automationout.ExecRunner {
	return &OSExecRunner{}
}

func (r *OSExecRunner) Run(ctx context.Context, hook domain.Hook) error {
	cmd := exec.CommandContext(ctx, hook.Argv[0], hook.Argv[1:]...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		detail := strings.TrimSpace(string(output))
		if detail != "" {
			return fmt.Errorf("run %s: %w: %s", hook.Name, err, detail)
		}
		return fmt.Errorf("run %s: %w", hook.Name, err)
	}
	return nil
}
