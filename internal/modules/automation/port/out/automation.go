package out

import (
	"context"

	"dwt/internal/modules/automation/domain"
)

type ManifestStore interface {
	Load(ctx context.Context) ([]domain.Hook, error)
}

// ExecRunner runs an exec-kind hook's command line within the context's
// deadline.
type ExecRunner interface {
	Run(ctx context.Context, hook domain.Hook) error
}

// PluginHost drives plugin-kind hooks over the automation rpc.
type PluginHost interface {
	Signal(ctx context.Context, hook domain.Hook, signal domain.Signal) error
	CheckLifecycle(ctx context.Context, hook domain.Hook) error
}
