package out

import "context"

// GoalStore persists the single daily-goal scalar. Load falls back to the
// default when nothing has been configured yet.
type GoalStore interface {
	Load(ctx context.Context) (float64, error)
	Save(ctx context.Context, hours float64) error
}
