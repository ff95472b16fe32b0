package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"dwt/internal/modules/report/domain"
	reportout "dwt/internal/modules/report/port/out"
	"dwt/internal/platform/atomicfile"
)

type goalRecord struct {
	DailyGoal float64 `json:"daily_goal"`
}

// FileGoalStore keeps the daily goal in a tiny JSON config file. Missing or
// unreadable config falls back to the default rather than failing.
type FileGoalStore struct {
	path string
}

func NewFileGoalStore(path string) reportout.GoalStore {
	return &FileGoalStore{path: path}
}

func (s *FileGoalStore) Load(_ context.Context) (float64, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		return domain.DefaultDailyGoalHours, nil
	}
	record := goalRecord{DailyGoal: domain.DefaultDailyGoalHours}
	if err := json.Unmarshal(payload, &record); err != nil {
		return domain.DefaultDailyGoalHours, nil
	}
	if record.DailyGoal < 0 {
		return domain.DefaultDailyGoalHours, nil
	}
	return record.DailyGoal, nil
}

func (s *FileGoalStore) Save(_ context.Context, hours float64) error {
	payload, err := json.MarshalIndent(goalRecord{DailyGoal: hours}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return atomicfile.Write(s.path, payload)
}
