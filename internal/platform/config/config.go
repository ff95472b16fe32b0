package config

import (
	"fmt"
	"path/filepath"
)

type Config struct {
	DataDir      string
	StatePath    string
	LogPath      string
	GoalPath     string
	DBPath       string
	ManifestPath string
}

// New derives every file location from the data directory. The session log
// lives at the directory root so external tooling can read it; everything
// private goes under .dwt.
func New(dataDir string) (Config, error) {
	if dataDir == "" {
		return Config{}, fmt.Errorf("data directory is required")
	}
	dotDir := filepath.Join(dataDir, ".dwt")
	return Config{
		DataDir:      dataDir,
		StatePath:    filepath.Join(dotDir, "session-state.json"),
		LogPath:      filepath.Join(dataDir, "deep-work-data.json"),
		GoalPath:     filepath.Join(dotDir, "config.json"),
		DBPath:       filepath.Join(dotDir, "dwt.db"),
		ManifestPath: filepath.Join(dotDir, "automations.yaml"),
	}, nil
}
