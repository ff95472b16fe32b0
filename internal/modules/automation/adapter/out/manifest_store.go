package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"dwt/internal/modules/automation/domain"
	automationout "dwt/internal/modules/automation/port/out"
)

type manifestFile struct {
	Hooks []domain.Hook `yaml:"hooks"`
}

// FileManifestStore reads automations.yaml. A missing manifest means no
// hooks are configured, which is the common case.
type FileManifestStore struct {
	basePath string
	path     string
}

func NewFileManifestStore(basePath, path string) automationout.ManifestStore {
	return &FileManifestStore{basePath: basePath, path: path}
}

func (s *FileManifestStore) Load(_ context.Context) ([]domain.Hook, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.Hook{}, nil
		}
		return nil, fmt.Errorf("read automation manifest: %w", err)
	}
	manifest := manifestFile{}
	if err := yaml.Unmarshal(payload, &manifest); err != nil {
		return nil, fmt.Errorf("decode automation manifest: %w", err)
	}
	for i := range manifest.Hooks {
		if manifest.Hooks[i].Binary != "" && !filepath.IsAbs(manifest.Hooks[i].Binary) {
			manifest.Hooks[i].Binary = filepath.Clean(filepath.Join(s.basePath, manifest.Hooks[i].Binary))
		}
	}
	return manifest.Hooks, nil
}
