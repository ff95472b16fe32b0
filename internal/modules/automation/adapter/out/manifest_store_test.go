package out_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	adapter "dwt/internal/modules/automation/adapter/out"
	"dwt/internal/modules/automation/domain"
)

const manifest = `
hooks:
  - name: focus-mode
    kind: exec
    signals: [begin]
    argv: ["shortcuts", "run", "start deep"]
    enabled: true
  - name: chime
    kind: exec
    signals: [notify]
    argv: ["afplay", "/System/Library/Sounds/Glass.aiff"]
    timeout_ms: 2000
    enabled: true
  - name: tracker
    kind: plugin
    signals: [begin, end]
    binary: plugins/tracker
    enabled: false
`

func TestLoadManifest(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "automations.yaml")
	if err := os.WriteFile(path, []byte(manifest), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	store := adapter.NewFileManifestStore(dir, path)

	hooks, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(hooks) != 3 {
		t.Fatalf("hooks = %+v", hooks)
	}
	if hooks[0].Kind != domain.KindExec || hooks[0].Argv[2] != "start deep" {
		t.Fatalf("first hook = %+v", hooks[0])
	}
	if hooks[1].TimeoutMS != 2000 {
		t.Fatalf("timeout = %d", hooks[1].TimeoutMS)
	}
	// Relative plugin binaries are resolved against the data dir.
	if got, want := hooks[2].Binary, filepath.Join(dir, "plugins", "tracker"); got != want {
		t.Fatalf("binary = %s, want %s", got, want)
	}
	if hooks[2].Enabled {
		t.Fatalf("tracker must stay disabled")
	}
	for _, hook := range hooks {
		if err := hook.Validate(); err != nil {
			t.Fatalf("hook %s invalid: %v", hook.Name, err)
		}
	}
}

func TestMissingManifestMeansNoHooks(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	store := adapter.NewFileManifestStore(dir, filepath.Join(dir, "automations.yaml"))
	hooks, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load missing manifest: %v", err)
	}
	if len(hooks) != 0 {
		t.Fatalf("hooks = %+v", hooks)
	}
}

func TestMalformedManifestFails(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "automations.yaml")
	if err := os.WriteFile(path, []byte("hooks: {nope"), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	store := adapter.NewFileManifestStore(dir, path)
	if _, err := store.Load(context.Background()); err == nil {
		t.Fatalf("malformed yaml must fail loudly")
	}
}
