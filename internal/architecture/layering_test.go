package architecture_test

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Cross-module coupling stays narrow and one-directional: the timer logs
// finished sessions and fires automation hooks, the report reads the log.
// Anything else crossing a module boundary is a wiring mistake.
var allowedCrossModule = map[string]map[string]bool{
	"timer":  {"worklog": true, "automation": true},
	"report": {"worklog": true},
}

// TestModuleLayerImports walks every production file under internal/modules
// and checks two rules: within a module, inner layers never import outer
// ones; across modules, only the allowed edges exist, and only through the
// target's port/in and dto packages.
func TestModuleLayerImports(t *testing.T) {
	t.Parallel()
	fset := token.NewFileSet()
	root := filepath.Join("..", "modules")
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		slash := filepath.ToSlash(path)
		module := moduleName(slash)
		layer := detectLayer(slash)
		if module == "" || layer == "" {
			return nil
		}
		node, parseErr := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if parseErr != nil {
			return parseErr
		}
		for _, imp := range node.Imports {
			importPath := strings.Trim(imp.Path.Value, `"`)
			target := importedModule(importPath)
			if target == "" {
				continue
			}
			if violatesLayerRule(module, layer, target, importPath) {
				t.Fatalf("forbidden import in %s (%s): %s", slash, layer, importPath)
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk modules: %v", err)
	}
}

func moduleName(path string) string {
	parts := strings.Split(path, "/")
	for i := 0; i < len(parts)-1; i++ {
		if parts[i] == "modules" && i+1 < len(parts) {
			return parts[i+1]
		}
	}
	return ""
}

// importedModule returns the module an import reaches into, or "" for
// imports outside internal/modules.
func importedModule(importPath string) string {
	const prefix = "dwt/internal/modules/"
	rest := strings.TrimPrefix(importPath, prefix)
	if rest == importPath {
		return ""
	}
	return strings.SplitN(rest, "/", 2)[0]
}

func detectLayer(path string) string {
	for _, layer := range []string{"adapter/in", "adapter/out", "usecase", "service", "domain", "port/in", "port/out", "dto"} {
		if strings.Contains(path, "/"+layer+"/") {
			return layer
		}
	}
	return ""
}

func isPortIn(path string) bool {
	return strings.Contains(path, "/port/in/") || strings.HasSuffix(path, "/port/in")
}

func isDTO(path string) bool {
	return strings.Contains(path, "/dto/") || strings.HasSuffix(path, "/dto")
}

func violatesLayerRule(module, layer, target, importPath string) bool {
	if target != module {
		if !allowedCrossModule[module][target] {
			return true
		}
		// Other modules are reached through their public face only.
		return !isPortIn(importPath) && !isDTO(importPath)
	}

	switch layer {
	case "adapter/in":
		return !isPortIn(importPath) && !isDTO(importPath)
	case "usecase":
		return strings.Contains(importPath, "/adapter/")
	case "service":
		return strings.Contains(importPath, "/adapter/") || strings.Contains(importPath, "/usecase/")
	case "domain":
		return strings.Contains(importPath, "/adapter/") || strings.Contains(importPath, "/usecase/") || strings.Contains(importPath, "/service/")
	default:
		return false
	}
}
