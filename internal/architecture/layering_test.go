package architecture_test

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const modulesImport = "symptrack/internal/modules/"

func TestHexagonalLayerImports(t *testing.T) {
	t.Parallel()
	walkImports(t, filepath.Join("..", "modules"), func(path, importPath string) {
		module := moduleName(path)
		layer := detectLayer(path)
		if module == "" || layer == "" {
			return
		}
		if violatesLayerRule(module, layer, importPath) {
			t.Fatalf("forbidden import in %s (%s): %s", path, layer, importPath)
		}
	})
}

// Front ends talk to modules through dto types only; concrete handlers are
// injected by bootstrap.
func TestFrontEndsImportOnlyDTOs(t *testing.T) {
	t.Parallel()
	for _, root := range []string{filepath.Join("..", "ui"), filepath.Join("..", "..", "cmd")} {
		walkImports(t, root, func(path, importPath string) {
			if !isDTO(importPath) {
				t.Fatalf("front end %s imports module internals: %s", path, importPath)
			}
		})
	}
}

func TestViolatesLayerRule(t *testing.T) {
	t.Parallel()
	cases := []struct {
		module, layer, importPath string
		want                      bool
	}{
		{"report", "adapter/out", modulesImport + "journal/port/in", false},
		{"report", "adapter/out", modulesImport + "journal/dto", false},
		{"report", "adapter/out", modulesImport + "journal/domain", true},
		{"report", "service", modulesImport + "journal/service", true},
		{"journal", "adapter/in", modulesImport + "journal/service", true},
		{"journal", "adapter/in", modulesImport + "journal/port/in", false},
		{"journal", "usecase", modulesImport + "journal/adapter/out", true},
		{"journal", "service", modulesImport + "journal/port/out", false},
		{"journal", "domain", modulesImport + "journal/usecase", true},
	}
	for _, tc := range cases {
		if got := violatesLayerRule(tc.module, tc.layer, tc.importPath); got != tc.want {
			t.Errorf("violatesLayerRule(%s, %s, %s) = %v, want %v", tc.module, tc.layer, tc.importPath, got, tc.want)
		}
	}
}

func walkImports(t *testing.T, root string, visit func(path, importPath string)) {
	t.Helper()
	fset := token.NewFileSet()
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		node, parseErr := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if parseErr != nil {
			return parseErr
		}
		for _, imp := range node.Imports {
			importPath := strings.Trim(imp.Path.Value, `"`)
			if strings.Contains(importPath, modulesImport) {
				visit(filepath.ToSlash(path), importPath)
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk %s: %v", root, err)
	}
}

func moduleName(path string) string {
	parts := strings.Split(path, "/")
	for i := 0; i < len(parts)-1; i++ {
		if parts[i] == "modules" {
			return parts[i+1]
		}
	}
	return ""
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

func violatesLayerRule(module, layer, importPath string) bool {
	if !strings.Contains(importPath, "/internal/modules/"+module+"/") {
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
