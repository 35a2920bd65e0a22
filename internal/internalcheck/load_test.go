package internalcheck

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"golang.org/x/tools/go/packages"
)

const modulePath = "github.com/cclosures/cclosures-go"

type sourceFile struct {
	pkg  *packages.Package
	path string
	file *ast.File
}

// loadSources parses every Go file of the module, including files excluded
// by build tags, so policies hold for cgo and non-cgo builds alike.
func loadSources(t *testing.T, fset *token.FileSet) []sourceFile {
	t.Helper()
	cfg := &packages.Config{
		Mode:  packages.NeedName | packages.NeedFiles,
		Tests: true,
	}
	pkgs, err := packages.Load(cfg, modulePath+"/...")
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}

	seen := map[string]bool{}
	var files []sourceFile
	for _, pkg := range pkgs {
		paths := append(append([]string{}, pkg.GoFiles...), pkg.IgnoredFiles...)
		for _, path := range paths {
			if seen[path] || !isGoFile(path) {
				continue
			}
			seen[path] = true
			f, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
			if err != nil {
				t.Fatalf("parse %s: %v", path, err)
			}
			files = append(files, sourceFile{pkg: pkg, path: path, file: f})
		}
	}
	if len(files) == 0 {
		t.Fatal("no source files loaded")
	}
	return files
}

func isGoFile(path string) bool {
	return len(path) > 3 && path[len(path)-3:] == ".go"
}

func importName(f *ast.File, path string) (string, bool) {
	for _, spec := range f.Imports {
		if spec.Path.Value != `"`+path+`"` {
			continue
		}
		if spec.Name != nil {
			return spec.Name.Name, true
		}
		return defaultName(path), true
	}
	return "", false
}

func defaultName(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[i+1:]
		}
	}
	return path
}
