package internalcheck

import (
	"fmt"
	"go/token"
	"strings"
	"testing"
)

// cgoPackage is the only package allowed to import "C".
const cgoPackage = modulePath + "/internal/cgo"

func TestCGOIsolation(t *testing.T) {
	fset := token.NewFileSet()
	var findings []string

	for _, src := range loadSources(t, fset) {
		if _, ok := importName(src.file, "C"); !ok {
			continue
		}
		if strings.TrimSuffix(src.pkg.PkgPath, "_test") == cgoPackage {
			continue
		}
		findings = append(findings, fmt.Sprintf("%s: imports \"C\" outside %s", src.path, cgoPackage))
	}

	if len(findings) > 0 {
		t.Fatalf("cgo isolation policy violation:\n%s", strings.Join(findings, "\n"))
	}
}
