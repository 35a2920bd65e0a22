package codegen

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cclosures/cclosures-go/internal/manifest"
	"github.com/cclosures/cclosures-go/pkg/closure"
)

const testManifest = `package: cgo
signatures:
  - name: IntInt
    returns: int
    return_name: Int
    params: [int, p1]
  - name: IntIntInt
    returns: int
    return_name: Int
    params: [int, p1, int, p2]
  - name: VoidInt
    params: [int, p1]
  - name: VoidVoid
    params: [void]
  - name: IntVoid
    returns: int
    return_name: Int
    params: [void]
  - name: IntVoidClosureFactory
    returns: IntVoidClosure
    params: [void]
  - name: StrLen
    returns: size_t
    params: [const char *, s, int, type]
`

func generate(t *testing.T, src string) map[string]string {
	t.Helper()
	m, err := manifest.Parse([]byte(src), "closures.yaml")
	require.NoError(t, err)
	g, err := New(m, "testdata/closures.yaml")
	require.NoError(t, err)
	files, err := g.Generate()
	require.NoError(t, err)

	out := make(map[string]string, len(files))
	for _, f := range files {
		out[f.Name] = string(f.Content)
	}
	return out
}

func TestGenerateFileSet(t *testing.T) {
	files := generate(t, testManifest)

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	assert.ElementsMatch(t, []string{
		"closures_gen.h",
		"closures_gen.c",
		"closures_gen_cgo.go",
		"closures_gen_stub.go",
	}, names)

	for name, content := range files {
		assert.Contains(t, content, "Code generated by cclosuregen", name)
		assert.Contains(t, content, "DO NOT EDIT.", name)
		assert.Contains(t, content, "Source: closures.yaml", name)
	}
}

func TestGenerateHeader(t *testing.T) {
	h := generate(t, testManifest)["closures_gen.h"]

	assert.Contains(t, h, "#ifndef CCLOSURES_CLOSURES_GEN_H")
	assert.Contains(t, h, "typedef struct IntIntClosure IntIntClosure;")
	assert.Contains(t, h, "typedef int (*IntInt_closure_fn)(void *data, int p1);")
	assert.Contains(t, h, "typedef void (*VoidVoid_closure_fn)(void *data);")
	assert.Contains(t, h, "int IntIntInt_closure_call(IntIntIntClosure *const self, int p1, int p2);")
	assert.Contains(t, h, "void IntInt_closure_call_with_no_return(IntIntClosure *const self, int p1);")
	assert.Contains(t, h, "void VoidVoid_closure_release(VoidVoidClosure *const self);")
	assert.Contains(t, h, "VoidVoidClosure *VoidVoid_closure_new(void *data);")
	assert.Contains(t, h, "size_t StrLen_closure_call(StrLenClosure *const self, const char *s, int type);")

	// Field order is part of the binary layout.
	fn := strings.Index(h, "IntInt_closure_fn function;")
	data := strings.Index(h[fn:], "void *data;")
	del := strings.Index(h[fn:], "void (*delete_data)(void *data);")
	require.Positive(t, fn)
	assert.True(t, data > 0 && del > data)

	// Procedures have no fire-and-forget variant.
	assert.NotContains(t, h, "VoidVoid_closure_call_with_no_return")
	assert.NotContains(t, h, "VoidInt_closure_call_with_no_return")
}

func TestGenerateOneDestructorPerReturnName(t *testing.T) {
	h := generate(t, testManifest)["closures_gen.h"]

	assert.Equal(t, 1, strings.Count(h, "void Int_release_rust_return_value(int ret);"))
	assert.Contains(t, h, "void SizeT_release_rust_return_value(size_t ret);")
	assert.Contains(t, h, "void IntVoidClosure_release_rust_return_value(IntVoidClosure ret);")
}

func TestGenerateSource(t *testing.T) {
	c := generate(t, testManifest)["closures_gen.c"]

	assert.True(t, strings.HasPrefix(c, "//go:build cgo\n"))
	assert.Contains(t, c, `#include "_cgo_export.h"`)
	assert.Contains(t, c, "return (self->function)(self->data, p1, p2);")
	assert.Contains(t, c, "(self->function)(self->data);")
	assert.Contains(t, c, "Int_release_rust_return_value(IntInt_closure_call(self, p1));")
	assert.Contains(t, c, "if (self->delete_data && self->data) {")
	assert.Contains(t, c, "self->function = (IntInt_closure_fn)cclosures_IntInt_invoke;")
	assert.Contains(t, c, "self->delete_data = cclosures_delete_data;")
}

func TestGenerateGoGlue(t *testing.T) {
	files := generate(t, testManifest)
	glue := files["closures_gen_cgo.go"]

	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "closures_gen_cgo.go", glue, parser.ParseComments)
	require.NoError(t, err)
	assert.Equal(t, "cgo", f.Name.Name)

	assert.Contains(t, glue, "//go:build cgo")
	assert.Contains(t, glue, "//export cclosures_delete_data")
	assert.Contains(t, glue, "//export cclosures_IntInt_invoke")
	assert.Contains(t, glue, "//export Int_release_rust_return_value")
	assert.Contains(t, glue, "type IntIntFunc func(p1 int32) int32")
	assert.Contains(t, glue, "func NewIntIntClosure(fn IntIntFunc, onRelease ...func()) (*IntIntClosure, error) {")
	assert.Contains(t, glue, "func NewVoidVoidNoop() *VoidVoidClosure {")
	assert.NotContains(t, glue, "func NewIntIntNoop")

	// Parameters colliding with Go keywords are renamed.
	assert.Contains(t, glue, "type StrLenFunc func(s unsafe.Pointer, type_ int32) uint64")

	// Closure-typed returns move ownership across the boundary.
	assert.Contains(t, glue, "func adoptIntVoidClosure(v C.IntVoidClosure) *IntVoidClosure {")
	assert.Contains(t, glue, "C.IntVoid_closure_release(&ret)")
	assert.NotContains(t, glue, "func adoptIntIntClosure(")
}

func TestGoGlueBuildsOnCapturedState(t *testing.T) {
	glue := generate(t, testManifest)["closures_gen_cgo.go"]

	assert.Contains(t, glue, "closure.Capture(")
	assert.Contains(t, glue, "closure.Captured[")
	assert.Contains(t, glue, "closure.ReleaseCaptured(")
	assert.NotContains(t, glue, "closure.New(")
	assert.NotContains(t, glue, "closure.NewFunc")
	assert.NotContains(t, glue, "closure.NewProc")
}

func TestOutputIndependentOfBridgeVersion(t *testing.T) {
	before := generate(t, testManifest)

	prev := closure.Version
	closure.Version = "v9.9.9"
	t.Cleanup(func() { closure.Version = prev })
	after := generate(t, testManifest)

	require.Equal(t, len(before), len(after))
	for name, content := range after {
		assert.Equal(t, before[name], content, name)
		assert.NotContains(t, content, "v9.9.9", name)
		assert.Contains(t, content, "Code generated by cclosuregen. DO NOT EDIT.", name)
	}
}

func TestGenerateStub(t *testing.T) {
	stub := generate(t, testManifest)["closures_gen_stub.go"]

	fset := token.NewFileSet()
	_, err := parser.ParseFile(fset, "closures_gen_stub.go", stub, parser.ParseComments)
	require.NoError(t, err)

	assert.Contains(t, stub, "//go:build !cgo")
	assert.Contains(t, stub, "return nil, closure.ErrCGONotEnabled")
	assert.NotContains(t, stub, `import "C"`)
}

func TestGenerateRejectsStructByValue(t *testing.T) {
	m, err := manifest.Parse([]byte(`package: cgo
signatures:
  - name: Bad
    params: [struct point, p]
`), "closures.yaml")
	require.NoError(t, err)

	_, err = New(m, "closures.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "signature Bad")
	assert.Contains(t, err.Error(), "pass structs by pointer")
}

func TestResolveTypes(t *testing.T) {
	m, err := manifest.Parse([]byte(testManifest), "closures.yaml")
	require.NoError(t, err)
	sigs, err := m.Resolve()
	require.NoError(t, err)
	types := newTypeMap(sigs)

	tests := []struct {
		in         string
		cgo, gotyp string
		kind       kind
	}{
		{"int", "C.int", "int32", kindScalar},
		{"unsigned long", "C.ulong", "uint64", kindScalar},
		{"void", "", "", kindVoid},
		{"void *", "unsafe.Pointer", "unsafe.Pointer", kindPointer},
		{"void **", "*unsafe.Pointer", "unsafe.Pointer", kindPointer},
		{"const char *", "*C.char", "unsafe.Pointer", kindPointer},
		{"struct point *", "*C.struct_point", "unsafe.Pointer", kindPointer},
		{"IntVoidClosure", "C.IntVoidClosure", "*IntVoidClosure", kindClosure},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			ct, err := types.resolve(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.cgo, ct.Cgo)
			assert.Equal(t, tt.gotyp, ct.Go)
			assert.Equal(t, tt.kind, ct.Kind)
		})
	}
}

func TestGoName(t *testing.T) {
	assert.Equal(t, "p1", goName("p1"))
	assert.Equal(t, "type_", goName("type"))
	assert.Equal(t, "ret_", goName("ret"))
	assert.Equal(t, "C_", goName("C"))
}

func TestCheckedInGlueMatchesManifest(t *testing.T) {
	m, err := manifest.Load("../cgo/signatures.yaml")
	require.NoError(t, err)
	g, err := New(m, "../cgo/signatures.yaml")
	require.NoError(t, err)
	files, err := g.Generate()
	require.NoError(t, err)

	for _, f := range files {
		current, err := os.ReadFile(filepath.Join("../cgo", f.Name))
		require.NoError(t, err, "missing generated file %s", f.Name)
		for _, line := range strings.Split(string(f.Content), "\n") {
			if strings.HasPrefix(line, "//export ") || strings.HasPrefix(line, "func New") {
				assert.Contains(t, string(current), line, "%s is stale", f.Name)
			}
		}
	}
}
