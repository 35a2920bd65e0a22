package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cclosures/cclosures-go/pkg/closure"
)

const testManifest = `package: hostcb
signatures:
  - name: IntInt
    returns: int
    return_name: Int
    params: [int, p1]
  - name: VoidVoid
    params: [void]
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { closure.SetLogger(nil) })

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), err
}

func writeManifest(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "closures.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testManifest), 0o644))
	return path
}

func TestGenerateAndCheck(t *testing.T) {
	path := writeManifest(t)
	dir := filepath.Dir(path)

	out, err := run(t, "generate", "-m", path)
	require.NoError(t, err)
	for _, name := range []string{"closures_gen.h", "closures_gen.c", "closures_gen_cgo.go", "closures_gen_stub.go"} {
		assert.Contains(t, out, filepath.Join(dir, name))
		assert.FileExists(t, filepath.Join(dir, name))
	}

	out, err = run(t, "check", "-m", path)
	require.NoError(t, err)
	assert.Contains(t, out, "4 files up to date")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "closures_gen.h"), []byte("/* edited */\n"), 0o644))
	_, err = run(t, "check", "-m", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of date")
	assert.Contains(t, err.Error(), "closures_gen.h")
}

func TestCheckAcrossReleases(t *testing.T) {
	path := writeManifest(t)
	_, err := run(t, "generate", "-m", path)
	require.NoError(t, err)

	prev := closure.Version
	closure.Version = "v1.2.0"
	t.Cleanup(func() { closure.Version = prev })

	out, err := run(t, "check", "-m", path)
	require.NoError(t, err)
	assert.Contains(t, out, "4 files up to date")
}

func TestGenerateOutputDir(t *testing.T) {
	path := writeManifest(t)
	out := filepath.Join(t.TempDir(), "gen")

	_, err := run(t, "generate", "-m", path, "-o", out)
	require.NoError(t, err)

	glue, err := os.ReadFile(filepath.Join(out, "closures_gen_cgo.go"))
	require.NoError(t, err)
	assert.Contains(t, string(glue), "package hostcb")
}

func TestGenerateInvalidManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "closures.yaml")
	require.NoError(t, os.WriteFile(path, []byte("package: cgo\nsignatures: []\n"), 0o644))

	_, err := run(t, "generate", "-m", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no signatures defined")
}

func TestList(t *testing.T) {
	path := writeManifest(t)

	out, err := run(t, "list", "-m", path)
	require.NoError(t, err)
	assert.Contains(t, out, "TYPE")
	assert.Contains(t, out, "IntIntClosure")
	assert.Contains(t, out, "Int_release_rust_return_value")
	assert.Contains(t, out, "VoidVoidClosure")

	out, err = run(t, "list", "-m", path, "--prefix", "void")
	require.NoError(t, err)
	assert.NotContains(t, out, "IntIntClosure")
	assert.Contains(t, out, "VoidVoidClosure")
}

func TestImport(t *testing.T) {
	header := filepath.Join(t.TempDir(), "example.h")
	require.NoError(t, os.WriteFile(header, []byte(`#include "rust_closures.h"
CLOSURE_DEF(IntIntInt, int, Int, int, p1, int, p2)
CLOSURE_DEF_VOID_RET(VoidVoid, void)
`), 0o644))

	out, err := run(t, "import", header, "-p", "hostcb")
	require.NoError(t, err)
	assert.Contains(t, out, "package: hostcb")
	assert.Contains(t, out, "name: IntIntInt")
	assert.Contains(t, out, "params: [int, p1, int, p2]")
	assert.Contains(t, out, "params: [void]")
}

func TestImportWithoutMacros(t *testing.T) {
	header := filepath.Join(t.TempDir(), "empty.h")
	require.NoError(t, os.WriteFile(header, []byte("int f(void);\n"), 0o644))

	_, err := run(t, "import", header)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no CLOSURE_DEF")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "cclosuregen "+closure.Version+"\n", out)
}

func TestLogLevelFromEnv(t *testing.T) {
	t.Setenv(logEnv, "bogus")
	_, err := run(t, "version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")

	_, err = run(t, "version", "--log-level", "debug")
	require.NoError(t, err)
}
