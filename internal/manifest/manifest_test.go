package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cclosures/cclosures-go/internal/sig"
)

const validManifest = `
package: cgo
signatures:
  - name: IntInt
    returns: int
    return_name: Int
    params: [int, p1]
  - name: VoidVoid
    params: [void]
`

func TestParseValid(t *testing.T) {
	m, err := Parse([]byte(validManifest), "closures.yaml")
	require.NoError(t, err)

	assert.Equal(t, "cgo", m.Package)
	assert.Equal(t, DefaultHeader, m.Header)
	assert.Equal(t, DefaultPrefix, m.Prefix)
	assert.Equal(t, DefaultReleaseSuffix, m.ReleaseSuffix)
	assert.Equal(t, "closures_gen", m.BaseName())

	sigs, err := m.Resolve()
	require.NoError(t, err)
	require.Len(t, sigs, 2)
	assert.Equal(t, []string{"data", "p1"}, sigs[0].Forward())
	assert.True(t, sigs[1].IsVoid())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"bad yaml", "package: [", "parsing"},
		{"no package", "signatures: [{name: A, params: [void]}]", "not a Go identifier"},
		{"no signatures", "package: p", "no signatures"},
		{"bad header", "package: p\nheader: ../x.h\nsignatures: [{name: A, params: [void]}]", "bare .h"},
		{"bad prefix", "package: p\nprefix: 9x\nsignatures: [{name: A, params: [void]}]", "prefix"},
		{"bad suffix", "package: p\nrelease_suffix: '-x'\nsignatures: [{name: A, params: [void]}]", "release_suffix"},
		{"bad params", "package: p\nsignatures: [{name: A, params: [int]}]", "signatures[0]"},
		{"self param", "package: p\nsignatures: [{name: A, params: [int, self]}]", "reserved for the closure"},
		{"keyword param", "package: p\nsignatures: [{name: A, params: [int, int]}]", "C keyword"},
		{"duplicate", "package: p\nsignatures: [{name: A, params: [void]}, {name: A, params: [void]}]", "already used"},
		{
			"return name clash",
			"package: p\nsignatures:\n  - {name: A, returns: int, return_name: R, params: [void]}\n  - {name: B, returns: double, return_name: R, params: [void]}",
			"used for both",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml), "test.yaml")
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestSharedReturnNameSameType(t *testing.T) {
	src := "package: p\nsignatures:\n  - {name: A, returns: int, return_name: Int, params: [void]}\n  - {name: B, returns: int, return_name: Int, params: [int, x]}"
	_, err := Parse([]byte(src), "test.yaml")
	assert.NoError(t, err)
}

func TestLoadAndFind(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	found, err := Find(nested)
	require.NoError(t, err)
	assert.Empty(t, found)

	path := filepath.Join(root, "closures.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validManifest), 0o644))

	found, err = Find(nested)
	require.NoError(t, err)
	assert.Equal(t, path, found)

	m, err := Load(found)
	require.NoError(t, err)
	assert.Len(t, m.Signatures, 2)

	_, err = Load(filepath.Join(root, "missing.yaml"))
	assert.ErrorContains(t, err, "reading manifest")
}

func TestFromSignaturesMarshal(t *testing.T) {
	a, err := sig.New("IntIntInt", "int", "Int", []string{"int", "p1", "int", "p2"})
	require.NoError(t, err)
	b, err := sig.New("VoidVoid", "void", "", []string{"void"})
	require.NoError(t, err)

	out, err := Marshal(FromSignatures("hosts", []sig.Signature{a, b}))
	require.NoError(t, err)

	m, err := Parse(out, "generated.yaml")
	require.NoError(t, err)
	assert.Equal(t, "hosts", m.Package)
	assert.Equal(t, []string{"int", "p1", "int", "p2"}, m.Signatures[0].Params)
	assert.Equal(t, []string{"void"}, m.Signatures[1].Params)
	assert.Empty(t, m.Signatures[1].Returns)
}
