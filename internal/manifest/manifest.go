// Package manifest reads the declarative list of closure signatures that
// drives code generation.
//
// A manifest is a YAML file, conventionally closures.yaml:
//
//	package: cgo
//	header: closures_gen.h
//	signatures:
//	  - name: IntInt
//	    returns: int
//	    return_name: Int
//	    params: [int, p1]
//	  - name: VoidVoid
//	    params: [void]
//
// params is the flat token sequence alternating C type and parameter name,
// or the single token void for no parameters.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cclosures/cclosures-go/internal/sig"
)

const (
	// DefaultReleaseSuffix names the owner-supplied return-value destructors.
	// It matches the macro header existing C hosts were written against.
	DefaultReleaseSuffix = "_release_rust_return_value"

	// DefaultHeader is the generated header file name.
	DefaultHeader = "closures_gen.h"

	// DefaultPrefix prefixes the C symbols shared by all signatures of a
	// manifest.
	DefaultPrefix = "cclosures"
)

var (
	goIdentRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	fileRe    = regexp.MustCompile(`^[A-Za-z0-9_.-]+\.h$`)
)

// Manifest is the top-level closures.yaml document.
type Manifest struct {
	// Package is the Go package the glue is generated into.
	Package string `yaml:"package"`

	// Header is the name of the generated C header. The C source and Go
	// files share its base name.
	Header string `yaml:"header,omitempty"`

	// Prefix namespaces the shared C symbols, so two packages with their own
	// manifests can link into one binary.
	Prefix string `yaml:"prefix,omitempty"`

	// ReleaseSuffix is appended to a return name to form its destructor.
	ReleaseSuffix string `yaml:"release_suffix,omitempty"`

	// Signatures lists the closure types to generate.
	Signatures []Entry `yaml:"signatures"`
}

// Entry declares one signature.
type Entry struct {
	Name       string   `yaml:"name"`
	Returns    string   `yaml:"returns,omitempty"`
	ReturnName string   `yaml:"return_name,omitempty"`
	Params     []string `yaml:"params,flow"`
}

// Load reads and parses a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse parses manifest content. The path is used only for error messages.
func Parse(data []byte, path string) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	m.setDefaults()
	if err := m.validate(path); err != nil {
		return nil, err
	}
	return &m, nil
}

// Find searches for closures.yaml (or closures.yml) starting at dir and
// walking up to the filesystem root. It returns "" when none is found.
func Find(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}
	for {
		for _, name := range []string{"closures.yaml", "closures.yml"} {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// Marshal renders m as YAML.
func Marshal(m *Manifest) ([]byte, error) {
	return yaml.Marshal(m)
}

// FromSignatures builds a manifest around already parsed signatures.
func FromSignatures(pkg string, sigs []sig.Signature) *Manifest {
	m := &Manifest{Package: pkg}
	for _, s := range sigs {
		e := Entry{Name: s.Name, Params: s.Tokens()}
		if !s.IsVoid() {
			e.Returns = s.Returns
			e.ReturnName = s.ReturnName
		}
		m.Signatures = append(m.Signatures, e)
	}
	m.setDefaults()
	return m
}

// Resolve turns every entry into a validated signature, in manifest order.
func (m *Manifest) Resolve() ([]sig.Signature, error) {
	out := make([]sig.Signature, 0, len(m.Signatures))
	for i, e := range m.Signatures {
		s, err := sig.New(e.Name, e.Returns, e.ReturnName, e.Params)
		if err != nil {
			return nil, fmt.Errorf("signatures[%d]: %w", i, err)
		}
		out = append(out, s)
	}
	return out, nil
}

// BaseName is the header name without its extension.
func (m *Manifest) BaseName() string {
	return strings.TrimSuffix(m.Header, ".h")
}

func (m *Manifest) setDefaults() {
	if m.Header == "" {
		m.Header = DefaultHeader
	}
	if m.Prefix == "" {
		m.Prefix = DefaultPrefix
	}
	if m.ReleaseSuffix == "" {
		m.ReleaseSuffix = DefaultReleaseSuffix
	}
}

// validate checks the manifest for semantic errors.
func (m *Manifest) validate(path string) error {
	if !goIdentRe.MatchString(m.Package) {
		return fmt.Errorf("%s: package %q is not a Go identifier", path, m.Package)
	}
	if !fileRe.MatchString(m.Header) {
		return fmt.Errorf("%s: header %q must be a bare .h file name", path, m.Header)
	}
	if !goIdentRe.MatchString(m.Prefix) {
		return fmt.Errorf("%s: prefix %q is not a C identifier", path, m.Prefix)
	}
	if !goIdentRe.MatchString("x" + m.ReleaseSuffix) {
		return fmt.Errorf("%s: release_suffix %q cannot extend a C identifier", path, m.ReleaseSuffix)
	}
	if len(m.Signatures) == 0 {
		return fmt.Errorf("%s: no signatures defined", path)
	}

	sigs, err := m.Resolve()
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	seen := map[string]int{}
	returns := map[string]string{}
	for i, s := range sigs {
		if prev, ok := seen[s.Name]; ok {
			return fmt.Errorf("%s: signatures[%d]: name %q already used by signatures[%d]", path, i, s.Name, prev)
		}
		seen[s.Name] = i
		if s.IsVoid() {
			continue
		}
		// One destructor per return name: a name must always mean the same C type.
		if prevType, ok := returns[s.ReturnName]; ok && prevType != s.Returns {
			return fmt.Errorf("%s: signatures[%d]: return name %q used for both %q and %q",
				path, i, s.ReturnName, prevType, s.Returns)
		}
		returns[s.ReturnName] = s.Returns
	}
	return nil
}
