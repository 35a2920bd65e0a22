// Package codegen emits the C and Go sources for the closure signatures of
// a manifest: one concrete descriptor type per signature instead of one
// family per arity.
//
// For a manifest with header closures_gen.h it produces:
//
//	closures_gen.h       descriptor types and host-side operations
//	closures_gen.c       their definitions, plus the constructors used by Go
//	closures_gen_cgo.go  Go constructors, wrappers and //export trampolines
//	closures_gen_stub.go the same API for builds without cgo
package codegen

import (
	"bytes"
	"fmt"
	"go/token"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"

	"github.com/cclosures/cclosures-go/internal/manifest"
	"github.com/cclosures/cclosures-go/internal/sig"
)

// File is one generated source file.
type File struct {
	// Name is relative to the output directory.
	Name string

	// Content is the complete file.
	Content []byte
}

// Generator renders the sources for one manifest.
type Generator struct {
	m      *manifest.Manifest
	source string
	view   fileView
}

// New resolves the manifest's signatures and types. source names the
// manifest in the "Source:" line of generated files.
func New(m *manifest.Manifest, source string) (*Generator, error) {
	sigs, err := m.Resolve()
	if err != nil {
		return nil, err
	}
	g := &Generator{m: m, source: filepath.Base(source)}
	if err := g.buildView(sigs); err != nil {
		return nil, err
	}
	return g, nil
}

// Generate renders all four files, sorted by name.
func (g *Generator) Generate() ([]File, error) {
	base := g.m.BaseName()
	steps := []struct {
		name   string
		tmpl   *template.Template
		format bool
	}{
		{g.m.Header, headerTmpl, false},
		{base + ".c", sourceTmpl, false},
		{base + "_cgo.go", cgoTmpl, true},
		{base + "_stub.go", stubTmpl, true},
	}

	files := make([]File, 0, len(steps))
	for _, step := range steps {
		content, err := g.render(step.name, step.tmpl, step.format)
		if err != nil {
			return nil, err
		}
		files = append(files, File{Name: step.name, Content: content})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}

func (g *Generator) render(name string, tmpl *template.Template, format bool) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, g.view); err != nil {
		return nil, fmt.Errorf("rendering %s: %w", name, err)
	}
	if !format {
		return buf.Bytes(), nil
	}
	out, err := imports.Process(name, buf.Bytes(), &imports.Options{Comments: true, TabIndent: true, TabWidth: 8})
	if err != nil {
		return nil, fmt.Errorf("formatting %s: %w\n%s", name, err, buf.String())
	}
	return out, nil
}

type paramView struct {
	Name   string // C name
	GoName string
	Type   cType
}

type sigView struct {
	sig.Signature
	Ret        cType
	Params     []paramView
	FnType     string // function pointer typedef
	Decl       string // declare-form
	SelfDecl   string // self followed by the declared parameters
	Forward    string // forward-form with data read from self
	SelfArgs   string // self followed by the parameter names
	Invoke     string // exported Go trampoline
	ReleaseRet string // owner-supplied return destructor
	Referenced bool   // used by value in another signature

	GoFunc     string // Go function type
	GoParams   string // "p1 int32, p2 int32"
	GoResult   string // " int32" or ""
	CgoParams  string // trampoline parameters
	InvokeStmt string // trampoline body
	CallStmt   string // body of the Go Call method
	NoRetStmt  string // body of the Go CallWithNoReturn method
}

type returnView struct {
	Name string
	Func string
	Type cType
}

type fileView struct {
	Source     string
	Package    string
	Header     string
	Guard      string
	DeleteData string
	Sigs       []sigView
	Returns    []returnView
}

func (g *Generator) buildView(sigs []sig.Signature) error {
	types := newTypeMap(sigs)
	v := fileView{
		Source:     g.source,
		Package:    g.m.Package,
		Header:     g.m.Header,
		Guard:      guardName(g.m.Prefix, g.m.Header),
		DeleteData: g.m.Prefix + "_delete_data",
	}

	referenced := map[string]bool{}
	returns := map[string]returnView{}
	for _, s := range sigs {
		sv, err := buildSig(s, types, g.m)
		if err != nil {
			return fmt.Errorf("signature %s: %w", s.Name, err)
		}
		for _, p := range sv.Params {
			if p.Type.Kind == kindClosure {
				referenced[p.Type.C] = true
			}
		}
		if !s.IsVoid() {
			if sv.Ret.Kind == kindClosure {
				referenced[sv.Ret.C] = true
			}
			returns[s.ReturnName] = returnView{Name: s.ReturnName, Func: sv.ReleaseRet, Type: sv.Ret}
		}
		v.Sigs = append(v.Sigs, sv)
	}
	for i := range v.Sigs {
		v.Sigs[i].Referenced = referenced[v.Sigs[i].ClosureType()]
	}
	for _, r := range returns {
		v.Returns = append(v.Returns, r)
	}
	sort.Slice(v.Returns, func(i, j int) bool { return v.Returns[i].Name < v.Returns[j].Name })

	g.view = v
	return nil
}

func buildSig(s sig.Signature, types typeMap, m *manifest.Manifest) (sigView, error) {
	ret, err := types.resolve(s.Returns)
	if err != nil {
		return sigView{}, fmt.Errorf("return type: %w", err)
	}
	sv := sigView{
		Signature:  s,
		Ret:        ret,
		FnType:     s.Name + "_closure_fn",
		Decl:       strings.Join(s.Declare(), ", "),
		Invoke:     m.Prefix + "_" + s.Name + "_invoke",
		ReleaseRet: s.ReleaseReturnFunc(m.ReleaseSuffix),
		GoFunc:     s.Name + "Func",
	}

	// Forward-form, with the captured state read from the descriptor.
	fwd := s.Forward()
	fwd[0] = "self->" + sig.DataParam
	sv.Forward = strings.Join(fwd, ", ")

	selfDecl := []string{s.ClosureType() + " *const self"}
	selfArgs := []string{"self"}
	goParams := []string{}
	cgoParams := []string{sig.DataParam + " unsafe.Pointer"}
	toGo := []string{}
	toC := []string{"cl.descriptor()"}
	for _, p := range s.Params {
		pt, err := types.resolve(p.Type)
		if err != nil {
			return sigView{}, fmt.Errorf("parameter %s: %w", p.Name, err)
		}
		if pt.Kind == kindVoid {
			return sigView{}, fmt.Errorf("parameter %s: void is not a value type", p.Name)
		}
		pv := paramView{Name: p.Name, GoName: goName(p.Name), Type: pt}
		sv.Params = append(sv.Params, pv)

		selfDecl = append(selfDecl, p.Decl())
		selfArgs = append(selfArgs, p.Name)
		goParams = append(goParams, pv.GoName+" "+pt.Go)
		cgoParams = append(cgoParams, pv.GoName+" "+pt.Cgo)
		toGo = append(toGo, pt.ToGo(pv.GoName))
		toC = append(toC, pt.ToC(pv.GoName))
	}
	sv.SelfDecl = strings.Join(selfDecl, ", ")
	sv.SelfArgs = strings.Join(selfArgs, ", ")
	sv.GoParams = strings.Join(goParams, ", ")
	sv.CgoParams = strings.Join(cgoParams, ", ")

	invoke := "fn(" + strings.Join(toGo, ", ") + ")"
	call := "C." + s.CallFunc() + "(" + strings.Join(toC, ", ") + ")"
	if s.IsVoid() {
		sv.InvokeStmt = invoke
		sv.CallStmt = call
	} else {
		sv.GoResult = " " + ret.Go
		sv.InvokeStmt = "ret = " + ret.ToC(invoke)
		sv.CallStmt = "return " + ret.ToGo(call)
		sv.NoRetStmt = "C." + s.CallNoReturnFunc() + "(" + strings.Join(toC, ", ") + ")"
	}
	return sv, nil
}

// reservedGoNames collide with identifiers used by the generated glue.
var reservedGoNames = map[string]bool{
	"C": true, "cl": true, "closure": true, "context": true, "err": true,
	"fmt": true, "fn": true, "logging": true, "ret": true, "unsafe": true,
}

func goName(name string) string {
	if token.IsKeyword(name) || reservedGoNames[name] {
		return name + "_"
	}
	return name
}

func guardName(prefix, header string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(prefix + "_" + header) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}
