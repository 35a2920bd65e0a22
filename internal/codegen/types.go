package codegen

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/cclosures/cclosures-go/internal/sig"
)

type kind int

const (
	kindVoid kind = iota
	kindScalar
	kindPointer
	kindClosure
)

// cType is a C type as the three sides of the glue see it.
type cType struct {
	C       string // C spelling
	Cgo     string // Go spelling of the C type, inside the cgo package
	Go      string // type exposed by the generated Go API
	Kind    kind
	Closure sig.Signature // set when Kind == kindClosure
}

type scalar struct {
	cgo, gotype string
}

var scalars = map[string]scalar{
	"char":               {"C.char", "int8"},
	"signed char":        {"C.schar", "int8"},
	"unsigned char":      {"C.uchar", "uint8"},
	"short":              {"C.short", "int16"},
	"unsigned short":     {"C.ushort", "uint16"},
	"int":                {"C.int", "int32"},
	"unsigned":           {"C.uint", "uint32"},
	"unsigned int":       {"C.uint", "uint32"},
	"long":               {"C.long", "int64"},
	"unsigned long":      {"C.ulong", "uint64"},
	"long long":          {"C.longlong", "int64"},
	"unsigned long long": {"C.ulonglong", "uint64"},
	"float":              {"C.float", "float32"},
	"double":             {"C.double", "float64"},
	"bool":               {"C.bool", "bool"},
	"_Bool":              {"C.bool", "bool"},
	"int8_t":             {"C.int8_t", "int8"},
	"int16_t":            {"C.int16_t", "int16"},
	"int32_t":            {"C.int32_t", "int32"},
	"int64_t":            {"C.int64_t", "int64"},
	"uint8_t":            {"C.uint8_t", "uint8"},
	"uint16_t":           {"C.uint16_t", "uint16"},
	"uint32_t":           {"C.uint32_t", "uint32"},
	"uint64_t":           {"C.uint64_t", "uint64"},
	"size_t":             {"C.size_t", "uint64"},
	"intptr_t":           {"C.intptr_t", "int64"},
	"uintptr_t":          {"C.uintptr_t", "uintptr"},
}

var (
	qualifierRe = regexp.MustCompile(`\b(const|volatile|restrict)\b`)
	cIdentRe    = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// typeMap resolves C types against the scalar table and the closure types of
// one manifest.
type typeMap struct {
	closures map[string]sig.Signature
}

func newTypeMap(sigs []sig.Signature) typeMap {
	m := typeMap{closures: map[string]sig.Signature{}}
	for _, s := range sigs {
		m.closures[s.ClosureType()] = s
	}
	return m
}

func (m typeMap) resolve(t string) (cType, error) {
	base, stars := sig.SplitPointer(t)
	spelled := base
	if stars != "" {
		spelled = base + " " + stars
	}
	bare := strings.Join(strings.Fields(qualifierRe.ReplaceAllString(base, "")), " ")

	if stars == "" {
		switch {
		case bare == sig.Void:
			return cType{C: sig.Void, Kind: kindVoid}, nil
		case scalars[bare].cgo != "":
			s := scalars[bare]
			return cType{C: spelled, Cgo: s.cgo, Go: s.gotype, Kind: kindScalar}, nil
		}
		if target, ok := m.closures[bare]; ok {
			return cType{
				C:       bare,
				Cgo:     "C." + bare,
				Go:      "*" + bare,
				Kind:    kindClosure,
				Closure: target,
			}, nil
		}
		return cType{}, fmt.Errorf("unsupported type %q: pass structs by pointer", t)
	}

	var elem string
	switch {
	case bare == sig.Void:
		elem = "unsafe.Pointer"
		stars = stars[1:]
	case scalars[bare].cgo != "":
		elem = scalars[bare].cgo
	case strings.HasPrefix(bare, "struct "):
		elem = "C.struct_" + strings.TrimSpace(strings.TrimPrefix(bare, "struct "))
	case cIdentRe.MatchString(bare):
		elem = "C." + bare
	default:
		return cType{}, fmt.Errorf("unsupported pointer type %q", t)
	}
	return cType{
		C:    spelled,
		Cgo:  stars + elem,
		Go:   "unsafe.Pointer",
		Kind: kindPointer,
	}, nil
}

// ToGo converts a value of the cgo type into the API type.
func (t cType) ToGo(expr string) string {
	switch t.Kind {
	case kindScalar:
		return t.Go + "(" + expr + ")"
	case kindPointer:
		if t.Cgo == "unsafe.Pointer" {
			return expr
		}
		return "unsafe.Pointer(" + expr + ")"
	case kindClosure:
		return "adopt" + t.C + "(" + expr + ")"
	}
	return expr
}

// ToC converts a value of the API type into the cgo type.
func (t cType) ToC(expr string) string {
	switch t.Kind {
	case kindScalar:
		return t.Cgo + "(" + expr + ")"
	case kindPointer:
		if t.Cgo == "unsafe.Pointer" {
			return expr
		}
		return "(" + t.Cgo + ")(" + expr + ")"
	case kindClosure:
		return expr + ".detach()"
	}
	return expr
}

// Zero is the zero value of the API type, used by the non-cgo stub.
func (t cType) Zero() string {
	switch t.Kind {
	case kindScalar:
		if t.Go == "bool" {
			return "false"
		}
		return "0"
	case kindPointer, kindClosure:
		return "nil"
	}
	return ""
}

// IsClosure reports whether the type is a generated closure descriptor.
func (t cType) IsClosure() bool { return t.Kind == kindClosure }
