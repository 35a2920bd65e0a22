package sig

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// MaxPairs bounds the number of (type, name) pairs a signature may declare.
	MaxPairs = 16

	// Void is the sentinel token for an empty parameter list and the return
	// type of procedures.
	Void = "void"

	// DataParam is the implicit first parameter carrying the captured state.
	DataParam = "data"

	// DataDecl declares DataParam.
	DataDecl = "void *" + DataParam
)

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// SelfParam names the closure pointer every generated function takes first.
const SelfParam = "self"

// cKeywords cannot be parameter names in the generated C.
var cKeywords = map[string]bool{
	"auto": true, "break": true, "case": true, "char": true, "const": true,
	"continue": true, "default": true, "do": true, "double": true, "else": true,
	"enum": true, "extern": true, "float": true, "for": true, "goto": true,
	"if": true, "inline": true, "int": true, "long": true, "register": true,
	"restrict": true, "return": true, "short": true, "signed": true, "sizeof": true,
	"static": true, "struct": true, "switch": true, "typedef": true, "union": true,
	"unsigned": true, "void": true, "volatile": true, "while": true,
	"_Bool": true, "_Complex": true, "_Imaginary": true,
	"bool": true, "true": true, "false": true,
}

// Param is one declared parameter.
type Param struct {
	Type string `yaml:"type"`
	Name string `yaml:"name"`
}

// Decl renders the parameter as a C declaration. Pointer stars stay next to
// the name.
func (p Param) Decl() string {
	base, stars := SplitPointer(p.Type)
	return base + " " + stars + p.Name
}

// SplitPointer separates a type into its base and trailing pointer stars.
func SplitPointer(t string) (base, stars string) {
	t = normalizeType(t)
	base = strings.TrimRight(t, "*")
	return strings.TrimSpace(base), t[len(base):]
}

// IsSentinel reports whether tokens is the "no parameters" form.
func IsSentinel(tokens []string) bool {
	return len(tokens) == 1 && strings.TrimSpace(tokens[0]) == Void
}

// Pair splits the flat token sequence into parameters.
func Pair(tokens []string) ([]Param, error) {
	if len(tokens) == 0 || IsSentinel(tokens) {
		return nil, nil
	}
	if len(tokens)%2 != 0 {
		return nil, fmt.Errorf("odd number of parameter tokens (%d): every type needs a name", len(tokens))
	}
	if n := len(tokens) / 2; n > MaxPairs {
		return nil, fmt.Errorf("%d parameters exceed the maximum of %d", n, MaxPairs)
	}

	params := make([]Param, 0, len(tokens)/2)
	seen := map[string]int{}
	for i := 0; i < len(tokens); i += 2 {
		typ := normalizeType(tokens[i])
		name := strings.TrimSpace(tokens[i+1])
		pos := i / 2

		switch {
		case typ == "":
			return nil, fmt.Errorf("parameter %d: empty type", pos)
		case typ == Void:
			return nil, fmt.Errorf("parameter %d: %q is only valid as the sole token", pos, Void)
		case !identRe.MatchString(name):
			return nil, fmt.Errorf("parameter %d: %q is not a C identifier", pos, name)
		case name == DataParam:
			return nil, fmt.Errorf("parameter %d: name %q is reserved for the captured state", pos, DataParam)
		case name == SelfParam:
			return nil, fmt.Errorf("parameter %d: name %q is reserved for the closure", pos, SelfParam)
		case cKeywords[name]:
			return nil, fmt.Errorf("parameter %d: name %q is a C keyword", pos, name)
		}
		if prev, dup := seen[name]; dup {
			return nil, fmt.Errorf("parameter %d: name %q already used by parameter %d", pos, name, prev)
		}
		seen[name] = pos
		params = append(params, Param{Type: typ, Name: name})
	}
	return params, nil
}

// Declare builds the declare-form: the data parameter followed by one
// "type name" declaration per pair.
func Declare(tokens []string) ([]string, error) {
	params, err := Pair(tokens)
	if err != nil {
		return nil, err
	}
	return DeclareParams(params), nil
}

// Forward builds the forward-form: the data argument followed by the name of
// every pair.
func Forward(tokens []string) ([]string, error) {
	params, err := Pair(tokens)
	if err != nil {
		return nil, err
	}
	return ForwardParams(params), nil
}

// DeclareParams is Declare for already paired parameters.
func DeclareParams(params []Param) []string {
	out := make([]string, 0, len(params)+1)
	out = append(out, DataDecl)
	for _, p := range params {
		out = append(out, p.Decl())
	}
	return out
}

// ForwardParams is Forward for already paired parameters.
func ForwardParams(params []Param) []string {
	out := make([]string, 0, len(params)+1)
	out = append(out, DataParam)
	for _, p := range params {
		out = append(out, p.Name)
	}
	return out
}

// Tokens flattens params back into the token sequence, using the sentinel
// for an empty list.
func Tokens(params []Param) []string {
	if len(params) == 0 {
		return []string{Void}
	}
	out := make([]string, 0, 2*len(params))
	for _, p := range params {
		out = append(out, p.Type, p.Name)
	}
	return out
}

// normalizeType collapses whitespace and glues pointer stars together, so
// "char  *" and "char*" compare equal.
func normalizeType(t string) string {
	t = strings.Join(strings.Fields(t), " ")
	t = strings.ReplaceAll(t, " *", "*")
	return t
}
