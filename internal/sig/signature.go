package sig

import (
	"fmt"
	"strings"
	"unicode"
)

// Signature declares one closure type.
type Signature struct {
	// Name prefixes every generated identifier: NameClosure,
	// Name_closure_call and so on.
	Name string

	// Returns is the C return type. Empty or "void" declares a procedure.
	Returns string

	// ReturnName keys the return-value destructor for Returns. It defaults to
	// a title-cased form of Returns.
	ReturnName string

	// Params lists the declared parameters in order, excluding data.
	Params []Param
}

// New builds and validates a signature from the flat parameter tokens.
func New(name, returns, returnName string, tokens []string) (Signature, error) {
	params, err := Pair(tokens)
	if err != nil {
		return Signature{}, fmt.Errorf("signature %s: %w", name, err)
	}
	s := Signature{
		Name:       name,
		Returns:    normalizeType(returns),
		ReturnName: strings.TrimSpace(returnName),
		Params:     params,
	}
	if s.Returns == "" {
		s.Returns = Void
	}
	if !s.IsVoid() && s.ReturnName == "" {
		s.ReturnName = DeriveReturnName(s.Returns)
	}
	if err := s.Validate(); err != nil {
		return Signature{}, err
	}
	return s, nil
}

// Validate checks the names that end up as C identifiers.
func (s Signature) Validate() error {
	if !identRe.MatchString(s.Name) {
		return fmt.Errorf("signature %q: name is not a C identifier", s.Name)
	}
	if len(s.Params) > MaxPairs {
		return fmt.Errorf("signature %s: %d parameters exceed the maximum of %d", s.Name, len(s.Params), MaxPairs)
	}
	if s.IsVoid() {
		if s.ReturnName != "" {
			return fmt.Errorf("signature %s: return_name %q set on a void signature", s.Name, s.ReturnName)
		}
		return nil
	}
	if !identRe.MatchString(s.ReturnName) {
		return fmt.Errorf("signature %s: return name %q is not a C identifier", s.Name, s.ReturnName)
	}
	return nil
}

// IsVoid reports whether the signature returns nothing.
func (s Signature) IsVoid() bool {
	return s.Returns == "" || s.Returns == Void
}

// Arity is the number of declared parameters, excluding data.
func (s Signature) Arity() int {
	return len(s.Params)
}

// Tokens returns the flat parameter sequence.
func (s Signature) Tokens() []string {
	return Tokens(s.Params)
}

// Declare returns the declare-form of the parameter list.
func (s Signature) Declare() []string {
	return DeclareParams(s.Params)
}

// Forward returns the forward-form of the parameter list.
func (s Signature) Forward() []string {
	return ForwardParams(s.Params)
}

// ClosureType is the name of the generated descriptor type.
func (s Signature) ClosureType() string { return s.Name + "Closure" }

// CallFunc is the name of the typed call.
func (s Signature) CallFunc() string { return s.Name + "_closure_call" }

// CallNoReturnFunc is the name of the fire-and-forget call. Procedures have
// none.
func (s Signature) CallNoReturnFunc() string {
	if s.IsVoid() {
		return ""
	}
	return s.Name + "_closure_call_with_no_return"
}

// ReleaseFunc is the name of the idempotent release.
func (s Signature) ReleaseFunc() string { return s.Name + "_closure_release" }

// NewFunc is the name of the C constructor used by the Go glue.
func (s Signature) NewFunc() string { return s.Name + "_closure_new" }

// ReleaseReturnFunc is the owner-supplied destructor for the return type.
func (s Signature) ReleaseReturnFunc(suffix string) string {
	if s.IsVoid() {
		return ""
	}
	return s.ReturnName + suffix
}

// DeriveReturnName title-cases a C type into an identifier: "int" becomes
// "Int", "unsigned long" becomes "UnsignedLong" and "char*" becomes
// "CharPtr".
func DeriveReturnName(t string) string {
	base, stars := SplitPointer(t)
	var b strings.Builder
	for _, word := range strings.Fields(base) {
		for _, part := range strings.Split(word, "_") {
			if part == "" {
				continue
			}
			r := []rune(part)
			r[0] = unicode.ToUpper(r[0])
			b.WriteString(string(r))
		}
	}
	b.WriteString(strings.Repeat("Ptr", len(stars)))
	return b.String()
}
