package sig

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	macroRe        = regexp.MustCompile(`\bCLOSURE_DEF(_VOID_RET)?\s*\(`)
	lineCommentRe  = regexp.MustCompile(`//[^\n]*`)
	blockCommentRe = regexp.MustCompile(`(?s)/\*.*?\*/`)
)

// ParseMacros extracts the signatures declared with CLOSURE_DEF and
// CLOSURE_DEF_VOID_RET in a C header written against the macro-based
// closure header. The macro definitions themselves are skipped.
func ParseMacros(src string) ([]Signature, error) {
	src = blockCommentRe.ReplaceAllStringFunc(src, blankKeepLines)
	src = lineCommentRe.ReplaceAllString(src, "")

	var out []Signature
	for _, loc := range macroRe.FindAllStringSubmatchIndex(src, -1) {
		start, open := loc[0], loc[1]
		line := 1 + strings.Count(src[:start], "\n")
		if isDefine(src, start) {
			continue
		}
		end, err := matchParen(src, open)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		args := splitArgs(src[open:end])
		voidRet := loc[2] >= 0

		s, err := fromMacroArgs(args, voidRet)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, s)
	}
	return out, nil
}

func fromMacroArgs(args []string, voidRet bool) (Signature, error) {
	if voidRet {
		if len(args) < 2 {
			return Signature{}, fmt.Errorf("CLOSURE_DEF_VOID_RET needs a name and parameters, got %d arguments", len(args))
		}
		return New(args[0], Void, "", args[1:])
	}
	if len(args) < 4 {
		return Signature{}, fmt.Errorf("CLOSURE_DEF needs a name, return type, return name and parameters, got %d arguments", len(args))
	}
	return New(args[0], args[1], args[2], args[3:])
}

// isDefine reports whether the match at pos sits on a #define line.
func isDefine(src string, pos int) bool {
	lineStart := strings.LastIndexByte(src[:pos], '\n') + 1
	return strings.HasPrefix(strings.TrimSpace(src[lineStart:pos]), "#define")
}

// matchParen returns the index of the parenthesis closing the one just
// before open.
func matchParen(src string, open int) (int, error) {
	depth := 1
	for i := open; i < len(src); i++ {
		switch src[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i, nil
			}
		}
	}
	return 0, fmt.Errorf("unterminated macro invocation")
}

// splitArgs splits on top-level commas.
func splitArgs(s string) []string {
	var out []string
	depth, last := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				out = append(out, strings.TrimSpace(s[last:i]))
				last = i + 1
			}
		}
	}
	return append(out, strings.TrimSpace(s[last:]))
}

func blankKeepLines(s string) string {
	return strings.Repeat("\n", strings.Count(s, "\n"))
}
