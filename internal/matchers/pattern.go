package matchers

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gobwas/glob"
	"golang.org/x/text/cases"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/language"
)

// PatternError reports a wildcard pattern that does not compile. It is only
// returned from matcher constructors.
type PatternError struct {
	Pattern string // as supplied by the caller
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error { return e.Err }

var (
	errTrailingEscape  = errors.New("trailing escape character")
	errInvalidClass    = errors.New("unterminated or empty character class")
	errTooManyStars    = errors.New("wildcards are either regular `*` or recursive `**`")
	errRecursiveInPart = errors.New("recursive wildcards must form a single path component")
)

type tokenKind int

const (
	tokLiteral tokenKind = iota
	tokAnyChar
	tokAnySequence
	tokAnyRecursive
	tokClass
)

type token struct {
	kind  tokenKind
	r     rune
	class *charClass
}

func (t token) matchRune(r rune) bool {
	switch t.kind {
	case tokLiteral:
		return t.r == r
	case tokClass:
		return t.class.match(r)
	default:
		return true
	}
}

// charClass is one bracket expression. Each of its specs is compiled by
// gobwas/glob into a single-rune matcher.
type charClass struct {
	negated bool
	specs   []glob.Glob
}

func (c *charClass) match(r rune) bool {
	s := string(r)
	for _, g := range c.specs {
		if g.Match(s) {
			return !c.negated
		}
	}
	return c.negated
}

// wildcard is a compiled shell pattern. It is immutable once built.
type wildcard struct {
	tokens []token
}

// compilePattern parses expr. original is what the user typed and is kept
// for error reporting.
//
// "*" and "?" match any character including "/". "**" is only valid as a
// whole path component and matches the empty string or any run ending in
// "/". "[" opens a class closed by the next "]" after at least one member, so
// "[]]" and "[!]]" hold a literal "]". Braces and commas are plain
// characters. Outside a class, "\" makes the next character literal.
func compilePattern(original, expr string) (*wildcard, error) {
	fail := func(err error) (*wildcard, error) {
		return nil, &PatternError{Pattern: original, Err: err}
	}

	chars := []rune(expr)
	var tokens []token
	for i := 0; i < len(chars); {
		switch c := chars[i]; c {
		case '?':
			tokens = append(tokens, token{kind: tokAnyChar})
			i++

		case '*':
			start := i
			for i < len(chars) && chars[i] == '*' {
				i++
			}
			switch i - start {
			case 1:
				tokens = append(tokens, token{kind: tokAnySequence})
				continue
			case 2:
			default:
				return fail(errTooManyStars)
			}
			if start > 0 && chars[start-1] != '/' {
				return fail(errRecursiveInPart)
			}
			if i < len(chars) {
				if chars[i] != '/' {
					return fail(errRecursiveInPart)
				}
				i++
			}
			if n := len(tokens); n == 0 || tokens[n-1].kind != tokAnyRecursive {
				tokens = append(tokens, token{kind: tokAnyRecursive})
			}

		case '[':
			class, next, err := parseClass(chars, i)
			if err != nil {
				return fail(err)
			}
			tokens = append(tokens, token{kind: tokClass, class: class})
			i = next

		case '\\':
			if i+1 == len(chars) {
				return fail(errTrailingEscape)
			}
			tokens = append(tokens, token{kind: tokLiteral, r: chars[i+1]})
			i += 2

		default:
			tokens = append(tokens, token{kind: tokLiteral, r: c})
			i++
		}
	}
	return &wildcard{tokens: tokens}, nil
}

// parseClass parses the bracket expression opening at chars[open] and
// returns the index just past its closing "]".
func parseClass(chars []rune, open int) (*charClass, int, error) {
	i := open + 1
	negated := i < len(chars) && chars[i] == '!'
	if negated {
		i++
	}
	// The first member may be "]".
	end := -1
	for j := i + 1; j < len(chars); j++ {
		if chars[j] == ']' {
			end = j
			break
		}
	}
	if i >= len(chars) || end < 0 {
		return nil, 0, errInvalidClass
	}

	class := &charClass{negated: negated}
	var singles []rune
	members := chars[i:end]
	for k := 0; k < len(members); {
		if k+2 < len(members) && members[k+1] == '-' {
			g, err := compileRange(members[k], members[k+2])
			if err != nil {
				return nil, 0, err
			}
			class.specs = append(class.specs, g...)
			k += 3
			continue
		}
		singles = append(singles, members[k])
		k++
	}
	if len(singles) > 0 {
		g, err := compileList(singles)
		if err != nil {
			return nil, 0, err
		}
		class.specs = append(class.specs, g)
	}
	return class, end + 1, nil
}

// compileRange returns nil for an empty range such as "z-a", which matches
// nothing.
func compileRange(lo, hi rune) ([]glob.Glob, error) {
	if lo == 0 {
		lo = 1
	}
	if hi < lo {
		return nil, nil
	}
	var out []glob.Glob
	// A leading "!" would read as negation.
	if lo == '!' {
		g, err := compileList([]rune{'!'})
		if err != nil {
			return nil, err
		}
		out = append(out, g)
		if hi == '!' {
			return out, nil
		}
		lo++
	}
	g, err := glob.Compile(string([]rune{'[', lo, '-', hi, ']'}))
	if err != nil {
		return nil, err
	}
	return append(out, g), nil
}

// compileList compiles a class of single runes, each escaped. A leading
// "\-" would read as a range from "\", so "-" never goes first.
func compileList(singles []rune) (glob.Glob, error) {
	var b strings.Builder
	b.WriteByte('[')
	dash := false
	for _, r := range singles {
		if r == '-' {
			dash = true
			continue
		}
		b.WriteByte('\\')
		b.WriteRune(r)
	}
	if dash {
		if b.Len() == 1 {
			return glob.Compile("[---]")
		}
		b.WriteString(`\-`)
	}
	b.WriteByte(']')
	return glob.Compile(b.String())
}

type matchResult int

const (
	matched matchResult = iota
	subPatternMismatch
	patternMismatch
)

// Match reports whether the whole of s matches the pattern. Characters are
// runes, so "?" consumes one rune whatever its encoded width.
func (w *wildcard) Match(s string) bool {
	return matchFrom(w.tokens, []rune(s)) == matched
}

// matchFrom walks tokens against s, backtracking only at sequence
// wildcards. patternMismatch means no later starting point for an enclosing
// sequence can succeed either.
func matchFrom(tokens []token, s []rune) matchResult {
	for ti, t := range tokens {
		switch t.kind {
		case tokAnySequence, tokAnyRecursive:
			rest := tokens[ti+1:]
			if r := matchFrom(rest, s); r != subPatternMismatch {
				return r
			}
			for i, c := range s {
				if t.kind == tokAnyRecursive && c != '/' {
					continue
				}
				if r := matchFrom(rest, s[i+1:]); r != subPatternMismatch {
					return r
				}
			}
			return patternMismatch

		default:
			if len(s) == 0 {
				return patternMismatch
			}
			if !t.matchRune(s[0]) {
				return subPatternMismatch
			}
			s = s[1:]
		}
	}
	if len(s) == 0 {
		return matched
	}
	return subPatternMismatch
}

// lossyText returns s with every invalid UTF-8 byte replaced by U+FFFD.
func lossyText(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	out, err := unicode.UTF8.NewDecoder().String(s)
	if err != nil {
		return strings.ToValidUTF8(s, string(utf8.RuneError))
	}
	return out
}

// lower folds s to lower case. A Caser is stateful, so one is made per call.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}
