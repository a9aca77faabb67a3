package matchers

import (
	"github.com/findx-labs/findx/internal/platform"
)

// ReadLinkTarget returns the raw target of entry when it is a symbolic link.
//
// ok is false when the entry is not a link or the link cannot be read. Only
// the latter is reported, to mio's diagnostic sink; the error never
// propagates.
func ReadLinkTarget(entry Entry, mio *MatcherIO) (target string, ok bool) {
	target, err := entry.ReadLink()
	if err == nil {
		return target, true
	}
	if !platform.IsNotSymlink(err) {
		mio.Diag().Printf("Error reading target of %s: %v", entry.Path(), err)
	}
	return "", false
}

// LinkNameMatcher makes a case-sensitive comparison of a link's target
// against a shell wildcard pattern.
type LinkNameMatcher struct {
	pattern  string
	compiled *wildcard
}

var _ Matcher = (*LinkNameMatcher)(nil)

// NewLinkNameMatcher compiles pattern. It returns a *PatternError when the
// pattern is malformed.
func NewLinkNameMatcher(pattern string) (*LinkNameMatcher, error) {
	g, err := compilePattern(pattern, pattern)
	if err != nil {
		return nil, err
	}
	return &LinkNameMatcher{pattern: pattern, compiled: g}, nil
}

// Pattern returns the pattern as supplied.
func (m *LinkNameMatcher) Pattern() string { return m.pattern }

// Matches implements Matcher.
func (m *LinkNameMatcher) Matches(entry Entry, mio *MatcherIO) bool {
	target, ok := ReadLinkTarget(entry, mio)
	if !ok {
		return false
	}
	return m.compiled.Match(lossyText(target))
}

// CaselessLinkNameMatcher is LinkNameMatcher with both the pattern and the
// target folded to lower case.
type CaselessLinkNameMatcher struct {
	pattern  string
	compiled *wildcard
}

var _ Matcher = (*CaselessLinkNameMatcher)(nil)

// NewCaselessLinkNameMatcher lowercases and compiles pattern. It returns a
// *PatternError when the pattern is malformed.
func NewCaselessLinkNameMatcher(pattern string) (*CaselessLinkNameMatcher, error) {
	g, err := compilePattern(pattern, lower(pattern))
	if err != nil {
		return nil, err
	}
	return &CaselessLinkNameMatcher{pattern: pattern, compiled: g}, nil
}

// Pattern returns the pattern as supplied, before lowercasing.
func (m *CaselessLinkNameMatcher) Pattern() string { return m.pattern }

// Matches implements Matcher.
func (m *CaselessLinkNameMatcher) Matches(entry Entry, mio *MatcherIO) bool {
	target, ok := ReadLinkTarget(entry, mio)
	if !ok {
		return false
	}
	return m.compiled.Match(lower(lossyText(target)))
}
