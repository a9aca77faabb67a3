// Package matchers implements findx predicates over filesystem entries.
//
// A Matcher answers one question about one Entry. The expression evaluator
// that owns a set of matchers calls Matches once per visited entry, passing a
// MatcherIO that carries the traversal-wide output and diagnostic sinks.
//
// # Link-name matchers
//
// LinkNameMatcher (find's -lname) and CaselessLinkNameMatcher (-ilname) test
// the raw target stored in a symbolic link against a shell wildcard pattern:
//
//	m, err := matchers.NewLinkNameMatcher("*.so.?")
//	if err != nil {
//	    return err // *PatternError, reported before any evaluation
//	}
//	ok := m.Matches(matchers.NewOsEntry("/usr/lib/libfoo.so"), mio)
//
// The pattern is compiled once, at construction, and never changes, so a
// single matcher may be queried from many goroutines at once.
//
// # Pattern syntax
//
//   - "*" matches any run of characters, including "/" and the empty run
//   - "?" matches exactly one character
//   - "[abc]", "[a-z0-9]" match one character from the class; "[!abc]"
//     negates. A "]" directly after "[" or "[!" is a member, as in "[]]"
//   - "**" must be a whole path component ("**/x", "a/**/b", "a/**") and
//     matches nothing or any run ending in "/"
//   - "\" outside a class makes the next character literal
//
// "{", "}" and "," are ordinary characters. The whole target must match.
// Targets are opaque strings: the pattern is not split into path segments.
//
// Unterminated or empty classes, "***", a "**" sharing a component with
// other characters, and a trailing "\" are rejected with a *PatternError.
//
// # Failures
//
// An entry that is not a link never matches and is not reported. Any other
// failure to read a link is written to the Diagnostics sink and the entry is
// treated as not matching; evaluation always continues.
package matchers
