package matchers

import (
	"fmt"
	"io"
	"os"
)

// Matcher is a single predicate over a filesystem entry.
type Matcher interface {
	// Matches reports whether entry satisfies the predicate. Implementations
	// must not retain entry or mio past the call.
	Matches(entry Entry, mio *MatcherIO) bool
}

// MatcherIO is the evaluation context shared by every matcher in one search.
// A nil *MatcherIO is valid and behaves like one writing to stdout and
// stderr.
type MatcherIO struct {
	// Out receives matched paths.
	Out io.Writer
	// Separator terminates each printed path.
	Separator string
	// Diagnostics receives per-entry error reports.
	Diagnostics *Diagnostics
}

// NewMatcherIO returns a MatcherIO printing newline-terminated paths to out
// and reporting problems to diag.
func NewMatcherIO(out io.Writer, diag *Diagnostics) *MatcherIO {
	return &MatcherIO{
		Out:         out,
		Separator:   "\n",
		Diagnostics: diag,
	}
}

// Print writes path followed by the record separator to Out.
func (m *MatcherIO) Print(path string) error {
	out, sep := io.Writer(os.Stdout), "\n"
	if m != nil {
		if m.Out != nil {
			out = m.Out
		}
		if m.Separator != "" {
			sep = m.Separator
		}
	}
	if _, err := io.WriteString(out, path+sep); err != nil {
		return fmt.Errorf("writing result %s: %w", path, err)
	}
	return nil
}

// Diag returns the diagnostic sink, falling back to the process-wide
// stderr sink.
func (m *MatcherIO) Diag() *Diagnostics {
	if m == nil || m.Diagnostics == nil {
		return StderrDiagnostics()
	}
	return m.Diagnostics
}
