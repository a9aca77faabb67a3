package find

import (
	"context"
	"errors"
	"io/fs"

	"github.com/charmbracelet/log"
	"github.com/findx-labs/findx/internal/branding"
	"github.com/findx-labs/findx/internal/matchers"
	"github.com/spf13/afero"
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

const summaryFormat = "%d of %d entries matched, %d errors"

var printer = message.NewPrinter(language.English)

func init() {
	err := message.Set(language.English, summaryFormat,
		catalog.Var("entries", plural.Selectf(2, "%d", "one", "entry", "other", "entries")),
		catalog.Var("errors", plural.Selectf(3, "%d", "one", "error", "other", "errors")),
		catalog.String("%[1]d of %[2]d ${entries} matched, %[3]d ${errors}"))
	if err != nil {
		panic(err)
	}
}

// Options control how a predicate is built and how results are printed.
type Options struct {
	IgnoreCase bool // use the caseless link-name matcher
	Print0     bool // terminate results with NUL instead of newline
}

// Summary counts what one Evaluate call did.
type Summary struct {
	Evaluated int
	Matched   int
	Errors    int
}

func (s Summary) String() string {
	return printer.Sprintf(summaryFormat, s.Matched, s.Evaluated, s.Errors)
}

// NewMatcher builds the link-name predicate for pattern. Invalid patterns
// fail here, before anything is evaluated.
func NewMatcher(pattern string, opts Options) (matchers.Matcher, error) {
	if opts.IgnoreCase {
		return matchers.NewCaselessLinkNameMatcher(pattern)
	}
	return matchers.NewLinkNameMatcher(pattern)
}

// Separator returns the record separator selected by opts.
func (o Options) Separator() string {
	if o.Print0 {
		return "\x00"
	}
	return "\n"
}

// Evaluate tests m against each path on fsys in order and prints matches
// through mio. Paths that do not exist are reported and counted as errors.
// It returns early with ctx.Err() if ctx is cancelled between entries, and
// with an error if a result cannot be written.
func Evaluate(ctx context.Context, m matchers.Matcher, fsys afero.Fs, paths []string, mio *matchers.MatcherIO) (Summary, error) {
	var sum Summary
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		entry := matchers.NewEntry(fsys, p)
		if _, err := entry.Lstat(); err != nil {
			sum.Errors++
			reportMissing(mio, p, err)
			continue
		}

		sum.Evaluated++
		matched := m.Matches(entry, mio)
		log.Debug("evaluated entry", "path", p, "matched", matched)
		if !matched {
			continue
		}

		sum.Matched++
		if err := mio.Print(p); err != nil {
			return sum, err
		}
	}
	return sum, nil
}

func reportMissing(mio *matchers.MatcherIO, path string, err error) {
	if errors.Is(err, fs.ErrNotExist) {
		mio.Diag().Printf("%s: %s: No such file or directory", branding.CLIName(), path)
		return
	}
	mio.Diag().Printf("%s: %s: %v", branding.CLIName(), path, err)
}
