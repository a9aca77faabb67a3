package matchers

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

// Diagnostics is a write-only sink for human-readable problem reports, one
// per line. It is safe for concurrent use.
//
// Losing a diagnostic is not acceptable: when a write fails the sink calls
// its failure handler, which by default logs the error and exits the
// process.
type Diagnostics struct {
	mu        sync.Mutex
	w         io.Writer
	onFailure func(error)
}

var (
	stderrOnce sync.Once
	stderrDiag *Diagnostics
)

// StderrDiagnostics returns the process-wide sink writing to os.Stderr.
func StderrDiagnostics() *Diagnostics {
	stderrOnce.Do(func() {
		stderrDiag = NewDiagnostics(os.Stderr)
	})
	return stderrDiag
}

// NewDiagnostics returns a sink writing to w.
func NewDiagnostics(w io.Writer) *Diagnostics {
	return &Diagnostics{w: w, onFailure: fatalWriteFailure}
}

// OnWriteFailure replaces the handler invoked when a write to the
// underlying writer fails, and returns d.
func (d *Diagnostics) OnWriteFailure(fn func(error)) *Diagnostics {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.onFailure = fn
	return d
}

// Printf formats one diagnostic line. A trailing newline is added.
func (d *Diagnostics) Printf(format string, args ...any) {
	line := fmt.Sprintf(format, args...) + "\n"

	d.mu.Lock()
	_, err := io.WriteString(d.w, line)
	handler := d.onFailure
	d.mu.Unlock()

	if err != nil && handler != nil {
		handler(fmt.Errorf("writing diagnostic: %w", err))
	}
}

func fatalWriteFailure(err error) {
	log.Fatal("cannot report diagnostics", "err", err)
}
