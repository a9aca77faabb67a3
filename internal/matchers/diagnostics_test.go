package matchers

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestDiagnostics_Printf(t *testing.T) {
	var buf bytes.Buffer
	d := NewDiagnostics(&buf)

	d.Printf("Error reading target of %s: %v", "a/b", errors.New("permission denied"))
	assert.Equal(t, "Error reading target of a/b: permission denied\n", buf.String())
}

func TestDiagnostics_WriteFailureInvokesHandler(t *testing.T) {
	var got error
	d := NewDiagnostics(failingWriter{}).OnWriteFailure(func(err error) { got = err })

	d.Printf("lost line")
	require.Error(t, got)
	assert.Contains(t, got.Error(), "broken pipe")
}

func TestDiagnostics_ConcurrentLinesStayWhole(t *testing.T) {
	var buf bytes.Buffer
	d := NewDiagnostics(&buf)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.Printf("Error reading target of %s: %s", "x", "y")
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 50)
	for _, l := range lines {
		assert.Equal(t, "Error reading target of x: y", l)
	}
}

func TestMatcherIO_Print(t *testing.T) {
	var out bytes.Buffer
	mio := NewMatcherIO(&out, NewDiagnostics(&bytes.Buffer{}))

	require.NoError(t, mio.Print("a"))
	mio.Separator = "\x00"
	require.NoError(t, mio.Print("b"))
	assert.Equal(t, "a\nb\x00", out.String())

	mio.Out = failingWriter{}
	assert.Error(t, mio.Print("c"))
}

func TestMatcherIO_NilFallsBackToStderr(t *testing.T) {
	var mio *MatcherIO
	assert.Same(t, StderrDiagnostics(), mio.Diag())
	assert.Same(t, StderrDiagnostics(), (&MatcherIO{}).Diag())
}
