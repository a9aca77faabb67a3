package find

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/findx-labs/findx/internal/matchers"
	"github.com/findx-labs/findx/internal/platform"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixture lays out:
//
//	plain.txt
//	dir/
//	lib.so    -> libfoo.so.1
//	dangling  -> missing/target
func fixture(t *testing.T) string {
	t.Helper()
	if !platform.IsSymlinkSupported() {
		t.Skip("symlinks are not supported on this platform")
	}
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "plain.txt"), []byte("x"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(root, "dir"), 0755))
	require.NoError(t, platform.CreateSymlink("libfoo.so.1", filepath.Join(root, "lib.so")))
	require.NoError(t, platform.CreateSymlink("missing/target", filepath.Join(root, "dangling")))
	return root
}

// noLinkFs hides afero.LinkReader and afero.Lstater from the wrapped filesystem.
type noLinkFs struct{ afero.Fs }

func paths(root string, names ...string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = filepath.Join(root, n)
	}
	return out
}

func newIO() (*matchers.MatcherIO, *bytes.Buffer, *bytes.Buffer) {
	var out, diag bytes.Buffer
	return matchers.NewMatcherIO(&out, matchers.NewDiagnostics(&diag)), &out, &diag
}

func TestEvaluate_PrintsMatchesInOrder(t *testing.T) {
	root := fixture(t)
	m, err := NewMatcher("*", Options{})
	require.NoError(t, err)

	mio, out, diag := newIO()
	sum, err := Evaluate(context.Background(), m, afero.NewReadOnlyFs(afero.NewOsFs()),
		paths(root, "dangling", "plain.txt", "dir", "lib.so"), mio)
	require.NoError(t, err)

	want := filepath.Join(root, "dangling") + "\n" + filepath.Join(root, "lib.so") + "\n"
	assert.Equal(t, want, out.String())
	assert.Empty(t, diag.String())
	assert.Equal(t, Summary{Evaluated: 4, Matched: 2}, sum)
}

func TestEvaluate_IgnoreCaseAndPrint0(t *testing.T) {
	root := fixture(t)
	opts := Options{IgnoreCase: true, Print0: true}

	m, err := NewMatcher("LIBFOO.SO.?", opts)
	require.NoError(t, err)

	mio, out, _ := newIO()
	mio.Separator = opts.Separator()
	sum, err := Evaluate(context.Background(), m, afero.NewOsFs(), paths(root, "lib.so", "plain.txt"), mio)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "lib.so")+"\x00", out.String())
	assert.Equal(t, 1, sum.Matched)
}

func TestEvaluate_CaseSensitiveMiss(t *testing.T) {
	root := fixture(t)
	m, err := NewMatcher("LIBFOO.SO.?", Options{})
	require.NoError(t, err)

	mio, out, _ := newIO()
	sum, err := Evaluate(context.Background(), m, afero.NewOsFs(), paths(root, "lib.so"), mio)
	require.NoError(t, err)
	assert.Empty(t, out.String())
	assert.Equal(t, 0, sum.Matched)
}

func TestEvaluate_MissingPathIsReportedAndSkipped(t *testing.T) {
	root := fixture(t)
	m, err := NewMatcher("lib*", Options{})
	require.NoError(t, err)

	mio, out, diag := newIO()
	sum, err := Evaluate(context.Background(), m, afero.NewOsFs(), paths(root, "nope", "lib.so"), mio)
	require.NoError(t, err)

	assert.Equal(t, "findx: "+filepath.Join(root, "nope")+": No such file or directory\n", diag.String())
	assert.Equal(t, filepath.Join(root, "lib.so")+"\n", out.String())
	assert.Equal(t, Summary{Evaluated: 1, Matched: 1, Errors: 1}, sum)
}

func TestEvaluate_FilesystemWithoutLinks(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/a/file", []byte("x"), 0644))

	m, err := NewMatcher("*", Options{})
	require.NoError(t, err)

	mio, out, diag := newIO()
	sum, err := Evaluate(context.Background(), m, afero.NewReadOnlyFs(noLinkFs{fsys}), []string{"/a/file", "/a"}, mio)
	require.NoError(t, err)
	assert.Empty(t, out.String())
	assert.Empty(t, diag.String())
	assert.Equal(t, 2, sum.Evaluated)
}

func TestEvaluate_Cancelled(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/f", []byte("x"), 0644))

	m, err := NewMatcher("*", Options{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mio, _, _ := newIO()
	sum, err := Evaluate(ctx, m, fsys, []string{"/f"}, mio)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 0, sum.Evaluated)
}

func TestNewMatcher_InvalidPattern(t *testing.T) {
	for _, opts := range []Options{{}, {IgnoreCase: true}} {
		_, err := NewMatcher("[abc", opts)
		var perr *matchers.PatternError
		assert.True(t, errors.As(err, &perr), "opts %+v", opts)
	}
}

func TestNewMatcher_Variant(t *testing.T) {
	m, err := NewMatcher("x", Options{})
	require.NoError(t, err)
	assert.IsType(t, &matchers.LinkNameMatcher{}, m)

	m, err = NewMatcher("x", Options{IgnoreCase: true})
	require.NoError(t, err)
	assert.IsType(t, &matchers.CaselessLinkNameMatcher{}, m)
}

func TestSummaryString(t *testing.T) {
	tests := []struct {
		sum  Summary
		want string
	}{
		{Summary{Evaluated: 1200, Matched: 3}, "3 of 1,200 entries matched, 0 errors"},
		{Summary{Evaluated: 1, Matched: 1, Errors: 1}, "1 of 1 entry matched, 1 error"},
		{Summary{Evaluated: 2, Matched: 0, Errors: 2}, "0 of 2 entries matched, 2 errors"},
		{Summary{}, "0 of 0 entries matched, 0 errors"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.sum.String())
	}
}
