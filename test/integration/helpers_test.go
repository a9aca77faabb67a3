//go:build integration

package integration_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/findx-labs/findx/internal/matchers"
	"github.com/findx-labs/findx/internal/platform"
)

// testTree holds a fixture directory of links and plain entries.
type testTree struct {
	Root string
}

// setupTree creates a tree resembling a shared-library directory:
//
//	libc.so      -> libc.so.6
//	libm.so      -> /lib/x86_64-linux-gnu/libm.so.6
//	python       -> ../Python/3.12/bin/PYTHON3
//	stale        -> gone/for/good           (dangling)
//	loop         -> loop                    (self-referential)
//	README       regular file
//	include/     directory
func setupTree(t *testing.T) *testTree {
	t.Helper()
	if !platform.IsSymlinkSupported() {
		t.Skip("symlinks are not supported on this platform")
	}

	tree := &testTree{Root: t.TempDir()}
	links := map[string]string{
		"libc.so": "libc.so.6",
		"libm.so": "/lib/x86_64-linux-gnu/libm.so.6",
		"python":  "../Python/3.12/bin/PYTHON3",
		"stale":   "gone/for/good",
		"loop":    "loop",
	}
	for name, target := range links {
		if err := platform.CreateSymlink(target, tree.Path(name)); err != nil {
			t.Fatalf("creating link %s: %v", name, err)
		}
	}
	writeFile(t, tree.Path("README"), "fixture\n")
	if err := os.MkdirAll(tree.Path("include"), 0755); err != nil {
		t.Fatalf("creating include/: %v", err)
	}
	return tree
}

// Path returns the absolute path of name inside the tree.
func (tt *testTree) Path(name string) string {
	return filepath.Join(tt.Root, name)
}

// All returns every entry in the tree in a fixed order.
func (tt *testTree) All() []string {
	names := []string{"README", "include", "libc.so", "libm.so", "loop", "python", "stale"}
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = tt.Path(n)
	}
	return out
}

// newIO returns a MatcherIO backed by buffers for stdout and diagnostics.
func newIO(t *testing.T) (*matchers.MatcherIO, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, diag bytes.Buffer
	d := matchers.NewDiagnostics(&diag).OnWriteFailure(func(err error) {
		t.Fatalf("diagnostic write failed: %v", err)
	})
	return matchers.NewMatcherIO(&out, d), &out, &diag
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertLines fails unless out holds exactly want, one per line.
func assertLines(t *testing.T, out string, want ...string) {
	t.Helper()
	got := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if out == "" {
		got = nil
	}
	if len(got) != len(want) {
		t.Fatalf("got %d lines %q, want %d %q", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}
