package matchers

import (
	"os"

	"github.com/spf13/afero"
)

// Entry is one filesystem object visited during a search. It is borrowed
// from the traversal driver for the duration of a single evaluation.
type Entry interface {
	// Path is the entry's path as the driver displays it.
	Path() string
	// ReadLink returns the raw target stored in the link. When the entry is
	// not a link the error satisfies platform.IsNotSymlink.
	ReadLink() (string, error)
}

// FsEntry is an Entry backed by an afero filesystem.
type FsEntry struct {
	fs   afero.Fs
	path string
}

var _ Entry = (*FsEntry)(nil)

// NewEntry returns the entry at path on fs. Filesystems that cannot hold
// links (those not implementing afero.LinkReader) report every entry as a
// non-link.
func NewEntry(fs afero.Fs, path string) *FsEntry {
	return &FsEntry{fs: fs, path: path}
}

// NewOsEntry returns the entry at path on the host filesystem.
func NewOsEntry(path string) *FsEntry {
	return NewEntry(afero.NewOsFs(), path)
}

// Path implements Entry.
func (e *FsEntry) Path() string { return e.path }

// ReadLink implements Entry.
func (e *FsEntry) ReadLink() (string, error) {
	lr, ok := e.fs.(afero.LinkReader)
	if !ok {
		return "", &os.PathError{Op: "readlink", Path: e.path, Err: afero.ErrNoReadlink}
	}
	return lr.ReadlinkIfPossible(e.path)
}

// Lstat describes the entry without following a final link.
func (e *FsEntry) Lstat() (os.FileInfo, error) {
	if ls, ok := e.fs.(afero.Lstater); ok {
		fi, _, err := ls.LstatIfPossible(e.path)
		return fi, err
	}
	return e.fs.Stat(e.path)
}
