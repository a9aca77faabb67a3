package platform

import (
	"errors"
	"os"
	"runtime"

	"github.com/spf13/afero"
)

// CreateSymlink creates a symbolic link at link whose stored target is
// target. The target is written verbatim and need not exist.
func CreateSymlink(target, link string) error {
	return os.Symlink(target, link)
}

// RemoveSymlink removes the link itself, never the file it points to.
func RemoveSymlink(path string) error {
	return os.Remove(path)
}

// ReadSymlinkTarget returns the raw target stored in the link at path.
// The result is not cleaned, made absolute, or checked for existence.
func ReadSymlinkTarget(path string) (string, error) {
	return os.Readlink(path)
}

// IsNotSymlink reports whether err, returned by a readlink call, only says
// that the entry is not a symbolic link. Such errors are the normal outcome
// for regular files and directories and should not be reported.
func IsNotSymlink(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, afero.ErrNoReadlink) {
		return true
	}
	return isNotLinkErrno(err)
}

// IsSymlinkSupported returns true if the current platform can create native
// symlinks. On Windows this attempts a test link to check developer mode.
func IsSymlinkSupported() bool {
	if runtime.GOOS != "windows" {
		return true
	}

	dir, err := os.MkdirTemp("", "findx-symlink-test")
	if err != nil {
		return false
	}
	defer os.RemoveAll(dir)

	link := dir + string(os.PathSeparator) + "probe"
	if err := os.Symlink(dir, link); err != nil {
		return false
	}
	return true
}
