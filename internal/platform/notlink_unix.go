//go:build !windows

package platform

import (
	"errors"
	"syscall"
)

// readlink(2) fails with EINVAL when the path exists but is not a link.
func isNotLinkErrno(err error) bool {
	return errors.Is(err, syscall.EINVAL)
}
