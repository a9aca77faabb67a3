//go:build windows

package platform

import (
	"errors"
	"syscall"
)

// errorNotAReparsePoint is ERROR_NOT_A_REPARSE_POINT from winerror.h.
const errorNotAReparsePoint syscall.Errno = 4390

func isNotLinkErrno(err error) bool {
	return errors.Is(err, errorNotAReparsePoint) || errors.Is(err, syscall.EINVAL)
}
