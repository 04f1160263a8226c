//go:build !windows

package safefileio

import (
	"errors"
	"os"
	"syscall"
)

// oNoFollow makes open fail when the final path component is a symlink.
const oNoFollow = syscall.O_NOFOLLOW

// isNoFollowError checks if the error indicates we tried to open a symlink
func isNoFollowError(err error) bool {
	var e *os.PathError
	if !errors.As(err, &e) {
		return false
	}
	// Linux reports ELOOP, FreeBSD reports EMLINK and NetBSD reports EFTYPE.
	return errors.Is(e.Err, syscall.ELOOP) || errors.Is(e.Err, syscall.EMLINK) || isEFTYPE(e.Err)
}
