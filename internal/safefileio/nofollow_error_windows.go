//go:build windows

package safefileio

// Windows has no O_NOFOLLOW; symlinks are rejected by validateFile's
// Lstat check instead.
const oNoFollow = 0

func isNoFollowError(error) bool {
	return false
}
