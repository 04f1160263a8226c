//go:build !netbsd && !windows

package safefileio

func isEFTYPE(error) bool {
	return false
}
