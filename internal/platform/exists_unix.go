//go:build !windows

package platform

import "os"

// fileExists follows symlinks; a dangling link counts as missing.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
