//go:build windows

package platform

import "os"

// fileExists treats any entry without the directory attribute as a file,
// including reparse points that resolve to one.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeDir == 0
}
