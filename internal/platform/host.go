// Package platform abstracts the two host facilities the scaffolder needs:
// the current working directory and a file existence check.
package platform

import "os"

// Host is the capability interface the rest of the tool depends on.
type Host interface {
	// Getwd returns the absolute path of the working directory.
	Getwd() (string, error)
	// FileExists reports whether a non-directory entry exists at path.
	FileExists(path string) bool
	// Separator is the path separator the working directory uses.
	Separator() byte
}

// OS is the Host backed by the running operating system.
type OS struct{}

// NewOS returns the host implementation for the running platform.
func NewOS() OS {
	return OS{}
}

func (OS) Getwd() (string, error) {
	return os.Getwd()
}

func (OS) FileExists(path string) bool {
	return fileExists(path)
}

func (OS) Separator() byte {
	return os.PathSeparator
}
