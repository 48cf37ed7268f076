// Package project derives the project identifier from the working directory.
package project

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/BishwashGurung/GCM/internal/platform"
)

// MaxNameLength is the longest project name in bytes. Longer directory
// names are truncated.
const MaxNameLength = 255

var (
	// ErrWorkingDirectory is returned when the working directory cannot be read.
	ErrWorkingDirectory = errors.New("failed to get current working directory")

	// ErrEmptyName is returned when the final path segment is empty.
	ErrEmptyName = errors.New("cannot derive a project name from the working directory")
)

// Name is a sanitized project identifier: non-empty, at most MaxNameLength
// bytes, no path separators and no spaces.
type Name string

func (n Name) String() string {
	return string(n)
}

// DeriveName returns the segment of path after the last sep (or all of
// path when there is none), truncated to MaxNameLength bytes on a rune
// boundary, with every space replaced by an underscore.
//
// Only spaces are rewritten. Quotes, dots and other characters pass through.
func DeriveName(path string, sep byte) (Name, error) {
	segment := path
	if i := strings.LastIndexByte(path, sep); i >= 0 {
		segment = path[i+1:]
	}

	segment = truncate(segment, MaxNameLength)
	if segment == "" {
		return "", fmt.Errorf("%w: %q", ErrEmptyName, path)
	}

	return Name(strings.ReplaceAll(segment, " ", "_")), nil
}

// Workspace is the directory being scaffolded and the name derived from it.
type Workspace struct {
	Dir  string
	Name Name
}

// FromWorkingDir derives the project name from the host's working directory.
func FromWorkingDir(host platform.Host) (Workspace, error) {
	wd, err := host.Getwd()
	if err != nil {
		return Workspace{}, fmt.Errorf("%w: %w", ErrWorkingDirectory, err)
	}

	name, err := DeriveName(wd, host.Separator())
	if err != nil {
		return Workspace{}, err
	}
	return Workspace{Dir: wd, Name: name}, nil
}

// truncate cuts s to at most max bytes without splitting a UTF-8 sequence.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
