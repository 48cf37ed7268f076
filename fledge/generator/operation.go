package generator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Operation represents a file system operation that can be validated and executed.
//
// Validate checks if the operation would succeed without executing it.
// Validation has no side effects.
//
// Execute performs the actual operation. It re-checks the preconditions
// Validate covered, since the file system may have changed in between.
//
// Description returns the name shown to the user (e.g., "CMakeLists.txt").
type Operation interface {
	Validate(ctx context.Context) error
	Execute(ctx context.Context) error
	Description() string
}

// ExistenceGuard reports whether a non-directory entry exists at path.
type ExistenceGuard interface {
	FileExists(path string) bool
}

// statGuard is used when a WriteFileOp has no Guard configured.
type statGuard struct{}

func (statGuard) FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// WriteFileOp creates a new file with content. It never replaces an existing file.
//
// Validation behavior:
//   - Fails with *ConflictError if Guard reports the target exists
//   - Allows empty content (zero bytes) but rejects nil content
//
// Execution behavior:
//   - Re-checks the guard, then creates the file with O_EXCL so a file that
//     appeared after the check is still reported as a conflict
//   - Any other open or write failure is a *CreateError
type WriteFileOp struct {
	Dir     string         // Directory the file is created in
	Name    string         // File name relative to Dir, also used for output
	Content []byte         // File content (can be empty, must not be nil)
	Mode    fs.FileMode    // File permissions (e.g., 0644)
	Guard   ExistenceGuard // Existence predicate (defaults to os.Stat)
}

// Path returns the full path of the file the operation creates.
func (op *WriteFileOp) Path() string {
	return filepath.Join(op.Dir, op.Name)
}

func (op *WriteFileOp) guard() ExistenceGuard {
	if op.Guard == nil {
		return statGuard{}
	}
	return op.Guard
}

func (op *WriteFileOp) Validate(ctx context.Context) error {
	if op.guard().FileExists(op.Path()) {
		return &ConflictError{Name: op.Name}
	}

	// Reject nil content (empty is OK)
	if op.Content == nil {
		return fmt.Errorf("content is nil for file: %s", op.Name)
	}

	return nil
}

func (op *WriteFileOp) Execute(ctx context.Context) error {
	if err := op.Validate(ctx); err != nil {
		return err
	}

	mode := op.Mode
	if mode == 0 {
		mode = 0644
	}

	f, err := os.OpenFile(op.Path(), os.O_WRONLY|os.O_CREATE|os.O_EXCL, mode)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return &ConflictError{Name: op.Name}
		}
		return &CreateError{Name: op.Name, Err: err}
	}

	if _, err := f.Write(op.Content); err != nil {
		f.Close()
		return &CreateError{Name: op.Name, Err: err}
	}
	if err := f.Close(); err != nil {
		return &CreateError{Name: op.Name, Err: err}
	}

	// The umask may have masked off the executable bits
	if mode&0111 != 0 {
		if err := os.Chmod(op.Path(), mode); err != nil {
			return &CreateError{Name: op.Name, Err: err}
		}
	}

	return nil
}

func (op *WriteFileOp) Description() string {
	return op.Name
}
