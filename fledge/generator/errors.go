package generator

import "fmt"

// ConflictError is returned when a target file already exists.
type ConflictError struct {
	Name string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s already exists in the current directory", e.Name)
}

// CreateError is returned when a target file could not be created or written.
type CreateError struct {
	Name string
	Err  error
}

func (e *CreateError) Error() string {
	return fmt.Sprintf("failed to create %s: %v", e.Name, e.Err)
}

func (e *CreateError) Unwrap() error {
	return e.Err
}
