package filesystem

import (
	"errors"
	"fmt"
)

var (
	// ErrPathNotFound indicates a path component failed to resolve or an
	// intermediate component is not a directory
	ErrPathNotFound = errors.New("path not found")

	// ErrAlreadyExists indicates a create target collides with an existing sibling
	ErrAlreadyExists = errors.New("node already exists")

	// ErrCapacityExceeded indicates a child-count, name-length or depth limit
	// was violated on create
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// ErrWrongKind indicates a content operation on a directory or a
	// structural operation on the wrong node kind
	ErrWrongKind = errors.New("wrong node kind")

	// ErrNotEmpty indicates a non-recursive delete on a directory with children
	ErrNotEmpty = errors.New("directory not empty")
)

// Error wraps engine errors with the operation and the affected path or name,
// so callers can log a failure without reconstructing the context.
type Error struct {
	Op   string // Operation that failed (e.g., "create", "resolve")
	Path string // Affected path or node name
	Err  error  // Underlying sentinel error
}

// Error implements the error interface, providing a formatted error message
func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("operation %s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("operation %s on %q failed: %v", e.Op, e.Path, e.Err)
}

// Unwrap implements error unwrapping for the errors.Is/As functions
func (e *Error) Unwrap() error {
	return e.Err
}

func newError(op, path string, err error) *Error {
	return &Error{Op: op, Path: path, Err: err}
}

// Common operation names for consistent logging and error reporting
const (
	OpResolve = "resolve" // Walking a path
	OpCreate  = "create"  // Creating a new file or directory
	OpRead    = "read"    // Reading file content
	OpWrite   = "write"   // Replacing file content
	OpRemove  = "remove"  // Removing a file or directory
)
