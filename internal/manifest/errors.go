package manifest

import (
	"errors"
	"fmt"
)

// Sentinel errors for manifest validation.
var (
	// ErrMissingField indicates a required entry field (path, name) is empty.
	ErrMissingField = errors.New("required field missing")
	// ErrDuplicatePath indicates two entries name the same relative path.
	ErrDuplicatePath = errors.New("duplicate path")
	// ErrAbsolutePath indicates an entry path is absolute.
	ErrAbsolutePath = errors.New("path must be relative to the project folder")
	// ErrEscapesProject indicates an entry path climbs out of the project folder.
	ErrEscapesProject = errors.New("path escapes the project folder")
	// ErrUnknownCategory indicates an entry uses a category outside the known set.
	ErrUnknownCategory = errors.New("unknown category")
)

// ValidationError records a manifest problem together with the entry it
// was found on.
type ValidationError struct {
	Index int // Position of the entry in the manifest, -1 for manifest-level problems
	Path  string
	Field string
	Err   error
}

// Error returns a human-readable string including the entry position.
func (e *ValidationError) Error() string {
	if e.Index < 0 {
		return e.Err.Error()
	}
	if e.Path != "" {
		return fmt.Sprintf("entry %d (%s): %v", e.Index, e.Path, e.Err)
	}
	return fmt.Sprintf("entry %d: %v", e.Index, e.Err)
}

// Unwrap returns the underlying error for use with errors.Is/As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
