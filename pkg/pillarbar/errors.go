package pillarbar

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a recognized snapshot or
// workbook format.
var ErrInvalidFormat = errors.New("invalid input format")

// ErrSheetNotFound indicates the requested worksheet does not exist.
var ErrSheetNotFound = errors.New("sheet not found")

// LoadError represents an error while binding categories or loading a state
// snapshot.
type LoadError struct {
	Source    string
	Component string // "categories", "state"
	Err       error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load error in %q (%s): %v", e.Source, e.Component, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(source, component string, err error) *LoadError {
	return &LoadError{
		Source:    source,
		Component: component,
		Err:       err,
	}
}
