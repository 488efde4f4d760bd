package contract

import (
	"errors"
	"fmt"
)

// ErrDataDirNotFound is returned when the data directory does not exist.
var ErrDataDirNotFound = errors.New("data directory not found")

// ErrNoData is returned by renderers that have nothing to draw.
var ErrNoData = errors.New("no matching rows to render")

// MissingFileError reports a required data file that is absent or unreadable.
type MissingFileError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *MissingFileError) Error() string {
	return fmt.Sprintf("cannot read data file %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying OS error.
func (e *MissingFileError) Unwrap() error {
	return e.Err
}
