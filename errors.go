package icongen

import (
	"errors"
	"fmt"
)

// Sentinel errors for icongen package.
var (
	// ErrEmptyTable is returned when an icon table has no entries.
	ErrEmptyTable = errors.New("icongen: icon table is empty")

	// ErrInvalidSize is returned when the canvas size is not positive.
	ErrInvalidSize = errors.New("icongen: canvas size must be positive")
)

// IconError records a failure while generating a single icon.
type IconError struct {
	// Name is the destination name of the icon.
	Name string

	// Op is the step that failed ("mkdir", "render", "write").
	Op string

	Err error
}

func (e *IconError) Error() string {
	return fmt.Sprintf("icongen: %s %q: %v", e.Op, e.Name, e.Err)
}

// Unwrap returns the underlying error.
func (e *IconError) Unwrap() error {
	return e.Err
}
