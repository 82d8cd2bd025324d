package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrInvalidFontSize is returned when a face is requested with a
	// non-positive size.
	ErrInvalidFontSize = errors.New("text: font size must be positive")
)
