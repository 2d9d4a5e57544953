package poster

import (
	"errors"
	"fmt"
)

// Sentinel errors for the poster package.
var (
	// ErrBackgroundUnavailable is returned when the optional background photo
	// cannot be opened or decoded. Layouts treat it as "no photo".
	ErrBackgroundUnavailable = errors.New("poster: background image unavailable")

	// ErrInvalidDPI is returned when a non-positive resolution is requested.
	ErrInvalidDPI = errors.New("poster: dpi must be positive")

	// ErrCanvasClosed is returned when a closed Canvas is exported.
	ErrCanvasClosed = errors.New("poster: canvas is closed")
)

// FontLoadError is returned when an explicitly configured font file
// cannot be read or parsed.
type FontLoadError struct {
	Path string
	Err  error
}

func (e *FontLoadError) Error() string {
	return fmt.Sprintf("poster: load font %q: %v", e.Path, e.Err)
}

func (e *FontLoadError) Unwrap() error {
	return e.Err
}
