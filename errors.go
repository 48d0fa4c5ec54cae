package marquee

import "errors"

var (
	// ErrInvalidPosition is returned by ParsePosition for malformed offsets.
	ErrInvalidPosition = errors.New("invalid timeline position")
	// ErrInvalidBoundary is returned by ParseBoundary for malformed boundaries.
	ErrInvalidBoundary = errors.New("invalid scroll boundary")
	// ErrInvalidConfig is returned when a configuration fails validation.
	ErrInvalidConfig = errors.New("invalid config")
)
