package etframes

import (
	"errors"
	"fmt"
)

var (
	ErrDegenerateRange = errors.New("degenerate view range")
	ErrInvalidBounds   = errors.New("invalid bounds")
	ErrEmptyData       = errors.New("no data values")
	ErrUnknownColor    = errors.New("unknown color")
)

// DegenerateRangeError is returned when a view range has zero span, so no
// fraction along it can be computed.
type DegenerateRangeError struct {
	View Bounds
}

func (e *DegenerateRangeError) Error() string {
	return fmt.Sprintf("degenerate view range %v", e.View)
}

func (e *DegenerateRangeError) Is(target error) bool { return target == ErrDegenerateRange }

// InvalidBoundsError reports a bound pair with Min > Max or a non-finite
// endpoint. Axis names the dimension when known.
type InvalidBoundsError struct {
	Axis   string
	Bounds Bounds
}

func (e *InvalidBoundsError) Error() string {
	if e.Axis == "" {
		return fmt.Sprintf("invalid bounds %v", e.Bounds)
	}
	return fmt.Sprintf("invalid %s bounds %v", e.Axis, e.Bounds)
}

func (e *InvalidBoundsError) Is(target error) bool { return target == ErrInvalidBounds }
