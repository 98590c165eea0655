package etframes

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot/plotter"
)

// Bounds is an ordered (min, max) pair describing either the range of a
// data set or the visible range of an axis.
type Bounds struct {
	Min, Max float64
}

// NewBounds returns the pair (min, max) or an error if it is not a valid
// bound pair.
func NewBounds(min, max float64) (Bounds, error) {
	b := Bounds{Min: min, Max: max}
	return b, b.Validate()
}

// Validate checks that both endpoints are finite and Min <= Max.
func (b Bounds) Validate() error {
	if !finite(b.Min) || !finite(b.Max) || b.Min > b.Max {
		return &InvalidBoundsError{Bounds: b}
	}
	return nil
}

// Span returns Max - Min.
func (b Bounds) Span() float64 { return b.Max - b.Min }

func (b Bounds) String() string {
	return fmt.Sprintf("(%g, %g)", b.Min, b.Max)
}

// BoundsOf returns the minimum and maximum of vs.
func BoundsOf(vs []float64) (Bounds, error) {
	if len(vs) == 0 {
		return Bounds{}, ErrEmptyData
	}
	for _, v := range vs {
		if math.IsNaN(v) {
			return Bounds{}, &InvalidBoundsError{Bounds: Bounds{Min: v, Max: v}}
		}
	}
	return NewBounds(floats.Min(vs), floats.Max(vs))
}

// XYBounds returns the x and y bounds of a plotter data set, so that a range
// frame can be built from the same values that are plotted.
func XYBounds(xys plotter.XYer) (x, y Bounds, err error) {
	if xys.Len() == 0 {
		return x, y, ErrEmptyData
	}
	xmin, xmax, ymin, ymax := plotter.XYRange(xys)
	if x, err = NewBounds(xmin, xmax); err != nil {
		return x, y, fmt.Errorf("x: %w", err)
	}
	if y, err = NewBounds(ymin, ymax); err != nil {
		return x, y, fmt.Errorf("y: %w", err)
	}
	return x, y, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
