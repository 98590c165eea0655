package etframes

import (
	"math"

	"gonum.org/v1/plot"
)

// IntervalFrac returns the fractional distance of v along view, clipped to
// [0, 1] so that the result never lies past the border of the axis.
func IntervalFrac(view Bounds, v float64) (float64, error) {
	if !finite(view.Min) || !finite(view.Max) {
		return 0, &InvalidBoundsError{Axis: "view", Bounds: view}
	}
	if math.IsNaN(v) {
		return 0, &InvalidBoundsError{Bounds: Bounds{Min: v, Max: v}}
	}
	if view.Span() == 0 {
		return 0, &DegenerateRangeError{View: view}
	}
	return clamp01((v - view.Min) / view.Span()), nil
}

// DataBoundsOnAxis maps the min and max of data onto fractions of view.
// A nil data pair means no tightening: the frame spans the whole axis.
func DataBoundsOnAxis(view Bounds, data *Bounds) (lo, hi float64, err error) {
	if data == nil {
		return 0, 1, nil
	}
	if lo, err = IntervalFrac(view, data.Min); err != nil {
		return 0, 0, err
	}
	if hi, err = IntervalFrac(view, data.Max); err != nil {
		return 0, 0, err
	}
	return lo, hi, nil
}

// axisFractions is DataBoundsOnAxis against the live range of a, honouring a
// non-linear Scale so the frame stays on top of the data it describes.
// Data bounds are clipped to the view before normalising, which keeps
// values at or below zero away from a log scale.
func axisFractions(a plot.Axis, data *Bounds) (lo, hi float64, err error) {
	view := Bounds{Min: a.Min, Max: a.Max}
	switch a.Scale.(type) {
	case nil, plot.LinearScale, *plot.LinearScale:
		return DataBoundsOnAxis(view, data)
	}
	if data == nil {
		return 0, 1, nil
	}
	if !finite(view.Min) || !finite(view.Max) {
		return 0, 0, &InvalidBoundsError{Axis: "view", Bounds: view}
	}
	if view.Span() == 0 {
		return 0, 0, &DegenerateRangeError{View: view}
	}
	if logScaled(a.Scale) && (view.Min <= 0 || view.Max <= 0) {
		return 0, 0, &InvalidBoundsError{Axis: "view", Bounds: view}
	}
	vmin, vmax := math.Min(view.Min, view.Max), math.Max(view.Min, view.Max)
	lo = clamp01(a.Norm(clampTo(data.Min, vmin, vmax)))
	hi = clamp01(a.Norm(clampTo(data.Max, vmin, vmax)))
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi, nil
}

// logScaled reports whether n is a log scale, possibly inverted.
func logScaled(n plot.Normalizer) bool {
	for {
		switch s := n.(type) {
		case plot.LogScale, *plot.LogScale:
			return true
		case plot.InvertedScale:
			n = s.Normalizer
		case *plot.InvertedScale:
			if s == nil {
				return false
			}
			n = s.Normalizer
		default:
			return false
		}
	}
}

func clampTo(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func clamp01(f float64) float64 {
	return clampTo(f, 0, 1)
}
