// Package figure holds one or more gonum plots laid out on a grid, keeps
// track of the current one and renders them to an image.
package figure

import (
	"errors"
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var ErrNotInFigure = errors.New("axes do not belong to this figure")

// DefaultMargin is the fraction of the data span added on each side of
// the view by ApplyMargins.
const DefaultMargin = 0.05

// Figure is a grid of plots with a notion of the current one, the axes
// that operations without an explicit target apply to.
type Figure struct {
	Width, Height vg.Length
	Margin        float64

	axes    [][]*plot.Plot
	current *plot.Plot
}

// Option configures a Figure.
type Option func(*Figure)

// WithSize sets the size of the rendered figure.
func WithSize(w, h vg.Length) Option {
	return func(f *Figure) { f.Width, f.Height = w, h }
}

// WithMargin sets the view margin used by ApplyMargins.
func WithMargin(m float64) Option {
	return func(f *Figure) { f.Margin = m }
}

// Subplots lays the figure out as a rows x cols grid of plots.
func Subplots(rows, cols int) Option {
	return func(f *Figure) {
		if rows < 1 || cols < 1 {
			return
		}
		f.axes = make([][]*plot.Plot, rows)
		for r := range f.axes {
			f.axes[r] = make([]*plot.Plot, cols)
			for c := range f.axes[r] {
				f.axes[r][c] = plot.New()
			}
		}
	}
}

// New returns a 4x4 inch figure with a single plot.
func New(opts ...Option) *Figure {
	f := &Figure{
		Width:  4 * vg.Inch,
		Height: 4 * vg.Inch,
		Margin: DefaultMargin,
	}
	Subplots(1, 1)(f)
	for _, opt := range opts {
		opt(f)
	}
	f.current = f.axes[0][0]
	return f
}

// Gca returns the current axes.
func (f *Figure) Gca() *plot.Plot { return f.current }

// Sca makes p the current axes.
func (f *Figure) Sca(p *plot.Plot) error {
	for _, row := range f.axes {
		for _, a := range row {
			if a == p {
				f.current = p
				return nil
			}
		}
	}
	return ErrNotInFigure
}

// Axes returns the plot at the given grid cell, or nil when out of range.
func (f *Figure) Axes(row, col int) *plot.Plot {
	if row < 0 || row >= len(f.axes) || col < 0 || col >= len(f.axes[row]) {
		return nil
	}
	return f.axes[row][col]
}

// Shape returns the number of rows and columns of the grid.
func (f *Figure) Shape() (rows, cols int) {
	if len(f.axes) == 0 {
		return 0, 0
	}
	return len(f.axes), len(f.axes[0])
}

// Scatter adds a scatter of (xs[i], ys[i]) to the current axes.
func (f *Figure) Scatter(xs, ys []float64) (*plotter.Scatter, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("x and y arrays must be of the same size (%d != %d)", len(xs), len(ys))
	}

	pts := make(plotter.XYs, len(xs))
	for i := range pts {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}

	s, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}
	f.current.Add(s)

	log.Debugf("Scattered %d points", len(pts))
	return s, nil
}

// ApplyMargins widens the view of every plot by Margin times its span on
// each side, so that points at the extremes do not sit on the axes.
// Log axes are widened by the same fraction of their decades, other
// non-linear scales are left alone.
func (f *Figure) ApplyMargins() {
	for _, row := range f.axes {
		for _, p := range row {
			widen(&p.X, f.Margin)
			widen(&p.Y, f.Margin)
		}
	}
}

func widen(a *plot.Axis, m float64) {
	if m <= 0 || math.IsInf(a.Min, 0) || math.IsInf(a.Max, 0) {
		return
	}
	switch a.Scale.(type) {
	case nil, plot.LinearScale, *plot.LinearScale:
		pad := (a.Max - a.Min) * m
		a.Min -= pad
		a.Max += pad
	case plot.LogScale, *plot.LogScale:
		if a.Min <= 0 || a.Max <= 0 {
			return
		}
		k := math.Pow(a.Max/a.Min, m)
		a.Min /= k
		a.Max *= k
	}
}
