package etframes

import (
	"errors"
	"fmt"
	"image/color"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// rangeFrameZOrder is the stacking order reported by a RangeFrame: above
// the data and the axes.
const rangeFrameZOrder = 10

// Segment is a line in axes-relative coordinates, where (0, 0) is the
// bottom left and (1, 1) the top right corner of the data area.
type Segment struct {
	X0, Y0, X1, Y1 float64
}

// RangeFrame draws a range frame on a plot. It implements plot.Plotter and
// recomputes its position from the plot's current X and Y ranges every time
// it is drawn, so it follows later changes of the view.
type RangeFrame struct {
	// Color and LineWidth style both frame lines.
	Color     color.Color
	LineWidth vg.Length

	// XBounds and YBounds are the (min, max) of the data on each axis.
	// A nil pair spans the whole axis.
	XBounds, YBounds *Bounds

	// Hidden disables drawing.
	Hidden bool

	err error
}

var _ plot.Plotter = (*RangeFrame)(nil)

// RangeFrameOption configures a RangeFrame.
type RangeFrameOption func(*RangeFrame)

// WithColor sets the frame color.
func WithColor(c color.Color) RangeFrameOption {
	return func(rf *RangeFrame) { rf.Color = c }
}

// WithLineWidth sets the width of the frame lines.
func WithLineWidth(w vg.Length) RangeFrameOption {
	return func(rf *RangeFrame) { rf.LineWidth = w }
}

// WithXBounds sets the data bounds along the X axis.
func WithXBounds(b Bounds) RangeFrameOption {
	return func(rf *RangeFrame) { rf.XBounds = &b }
}

// WithYBounds sets the data bounds along the Y axis.
func WithYBounds(b Bounds) RangeFrameOption {
	return func(rf *RangeFrame) { rf.YBounds = &b }
}

// NewRangeFrame returns a black, 1pt wide range frame modified by opts.
// Bounds given through opts are validated.
func NewRangeFrame(opts ...RangeFrameOption) (*RangeFrame, error) {
	rf := &RangeFrame{
		Color:     defaultColor,
		LineWidth: vg.Points(1),
	}
	for _, opt := range opts {
		opt(rf)
	}
	if rf.Color == nil {
		rf.Color = defaultColor
	}
	if err := checkBounds("x", rf.XBounds); err != nil {
		return nil, err
	}
	if err := checkBounds("y", rf.YBounds); err != nil {
		return nil, err
	}
	if rf.LineWidth < 0 {
		return nil, fmt.Errorf("negative line width %v", rf.LineWidth)
	}
	return rf, nil
}

func checkBounds(axis string, b *Bounds) error {
	if b == nil {
		return nil
	}
	if err := b.Validate(); err != nil {
		return &InvalidBoundsError{Axis: axis, Bounds: *b}
	}
	return nil
}

// Segments returns the horizontal and the vertical frame line for the
// current view of p.
func (rf *RangeFrame) Segments(p *plot.Plot) ([]Segment, error) {
	xminf, xmaxf, err := axisFractions(p.X, rf.XBounds)
	if err != nil {
		return nil, fmt.Errorf("x axis: %w", err)
	}
	yminf, ymaxf, err := axisFractions(p.Y, rf.YBounds)
	if err != nil {
		return nil, fmt.Errorf("y axis: %w", err)
	}
	return []Segment{
		{X0: xminf, Y0: 0, X1: xmaxf, Y1: 0},
		{X0: 0, Y0: yminf, X1: 0, Y1: ymaxf},
	}, nil
}

// Plot implements the plot.Plotter interface. An axis whose view range is
// unusable is left without a frame line and the error is kept for Err.
func (rf *RangeFrame) Plot(c draw.Canvas, p *plot.Plot) {
	rf.err = nil
	if rf.Hidden {
		return
	}

	lines := make([][]vg.Point, 0, 2)
	var errs []error

	if xminf, xmaxf, err := axisFractions(p.X, rf.XBounds); err != nil {
		errs = append(errs, fmt.Errorf("x axis: %w", err))
	} else {
		lines = append(lines, []vg.Point{
			{X: c.X(xminf), Y: c.Y(0)},
			{X: c.X(xmaxf), Y: c.Y(0)},
		})
	}

	if yminf, ymaxf, err := axisFractions(p.Y, rf.YBounds); err != nil {
		errs = append(errs, fmt.Errorf("y axis: %w", err))
	} else {
		lines = append(lines, []vg.Point{
			{X: c.X(0), Y: c.Y(yminf)},
			{X: c.X(0), Y: c.Y(ymaxf)},
		})
	}
	rf.err = errors.Join(errs...)

	c.StrokeLines(draw.LineStyle{Color: rf.Color, Width: rf.LineWidth}, lines...)
}

// Err returns the error of the last Plot call, if any.
func (rf *RangeFrame) Err() error { return rf.err }

// ZOrder returns the stacking order of the frame. gonum draws plotters in
// the order they were added; the value is for hosts that sort overlays.
func (rf *RangeFrame) ZOrder() int { return rangeFrameZOrder }

// AddRangeFrame adds a range frame to p and removes its default frame.
// The frame is black and 1pt wide unless opts say otherwise; X and Y bounds
// are usually the min and max of the plotted data (see XYBounds). It is
// drawn above every plotter added to p before it.
func AddRangeFrame(p *plot.Plot, opts ...RangeFrameOption) (*RangeFrame, error) {
	rf, err := NewRangeFrame(opts...)
	if err != nil {
		return nil, fmt.Errorf("range frame: %w", err)
	}

	log.WithFields(log.Fields{
		"xbounds": rf.XBounds,
		"ybounds": rf.YBounds,
	}).Debugln("Adding range frame")

	p.Add(rf)
	CleanFrame(p)

	return rf, nil
}
