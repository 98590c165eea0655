package etframes

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// Tick line defaults of gonum/plot, restored when a caller has hidden them.
var (
	defaultTickWidth  = vg.Points(0.5)
	defaultTickLength = vg.Points(8)
)

// CleanFrame turns off the axis lines of p and keeps tick marks on the
// bottom (X) and left (Y) edges only. It is safe to call more than once.
func CleanFrame(p *plot.Plot) {
	p.X.LineStyle.Width = 0
	p.Y.LineStyle.Width = 0

	// gonum only ever draws X ticks below the data and Y ticks to its
	// left; make sure those are visible.
	showTicks(&p.X)
	showTicks(&p.Y)
}

func showTicks(a *plot.Axis) {
	if a.Tick.LineStyle.Width <= 0 {
		a.Tick.LineStyle.Width = defaultTickWidth
	}
	if a.Tick.Length <= 0 {
		a.Tick.Length = defaultTickLength
	}
	if a.Tick.LineStyle.Color == nil {
		a.Tick.LineStyle.Color = defaultColor
	}
}
