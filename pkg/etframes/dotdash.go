package etframes

import (
	"slices"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
)

// DotDashTicks is a plot.Ticker that keeps the labelled ticks of Major and
// puts a minor tick at each of the Minor values.
type DotDashTicks struct {
	Major plot.Ticker
	Minor []float64
}

var _ plot.Ticker = DotDashTicks{}

// Ticks implements plot.Ticker. Values of Minor outside [min, max] are
// returned as well; gonum does not draw ticks outside the axis range.
func (t DotDashTicks) Ticks(min, max float64) []plot.Tick {
	var major []plot.Tick
	if t.Major != nil {
		major = t.Major.Ticks(min, max)
	}

	ticks := make([]plot.Tick, 0, len(major)+len(t.Minor))
	for _, tk := range major {
		if !tk.IsMinor() {
			ticks = append(ticks, tk)
		}
	}
	for _, v := range t.Minor {
		ticks = append(ticks, plot.Tick{Value: v})
	}
	return ticks
}

// AddDotDashPlot turns p into a dot-dash plot: the minor ticks of the X
// axis are placed at xs and those of the Y axis at ys, and the default
// frame is removed. A nil slice leaves the ticks of that axis untouched;
// an empty one removes its minor ticks.
func AddDotDashPlot(p *plot.Plot, xs, ys []float64) {
	if xs != nil {
		setMinorTicks(&p.X, xs)
	}
	if ys != nil {
		setMinorTicks(&p.Y, ys)
	}

	log.WithFields(log.Fields{
		"xs": len(xs),
		"ys": len(ys),
	}).Debugln("Adding dot-dash plot")

	CleanFrame(p)
}

// setMinorTicks replaces the minor tick policy of a, keeping its major
// ticks. Calling it again swaps the previous minor ticks out.
func setMinorTicks(a *plot.Axis, vs []float64) {
	major := a.Tick.Marker
	if dd, ok := major.(DotDashTicks); ok {
		major = dd.Major
	}
	if major == nil {
		major = plot.DefaultTicks{}
	}

	minor := slices.Clone(vs)
	slices.Sort(minor)
	minor = slices.Compact(minor)

	a.Tick.Marker = DotDashTicks{Major: major, Minor: minor}
	log.Traceln("Minor ticks set to", minor)
}
