package etframes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
)

func minorValues(ticks []plot.Tick) []float64 {
	var vs []float64
	for _, t := range ticks {
		if t.IsMinor() {
			vs = append(vs, t.Value)
		}
	}
	return vs
}

func majorCount(ticks []plot.Tick) int {
	n := 0
	for _, t := range ticks {
		if !t.IsMinor() {
			n++
		}
	}
	return n
}

func TestAddDotDashPlotSetsMinorTicks(t *testing.T) {
	p := newTestPlot(0, 6, 0, 6)
	xs := []float64{1, 1.5, 2, 2.5, 5}

	AddDotDashPlot(p, xs, nil)

	ticks := p.X.Tick.Marker.Ticks(p.X.Min, p.X.Max)
	assert.ElementsMatch(t, xs, minorValues(ticks))
	assert.Positive(t, majorCount(ticks), "major ticks should be kept")
}

func TestAddDotDashPlotNilLeavesAxis(t *testing.T) {
	p := newTestPlot(0, 6, 0, 6)
	AddDotDashPlot(p, nil, []float64{3})
	marker := p.X.Tick.Marker

	AddDotDashPlot(p, nil, nil)
	assert.Equal(t, marker, p.X.Tick.Marker)
	assert.Equal(t, []float64{3}, minorValues(p.Y.Tick.Marker.Ticks(0, 6)))

	_, ok := p.X.Tick.Marker.(plot.DefaultTicks)
	assert.True(t, ok, "x marker should still be the default")
}

func TestAddDotDashPlotReplaces(t *testing.T) {
	p := newTestPlot(0, 6, 0, 6)
	AddDotDashPlot(p, []float64{1, 2, 3}, nil)
	AddDotDashPlot(p, []float64{4, 4, 5}, nil)

	dd, ok := p.X.Tick.Marker.(DotDashTicks)
	require.True(t, ok)
	assert.Equal(t, []float64{4, 5}, dd.Minor)
	assert.Equal(t, plot.DefaultTicks{}, dd.Major)
}

func TestAddDotDashPlotEmptyRemovesMinor(t *testing.T) {
	p := newTestPlot(0, 6, 0, 6)
	AddDotDashPlot(p, []float64{1, 2}, nil)
	AddDotDashPlot(p, []float64{}, nil)

	assert.Empty(t, minorValues(p.X.Tick.Marker.Ticks(0, 6)))
}

func TestAddDotDashPlotCopiesInput(t *testing.T) {
	p := newTestPlot(0, 6, 0, 6)
	ys := []float64{2, 1}
	AddDotDashPlot(p, nil, ys)
	ys[0] = 9

	assert.Equal(t, []float64{1, 2}, minorValues(p.Y.Tick.Marker.Ticks(0, 6)))
}

func TestAddDotDashPlotCleansFrame(t *testing.T) {
	p := newTestPlot(0, 6, 0, 6)
	AddDotDashPlot(p, []float64{1}, []float64{2})
	assertCleanFrame(t, p)
}

func TestDotDashTicksDropsMajorMinors(t *testing.T) {
	major := plot.ConstantTicks{{Value: 0, Label: "0"}, {Value: 0.5}, {Value: 1, Label: "1"}}
	ticks := DotDashTicks{Major: major, Minor: []float64{0.25}}.Ticks(0, 1)

	assert.Equal(t, []plot.Tick{
		{Value: 0, Label: "0"},
		{Value: 1, Label: "1"},
		{Value: 0.25},
	}, ticks)
}

func TestDotDashTicksNoMajor(t *testing.T) {
	ticks := DotDashTicks{Minor: []float64{1, 2}}.Ticks(0, 3)
	assert.Equal(t, []float64{1, 2}, minorValues(ticks))
	assert.Zero(t, majorCount(ticks))
}
