package etframes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

func assertCleanFrame(t *testing.T, p *plot.Plot) {
	t.Helper()
	assert.Zero(t, p.X.LineStyle.Width, "x axis line still drawn")
	assert.Zero(t, p.Y.LineStyle.Width, "y axis line still drawn")
	assert.Positive(t, float64(p.X.Tick.LineStyle.Width), "bottom ticks hidden")
	assert.Positive(t, float64(p.Y.Tick.LineStyle.Width), "left ticks hidden")
	assert.Positive(t, float64(p.X.Tick.Length), "bottom ticks have no length")
	assert.Positive(t, float64(p.Y.Tick.Length), "left ticks have no length")
}

func TestCleanFrame(t *testing.T) {
	p := plot.New()
	CleanFrame(p)
	assertCleanFrame(t, p)
}

func TestCleanFrameIdempotent(t *testing.T) {
	p := plot.New()
	CleanFrame(p)
	first := p.X
	CleanFrame(p)
	CleanFrame(p)
	assert.Equal(t, first.LineStyle, p.X.LineStyle)
	assert.Equal(t, first.Tick.LineStyle, p.X.Tick.LineStyle)
	assert.Equal(t, first.Tick.Length, p.X.Tick.Length)
	assertCleanFrame(t, p)
}

func TestCleanFrameRestoresHiddenTicks(t *testing.T) {
	p := plot.New()
	p.X.Tick.Length = 0
	p.Y.Tick.LineStyle.Width = 0

	CleanFrame(p)
	assert.Equal(t, vg.Points(8), p.X.Tick.Length)
	assert.Equal(t, vg.Points(0.5), p.Y.Tick.LineStyle.Width)
}
