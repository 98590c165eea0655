package figure

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

func TestNewDefaults(t *testing.T) {
	f := New()
	rows, cols := f.Shape()
	assert.Equal(t, 1, rows)
	assert.Equal(t, 1, cols)
	assert.Equal(t, 4*vg.Inch, f.Width)
	assert.Equal(t, DefaultMargin, f.Margin)
	assert.Same(t, f.Axes(0, 0), f.Gca())
}

func TestSca(t *testing.T) {
	f := New(Subplots(2, 3))
	rows, cols := f.Shape()
	require.Equal(t, 2, rows)
	require.Equal(t, 3, cols)

	p := f.Axes(1, 2)
	require.NotNil(t, p)
	require.NoError(t, f.Sca(p))
	assert.Same(t, p, f.Gca())

	assert.ErrorIs(t, f.Sca(plot.New()), ErrNotInFigure)
	assert.Same(t, p, f.Gca(), "failed Sca must not change the current axes")

	assert.Nil(t, f.Axes(2, 0))
	assert.Nil(t, f.Axes(0, -1))
}

func TestScatter(t *testing.T) {
	f := New()
	s, err := f.Scatter([]float64{0, 1, 2}, []float64{1, 5, 3})
	require.NoError(t, err)
	assert.Len(t, s.XYs, 3)

	p := f.Gca()
	assert.Equal(t, 0.0, p.X.Min)
	assert.Equal(t, 2.0, p.X.Max)
	assert.Equal(t, 1.0, p.Y.Min)
	assert.Equal(t, 5.0, p.Y.Max)

	_, err = f.Scatter([]float64{1}, []float64{1, 2})
	assert.Error(t, err)
}

func TestApplyMargins(t *testing.T) {
	f := New(WithMargin(0.1))
	_, err := f.Scatter([]float64{0, 10}, []float64{-5, 5})
	require.NoError(t, err)

	f.ApplyMargins()
	p := f.Gca()
	assert.InDelta(t, -1, p.X.Min, 1e-12)
	assert.InDelta(t, 11, p.X.Max, 1e-12)
	assert.InDelta(t, -6, p.Y.Min, 1e-12)
	assert.InDelta(t, 6, p.Y.Max, 1e-12)
}

func TestApplyMarginsEmptyPlot(t *testing.T) {
	f := New()
	f.ApplyMargins()
	assert.True(t, f.Gca().X.Min > f.Gca().X.Max, "an empty plot keeps its unset range")
}

func TestApplyMarginsLogScale(t *testing.T) {
	f := New(WithMargin(0.1))
	_, err := f.Scatter([]float64{0, 10}, []float64{1, 100})
	require.NoError(t, err)

	p := f.Gca()
	p.Y.Scale = plot.LogScale{}
	f.ApplyMargins()

	assert.Greater(t, p.Y.Min, 0.0, "log view must stay positive")
	assert.InDelta(t, 1/math.Pow(100, 0.1), p.Y.Min, 1e-12)
	assert.InDelta(t, 100*math.Pow(100, 0.1), p.Y.Max, 1e-9)
	assert.InDelta(t, -1, p.X.Min, 1e-12)
}

func TestApplyMarginsOtherScaleUntouched(t *testing.T) {
	f := New(WithMargin(0.1))
	_, err := f.Scatter([]float64{0, 10}, []float64{1, 100})
	require.NoError(t, err)

	p := f.Gca()
	p.Y.Scale = plot.InvertedScale{Normalizer: plot.LogScale{}}
	f.ApplyMargins()
	assert.Equal(t, 1.0, p.Y.Min)
	assert.Equal(t, 100.0, p.Y.Max)
}

func TestShapeZeroFigure(t *testing.T) {
	var f Figure
	rows, cols := f.Shape()
	assert.Zero(t, rows)
	assert.Zero(t, cols)

	rows, cols = New(Subplots(2, 3)).Shape()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 3, cols)
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"png", false},
		{"svg", false},
		{"pdf", false},
		{"eps", false},
		{"bmp", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			err := ValidateFormat(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
		})
	}
}

func TestFormatOf(t *testing.T) {
	assert.Equal(t, "png", FormatOf("out/plot.PNG"))
	assert.Equal(t, "svg", FormatOf("a.b.svg"))
	assert.Equal(t, "", FormatOf("-"))
}

func TestWriteFormatSVG(t *testing.T) {
	f := New(Subplots(1, 2))
	_, err := f.Scatter([]float64{1, 2}, []float64{3, 4})
	require.NoError(t, err)
	require.NoError(t, f.Sca(f.Axes(0, 1)))
	_, err = f.Scatter([]float64{5, 6}, []float64{7, 8})
	require.NoError(t, err)

	var buf bytes.Buffer
	n, err := f.WriteFormat(&buf, "svg")
	require.NoError(t, err)
	assert.Positive(t, n)
	assert.True(t, strings.Contains(buf.String(), "<svg"))
}

func TestSave(t *testing.T) {
	f := New()
	_, err := f.Scatter([]float64{1, 2}, []float64{3, 4})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "scatter.png")
	require.NoError(t, f.Save(path, ""))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	assert.Error(t, f.Save(filepath.Join(t.TempDir(), "scatter.bmp"), ""))
}

func TestDefaultName(t *testing.T) {
	a := DefaultName(42, "png")
	assert.Equal(t, a, DefaultName(42, "png"))
	assert.True(t, strings.HasSuffix(a, ".png"))
	assert.Greater(t, len(a), len(".png"))
}
