package figure

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/yelinaung/go-haikunator"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Space between tiles of a multi-plot figure.
const tilePad = vg.Length(10)

// ValidateFormat checks that format is one of the image formats gonum can
// render (png, svg, pdf, ...).
func ValidateFormat(format string) error {
	if !slices.Contains(draw.Formats(), format) {
		return fmt.Errorf("unsupported format %q (supported: %s)", format, strings.Join(draw.Formats(), ", "))
	}
	return nil
}

// FormatOf returns the image format implied by the extension of path.
func FormatOf(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

// Draw draws every plot of the figure onto c.
func (f *Figure) Draw(c draw.Canvas) {
	rows, cols := f.Shape()
	if rows == 1 && cols == 1 {
		f.axes[0][0].Draw(c)
		return
	}

	tiles := draw.Tiles{
		Rows: rows,
		Cols: cols,
		PadX: tilePad,
		PadY: tilePad,
	}
	canvases := plot.Align(f.axes, tiles, c)
	for r, row := range f.axes {
		for col, p := range row {
			p.Draw(canvases[r][col])
		}
	}
}

// Render draws the figure in the given format.
func (f *Figure) Render(format string) (io.WriterTo, error) {
	if err := ValidateFormat(format); err != nil {
		return nil, err
	}
	c, err := draw.NewFormattedCanvas(f.Width, f.Height, format)
	if err != nil {
		return nil, err
	}
	f.Draw(draw.New(c))
	return c, nil
}

// WriteFormat renders the figure in the given format to w.
func (f *Figure) WriteFormat(w io.Writer, format string) (int64, error) {
	wt, err := f.Render(format)
	if err != nil {
		return 0, err
	}
	return wt.WriteTo(w)
}

// Save renders the figure to path, or to stdout when path is "-". The
// format comes from the extension of path, or from format if it is not
// empty.
func (f *Figure) Save(path, format string) (err error) {
	if format == "" {
		format = FormatOf(path)
	}
	if err := ValidateFormat(format); err != nil {
		return err
	}

	sink, err := OpenSink(path)
	if err != nil {
		return err
	}
	defer func() {
		e := sink.Close()
		if err == nil {
			err = e
		}
	}()

	_, err = f.WriteFormat(sink, format)
	return err
}

// OpenSink opens path for writing. "-" is stdout, which is not closed by
// the returned WriteCloser.
func OpenSink(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return file, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// DefaultName returns a human readable file name derived from seed. The
// same seed always gives the same name.
func DefaultName(seed int64, format string) string {
	return haikunator.New(seed).Haikunate() + "." + format
}
