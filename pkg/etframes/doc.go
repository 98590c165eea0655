// Package etframes implements two graph decorations described in Edward
// Tufte's "The Visual Display of Quantitative Information" on top of
// gonum.org/v1/plot.
//
// A range frame replaces the axis lines of a plot with two short segments
// that span only the minimum and maximum of the data (p. 130). A dot-dash
// plot puts a minor tick at every data coordinate and drops the frame
// (p. 133).
//
//	p := plot.New()
//	s, _ := plotter.NewScatter(xys)
//	p.Add(s)
//	x, y, _ := etframes.XYBounds(xys)
//	etframes.AddRangeFrame(p, etframes.WithXBounds(x), etframes.WithYBounds(y))
package etframes
