package main

import (
	"errors"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/plot/vg"

	cmdUtils "etframes-go/pkg/cmd-utils"
	"etframes-go/pkg/etframes"
	"etframes-go/pkg/figure"
)

// render scatters ys against xs, decorates the plot as asked on the
// command line and saves it. It returns where the figure was written.
func render(xs, ys []float64) (string, error) {
	if len(xs) != len(ys) {
		return "", errors.New("x and y arrays must be of the same size")
	}

	fig := figure.New(
		figure.WithSize(vg.Length(*width)*vg.Inch, vg.Length(*height)*vg.Inch),
		figure.WithMargin(*margin),
	)

	p := fig.Gca()
	p.Title.Text = *title
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"

	if _, err := fig.Scatter(xs, ys); err != nil {
		return "", err
	}
	fig.ApplyMargins()

	var rf *etframes.RangeFrame
	if *rangeFlag {
		opts, err := rangeFrameOptions(xs, ys)
		if err != nil {
			return "", err
		}
		if rf, err = etframes.AddRangeFrame(p, opts...); err != nil {
			return "", err
		}
	}

	if *ddpFlag {
		etframes.AddDotDashPlot(p, xs, ys)
	}

	imgFormat := *format
	out := *outFile
	if imgFormat == "" {
		imgFormat = figure.FormatOf(out)
	}
	if imgFormat == "" {
		imgFormat = "png"
	}
	if out == "" {
		out = figure.DefaultName(int64(*seed), imgFormat)
	}

	if err := fig.Save(out, imgFormat); err != nil {
		return "", err
	}

	if rf != nil && rf.Err() != nil {
		log.Warnln("Range frame incomplete:", rf.Err())
	}

	return out, nil
}

// rangeFrameOptions builds the frame style from the flags. Bounds default
// to the min and max of the plotted data.
func rangeFrameOptions(xs, ys []float64) ([]etframes.RangeFrameOption, error) {
	c, err := etframes.ParseColor(*colorStr)
	if err != nil {
		return nil, err
	}

	xb, err := boundsOr(*xBounds, xs)
	if err != nil {
		return nil, err
	}
	yb, err := boundsOr(*yBounds, ys)
	if err != nil {
		return nil, err
	}

	return []etframes.RangeFrameOption{
		etframes.WithColor(c),
		etframes.WithLineWidth(vg.Points(*lineWidth)),
		etframes.WithXBounds(xb),
		etframes.WithYBounds(yb),
	}, nil
}

func boundsOr(s string, data []float64) (etframes.Bounds, error) {
	b, err := cmdUtils.ParseBounds(s)
	if err != nil {
		return etframes.Bounds{}, err
	}
	if b != nil {
		return *b, nil
	}
	return etframes.BoundsOf(data)
}
