package main

import (
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	cmdUtils "etframes-go/pkg/cmd-utils"
	"etframes-go/pkg/sample"
)

var (
	verbose     = flag.Bool("v", false, "Turn on verbose output")
	veryVerbose = flag.Bool("vv", false, "Turn on very verbose output")

	xsStr   = flag.String("x", "", "comma separated x values (default: normal samples)")
	ysStr   = flag.String("y", "", "comma separated y values (default: normal samples)")
	samples = flag.Int("n", 100, "number of samples when -x or -y is missing")
	seed    = flag.Uint64("seed", 1, "random seed for samples and the default output name")

	rangeFlag = flag.Bool("range", false, "add a range frame")
	ddpFlag   = flag.Bool("ddp", false, "add a dot-dash plot")
	xBounds   = flag.String("xbounds", "", "range frame x bounds as min,max (default: data min,max)")
	yBounds   = flag.String("ybounds", "", "range frame y bounds as min,max (default: data min,max)")
	colorStr  = flag.String("color", "k", "range frame color (letter, name or #rrggbb)")
	lineWidth = flag.Float64("lw", 1, "range frame line width in points")

	title   = flag.String("title", "", "plot title")
	width   = flag.Float64("width", 4, "figure width in inches")
	height  = flag.Float64("height", 4, "figure height in inches")
	margin  = flag.Float64("margin", 0.05, "view margin as a fraction of the data span")
	outFile = flag.String("o", "", "output file, - for stdout (default: a generated name)")
	format  = flag.String("format", "", "image format (default: from -o, else png)")
)

func init() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: etframes [flags]")
		fmt.Fprintln(os.Stderr, "Scatter x against y with a Tufte range frame and/or dot-dash plot.")
		flag.PrintDefaults()
	}
}

func handle_err(err error) {
	if err != nil {
		log.Fatalln(err)
	}
}

// values parses s, or draws n normal samples when s is empty.
func values(s string, n int, seed uint64) []float64 {
	vs, err := cmdUtils.ParseFloats(s)
	if err != nil {
		cmdUtils.LogFatalError("failed to parse values: ", err)
	}
	if vs == nil {
		log.Debugf("Drawing %d normal samples (seed %d)", n, seed)
		vs = sample.Normal(n, seed)
	}
	return vs
}

func main() {
	flag.Parse()
	cmdUtils.SetLogLevel(*verbose, *veryVerbose)

	if len(flag.Args()) != 0 {
		flag.Usage()
		os.Exit(-1)
	}

	xs := values(*xsStr, *samples, *seed)
	ys := values(*ysStr, *samples, *seed+1)

	out, err := render(xs, ys)
	handle_err(err)

	log.Infoln("Wrote", out)
}
