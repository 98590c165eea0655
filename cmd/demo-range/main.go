package main

import (
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	cmdUtils "etframes-go/pkg/cmd-utils"
	"etframes-go/pkg/etframes"
	"etframes-go/pkg/figure"
	"etframes-go/pkg/sample"
)

var (
	verbose     = flag.Bool("v", false, "Turn on verbose output")
	veryVerbose = flag.Bool("vv", false, "Turn on very verbose output")
	outFile     = flag.String("o", "range_frame.png", "Output file, - for stdout")
)

func init() {
	flag.Parse()
	cmdUtils.SetLogLevel(*verbose, *veryVerbose)
}

func handle_err(err error) {
	if err != nil {
		log.Fatalln(err)
	}
}

func main() {
	if len(flag.Args()) != 0 {
		fmt.Println("Usage: demo-range [-o out.png]")
		os.Exit(-1)
	}

	ys := []float64{1, 1.5, 2, 2.5, 5}
	xs := sample.Index(len(ys))

	fig := figure.New()
	_, err := fig.Scatter(xs, ys)
	handle_err(err)
	fig.ApplyMargins()

	xb, err := etframes.BoundsOf(xs)
	handle_err(err)
	yb, err := etframes.BoundsOf(ys)
	handle_err(err)

	rf, err := etframes.AddRangeFrame(fig.Gca(),
		etframes.WithXBounds(xb),
		etframes.WithYBounds(yb))
	handle_err(err)

	format := figure.FormatOf(*outFile)
	if format == "" {
		format = "png"
	}
	handle_err(fig.Save(*outFile, format))

	if rf.Err() != nil {
		cmdUtils.LogError("range frame: ", rf.Err())
	}

	log.Infoln("Done!")
}
