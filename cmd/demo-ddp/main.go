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
	outFile     = flag.String("o", "dot_dash.png", "Output file, - for stdout")
	samples     = flag.Int("n", 100, "Number of points")
	seed        = flag.Uint64("seed", 1, "Random seed")
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
		fmt.Println("Usage: demo-ddp [-o out.png] [-n points] [-seed n]")
		os.Exit(-1)
	}

	ys := sample.Normal(*samples, *seed)
	xs := sample.Normal(*samples, *seed+1)

	fig := figure.New()
	_, err := fig.Scatter(xs, ys)
	handle_err(err)
	fig.ApplyMargins()

	etframes.AddDotDashPlot(fig.Gca(), xs, ys)

	format := figure.FormatOf(*outFile)
	if format == "" {
		format = "png"
	}
	handle_err(fig.Save(*outFile, format))

	log.Infoln("Done!")
}
