package cmdUtils

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"etframes-go/pkg/etframes"
)

var (
	errPrefix   string = "ERR"
	fatalPrefix string = "FATAL"
)

const (
	yellow = "\033[33m"
	red    = "\033[31m"
	reset  = "\033[0m"
)

func LogError(reason string, err error) {
	// Print in yellow
	fmt.Fprintf(os.Stderr, "%s%s%s %s%s\n", yellow, errPrefix, reset, reason, err)
}

func LogFatalError(reason string, err error) {
	// Print in red
	fmt.Fprintf(os.Stderr, "%s%s%s %s%s\n", red, fatalPrefix, reset, reason, err)
	os.Exit(1)
}

// SetLogLevel maps the -v and -vv flags of the tools onto a logrus level.
func SetLogLevel(verbose, veryVerbose bool) {
	log.SetLevel(log.InfoLevel)

	if verbose {
		log.SetLevel(log.DebugLevel)
		log.Debug("Set log level to debug")
	}

	if veryVerbose {
		log.SetLevel(log.TraceLevel)
		log.Debug("Set log level to trace")
	}
}

// ParseFloats parses a comma separated list of numbers. The empty string
// gives a nil slice.
func ParseFloats(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	fields := strings.Split(s, ",")
	vs := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("bad number %q: %w", f, err)
		}
		vs = append(vs, v)
	}
	return vs, nil
}

// ParseBounds parses "min,max" into a bound pair. The empty string gives
// nil, meaning no bounds.
func ParseBounds(s string) (*etframes.Bounds, error) {
	vs, err := ParseFloats(s)
	if err != nil {
		return nil, err
	}
	if vs == nil {
		return nil, nil
	}
	if len(vs) != 2 {
		return nil, fmt.Errorf("bounds need exactly two values, got %d", len(vs))
	}

	b, err := etframes.NewBounds(vs[0], vs[1])
	if err != nil {
		return nil, err
	}
	return &b, nil
}
