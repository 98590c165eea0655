package etframes

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

var defaultColor color.Color = color.Black

// Single letter color codes, as used by matplotlib format strings.
var shortColors = map[string]color.Color{
	"k": color.Black,
	"w": color.White,
	"r": color.RGBA{R: 255, A: 255},
	"g": color.RGBA{G: 128, A: 255},
	"b": color.RGBA{B: 255, A: 255},
	"c": color.RGBA{G: 191, B: 191, A: 255},
	"m": color.RGBA{R: 191, B: 191, A: 255},
	"y": color.RGBA{R: 191, G: 191, A: 255},
}

// ParseColor resolves a color specification: a single letter code ("k",
// "r", ...), an SVG color name ("black", "steelblue") or a "#rrggbb" hex
// triplet. The empty string is black.
func ParseColor(spec string) (color.Color, error) {
	s := strings.ToLower(strings.TrimSpace(spec))
	if s == "" {
		return defaultColor, nil
	}
	if c, ok := shortColors[s]; ok {
		return c, nil
	}
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %v", ErrUnknownColor, spec, err)
		}
		r, g, b := c.RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 255}, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownColor, spec)
}
