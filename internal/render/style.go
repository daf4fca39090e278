package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// shortColors are the single-letter color codes used by the classic plots.
var shortColors = map[string]drawing.Color{
	"b": {R: 0, G: 0, B: 255, A: 255},
	"g": {R: 0, G: 128, B: 0, A: 255},
	"r": {R: 255, G: 0, B: 0, A: 255},
	"c": {R: 0, G: 191, B: 191, A: 255},
	"m": {R: 191, G: 0, B: 191, A: 255},
	"y": {R: 191, G: 191, B: 0, A: 255},
	"k": {R: 0, G: 0, B: 0, A: 255},
	"w": {R: 255, G: 255, B: 255, A: 255},
}

var namedColors = map[string]string{
	"blue":    "b",
	"green":   "g",
	"red":     "r",
	"cyan":    "c",
	"magenta": "m",
	"yellow":  "y",
	"black":   "k",
	"white":   "w",
}

// ParseColor accepts a single-letter code (b, g, r, c, m, y, k, w), the
// matching color name, or a six digit hex value with or without '#'.
func ParseColor(s string) (drawing.Color, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if short, ok := namedColors[key]; ok {
		key = short
	}
	if c, ok := shortColors[key]; ok {
		return c, nil
	}

	hex := strings.TrimPrefix(key, "#")
	if len(hex) != 6 {
		return drawing.Color{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return drawing.Color{}, fmt.Errorf("invalid color %q", s)
	}
	return drawing.Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// dashPatterns are expressed in points and scaled to pixels at render time.
var dashPatterns = map[string][]float64{
	"-":       nil,
	"solid":   nil,
	"--":      {6, 4},
	"dashed":  {6, 4},
	":":       {1.5, 3},
	"dotted":  {1.5, 3},
	"-.":      {6, 3, 1.5, 3},
	"dashdot": {6, 3, 1.5, 3},
}

// ParseDash converts a line style ("-", "--", ":", "-." or their names
// solid, dashed, dotted, dashdot) into a dash pattern in points. A solid line
// has a nil pattern.
func ParseDash(s string) ([]float64, error) {
	pattern, ok := dashPatterns[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return nil, fmt.Errorf("invalid dash style %q", s)
	}
	return append([]float64(nil), pattern...), nil
}
