package render

import (
	"errors"
	"fmt"
	"math"

	"github.com/specialistvlad/massplot/internal/config"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const pointsPerInch = 72.0

const (
	legendInches       = 1.6
	legendSampleInches = 0.4
)

// Options is the resolved figure layout.
type Options struct {
	WidthInches  float64
	HeightInches float64
	DPI          float64

	YMin     float64
	YMax     float64
	XPadding float64

	// LineWidth is in points.
	LineWidth float64
	Colors    []drawing.Color
	// Dashes are patterns in points; nil means solid.
	Dashes [][]float64

	TopLabel    string
	BottomLabel string
	XLabel      string
}

// OptionsFromConfig resolves color and dash names of c.
func OptionsFromConfig(c config.Chart) (Options, error) {
	opts := Options{
		WidthInches:  c.WidthInches,
		HeightInches: c.HeightInches,
		DPI:          c.DPI,
		YMin:         c.YMin,
		YMax:         c.YMax,
		XPadding:     c.XPadding,
		LineWidth:    c.LineWidth,
		TopLabel:     c.TopLabel,
		BottomLabel:  c.BottomLabel,
		XLabel:       c.XLabel,
	}

	var errs []error
	for _, s := range c.Colors {
		col, err := ParseColor(s)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		opts.Colors = append(opts.Colors, col)
	}
	for _, s := range c.Dashes {
		dash, err := ParseDash(s)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		opts.Dashes = append(opts.Dashes, dash)
	}
	if err := errors.Join(errs...); err != nil {
		return Options{}, fmt.Errorf("invalid chart style: %w", err)
	}
	if len(opts.Colors) == 0 || len(opts.Dashes) == 0 {
		return Options{}, errors.New("invalid chart style: at least one color and one dash style are required")
	}
	return opts, nil
}

// PixelSize returns the raster size of the whole figure.
func (o Options) PixelSize() (width, height int) {
	return int(math.Round(o.WidthInches * o.DPI)), int(math.Round(o.HeightInches * o.DPI))
}

// legendWidth is the strip, in pixels, kept free for the legend on the right
// of each panel.
func (o Options) legendWidth() int {
	return int(math.Round(legendInches * o.DPI))
}

func (o Options) toPixels(points float64) float64 {
	return points * o.DPI / pointsPerInch
}

func (o Options) color(i int) drawing.Color {
	return o.Colors[i%len(o.Colors)]
}

func (o Options) dash(i int) []float64 {
	pattern := o.Dashes[i%len(o.Dashes)]
	if pattern == nil {
		return nil
	}
	scaled := make([]float64, len(pattern))
	for j, v := range pattern {
		scaled[j] = o.toPixels(v)
	}
	return scaled
}
