package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"

	"github.com/specialistvlad/massplot/internal/masstable"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Comparison is the data of one figure.
type Comparison struct {
	Name   string
	Labels []string
	// Reference and Fusion hold one sequence per label, in label order.
	Reference [][]float64
	Fusion    [][]float64
}

// NewComparison lays out pair in the fusion table's category order.
func NewComparison(name string, pair *masstable.Pair) Comparison {
	labels := pair.Fusion.Labels()
	cmp := Comparison{
		Name:      name,
		Labels:    labels,
		Reference: make([][]float64, len(labels)),
		Fusion:    make([][]float64, len(labels)),
	}
	for i, l := range labels {
		cmp.Reference[i] = pair.Reference.Values(l)
		cmp.Fusion[i] = pair.Fusion.Values(l)
	}
	return cmp
}

// Points returns the number of time steps plotted.
func (c Comparison) Points() int {
	if len(c.Fusion) == 0 {
		return 0
	}
	return len(c.Fusion[0])
}

func (c Comparison) validate() error {
	if len(c.Labels) == 0 {
		return errors.New("comparison has no categories")
	}
	if len(c.Reference) != len(c.Labels) || len(c.Fusion) != len(c.Labels) {
		return fmt.Errorf("comparison has %d labels but %d reference and %d fusion series", len(c.Labels), len(c.Reference), len(c.Fusion))
	}
	n := c.Points()
	if n == 0 {
		return errors.New("comparison has no time steps")
	}
	for i := range c.Labels {
		if len(c.Reference[i]) != n || len(c.Fusion[i]) != n {
			return fmt.Errorf("series %q does not have %d time steps", c.Labels[i], n)
		}
	}
	return nil
}

// Renderer draws comparison figures with a fixed layout.
type Renderer struct {
	opts Options
}

// NewRenderer creates a renderer for opts.
func NewRenderer(opts Options) *Renderer {
	return &Renderer{opts: opts}
}

// Render draws the figure of c.
func (r *Renderer) Render(c Comparison) (*Figure, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}

	width, height := r.opts.PixelSize()
	topHeight := height / 2

	top := r.panel(c, c.Reference, width, topHeight)
	top.Title = c.Name
	top.YAxis.Name = r.opts.TopLabel

	bottom := r.panel(c, c.Fusion, width, height-topHeight)
	bottom.YAxis.Name = r.opts.BottomLabel
	bottom.XAxis.Name = r.opts.XLabel
	bottom.Elements = []chart.Renderable{r.legend(c, width-r.opts.legendWidth())}

	topImg, err := rasterize(&top)
	if err != nil {
		return nil, fmt.Errorf("failed to draw reference panel: %w", err)
	}
	bottomImg, err := rasterize(&bottom)
	if err != nil {
		return nil, fmt.Errorf("failed to draw fusion panel: %w", err)
	}

	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(canvas, image.Rect(0, 0, width, topHeight), topImg, topImg.Bounds().Min, draw.Over)
	draw.Draw(canvas, image.Rect(0, topHeight, width, height), bottomImg, bottomImg.Bounds().Min, draw.Over)

	return &Figure{
		Name:         c.Name,
		Image:        canvas,
		WidthInches:  r.opts.WidthInches,
		HeightInches: r.opts.HeightInches,
	}, nil
}

// panel builds one chart. X values are 0-based time steps; the x axis runs
// past the last step by XPadding.
func (r *Renderer) panel(c Comparison, data [][]float64, width, height int) chart.Chart {
	n := c.Points()
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
	}

	series := make([]chart.Series, 0, len(data))
	for i, ys := range data {
		sx, sy := xs, ys
		// A single point cannot form a line segment.
		if n == 1 {
			sx, sy = []float64{xs[0], xs[0]}, []float64{ys[0], ys[0]}
		}
		series = append(series, chart.ContinuousSeries{
			Name: c.Labels[i],
			Style: chart.Style{
				StrokeColor:     r.opts.color(i),
				StrokeWidth:     r.opts.toPixels(r.opts.LineWidth),
				StrokeDashArray: r.opts.dash(i),
			},
			XValues: sx,
			YValues: sy,
		})
	}

	return chart.Chart{
		Width:  width,
		Height: height,
		DPI:    r.opts.DPI,
		Background: chart.Style{
			// Both panels reserve the legend strip so their x axes line up.
			Padding: chart.Box{Top: 20, Left: 20, Right: 20 + r.opts.legendWidth(), Bottom: 10},
		},
		XAxis: chart.XAxis{
			Range:          &chart.ContinuousRange{Min: 0, Max: float64(n) + r.opts.XPadding},
			ValueFormatter: formatWith("%.0f"),
		},
		YAxis: chart.YAxis{
			Range:          &chart.ContinuousRange{Min: r.opts.YMin, Max: r.opts.YMax},
			ValueFormatter: formatWith("%.1f"),
		},
		Series: series,
	}
}

// legend draws one sample line and label per category in the strip starting
// at column left, to the right of the plot area.
func (r *Renderer) legend(c Comparison, left int) chart.Renderable {
	return func(rend chart.Renderer, cb chart.Box, defaults chart.Style) {
		rend.SetFont(defaults.GetFont())
		rend.SetFontSize(defaults.GetFontSize(chart.DefaultFontSize))
		rend.SetFontColor(drawing.ColorBlack)

		textHeight := rend.MeasureText("Ag").Height()
		rowHeight := textHeight + int(math.Round(r.opts.toPixels(6)))
		sample := int(math.Round(r.opts.DPI * legendSampleInches))
		gap := int(math.Round(r.opts.toPixels(4)))

		y := cb.Top + rowHeight
		for i, label := range c.Labels {
			lineY := y - textHeight/2
			rend.SetStrokeColor(r.opts.color(i))
			rend.SetStrokeWidth(r.opts.toPixels(r.opts.LineWidth))
			rend.SetStrokeDashArray(r.opts.dash(i))
			rend.MoveTo(left, lineY)
			rend.LineTo(left+sample, lineY)
			rend.Stroke()

			rend.Text(label, left+sample+gap, y)
			y += rowHeight
		}
		rend.SetStrokeDashArray(nil)
	}
}

func formatWith(layout string) chart.ValueFormatter {
	return func(v interface{}) string {
		if f, ok := v.(float64); ok {
			return fmt.Sprintf(layout, f)
		}
		return fmt.Sprint(v)
	}
}

func rasterize(c *chart.Chart) (image.Image, error) {
	var buf bytes.Buffer
	if err := c.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return png.Decode(&buf)
}
