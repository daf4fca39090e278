package render

import (
	"bytes"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/specialistvlad/massplot/internal/config"
	"github.com/specialistvlad/massplot/internal/masstable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

func testOptions(t *testing.T) Options {
	t.Helper()
	c := config.Default().Chart
	c.DPI = 60
	opts, err := OptionsFromConfig(c)
	require.NoError(t, err)
	return opts
}

func testComparison() Comparison {
	return Comparison{
		Name:      "temperature",
		Labels:    []string{"Hot", "Cold", "Hot u Cold"},
		Reference: [][]float64{{0.2, 0.4, 0.6}, {0.8, 0.6, 0.4}, {0, 0, 0}},
		Fusion:    [][]float64{{0.3, 0.5, 0.7}, {0.6, 0.4, 0.2}, {0.1, 0.1, 0.1}},
	}
}

func TestParseColor(t *testing.T) {
	testCases := []struct {
		in   string
		want drawing.Color
	}{
		{"b", drawing.Color{B: 255, A: 255}},
		{"Green", drawing.Color{G: 128, A: 255}},
		{"#FF8000", drawing.Color{R: 255, G: 128, A: 255}},
		{"0a0b0c", drawing.Color{R: 10, G: 11, B: 12, A: 255}},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseColor(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	for _, bad := range []string{"", "#12", "zzzzzz", "purple"} {
		_, err := ParseColor(bad)
		assert.Error(t, err, "expected %q to be rejected", bad)
	}
}

func TestParseDash(t *testing.T) {
	solid, err := ParseDash("-")
	require.NoError(t, err)
	assert.Nil(t, solid)

	dashed, err := ParseDash("--")
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 4}, dashed)

	named, err := ParseDash("DashDot")
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 3, 1.5, 3}, named)

	_, err = ParseDash("~~")
	assert.Error(t, err)
}

func TestOptionsFromConfig(t *testing.T) {
	c := config.Default().Chart
	c.Colors = []string{"r", "nope"}
	c.Dashes = []string{"??"}

	_, err := OptionsFromConfig(c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid color "nope"`)
	assert.Contains(t, err.Error(), `invalid dash style "??"`)
}

func TestOptions_StylesCycle(t *testing.T) {
	opts := testOptions(t)

	assert.Equal(t, opts.color(0), opts.color(7), "seven colors cycle")
	assert.Nil(t, opts.dash(0))
	assert.Nil(t, opts.dash(4), "four dash styles cycle")
	// 6pt at 60 dpi is 5px.
	assert.Equal(t, []float64{5, 4.0 * 60 / 72}, opts.dash(1))

	w, h := opts.PixelSize()
	assert.Equal(t, 840, w)
	assert.Equal(t, 420, h)
}

func TestNewComparison(t *testing.T) {
	fusion, err := masstable.New([]masstable.Record{
		{Time: 1, Label: "B", Mass: 0.5},
		{Time: 2, Label: "A", Mass: 0.25},
	})
	require.NoError(t, err)
	reference, err := fusion.Project([]masstable.Record{{Time: 1, Label: "A", Mass: 1}})
	require.NoError(t, err)

	cmp := NewComparison("activity", &masstable.Pair{Fusion: fusion, Reference: reference})

	assert.Equal(t, "activity", cmp.Name)
	assert.Equal(t, []string{"B", "A"}, cmp.Labels)
	assert.Equal(t, [][]float64{{0.5, 0}, {0, 0.25}}, cmp.Fusion)
	assert.Equal(t, [][]float64{{0, 0}, {1, 0}}, cmp.Reference)
	assert.Equal(t, 2, cmp.Points())
}

func TestRender_Validation(t *testing.T) {
	r := NewRenderer(testOptions(t))

	_, err := r.Render(Comparison{Name: "empty"})
	assert.ErrorContains(t, err, "no categories")

	bad := testComparison()
	bad.Fusion[1] = bad.Fusion[1][:2]
	_, err = r.Render(bad)
	assert.ErrorContains(t, err, `series "Cold"`)
}

func TestRender_PNG(t *testing.T) {
	r := NewRenderer(testOptions(t))

	fig, err := r.Render(testComparison())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, fig.Encode("png", &buf))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 840, img.Bounds().Dx())
	assert.Equal(t, 420, img.Bounds().Dy())
}

func TestRender_SinglePoint(t *testing.T) {
	r := NewRenderer(testOptions(t))
	c := Comparison{
		Name:      "single",
		Labels:    []string{"A"},
		Reference: [][]float64{{1}},
		Fusion:    [][]float64{{0.5}},
	}

	_, err := r.Render(c)
	require.NoError(t, err)
}

func TestRender_PDF(t *testing.T) {
	r := NewRenderer(testOptions(t))

	fig, err := r.Render(testComparison())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, fig.Encode("pdf", &buf))
	assert.True(t, strings.HasPrefix(buf.String(), "%PDF-"), "output should start with a PDF header")
}

// constantSeries returns n copies of v.
func constantSeries(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func isBlue(r, g, b uint8) bool  { return b >= 200 && r <= 60 && g <= 60 }
func isGreen(r, g, b uint8) bool { return g >= 100 && g <= 160 && r <= 60 && b <= 60 }

// colorRows returns the rows of rect holding pixels that match, one entry
// per matching pixel.
func colorRows(img image.Image, rect image.Rectangle, match func(r, g, b uint8) bool) []int {
	var rows []int
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if match(uint8(r>>8), uint8(g>>8), uint8(b>>8)) {
				rows = append(rows, y)
			}
		}
	}
	return rows
}

func meanRow(rows []int) float64 {
	sum := 0
	for _, y := range rows {
		sum += y
	}
	return float64(sum) / float64(len(rows))
}

func TestRender_PanelsAndStyles(t *testing.T) {
	// --- Arrange ---
	opts := testOptions(t)
	opts.LineWidth = 6
	const n = 20
	c := Comparison{
		Name:   "posture",
		Labels: []string{"Sitting", "Walking"},
		// Sitting (b) is high only in the reference set, Walking (g) only in
		// the fusion set.
		Reference: [][]float64{constantSeries(n, 1), constantSeries(n, 0)},
		Fusion:    [][]float64{constantSeries(n, 0), constantSeries(n, 1)},
	}

	// --- Act ---
	fig, err := NewRenderer(opts).Render(c)
	require.NoError(t, err)

	// --- Assert ---
	img := fig.Image
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	half := h / 2
	// Columns well inside the plotted lines and away from the legend strip.
	topPlot := image.Rect(w/4, 0, w/2, half)
	bottomPlot := image.Rect(w/4, half, w/2, h)

	topBlue := colorRows(img, topPlot, isBlue)
	topGreen := colorRows(img, topPlot, isGreen)
	bottomBlue := colorRows(img, bottomPlot, isBlue)
	bottomGreen := colorRows(img, bottomPlot, isGreen)
	require.NotEmpty(t, topBlue, "first category is drawn in b")
	require.NotEmpty(t, topGreen, "second category is drawn in g")
	require.NotEmpty(t, bottomBlue)
	require.NotEmpty(t, bottomGreen)

	// Mass 1 sits near the top of its panel, mass 0 near the bottom.
	assert.Less(t, meanRow(topBlue), float64(half)/2, "reference data is in the top panel")
	assert.Greater(t, meanRow(topGreen), float64(half)/2)
	assert.Greater(t, meanRow(bottomBlue), float64(half)+float64(half)/2, "fusion data is in the bottom panel")
	assert.Less(t, meanRow(bottomGreen), float64(half)+float64(half)/2)
}

func TestRender_LegendOutsidePlotArea(t *testing.T) {
	// --- Arrange ---
	opts := testOptions(t)
	opts.LineWidth = 6
	const n = 20
	c := Comparison{
		Name:      "posture",
		Labels:    []string{"Sitting", "Walking"},
		Reference: [][]float64{constantSeries(n, 0.5), constantSeries(n, 0.5)},
		Fusion:    [][]float64{constantSeries(n, 0.5), constantSeries(n, 0.5)},
	}

	// --- Act ---
	fig, err := NewRenderer(opts).Render(c)
	require.NoError(t, err)

	// --- Assert ---
	img := fig.Image
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	strip := opts.legendWidth()
	topStrip := image.Rect(w-strip, 0, w, h/2)
	bottomStrip := image.Rect(w-strip, h/2, w, h)

	assert.NotEmpty(t, colorRows(img, bottomStrip, isBlue), "legend sample for the first category")
	assert.NotEmpty(t, colorRows(img, bottomStrip, isGreen), "legend sample for the second category")
	assert.Empty(t, colorRows(img, topStrip, isBlue), "the reference panel has no legend")
	assert.Empty(t, colorRows(img, topStrip, isGreen))
}

func TestFigure_UnknownFormat(t *testing.T) {
	r := NewRenderer(testOptions(t))
	fig, err := r.Render(testComparison())
	require.NoError(t, err)

	err = fig.Encode("gif", &bytes.Buffer{})
	assert.ErrorContains(t, err, `unsupported format "gif"`)
}
