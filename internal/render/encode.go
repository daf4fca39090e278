package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/go-pdf/fpdf"
)

// Figure is a rendered comparison ready to be encoded.
type Figure struct {
	Name         string
	Image        image.Image
	WidthInches  float64
	HeightInches float64

	pngData []byte
}

// Encode writes the figure in the named format ("png" or "pdf").
func (f *Figure) Encode(format string, w io.Writer) error {
	switch format {
	case "png":
		return f.WritePNG(w)
	case "pdf":
		return f.WritePDF(w)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// WritePNG writes the figure as a PNG image.
func (f *Figure) WritePNG(w io.Writer) error {
	data, err := f.encodedPNG()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// WritePDF writes a single page of the figure's physical size with the
// raster stretched over it.
func (f *Figure) WritePDF(w io.Writer) error {
	data, err := f.encodedPNG()
	if err != nil {
		return err
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "in",
		Size:           fpdf.SizeType{Wd: f.WidthInches, Ht: f.HeightInches},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(f.Name, true)
	pdf.SetCreator("massplot", true)
	pdf.AddPage()

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	imageName := "figure-" + f.Name
	pdf.RegisterImageOptionsReader(imageName, opts, bytes.NewReader(data))
	pdf.ImageOptions(imageName, 0, 0, f.WidthInches, f.HeightInches, false, opts, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

func (f *Figure) encodedPNG() ([]byte, error) {
	if f.pngData != nil {
		return f.pngData, nil
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, f.Image); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	f.pngData = buf.Bytes()
	return f.pngData, nil
}
