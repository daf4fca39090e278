package hcl

import "github.com/specialistvlad/massplot/internal/config"

// translate converts the HCL-specific file schema into the agnostic patch.
func translate(root *fileRoot) *config.Patch {
	p := &config.Patch{
		Formats: root.Formats,
		Begin:   root.Begin,
		Jobs:    root.Jobs,
	}
	if s := root.Sources; s != nil {
		p.FusionDir = s.FusionDir
		p.ReferenceDir = s.ReferenceDir
		p.OutputDir = s.OutputDir
		p.Exclude = s.Exclude
	}
	if c := root.Chart; c != nil {
		p.WidthInches = c.Width
		p.HeightInches = c.Height
		p.DPI = c.DPI
		p.YMin = c.YMin
		p.YMax = c.YMax
		p.XPadding = c.XPadding
		p.LineWidth = c.LineWidth
		p.Colors = c.Colors
		p.Dashes = c.Dashes
		p.TopLabel = c.TopLabel
		p.BottomLabel = c.BottomLabel
		p.XLabel = c.XLabel
	}
	if l := root.Log; l != nil {
		p.LogLevel = l.Level
		p.LogFormat = l.Format
	}
	return p
}
