// Package yamlconfig provides the YAML implementation of config.Loader. The
// document layout mirrors the HCL one: `sources`, `chart` and `log` mappings
// plus top-level `formats`, `begin` and `jobs` keys.
package yamlconfig

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/massplot/internal/config"
	"github.com/specialistvlad/massplot/internal/ctxlog"
	"gopkg.in/yaml.v3"
)

type document struct {
	Sources *struct {
		FusionDir    *string  `yaml:"fusion_dir"`
		ReferenceDir *string  `yaml:"reference_dir"`
		OutputDir    *string  `yaml:"output_dir"`
		Exclude      []string `yaml:"exclude"`
	} `yaml:"sources"`

	Chart *struct {
		Width       *float64 `yaml:"width"`
		Height      *float64 `yaml:"height"`
		DPI         *float64 `yaml:"dpi"`
		YMin        *float64 `yaml:"y_min"`
		YMax        *float64 `yaml:"y_max"`
		XPadding    *float64 `yaml:"x_padding"`
		LineWidth   *float64 `yaml:"line_width"`
		Colors      []string `yaml:"colors"`
		Dashes      []string `yaml:"dashes"`
		TopLabel    *string  `yaml:"top_label"`
		BottomLabel *string  `yaml:"bottom_label"`
		XLabel      *string  `yaml:"x_label"`
	} `yaml:"chart"`

	Log *struct {
		Level  *string `yaml:"level"`
		Format *string `yaml:"format"`
	} `yaml:"log"`

	Formats []string `yaml:"formats"`
	Begin   *int     `yaml:"begin"`
	Jobs    *int     `yaml:"jobs"`
}

// Loader reads massplot settings from YAML files.
type Loader struct{}

// NewLoader creates a new YAML configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load decodes the file at path. Unknown keys are rejected.
func (l *Loader) Load(ctx context.Context, path string) (*config.Patch, error) {
	ctxlog.FromContext(ctx).Debug("YAML loader started.", "path", path)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open YAML file %s: %w", path, err)
	}
	defer f.Close()

	var doc document
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode YAML file %s: %w", path, err)
	}

	return doc.patch(), nil
}

func (d *document) patch() *config.Patch {
	p := &config.Patch{
		Formats: d.Formats,
		Begin:   d.Begin,
		Jobs:    d.Jobs,
	}
	if s := d.Sources; s != nil {
		p.FusionDir = s.FusionDir
		p.ReferenceDir = s.ReferenceDir
		p.OutputDir = s.OutputDir
		p.Exclude = s.Exclude
	}
	if c := d.Chart; c != nil {
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
	if lg := d.Log; lg != nil {
		p.LogLevel = lg.Level
		p.LogFormat = lg.Format
	}
	return p
}
