package config

import (
	"errors"
	"fmt"
	"strings"
)

// SupportedFormats lists the output encodings the renderer understands.
var SupportedFormats = []string{"png", "pdf"}

// Validate reports every problem with s at once.
func (s *Settings) Validate() error {
	var errs []error

	if s.Sources.FusionDir == "" {
		errs = append(errs, errors.New("fusion directory must not be empty"))
	}
	if s.Sources.ReferenceDir == "" {
		errs = append(errs, errors.New("reference directory must not be empty"))
	}
	if s.Sources.OutputDir == "" {
		errs = append(errs, errors.New("output directory must not be empty"))
	}

	c := s.Chart
	if c.WidthInches <= 0 || c.HeightInches <= 0 {
		errs = append(errs, fmt.Errorf("figure size must be positive, got %gx%g", c.WidthInches, c.HeightInches))
	}
	if c.DPI <= 0 {
		errs = append(errs, fmt.Errorf("dpi must be positive, got %g", c.DPI))
	}
	if c.YMin >= c.YMax {
		errs = append(errs, fmt.Errorf("y range is empty: [%g, %g]", c.YMin, c.YMax))
	}
	if c.XPadding < 0 {
		errs = append(errs, fmt.Errorf("x padding must not be negative, got %g", c.XPadding))
	}
	if c.LineWidth <= 0 {
		errs = append(errs, fmt.Errorf("line width must be positive, got %g", c.LineWidth))
	}
	if len(c.Colors) == 0 {
		errs = append(errs, errors.New("at least one color is required"))
	}
	if len(c.Dashes) == 0 {
		errs = append(errs, errors.New("at least one dash style is required"))
	}

	if len(s.Formats) == 0 {
		errs = append(errs, errors.New("at least one output format is required"))
	}
	for _, f := range s.Formats {
		if !isSupportedFormat(f) {
			errs = append(errs, fmt.Errorf("unsupported format %q: must be one of %s", f, strings.Join(SupportedFormats, ", ")))
		}
	}

	if s.Begin < 0 {
		errs = append(errs, fmt.Errorf("begin must not be negative, got %d", s.Begin))
	}
	if s.Jobs < 1 {
		errs = append(errs, fmt.Errorf("jobs must be at least 1, got %d", s.Jobs))
	}

	switch s.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", s.LogLevel))
	}
	switch s.LogFormat {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", s.LogFormat))
	}

	return errors.Join(errs...)
}

func isSupportedFormat(f string) bool {
	for _, s := range SupportedFormats {
		if f == s {
			return true
		}
	}
	return false
}
