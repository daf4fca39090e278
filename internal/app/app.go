package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/massplot/internal/render"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	renderer *render.Renderer
	health   healthState
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger.
func NewApp(outW io.Writer, cfg *Config) (*App, error) {
	logger := newLogger(cfg.Settings.LogLevel, cfg.Settings.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	opts, err := render.OptionsFromConfig(cfg.Settings.Chart)
	if err != nil {
		return nil, err
	}
	logger.Debug("Chart layout resolved.", "dpi", opts.DPI, "colors", len(opts.Colors), "dashes", len(opts.Dashes))

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		renderer: render.NewRenderer(opts),
	}, nil
}

// Config returns the application's configuration. This is primarily for testing.
func (a *App) Config() *Config {
	return a.config
}

func (a *App) String() string {
	s := a.config.Settings.Sources
	return fmt.Sprintf("massplot(fusion=%s, reference=%s, output=%s)", s.FusionDir, s.ReferenceDir, s.OutputDir)
}
