package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/specialistvlad/massplot/internal/app"
	"github.com/specialistvlad/massplot/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(err error) *ExitError {
	return &ExitError{Code: 2, Message: err.Error()}
}

// flagValues receives the raw flag values. Only flags the user actually set
// are applied on top of the configuration file.
type flagValues struct {
	configPath   string
	fusionDir    string
	referenceDir string
	outputDir    string
	exclude      []string
	formats      []string
	begin        int
	dpi          float64
	jobs         int
	watch        bool
	healthPort   int
	logLevel     string
	logFormat    string
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	// cobra falls back to os.Args when given a nil slice.
	if args == nil {
		args = []string{}
	}

	var parsed *app.Config
	cmd := newRootCommand(func(cfg *app.Config) { parsed = cfg })
	cmd.SetArgs(args)
	cmd.SetOut(output)
	cmd.SetErr(output)

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return nil, false, exitErr
		}
		return nil, false, usageError(err)
	}

	if parsed == nil {
		slog.Debug("No command to run, exiting.")
		return nil, true, nil
	}
	slog.Debug("CLI parser finished successfully.", "attributes", parsed.Attributes)
	return parsed, false, nil
}

func newRootCommand(onParsed func(*app.Config)) *cobra.Command {
	var v flagValues

	cmd := &cobra.Command{
		Use:   "massplot [flags] [ATTRIBUTE...]",
		Short: "Draw fusion vs. reference mass comparison charts.",
		Long: `massplot - Belief-function mass comparison charts.

For every context attribute, massplot reads the fusion result file and the
reference result file of the same name, each made of "time;category;mass"
rows, and writes a two-panel chart (reference on top, fusion below) to the
output directory as <attribute>.png and <attribute>.pdf.

With no ATTRIBUTE, or with "*", every file of the fusion directory is drawn
except the excluded names.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd, &v, args)
			if err != nil {
				return err
			}
			onParsed(cfg)
			return nil
		},
	}

	defaults := config.Default()
	f := cmd.Flags()
	f.StringVarP(&v.configPath, "config", "c", "", "Path to an .hcl or .yaml configuration file (env "+ConfigEnvVar+").")
	f.StringVar(&v.fusionDir, "fusion-dir", defaults.Sources.FusionDir, "Directory holding the fusion results.")
	f.StringVar(&v.referenceDir, "reference-dir", defaults.Sources.ReferenceDir, "Directory holding the reference results.")
	f.StringVarP(&v.outputDir, "output-dir", "o", defaults.Sources.OutputDir, "Directory the charts are written to.")
	f.StringSliceVar(&v.exclude, "exclude", defaults.Sources.Exclude, "Fusion directory entries that are not attributes.")
	f.StringSliceVarP(&v.formats, "format", "f", defaults.Formats, "Output formats: png, pdf.")
	f.IntVar(&v.begin, "begin", defaults.Begin, "First time step to plot (0-based).")
	f.Float64Var(&v.dpi, "dpi", defaults.Chart.DPI, "Raster resolution in dots per inch.")
	f.IntVarP(&v.jobs, "jobs", "j", defaults.Jobs, "Number of attributes rendered concurrently.")
	f.BoolVarP(&v.watch, "watch", "w", false, "Keep running and redraw attributes when their files change.")
	f.IntVar(&v.healthPort, "healthcheck-port", 0, "Port for the HTTP health check server in watch mode. 0 is disabled.")
	f.StringVar(&v.logLevel, "log-level", defaults.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	f.StringVar(&v.logFormat, "log-format", defaults.LogFormat, "Log output format. Options: 'text' or 'json'.")

	return cmd
}

// buildConfig layers defaults, the configuration file, and explicit flags.
func buildConfig(cmd *cobra.Command, v *flagValues, args []string) (*app.Config, error) {
	settings := config.Default()

	configPath := v.configPath
	if configPath == "" {
		configPath = os.Getenv(ConfigEnvVar)
	}
	if configPath != "" {
		loader, err := loaderFor(configPath)
		if err != nil {
			return nil, usageError(err)
		}
		patch, err := loader.Load(cmd.Context(), configPath)
		if err != nil {
			return nil, usageError(err)
		}
		patch.Apply(&settings)
		slog.Debug("Configuration file applied.", "path", configPath)
	}

	flagPatch(cmd.Flags(), v).Apply(&settings)
	settings.LogLevel = strings.ToLower(settings.LogLevel)
	settings.LogFormat = strings.ToLower(settings.LogFormat)
	for i, f := range settings.Formats {
		settings.Formats[i] = strings.ToLower(strings.TrimSpace(f))
	}

	cfg, err := app.NewConfig(app.Config{
		Settings:        settings,
		Attributes:      args,
		Watch:           v.watch,
		HealthcheckPort: v.healthPort,
	})
	if err != nil {
		return nil, usageError(err)
	}
	return cfg, nil
}

func flagPatch(f *pflag.FlagSet, v *flagValues) *config.Patch {
	p := &config.Patch{}
	if f.Changed("fusion-dir") {
		p.FusionDir = &v.fusionDir
	}
	if f.Changed("reference-dir") {
		p.ReferenceDir = &v.referenceDir
	}
	if f.Changed("output-dir") {
		p.OutputDir = &v.outputDir
	}
	if f.Changed("exclude") {
		p.Exclude = append([]string{}, v.exclude...)
	}
	if f.Changed("format") {
		p.Formats = append([]string{}, v.formats...)
	}
	if f.Changed("begin") {
		p.Begin = &v.begin
	}
	if f.Changed("dpi") {
		p.DPI = &v.dpi
	}
	if f.Changed("jobs") {
		p.Jobs = &v.jobs
	}
	if f.Changed("log-level") {
		p.LogLevel = &v.logLevel
	}
	if f.Changed("log-format") {
		p.LogFormat = &v.logFormat
	}
	return p
}
