package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/specialistvlad/massplot/internal/ctxlog"
	"github.com/specialistvlad/massplot/internal/masstable"
	"github.com/specialistvlad/massplot/internal/render"
	"golang.org/x/sync/errgroup"
)

// errSkipped marks attributes whose input files are missing or unreadable.
var errSkipped = errors.New("attribute skipped")

// Render processes names with at most Settings.Jobs attributes in flight.
// Failures are confined to their attribute; the report keeps names in input
// order.
func (a *App) Render(ctx context.Context, names []string) *Report {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	results := make([]error, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.config.Settings.Jobs)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i] = err
				return nil
			}
			results[i] = a.renderAttribute(gctx, name)
			return nil
		})
	}
	_ = g.Wait()

	report := &Report{}
	for i, name := range names {
		report.add(name, results[i])
	}
	return report
}

// renderAttribute loads, draws and writes one attribute. A panic is turned
// into a failure of this attribute only.
func (a *App) renderAttribute(ctx context.Context, name string) (err error) {
	ctx, logger := ctxlog.With(ctx, "attribute", name)
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Recovered from panic while rendering.", "panic", r)
			err = fmt.Errorf("panic while rendering %q: %v", name, r)
		}
	}()
	s := a.config.Settings

	fusionPath := filepath.Join(s.Sources.FusionDir, name)
	referencePath := filepath.Join(s.Sources.ReferenceDir, name)
	logger.Info("Processing attribute.", "path", fusionPath)

	pair, err := masstable.LoadPair(fusionPath, referencePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			logger.Warn("No such context attribute or a file does not exist.", "error", err)
			return fmt.Errorf("%w: %w", errSkipped, err)
		}
		logger.Error("Failed to load mass tables.", "error", err)
		return err
	}
	logger.Debug("Mass tables loaded.", "categories", len(pair.Fusion.Labels()), "steps", pair.Fusion.Len())

	if s.Begin > 0 {
		if pair, err = pair.Window(s.Begin); err != nil {
			logger.Error("Failed to apply begin index.", "begin", s.Begin, "error", err)
			return err
		}
	}

	fig, err := a.renderer.Render(render.NewComparison(name, pair))
	if err != nil {
		logger.Error("Failed to draw comparison chart.", "error", err)
		return err
	}

	if err := os.MkdirAll(s.Sources.OutputDir, 0o755); err != nil {
		logger.Error("Failed to create output directory.", "dir", s.Sources.OutputDir, "error", err)
		return err
	}
	for _, format := range s.Formats {
		path := filepath.Join(s.Sources.OutputDir, name+"."+format)
		if err := writeFigure(ctx, fig, format, path); err != nil {
			logger.Error("Failed to write chart.", "path", path, "error", err)
			return err
		}
	}
	return nil
}

// writeFigure encodes into a temporary file next to path and renames it, so
// readers never observe a half-written chart.
func writeFigure(ctx context.Context, fig *render.Figure, format, path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := fig.Encode(format, tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Info("Chart written.", "path", path)
	return nil
}
