package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/massplot/internal/ctxlog"
	"github.com/specialistvlad/massplot/internal/fsutil"
)

// Run resolves the attributes to render, renders them, and in watch mode keeps
// re-rendering until ctx is cancelled. It returns an error when an attribute
// fails outside watch mode.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "app", a.String())
	s := a.config.Settings

	targets, err := fsutil.ExpandTargets(a.config.Attributes, s.Sources.FusionDir, s.Sources.Exclude)
	if err != nil {
		return fmt.Errorf("failed to resolve attributes: %w", err)
	}
	if len(targets) == 0 {
		a.logger.Warn("No attributes found, nothing to render.", "fusion_dir", s.Sources.FusionDir)
	}

	report := a.Render(ctx, targets)
	a.health.record(report)
	a.logReport(report)

	if a.config.Watch {
		if err := report.Err(); err != nil {
			a.logger.Warn("Initial render had failures, watching anyway.", "error", err)
		}
		return a.watch(ctx)
	}

	a.logger.Debug("App.Run method finished.")
	return report.Err()
}

func (a *App) logReport(r *Report) {
	a.logger.Info("Render finished.",
		"rendered", len(r.Rendered),
		"skipped", len(r.Skipped),
		"failed", len(r.Failed),
	)
	if len(r.Failed) > 0 {
		a.logger.Error("Some attributes failed.", "attributes", strings.Join(r.Failed, ","))
	}
}
