package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/specialistvlad/massplot/internal/fsutil"
	"github.com/specialistvlad/massplot/internal/watcher"
)

// watch re-renders attributes whose fusion or reference file changes until ctx
// is cancelled.
func (a *App) watch(ctx context.Context) error {
	s := a.config.Settings
	if a.config.HealthcheckPort > 0 {
		if _, err := a.startHealthcheckServer(ctx, fmt.Sprintf(":%d", a.config.HealthcheckPort)); err != nil {
			return err
		}
	}

	ignore := append([]string{filepath.Base(s.Sources.OutputDir)}, s.Sources.Exclude...)
	w, err := watcher.New(
		[]string{s.Sources.FusionDir, s.Sources.ReferenceDir},
		ignore,
		watcher.DefaultDelay,
	)
	if err != nil {
		return fmt.Errorf("failed to start watch mode: %w", err)
	}

	selected := a.selectedAttributes()
	a.logger.Info("Watching for changes.", "fusion_dir", s.Sources.FusionDir, "reference_dir", s.Sources.ReferenceDir)

	return w.Run(ctx, func(ctx context.Context, names []string) {
		var targets []string
		for _, name := range names {
			if selected == nil {
				targets = append(targets, name)
				continue
			}
			if _, ok := selected[name]; ok {
				targets = append(targets, name)
			}
		}
		if len(targets) == 0 {
			return
		}
		report := a.Render(ctx, targets)
		a.health.record(report)
		a.logReport(report)
	})
}

// selectedAttributes returns nil when every attribute is selected.
func (a *App) selectedAttributes() map[string]struct{} {
	if len(a.config.Attributes) == 0 {
		return nil
	}
	selected := make(map[string]struct{}, len(a.config.Attributes))
	for _, name := range a.config.Attributes {
		if name == fsutil.Wildcard {
			return nil
		}
		selected[name] = struct{}{}
	}
	return selected
}
