// Package watcher reports which attribute files changed in a set of result
// directories, batching bursts of writes into a single notification.
package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/specialistvlad/massplot/internal/ctxlog"
)

// DefaultDelay is how long the watcher waits for writes to settle.
const DefaultDelay = 300 * time.Millisecond

// Watcher watches directories for attribute file changes.
type Watcher struct {
	fs     *fsnotify.Watcher
	delay  time.Duration
	ignore map[string]struct{}
}

// New starts watching dirs. Names listed in ignore never trigger a
// notification, and neither do directories.
func New(dirs []string, ignore []string, delay time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	for _, dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	skip := make(map[string]struct{}, len(ignore))
	for _, name := range ignore {
		skip[name] = struct{}{}
	}
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Watcher{fs: fsw, delay: delay, ignore: skip}, nil
}

// Run blocks until ctx is done, calling onChange with the sorted, deduplicated
// base names of the files changed during each quiet period. The underlying
// watcher is closed when Run returns.
func (w *Watcher) Run(ctx context.Context, onChange func(ctx context.Context, names []string)) error {
	defer w.fs.Close()
	logger := ctxlog.FromContext(ctx)

	pending := make(map[string]struct{})
	timer := time.NewTimer(w.delay)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			name := filepath.Base(event.Name)
			if _, skip := w.ignore[name]; skip {
				continue
			}
			if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
				continue
			}
			logger.Debug("File change detected.", "path", event.Name, "op", event.Op.String())
			pending[name] = struct{}{}
			timer.Reset(w.delay)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			logger.Warn("File watcher error.", "error", err)

		case <-timer.C:
			if len(pending) == 0 {
				continue
			}
			names := make([]string, 0, len(pending))
			for name := range pending {
				names = append(names, name)
			}
			sort.Strings(names)
			pending = make(map[string]struct{})
			onChange(ctx, names)
		}
	}
}
