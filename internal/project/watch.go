package project

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch follows writes to the registry file made by other processes. On each
// change it drops the registry cache, notifies subscribers and calls
// onChange with the fresh list. It blocks until ctx is done.
func Watch(ctx context.Context, r *Registry, logger *slog.Logger, onChange func([]string)) error {
	if logger == nil {
		logger = slog.Default().With("module", "project.watch")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// The store replaces the file by rename, so watch the directory.
	dir := filepath.Dir(r.Path())
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	target := filepath.Base(r.Path())

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug("registry file changed", "op", event.Op.String())
			r.reload()
			if onChange != nil {
				onChange(r.List())
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "error", err)
		}
	}
}
