package settings

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads path whenever it is written and passes the result to
// onChange. A file that fails to parse, or an onChange error, keeps the
// previous settings active. Watch returns when ctx is cancelled.
func Watch(ctx context.Context, path string, logger *slog.Logger, onChange func(*Settings) error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// The directory is watched so atomic replaces keep being observed.
	target := filepath.Clean(path)
	if err = watcher.Add(filepath.Dir(target)); err != nil {
		return err
	}

	logger = logger.With("component", "settings-watcher", "path", path)
	logger.InfoContext(ctx, "Watching settings for changes")

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			s, loadErr := Load(path)
			if loadErr != nil {
				logger.ErrorContext(ctx, "Settings reload failed, keeping previous settings", "error", loadErr)
				continue
			}
			if applyErr := onChange(s); applyErr != nil {
				logger.ErrorContext(ctx, "Settings rejected, keeping previous settings", "error", applyErr)
				continue
			}
			logger.InfoContext(ctx, "Settings reloaded")

		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.ErrorContext(ctx, "Settings watcher error", "error", watchErr)
		}
	}
}
