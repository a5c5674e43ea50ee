package config

import (
	"context"
	"log/slog"

	"github.com/fsnotify/fsnotify"
)

// Watch monitors the config file at path and calls onChange with the freshly
// loaded Config after each successful reload. It blocks until ctx is
// cancelled. The primary consumer is alert-rule hot-reload in watch mode.
//
// A reload that fails validation is logged and dropped; onChange is only ever
// handed a Config that passed Load.
func Watch(ctx context.Context, path string, onChange func(*Config)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return err
	}
	slog.Info("config: watching", "path", path)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// Editors that save atomically replace the file via rename, which
			// surfaces as Create; plain writes surface as Write.
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			cfg, err := Load(path)
			if err != nil {
				slog.Error("config: reload rejected, keeping previous config",
					"path", path, "err", err)
				continue
			}
			slog.Info("config: reloaded",
				"path", path,
				"alert_rules", len(cfg.Alerts.Rules),
				"extra_pattern_categories", len(cfg.Analyzer.ExtraPatterns),
			)
			onChange(cfg)

			// An atomic save swapped the inode out from under the watch;
			// re-add so the next save is still seen.
			_ = watcher.Add(path)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("config: watcher error", "err", err)
		}
	}
}
