package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/dramascope/dramascope/internal/config"
)

// runWatch scores every thread file dropped into the configured directory
// until ctx is cancelled. Each processed file gets a sibling report written
// as <file>.report.json. When a config path is given, alert rules are
// hot-reloaded on config changes.
func (a *app) runWatch(ctx context.Context, configPath string, cfg *config.Config) error {
	if cfg.Watch.Dir == "" {
		slog.Error("watch mode requires watch.dir in the config file")
		os.Exit(1)
	}

	if configPath != "" {
		go func() {
			err := config.Watch(ctx, configPath, func(updated *config.Config) {
				a.engine.SetRules(updated.Alerts.Rules)
				slog.Info("alert rules hot-reloaded", "rules", len(updated.Alerts.Rules))
			})
			if err != nil {
				slog.Error("config watcher stopped", "err", err)
			}
		}()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(cfg.Watch.Dir); err != nil {
		return err
	}
	slog.Info("watching for thread files", "dir", cfg.Watch.Dir, "glob", cfg.Watch.Glob)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// A file is scored once, when its write completes via rename or
			// when the writer closes it after a create.
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			matched, err := filepath.Match(cfg.Watch.Glob, filepath.Base(event.Name))
			if err != nil || !matched {
				continue
			}
			a.processFile(event.Name)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("watcher error", "err", err)
		}
	}
}

func (a *app) processFile(path string) {
	f, err := os.Open(path)
	if err != nil {
		slog.Error("cannot open thread file", "path", path, "err", err)
		return
	}
	msgs := readMessages(f)
	f.Close()

	rep := a.processThread(path, msgs)

	out, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		slog.Error("cannot encode report", "path", path, "err", err)
		return
	}
	reportPath := path + ".report.json"
	if err := os.WriteFile(reportPath, out, 0o644); err != nil {
		slog.Error("cannot write report", "path", reportPath, "err", err)
		return
	}
	slog.Info("report written", "path", reportPath)
}
