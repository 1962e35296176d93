// Package watch re-runs an action whenever a file changes. It backs the
// CLI's --watch mode, which re-translates the input file on every save.
package watch

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce coalesces the bursts of events editors emit on save.
const debounce = 200 * time.Millisecond

// pollInterval is the fallback cadence when no watcher is available.
const pollInterval = time.Second

// Watch invokes fn every time the file at path changes, until ctx is
// cancelled. Errors returned by fn are logged and watching continues; only
// ctx.Err() ends a Watch normally.
//
// The file's directory is watched rather than the file itself, which
// survives the rename-and-replace save strategy of most editors. When a
// watcher cannot be created, Watch degrades to polling the file's
// modification time.
func Watch(ctx context.Context, path string, fn func() error) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		slog.Debug("watch: falling back to polling", slog.String("error", err.Error()))
		return poll(ctx, abs, fn)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		slog.Debug("watch: falling back to polling", slog.String("error", err.Error()))
		return poll(ctx, abs, fn)
	}

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return poll(ctx, abs, fn)
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
				fire = timer.C
			} else {
				timer.Reset(debounce)
			}

		case <-fire:
			timer = nil
			fire = nil
			run(path, fn)

		case werr, ok := <-watcher.Errors:
			if !ok {
				return poll(ctx, abs, fn)
			}
			slog.Debug("watch: watcher error", slog.String("error", werr.Error()))
		}
	}
}

// poll re-runs fn whenever the file's modification time moves forward.
func poll(ctx context.Context, path string, fn func() error) error {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	var last time.Time
	if info, err := os.Stat(path); err == nil {
		last = info.ModTime()
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			info, err := os.Stat(path)
			if err != nil {
				continue
			}
			if mod := info.ModTime(); mod.After(last) {
				last = mod
				run(path, fn)
			}
		}
	}
}

// run executes fn, logging failures so a broken save does not end the
// watch session.
func run(path string, fn func() error) {
	if err := fn(); err != nil {
		slog.Debug("watch: action failed",
			slog.String("path", path),
			slog.String("error", err.Error()))
	}
}
