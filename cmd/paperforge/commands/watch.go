package commands

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/paperforge/internal/logfields"
	"git.home.luguber.info/inful/paperforge/internal/pipeline"
)

// WatchCmd implements the 'watch' command: run a full generation once, then
// regenerate whenever the docs tree changes.
type WatchCmd struct {
	LatheCmd        `embed:""`
	Output          string        `short:"o" default:"./dist/doc-printer.ftl" help:"Destination for the generated localization catalog"`
	DocumentsOutput string        `name:"documents-output" default:"./dist/documents.yml" help:"Destination for the generated document metadata"`
	Debounce        time.Duration `default:"500ms" help:"Delay before regenerating after a filesystem event"`
}

func (w *WatchCmd) Run(_ *Global) error {
	cfg, err := w.pipelineConfig()
	if err != nil {
		return err
	}
	cfg.CatalogPath = w.Output
	cfg.MetadataPath = w.DocumentsOutput

	w.regenerate(cfg)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() {
		_ = watcher.Close()
	}()

	if err := addTree(watcher, w.DocsDir); err != nil {
		return err
	}
	slog.Info("Watching for document changes", logfields.DocsDir(w.DocsDir))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var debounce <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			slog.Info("Shutdown signal received, stopping watcher")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			// New subdirectories need their own watch before files land in them.
			if event.Op&fsnotify.Create != 0 {
				if info, statErr := os.Stat(event.Name); statErr == nil && info.IsDir() {
					if addErr := addTree(watcher, event.Name); addErr != nil {
						slog.Warn("Failed to watch new directory",
							logfields.Path(event.Name), logfields.Error(addErr))
					}
				}
			}
			slog.Debug("Filesystem event", logfields.Path(event.Name))
			debounce = time.After(w.Debounce)

		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Watcher error", logfields.Error(watchErr))

		case <-debounce:
			debounce = nil
			w.regenerate(cfg)
		}
	}
}

// regenerate runs the pipeline, logging failures instead of stopping the
// watch loop: a half-edited document should not kill the session.
func (w *WatchCmd) regenerate(cfg pipeline.Config) {
	result, err := pipeline.Run(cfg)
	if err != nil {
		slog.Error("Regeneration failed", logfields.Error(err))
		return
	}
	printRunStatus(result)
}

func addTree(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.IsDir() {
			return nil
		}
		return watcher.Add(path)
	})
}
