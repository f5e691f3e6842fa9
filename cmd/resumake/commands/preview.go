package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"git.home.luguber.info/inful/resumake/internal/resume"
	"github.com/fsnotify/fsnotify"
)

// PreviewCmd watches a resume file and rewrites the formatted output on
// every change, so an editor and a markdown viewer can sit side by side.
type PreviewCmd struct {
	File   string `arg:"" help:"Path to the markdown resume to watch."`
	Output string `short:"o" help:"Output path for the formatted document." default:"resume_preview.md"`
}

func (c *PreviewCmd) Run(g *Global, cli *CLI) error {
	cfg, err := loadConfig(cli)
	if err != nil {
		return err
	}

	// Setup signal-based context for graceful shutdown
	sigctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: editors commonly replace the file on save, which
	// drops a watch registered on the file itself.
	dir := filepath.Dir(c.File)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	target, err := filepath.Abs(c.File)
	if err != nil {
		return err
	}

	if err := c.rebuild(cfg.Output.Template); err != nil {
		slog.Warn("Initial format failed", "error", err)
	} else {
		fmt.Printf("Watching %s, writing %s (Ctrl-C to stop)\n", c.File, c.Output)
	}

	for {
		select {
		case <-sigctx.Done():
			slog.Info("Preview stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			name, _ := filepath.Abs(event.Name)
			if name != target || !event.Op.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			if err := c.rebuild(cfg.Output.Template); err != nil {
				// Editors save in multiple steps; a transiently empty or
				// missing file just means we wait for the next event.
				if errors.Is(err, resume.ErrNotFound) || errors.Is(err, resume.ErrEmpty) {
					continue
				}
				slog.Warn("Reformat failed", "error", err)
				continue
			}
			slog.Debug("Reformatted", "file", c.File)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Watcher error", "error", err)
		}
	}
}

func (c *PreviewCmd) rebuild(template string) error {
	sections, err := resume.NewParser().ParseFile(c.File)
	if err != nil {
		return err
	}
	doc := resume.NewFormatter().Format(sections, template)
	if err := os.WriteFile(c.Output, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("write preview: %w", err)
	}
	return nil
}
