// Command mazeviz animates a breadth-first search through a maze in the
// terminal. Click a start and an end cell, press enter, and watch the
// frontier spread until the shortest path lights up.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg, envErr := loadConfig()

	logger, closeLog, err := newLogger(cfg.LogPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeLog()
	if envErr != nil {
		logger.Info(".env file not found or could not be loaded", slog.String("error", envErr.Error()))
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("mazeviz stopped", slog.String("error", err.Error()))
		closeLog()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg Config, logger *slog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	a, err := newApp(screen, cfg, logger)
	if err != nil {
		return err
	}
	a.run()
	return nil
}

// newLogger writes text logs to path, or discards them when path is empty.
// The terminal belongs to the UI, so nothing is logged to stderr.
func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("mazeviz: open log: %w", err)
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h), func() { _ = f.Close() }, nil
}
