// Package main provides the entry point for the practicetracker TUI.
//
// Usage:
//
//	practicetracker
//
// Configuration is read from .practicetracker.yaml (or .json) in the current
// directory, PRACTICETRACKER_* environment variables and an optional .env file.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/tygara/practicetracker/internal/app"
	"github.com/tygara/practicetracker/internal/config"
	"github.com/tygara/practicetracker/internal/services/planning"
	"github.com/tygara/practicetracker/internal/services/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env is fine
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// stdout belongs to the alt screen, so logs go to a file
	if err := os.MkdirAll(filepath.Dir(cfg.Log.File), 0755); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}
	logFile, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer logFile.Close()

	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}))
	slog.SetDefault(logger)
	logger.Info("starting", "data_dir", cfg.Storage.DataDir)

	library := store.NewLibrary(cfg.Storage.DataDir, store.NewJSONStore(logger), logger)
	model, err := app.New(cfg, library, planning.NewService(logger), logger)
	if err != nil {
		return err
	}

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
