// Package main provides pt, the command line companion to the
// practicetracker TUI.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/tygara/practicetracker/internal/cli"
	"github.com/tygara/practicetracker/internal/config"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	_ = godotenv.Load()

	if len(args) == 0 {
		cli.PrintUsage(os.Stderr)
		return 2
	}

	if args[0] == "init" {
		cwd, err := os.Getwd()
		if err == nil {
			err = cli.InitCommand(filepath.Join(cwd, config.YAMLFileName), os.Stdout)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return 1
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}))

	deps, err := cli.NewDependencies(cfg, logger, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if err := cli.Run(deps, args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if cli.ExitCode(err) == 2 {
			cli.PrintUsage(os.Stderr)
		}
		return cli.ExitCode(err)
	}
	return 0
}
