package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"personal-task-tracker/config"
	"personal-task-tracker/internal/task/delivery/cli"
	"personal-task-tracker/internal/task/repository/jsonfile"
	"personal-task-tracker/internal/task/repository/memory"
	"personal-task-tracker/internal/task/usecase"
	"personal-task-tracker/pkg/datemath"
	"personal-task-tracker/pkg/log"
	"personal-task-tracker/pkg/parse"
)

var (
	dataPath string
	logLevel string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "todo",
		Short: "Personal task tracker with natural-language input",
		Long: `A personal task tracker. Task attributes are extracted from plain text:
tags (@home), priority (#high), due dates (due:2025-12-01, due:tomorrow),
assignees (assigned:alice@example.com), times (at 3pm) and recurrence
(every monday).`,
		SilenceUsage: true,
		// Bare invocation drops into the REPL, same as --interactive.
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := buildHandler()
			if err != nil {
				return err
			}
			return h.RunREPL(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "path to tasks json (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "logging level (overrides config)")
	// Accepted for familiarity; a bare invocation already starts the REPL.
	rootCmd.Flags().Bool("interactive", false, "start interactive mode (REPL)")

	rootCmd.AddCommand(addCmd())
	rootCmd.AddCommand(updateCmd())
	rootCmd.AddCommand(deleteCmd())
	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(completeCmd())
	rootCmd.AddCommand(incompleteCmd())
	rootCmd.AddCommand(searchCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// buildHandler wires the full stack: config, logger, parser, repository,
// storage, use case, and the CLI delivery handler.
func buildHandler() (cli.Handler, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if dataPath != "" {
		cfg.Storage.Path = dataPath
	}
	if logLevel != "" {
		cfg.Logger.Level = logLevel
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	dates, err := datemath.NewParser(cfg.Parser.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", cfg.Parser.Timezone, err)
	}

	uc, err := usecase.New(
		logger,
		parse.New(dates),
		memory.New(),
		jsonfile.New(cfg.Storage.Path),
	)
	if err != nil {
		return nil, err
	}

	return cli.New(logger, uc, os.Stdin, os.Stdout), nil
}
