package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-advent/cmd"
	"github.com/mattsolo1/grove-advent/cmd/config"
	"github.com/mattsolo1/grove-advent/pkg/history"
	"github.com/mattsolo1/grove-advent/pkg/input"
	"github.com/mattsolo1/grove-advent/pkg/runner"
)

var (
	run   *runner.Runner
	store *history.Store
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "aoc",
		Short:         "Advent of Code 2022 solutions, days 1 to 9",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	config.AddGlobalFlags(rootCmd)

	rootCmd.PersistentPreRunE = func(c *cobra.Command, args []string) error {
		// This runs once before any subcommand
		settings, err := config.InitSettings()
		if err != nil {
			return err
		}

		logger, err := config.NewLogger(settings.LogLevel, config.Verbose)
		if err != nil {
			return err
		}

		store, err = history.NewStore(settings.DataDir)
		if err != nil {
			// Solving works without history.
			logger.WithError(err).Debug("history unavailable")
			store = nil
		}

		entry := logrus.NewEntry(logger)
		run, err = runner.New(settings, input.NewLoader(settings.InputsDir), store, entry)
		if err != nil {
			return fmt.Errorf("failed to initialize runner: %w", err)
		}
		return nil
	}

	rootCmd.PersistentPostRunE = func(c *cobra.Command, args []string) error {
		if store != nil {
			return store.Close()
		}
		return nil
	}

	rootCmd.AddCommand(cmd.NewSolveCmd(&run))
	rootCmd.AddCommand(cmd.NewListCmd(&run))
	rootCmd.AddCommand(cmd.NewVerifyCmd(&run))
	rootCmd.AddCommand(cmd.NewTreeCmd(&run))
	rootCmd.AddCommand(cmd.NewHistoryCmd(&run))
	rootCmd.AddCommand(cmd.NewPinCmd(&run))
	rootCmd.AddCommand(cmd.NewVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
