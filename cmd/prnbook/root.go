package main

import (
	"fmt"

	"prnbook/internal"
	"prnbook/internal/config"
	"prnbook/internal/container"

	"github.com/spf13/cobra"
)

// cliState is filled in by the root command before any subcommand runs
type cliState struct {
	verbose bool
	envFile string

	cfg    *config.Config
	logger *internal.Logger
}

func newRootCmd() *cobra.Command {
	state := &cliState{}

	rootCmd := &cobra.Command{
		Use:   "prnbook",
		Short: "Consolidate measurement .prn files into one workbook per part",
		Long: `prnbook scans a folder for .prn measurement files, groups them by the
filename prefix ending in a space and three digits (e.g. "Part 001"), and writes
one <prefix>.xlsx per group into the same folder.

Each S-parameter file (S11, S21, ...) becomes a column; files whose name
contains XW are collected into a final phase column.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return state.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if state.logger != nil {
				_ = state.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&state.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&state.envFile, "env-file", ".env", "Environment file to load before reading configuration")

	rootCmd.AddCommand(
		newConvertCmd(state),
		newServeCmd(state),
		newInspectCmd(state),
	)

	return rootCmd
}

func (s *cliState) init() error {
	if err := config.LoadDotEnv(s.envFile); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	s.cfg = cfg

	level := internal.ParseLogLevel(cfg.Logging.Level)
	if s.verbose && level < internal.LogLevelDebug {
		level = internal.LogLevelDebug
	}
	s.logger = internal.NewLogger(level)
	return nil
}

func (s *cliState) container() (*container.Container, error) {
	return container.New(s.cfg, s.logger)
}
