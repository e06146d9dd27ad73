package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arumata/solidnotify/internal/adapters/config"
	"github.com/arumata/solidnotify/internal/usecase"
)

func newConfigCmd(cfg *usecase.Config, exitCode *int) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			logger := setupLogger(cfg.Verbose, "")
			adapter := config.New(logger)
			file, err := adapter.Load(cmd.Context(), cfg.ConfigPath)
			if err != nil {
				handleCmdError(exitCode, fmt.Errorf("load config: %v: %w", err, usecase.ErrCritical))
				return
			}
			if _, err := usecase.RuntimeConfigFromFile(file); err != nil {
				handleCmdError(exitCode, err)
				return
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), adapter.Render(file))
			handleCmdError(exitCode, err)
		},
	}
}
