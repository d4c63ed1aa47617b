package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/spendlog-dev/spendlog/internal/config"
)

func newInitCommand(a *app) *cobra.Command {
	var writeConfig bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the transactions file if it does not exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			created, err := a.store.Initialize()
			if err != nil {
				return fmt.Errorf("initializing store: %w", err)
			}
			if created {
				fmt.Fprintf(out, "Created new transactions file: %s\n", a.store.Path())
			} else {
				fmt.Fprintf(out, "Found existing transactions file: %s\n", a.store.Path())
			}

			if !writeConfig {
				return nil
			}
			if _, err := os.Stat(a.configPath); !errors.Is(err, fs.ErrNotExist) {
				fmt.Fprintf(out, "Config file already exists: %s\n", a.configPath)
				return nil
			}
			if err := config.Save(a.configPath, a.cfg); err != nil {
				return err
			}
			fmt.Fprintf(out, "Wrote config file: %s\n", a.configPath)
			return nil
		},
	}

	cmd.Flags().BoolVar(&writeConfig, "write-config", false, "also write the effective settings to the config file if it does not exist")

	return cmd
}
