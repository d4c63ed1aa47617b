package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spendlog-dev/spendlog/internal/export"
	"github.com/spendlog-dev/spendlog/internal/summary"
)

func newExportCommand(a *app) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export transactions and the summary to an XLSX workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			txs, err := a.load()
			if err != nil {
				return err
			}
			if out == "" {
				out = a.cfg.Export.Path
			}

			if err := export.WriteFile(out, txs, summary.Summarize(txs)); err != nil {
				return fmt.Errorf("exporting: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d transactions to %s\n", len(txs), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output workbook (default from config)")

	return cmd
}
