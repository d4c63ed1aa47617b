package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spendlog-dev/spendlog/internal/chart"
	"github.com/spendlog-dev/spendlog/internal/report"
)

func newChartCommand(a *app) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Render the spending charts to a PDF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			txs, err := a.load()
			if err != nil {
				return err
			}
			if len(txs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), emptyStoreMsg)
				return nil
			}
			if out == "" {
				out = a.cfg.Chart.Path
			}

			pie, bar := report.ChartSeries(txs)
			if err := chart.WriteFile(out, pie, bar); err != nil {
				return fmt.Errorf("writing chart: %w", err)
			}
			a.log.Debug().Str("path", out).Int("categories", len(pie)).Msg("chart written")

			fmt.Fprintf(cmd.OutOrStdout(), "Chart saved as: %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output PDF (default from config)")

	return cmd
}
