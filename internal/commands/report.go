package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spendlog-dev/spendlog/internal/advisor"
	"github.com/spendlog-dev/spendlog/internal/report"
	"github.com/spendlog-dev/spendlog/internal/summary"
)

func newListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all transactions",
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
			return report.WriteListing(cmd.OutOrStdout(), txs)
		},
	}
}

func newSummaryCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show totals and the category breakdown",
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
			return report.WriteSummary(cmd.OutOrStdout(), summary.Summarize(txs))
		},
	}
}

func newAdviseCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "advise",
		Short: "Show saving tips for the top spending category",
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
			return advisor.WriteAdvice(cmd.OutOrStdout(), summary.Summarize(txs))
		},
	}
}
