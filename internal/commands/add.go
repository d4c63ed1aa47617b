package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/spendlog-dev/spendlog/internal/model"
)

func newAddCommand(a *app) *cobra.Command {
	var date, category, amount, description string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			day := model.Day(time.Now())
			if date != "" {
				d, err := model.ParseDate(date)
				if err != nil {
					return err
				}
				day = d
			}

			amt, err := model.ParseAmount(amount)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if hint, ok := a.catalog.Suggest(category); ok {
				fmt.Fprintf(out, "Did you mean %q? Keeping %q.\n", hint, category)
			}

			tx := model.NewTransaction(day, category, amt, description)
			if err := a.store.Append(tx); err != nil {
				return err
			}
			a.log.Debug().Str("category", tx.Category).Str("amount", tx.Amount.String()).Msg("transaction appended")

			fmt.Fprintf(out, "Added %s %s $%s %s\n",
				tx.Date.Format(model.DateFormat), tx.Category, tx.Amount.StringFixed(2), tx.Description)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "date as YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&category, "category", "", "category (default "+model.DefaultCategory+")")
	cmd.Flags().StringVar(&amount, "amount", "", "amount, greater than 0 (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&description, "description", "", "free-text description")

	return cmd
}
