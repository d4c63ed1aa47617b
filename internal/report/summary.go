package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/spendlog-dev/spendlog/internal/summary"
)

const summaryRule = 50

// WriteSummary prints the totals block and the category breakdown.
func WriteSummary(w io.Writer, s summary.Summary) error {
	rule := strings.Repeat("-", summaryRule)

	lines := []string{
		fmt.Sprintf("Total Spending: $%s", s.Total.StringFixed(2)),
		fmt.Sprintf("Average Transaction: $%s", s.Average.StringFixed(2)),
		fmt.Sprintf("Top Category: %s", s.TopCategory),
		fmt.Sprintf("Total Transactions: %d", s.Count),
		"",
		rule,
		"CATEGORY-WISE BREAKDOWN",
		rule,
		fmt.Sprintf("%-20s %-15s %-10s", "Category", "Amount", "Percentage"),
		rule,
	}
	for _, c := range s.Categories {
		lines = append(lines, fmt.Sprintf("%-20s %-15s %5s%%",
			c.Category, "$"+c.Amount.StringFixed(2), c.Percent.StringFixed(1)))
	}
	lines = append(lines, rule)

	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}
