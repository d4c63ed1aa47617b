package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/spendlog-dev/spendlog/internal/model"
)

const (
	// MaxDescription is the longest description shown in the listing before truncation.
	MaxDescription = 27
	ellipsis       = "..."
	listingRule    = 80
)

// WriteListing prints txs as a fixed-width numbered table.
func WriteListing(w io.Writer, txs []model.Transaction) error {
	rule := strings.Repeat("-", listingRule)

	if _, err := fmt.Fprintf(w, "%-5s %-12s %-15s %-10s %-30s\n", "No.", "Date", "Category", "Amount", "Description"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, rule); err != nil {
		return err
	}
	for i, tx := range txs {
		amount := "$" + tx.Amount.StringFixed(2)
		if _, err := fmt.Fprintf(w, "%-5d %-12s %-15s %-10s %-30s\n",
			i+1, tx.Date.Format(model.DateFormat), tx.Category, amount, Truncate(tx.Description, MaxDescription)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, rule); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Total transactions: %d\n", len(txs))
	return err
}

// Truncate shortens s to max runes and appends "..." when it was longer.
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + ellipsis
}
