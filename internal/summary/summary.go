// Package summary computes spending aggregates over a set of transactions.
// Everything here is recomputed from the full slice on every call.
package summary

import (
	"errors"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/spendlog-dev/spendlog/internal/model"
)

// NoCategory is reported as the top category of an empty set.
const NoCategory = "N/A"

// ErrNoTransactions is returned when an aggregate is undefined for an empty set.
var ErrNoTransactions = errors.New("no transactions")

var hundred = decimal.NewFromInt(100)

// CategoryTotal is the summed amount of one category.
type CategoryTotal struct {
	Category string
	Amount   decimal.Decimal
}

// Total returns the sum of all amounts, zero for an empty set.
func Total(txs []model.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		total = total.Add(tx.Amount)
	}
	return total
}

// CategoryTotals groups amounts by category and sorts the groups by amount,
// largest first. Equal amounts keep the order in which their category first
// appeared in txs.
func CategoryTotals(txs []model.Transaction) []CategoryTotal {
	sums := make(map[string]decimal.Decimal)
	var order []string
	for _, tx := range txs {
		if _, seen := sums[tx.Category]; !seen {
			order = append(order, tx.Category)
		}
		sums[tx.Category] = sums[tx.Category].Add(tx.Amount)
	}

	totals := make([]CategoryTotal, len(order))
	for i, c := range order {
		totals[i] = CategoryTotal{Category: c, Amount: sums[c]}
	}
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Amount.GreaterThan(totals[j].Amount)
	})
	return totals
}

// Average returns the mean transaction amount.
func Average(txs []model.Transaction) (decimal.Decimal, error) {
	if len(txs) == 0 {
		return decimal.Zero, ErrNoTransactions
	}
	return Total(txs).Div(decimal.NewFromInt(int64(len(txs)))), nil
}

// TopCategory returns the category with the largest total, or NoCategory.
func TopCategory(txs []model.Transaction) string {
	totals := CategoryTotals(txs)
	if len(totals) == 0 {
		return NoCategory
	}
	return totals[0].Category
}

// Percentage returns amount as a percentage of total. A zero total yields zero.
func Percentage(amount, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return amount.Div(total).Mul(hundred)
}
