package summary

import (
	"github.com/shopspring/decimal"

	"github.com/spendlog-dev/spendlog/internal/model"
)

// Share is a category total together with its percentage of all spending.
type Share struct {
	CategoryTotal
	Percent decimal.Decimal
}

// Summary bundles every aggregate shown by the summary and advisor screens.
type Summary struct {
	Count       int
	Total       decimal.Decimal
	Average     decimal.Decimal // zero when Count == 0
	TopCategory string
	Categories  []Share // sorted like CategoryTotals
}

// Empty reports whether the summary covers no transactions.
func (s Summary) Empty() bool {
	return s.Count == 0
}

// Top returns the largest category share. ok is false for an empty summary.
func (s Summary) Top() (share Share, ok bool) {
	if len(s.Categories) == 0 {
		return Share{}, false
	}
	return s.Categories[0], true
}

// Summarize computes all aggregates for txs.
func Summarize(txs []model.Transaction) Summary {
	total := Total(txs)
	totals := CategoryTotals(txs)

	s := Summary{
		Count:       len(txs),
		Total:       total,
		TopCategory: NoCategory,
		Categories:  make([]Share, len(totals)),
	}
	if avg, err := Average(txs); err == nil {
		s.Average = avg
	}
	if len(totals) > 0 {
		s.TopCategory = totals[0].Category
	}
	for i, ct := range totals {
		s.Categories[i] = Share{CategoryTotal: ct, Percent: Percentage(ct.Amount, total)}
	}
	return s
}
