package report

import (
	"github.com/shopspring/decimal"

	"github.com/spendlog-dev/spendlog/internal/model"
	"github.com/spendlog-dev/spendlog/internal/summary"
)

// Point is one category and its amount in a chart series.
type Point struct {
	Label string
	Value decimal.Decimal
}

// Series is an ordered list of chart points.
type Series []Point

// Total returns the sum of the series values.
func (s Series) Total() decimal.Decimal {
	total := decimal.Zero
	for _, p := range s {
		total = total.Add(p.Value)
	}
	return total
}

// ChartSeries returns the data for the proportion (pie) and magnitude (bar)
// panels. Both series hold the same points in descending amount order.
func ChartSeries(txs []model.Transaction) (pie, bar Series) {
	totals := summary.CategoryTotals(txs)
	pie = make(Series, len(totals))
	bar = make(Series, len(totals))
	for i, ct := range totals {
		pie[i] = Point{Label: ct.Category, Value: ct.Amount}
		bar[i] = Point{Label: ct.Category, Value: ct.Amount}
	}
	return pie, bar
}
