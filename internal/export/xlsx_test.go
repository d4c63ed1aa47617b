package export

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/spendlog-dev/spendlog/internal/model"
	"github.com/spendlog-dev/spendlog/internal/summary"
)

func sample() []model.Transaction {
	day := time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC)
	return []model.Transaction{
		{Date: day, Category: "Food", Amount: decimal.RequireFromString("10"), Description: "Lunch"},
		{Date: day, Category: "Food", Amount: decimal.RequireFromString("20"), Description: "Dinner"},
		{Date: day, Category: "Transport", Amount: decimal.RequireFromString("5"), Description: "Bus"},
	}
}

func TestWriteXLSX(t *testing.T) {
	txs := sample()
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, txs, summary.Summarize(txs)))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{TransactionsSheet, SummarySheet}, f.GetSheetList())

	rows, err := f.GetRows(TransactionsSheet, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Date", "Category", "Amount", "Description"}, rows[0])
	assert.Equal(t, []string{"2025-01-03", "Food", "10", "Lunch"}, rows[1])
	assert.Equal(t, "Transport", rows[3][1])

	sum, err := f.GetRows(SummarySheet, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.Len(t, sum, 4)
	assert.Equal(t, []string{"Food", "30", "85.7"}, sum[1])
	assert.Equal(t, []string{"Transport", "5", "14.3"}, sum[2])
	assert.Equal(t, []string{"Total", "35"}, sum[3])
}

func TestWriteXLSXEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, nil, summary.Summarize(nil)))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(TransactionsSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1, "header only")
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "spending.xlsx")
	txs := sample()
	require.NoError(t, WriteFile(path, txs, summary.Summarize(txs)))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	v, err := f.GetCellValue(TransactionsSheet, "D3")
	require.NoError(t, err)
	assert.Equal(t, "Dinner", v)
}
