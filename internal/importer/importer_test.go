package importer

import (
	"os"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readChase(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile("testdata/chase_checking.csv")
	require.NoError(t, err)
	return string(data)
}

func TestChaseParser_Parse(t *testing.T) {
	p := &ChaseParser{}
	txns, err := p.Parse(strings.NewReader(readChase(t)))
	require.NoError(t, err)
	require.Len(t, txns, 6)

	assert.Equal(t, "WHOLE FOODS MARKET #123", txns[0].Description)
	assert.Equal(t, "-54.20", txns[0].Amount.StringFixed(2))
	assert.Equal(t, "DEBIT_CARD", txns[0].Type)
	assert.Equal(t, "2025-01-03", txns[0].Date.Format("2006-01-02"))

	assert.Equal(t, "CITY POWER, UTILITY", txns[2].Description)
	assert.True(t, txns[3].Amount.IsPositive())
}

func TestChaseParser_EmptyFile(t *testing.T) {
	p := &ChaseParser{}
	txns, err := p.Parse(strings.NewReader("Details,Posting Date,Description,Amount,Type,Balance,Check or Slip #\n"))
	require.NoError(t, err)
	assert.Nil(t, txns)
}

func TestChaseParser_BadDate(t *testing.T) {
	csv := "Details,Posting Date,Description,Amount,Type,Balance,Check or Slip #\nDEBIT,NOTADATE,desc,-4.00,ACH_DEBIT,100.00,\n"
	_, err := (&ChaseParser{}).Parse(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing date")
}

func TestChaseParser_BadAmount(t *testing.T) {
	csv := "Details,Posting Date,Description,Amount,Type,Balance,Check or Slip #\nDEBIT,01/03/2025,desc,NOTANUMBER,ACH_DEBIT,100.00,\n"
	_, err := (&ChaseParser{}).Parse(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing amount")
}

func TestChaseParser_ColumnsByName(t *testing.T) {
	csv := "Type,Amount,Posting Date,Description,Check or Slip #\n" +
		"CHECK_PAID,-120.00,02/04/2025,CHECK     1042,1042\n" +
		"DEBIT_CARD,-8.50,02/05/2025,  CORNER   CAFE  ,\n"
	txns, err := (&ChaseParser{}).Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txns, 2)

	assert.Equal(t, "CHECK 1042 (check 1042)", txns[0].Description)
	assert.Equal(t, "CHECK_PAID", txns[0].Type)
	assert.Equal(t, "2025-02-04", txns[0].Date.Format("2006-01-02"))
	assert.Equal(t, "CORNER CAFE", txns[1].Description)
}

func TestChaseParser_MissingColumns(t *testing.T) {
	_, err := (&ChaseParser{}).Parse(strings.NewReader("Date,Description,Amount\n2025-02-01,Rent,-900\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing columns Posting Date, Type")
}

func TestChaseParser_NoInput(t *testing.T) {
	txns, err := (&ChaseParser{}).Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Nil(t, txns)
}

func TestGenericParser(t *testing.T) {
	csv := "Date,Description,Amount\n2025-02-01, Rent, -900\n2025-02-02,Refund,12.5\n"
	txns, err := (&GenericParser{}).Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.Equal(t, "Rent", txns[0].Description)
	assert.True(t, txns[0].Amount.Equal(decimal.NewFromInt(-900)))
}

func TestGenericParser_BadDate(t *testing.T) {
	_, err := (&GenericParser{}).Parse(strings.NewReader("Date,Description,Amount\n02/01/2025,Rent,-900\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestToTransactions(t *testing.T) {
	bank, err := (&ChaseParser{}).Parse(strings.NewReader(readChase(t)))
	require.NoError(t, err)

	res := ToTransactions(bank, "Imported")
	assert.Equal(t, 1, res.Skipped, "the payroll credit is skipped")
	require.Len(t, res.Transactions, 5)

	first := res.Transactions[0]
	assert.Equal(t, "Imported", first.Category)
	assert.True(t, first.Amount.Equal(decimal.RequireFromString("54.20")))
	assert.Equal(t, "WHOLE FOODS MARKET #123", first.Description)
	for _, tx := range res.Transactions {
		assert.NoError(t, tx.Validate())
	}
}

func TestToTransactions_DefaultCategory(t *testing.T) {
	bank, err := (&GenericParser{}).Parse(strings.NewReader("Date,Description,Amount\n2025-02-01,,-3\n"))
	require.NoError(t, err)

	res := ToTransactions(bank, "")
	require.Len(t, res.Transactions, 1)
	assert.Equal(t, "Other", res.Transactions[0].Category)
	assert.Equal(t, "No description", res.Transactions[0].Description)
}

func TestRegistry_GetUnknown(t *testing.T) {
	r := NewRegistry()
	assert.Nil(t, r.Get("nonexistent"))
}

func TestRegistry_CaseInsensitive(t *testing.T) {
	r := NewRegistry()
	r.Register(&ChaseParser{})
	assert.NotNil(t, r.Get("Chase"))
	assert.NotNil(t, r.Get("CHASE"))
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	r := NewRegistry()
	r.Register(&ChaseParser{})
	assert.Panics(t, func() { r.Register(&ChaseParser{}) })
}

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.Equal(t, []string{"chase", "generic"}, r.Formats())
}

func TestRegistry_ParseUnknownFormat(t *testing.T) {
	_, err := DefaultRegistry().Parse("ofx", strings.NewReader(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chase, generic")
}
