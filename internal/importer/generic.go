package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendlog-dev/spendlog/internal/model"
)

// GenericParser reads a minimal "Date,Description,Amount" CSV with ISO
// dates. Negative amounts are money out, as in bank exports.
type GenericParser struct{}

const genericNumFields = 3

// Format returns the parser name.
func (p *GenericParser) Format() string { return "generic" }

// Parse reads a generic CSV and returns BankTransactions.
func (p *GenericParser) Parse(r io.Reader) ([]model.BankTransaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = genericNumFields
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading generic CSV: %w", err)
	}
	if len(records) <= 1 {
		return nil, nil
	}

	var txns []model.BankTransaction
	for i, rec := range records[1:] {
		date, err := time.Parse(model.DateFormat, strings.TrimSpace(rec[0]))
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing date %q: %w", i+2, rec[0], err)
		}
		amount, err := decimal.NewFromString(strings.TrimSpace(rec[2]))
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing amount %q: %w", i+2, rec[2], err)
		}
		txns = append(txns, model.BankTransaction{Date: date, Description: rec[1], Amount: amount})
	}
	return txns, nil
}
