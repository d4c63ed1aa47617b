package ledger

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendlog-dev/spendlog/internal/model"
)

// Header is the CSV header of the transactions file.
const Header = "Date,Category,Amount,Description"

const (
	numFields = 4
	colDate   = 0
	colCat    = 1
	colAmount = 2
	colDesc   = 3
)

var columnNames = strings.Split(Header, ",")

// ReadTransactions reads all transactions from a transactions CSV reader.
// The first row is the header. An empty reader or a header-only file yields
// no transactions and no error.
func ReadTransactions(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			return nil, &ParseError{Row: perr.StartLine, Err: perr.Err}
		}
		return nil, fmt.Errorf("reading transactions CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}
	if records[0][colDate] != columnNames[colDate] {
		return nil, &ParseError{Row: 1, Column: "header", Value: strings.Join(records[0], ","), Err: errBadHeader}
	}

	txs := make([]model.Transaction, 0, len(records)-1)
	for i, rec := range records[1:] {
		tx, err := UnmarshalTransaction(rec)
		if err != nil {
			var pe *ParseError
			if errors.As(err, &pe) {
				pe.Row = i + 2
				return nil, pe
			}
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// WriteTransactions writes the header followed by txs.
func WriteTransactions(w io.Writer, txs []model.Transaction) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(columnNames); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, tx := range txs {
		if err := cw.Write(MarshalTransaction(tx)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// AppendTransactions appends rows to an existing transactions writer (no header).
func AppendTransactions(w io.Writer, txs []model.Transaction) error {
	cw := csv.NewWriter(w)

	for i, tx := range txs {
		if err := cw.Write(MarshalTransaction(tx)); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalTransaction converts a Transaction to a CSV row.
// The amount is written as a plain decimal, e.g. "12.5".
func MarshalTransaction(tx model.Transaction) []string {
	row := make([]string, numFields)
	row[colDate] = tx.Date.Format(model.DateFormat)
	row[colCat] = tx.Category
	row[colAmount] = tx.Amount.String()
	row[colDesc] = tx.Description
	return row
}

// UnmarshalTransaction converts a CSV row to a Transaction. Errors are
// *ParseError with Row left at zero; ReadTransactions fills it in.
func UnmarshalTransaction(record []string) (model.Transaction, error) {
	if len(record) != numFields {
		return model.Transaction{}, &ParseError{Err: fmt.Errorf("expected %d fields, got %d", numFields, len(record))}
	}

	date, err := time.Parse(model.DateFormat, record[colDate])
	if err != nil {
		return model.Transaction{}, &ParseError{Column: columnNames[colDate], Value: record[colDate], Err: err}
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(record[colAmount]))
	if err != nil {
		return model.Transaction{}, &ParseError{Column: columnNames[colAmount], Value: record[colAmount], Err: err}
	}
	if !amount.IsPositive() {
		return model.Transaction{}, &ParseError{Column: columnNames[colAmount], Value: record[colAmount], Err: model.ErrNotPositive}
	}
	if strings.TrimSpace(record[colCat]) == "" {
		return model.Transaction{}, &ParseError{Column: columnNames[colCat], Value: record[colCat], Err: model.ErrRequired}
	}

	return model.Transaction{
		Date:        date,
		Category:    record[colCat],
		Amount:      amount,
		Description: record[colDesc],
	}, nil
}
