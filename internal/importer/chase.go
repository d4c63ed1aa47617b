package importer

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

// ChaseParser parses Chase checking account CSV downloads. Columns are
// located by header name, so reordered or extra columns are tolerated.
type ChaseParser struct{}

const chaseDateFormat = "01/02/2006"

// Chase header names.
const (
	chaseDate   = "Posting Date"
	chaseDesc   = "Description"
	chaseAmount = "Amount"
	chaseType   = "Type"
	chaseCheck  = "Check or Slip #"
)

var chaseRequired = []string{chaseDate, chaseDesc, chaseAmount, chaseType}

// Format returns the parser name.
func (p *ChaseParser) Format() string { return "chase" }

// Parse reads a Chase CSV and returns BankTransactions.
func (p *ChaseParser) Parse(r io.Reader) ([]model.BankTransaction, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading chase CSV: %w", err)
	}
	cols, err := chaseColumns(header)
	if err != nil {
		return nil, err
	}

	var txns []model.BankTransaction
	for row := 2; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return txns, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading chase CSV: %w", err)
		}
		txn, err := cols.parse(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		txns = append(txns, txn)
	}
}

// chaseIndex maps header names to column positions.
type chaseIndex map[string]int

func chaseColumns(header []string) (chaseIndex, error) {
	idx := make(chaseIndex, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}
	var missing []string
	for _, name := range chaseRequired {
		if _, ok := idx[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("not a chase export: missing columns %s", strings.Join(missing, ", "))
	}
	return idx, nil
}

func (idx chaseIndex) get(rec []string, name string) string {
	i, ok := idx[name]
	if !ok || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

func (idx chaseIndex) parse(rec []string) (model.BankTransaction, error) {
	raw := idx.get(rec, chaseDate)
	date, err := time.Parse(chaseDateFormat, raw)
	if err != nil {
		return model.BankTransaction{}, fmt.Errorf("parsing date %q: %w", raw, err)
	}

	raw = idx.get(rec, chaseAmount)
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return model.BankTransaction{}, fmt.Errorf("parsing amount %q: %w", raw, err)
	}

	// Chase pads descriptions with runs of spaces.
	desc := strings.Join(strings.Fields(idx.get(rec, chaseDesc)), " ")
	if check := idx.get(rec, chaseCheck); check != "" {
		desc = fmt.Sprintf("%s (check %s)", desc, check)
	}

	return model.BankTransaction{
		Date:        date,
		Description: desc,
		Amount:      amount,
		Type:        idx.get(rec, chaseType),
	}, nil
}
