package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// DefaultCategory is used when a transaction is recorded without a category.
	DefaultCategory = "Other"
	// DefaultDescription is used when a transaction is recorded without a description.
	DefaultDescription = "No description"
	// DateFormat is the on-disk and prompt format for transaction dates.
	DateFormat = "2006-01-02"
)

// Transaction is a single expense row in the store.
type Transaction struct {
	Date        time.Time       // calendar date, time-of-day is always zero
	Category    string          // case-sensitive
	Amount      decimal.Decimal // always > 0
	Description string
}

// NewTransaction builds a Transaction, applying the category and description
// defaults and truncating date to midnight UTC. It does not check the amount;
// use Validate for that.
func NewTransaction(date time.Time, category string, amount decimal.Decimal, description string) Transaction {
	category = strings.TrimSpace(category)
	if category == "" {
		category = DefaultCategory
	}
	description = strings.TrimSpace(description)
	if description == "" {
		description = DefaultDescription
	}
	return Transaction{
		Date:        Day(date),
		Category:    category,
		Amount:      amount,
		Description: description,
	}
}

// Validate checks the record invariants: positive amount, set date,
// non-empty category and description.
func (t Transaction) Validate() error {
	if t.Date.IsZero() {
		return &ValidationError{Field: "date", Err: ErrRequired}
	}
	if !t.Amount.IsPositive() {
		return &ValidationError{Field: "amount", Value: t.Amount.String(), Err: ErrNotPositive}
	}
	if t.Category == "" {
		return &ValidationError{Field: "category", Err: ErrRequired}
	}
	if t.Description == "" {
		return &ValidationError{Field: "description", Err: ErrRequired}
	}
	return nil
}

// Day strips the time-of-day from t, keeping the calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
