package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Reasons carried by ValidationError.
var (
	ErrNotNumber   = errors.New("please enter a number")
	ErrNotPositive = errors.New("amount must be greater than 0")
	ErrBadDate     = errors.New("expected YYYY-MM-DD")
	ErrRequired    = errors.New("value is required")
)

// ValidationError describes user input that does not satisfy a record field.
type ValidationError struct {
	Field string
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// ParseAmount parses a strictly positive decimal amount.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, &ValidationError{Field: "amount", Err: ErrNotNumber}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, &ValidationError{Field: "amount", Value: s, Err: ErrNotNumber}
	}
	if !d.IsPositive() {
		return decimal.Zero, &ValidationError{Field: "amount", Value: s, Err: ErrNotPositive}
	}
	return d, nil
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	d, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, &ValidationError{Field: "date", Value: s, Err: ErrBadDate}
	}
	return d, nil
}

// ParseDateOr parses s as a date, returning fallback when s is empty.
// The bool result is false when s was non-empty but invalid, in which case
// fallback is returned as well.
func ParseDateOr(s string, fallback time.Time) (time.Time, bool) {
	if strings.TrimSpace(s) == "" {
		return Day(fallback), true
	}
	d, err := ParseDate(s)
	if err != nil {
		return Day(fallback), false
	}
	return d, true
}
