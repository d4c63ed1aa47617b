package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/spendlog-dev/spendlog/internal/advisor"
	"github.com/spendlog-dev/spendlog/internal/chart"
	"github.com/spendlog-dev/spendlog/internal/model"
	"github.com/spendlog-dev/spendlog/internal/report"
	"github.com/spendlog-dev/spendlog/internal/summary"
)

const emptyStoreMsg = "\nNo transactions found. Add some transactions first!"

// Add prompts for a transaction and appends it to the store.
func (s *Session) Add() error {
	s.section("ADD NEW TRANSACTION")

	in, err := s.prompt("Enter date (YYYY-MM-DD) or press Enter for today: ")
	if err != nil {
		return err
	}
	date, valid := model.ParseDateOr(in, s.now())
	if !valid {
		s.warn.Fprintln(s.out, "Invalid date format. Using today's date.")
	}

	fmt.Fprintf(s.out, "\nSuggested categories: %s\n", strings.Join(s.catalog.All(), ", "))
	category, err := s.prompt("Enter category: ")
	if err != nil {
		return err
	}
	if hint, ok := s.catalog.Suggest(category); ok {
		s.warn.Fprintf(s.out, "Did you mean %q? Keeping %q.\n", hint, category)
	}

	amount, err := s.promptAmount()
	if err != nil {
		return err
	}

	desc, err := s.prompt("Enter description: ")
	if err != nil {
		return err
	}

	tx := model.NewTransaction(date, category, amount, desc)
	if err := s.store.Append(tx); err != nil {
		return err
	}
	s.log.Debug().Str("category", tx.Category).Str("amount", tx.Amount.String()).Msg("transaction appended")

	s.ok.Fprintln(s.out, "\nTransaction added successfully!")
	fmt.Fprintf(s.out, "  Date: %s\n", tx.Date.Format(model.DateFormat))
	fmt.Fprintf(s.out, "  Category: %s\n", tx.Category)
	fmt.Fprintf(s.out, "  Amount: $%s\n", tx.Amount.StringFixed(2))
	fmt.Fprintf(s.out, "  Description: %s\n", tx.Description)
	return nil
}

// promptAmount re-prompts until a strictly positive number is entered.
func (s *Session) promptAmount() (decimal.Decimal, error) {
	for {
		in, err := s.prompt("Enter amount ($): ")
		if err != nil {
			return decimal.Zero, err
		}
		d, err := model.ParseAmount(in)
		switch {
		case err == nil:
			return d, nil
		case errors.Is(err, model.ErrNotPositive):
			s.bad.Fprintln(s.out, "Amount must be greater than 0. Try again.")
		default:
			s.bad.Fprintln(s.out, "Invalid amount. Please enter a number.")
		}
	}
}

// List prints every stored transaction.
func (s *Session) List() error {
	s.section("ALL TRANSACTIONS")
	txs, err := s.load()
	if err != nil || len(txs) == 0 {
		return err
	}
	fmt.Fprintln(s.out)
	return report.WriteListing(s.out, txs)
}

// Summary prints totals and the category breakdown.
func (s *Session) Summary() error {
	s.section("SPENDING SUMMARY")
	txs, err := s.load()
	if err != nil || len(txs) == 0 {
		return err
	}
	fmt.Fprintln(s.out)
	return report.WriteSummary(s.out, summary.Summarize(txs))
}

// Visualize renders the spending charts to the configured path.
func (s *Session) Visualize() error {
	s.section("SPENDING VISUALIZATION")
	txs, err := s.load()
	if err != nil || len(txs) == 0 {
		return err
	}
	pie, bar := report.ChartSeries(txs)
	if err := chart.WriteFile(s.chartPath, pie, bar); err != nil {
		return fmt.Errorf("writing chart: %w", err)
	}
	s.log.Debug().Str("path", s.chartPath).Int("categories", len(pie)).Msg("chart written")

	s.ok.Fprintln(s.out, "\nVisualization created successfully!")
	fmt.Fprintf(s.out, "Chart saved as: %s\n", s.chartPath)
	return nil
}

// Advise prints tips for the dominant spending category.
func (s *Session) Advise() error {
	s.section("FINANCIAL ADVISOR")
	txs, err := s.load()
	if err != nil || len(txs) == 0 {
		return err
	}
	fmt.Fprintln(s.out)
	return advisor.WriteAdvice(s.out, summary.Summarize(txs))
}

// load reads the store and prints the empty-store notice when there is
// nothing to show.
func (s *Session) load() ([]model.Transaction, error) {
	txs, err := s.store.ReadAll()
	if err != nil {
		return nil, err
	}
	s.log.Debug().Int("rows", len(txs)).Str("path", s.store.Path()).Msg("store read")
	if len(txs) == 0 {
		s.warn.Fprintln(s.out, emptyStoreMsg)
	}
	return txs, nil
}
