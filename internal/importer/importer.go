// Package importer turns bank statement exports into expense transactions.
package importer

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spendlog-dev/spendlog/internal/model"
)

// Parser converts a bank CSV file into BankTransactions.
type Parser interface {
	Parse(r io.Reader) ([]model.BankTransaction, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// Formats returns the registered format names, sorted.
func (r *Registry) Formats() []string {
	names := make([]string, 0, len(r.parsers))
	for k := range r.parsers {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&ChaseParser{})
	r.Register(&GenericParser{})
	return r
}

// Result is the outcome of converting bank rows into expenses.
type Result struct {
	Transactions []model.Transaction
	Skipped      int // credits and zero-amount rows
}

// ToTransactions keeps the money-out rows of bank as expenses filed under
// category. Amounts become positive; credits are counted in Skipped.
func ToTransactions(bank []model.BankTransaction, category string) Result {
	var res Result
	for _, b := range bank {
		if !b.Amount.IsNegative() {
			res.Skipped++
			continue
		}
		res.Transactions = append(res.Transactions,
			model.NewTransaction(b.Date, category, b.Amount.Abs(), b.Description))
	}
	return res
}

// Parse looks up format in r and parses src with it.
func (r *Registry) Parse(format string, src io.Reader) ([]model.BankTransaction, error) {
	p := r.Get(format)
	if p == nil {
		return nil, fmt.Errorf("unknown import format %q (known: %s)", format, strings.Join(r.Formats(), ", "))
	}
	return p.Parse(src)
}
