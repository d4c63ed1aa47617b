package categories

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/spendlog-dev/spendlog/internal/advisor"
	"github.com/spendlog-dev/spendlog/internal/model"
)

// maxSuggestDistance is the largest edit distance that still yields a hint.
const maxSuggestDistance = 2

// Defaults returns the suggested categories offered when adding a transaction.
func Defaults() []string {
	return append(advisor.Categories(), model.DefaultCategory)
}

// Catalog provides lookup over the suggested categories.
type Catalog struct {
	names  []string
	byName map[string]bool
}

// NewCatalog creates a Catalog. Empty and duplicate names are dropped and
// an empty list falls back to Defaults.
func NewCatalog(names []string) *Catalog {
	c := &Catalog{byName: make(map[string]bool, len(names))}
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" || c.byName[n] {
			continue
		}
		c.byName[n] = true
		c.names = append(c.names, n)
	}
	if len(c.names) == 0 {
		return NewCatalog(Defaults())
	}
	return c
}

// All returns the suggested categories in display order.
func (c *Catalog) All() []string {
	return c.names
}

// Known reports whether name is exactly one of the suggested categories.
func (c *Catalog) Known(name string) bool {
	return c.byName[name]
}

// Suggest returns the closest suggested category to name when name is not
// an exact match but is within a small edit distance (ignoring case).
func (c *Catalog) Suggest(name string) (string, bool) {
	if name == "" || c.Known(name) {
		return "", false
	}
	lower := strings.ToLower(name)
	best, bestDist := "", maxSuggestDistance+1
	for _, n := range c.names {
		d := levenshtein.ComputeDistance(lower, strings.ToLower(n))
		if d < bestDist {
			best, bestDist = n, d
		}
	}
	if best == "" {
		return "", false
	}
	return best, true
}
