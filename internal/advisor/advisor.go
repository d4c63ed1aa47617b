// Package advisor maps the dominant spending category to money-saving tips.
package advisor

import (
	"fmt"
	"io"
	"strings"

	"github.com/spendlog-dev/spendlog/internal/summary"
)

// TipsPerCategory is the number of tips returned for any category.
const TipsPerCategory = 4

// Advice is the tip list for a category plus the general advice block.
type Advice struct {
	Category string
	Tips     []string
	General  []string
}

// Lines returns the category tips followed by the general advice.
func (a Advice) Lines() []string {
	out := make([]string, 0, len(a.Tips)+len(a.General))
	out = append(out, a.Tips...)
	return append(out, a.General...)
}

var tips = map[string][TipsPerCategory]string{
	"Food": {
		"Cook at home more often - it can save up to 60% compared to eating out",
		"Plan your meals weekly to reduce impulse purchases",
		"Buy non-perishable groceries in bulk",
		"Drink water instead of beverages when dining out",
	},
	"Transport": {
		"Consider public transport or carpooling to reduce costs",
		"Bike or walk for short distances - good for your health too",
		"Maintain your vehicle regularly to improve fuel efficiency",
		"Compare ride-sharing prices before booking",
	},
	"Shopping": {
		"Wait 24 hours before making non-essential purchases",
		"Use cashback and rewards programs",
		"Compare prices online before buying",
		"Shop during sales and use discount codes",
	},
	"Entertainment": {
		"Consider sharing streaming subscriptions with family",
		"Look for free or low-cost entertainment alternatives",
		"Use student or senior discounts where they apply",
		"Host game nights at home instead of going out",
	},
	"Bills": {
		"Switch to energy-efficient appliances to lower electricity bills",
		"Review and negotiate your subscription services annually",
		"Adjust thermostat settings to save on heating and cooling",
		"Track usage patterns to identify saving opportunities",
	},
	"Healthcare": {
		"Ask for generic medications when possible",
		"Use preventive care to avoid costly treatments",
		"Check whether your insurance covers wellness programs",
		"Compare prices at different pharmacies",
	},
}

var fallback = [TipsPerCategory]string{
	"Track your expenses regularly to identify patterns",
	"Set a monthly budget for this category",
	"Try to reduce spending by 10-15% next month",
	"Use apps to find better deals and discounts",
}

var general = [...]string{
	"Follow the 50/30/20 rule: 50% needs, 30% wants, 20% savings",
	"Build an emergency fund (3-6 months of expenses)",
	"Review your spending weekly to stay on track",
}

// Advise returns the tips for category. Lookup is exact and case-sensitive;
// unknown categories get the generic list.
func Advise(category string) Advice {
	list, ok := tips[category]
	if !ok {
		list = fallback
	}
	return Advice{
		Category: category,
		Tips:     append([]string(nil), list[:]...),
		General:  append([]string(nil), general[:]...),
	}
}

// Categories returns the categories that have dedicated tips.
func Categories() []string {
	return []string{"Food", "Transport", "Shopping", "Entertainment", "Bills", "Healthcare"}
}

// WriteAdvice prints the advisor screen for s. It returns
// summary.ErrNoTransactions when s is empty.
func WriteAdvice(w io.Writer, s summary.Summary) error {
	top, ok := s.Top()
	if !ok {
		return summary.ErrNoTransactions
	}
	advice := Advise(top.Category)

	var b strings.Builder
	fmt.Fprintf(&b, "Your dominant spending category: %s\n", top.Category)
	fmt.Fprintf(&b, "Amount spent: $%s (%s%% of total)\n", top.Amount.StringFixed(2), top.Percent.StringFixed(1))
	b.WriteString("\nPERSONALIZED MONEY-SAVING TIPS:\n")
	b.WriteString(strings.Repeat("-", 50) + "\n")
	for i, line := range advice.Lines() {
		switch n := i - len(advice.Tips); {
		case n < 0:
			fmt.Fprintf(&b, "%d. %s\n", i+1, line)
		case n == 0:
			b.WriteString("\nGeneral Advice:\n")
			fallthrough
		default:
			fmt.Fprintf(&b, "   • %s\n", line)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
