// Package txview derives filtered, sorted and aggregated views from a raw
// transaction list for display. Everything here is a pure function over its
// inputs: deterministic, re-entrant and idempotent, with no server round trip.
package txview

import (
	"strings"

	"github.com/dberezin/bankcli/internal/client/models"
)

// Filter selects transactions by type.
type Filter string

const (
	FilterAll    Filter = "all"
	FilterCredit Filter = "credit"
	FilterDebit  Filter = "debit"
)

// ParseFilter maps user input to a Filter; unknown values fall back to all.
func ParseFilter(s string) Filter {
	switch Filter(strings.ToLower(strings.TrimSpace(s))) {
	case FilterCredit:
		return FilterCredit
	case FilterDebit:
		return FilterDebit
	default:
		return FilterAll
	}
}

// recentWindow is the number of leading (most recent) transactions the
// dashboard summary tiles aggregate over.
const recentWindow = 5

// Apply keeps the transactions matching the type filter (case-insensitive)
// whose amount's textual form contains term as a substring. An empty term
// keeps everything; the search is textual, not a numeric comparison. The
// input order is preserved and the input slice is never mutated.
func Apply(list []models.Transaction, f Filter, term string) []models.Transaction {
	out := make([]models.Transaction, 0, len(list))
	for _, t := range list {
		if !matchesType(t, f) {
			continue
		}
		if term != "" && !strings.Contains(t.AmountText(), term) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func matchesType(t models.Transaction, f Filter) bool {
	if f == FilterAll {
		return true
	}
	return strings.EqualFold(string(t.Type), string(f))
}

// Summary sums the amounts of the most recent transactions (the list is
// server-ordered, most recent first), split into income (credits) and
// expenses (debits), for the dashboard tiles.
func Summary(list []models.Transaction) (income, expenses int64) {
	window := list
	if len(window) > recentWindow {
		window = window[:recentWindow]
	}
	for _, t := range window {
		switch t.Type {
		case models.TransactionCredit:
			income += t.Amount
		case models.TransactionDebit:
			expenses += t.Amount
		}
	}
	return income, expenses
}

// Recent returns the dashboard prefix of the list.
func Recent(list []models.Transaction) []models.Transaction {
	if len(list) > recentWindow {
		return list[:recentWindow]
	}
	return list
}
