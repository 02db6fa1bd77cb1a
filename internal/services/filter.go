package services

import (
	"sort"

	"github.com/sbilibin2017/gw-finance-tracker/internal/models"
	"github.com/shopspring/decimal"
)

// FilterTransactions returns the transactions matching every predicate set in
// filter, newest first. Transactions sharing a date keep their input order.
// A nil filter matches everything. The result is never nil.
func FilterTransactions(txs []models.Transaction, filter *models.TransactionFilter) []models.Transaction {
	out := make([]models.Transaction, 0, len(txs))
	for _, t := range txs {
		if matches(t, filter) {
			out = append(out, t)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

func matches(t models.Transaction, f *models.TransactionFilter) bool {
	if f == nil {
		return true
	}
	if f.Type != nil && t.Type != *f.Type {
		return false
	}
	if f.Category != nil && t.Category != *f.Category {
		return false
	}
	if f.DateFrom != nil && models.DateOnly(t.Date).Before(models.DateOnly(*f.DateFrom)) {
		return false
	}
	if f.DateTo != nil && models.DateOnly(t.Date).After(models.DateOnly(*f.DateTo)) {
		return false
	}
	return true
}

// CalculateBalance sums the stored (already signed) amounts.
func CalculateBalance(txs []models.Transaction) decimal.Decimal {
	balance := decimal.Zero
	for _, t := range txs {
		balance = balance.Add(t.Amount)
	}
	return balance
}

// Summarize aggregates inflows, outflows and per-category net amounts.
func Summarize(txs []models.Transaction) models.Summary {
	s := models.Summary{
		Count:      len(txs),
		Inflows:    decimal.Zero,
		Outflows:   decimal.Zero,
		ByCategory: make(map[models.Category]decimal.Decimal),
	}
	for _, t := range txs {
		if t.Amount.IsNegative() {
			s.Outflows = s.Outflows.Add(t.Amount)
		} else {
			s.Inflows = s.Inflows.Add(t.Amount)
		}
		s.ByCategory[t.Category] = s.ByCategory[t.Category].Add(t.Amount)
	}
	s.Balance = s.Inflows.Add(s.Outflows)
	return s
}
