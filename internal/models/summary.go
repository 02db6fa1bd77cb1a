package models

import "github.com/shopspring/decimal"

// Summary aggregates a set of transactions.
type Summary struct {
	Count      int                          `json:"count"`       // Number of transactions included
	Inflows    decimal.Decimal              `json:"inflows"`     // Sum of positive amounts
	Outflows   decimal.Decimal              `json:"outflows"`    // Sum of negative amounts
	Balance    decimal.Decimal              `json:"balance"`     // Inflows + Outflows
	ByCategory map[Category]decimal.Decimal `json:"by_category"` // Net amount per category
}
