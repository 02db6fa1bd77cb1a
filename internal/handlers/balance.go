package handlers

//go:generate mockgen -source=balance.go -destination=balance_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"
)

// BalanceReader defines the interface that the service must implement.
type BalanceReader interface {
	Balance(ctx context.Context) decimal.Decimal
}

// BalanceResponse represents the current balance
// swagger:model BalanceResponse
type BalanceResponse struct {
	// Sum of all stored amounts
	// default: 900
	Balance string `json:"balance"`
}

// NewBalanceHandler returns an HTTP handler for the running balance.
// @Summary Get balance
// @Description Returns the sum of all transactions. Outflows are already negative.
// @Tags balance
// @Produce json
// @Success 200 {object} handlers.BalanceResponse "Balance"
// @Router /balance [get]
func NewBalanceHandler(svc BalanceReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		balance := svc.Balance(r.Context())
		writeJSON(w, http.StatusOK, BalanceResponse{Balance: balance.String()})
	}
}
