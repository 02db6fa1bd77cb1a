package handlers

//go:generate mockgen -source=summary.go -destination=summary_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-finance-tracker/internal/logger"
	"github.com/sbilibin2017/gw-finance-tracker/internal/models"
)

// Summarizer defines the interface that the service must implement.
type Summarizer interface {
	Summary(ctx context.Context, filter *models.TransactionFilter) (models.Summary, error)
}

// SummaryResponse represents totals over a filtered set of transactions
// swagger:model SummaryResponse
type SummaryResponse struct {
	// Number of transactions
	Count int `json:"count"`

	// Sum of inflows
	Inflows string `json:"inflows"`

	// Sum of outflows (negative)
	Outflows string `json:"outflows"`

	// Inflows plus outflows
	Balance string `json:"balance"`

	// Net amount per category
	ByCategory map[string]string `json:"by_category"`
}

// NewSummaryHandler returns an HTTP handler aggregating filtered transactions.
// @Summary Summarize transactions
// @Description Totals inflows, outflows and per-category amounts over the transactions matching the filter.
// @Tags balance
// @Produce json
// @Param type query string false "Transaction type" Enums(Inflow, Outflow)
// @Param category query string false "Category" Enums(Salary, Rent, Food, Leisure, Transport, Health, Education, Other)
// @Param dateFrom query string false "Inclusive start date (YYYY-MM-DD)"
// @Param dateTo query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} handlers.SummaryResponse "Summary"
// @Failure 400 {object} handlers.ErrorResponse "Invalid filter"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /summary [get]
func NewSummaryHandler(svc Summarizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		filter, err := parseFilter(r)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: requestErrorMessage(err)})
			return
		}

		s, err := svc.Summary(ctx, filter)
		if err != nil {
			if errors.Is(err, models.ErrInvalidArgument) {
				writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
				return
			}
			logger.FromContext(ctx).Errorw("failed to summarize transactions", "error", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: msgInternalError})
			return
		}

		byCategory := make(map[string]string, len(s.ByCategory))
		for c, amount := range s.ByCategory {
			byCategory[string(c)] = amount.String()
		}

		writeJSON(w, http.StatusOK, SummaryResponse{
			Count:      s.Count,
			Inflows:    s.Inflows.String(),
			Outflows:   s.Outflows.String(),
			Balance:    s.Balance.String(),
			ByCategory: byCategory,
		})
	}
}
