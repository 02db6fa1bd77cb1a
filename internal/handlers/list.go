package handlers

//go:generate mockgen -source=list.go -destination=list_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-finance-tracker/internal/logger"
	"github.com/sbilibin2017/gw-finance-tracker/internal/models"
)

// Lister defines the interface that the service must implement.
type Lister interface {
	List(ctx context.Context, filter *models.TransactionFilter) ([]models.Transaction, error)
}

// NewListHandler returns an HTTP handler listing transactions, newest first.
// @Summary List transactions
// @Description Returns the transactions matching every given filter, sorted by date descending. Dates are compared by calendar day.
// @Tags transactions
// @Produce json
// @Param type query string false "Transaction type" Enums(Inflow, Outflow)
// @Param category query string false "Category" Enums(Salary, Rent, Food, Leisure, Transport, Health, Education, Other)
// @Param dateFrom query string false "Inclusive start date (YYYY-MM-DD)"
// @Param dateTo query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {array} handlers.TransactionResponse "Transactions"
// @Failure 400 {object} handlers.ErrorResponse "Invalid filter"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /transactions [get]
func NewListHandler(svc Lister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromContext(ctx)

		filter, err := parseFilter(r)
		if err != nil {
			log.Warnw("invalid transaction filter", "query", r.URL.RawQuery, "error", err)
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: requestErrorMessage(err)})
			return
		}

		txs, err := svc.List(ctx, filter)
		if err != nil {
			if errors.Is(err, models.ErrInvalidArgument) {
				writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
				return
			}
			log.Errorw("failed to list transactions", "error", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: msgInternalError})
			return
		}

		resp := make([]TransactionResponse, 0, len(txs))
		for _, t := range txs {
			resp = append(resp, newTransactionResponse(t))
		}
		log.Debugw("transactions listed", "count", len(resp))
		writeJSON(w, http.StatusOK, resp)
	}
}
