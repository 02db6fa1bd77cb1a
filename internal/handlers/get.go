package handlers

//go:generate mockgen -source=get.go -destination=get_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-finance-tracker/internal/models"
)

// Getter defines the interface that the service must implement.
type Getter interface {
	GetByID(ctx context.Context, id uuid.UUID) (models.Transaction, bool)
}

// NewGetHandler returns an HTTP handler fetching a single transaction.
// @Summary Get a transaction
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} handlers.TransactionResponse "Transaction"
// @Failure 400 {object} handlers.ErrorResponse "Invalid transaction id"
// @Failure 404 {object} handlers.ErrorResponse "Transaction not found"
// @Router /transactions/{id} [get]
func NewGetHandler(svc Getter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msgInvalidID})
			return
		}

		t, ok := svc.GetByID(r.Context(), id)
		if !ok {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: msgNotFound})
			return
		}

		writeJSON(w, http.StatusOK, newTransactionResponse(t))
	}
}
