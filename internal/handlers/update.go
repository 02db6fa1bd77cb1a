package handlers

//go:generate mockgen -source=update.go -destination=update_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-finance-tracker/internal/logger"
	"github.com/sbilibin2017/gw-finance-tracker/internal/models"
)

// Updater defines the interface that the service must implement.
type Updater interface {
	Update(ctx context.Context, t *models.Transaction) (models.Transaction, bool, error)
}

// NewUpdateHandler returns an HTTP handler replacing every field of a transaction.
// @Summary Update a transaction
// @Description Replaces description, amount, date, type and category of an existing transaction. The ID never changes.
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param request body handlers.TransactionRequest true "Transaction"
// @Success 200 {object} handlers.TransactionResponse "Transaction updated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "Transaction not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /transactions/{id} [put]
func NewUpdateHandler(svc Updater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromContext(ctx)

		id, err := parseID(r)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msgInvalidID})
			return
		}

		tx, err := decodeTransactionRequest(r)
		if err != nil {
			log.Warnw("invalid update request", "id", id, "error", err)
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: requestErrorMessage(err)})
			return
		}
		tx.ID = id

		updated, ok, err := svc.Update(ctx, tx)
		switch {
		case errors.Is(err, models.ErrInvalidArgument):
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case err != nil:
			log.Errorw("failed to update transaction", "id", id, "error", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: msgInternalError})
		case !ok:
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: msgNotFound})
		default:
			writeJSON(w, http.StatusOK, newTransactionResponse(updated))
		}
	}
}
