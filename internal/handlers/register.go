package handlers

//go:generate mockgen -source=register.go -destination=register_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-finance-tracker/internal/logger"
	"github.com/sbilibin2017/gw-finance-tracker/internal/models"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, t *models.Transaction) (models.Transaction, error)
}

// NewRegisterHandler returns an HTTP handler for recording a new transaction.
// @Summary Register a transaction
// @Description Records an income or expense. The amount is sent positive; outflows are stored as negative values.
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body handlers.TransactionRequest true "Transaction"
// @Success 201 {object} handlers.TransactionResponse "Transaction registered"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /transactions [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromContext(ctx)

		tx, err := decodeTransactionRequest(r)
		if err != nil {
			log.Warnw("invalid register request", "error", err)
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: requestErrorMessage(err)})
			return
		}

		stored, err := svc.Register(ctx, tx)
		if err != nil {
			if errors.Is(err, models.ErrInvalidArgument) {
				writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
				return
			}
			log.Errorw("failed to register transaction", "error", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: msgInternalError})
			return
		}

		w.Header().Set("Location", "/api/v1/transactions/"+stored.ID.String())
		writeJSON(w, http.StatusCreated, newTransactionResponse(stored))
	}
}
