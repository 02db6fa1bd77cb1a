package handlers

//go:generate mockgen -source=delete.go -destination=delete_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// Deleter defines the interface that the service must implement.
type Deleter interface {
	Delete(ctx context.Context, id uuid.UUID) bool
}

// NewDeleteHandler returns an HTTP handler removing a transaction.
// @Summary Delete a transaction
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 204 "Transaction deleted"
// @Failure 400 {object} handlers.ErrorResponse "Invalid transaction id"
// @Failure 404 {object} handlers.ErrorResponse "Transaction not found"
// @Router /transactions/{id} [delete]
func NewDeleteHandler(svc Deleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msgInvalidID})
			return
		}

		if !svc.Delete(r.Context(), id) {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: msgNotFound})
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
