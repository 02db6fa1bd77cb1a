package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-finance-tracker/internal/models"
	"github.com/shopspring/decimal"
)

// Shared error messages
const (
	msgInvalidBody   = "Invalid request body"
	msgInvalidID     = "Invalid transaction id"
	msgNotFound      = "Transaction not found"
	msgInternalError = "Internal server error"
	msgInvalidDate   = "Invalid date"
)

var errInvalidDate = errors.New("invalid date")

// TransactionRequest represents the JSON body for registering or updating a transaction
// swagger:model TransactionRequest
type TransactionRequest struct {
	// Description
	// required: true
	// default: Groceries
	Description string `json:"description"`

	// Positive amount; outflows are stored as negative values
	// required: true
	// default: 120.50
	Amount decimal.Decimal `json:"amount" swaggertype:"string"`

	// Date as RFC 3339 or YYYY-MM-DD
	// required: true
	// default: 2024-03-01
	Date string `json:"date"`

	// Transaction type
	// required: true
	// default: Outflow
	Type models.TransactionType `json:"type" swaggertype:"string" enums:"Inflow,Outflow"`

	// Category
	// required: true
	// default: Food
	Category models.Category `json:"category" swaggertype:"string" enums:"Salary,Rent,Food,Leisure,Transport,Health,Education,Other"`
}

// TransactionResponse represents a stored transaction
// swagger:model TransactionResponse
type TransactionResponse struct {
	// Transaction ID
	ID string `json:"id"`

	// Description
	Description string `json:"description"`

	// Signed amount: negative for outflows
	Amount string `json:"amount"`

	// Date in RFC 3339
	Date string `json:"date"`

	// Transaction type
	Type string `json:"type"`

	// Category
	Category string `json:"category"`
}

// ErrorResponse represents an error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Invalid request body
	Error string `json:"error"`
}

func newTransactionResponse(t models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID.String(),
		Description: t.Description,
		Amount:      t.Amount.String(),
		Date:        t.Date.Format(time.RFC3339),
		Type:        string(t.Type),
		Category:    string(t.Category),
	}
}

// toTransaction converts a request into a validated transaction.
// Amounts must be positive at the boundary; the store applies the sign.
func (req TransactionRequest) toTransaction() (*models.Transaction, error) {
	if !req.Amount.IsPositive() {
		return nil, models.ErrNonPositiveAmount
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	return models.NewTransaction(req.Description, req.Amount, date, req.Type, req.Category)
}

func decodeTransactionRequest(r *http.Request) (*models.Transaction, error) {
	var req TransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, err
	}
	return req.toTransaction()
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(models.DateLayout, s); err == nil {
		return t, nil
	}
	return time.Time{}, errInvalidDate
}

func parseID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}

// parseFilter reads the optional type, category, dateFrom and dateTo query parameters.
func parseFilter(r *http.Request) (*models.TransactionFilter, error) {
	q := r.URL.Query()
	f := &models.TransactionFilter{}

	if v := q.Get("type"); v != "" {
		t, err := models.ParseTransactionType(v)
		if err != nil {
			return nil, err
		}
		f.Type = &t
	}
	if v := q.Get("category"); v != "" {
		c, err := models.ParseCategory(v)
		if err != nil {
			return nil, err
		}
		f.Category = &c
	}
	if v := q.Get("dateFrom"); v != "" {
		d, err := time.Parse(models.DateLayout, v)
		if err != nil {
			return nil, errInvalidDate
		}
		f.DateFrom = &d
	}
	if v := q.Get("dateTo"); v != "" {
		d, err := time.Parse(models.DateLayout, v)
		if err != nil {
			return nil, errInvalidDate
		}
		f.DateTo = &d
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// requestErrorMessage maps a decoding or validation failure to a client message.
func requestErrorMessage(err error) string {
	switch {
	case errors.Is(err, models.ErrInvalidArgument):
		return err.Error()
	case errors.Is(err, errInvalidDate):
		return msgInvalidDate
	default:
		return msgInvalidBody
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
