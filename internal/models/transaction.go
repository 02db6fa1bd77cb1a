package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxDescriptionLength is the maximum number of characters in a transaction description.
const MaxDescriptionLength = 100

// ErrInvalidArgument is the root of every validation failure.
var ErrInvalidArgument = errors.New("invalid argument")

var (
	ErrNilTransaction     = fmt.Errorf("%w: transaction is required", ErrInvalidArgument)
	ErrEmptyDescription   = fmt.Errorf("%w: description is required", ErrInvalidArgument)
	ErrDescriptionTooLong = fmt.Errorf("%w: description must not exceed %d characters", ErrInvalidArgument, MaxDescriptionLength)
	ErrZeroAmount         = fmt.Errorf("%w: amount must not be zero", ErrInvalidArgument)
	ErrNonPositiveAmount  = fmt.Errorf("%w: amount must be positive", ErrInvalidArgument)
	ErrAmountSignMismatch = fmt.Errorf("%w: inflow amount must not be negative", ErrInvalidArgument)
	ErrZeroDate           = fmt.Errorf("%w: date is required", ErrInvalidArgument)
	ErrInvalidType        = fmt.Errorf("%w: unknown transaction type", ErrInvalidArgument)
	ErrInvalidCategory    = fmt.Errorf("%w: unknown category", ErrInvalidArgument)
	ErrInvalidDateRange   = fmt.Errorf("%w: dateFrom must not be after dateTo", ErrInvalidArgument)
	ErrNilRepository      = fmt.Errorf("%w: transaction repository is required", ErrInvalidArgument)
)

// Transaction represents a single income or expense record.
type Transaction struct {
	ID          uuid.UUID       `json:"id"`          // Unique identifier, assigned by the store
	Description string          `json:"description"` // Free text, at most MaxDescriptionLength characters
	Amount      decimal.Decimal `json:"amount"`      // Signed amount: positive for inflows, negative for outflows
	Date        time.Time       `json:"date"`        // When the transaction happened
	Type        TransactionType `json:"type"`        // Inflow or Outflow
	Category    Category        `json:"category"`    // Classification tag
}

// NewTransaction builds a transaction without an id and validates it.
func NewTransaction(
	description string,
	amount decimal.Decimal,
	date time.Time,
	txType TransactionType,
	category Category,
) (*Transaction, error) {
	t := &Transaction{
		Description: strings.TrimSpace(description),
		Amount:      amount,
		Date:        date,
		Type:        txType,
		Category:    category,
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks the construction invariants of t.
func (t *Transaction) Validate() error {
	if t == nil {
		return ErrNilTransaction
	}
	desc := strings.TrimSpace(t.Description)
	if desc == "" {
		return ErrEmptyDescription
	}
	if utf8.RuneCountInString(desc) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	if t.Amount.IsZero() {
		return ErrZeroAmount
	}
	if t.Date.IsZero() {
		return ErrZeroDate
	}
	if !t.Type.IsValid() {
		return ErrInvalidType
	}
	if !t.Category.IsValid() {
		return ErrInvalidCategory
	}
	if t.Type == Inflow && t.Amount.IsNegative() {
		return ErrAmountSignMismatch
	}
	return nil
}

// NormalizeAmount returns the amount as it must be stored for the given type.
// Positive outflows are negated; everything else is returned unchanged, so
// applying it twice has no further effect.
func NormalizeAmount(txType TransactionType, amount decimal.Decimal) decimal.Decimal {
	if txType == Outflow && amount.IsPositive() {
		return amount.Neg()
	}
	return amount
}
