package repositories

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-finance-tracker/internal/logger"
	"github.com/sbilibin2017/gw-finance-tracker/internal/models"
)

// TransactionMemoryRepository keeps transactions in process memory, in insertion order.
// Every method holds the repository lock for its whole duration.
// Outflow amounts are normalized to negative values on every write.
type TransactionMemoryRepository struct {
	mu           sync.RWMutex
	transactions []models.Transaction
}

// NewTransactionMemoryRepository creates an empty repository.
func NewTransactionMemoryRepository() *TransactionMemoryRepository {
	return &TransactionMemoryRepository{}
}

// Add stores t, generating an ID when t has none, and returns the stored transaction.
func (r *TransactionMemoryRepository) Add(ctx context.Context, t models.Transaction) models.Transaction {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	t.Amount = models.NormalizeAmount(t.Type, t.Amount)

	r.mu.Lock()
	r.transactions = append(r.transactions, t)
	total := len(r.transactions)
	r.mu.Unlock()

	logger.FromContext(ctx).Debugw("transaction added",
		"id", t.ID,
		"amount", t.Amount.String(),
		"type", t.Type,
		"category", t.Category,
		"total", total,
	)

	return t
}

// GetByID returns the transaction with the given ID and whether it exists.
func (r *TransactionMemoryRepository) GetByID(ctx context.Context, id uuid.UUID) (models.Transaction, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		return r.transactions[i], true
	}
	return models.Transaction{}, false
}

// Update overwrites every field of the stored transaction with the same ID.
// It returns false and changes nothing when the ID is unknown.
func (r *TransactionMemoryRepository) Update(ctx context.Context, t models.Transaction) (models.Transaction, bool) {
	t.Amount = models.NormalizeAmount(t.Type, t.Amount)

	r.mu.Lock()
	i := r.indexOf(t.ID)
	if i >= 0 {
		r.transactions[i] = t
	}
	r.mu.Unlock()

	logger.FromContext(ctx).Debugw("transaction update",
		"id", t.ID,
		"amount", t.Amount.String(),
		"found", i >= 0,
	)

	if i < 0 {
		return models.Transaction{}, false
	}
	return t, true
}

// Delete removes the transaction with the given ID and reports whether it existed.
func (r *TransactionMemoryRepository) Delete(ctx context.Context, id uuid.UUID) bool {
	r.mu.Lock()
	i := r.indexOf(id)
	if i >= 0 {
		r.transactions = append(r.transactions[:i], r.transactions[i+1:]...)
	}
	r.mu.Unlock()

	logger.FromContext(ctx).Debugw("transaction delete",
		"id", id,
		"found", i >= 0,
	)

	return i >= 0
}

// List returns a copy of all transactions in insertion order. The result is never nil.
func (r *TransactionMemoryRepository) List(ctx context.Context) []models.Transaction {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Transaction, len(r.transactions))
	copy(out, r.transactions)
	return out
}

// Len returns the number of stored transactions.
func (r *TransactionMemoryRepository) Len(ctx context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.transactions)
}

// Clear removes every transaction.
func (r *TransactionMemoryRepository) Clear(ctx context.Context) {
	r.mu.Lock()
	r.transactions = nil
	r.mu.Unlock()

	logger.FromContext(ctx).Debugw("transactions cleared")
}

// indexOf must be called with r.mu held.
func (r *TransactionMemoryRepository) indexOf(id uuid.UUID) int {
	for i := range r.transactions {
		if r.transactions[i].ID == id {
			return i
		}
	}
	return -1
}
