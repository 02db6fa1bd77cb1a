package services

//go:generate mockgen -source=transaction.go -destination=transaction_mock.go -package=services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-finance-tracker/internal/logger"
	"github.com/sbilibin2017/gw-finance-tracker/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

// TransactionRepository defines the store operations used by the service.
type TransactionRepository interface {
	Add(ctx context.Context, t models.Transaction) models.Transaction            // Stores t and returns it with ID and normalized amount
	GetByID(ctx context.Context, id uuid.UUID) (models.Transaction, bool)        // Returns the transaction and whether it exists
	Update(ctx context.Context, t models.Transaction) (models.Transaction, bool) // Overwrites an existing transaction
	Delete(ctx context.Context, id uuid.UUID) bool                               // Removes a transaction
	List(ctx context.Context) []models.Transaction                               // Returns a snapshot of all transactions
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// TransactionService implements the transaction use cases on top of a repository
// and publishes lifecycle events when a Kafka writer is configured.
type TransactionService struct {
	repo        TransactionRepository
	kafkaWriter KafkaWriter
	now         func() time.Time
}

// NewTransactionService creates a new TransactionService.
// kafkaWriter may be nil, in which case no events are published.
func NewTransactionService(repo TransactionRepository, kafkaWriter KafkaWriter) (*TransactionService, error) {
	if repo == nil {
		return nil, models.ErrNilRepository
	}
	return &TransactionService{
		repo:        repo,
		kafkaWriter: kafkaWriter,
		now:         time.Now,
	}, nil
}

// Register validates t and stores it under a freshly generated ID.
func (s *TransactionService) Register(ctx context.Context, t *models.Transaction) (models.Transaction, error) {
	log := logger.FromContext(ctx)
	if err := t.Validate(); err != nil {
		log.Warnw("rejected transaction", "error", err)
		return models.Transaction{}, err
	}

	toStore := *t
	toStore.ID = uuid.Nil
	stored := s.repo.Add(ctx, toStore)

	log.Infow("transaction registered", "id", stored.ID, "amount", stored.Amount.String(), "type", stored.Type)
	s.publishTransaction(ctx, models.OperationRegistered, stored)
	return stored, nil
}

// GetByID returns the transaction with the given ID and whether it exists.
func (s *TransactionService) GetByID(ctx context.Context, id uuid.UUID) (models.Transaction, bool) {
	return s.repo.GetByID(ctx, id)
}

// Update replaces every field of the transaction identified by t.ID.
// It returns false without error when no such transaction exists.
func (s *TransactionService) Update(ctx context.Context, t *models.Transaction) (models.Transaction, bool, error) {
	log := logger.FromContext(ctx)
	if err := t.Validate(); err != nil {
		log.Warnw("rejected transaction update", "error", err)
		return models.Transaction{}, false, err
	}

	if _, ok := s.repo.GetByID(ctx, t.ID); !ok {
		log.Infow("transaction not found for update", "id", t.ID)
		return models.Transaction{}, false, nil
	}

	updated, ok := s.repo.Update(ctx, *t)
	if !ok {
		// removed between lookup and update
		log.Infow("transaction not found for update", "id", t.ID)
		return models.Transaction{}, false, nil
	}

	log.Infow("transaction updated", "id", updated.ID, "amount", updated.Amount.String())
	s.publishTransaction(ctx, models.OperationUpdated, updated)
	return updated, true, nil
}

// Delete removes the transaction with the given ID and reports whether it existed.
func (s *TransactionService) Delete(ctx context.Context, id uuid.UUID) bool {
	deleted := s.repo.Delete(ctx, id)
	if !deleted {
		logger.FromContext(ctx).Infow("transaction not found for delete", "id", id)
		return false
	}

	logger.FromContext(ctx).Infow("transaction deleted", "id", id)
	s.publishTransaction(ctx, models.OperationDeleted, models.Transaction{ID: id})
	return true
}

// List returns the transactions matching filter, newest first.
func (s *TransactionService) List(ctx context.Context, filter *models.TransactionFilter) ([]models.Transaction, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return FilterTransactions(s.repo.List(ctx), filter), nil
}

// Balance returns the sum of all stored amounts.
func (s *TransactionService) Balance(ctx context.Context) decimal.Decimal {
	return CalculateBalance(s.repo.List(ctx))
}

// Summary aggregates the transactions matching filter.
func (s *TransactionService) Summary(ctx context.Context, filter *models.TransactionFilter) (models.Summary, error) {
	txs, err := s.List(ctx, filter)
	if err != nil {
		return models.Summary{}, err
	}
	return Summarize(txs), nil
}

// publishTransaction publishes a lifecycle event to Kafka.
// Publishing is best effort: failures are logged and never reach the caller.
func (s *TransactionService) publishTransaction(ctx context.Context, operation string, t models.Transaction) {
	log := logger.FromContext(ctx)
	if s.kafkaWriter == nil {
		log.Debugw("Kafka writer not configured, skipping publishing", "transaction_id", t.ID)
		return
	}

	event := models.TransactionEvent{
		EventID:       uuid.NewString(),
		Timestamp:     s.now().Unix(),
		Operation:     operation,
		TransactionID: t.ID.String(),
	}
	if operation != models.OperationDeleted {
		event.Amount = t.Amount.String()
		event.Type = string(t.Type)
		event.Category = string(t.Category)
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Errorw("Failed to marshal transaction event for Kafka", "transaction_id", t.ID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.TransactionID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		log.Errorw("Failed to publish transaction event to Kafka", "transaction_id", t.ID, "operation", operation, "error", err)
	} else {
		log.Infow("Transaction event published to Kafka", "transaction_id", t.ID, "operation", operation)
	}
}
