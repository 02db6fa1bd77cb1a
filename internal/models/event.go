package models

// Transaction lifecycle operations published as events.
const (
	OperationRegistered = "transaction.registered"
	OperationUpdated    = "transaction.updated"
	OperationDeleted    = "transaction.deleted"
)

// TransactionEvent is the message published when a transaction changes.
type TransactionEvent struct {
	EventID       string `json:"event_id"`       // EventID is a unique identifier for the event.
	Timestamp     int64  `json:"timestamp"`      // Timestamp is the Unix time (in seconds) the change was applied.
	Operation     string `json:"operation"`      // Operation is one of the transaction.* operations.
	TransactionID string `json:"transaction_id"` // TransactionID identifies the affected transaction.
	Amount        string `json:"amount"`         // Amount is the stored signed amount, empty for deletions.
	Type          string `json:"type"`           // Type is the transaction type, empty for deletions.
	Category      string `json:"category"`       // Category is the transaction category, empty for deletions.
}
