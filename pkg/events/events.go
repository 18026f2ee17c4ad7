package events

import (
	"context"
	"time"
)

// TransactionEvent is the message published after a successful balance
// operation, for downstream consumers (notifications, analytics).
type TransactionEvent struct {
	TransactionId   string    `json:"transaction_id"`
	AccountNumber   string    `json:"account_number"`
	TransactionType string    `json:"transaction_type"`
	Amount          int64     `json:"amount"`
	BalanceSnapshot int64     `json:"balance_snapshot"`
	TransactedAt    time.Time `json:"transacted_at"`
}

// Publisher defines the interface for emitting transaction events. Publishing
// is best-effort: the transaction is already durable in the ledger when an
// event goes out, so a publish failure is logged and never fails the request.
type Publisher interface {
	// PublishTransaction emits an event for a completed transaction.
	PublishTransaction(ctx context.Context, event TransactionEvent) error
}

// NoOpPublisher is a Publisher that does nothing.
type NoOpPublisher struct{}

// PublishTransaction does nothing.
func (p *NoOpPublisher) PublishTransaction(ctx context.Context, event TransactionEvent) error {
	return nil
}
