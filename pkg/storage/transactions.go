package storage

import (
	"context"

	"github.com/chris/account-ledger-service/pkg/models"
)

// TransactionReader defines the interface for reading ledger entries.
type TransactionReader interface {
	// GetTransaction retrieves a transaction by its ID.
	GetTransaction(ctx context.Context, txID string) (*models.Transaction, error)
}

// LedgerWriter defines the interface for balance mutations and their ledger
// records. Each call is atomic at the store level: the balance update and the
// new transaction row land together or not at all. Callers are responsible
// for holding the per-account lock; the store's own conditional writes are a
// second line of defense, not the serialization mechanism.
type LedgerWriter interface {
	// ApplyUse decrements the account balance by tx.Amount and appends tx in
	// one atomic write. Returns ErrInsufficientBalance if the balance would
	// go negative, ErrVersionConflict if the account changed underneath.
	ApplyUse(ctx context.Context, account *models.Account, tx *models.Transaction) (*models.Transaction, error)

	// ApplyCancel increments the account balance by tx.Amount, appends tx,
	// and stamps the original USE transaction as cancelled, all in one atomic
	// write. Returns ErrAlreadyCancelled if the original was reversed by a
	// concurrent cancel.
	ApplyCancel(ctx context.Context, account *models.Account, originalTxID string, tx *models.Transaction) (*models.Transaction, error)

	// SaveTransaction appends a standalone transaction row without touching
	// any balance. Used for FAIL audit records.
	SaveTransaction(ctx context.Context, tx *models.Transaction) (*models.Transaction, error)
}

// TransactionStore combines the reader and writer interfaces.
type TransactionStore interface {
	TransactionReader
	LedgerWriter
}
