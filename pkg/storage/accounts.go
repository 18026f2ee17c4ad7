package storage

import (
	"context"

	"github.com/chris/account-ledger-service/pkg/models"
)

// AccountReader defines the interface for reading account data.
type AccountReader interface {
	// GetAccountByNumber retrieves an account by its account number.
	GetAccountByNumber(ctx context.Context, accountNumber string) (*models.Account, error)

	// ListAccountsByUserID retrieves all accounts owned by a user.
	ListAccountsByUserID(ctx context.Context, userID int64) ([]models.Account, error)

	// CountAccountsByUserID returns how many accounts a user currently holds.
	CountAccountsByUserID(ctx context.Context, userID int64) (int, error)
}

// AccountManager defines the interface for account lifecycle writes.
type AccountManager interface {
	// NextAccountNumber reserves and returns the next account number in the
	// sequence. Numbers are unique, monotonically increasing decimal strings.
	NextAccountNumber(ctx context.Context) (string, error)

	// CreateAccount persists a new account record.
	CreateAccount(ctx context.Context, account *models.Account) (*models.Account, error)

	// CloseAccount marks an account UNREGISTERED. The transition is terminal.
	CloseAccount(ctx context.Context, account *models.Account) error
}

// AccountStore combines the reader and manager interfaces.
type AccountStore interface {
	AccountReader
	AccountManager
}
