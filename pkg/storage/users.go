package storage

import (
	"context"

	"github.com/chris/account-ledger-service/pkg/models"
)

// UserReader defines the interface for reading account users. Users are
// created by an external user-management service; this service never writes them.
type UserReader interface {
	// GetUser retrieves an account user by their numeric ID.
	GetUser(ctx context.Context, userID int64) (*models.AccountUser, error)
}
