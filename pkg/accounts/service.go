// Package accounts implements the account lifecycle: opening, closing, and
// listing accounts. Lifecycle operations are validated CRUD; balance
// mutations live in the processor package and never pass through here.
package accounts

import (
	"context"
	"errors"
	"time"

	"github.com/chris/account-ledger-service/pkg/apperr"
	"github.com/chris/account-ledger-service/pkg/models"
	"github.com/chris/account-ledger-service/pkg/rules"
	"github.com/chris/account-ledger-service/pkg/storage"
	"github.com/google/uuid"
)

// Service manages account lifecycle operations.
type Service struct {
	store storage.LifecycleStore
	now   func() time.Time
}

// NewService creates a Service backed by the given store.
func NewService(store storage.LifecycleStore) *Service {
	return &Service{store: store, now: time.Now}
}

// CreateAccount opens a new account for userID with the given initial
// balance. Account numbers come from the store's sequence: previous max plus
// one, seeded at "1000000000".
func (s *Service) CreateAccount(ctx context.Context, userID int64, initialBalance int64) (*models.Account, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	count, err := s.store.CountAccountsByUserID(ctx, user.Id)
	if err != nil {
		return nil, err
	}

	if err := rules.ValidateCreate(count); err != nil {
		return nil, err
	}

	number, err := s.store.NextAccountNumber(ctx)
	if err != nil {
		return nil, err
	}

	account := &models.Account{
		Id:            uuid.New().String(),
		UserId:        user.Id,
		AccountNumber: number,
		Balance:       initialBalance,
		Status:        models.StatusInUse,
		Version:       1,
		RegisteredAt:  s.now(),
	}

	return s.store.CreateAccount(ctx, account)
}

// CloseAccount marks the account UNREGISTERED. Only the owner may close an
// open, fully drained account. The transition is terminal.
func (s *Service) CloseAccount(ctx context.Context, userID int64, accountNumber string) (*models.Account, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	account, err := s.store.GetAccountByNumber(ctx, accountNumber)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	if err := rules.ValidateClose(account, user.Id); err != nil {
		return nil, err
	}

	if err := s.store.CloseAccount(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// ListAccounts returns all accounts owned by userID.
func (s *Service) ListAccounts(ctx context.Context, userID int64) ([]models.Account, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	return s.store.ListAccountsByUserID(ctx, user.Id)
}

func mapStoreErr(err error) error {
	switch {
	case errors.Is(err, storage.ErrUserNotFound):
		return apperr.New(apperr.UserNotFound)
	case errors.Is(err, storage.ErrAccountNotFound):
		return apperr.New(apperr.AccountNotFound)
	default:
		return err
	}
}
