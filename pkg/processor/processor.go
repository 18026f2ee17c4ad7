// Package processor implements the transaction processing engine: resolving
// the parties of a USE or CANCEL, running the balance rules, and persisting
// the balance mutation together with its ledger record. The processor does
// not acquire locks; the caller owns the per-account lock scope and invokes
// the failed-transaction recorders when a call returns a business error.
package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chris/account-ledger-service/pkg/apperr"
	"github.com/chris/account-ledger-service/pkg/models"
	"github.com/chris/account-ledger-service/pkg/rules"
	"github.com/chris/account-ledger-service/pkg/storage"
)

// Processor orchestrates balance operations against the ledger store.
type Processor struct {
	store storage.LedgerStore
	now   func() time.Time
}

// New creates a Processor backed by the given store.
func New(store storage.LedgerStore) *Processor {
	return &Processor{store: store, now: time.Now}
}

// NewWithClock creates a Processor with an injected clock. Used by tests that
// exercise the one-year cancel window.
func NewWithClock(store storage.LedgerStore, now func() time.Time) *Processor {
	return &Processor{store: store, now: now}
}

// UseBalance debits amount from the account identified by accountNumber on
// behalf of userID and appends a SUCCESS USE record. The caller must hold the
// account's lock. On a rule violation the error is returned with no ledger
// write; recording the FAIL row is the caller's responsibility.
func (p *Processor) UseBalance(ctx context.Context, userID int64, accountNumber string, amount int64) (*models.Transaction, error) {
	user, err := p.store.GetUser(ctx, userID)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	account, err := p.store.GetAccountByNumber(ctx, accountNumber)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	if err := rules.ValidateUse(account, user.Id, amount); err != nil {
		return nil, err
	}

	tx := &models.Transaction{
		AccountId:       account.Id,
		AccountNumber:   account.AccountNumber,
		Type:            models.TypeUse,
		Result:          models.ResultSuccess,
		Amount:          amount,
		BalanceSnapshot: account.Balance - amount,
		TransactedAt:    p.now(),
	}

	created, err := p.store.ApplyUse(ctx, account, tx)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	return created, nil
}

// CancelBalance reverses a prior USE in full, crediting amount back to the
// account and appending a SUCCESS CANCEL record. The prior transaction is
// resolved before any account lookup, so an unknown transaction ID fails
// with TRANSACTION_NOT_FOUND regardless of the account number given.
func (p *Processor) CancelBalance(ctx context.Context, transactionID, accountNumber string, amount int64) (*models.Transaction, error) {
	prior, err := p.store.GetTransaction(ctx, transactionID)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	account, err := p.store.GetAccountByNumber(ctx, accountNumber)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	if err := rules.ValidateCancel(account, prior, amount, p.now()); err != nil {
		return nil, err
	}

	tx := &models.Transaction{
		AccountId:       account.Id,
		AccountNumber:   account.AccountNumber,
		Type:            models.TypeCancel,
		Result:          models.ResultSuccess,
		Amount:          amount,
		BalanceSnapshot: account.Balance + amount,
		TransactedAt:    p.now(),
	}

	created, err := p.store.ApplyCancel(ctx, account, prior.Id, tx)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	return created, nil
}

// SaveFailedUseTransaction records a FAIL audit row for a rejected USE. The
// balance snapshot is the current, unchanged balance. This is a pure audit
// write: its own failure is returned for reporting and must never replace
// the business error the caller is already holding.
func (p *Processor) SaveFailedUseTransaction(ctx context.Context, accountNumber string, amount int64) error {
	return p.saveFailedTransaction(ctx, models.TypeUse, accountNumber, amount)
}

// SaveFailedCancelTransaction records a FAIL audit row for a rejected CANCEL.
func (p *Processor) SaveFailedCancelTransaction(ctx context.Context, accountNumber string, amount int64) error {
	return p.saveFailedTransaction(ctx, models.TypeCancel, accountNumber, amount)
}

func (p *Processor) saveFailedTransaction(ctx context.Context, txType models.TransactionType, accountNumber string, amount int64) error {
	account, err := p.store.GetAccountByNumber(ctx, accountNumber)
	if err != nil {
		return fmt.Errorf("failed to resolve account for audit record: %w", err)
	}

	tx := &models.Transaction{
		AccountId:       account.Id,
		AccountNumber:   account.AccountNumber,
		Type:            txType,
		Result:          models.ResultFail,
		Amount:          amount,
		BalanceSnapshot: account.Balance,
		TransactedAt:    p.now(),
	}

	if _, err := p.store.SaveTransaction(ctx, tx); err != nil {
		return fmt.Errorf("failed to save audit record: %w", err)
	}

	return nil
}

// QueryTransaction returns the ledger record for transactionID. It is
// read-only, takes no lock, and is safe to call repeatedly.
func (p *Processor) QueryTransaction(ctx context.Context, transactionID string) (*models.Transaction, error) {
	tx, err := p.store.GetTransaction(ctx, transactionID)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return tx, nil
}

// mapStoreErr translates storage sentinels into business error kinds. Errors
// with no mapping pass through unchanged and surface as INTERNAL_ERROR at
// the boundary.
func mapStoreErr(err error) error {
	switch {
	case errors.Is(err, storage.ErrUserNotFound):
		return apperr.New(apperr.UserNotFound)
	case errors.Is(err, storage.ErrAccountNotFound):
		return apperr.New(apperr.AccountNotFound)
	case errors.Is(err, storage.ErrTransactionNotFound):
		return apperr.New(apperr.TransactionNotFound)
	case errors.Is(err, storage.ErrInsufficientBalance):
		return apperr.New(apperr.AmountExceedBalance)
	case errors.Is(err, storage.ErrAlreadyCancelled):
		return apperr.New(apperr.TransactionAlreadyCancelled)
	default:
		return err
	}
}
