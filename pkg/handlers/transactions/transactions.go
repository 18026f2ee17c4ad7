package transactions

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/chris/account-ledger-service/pkg/api"
	"github.com/chris/account-ledger-service/pkg/apperr"
	"github.com/chris/account-ledger-service/pkg/events"
	"github.com/chris/account-ledger-service/pkg/handlers"
	"github.com/chris/account-ledger-service/pkg/lock"
	"github.com/chris/account-ledger-service/pkg/mapping"
	"github.com/chris/account-ledger-service/pkg/models"
)

// BalanceProcessor defines the transaction processor operations the handler
// drives. Declared here so tests can substitute a mock.
type BalanceProcessor interface {
	UseBalance(ctx context.Context, userID int64, accountNumber string, amount int64) (*models.Transaction, error)
	CancelBalance(ctx context.Context, transactionID, accountNumber string, amount int64) (*models.Transaction, error)
	SaveFailedUseTransaction(ctx context.Context, accountNumber string, amount int64) error
	SaveFailedCancelTransaction(ctx context.Context, accountNumber string, amount int64) error
	QueryTransaction(ctx context.Context, transactionID string) (*models.Transaction, error)
}

// TransactionsHandler holds the dependencies for transaction-related
// handlers. It owns the per-account lock scope: the processor runs entirely
// inside WithLock, and FAIL audit rows are recorded here, after catching a
// business error, while the lock is still held.
type TransactionsHandler struct {
	Processor BalanceProcessor
	Locker    lock.Locker
	Publisher events.Publisher
	Logger    *slog.Logger

	// AdmissionDelay is slept before lock acquisition begins. A throttling
	// policy knob, zero in production configurations.
	AdmissionDelay time.Duration
}

// NewTransactionsHandler creates a new TransactionsHandler.
func NewTransactionsHandler(processor BalanceProcessor, locker lock.Locker, publisher events.Publisher, logger *slog.Logger) *TransactionsHandler {
	return &TransactionsHandler{Processor: processor, Locker: locker, Publisher: publisher, Logger: logger}
}

// UseBalance handles POST /transaction/use.
func (h *TransactionsHandler) UseBalance(w http.ResponseWriter, r *http.Request) {
	var req api.UseBalanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, h.Logger, apperr.Newf(apperr.InvalidRequest, "invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		handlers.WriteError(w, h.Logger, err)
		return
	}

	if err := h.admit(r.Context()); err != nil {
		handlers.WriteError(w, h.Logger, err)
		return
	}

	var created *models.Transaction
	err := h.Locker.WithLock(r.Context(), req.AccountNumber, func(ctx context.Context) error {
		tx, err := h.Processor.UseBalance(ctx, req.UserId, req.AccountNumber, req.Amount)
		if err != nil {
			h.recordFailure(ctx, models.TypeUse, req.AccountNumber, req.Amount, err)
			return err
		}
		created = tx
		return nil
	})
	if err != nil {
		handlers.WriteError(w, h.Logger, mapLockErr(err))
		return
	}

	h.publish(r.Context(), created)

	handlers.WriteJSON(w, http.StatusOK, mapping.ToTransactionResponse(created))
}

// CancelBalance handles POST /transaction/cancel.
func (h *TransactionsHandler) CancelBalance(w http.ResponseWriter, r *http.Request) {
	var req api.CancelBalanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, h.Logger, apperr.Newf(apperr.InvalidRequest, "invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		handlers.WriteError(w, h.Logger, err)
		return
	}

	if err := h.admit(r.Context()); err != nil {
		handlers.WriteError(w, h.Logger, err)
		return
	}

	var created *models.Transaction
	err := h.Locker.WithLock(r.Context(), req.AccountNumber, func(ctx context.Context) error {
		tx, err := h.Processor.CancelBalance(ctx, req.TransactionId, req.AccountNumber, req.Amount)
		if err != nil {
			h.recordFailure(ctx, models.TypeCancel, req.AccountNumber, req.Amount, err)
			return err
		}
		created = tx
		return nil
	})
	if err != nil {
		handlers.WriteError(w, h.Logger, mapLockErr(err))
		return
	}

	h.publish(r.Context(), created)

	handlers.WriteJSON(w, http.StatusOK, mapping.ToTransactionResponse(created))
}

// QueryTransaction handles GET /transaction/{transactionId}. Read-only, no
// lock, safe to repeat.
func (h *TransactionsHandler) QueryTransaction(w http.ResponseWriter, r *http.Request, transactionID string) {
	tx, err := h.Processor.QueryTransaction(r.Context(), transactionID)
	if err != nil {
		handlers.WriteError(w, h.Logger, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, mapping.ToQueryTransactionResponse(tx))
}

// admit applies the configured admission delay before lock acquisition.
func (h *TransactionsHandler) admit(ctx context.Context) error {
	if h.AdmissionDelay <= 0 {
		return nil
	}

	select {
	case <-time.After(h.AdmissionDelay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// recordFailure writes the FAIL audit row for a rejected balance operation.
// Audit is best-effort: its own failure is logged and the original business
// error stays in flight.
func (h *TransactionsHandler) recordFailure(ctx context.Context, txType models.TransactionType, accountNumber string, amount int64, cause error) {
	if !apperr.IsBusiness(cause) {
		return
	}

	var auditErr error
	if txType == models.TypeUse {
		auditErr = h.Processor.SaveFailedUseTransaction(ctx, accountNumber, amount)
	} else {
		auditErr = h.Processor.SaveFailedCancelTransaction(ctx, accountNumber, amount)
	}

	if auditErr != nil {
		h.Logger.ErrorContext(ctx, "failed to record FAIL transaction",
			"account_number", accountNumber, "amount", amount, "error", auditErr, "cause", cause)
	}
}

// publish emits the transaction event. Failures are logged only; the ledger
// write already succeeded.
func (h *TransactionsHandler) publish(ctx context.Context, tx *models.Transaction) {
	if h.Publisher == nil {
		return
	}

	event := events.TransactionEvent{
		TransactionId:   tx.Id,
		AccountNumber:   tx.AccountNumber,
		TransactionType: string(tx.Type),
		Amount:          tx.Amount,
		BalanceSnapshot: tx.BalanceSnapshot,
		TransactedAt:    tx.TransactedAt,
	}
	if err := h.Publisher.PublishTransaction(ctx, event); err != nil {
		h.Logger.ErrorContext(ctx, "failed to publish transaction event", "transaction_id", tx.Id, "error", err)
	}
}

func mapLockErr(err error) error {
	if errors.Is(err, lock.ErrLockUnavailable) {
		return apperr.New(apperr.LockUnavailable)
	}
	return err
}
