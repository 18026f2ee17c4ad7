// Package rules holds the balance rule engine: pure validation functions
// with no I/O. Checks run in a fixed order and the first failing check
// determines the returned error kind.
package rules

import (
	"time"

	"github.com/chris/account-ledger-service/pkg/apperr"
	"github.com/chris/account-ledger-service/pkg/models"
)

// maxAccountsPerUser caps how many open accounts a single user may hold.
const maxAccountsPerUser = 10

// cancelWindow is how long after a USE its CANCEL remains possible.
func cancelWindow(now time.Time) time.Time {
	return now.AddDate(-1, 0, 0)
}

// ValidateUse decides whether a debit of amount against account, requested by
// userID, is legal. Balance is checked before mutation; a USE may never drive
// the balance negative.
func ValidateUse(account *models.Account, userID int64, amount int64) error {
	if account.UserId != userID {
		return apperr.New(apperr.UserAccountUnMatch)
	}
	if account.Status != models.StatusInUse {
		return apperr.New(apperr.AccountAlreadyUnregistered)
	}
	if amount > account.Balance {
		return apperr.New(apperr.AmountExceedBalance)
	}
	return nil
}

// ValidateCancel decides whether prior may be reversed on account for amount.
// Cancels are full-amount only, limited to transactions less than one year
// old, and each USE may be reversed at most once.
func ValidateCancel(account *models.Account, prior *models.Transaction, amount int64, now time.Time) error {
	if prior.AccountId != account.Id {
		return apperr.New(apperr.TransactionAccountUnMatch)
	}
	if prior.Amount != amount {
		return apperr.New(apperr.CancelMustFully)
	}
	if !prior.TransactedAt.After(cancelWindow(now)) {
		return apperr.New(apperr.TooOldOrderToCancel)
	}
	if prior.Cancelled() {
		return apperr.New(apperr.TransactionAlreadyCancelled)
	}
	return nil
}

// ValidateCreate decides whether user may open another account.
func ValidateCreate(openAccounts int) error {
	if openAccounts >= maxAccountsPerUser {
		return apperr.New(apperr.MaxAccountPerUser)
	}
	return nil
}

// ValidateClose decides whether userID may close account. Only the owner may
// close an open account, and only once it is drained to zero.
func ValidateClose(account *models.Account, userID int64) error {
	if account.UserId != userID {
		return apperr.New(apperr.UserAccountUnMatch)
	}
	if account.Status == models.StatusUnregistered {
		return apperr.New(apperr.AccountAlreadyUnregistered)
	}
	if account.Balance > 0 {
		return apperr.New(apperr.BalanceNotEmpty)
	}
	return nil
}
