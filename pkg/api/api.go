// Package api defines the request and response types of the HTTP surface.
package api

import (
	"time"

	"github.com/chris/account-ledger-service/pkg/apperr"
)

// UseBalanceRequest is the body of POST /transaction/use.
type UseBalanceRequest struct {
	UserId        int64  `json:"userId"`
	AccountNumber string `json:"accountNumber"`
	Amount        int64  `json:"amount"`
}

// Validate checks the request field constraints.
func (r *UseBalanceRequest) Validate() error {
	if r.UserId <= 0 {
		return apperr.Newf(apperr.InvalidRequest, "userId must be positive")
	}
	if r.AccountNumber == "" {
		return apperr.Newf(apperr.InvalidRequest, "accountNumber is required")
	}
	if r.Amount <= 0 {
		return apperr.Newf(apperr.InvalidRequest, "amount must be positive")
	}
	return nil
}

// CancelBalanceRequest is the body of POST /transaction/cancel.
type CancelBalanceRequest struct {
	TransactionId string `json:"transactionId"`
	AccountNumber string `json:"accountNumber"`
	Amount        int64  `json:"amount"`
}

// Validate checks the request field constraints.
func (r *CancelBalanceRequest) Validate() error {
	if r.TransactionId == "" {
		return apperr.Newf(apperr.InvalidRequest, "transactionId is required")
	}
	if r.AccountNumber == "" {
		return apperr.Newf(apperr.InvalidRequest, "accountNumber is required")
	}
	if r.Amount <= 0 {
		return apperr.Newf(apperr.InvalidRequest, "amount must be positive")
	}
	return nil
}

// TransactionResponse is returned by the use and cancel endpoints.
type TransactionResponse struct {
	AccountNumber     string    `json:"accountNumber"`
	TransactionResult string    `json:"transactionResult"`
	TransactionId     string    `json:"transactionId"`
	Amount            int64     `json:"amount"`
	TransactedAt      time.Time `json:"transactedAt"`
}

// QueryTransactionResponse is returned by GET /transaction/{transactionId}.
type QueryTransactionResponse struct {
	AccountNumber     string    `json:"accountNumber"`
	TransactionType   string    `json:"transactionType"`
	TransactionResult string    `json:"transactionResult"`
	TransactionId     string    `json:"transactionId"`
	Amount            int64     `json:"amount"`
	TransactedAt      time.Time `json:"transactedAt"`
}

// CreateAccountRequest is the body of POST /account.
type CreateAccountRequest struct {
	UserId         int64 `json:"userId"`
	InitialBalance int64 `json:"initialBalance"`
}

// Validate checks the request field constraints.
func (r *CreateAccountRequest) Validate() error {
	if r.UserId <= 0 {
		return apperr.Newf(apperr.InvalidRequest, "userId must be positive")
	}
	if r.InitialBalance < 0 {
		return apperr.Newf(apperr.InvalidRequest, "initialBalance cannot be negative")
	}
	return nil
}

// CloseAccountRequest is the body of DELETE /account.
type CloseAccountRequest struct {
	UserId        int64  `json:"userId"`
	AccountNumber string `json:"accountNumber"`
}

// Validate checks the request field constraints.
func (r *CloseAccountRequest) Validate() error {
	if r.UserId <= 0 {
		return apperr.Newf(apperr.InvalidRequest, "userId must be positive")
	}
	if r.AccountNumber == "" {
		return apperr.Newf(apperr.InvalidRequest, "accountNumber is required")
	}
	return nil
}

// AccountResponse is returned by the account lifecycle endpoints.
type AccountResponse struct {
	UserId         int64      `json:"userId"`
	AccountNumber  string     `json:"accountNumber"`
	RegisteredAt   time.Time  `json:"registeredAt"`
	UnregisteredAt *time.Time `json:"unregisteredAt,omitempty"`
}

// AccountInfo is one element of the GET /account listing.
type AccountInfo struct {
	AccountNumber string `json:"accountNumber"`
	Balance       int64  `json:"balance"`
}

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	ErrorCode    string `json:"errorCode"`
	ErrorMessage string `json:"errorMessage"`
}
