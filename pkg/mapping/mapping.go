package mapping

import (
	"github.com/chris/account-ledger-service/pkg/api"
	"github.com/chris/account-ledger-service/pkg/models"
)

// ToTransactionResponse converts a domain Transaction to the use/cancel response model.
func ToTransactionResponse(tx *models.Transaction) *api.TransactionResponse {
	return &api.TransactionResponse{
		AccountNumber:     tx.AccountNumber,
		TransactionResult: string(tx.Result),
		TransactionId:     tx.Id,
		Amount:            tx.Amount,
		TransactedAt:      tx.TransactedAt,
	}
}

// ToQueryTransactionResponse converts a domain Transaction to the full query projection.
func ToQueryTransactionResponse(tx *models.Transaction) *api.QueryTransactionResponse {
	return &api.QueryTransactionResponse{
		AccountNumber:     tx.AccountNumber,
		TransactionType:   string(tx.Type),
		TransactionResult: string(tx.Result),
		TransactionId:     tx.Id,
		Amount:            tx.Amount,
		TransactedAt:      tx.TransactedAt,
	}
}

// ToAccountResponse converts a domain Account to the lifecycle response model.
func ToAccountResponse(account *models.Account) *api.AccountResponse {
	return &api.AccountResponse{
		UserId:         account.UserId,
		AccountNumber:  account.AccountNumber,
		RegisteredAt:   account.RegisteredAt,
		UnregisteredAt: account.UnregisteredAt,
	}
}

// ToAccountInfo converts a domain Account to one listing element.
func ToAccountInfo(account *models.Account) *api.AccountInfo {
	return &api.AccountInfo{
		AccountNumber: account.AccountNumber,
		Balance:       account.Balance,
	}
}
