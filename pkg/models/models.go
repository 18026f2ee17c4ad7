package models

import (
	"time"
)

// AccountStatus defines the possible states of an account.
type AccountStatus string

const (
	// StatusInUse means the account is open and may transact.
	StatusInUse AccountStatus = "IN_USE"
	// StatusUnregistered means the account has been closed. This state is terminal.
	StatusUnregistered AccountStatus = "UNREGISTERED"
)

// TransactionType defines the kind of balance operation a transaction records.
type TransactionType string

const (
	TypeUse    TransactionType = "USE"
	TypeCancel TransactionType = "CANCEL"
)

// TransactionResult defines the outcome recorded on a transaction.
type TransactionResult string

const (
	ResultSuccess TransactionResult = "SUCCESS"
	ResultFail    TransactionResult = "FAIL"
)

// AccountUser is the identity owning zero or more accounts. It is created and
// managed elsewhere; this service only reads it.
type AccountUser struct {
	Id        int64     `dynamodbav:"id"`
	Name      string    `dynamodbav:"name"`
	CreatedAt time.Time `dynamodbav:"created_at"`
}

// Account represents the internal domain model for a single bank account.
// It includes dynamodbav tags for marshalling.
type Account struct {
	Id             string        `dynamodbav:"id"`
	UserId         int64         `dynamodbav:"user_id"`
	AccountNumber  string        `dynamodbav:"account_number"`
	Balance        int64         `dynamodbav:"balance"`
	Status         AccountStatus `dynamodbav:"status"`
	Version        int64         `dynamodbav:"version"`
	RegisteredAt   time.Time     `dynamodbav:"registered_at"`
	UnregisteredAt *time.Time    `dynamodbav:"unregistered_at,omitempty"`
}

// Transaction is one immutable ledger entry. Rows are append-only: a CANCEL
// is recorded as a new row pointing at the same account, never by editing the
// original USE. The only field ever touched after creation is CancelledAt,
// stamped on a USE row when a CANCEL successfully reverses it.
type Transaction struct {
	Id              string            `dynamodbav:"id"`
	AccountId       string            `dynamodbav:"account_id"`
	AccountNumber   string            `dynamodbav:"account_number"`
	Type            TransactionType   `dynamodbav:"transaction_type"`
	Result          TransactionResult `dynamodbav:"transaction_result"`
	Amount          int64             `dynamodbav:"amount"`
	BalanceSnapshot int64             `dynamodbav:"balance_snapshot"`
	TransactedAt    time.Time         `dynamodbav:"transacted_at"`
	CancelledAt     *time.Time        `dynamodbav:"cancelled_at,omitempty"`
}

// Cancelled reports whether this USE transaction has already been reversed.
func (t *Transaction) Cancelled() bool {
	return t.CancelledAt != nil
}
