package storage

import "errors"

// ErrUserNotFound is returned when no user exists for the given user ID.
var ErrUserNotFound = errors.New("user not found")

// ErrAccountNotFound is returned when no account exists for the given account number.
var ErrAccountNotFound = errors.New("account not found")

// ErrTransactionNotFound is returned when no transaction exists for the given transaction ID.
var ErrTransactionNotFound = errors.New("transaction not found")

// ErrInsufficientBalance is returned when a debit would drive an account balance negative.
var ErrInsufficientBalance = errors.New("insufficient balance")

// ErrAlreadyCancelled is returned when a cancel targets a transaction that was already reversed.
var ErrAlreadyCancelled = errors.New("transaction already cancelled")

// ErrVersionConflict is returned when a conditional write loses against a concurrent mutation.
var ErrVersionConflict = errors.New("account version conflict")

// ErrAccountExists is returned when an account record collides on its account number.
var ErrAccountExists = errors.New("account already exists")
