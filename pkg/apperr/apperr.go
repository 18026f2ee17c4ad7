package apperr

import (
	"errors"
	"fmt"
)

// Code is a stable error-kind identifier surfaced to callers alongside a
// human-readable description.
type Code string

const (
	UserNotFound                Code = "USER_NOT_FOUND"
	AccountNotFound             Code = "ACCOUNT_NOT_FOUND"
	AccountAlreadyUnregistered  Code = "ACCOUNT_ALREADY_UNREGISTERED"
	UserAccountUnMatch          Code = "USER_ACCOUNT_UN_MATCH"
	AmountExceedBalance         Code = "AMOUNT_EXCEED_BALANCE"
	TransactionNotFound         Code = "TRANSACTION_NOT_FOUND"
	TransactionAccountUnMatch   Code = "TRANSACTION_ACCOUNT_UN_MATCH"
	CancelMustFully             Code = "CANCEL_MUST_FULLY"
	TooOldOrderToCancel         Code = "TOO_OLD_ORDER_TO_CANCEL"
	TransactionAlreadyCancelled Code = "TRANSACTION_ALREADY_CANCELLED"
	MaxAccountPerUser           Code = "MAX_ACCOUNT_PER_USER_10"
	BalanceNotEmpty             Code = "BALANCE_NOT_EMPTY"
	InvalidRequest              Code = "INVALID_REQUEST"
	LockUnavailable             Code = "LOCK_UNAVAILABLE"
	InternalError               Code = "INTERNAL_ERROR"
)

var descriptions = map[Code]string{
	UserNotFound:                "user does not exist",
	AccountNotFound:             "account does not exist",
	AccountAlreadyUnregistered:  "account is already unregistered",
	UserAccountUnMatch:          "user does not own this account",
	AmountExceedBalance:         "transaction amount exceeds account balance",
	TransactionNotFound:         "transaction does not exist",
	TransactionAccountUnMatch:   "transaction does not belong to this account",
	CancelMustFully:             "transactions can only be cancelled in full",
	TooOldOrderToCancel:         "transactions older than one year cannot be cancelled",
	TransactionAlreadyCancelled: "transaction has already been cancelled",
	MaxAccountPerUser:           "a user may hold at most 10 accounts",
	BalanceNotEmpty:             "an account with a remaining balance cannot be closed",
	InvalidRequest:              "invalid request",
	LockUnavailable:             "account is in use by another transaction",
	InternalError:               "an unexpected error occurred",
}

// Description returns the human-readable description for the code.
// Unknown codes fall back to the INTERNAL_ERROR description.
func (c Code) Description() string {
	if d, ok := descriptions[c]; ok {
		return d
	}
	return descriptions[InternalError]
}

// Error is a business error carrying a stable error-kind code. All rule
// violations and lookup failures cross package boundaries as *Error so
// callers can branch on the kind without string matching.
type Error struct {
	Code    Code
	Message string
}

// New creates an Error for the given code with its canonical description.
func New(code Code) *Error {
	return &Error{Code: code, Message: code.Description()}
}

// Newf creates an Error for the given code with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is makes errors.Is(err, apperr.New(code)) match on the code alone.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}
	return e.Code == other.Code
}

// CodeOf extracts the error-kind code from err. Any error that is not an
// *Error maps to INTERNAL_ERROR; internal detail never leaks to callers.
func CodeOf(err error) Code {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return InternalError
}

// IsBusiness reports whether err carries a specific error kind, as opposed to
// an unanticipated fault that the boundary must mask as INTERNAL_ERROR.
func IsBusiness(err error) bool {
	var appErr *Error
	return errors.As(err, &appErr)
}
