// Package handlers holds the shared HTTP boundary pieces: JSON responses and
// the explicit error-kind-to-status table. Everything that leaves the system
// passes through WriteError, which maps unanticipated faults to
// INTERNAL_ERROR rather than leaking their detail.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/chris/account-ledger-service/pkg/api"
	"github.com/chris/account-ledger-service/pkg/apperr"
)

// statusByCode is the error-kind-to-response table. Codes absent from the
// table fall through to the INTERNAL_ERROR arm in WriteError.
var statusByCode = map[apperr.Code]int{
	apperr.InvalidRequest:              http.StatusBadRequest,
	apperr.UserNotFound:                http.StatusNotFound,
	apperr.AccountNotFound:             http.StatusNotFound,
	apperr.TransactionNotFound:         http.StatusNotFound,
	apperr.UserAccountUnMatch:          http.StatusForbidden,
	apperr.TransactionAccountUnMatch:   http.StatusForbidden,
	apperr.AccountAlreadyUnregistered:  http.StatusConflict,
	apperr.TransactionAlreadyCancelled: http.StatusConflict,
	apperr.CancelMustFully:             http.StatusConflict,
	apperr.TooOldOrderToCancel:         http.StatusConflict,
	apperr.MaxAccountPerUser:           http.StatusConflict,
	apperr.BalanceNotEmpty:             http.StatusConflict,
	apperr.LockUnavailable:             http.StatusConflict,
	apperr.AmountExceedBalance:         http.StatusUnprocessableEntity,
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "failed to write response", http.StatusInternalServerError)
	}
}

// WriteError maps err onto the error table and writes the structured error
// body. Business errors surface verbatim with their kind; anything else is
// logged and masked as INTERNAL_ERROR.
func WriteError(w http.ResponseWriter, logger *slog.Logger, err error) {
	code := apperr.CodeOf(err)

	status, ok := statusByCode[code]
	if !ok || code == apperr.InternalError {
		logger.Error("unhandled error at boundary", "error", err)
		WriteJSON(w, http.StatusInternalServerError, api.ErrorResponse{
			ErrorCode:    string(apperr.InternalError),
			ErrorMessage: apperr.InternalError.Description(),
		})
		return
	}

	message := code.Description()
	var appErr *apperr.Error
	if errors.As(err, &appErr) && appErr.Message != "" {
		message = appErr.Message
	}

	WriteJSON(w, status, api.ErrorResponse{
		ErrorCode:    string(code),
		ErrorMessage: message,
	})
}
