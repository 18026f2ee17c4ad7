package accounts

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/chris/account-ledger-service/pkg/api"
	"github.com/chris/account-ledger-service/pkg/apperr"
	"github.com/chris/account-ledger-service/pkg/handlers"
	"github.com/chris/account-ledger-service/pkg/mapping"
	"github.com/chris/account-ledger-service/pkg/models"
)

// LifecycleService defines the account lifecycle operations the handler
// drives. Declared here so tests can substitute a mock.
type LifecycleService interface {
	CreateAccount(ctx context.Context, userID int64, initialBalance int64) (*models.Account, error)
	CloseAccount(ctx context.Context, userID int64, accountNumber string) (*models.Account, error)
	ListAccounts(ctx context.Context, userID int64) ([]models.Account, error)
}

// AccountsHandler holds the dependencies for account-related handlers.
type AccountsHandler struct {
	Service LifecycleService
	Logger  *slog.Logger
}

// NewAccountsHandler creates a new AccountsHandler.
func NewAccountsHandler(service LifecycleService, logger *slog.Logger) *AccountsHandler {
	return &AccountsHandler{Service: service, Logger: logger}
}

// CreateAccount handles POST /account.
func (h *AccountsHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req api.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, h.Logger, apperr.Newf(apperr.InvalidRequest, "invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		handlers.WriteError(w, h.Logger, err)
		return
	}

	account, err := h.Service.CreateAccount(r.Context(), req.UserId, req.InitialBalance)
	if err != nil {
		handlers.WriteError(w, h.Logger, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, mapping.ToAccountResponse(account))
}

// CloseAccount handles DELETE /account.
func (h *AccountsHandler) CloseAccount(w http.ResponseWriter, r *http.Request) {
	var req api.CloseAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, h.Logger, apperr.Newf(apperr.InvalidRequest, "invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		handlers.WriteError(w, h.Logger, err)
		return
	}

	account, err := h.Service.CloseAccount(r.Context(), req.UserId, req.AccountNumber)
	if err != nil {
		handlers.WriteError(w, h.Logger, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, mapping.ToAccountResponse(account))
}

// ListAccounts handles GET /account?user_id=.
func (h *AccountsHandler) ListAccounts(w http.ResponseWriter, r *http.Request, userID int64) {
	if userID <= 0 {
		handlers.WriteError(w, h.Logger, apperr.Newf(apperr.InvalidRequest, "user_id must be positive"))
		return
	}

	domainAccounts, err := h.Service.ListAccounts(r.Context(), userID)
	if err != nil {
		handlers.WriteError(w, h.Logger, err)
		return
	}

	infos := make([]*api.AccountInfo, len(domainAccounts))
	for i, account := range domainAccounts {
		infos[i] = mapping.ToAccountInfo(&account)
	}

	handlers.WriteJSON(w, http.StatusOK, infos)
}
