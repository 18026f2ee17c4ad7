package accounts

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/chris/account-ledger-service/pkg/api"
	"github.com/chris/account-ledger-service/pkg/apperr"
	"github.com/chris/account-ledger-service/pkg/handlers/accounts/mocks"
	"github.com/chris/account-ledger-service/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func postJSON(t *testing.T, handler http.HandlerFunc, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestCreateAccount(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// 1. Setup
		mockService := new(mocks.LifecycleService)
		h := NewAccountsHandler(mockService, testLogger())

		account := &models.Account{
			Id:            "acc-1",
			UserId:        12,
			AccountNumber: "1000000000",
			Balance:       10000,
			Status:        models.StatusInUse,
			Version:       1,
			RegisteredAt:  time.Now().UTC(),
		}

		// 2. Mock expectations
		mockService.On("CreateAccount", mock.Anything, int64(12), int64(10000)).Return(account, nil)

		// 3. Execute
		rec := postJSON(t, h.CreateAccount, api.CreateAccountRequest{UserId: 12, InitialBalance: 10000})

		// 4. Assert
		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp api.AccountResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, int64(12), resp.UserId)
		assert.Equal(t, "1000000000", resp.AccountNumber)
		assert.Nil(t, resp.UnregisteredAt)
	})

	t.Run("Max Accounts Reached", func(t *testing.T) {
		mockService := new(mocks.LifecycleService)
		h := NewAccountsHandler(mockService, testLogger())

		mockService.On("CreateAccount", mock.Anything, int64(12), int64(0)).
			Return(nil, apperr.New(apperr.MaxAccountPerUser))

		rec := postJSON(t, h.CreateAccount, api.CreateAccountRequest{UserId: 12, InitialBalance: 0})

		assert.Equal(t, http.StatusConflict, rec.Code)

		var resp api.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "MAX_ACCOUNT_PER_USER_10", resp.ErrorCode)
	})

	t.Run("Invalid Request", func(t *testing.T) {
		mockService := new(mocks.LifecycleService)
		h := NewAccountsHandler(mockService, testLogger())

		rec := postJSON(t, h.CreateAccount, api.CreateAccountRequest{UserId: 0, InitialBalance: 1000})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "CreateAccount", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCloseAccount(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(mocks.LifecycleService)
		h := NewAccountsHandler(mockService, testLogger())

		closedAt := time.Now().UTC()
		account := &models.Account{
			Id:             "acc-1",
			UserId:         12,
			AccountNumber:  "1000000000",
			Status:         models.StatusUnregistered,
			RegisteredAt:   closedAt.Add(-24 * time.Hour),
			UnregisteredAt: &closedAt,
		}
		mockService.On("CloseAccount", mock.Anything, int64(12), "1000000000").Return(account, nil)

		rec := postJSON(t, h.CloseAccount, api.CloseAccountRequest{UserId: 12, AccountNumber: "1000000000"})

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp api.AccountResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "1000000000", resp.AccountNumber)
		require.NotNil(t, resp.UnregisteredAt)
	})

	t.Run("Balance Not Empty", func(t *testing.T) {
		mockService := new(mocks.LifecycleService)
		h := NewAccountsHandler(mockService, testLogger())

		mockService.On("CloseAccount", mock.Anything, int64(12), "1000000000").
			Return(nil, apperr.New(apperr.BalanceNotEmpty))

		rec := postJSON(t, h.CloseAccount, api.CloseAccountRequest{UserId: 12, AccountNumber: "1000000000"})

		assert.Equal(t, http.StatusConflict, rec.Code)

		var resp api.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "BALANCE_NOT_EMPTY", resp.ErrorCode)
	})
}

func TestListAccounts(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(mocks.LifecycleService)
		h := NewAccountsHandler(mockService, testLogger())

		owned := []models.Account{
			{AccountNumber: "1000000000", Balance: 10000},
			{AccountNumber: "1000000001", Balance: 0},
		}
		mockService.On("ListAccounts", mock.Anything, int64(12)).Return(owned, nil)

		req := httptest.NewRequest(http.MethodGet, "/account?user_id=12", nil)
		rec := httptest.NewRecorder()
		h.ListAccounts(rec, req, 12)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp []api.AccountInfo
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp, 2)
		assert.Equal(t, "1000000000", resp[0].AccountNumber)
		assert.Equal(t, int64(10000), resp[0].Balance)
	})

	t.Run("Invalid User ID", func(t *testing.T) {
		mockService := new(mocks.LifecycleService)
		h := NewAccountsHandler(mockService, testLogger())

		req := httptest.NewRequest(http.MethodGet, "/account?user_id=0", nil)
		rec := httptest.NewRecorder()
		h.ListAccounts(rec, req, 0)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "ListAccounts", mock.Anything, mock.Anything)
	})

	t.Run("User Not Found", func(t *testing.T) {
		mockService := new(mocks.LifecycleService)
		h := NewAccountsHandler(mockService, testLogger())

		mockService.On("ListAccounts", mock.Anything, int64(99)).
			Return(nil, apperr.New(apperr.UserNotFound))

		req := httptest.NewRequest(http.MethodGet, "/account?user_id=99", nil)
		rec := httptest.NewRecorder()
		h.ListAccounts(rec, req, 99)

		assert.Equal(t, http.StatusNotFound, rec.Code)

		var resp api.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "USER_NOT_FOUND", resp.ErrorCode)
	})
}
