package dynamodb

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/chris/account-ledger-service/pkg/models"
	"github.com/chris/account-ledger-service/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetTransaction(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		store, mockClient := newTestStore(t)
		tx := &models.Transaction{
			Id:              "tx-1",
			AccountId:       "acc-1",
			AccountNumber:   "1000000000",
			Type:            models.TypeUse,
			Result:          models.ResultSuccess,
			Amount:          1000,
			BalanceSnapshot: 9000,
			TransactedAt:    time.Now().UTC().Truncate(time.Second),
		}

		mockClient.On("GetItem", mock.Anything, mock.MatchedBy(func(input *dynamodb.GetItemInput) bool {
			return *input.TableName == testTransactionsTable
		})).Return(&dynamodb.GetItemOutput{Item: mustMarshalMap(t, tx)}, nil)

		got, err := store.GetTransaction(context.Background(), "tx-1")

		require.NoError(t, err)
		assert.Equal(t, tx.Id, got.Id)
		assert.Equal(t, tx.Amount, got.Amount)
		assert.Nil(t, got.CancelledAt)
	})

	t.Run("Not Found", func(t *testing.T) {
		store, mockClient := newTestStore(t)

		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: nil}, nil)

		_, err := store.GetTransaction(context.Background(), "missing")

		assert.ErrorIs(t, err, storage.ErrTransactionNotFound)
	})
}

func TestSaveTransaction(t *testing.T) {
	store, mockClient := newTestStore(t)
	tx := &models.Transaction{
		AccountId:       "acc-1",
		AccountNumber:   "1000000000",
		Type:            models.TypeUse,
		Result:          models.ResultFail,
		Amount:          1000,
		BalanceSnapshot: 100,
		TransactedAt:    time.Now(),
	}

	mockClient.On("PutItem", mock.Anything, mock.MatchedBy(func(input *dynamodb.PutItemInput) bool {
		return *input.TableName == testTransactionsTable &&
			*input.ConditionExpression == "attribute_not_exists(id)"
	})).Return(&dynamodb.PutItemOutput{}, nil)

	saved, err := store.SaveTransaction(context.Background(), tx)

	require.NoError(t, err)
	// The ID is assigned at persist time.
	assert.NotEmpty(t, saved.Id)
	mockClient.AssertExpectations(t)
}
