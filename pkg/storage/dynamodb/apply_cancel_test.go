package dynamodb

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/account-ledger-service/pkg/models"
	"github.com/chris/account-ledger-service/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func cancelTransaction(amount, snapshot int64) *models.Transaction {
	return &models.Transaction{
		AccountId:       "acc-1",
		AccountNumber:   "1000000000",
		Type:            models.TypeCancel,
		Result:          models.ResultSuccess,
		Amount:          amount,
		BalanceSnapshot: snapshot,
		TransactedAt:    time.Now(),
	}
}

func TestApplyCancel_Success(t *testing.T) {
	// 1. Setup
	store, mockClient := newTestStore(t)
	account := testAccount(9000)
	tx := cancelTransaction(1000, 10000)

	// 2. Mock expectations
	var captured *dynamodb.TransactWriteItemsInput
	mockClient.On("TransactWriteItems", mock.Anything, mock.AnythingOfType("*dynamodb.TransactWriteItemsInput")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*dynamodb.TransactWriteItemsInput)
		}).
		Return(&dynamodb.TransactWriteItemsOutput{}, nil)

	// 3. Execute
	created, err := store.ApplyCancel(context.Background(), account, "use-tx", tx)

	// 4. Assert
	require.NoError(t, err)
	assert.NotEmpty(t, created.Id)
	assert.Equal(t, int64(10000), account.Balance)
	assert.Equal(t, int64(2), account.Version)

	require.NotNil(t, captured)
	require.Len(t, captured.TransactItems, 3)

	credit := captured.TransactItems[0].Update
	require.NotNil(t, credit)
	assert.Equal(t, "version = :version", *credit.ConditionExpression)

	stamp := captured.TransactItems[2].Update
	require.NotNil(t, stamp)
	assert.Equal(t, testTransactionsTable, *stamp.TableName)
	idAttr := stamp.Key["id"].(*types.AttributeValueMemberS)
	assert.Equal(t, "use-tx", idAttr.Value)
	assert.Equal(t, "attribute_exists(id) AND attribute_not_exists(cancelled_at)", *stamp.ConditionExpression)
}

func TestApplyCancel_AlreadyCancelled(t *testing.T) {
	store, mockClient := newTestStore(t)
	account := testAccount(9000)

	// The stamp on the original row is the item that fails when the USE was
	// already reversed.
	mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).
		Return(nil, &types.TransactionCanceledException{
			CancellationReasons: []types.CancellationReason{
				{Code: aws.String("None")},
				{Code: aws.String("None")},
				{Code: aws.String("ConditionalCheckFailed")},
			},
		})

	_, err := store.ApplyCancel(context.Background(), account, "use-tx", cancelTransaction(1000, 10000))

	assert.ErrorIs(t, err, storage.ErrAlreadyCancelled)
	assert.Equal(t, int64(9000), account.Balance)
}

func TestApplyCancel_VersionConflict(t *testing.T) {
	store, mockClient := newTestStore(t)
	account := testAccount(9000)

	mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).
		Return(nil, &types.TransactionCanceledException{
			CancellationReasons: []types.CancellationReason{
				{Code: aws.String("ConditionalCheckFailed")},
				{Code: aws.String("None")},
				{Code: aws.String("None")},
			},
		})

	_, err := store.ApplyCancel(context.Background(), account, "use-tx", cancelTransaction(1000, 10000))

	assert.ErrorIs(t, err, storage.ErrVersionConflict)
}
