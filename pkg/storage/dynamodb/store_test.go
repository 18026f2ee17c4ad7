package dynamodb

import (
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/account-ledger-service/pkg/models"
	"github.com/chris/account-ledger-service/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/require"
)

const (
	testUsersTable        = "users-test"
	testAccountsTable     = "accounts-test"
	testTransactionsTable = "transactions-test"
)

func newTestStore(t *testing.T) (*Store, *mocks.DynamoDBAPI) {
	t.Helper()
	mockClient := new(mocks.DynamoDBAPI)
	return New(mockClient, testUsersTable, testAccountsTable, testTransactionsTable), mockClient
}

func mustMarshalMap(t *testing.T, v interface{}) map[string]types.AttributeValue {
	t.Helper()
	item, err := attributevalue.MarshalMap(v)
	require.NoError(t, err)
	return item
}

func testAccount(balance int64) *models.Account {
	return &models.Account{
		Id:            "acc-1",
		UserId:        12,
		AccountNumber: "1000000000",
		Balance:       balance,
		Status:        models.StatusInUse,
		Version:       1,
		RegisteredAt:  time.Now().Add(-24 * time.Hour).UTC(),
	}
}
