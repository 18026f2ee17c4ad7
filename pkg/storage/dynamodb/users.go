package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/chris/account-ledger-service/pkg/models"
	"github.com/chris/account-ledger-service/pkg/storage"
)

// GetUser retrieves an account user from DynamoDB by their numeric ID.
func (s *Store) GetUser(ctx context.Context, userID int64) (*models.AccountUser, error) {
	key, err := attributevalue.MarshalMap(map[string]int64{"id": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal user ID: %w", err)
	}

	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.UsersTableName),
		Key:       key,
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get user from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("user %d: %w", userID, storage.ErrUserNotFound)
	}

	var user models.AccountUser
	if err := attributevalue.UnmarshalMap(result.Item, &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}

	return &user, nil
}
