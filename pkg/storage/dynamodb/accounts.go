package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/account-ledger-service/pkg/models"
	"github.com/chris/account-ledger-service/pkg/storage"
)

const (
	userIDIndex = "user_id-index"

	// sequenceKey is the account-number counter item's key within the
	// accounts table. The "#" prefix keeps it out of the account number space.
	sequenceKey = "#SEQUENCE"

	// sequenceSeed is one below the first account number ever issued.
	sequenceSeed = 999999999
)

// GetAccountByNumber retrieves an account from DynamoDB by its account number.
func (s *Store) GetAccountByNumber(ctx context.Context, accountNumber string) (*models.Account, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"account_number": accountNumber})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal account number: %w", err)
	}

	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.AccountsTableName),
		Key:       key,
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get account from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("account %s: %w", accountNumber, storage.ErrAccountNotFound)
	}

	var account models.Account
	if err := attributevalue.UnmarshalMap(result.Item, &account); err != nil {
		return nil, fmt.Errorf("failed to unmarshal account: %w", err)
	}

	return &account, nil
}

// ListAccountsByUserID retrieves all accounts owned by a user.
func (s *Store) ListAccountsByUserID(ctx context.Context, userID int64) ([]models.Account, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.AccountsTableName),
		IndexName:              aws.String(userIDIndex),
		KeyConditionExpression: aws.String("user_id = :userID"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":userID": &types.AttributeValueMemberN{Value: strconv.FormatInt(userID, 10)},
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts by user ID: %w", err)
	}

	var accounts []models.Account
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &accounts); err != nil {
		return nil, fmt.Errorf("failed to unmarshal accounts: %w", err)
	}

	return accounts, nil
}

// CountAccountsByUserID returns how many accounts a user currently holds.
func (s *Store) CountAccountsByUserID(ctx context.Context, userID int64) (int, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.AccountsTableName),
		IndexName:              aws.String(userIDIndex),
		KeyConditionExpression: aws.String("user_id = :userID"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":userID": &types.AttributeValueMemberN{Value: strconv.FormatInt(userID, 10)},
		},
		Select: types.SelectCount,
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return 0, fmt.Errorf("failed to count accounts by user ID: %w", err)
	}

	return int(result.Count), nil
}

// NextAccountNumber reserves the next account number by atomically bumping
// the sequence counter item. The first call ever issues "1000000000".
func (s *Store) NextAccountNumber(ctx context.Context) (string, error) {
	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.AccountsTableName),
		Key: map[string]types.AttributeValue{
			"account_number": &types.AttributeValueMemberS{Value: sequenceKey},
		},
		UpdateExpression: aws.String("SET seq = if_not_exists(seq, :seed) + :one"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":seed": &types.AttributeValueMemberN{Value: strconv.Itoa(sequenceSeed)},
			":one":  &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueAllNew,
	}

	result, err := s.Client.UpdateItem(ctx, input)
	if err != nil {
		return "", fmt.Errorf("failed to advance account number sequence: %w", err)
	}

	seqAttr, ok := result.Attributes["seq"].(*types.AttributeValueMemberN)
	if !ok {
		return "", fmt.Errorf("account number sequence item has no numeric seq attribute")
	}

	return seqAttr.Value, nil
}

// CreateAccount persists a new account record in DynamoDB.
func (s *Store) CreateAccount(ctx context.Context, account *models.Account) (*models.Account, error) {
	accountAV, err := attributevalue.MarshalMap(account)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal account: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.AccountsTableName),
		Item:                accountAV,
		ConditionExpression: aws.String("attribute_not_exists(account_number)"), // Prevent overwriting existing accounts.
	}

	_, err = s.Client.PutItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil, fmt.Errorf("account %s: %w", account.AccountNumber, storage.ErrAccountExists)
		}
		return nil, fmt.Errorf("failed to create account in DynamoDB: %w", err)
	}

	return account, nil
}

// CloseAccount marks an account UNREGISTERED. The conditional write keeps the
// transition one-way even under a racing close.
func (s *Store) CloseAccount(ctx context.Context, account *models.Account) error {
	now := time.Now()
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return fmt.Errorf("failed to marshal close timestamp: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.AccountsTableName),
		Key: map[string]types.AttributeValue{
			"account_number": &types.AttributeValueMemberS{Value: account.AccountNumber},
		},
		UpdateExpression:    aws.String("SET #status = :unregistered, unregistered_at = :now, version = version + :inc"),
		ConditionExpression: aws.String("#status = :in_use AND version = :version"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":unregistered": &types.AttributeValueMemberS{Value: string(models.StatusUnregistered)},
			":in_use":       &types.AttributeValueMemberS{Value: string(models.StatusInUse)},
			":now":          nowAV,
			":version":      &types.AttributeValueMemberN{Value: strconv.FormatInt(account.Version, 10)},
			":inc":          &types.AttributeValueMemberN{Value: "1"},
		},
	}

	_, err = s.Client.UpdateItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return fmt.Errorf("account %s: %w", account.AccountNumber, storage.ErrVersionConflict)
		}
		return fmt.Errorf("failed to close account in DynamoDB: %w", err)
	}

	account.Status = models.StatusUnregistered
	account.UnregisteredAt = &now
	account.Version++

	return nil
}
