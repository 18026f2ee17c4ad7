package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/account-ledger-service/pkg/models"
	"github.com/chris/account-ledger-service/pkg/storage"
	"github.com/google/uuid"
)

// ApplyCancel atomically credits the account, appends the CANCEL transaction
// row, and stamps the original USE row as cancelled. Stamping the original is
// what makes a second cancel of the same transaction fail instead of
// double-crediting the account.
func (s *Store) ApplyCancel(ctx context.Context, account *models.Account, originalTxID string, tx *models.Transaction) (*models.Transaction, error) {
	tx.Id = uuid.New().String()

	txAV, err := attributevalue.MarshalMap(tx)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal transaction: %w", err)
	}

	amountAV, err := attributevalue.Marshal(tx.Amount)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal amount: %w", err)
	}

	cancelledAtAV, err := attributevalue.Marshal(tx.TransactedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cancellation timestamp: %w", err)
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				// Operation 1: Credit the account.
				Update: &types.Update{
					TableName: aws.String(s.AccountsTableName),
					Key: map[string]types.AttributeValue{
						"account_number": &types.AttributeValueMemberS{Value: account.AccountNumber},
					},
					UpdateExpression:    aws.String("SET balance = balance + :amount, version = version + :inc"),
					ConditionExpression: aws.String("version = :version"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":amount":  amountAV,
						":version": &types.AttributeValueMemberN{Value: strconv.FormatInt(account.Version, 10)},
						":inc":     &types.AttributeValueMemberN{Value: "1"},
					},
				},
			},
			{
				// Operation 2: Append the CANCEL ledger row.
				Put: &types.Put{
					TableName:           aws.String(s.TransactionsTableName),
					Item:                txAV,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
			{
				// Operation 3: Mark the original USE row as reversed.
				Update: &types.Update{
					TableName: aws.String(s.TransactionsTableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: originalTxID},
					},
					UpdateExpression:    aws.String("SET cancelled_at = :now"),
					ConditionExpression: aws.String("attribute_exists(id) AND attribute_not_exists(cancelled_at)"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":now": cancelledAtAV,
					},
				},
			},
		},
	}

	_, err = s.Client.TransactWriteItems(ctx, input)
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) && len(tce.CancellationReasons) == 3 {
			if conditionFailed(tce.CancellationReasons[2]) {
				return nil, storage.ErrAlreadyCancelled
			}
			if conditionFailed(tce.CancellationReasons[0]) {
				return nil, storage.ErrVersionConflict
			}
		}
		return nil, fmt.Errorf("failed to execute cancel transaction: %w", err)
	}

	account.Balance += tx.Amount
	account.Version++

	return tx, nil
}
