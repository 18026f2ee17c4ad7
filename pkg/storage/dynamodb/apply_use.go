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

// ApplyUse atomically debits the account and appends the USE transaction row.
// The caller holds the per-account lock; the conditional expressions guard
// against a writer that slipped past an expired lock.
func (s *Store) ApplyUse(ctx context.Context, account *models.Account, tx *models.Transaction) (*models.Transaction, error) {
	tx.Id = uuid.New().String()

	txAV, err := attributevalue.MarshalMap(tx)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal transaction: %w", err)
	}

	amountAV, err := attributevalue.Marshal(tx.Amount)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal amount: %w", err)
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				// Operation 1: Debit the account.
				Update: &types.Update{
					TableName: aws.String(s.AccountsTableName),
					Key: map[string]types.AttributeValue{
						"account_number": &types.AttributeValueMemberS{Value: account.AccountNumber},
					},
					UpdateExpression:    aws.String("SET balance = balance - :amount, version = version + :inc"),
					ConditionExpression: aws.String("balance >= :amount AND version = :version AND #status = :in_use"),
					ExpressionAttributeNames: map[string]string{
						"#status": "status",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":amount":  amountAV,
						":version": &types.AttributeValueMemberN{Value: strconv.FormatInt(account.Version, 10)},
						":inc":     &types.AttributeValueMemberN{Value: "1"},
						":in_use":  &types.AttributeValueMemberS{Value: string(models.StatusInUse)},
					},
				},
			},
			{
				// Operation 2: Append the ledger row.
				Put: &types.Put{
					TableName:           aws.String(s.TransactionsTableName),
					Item:                txAV,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
		},
	}

	_, err = s.Client.TransactWriteItems(ctx, input)
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			if len(tce.CancellationReasons) > 0 && conditionFailed(tce.CancellationReasons[0]) {
				return nil, storage.ErrInsufficientBalance
			}
		}
		return nil, fmt.Errorf("failed to execute use transaction: %w", err)
	}

	account.Balance -= tx.Amount
	account.Version++

	return tx, nil
}

func conditionFailed(reason types.CancellationReason) bool {
	return reason.Code != nil && *reason.Code == "ConditionalCheckFailed"
}
