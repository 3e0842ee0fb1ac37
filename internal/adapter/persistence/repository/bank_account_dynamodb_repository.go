package repository

import (
	"context"

	"plaiz_studio/internal/domain/entities"
	"plaiz_studio/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultBankAccountsTableName = "bank_accounts"

type bankAccountItem struct {
	WorkerID      string `dynamodbav:"worker_id"`
	BankName      string `dynamodbav:"bank_name"`
	AccountNumber string `dynamodbav:"account_number"`
	AccountName   string `dynamodbav:"account_name"`
	RecipientCode string `dynamodbav:"recipient_code,omitempty"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// BankAccountDynamoRepository keeps one bank account per worker.
//
// Table requirements:
//   - PK: worker_id (string)

type BankAccountDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBankAccountRepository = (*BankAccountDynamoRepository)(nil)

func NewBankAccountDynamoRepository(ddb *dynamodb.Client) *BankAccountDynamoRepository {
	return &BankAccountDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BANK_ACCOUNTS_TABLE", defaultBankAccountsTableName),
	}
}

// Upsert replaces the worker's account.
func (r *BankAccountDynamoRepository) Upsert(ctx context.Context, b entities.BankAccount) (entities.BankAccount, error) {
	av, err := attributevalue.MarshalMap(bankAccountItem{
		WorkerID:      b.WorkerID,
		BankName:      b.BankName,
		AccountNumber: b.AccountNumber,
		AccountName:   b.AccountName,
		RecipientCode: b.RecipientCode,
		UpdatedAt:     formatTime(b.UpdatedAt),
	})
	if err != nil {
		return entities.BankAccount{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.BankAccount{}, err
	}
	return b, nil
}

func (r *BankAccountDynamoRepository) GetByWorkerID(ctx context.Context, workerID string) (entities.BankAccount, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey("worker_id", workerID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.BankAccount{}, err
	}
	if len(out.Item) == 0 {
		return entities.BankAccount{}, nil
	}

	var it bankAccountItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.BankAccount{}, err
	}
	return entities.BankAccount{
		WorkerID:      it.WorkerID,
		BankName:      it.BankName,
		AccountNumber: it.AccountNumber,
		AccountName:   it.AccountName,
		RecipientCode: it.RecipientCode,
		UpdatedAt:     parseTime(it.UpdatedAt),
	}, nil
}
