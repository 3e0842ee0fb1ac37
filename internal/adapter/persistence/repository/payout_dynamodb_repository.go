package repository

import (
	"context"
	"sort"

	"plaiz_studio/internal/domain/entities"
	"plaiz_studio/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPayoutsTableName = "payouts"
	payoutsWorkerIDIndex    = "worker_id-index"
)

type payoutItem struct {
	ID                string `dynamodbav:"id"`
	ProjectID         string `dynamodbav:"project_id"`
	WorkerID          string `dynamodbav:"worker_id"`
	GrossAmount       int64  `dynamodbav:"gross_amount"`
	WorkerShare       int64  `dynamodbav:"worker_share"`
	PlatformShare     int64  `dynamodbav:"platform_share"`
	Status            string `dynamodbav:"status"`
	TransferReference string `dynamodbav:"transfer_reference,omitempty"`
	CreatedAt         string `dynamodbav:"created_at"`
	SentAt            string `dynamodbav:"sent_at,omitempty"`
	VerifiedAt        string `dynamodbav:"verified_at,omitempty"`
}

// PayoutDynamoRepository persists Payout entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: worker_id-index (PK: worker_id)
//
// We use the project id as the payout id to guarantee 1 payout per project.

type PayoutDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPayoutRepository = (*PayoutDynamoRepository)(nil)

func NewPayoutDynamoRepository(ddb *dynamodb.Client) *PayoutDynamoRepository {
	return &PayoutDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYOUTS_TABLE", defaultPayoutsTableName),
	}
}

// Create stores p unless a payout with the same id exists, in which case the
// stored payout is returned with created=false.
func (r *PayoutDynamoRepository) Create(ctx context.Context, p entities.Payout) (entities.Payout, bool, error) {
	av, err := attributevalue.MarshalMap(toPayoutItem(p))
	if err != nil {
		return entities.Payout{}, false, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			existing, getErr := r.GetByID(ctx, p.ID)
			return existing, false, getErr
		}
		return entities.Payout{}, false, err
	}
	return p, true, nil
}

func (r *PayoutDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payout, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payout{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payout{}, nil
	}

	var it payoutItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payout{}, err
	}
	return fromPayoutItem(it), nil
}

func (r *PayoutDynamoRepository) ListByWorker(ctx context.Context, workerID string) ([]entities.Payout, error) {
	items, err := queryAll[payoutItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(payoutsWorkerIDIndex),
		KeyConditionExpression: aws.String("worker_id = :wid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":wid": str(workerID),
		},
	})
	if err != nil {
		return nil, err
	}
	return fromPayoutItems(items), nil
}

func (r *PayoutDynamoRepository) ListAll(ctx context.Context) ([]entities.Payout, error) {
	items, err := scanAll[payoutItem](ctx, r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}
	return fromPayoutItems(items), nil
}

func (r *PayoutDynamoRepository) SetTransferReference(ctx context.Context, id, reference string) (entities.Payout, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey("id", id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #ref = :ref"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ref": str(reference),
		},
		ExpressionAttributeNames: map[string]string{"#id": "id", "#ref": "transfer_reference"},
		ReturnValues:             types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Payout{}, nil
		}
		return entities.Payout{}, err
	}
	var it payoutItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Payout{}, err
	}
	return fromPayoutItem(it), nil
}

// PayoutDynamoLedger runs the two halves of the payout handshake as
// conditional status writes on the payouts table:
//
//	awaiting_payment -> payment_sent      (MarkAsSent)
//	payment_sent     -> payment_verified  (ConfirmReceipt)
//
// A write whose precondition no longer holds reports Success=false.

type PayoutDynamoLedger struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPayoutLedger = (*PayoutDynamoLedger)(nil)

func NewPayoutDynamoLedger(ddb *dynamodb.Client) *PayoutDynamoLedger {
	return &PayoutDynamoLedger{
		ddb:       ddb,
		tableName: getenvDefault("PAYOUTS_TABLE", defaultPayoutsTableName),
	}
}

func (l *PayoutDynamoLedger) MarkAsSent(ctx context.Context, payoutID string) (interfaces.LedgerResult, error) {
	return l.move(ctx, payoutID, entities.PayoutStatusAwaitingPayment, entities.PayoutStatusPaymentSent, "sent_at")
}

func (l *PayoutDynamoLedger) ConfirmReceipt(ctx context.Context, payoutID string) (interfaces.LedgerResult, error) {
	return l.move(ctx, payoutID, entities.PayoutStatusPaymentSent, entities.PayoutStatusPaymentVerified, "verified_at")
}

func (l *PayoutDynamoLedger) move(ctx context.Context, id string, from, to entities.PayoutStatus, stampAttr string) (interfaces.LedgerResult, error) {
	_, err := l.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(l.tableName),
		Key:                 idKey("id", id),
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:    aws.String("SET #status = :to, #stamp = :now"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from": str(string(from)),
			":to":   str(string(to)),
			":now":  str(nowString()),
		},
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
			"#stamp":  stampAttr,
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return interfaces.LedgerResult{Success: false}, nil
		}
		return interfaces.LedgerResult{}, err
	}
	return interfaces.LedgerResult{Success: true}, nil
}

func fromPayoutItems(items []payoutItem) []entities.Payout {
	list := make([]entities.Payout, 0, len(items))
	for _, it := range items {
		list = append(list, fromPayoutItem(it))
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list
}

func toPayoutItem(p entities.Payout) payoutItem {
	return payoutItem{
		ID:                p.ID,
		ProjectID:         p.ProjectID,
		WorkerID:          p.WorkerID,
		GrossAmount:       p.GrossAmount,
		WorkerShare:       p.WorkerShare,
		PlatformShare:     p.PlatformShare,
		Status:            string(p.Status),
		TransferReference: p.TransferReference,
		CreatedAt:         formatTime(p.CreatedAt),
		SentAt:            formatTimePtr(p.SentAt),
		VerifiedAt:        formatTimePtr(p.VerifiedAt),
	}
}

func fromPayoutItem(it payoutItem) entities.Payout {
	return entities.Payout{
		ID:                it.ID,
		ProjectID:         it.ProjectID,
		WorkerID:          it.WorkerID,
		GrossAmount:       it.GrossAmount,
		WorkerShare:       it.WorkerShare,
		PlatformShare:     it.PlatformShare,
		Status:            entities.PayoutStatus(it.Status),
		TransferReference: it.TransferReference,
		CreatedAt:         parseTime(it.CreatedAt),
		SentAt:            parseTimePtr(it.SentAt),
		VerifiedAt:        parseTimePtr(it.VerifiedAt),
	}
}
