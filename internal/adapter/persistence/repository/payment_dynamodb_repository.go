package repository

import (
	"context"
	"encoding/json"
	"sort"

	"plaiz_studio/internal/domain/entities"
	"plaiz_studio/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "payments"
	paymentsProjectIDIndex   = "project_id-index"
)

type paymentItem struct {
	ID                 string                 `dynamodbav:"id"`
	ProjectID          string                 `dynamodbav:"project_id"`
	PayerID            string                 `dynamodbav:"payer_id"`
	Phase              string                 `dynamodbav:"phase"`
	Amount             int64                  `dynamodbav:"amount"`
	Status             string                 `dynamodbav:"status"`
	Reference          string                 `dynamodbav:"reference"`
	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
	CreatedAt          string                 `dynamodbav:"created_at"`
}

// PaymentDynamoRepository persists client Payments in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: project_id-index (PK: project_id)

type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
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
		return entities.Payment{}, err
	}
	return p, nil
}

// ListByProjectID returns the payments of a project oldest first. The index
// is eventually consistent; the reconciliation sweep covers a missed read.
func (r *PaymentDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.Payment, error) {
	items, err := queryAll[paymentItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsProjectIDIndex),
		KeyConditionExpression: aws.String("project_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": str(projectID),
		},
	})
	if err != nil {
		return nil, err
	}

	list := make([]entities.Payment, 0, len(items))
	for _, it := range items {
		list = append(list, fromPaymentItem(it))
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].CreatedAt.Before(list[j].CreatedAt) })
	return list, nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	it := paymentItem{
		ID:        p.ID,
		ProjectID: p.ProjectID,
		PayerID:   p.PayerID,
		Phase:     string(p.Phase),
		Amount:    p.Amount,
		Status:    string(p.Status),
		Reference: p.Reference,
		CreatedAt: formatTime(p.CreatedAt),
	}
	if len(p.ProviderPayload) > 0 {
		it.ProviderPayloadRaw = string(p.ProviderPayload)
		var decoded map[string]interface{}
		if err := json.Unmarshal(p.ProviderPayload, &decoded); err == nil {
			it.ProviderPayload = decoded
		}
	}
	return it
}

func fromPaymentItem(it paymentItem) entities.Payment {
	status, ok := entities.ParsePaymentStatus(it.Status)
	if !ok {
		status = entities.PaymentStatus(it.Status)
	}
	p := entities.Payment{
		ID:        it.ID,
		ProjectID: it.ProjectID,
		PayerID:   it.PayerID,
		Phase:     entities.PaymentPhase(it.Phase),
		Amount:    it.Amount,
		Status:    status,
		Reference: it.Reference,
		CreatedAt: parseTime(it.CreatedAt),
	}
	if it.ProviderPayloadRaw != "" {
		p.ProviderPayload = json.RawMessage(it.ProviderPayloadRaw)
	}
	return p
}
