package repository

import (
	"context"

	"plaiz_studio/internal/domain/entities"
	"plaiz_studio/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultAgreementsTableName = "agreements"
	agreementsProjectIDIndex   = "project_id-index"
)

type agreementItem struct {
	ID               string `dynamodbav:"id"`
	ProjectID        string `dynamodbav:"project_id"`
	ProposedBy       string `dynamodbav:"proposed_by"`
	Amount           int64  `dynamodbav:"amount"`
	ClientAgreed     bool   `dynamodbav:"client_agreed"`
	FreelancerAgreed bool   `dynamodbav:"freelancer_agreed"`
	Declined         bool   `dynamodbav:"declined"`
	Deliverables     string `dynamodbav:"deliverables,omitempty"`
	Timeline         string `dynamodbav:"timeline,omitempty"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// AgreementDynamoRepository persists Agreement entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: project_id-index (PK: project_id, SK: created_at)

type AgreementDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAgreementRepository = (*AgreementDynamoRepository)(nil)

func NewAgreementDynamoRepository(ddb *dynamodb.Client) *AgreementDynamoRepository {
	return &AgreementDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("AGREEMENTS_TABLE", defaultAgreementsTableName),
	}
}

func (r *AgreementDynamoRepository) Create(ctx context.Context, a entities.Agreement) (entities.Agreement, error) {
	av, err := attributevalue.MarshalMap(toAgreementItem(a))
	if err != nil {
		return entities.Agreement{}, err
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
		return entities.Agreement{}, err
	}
	return a, nil
}

func (r *AgreementDynamoRepository) GetByID(ctx context.Context, id string) (entities.Agreement, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Agreement{}, err
	}
	if len(out.Item) == 0 {
		return entities.Agreement{}, nil
	}

	var it agreementItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Agreement{}, err
	}
	return fromAgreementItem(it), nil
}

func (r *AgreementDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.Agreement, error) {
	items, err := queryAll[agreementItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(agreementsProjectIDIndex),
		KeyConditionExpression: aws.String("project_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": str(projectID),
		},
	})
	if err != nil {
		return nil, err
	}
	list := make([]entities.Agreement, 0, len(items))
	for _, it := range items {
		list = append(list, fromAgreementItem(it))
	}
	return list, nil
}

// SetAcceptance flips only the caller's flag, so two parties accepting at
// the same time never overwrite each other.
func (r *AgreementDynamoRepository) SetAcceptance(ctx context.Context, id string, role entities.Role) (entities.Agreement, error) {
	attr := "client_agreed"
	if role == entities.RoleWorker {
		attr = "freelancer_agreed"
	}
	a, _, err := r.update(ctx, id, "", func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		return "SET #flag = :t, #updated_at = :now",
			map[string]types.AttributeValue{
				":t":   &types.AttributeValueMemberBOOL{Value: true},
				":now": str(now),
			},
			map[string]string{"#flag": attr, "#updated_at": "updated_at"}
	})
	return a, err
}

// MarkDeclined applies only to an agreement that is neither declined nor
// accepted by both parties.
func (r *AgreementDynamoRepository) MarkDeclined(ctx context.Context, id string) (entities.Agreement, bool, error) {
	cond := "#declined = :f AND NOT (#client_agreed = :t AND #freelancer_agreed = :t)"
	return r.update(ctx, id, cond, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		return "SET #declined = :t, #updated_at = :now",
			map[string]types.AttributeValue{
				":t":   &types.AttributeValueMemberBOOL{Value: true},
				":f":   &types.AttributeValueMemberBOOL{Value: false},
				":now": str(now),
			},
			map[string]string{
				"#declined":          "declined",
				"#client_agreed":     "client_agreed",
				"#freelancer_agreed": "freelancer_agreed",
				"#updated_at":        "updated_at",
			}
	})
}

func (r *AgreementDynamoRepository) update(
	ctx context.Context,
	id string,
	extraCond string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Agreement, bool, error) {
	updateExpr, values, names := build(nowString())
	cond := "attribute_exists(#id)"
	if extraCond != "" {
		cond += " AND " + extraCond
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       idKey("id", id),
		ConditionExpression:       aws.String(cond),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Agreement{}, false, nil
		}
		return entities.Agreement{}, false, err
	}
	var it agreementItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Agreement{}, false, err
	}
	return fromAgreementItem(it), true, nil
}

func toAgreementItem(a entities.Agreement) agreementItem {
	return agreementItem{
		ID:               a.ID,
		ProjectID:        a.ProjectID,
		ProposedBy:       a.ProposedBy,
		Amount:           a.Amount,
		ClientAgreed:     a.ClientAgreed,
		FreelancerAgreed: a.FreelancerAgreed,
		Declined:         a.Declined,
		Deliverables:     a.Deliverables,
		Timeline:         a.Timeline,
		CreatedAt:        formatTime(a.CreatedAt),
		UpdatedAt:        formatTime(a.UpdatedAt),
	}
}

func fromAgreementItem(it agreementItem) entities.Agreement {
	return entities.Agreement{
		ID:               it.ID,
		ProjectID:        it.ProjectID,
		ProposedBy:       it.ProposedBy,
		Amount:           it.Amount,
		ClientAgreed:     it.ClientAgreed,
		FreelancerAgreed: it.FreelancerAgreed,
		Declined:         it.Declined,
		Deliverables:     it.Deliverables,
		Timeline:         it.Timeline,
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}
