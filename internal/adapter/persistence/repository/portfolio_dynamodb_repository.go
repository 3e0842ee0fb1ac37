package repository

import (
	"context"
	"strings"

	"plaiz_studio/internal/domain/entities"
	"plaiz_studio/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPortfolioTableName = "portfolio_items"

type portfolioItem struct {
	ID        string `dynamodbav:"id"`
	WorkerID  string `dynamodbav:"worker_id"`
	ProjectID string `dynamodbav:"project_id,omitempty"`
	Title     string `dynamodbav:"title"`
	Category  string `dynamodbav:"category"`
	ImageURL  string `dynamodbav:"image_url"`
	Approved  bool   `dynamodbav:"approved"`
	Featured  bool   `dynamodbav:"featured"`
	CreatedAt string `dynamodbav:"created_at"`
}

// PortfolioDynamoRepository persists showcase items.
//
// Table requirements:
//   - PK: id (string)

type PortfolioDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPortfolioRepository = (*PortfolioDynamoRepository)(nil)

func NewPortfolioDynamoRepository(ddb *dynamodb.Client) *PortfolioDynamoRepository {
	return &PortfolioDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PORTFOLIO_TABLE", defaultPortfolioTableName),
	}
}

func (r *PortfolioDynamoRepository) Create(ctx context.Context, item entities.PortfolioItem) (entities.PortfolioItem, error) {
	av, err := attributevalue.MarshalMap(toPortfolioItem(item))
	if err != nil {
		return entities.PortfolioItem{}, err
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
		return entities.PortfolioItem{}, err
	}
	return item, nil
}

func (r *PortfolioDynamoRepository) GetByID(ctx context.Context, id string) (entities.PortfolioItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PortfolioItem{}, err
	}
	if len(out.Item) == 0 {
		return entities.PortfolioItem{}, nil
	}

	var it portfolioItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PortfolioItem{}, err
	}
	return fromPortfolioItem(it), nil
}

// List scans the table; the showcase is small and filtered by the caller.
func (r *PortfolioDynamoRepository) List(ctx context.Context) ([]entities.PortfolioItem, error) {
	items, err := scanAll[portfolioItem](ctx, r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}
	list := make([]entities.PortfolioItem, 0, len(items))
	for _, it := range items {
		list = append(list, fromPortfolioItem(it))
	}
	return list, nil
}

// SetFlags updates the non-nil flags. A missing item returns the zero value.
func (r *PortfolioDynamoRepository) SetFlags(ctx context.Context, id string, approved, featured *bool) (entities.PortfolioItem, error) {
	var sets []string
	values := map[string]types.AttributeValue{}
	names := map[string]string{"#id": "id"}
	if approved != nil {
		sets = append(sets, "#approved = :approved")
		values[":approved"] = &types.AttributeValueMemberBOOL{Value: *approved}
		names["#approved"] = "approved"
	}
	if featured != nil {
		sets = append(sets, "#featured = :featured")
		values[":featured"] = &types.AttributeValueMemberBOOL{Value: *featured}
		names["#featured"] = "featured"
	}
	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       idKey("id", id),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String("SET " + strings.Join(sets, ", ")),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.PortfolioItem{}, nil
		}
		return entities.PortfolioItem{}, err
	}
	var it portfolioItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PortfolioItem{}, err
	}
	return fromPortfolioItem(it), nil
}

func toPortfolioItem(p entities.PortfolioItem) portfolioItem {
	return portfolioItem{
		ID:        p.ID,
		WorkerID:  p.WorkerID,
		ProjectID: p.ProjectID,
		Title:     p.Title,
		Category:  string(p.Category),
		ImageURL:  p.ImageURL,
		Approved:  p.Approved,
		Featured:  p.Featured,
		CreatedAt: formatTime(p.CreatedAt),
	}
}

func fromPortfolioItem(it portfolioItem) entities.PortfolioItem {
	return entities.PortfolioItem{
		ID:        it.ID,
		WorkerID:  it.WorkerID,
		ProjectID: it.ProjectID,
		Title:     it.Title,
		Category:  entities.ServiceCategory(it.Category),
		ImageURL:  it.ImageURL,
		Approved:  it.Approved,
		Featured:  it.Featured,
		CreatedAt: parseTime(it.CreatedAt),
	}
}
