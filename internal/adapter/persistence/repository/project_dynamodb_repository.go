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
	defaultProjectsTableName = "projects"
	projectsClientIDIndex    = "client_id-index"
	projectsWorkerIDIndex    = "worker_id-index"
	projectsStatusIndex      = "status-index"
)

type projectItem struct {
	ID             string   `dynamodbav:"id"`
	ClientID       string   `dynamodbav:"client_id"`
	WorkerID       string   `dynamodbav:"worker_id,omitempty"`
	Title          string   `dynamodbav:"title"`
	Description    string   `dynamodbav:"description"`
	Category       string   `dynamodbav:"category"`
	Status         string   `dynamodbav:"status"`
	WebScope       string   `dynamodbav:"web_scope,omitempty"`
	PrintItem      string   `dynamodbav:"print_item,omitempty"`
	PrintQuantity  int      `dynamodbav:"print_quantity,omitempty"`
	AttachmentURLs []string `dynamodbav:"attachment_urls,omitempty"`
	ConversationID string   `dynamodbav:"conversation_id,omitempty"`
	CreatedAt      string   `dynamodbav:"created_at"`
	UpdatedAt      string   `dynamodbav:"updated_at"`
}

// ProjectDynamoRepository persists Project entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: client_id-index (PK: client_id), worker_id-index (PK: worker_id),
//     status-index (PK: status)
//
// Status changes are conditional on the stored status so that concurrent
// callers cannot both apply the same transition.

type ProjectDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProjectRepository = (*ProjectDynamoRepository)(nil)

func NewProjectDynamoRepository(ddb *dynamodb.Client) *ProjectDynamoRepository {
	return &ProjectDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROJECTS_TABLE", defaultProjectsTableName),
	}
}

func (r *ProjectDynamoRepository) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	av, err := attributevalue.MarshalMap(toProjectItem(p))
	if err != nil {
		return entities.Project{}, err
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
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectDynamoRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Project{}, err
	}
	if len(out.Item) == 0 {
		return entities.Project{}, nil
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func (r *ProjectDynamoRepository) ListByClient(ctx context.Context, clientID string) ([]entities.Project, error) {
	return r.queryIndex(ctx, projectsClientIDIndex, "client_id", clientID)
}

func (r *ProjectDynamoRepository) ListByWorker(ctx context.Context, workerID string) ([]entities.Project, error) {
	return r.queryIndex(ctx, projectsWorkerIDIndex, "worker_id", workerID)
}

// ListByStatuses queries status-index once per stored spelling of each
// status. An empty list returns nothing.
func (r *ProjectDynamoRepository) ListByStatuses(ctx context.Context, statuses []entities.ProjectStatus) ([]entities.Project, error) {
	var out []entities.Project
	for _, spelling := range storedSpellings(statuses) {
		list, err := r.queryIndex(ctx, projectsStatusIndex, "status", spelling)
		if err != nil {
			return nil, err
		}
		out = append(out, list...)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// UpdateStatus sets the status only while the stored one is in from. A lost
// race reports applied=false with a nil error.
func (r *ProjectDynamoRepository) UpdateStatus(ctx context.Context, id string, from []entities.ProjectStatus, to entities.ProjectStatus) (entities.Project, bool, error) {
	return r.conditionalUpdate(ctx, id, from, "SET #status = :to, #updated_at = :now",
		map[string]types.AttributeValue{":to": str(string(to))},
		map[string]string{"#updated_at": "updated_at"},
	)
}

func (r *ProjectDynamoRepository) AssignWorker(ctx context.Context, id, workerID string, from []entities.ProjectStatus) (entities.Project, bool, error) {
	return r.conditionalUpdate(ctx, id, from, "SET #worker_id = :worker, #status = :to, #updated_at = :now",
		map[string]types.AttributeValue{
			":worker": str(workerID),
			":to":     str(string(entities.ProjectStatusAssigned)),
		},
		map[string]string{"#worker_id": "worker_id", "#updated_at": "updated_at"},
	)
}

func (r *ProjectDynamoRepository) conditionalUpdate(
	ctx context.Context,
	id string,
	from []entities.ProjectStatus,
	updateExpr string,
	values map[string]types.AttributeValue,
	names map[string]string,
) (entities.Project, bool, error) {
	cond, condValues := statusCondition(from)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       idKey("id", id),
		ConditionExpression:       aws.String("attribute_exists(#id) AND " + cond),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: mergeValues(mergeValues(values, condValues), map[string]types.AttributeValue{":now": str(nowString())}),
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id", "#status": "status"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Project{}, false, nil
		}
		return entities.Project{}, false, err
	}
	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Project{}, false, err
	}
	return fromProjectItem(it), true, nil
}

func storedSpellings(statuses []entities.ProjectStatus) []string {
	var out []string
	for _, s := range statuses {
		out = append(out, s.StoredSpellings()...)
	}
	return out
}

// statusCondition matches any stored spelling of the from statuses.
func statusCondition(from []entities.ProjectStatus) (string, map[string]types.AttributeValue) {
	return inList("#status", "f", storedSpellings(from))
}

func (r *ProjectDynamoRepository) queryIndex(ctx context.Context, index, attr, value string) ([]entities.Project, error) {
	items, err := queryAll[projectItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(index),
		KeyConditionExpression:    aws.String("#k = :v"),
		ExpressionAttributeNames:  map[string]string{"#k": attr},
		ExpressionAttributeValues: map[string]types.AttributeValue{":v": str(value)},
	})
	if err != nil {
		return nil, err
	}
	list := make([]entities.Project, 0, len(items))
	for _, it := range items {
		list = append(list, fromProjectItem(it))
	}
	return list, nil
}

func toProjectItem(p entities.Project) projectItem {
	return projectItem{
		ID:             p.ID,
		ClientID:       p.ClientID,
		WorkerID:       p.WorkerID,
		Title:          p.Title,
		Description:    p.Description,
		Category:       string(p.Category),
		Status:         string(p.Status),
		WebScope:       string(p.WebScope),
		PrintItem:      p.PrintItem,
		PrintQuantity:  p.PrintQuantity,
		AttachmentURLs: p.AttachmentURLs,
		ConversationID: p.ConversationID,
		CreatedAt:      formatTime(p.CreatedAt),
		UpdatedAt:      formatTime(p.UpdatedAt),
	}
}

// fromProjectItem normalizes legacy status spellings. An unknown stored status
// is kept verbatim so that guards reject it rather than the read failing.
func fromProjectItem(it projectItem) entities.Project {
	status, err := entities.ParseProjectStatus(it.Status)
	if err != nil {
		status = entities.ProjectStatus(it.Status)
	}
	return entities.Project{
		ID:             it.ID,
		ClientID:       it.ClientID,
		WorkerID:       it.WorkerID,
		Title:          it.Title,
		Description:    it.Description,
		Category:       entities.ServiceCategory(it.Category),
		Status:         status,
		WebScope:       entities.WebScope(it.WebScope),
		PrintItem:      it.PrintItem,
		PrintQuantity:  it.PrintQuantity,
		AttachmentURLs: it.AttachmentURLs,
		ConversationID: it.ConversationID,
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}
