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
	defaultProjectFilesTableName = "project_files"
	projectFilesProjectIDIndex   = "project_id-index"
)

type projectFileItem struct {
	ID          string `dynamodbav:"id"`
	ProjectID   string `dynamodbav:"project_id"`
	UploaderID  string `dynamodbav:"uploader_id"`
	FileName    string `dynamodbav:"file_name"`
	URL         string `dynamodbav:"url"`
	ContentType string `dynamodbav:"content_type"`
	Size        int64  `dynamodbav:"size"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// ProjectFileDynamoRepository stores file metadata; the bytes live in object
// storage.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: project_id-index (PK: project_id)

type ProjectFileDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProjectFileRepository = (*ProjectFileDynamoRepository)(nil)

func NewProjectFileDynamoRepository(ddb *dynamodb.Client) *ProjectFileDynamoRepository {
	return &ProjectFileDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROJECT_FILES_TABLE", defaultProjectFilesTableName),
	}
}

func (r *ProjectFileDynamoRepository) Create(ctx context.Context, f entities.ProjectFile) (entities.ProjectFile, error) {
	av, err := attributevalue.MarshalMap(projectFileItem{
		ID:          f.ID,
		ProjectID:   f.ProjectID,
		UploaderID:  f.UploaderID,
		FileName:    f.FileName,
		URL:         f.URL,
		ContentType: f.ContentType,
		Size:        f.Size,
		CreatedAt:   formatTime(f.CreatedAt),
	})
	if err != nil {
		return entities.ProjectFile{}, err
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
		return entities.ProjectFile{}, err
	}
	return f, nil
}

func (r *ProjectFileDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.ProjectFile, error) {
	items, err := queryAll[projectFileItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(projectFilesProjectIDIndex),
		KeyConditionExpression: aws.String("project_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": str(projectID),
		},
	})
	if err != nil {
		return nil, err
	}

	list := make([]entities.ProjectFile, 0, len(items))
	for _, it := range items {
		list = append(list, entities.ProjectFile{
			ID:          it.ID,
			ProjectID:   it.ProjectID,
			UploaderID:  it.UploaderID,
			FileName:    it.FileName,
			URL:         it.URL,
			ContentType: it.ContentType,
			Size:        it.Size,
			CreatedAt:   parseTime(it.CreatedAt),
		})
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].CreatedAt.Before(list[j].CreatedAt) })
	return list, nil
}
