package repository

import (
	"context"
	"sort"

	"plaiz_studio/internal/domain/entities"
	"plaiz_studio/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultWorkersTableName = "workers"
	workersSkillIndex       = "skill-index"
)

type workerItem struct {
	ID             string `dynamodbav:"id"`
	Skill          string `dynamodbav:"skill"`
	Available      bool   `dynamodbav:"available"`
	ActiveProjects int    `dynamodbav:"active_projects"`
}

// WorkerDynamoMatcher picks the available worker with the given skill who has
// the fewest active projects, and reserves them by incrementing that count.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: skill-index (PK: skill)

type WorkerDynamoMatcher struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWorkerMatcher = (*WorkerDynamoMatcher)(nil)

func NewWorkerDynamoMatcher(ddb *dynamodb.Client) *WorkerDynamoMatcher {
	return &WorkerDynamoMatcher{
		ddb:       ddb,
		tableName: getenvDefault("WORKERS_TABLE", defaultWorkersTableName),
	}
}

// Match returns "" when nobody is available. A candidate that became
// unavailable between the query and the reservation is skipped.
func (m *WorkerDynamoMatcher) Match(ctx context.Context, skill entities.ServiceCategory) (string, error) {
	candidates, err := queryAll[workerItem](ctx, m.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(m.tableName),
		IndexName:              aws.String(workersSkillIndex),
		KeyConditionExpression: aws.String("skill = :skill"),
		FilterExpression:       aws.String("#available = :t"),
		ExpressionAttributeNames: map[string]string{
			"#available": "available",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":skill": str(string(skill)),
			":t":     &types.AttributeValueMemberBOOL{Value: true},
		},
	})
	if err != nil {
		return "", err
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].ActiveProjects != candidates[j].ActiveProjects {
			return candidates[i].ActiveProjects < candidates[j].ActiveProjects
		}
		return candidates[i].ID < candidates[j].ID
	})

	for _, c := range candidates {
		reserved, err := m.reserve(ctx, c.ID)
		if err != nil {
			return "", err
		}
		if reserved {
			return c.ID, nil
		}
	}
	return "", nil
}

func (m *WorkerDynamoMatcher) reserve(ctx context.Context, workerID string) (bool, error) {
	_, err := m.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(m.tableName),
		Key:                 idKey("id", workerID),
		ConditionExpression: aws.String("attribute_exists(#id) AND #available = :t"),
		UpdateExpression:    aws.String("ADD #active :one"),
		ExpressionAttributeNames: map[string]string{
			"#id":        "id",
			"#available": "available",
			"#active":    "active_projects",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":t":   &types.AttributeValueMemberBOOL{Value: true},
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Release undoes one reservation. The count never drops below zero.
func (m *WorkerDynamoMatcher) Release(ctx context.Context, workerID string) error {
	_, err := m.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(m.tableName),
		Key:                 idKey("id", workerID),
		ConditionExpression: aws.String("attribute_exists(#id) AND #active > :zero"),
		UpdateExpression:    aws.String("ADD #active :minus"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#active": "active_projects",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":zero":  &types.AttributeValueMemberN{Value: "0"},
			":minus": &types.AttributeValueMemberN{Value: "-1"},
		},
	})
	if err != nil && !isConditionFailed(err) {
		return err
	}
	return nil
}
