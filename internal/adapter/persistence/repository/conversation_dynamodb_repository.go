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
	defaultConversationsTableName = "conversations"
	defaultMessagesTableName      = "messages"
	defaultNotificationsTableName = "notifications"
	messagesConversationIndex     = "conversation_id-index"
	notificationsRecipientIndex   = "recipient_id-index"
	notificationsRoleIndex        = "recipient_role-index"
)

type messageItem struct {
	ID             string `dynamodbav:"id"`
	ConversationID string `dynamodbav:"conversation_id"`
	ProjectID      string `dynamodbav:"project_id"`
	SenderID       string `dynamodbav:"sender_id,omitempty"`
	System         bool   `dynamodbav:"system"`
	Body           string `dynamodbav:"body"`
	CreatedAt      string `dynamodbav:"created_at"`
}

// MessageDynamoRepository persists chat lines.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: conversation_id-index (PK: conversation_id, SK: created_at)

type MessageDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMessageRepository = (*MessageDynamoRepository)(nil)

func NewMessageDynamoRepository(ddb *dynamodb.Client) *MessageDynamoRepository {
	return &MessageDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MESSAGES_TABLE", defaultMessagesTableName),
	}
}

func (r *MessageDynamoRepository) Create(ctx context.Context, m entities.Message) (entities.Message, error) {
	av, err := attributevalue.MarshalMap(messageItem{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		ProjectID:      m.ProjectID,
		SenderID:       m.SenderID,
		System:         m.System,
		Body:           m.Body,
		CreatedAt:      formatTime(m.CreatedAt),
	})
	if err != nil {
		return entities.Message{}, err
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
		return entities.Message{}, err
	}
	return m, nil
}

func (r *MessageDynamoRepository) ListByConversation(ctx context.Context, conversationID string) ([]entities.Message, error) {
	items, err := queryAll[messageItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(messagesConversationIndex),
		KeyConditionExpression: aws.String("conversation_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": str(conversationID),
		},
		ScanIndexForward: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	list := make([]entities.Message, 0, len(items))
	for _, it := range items {
		list = append(list, entities.Message{
			ID:             it.ID,
			ConversationID: it.ConversationID,
			ProjectID:      it.ProjectID,
			SenderID:       it.SenderID,
			System:         it.System,
			Body:           it.Body,
			CreatedAt:      parseTime(it.CreatedAt),
		})
	}
	return list, nil
}

type notificationItem struct {
	ID            string `dynamodbav:"id"`
	RecipientID   string `dynamodbav:"recipient_id,omitempty"`
	RecipientRole string `dynamodbav:"recipient_role,omitempty"`
	ProjectID     string `dynamodbav:"project_id,omitempty"`
	Kind          string `dynamodbav:"kind"`
	Title         string `dynamodbav:"title"`
	Body          string `dynamodbav:"body"`
	Read          bool   `dynamodbav:"read"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// NotificationDynamoRepository persists inbox entries.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: recipient_id-index (PK: recipient_id), recipient_role-index
//     (PK: recipient_role). Both are sparse: an entry carries one of the two.

type NotificationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.INotificationRepository = (*NotificationDynamoRepository)(nil)

func NewNotificationDynamoRepository(ddb *dynamodb.Client) *NotificationDynamoRepository {
	return &NotificationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("NOTIFICATIONS_TABLE", defaultNotificationsTableName),
	}
}

func (r *NotificationDynamoRepository) Create(ctx context.Context, n entities.Notification) (entities.Notification, error) {
	av, err := attributevalue.MarshalMap(notificationItem{
		ID:            n.ID,
		RecipientID:   n.RecipientID,
		RecipientRole: string(n.RecipientRole),
		ProjectID:     n.ProjectID,
		Kind:          n.Kind,
		Title:         n.Title,
		Body:          n.Body,
		Read:          n.Read,
		CreatedAt:     formatTime(n.CreatedAt),
	})
	if err != nil {
		return entities.Notification{}, err
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
		return entities.Notification{}, err
	}
	return n, nil
}

// ListForRecipient returns entries addressed to userID plus role-wide entries.
func (r *NotificationDynamoRepository) ListForRecipient(ctx context.Context, userID string, role entities.Role) ([]entities.Notification, error) {
	direct, err := r.query(ctx, notificationsRecipientIndex, "recipient_id", userID)
	if err != nil {
		return nil, err
	}
	if role == "" {
		return direct, nil
	}
	broadcast, err := r.query(ctx, notificationsRoleIndex, "recipient_role", string(role))
	if err != nil {
		return nil, err
	}
	for _, n := range broadcast {
		if n.RecipientID == "" {
			direct = append(direct, n)
		}
	}
	return direct, nil
}

// MarkRead applies only to entries addressed to userID directly.
func (r *NotificationDynamoRepository) MarkRead(ctx context.Context, id, userID string) (bool, error) {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey("id", id),
		ConditionExpression: aws.String("attribute_exists(#id) AND #recipient = :uid"),
		UpdateExpression:    aws.String("SET #read = :t"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": str(userID),
			":t":   &types.AttributeValueMemberBOOL{Value: true},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":        "id",
			"#recipient": "recipient_id",
			"#read":      "read",
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

func (r *NotificationDynamoRepository) query(ctx context.Context, index, attr, value string) ([]entities.Notification, error) {
	items, err := queryAll[notificationItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(index),
		KeyConditionExpression:    aws.String("#k = :v"),
		ExpressionAttributeNames:  map[string]string{"#k": attr},
		ExpressionAttributeValues: map[string]types.AttributeValue{":v": str(value)},
	})
	if err != nil {
		return nil, err
	}
	list := make([]entities.Notification, 0, len(items))
	for _, it := range items {
		list = append(list, entities.Notification{
			ID:            it.ID,
			RecipientID:   it.RecipientID,
			RecipientRole: entities.Role(it.RecipientRole),
			ProjectID:     it.ProjectID,
			Kind:          it.Kind,
			Title:         it.Title,
			Body:          it.Body,
			Read:          it.Read,
			CreatedAt:     parseTime(it.CreatedAt),
		})
	}
	return list, nil
}

type conversationItem struct {
	ID        string `dynamodbav:"id"`
	ProjectID string `dynamodbav:"project_id"`
	ClientID  string `dynamodbav:"client_id"`
	WorkerID  string `dynamodbav:"worker_id,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
}

// ConversationDynamoRepository persists project chat threads.
//
// Table requirements:
//   - PK: id (string)

type ConversationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IConversationRepository = (*ConversationDynamoRepository)(nil)

func NewConversationDynamoRepository(ddb *dynamodb.Client) *ConversationDynamoRepository {
	return &ConversationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CONVERSATIONS_TABLE", defaultConversationsTableName),
	}
}

func (r *ConversationDynamoRepository) Create(ctx context.Context, conv entities.Conversation) (entities.Conversation, error) {
	av, err := attributevalue.MarshalMap(conversationItem{
		ID:        conv.ID,
		ProjectID: conv.ProjectID,
		ClientID:  conv.ClientID,
		WorkerID:  conv.WorkerID,
		CreatedAt: formatTime(conv.CreatedAt),
	})
	if err != nil {
		return entities.Conversation{}, err
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
		return entities.Conversation{}, err
	}
	return conv, nil
}
