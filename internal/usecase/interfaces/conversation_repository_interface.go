package interfaces

import (
	"context"
	"plaiz_studio/internal/domain/entities"
)

// INotificationRepository stores inbox entries addressed to a user or a role.

type INotificationRepository interface {
	Create(ctx context.Context, n entities.Notification) (entities.Notification, error)
	ListForRecipient(ctx context.Context, userID string, role entities.Role) ([]entities.Notification, error)
	MarkRead(ctx context.Context, id, userID string) (bool, error)
}

// IMessageRepository stores chat lines of project conversations.

type IMessageRepository interface {
	Create(ctx context.Context, msg entities.Message) (entities.Message, error)
	ListByConversation(ctx context.Context, conversationID string) ([]entities.Message, error)
}

// IConversationRepository stores the thread row a project's messages hang off.

type IConversationRepository interface {
	Create(ctx context.Context, conv entities.Conversation) (entities.Conversation, error)
}
