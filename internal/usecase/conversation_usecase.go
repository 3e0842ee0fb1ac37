package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"plaiz_studio/internal/domain/effects"
	"plaiz_studio/internal/domain/entities"
	"plaiz_studio/internal/usecase/interfaces"
	"plaiz_studio/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxMessageLength = 4000

var (
	ErrInvalidMessage        = fmt.Errorf("%w: message must be 1 to %d characters", ErrValidation, maxMessageLength)
	ErrInvalidNotificationID = fmt.Errorf("%w: invalid notification id", ErrValidation)
	ErrNotificationNotFound  = fmt.Errorf("notification %w", ErrNotFound)
)

// IConversationUseCase covers the project chat and the notification inbox.

type IConversationUseCase interface {
	SendMessage(ctx context.Context, s entities.Session, projectID, body string) (entities.Message, error)
	ListMessages(ctx context.Context, s entities.Session, projectID string) ([]entities.Message, error)
	ListNotifications(ctx context.Context, s entities.Session) ([]entities.Notification, error)
	MarkNotificationRead(ctx context.Context, s entities.Session, id string) error
}

type ConversationUseCase struct {
	projects      interfaces.IProjectRepository
	messages      interfaces.IMessageRepository
	notifications interfaces.INotificationRepository
	dispatcher    *SideEffectDispatcher
	log           *zap.Logger
}

var _ IConversationUseCase = (*ConversationUseCase)(nil)

func NewConversationUseCase(
	projects interfaces.IProjectRepository,
	messages interfaces.IMessageRepository,
	notifications interfaces.INotificationRepository,
	dispatcher *SideEffectDispatcher,
	log *zap.Logger,
) *ConversationUseCase {
	return &ConversationUseCase{
		projects:      projects,
		messages:      messages,
		notifications: notifications,
		dispatcher:    dispatcher,
		log:           logger.OrNop(log),
	}
}

func (u *ConversationUseCase) SendMessage(ctx context.Context, s entities.Session, projectID, body string) (entities.Message, error) {
	if err := requireSession(s); err != nil {
		return entities.Message{}, err
	}
	body = strings.TrimSpace(body)
	if body == "" || len([]rune(body)) > maxMessageLength {
		return entities.Message{}, ErrInvalidMessage
	}
	p, err := loadProject(ctx, u.projects, projectID)
	if err != nil {
		return entities.Message{}, err
	}
	if err := canView(p, s); err != nil {
		return entities.Message{}, err
	}
	if p.ConversationID == "" {
		return entities.Message{}, fmt.Errorf("%w: project %s has no conversation", ErrPrecondition, p.ID)
	}
	m, err := u.messages.Create(ctx, entities.Message{
		ID:             uuid.NewString(),
		ConversationID: p.ConversationID,
		ProjectID:      p.ID,
		SenderID:       s.UserID,
		Body:           body,
		CreatedAt:      time.Now().UTC(),
	})
	if err != nil {
		return entities.Message{}, external(err)
	}
	u.dispatcher.Dispatch(ctx, []effects.Effect{
		effects.ChangeEvent{Table: "messages", RecordID: m.ID, ProjectID: p.ID},
	})
	u.log.Debug("[conversation][usecase] message sent", zap.String("project_id", p.ID), zap.String("message_id", m.ID))
	return m, nil
}

func (u *ConversationUseCase) ListMessages(ctx context.Context, s entities.Session, projectID string) ([]entities.Message, error) {
	if err := requireSession(s); err != nil {
		return nil, err
	}
	p, err := loadProject(ctx, u.projects, projectID)
	if err != nil {
		return nil, err
	}
	if err := canView(p, s); err != nil {
		return nil, err
	}
	if p.ConversationID == "" {
		return []entities.Message{}, nil
	}
	list, err := u.messages.ListByConversation(ctx, p.ConversationID)
	if err != nil {
		return nil, external(err)
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].CreatedAt.Before(list[j].CreatedAt) })
	return list, nil
}

func (u *ConversationUseCase) ListNotifications(ctx context.Context, s entities.Session) ([]entities.Notification, error) {
	if err := requireSession(s); err != nil {
		return nil, err
	}
	list, err := u.notifications.ListForRecipient(ctx, s.UserID, s.Role)
	if err != nil {
		return nil, external(err)
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, nil
}

func (u *ConversationUseCase) MarkNotificationRead(ctx context.Context, s entities.Session, id string) error {
	if err := requireSession(s); err != nil {
		return err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidNotificationID
	}
	ok, err := u.notifications.MarkRead(ctx, id, s.UserID)
	if err != nil {
		return external(err)
	}
	if !ok {
		return ErrNotificationNotFound
	}
	return nil
}
