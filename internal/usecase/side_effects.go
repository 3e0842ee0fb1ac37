package usecase

import (
	"context"
	"fmt"
	"time"

	"plaiz_studio/internal/domain/effects"
	"plaiz_studio/internal/domain/entities"
	"plaiz_studio/internal/usecase/interfaces"
	"plaiz_studio/pkg/logger"
	"plaiz_studio/pkg/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SideEffectDispatcher performs the advisory effects of a committed
// transition. Every effect runs on its own; failures are logged and counted,
// never returned, so they cannot roll back or block the transition.
type SideEffectDispatcher struct {
	messages      interfaces.IMessageRepository
	notifications interfaces.INotificationRepository
	feed          interfaces.IChangeFeed
	dedupe        interfaces.IEffectDeduper
	log           *zap.Logger
}

func NewSideEffectDispatcher(
	messages interfaces.IMessageRepository,
	notifications interfaces.INotificationRepository,
	feed interfaces.IChangeFeed,
	dedupe interfaces.IEffectDeduper,
	log *zap.Logger,
) *SideEffectDispatcher {
	return &SideEffectDispatcher{
		messages:      messages,
		notifications: notifications,
		feed:          feed,
		dedupe:        dedupe,
		log:           logger.OrNop(log),
	}
}

// Dispatch runs effs in order. A nil dispatcher does nothing.
func (d *SideEffectDispatcher) Dispatch(ctx context.Context, effs []effects.Effect) {
	if d == nil || len(effs) == 0 {
		return
	}
	// The request may be cancelled once the response is written.
	ctx = context.WithoutCancel(ctx)

	for _, e := range effs {
		if d.dedupe != nil && !d.dedupe.AcquireOnce(ctx, e.Key()) {
			d.log.Debug("[effects][dispatcher] duplicate skipped", zap.String("key", e.Key()))
			metrics.RecordSideEffect(e.EffectType(), "duplicate")
			continue
		}
		if err := d.run(ctx, e); err != nil {
			d.log.Warn("[effects][dispatcher] effect failed",
				zap.String("type", e.EffectType()),
				zap.String("key", e.Key()),
				zap.Error(err),
			)
			metrics.RecordSideEffect(e.EffectType(), "failed")
			continue
		}
		metrics.RecordSideEffect(e.EffectType(), "ok")
	}
}

func (d *SideEffectDispatcher) run(ctx context.Context, e effects.Effect) error {
	now := time.Now().UTC()
	switch eff := e.(type) {
	case effects.ChatMessage:
		if d.messages == nil {
			return nil
		}
		_, err := d.messages.Create(ctx, entities.Message{
			ID:             uuid.NewString(),
			ConversationID: eff.ConversationID,
			ProjectID:      eff.ProjectID,
			System:         true,
			Body:           eff.Body,
			CreatedAt:      now,
		})
		return err
	case effects.Notification:
		if d.notifications == nil {
			return nil
		}
		_, err := d.notifications.Create(ctx, entities.Notification{
			ID:            uuid.NewString(),
			RecipientID:   eff.RecipientID,
			RecipientRole: eff.RecipientRole,
			ProjectID:     eff.ProjectID,
			Kind:          eff.Kind,
			Title:         eff.Title,
			Body:          eff.Body,
			CreatedAt:     now,
		})
		return err
	case effects.ChangeEvent:
		if d.feed == nil {
			return nil
		}
		return d.feed.Publish(ctx, changeRoutingKey(eff), eff)
	default:
		return fmt.Errorf("unsupported effect type %q", e.EffectType())
	}
}

func changeRoutingKey(e effects.ChangeEvent) string {
	if e.Status != "" {
		return e.Table + "." + e.Status
	}
	return e.Table + ".updated"
}
