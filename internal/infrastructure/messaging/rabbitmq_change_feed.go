package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"plaiz_studio/internal/usecase/interfaces"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// ExchangeName is the topic exchange realtime subscribers bind to, e.g.
// "project.#" or "payouts.*".
const ExchangeName = "plaiz.changes"

var ErrFeedClosed = errors.New("change feed connection is closed")

// RabbitChangeFeed publishes change events as persistent JSON messages.
type RabbitChangeFeed struct {
	mu      sync.Mutex
	conn    *amqp091.Connection
	channel *amqp091.Channel
	log     *zap.Logger
}

var _ interfaces.IChangeFeed = (*RabbitChangeFeed)(nil)

func NewRabbitChangeFeed(url string, log *zap.Logger) (*RabbitChangeFeed, error) {
	if log == nil {
		log = zap.NewNop()
	}
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(ExchangeName, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	log.Info("[changefeed][rabbitmq] connected", zap.String("exchange", ExchangeName))
	return &RabbitChangeFeed{conn: conn, channel: ch, log: log}, nil
}

func (f *RabbitChangeFeed) Close() {
	if f.channel != nil {
		_ = f.channel.Close()
	}
	if f.conn != nil {
		_ = f.conn.Close()
	}
}

// IsConnected checks if the feed connection is still alive.
func (f *RabbitChangeFeed) IsConnected() bool {
	return f.conn != nil && f.channel != nil && !f.conn.IsClosed()
}

func (f *RabbitChangeFeed) Publish(ctx context.Context, routingKey string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.IsConnected() {
		return ErrFeedClosed
	}
	err = f.channel.PublishWithContext(ctx,
		ExchangeName,
		routingKey,
		false,
		false,
		amqp091.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp091.Persistent,
		},
	)
	if err != nil {
		f.log.Warn("[changefeed][rabbitmq] publish failed", zap.String("routing_key", routingKey), zap.Error(err))
		return err
	}
	return nil
}
