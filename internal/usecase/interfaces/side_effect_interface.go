package interfaces

import "context"

// IChangeFeed publishes "aggregate changed" events to realtime subscribers.

type IChangeFeed interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

// IEffectDeduper reports whether an effect key is seen for the first time.

type IEffectDeduper interface {
	AcquireOnce(ctx context.Context, key string) bool
}
