package cache

import (
	"context"
	"time"

	appconfig "plaiz_studio/internal/infrastructure/config"
	"plaiz_studio/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "plaiz:effect:"

func NewRedisClient(cfg appconfig.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// RedisDeduper suppresses repeated side effects, e.g. the notification of a
// transition replayed by the reconciliation sweep.
type RedisDeduper struct {
	rdb *redis.Client
	ttl time.Duration
	log *zap.Logger
}

var _ interfaces.IEffectDeduper = (*RedisDeduper)(nil)

func NewRedisDeduper(rdb *redis.Client, ttl time.Duration, log *zap.Logger) *RedisDeduper {
	if log == nil {
		log = zap.NewNop()
	}
	return &RedisDeduper{rdb: rdb, ttl: ttl, log: log}
}

// AcquireOnce returns true the first time key is seen within the TTL. When
// Redis is unavailable it lets the effect through.
func (d *RedisDeduper) AcquireOnce(ctx context.Context, key string) bool {
	ok, err := d.rdb.SetNX(ctx, keyPrefix+key, 1, d.ttl).Result()
	if err != nil {
		d.log.Warn("[effects][dedupe] redis check failed, allowing effect", zap.String("key", key), zap.Error(err))
		return true
	}
	if !ok {
		d.log.Info("[effects][dedupe] skipped duplicated effect", zap.String("key", key))
	}
	return ok
}
