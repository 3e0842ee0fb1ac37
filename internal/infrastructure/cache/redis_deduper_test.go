package cache

import (
	"context"
	"testing"
	"time"

	appconfig "plaiz_studio/internal/infrastructure/config"
)

func TestRedisDeduper_AllowsWhenRedisUnavailable(t *testing.T) {
	rdb := NewRedisClient(appconfig.RedisConfig{Addr: "127.0.0.1:1"})
	defer rdb.Close()
	d := NewRedisDeduper(rdb, time.Minute, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if !d.AcquireOnce(ctx, "notification:p1:approved") {
		t.Fatalf("expected effect to pass through when redis is down")
	}
}
