package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// SlotCache is a best-effort cache of free-slot listings keyed by calendar
// day. Misses and transport errors both mean "go to the database"; writers
// must invalidate the day they touched.
type SlotCache interface {
	Get(ctx context.Context, date string) ([]string, bool)
	Set(ctx context.Context, date string, slots []string)
	Invalidate(ctx context.Context, dates ...string)
}

// --------------------------------------------------
// Redis
// --------------------------------------------------

type RedisSlotCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewRedisSlotCache(addr string, ttl time.Duration, logger *zap.Logger) *RedisSlotCache {
	return &RedisSlotCache{
		rdb:    redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    ttl,
		logger: logger,
	}
}

func key(date string) string {
	return "free-slots:" + date
}

func (c *RedisSlotCache) Get(ctx context.Context, date string) ([]string, bool) {
	raw, err := c.rdb.Get(ctx, key(date)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Debug("slot cache get failed", zap.Error(err))
		}
		return nil, false
	}

	var slots []string
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *RedisSlotCache) Set(ctx context.Context, date string, slots []string) {
	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key(date), raw, c.ttl).Err(); err != nil {
		c.logger.Debug("slot cache set failed", zap.Error(err))
	}
}

func (c *RedisSlotCache) Invalidate(ctx context.Context, dates ...string) {
	for _, d := range dates {
		if d == "" {
			continue
		}
		if err := c.rdb.Del(ctx, key(d)).Err(); err != nil {
			c.logger.Debug("slot cache invalidate failed", zap.Error(err))
		}
	}
}

// --------------------------------------------------
// No-op (no Redis configured)
// --------------------------------------------------

type NoopSlotCache struct{}

func (NoopSlotCache) Get(context.Context, string) ([]string, bool) { return nil, false }
func (NoopSlotCache) Set(context.Context, string, []string)        {}
func (NoopSlotCache) Invalidate(context.Context, ...string)        {}

var (
	_ SlotCache = (*RedisSlotCache)(nil)
	_ SlotCache = NoopSlotCache{}
)
