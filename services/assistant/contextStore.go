package assistant

import (
	"context"
	"time"

	"trimly/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const briefingPrefix = "assistant:briefing:"

// BriefingCache keeps recently built briefings in Redis so back-to-back chat
// turns do not rebuild the full schedule snapshot. Entries are dropped on any
// appointment write, so a cached briefing never hides a new booking.
type BriefingCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewBriefingCache(client *redis.Client, ttl time.Duration) *BriefingCache {
	return &BriefingCache{client: client, ttl: ttl}
}

func (c *BriefingCache) Get(ctx context.Context, shopID string) (string, bool) {
	data, err := c.client.Get(ctx, briefingPrefix+shopID).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		utils.GetLogger().Warn("Briefing cache read failed", zap.Error(err))
		return "", false
	}
	return data, true
}

func (c *BriefingCache) Set(ctx context.Context, shopID, briefing string) {
	if err := c.client.Set(ctx, briefingPrefix+shopID, briefing, c.ttl).Err(); err != nil {
		utils.GetLogger().Warn("Briefing cache write failed", zap.Error(err))
	}
}

func (c *BriefingCache) Invalidate(ctx context.Context, shopID string) {
	if err := c.client.Del(ctx, briefingPrefix+shopID).Err(); err != nil {
		utils.GetLogger().Warn("Briefing cache invalidation failed", zap.Error(err))
	}
}
