// Package cache stores computed engine outputs in Redis so repeat requests
// skip the scoring pass. The cache is best-effort; a nil client or a Redis
// error falls through to recomputation.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lumina/creatorhub/internal/engine"
	"github.com/lumina/creatorhub/internal/pkg/logger"
)

// Cache wraps a Redis client with typed getters and setters.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New creates a cache with the given TTL for schedule and snapshot entries.
func New(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Cache{client: client, ttl: ttl}
}

func scheduleKey(platform, niche string) string {
	return fmt.Sprintf("besttime:%s:%s", platform, niche)
}

func dashboardKey(userID string) string {
	return fmt.Sprintf("dashboard:%s", userID)
}

// GetSchedule returns a cached weekly schedule, or false on miss.
func (c *Cache) GetSchedule(ctx context.Context, platform, niche string) (engine.WeeklySchedule, bool) {
	var out engine.WeeklySchedule
	if c == nil || c.client == nil {
		return out, false
	}
	data, err := c.client.Get(ctx, scheduleKey(platform, niche)).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Warn("schedule cache read failed", "error", err.Error())
		}
		return out, false
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, false
	}
	return out, true
}

// SetSchedule stores a weekly schedule. Schedules are static per
// platform/niche pair so the TTL is generous.
func (c *Cache) SetSchedule(ctx context.Context, schedule engine.WeeklySchedule) {
	if c == nil || c.client == nil {
		return
	}
	data, err := json.Marshal(schedule)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, scheduleKey(schedule.Platform, schedule.Niche), data, c.ttl).Err(); err != nil {
		logger.Warn("schedule cache write failed", "error", err.Error())
	}
}

// GetDashboard returns a cached dashboard snapshot into dst, or false on miss.
func (c *Cache) GetDashboard(ctx context.Context, userID string, dst interface{}) bool {
	if c == nil || c.client == nil {
		return false
	}
	data, err := c.client.Get(ctx, dashboardKey(userID)).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(data, dst) == nil
}

// SetDashboard stores a dashboard snapshot with a short TTL so pipeline and
// calendar changes show up quickly.
func (c *Cache) SetDashboard(ctx context.Context, userID string, snapshot interface{}) {
	if c == nil || c.client == nil {
		return
	}
	data, err := json.Marshal(snapshot)
	if err != nil {
		return
	}
	ttl := c.ttl
	if ttl > 5*time.Minute {
		ttl = 5 * time.Minute
	}
	if err := c.client.Set(ctx, dashboardKey(userID), data, ttl).Err(); err != nil {
		logger.Warn("dashboard cache write failed", "error", err.Error())
	}
}

// InvalidateDashboard drops a user's cached snapshot after a write.
func (c *Cache) InvalidateDashboard(ctx context.Context, userID string) {
	if c == nil || c.client == nil {
		return
	}
	c.client.Del(ctx, dashboardKey(userID))
}
