package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"hotel-booking-api/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// AvailabilityCache keeps a short-lived per-room availability hint in Redis.
// It is best-effort only: a miss or a Redis outage falls through to the
// database, and writers invalidate after commit rather than update.
type AvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAvailabilityCache(client *redis.Client, cfg config.RedisConfig) *AvailabilityCache {
	return &AvailabilityCache{client: client, ttl: cfg.TTL}
}

func availabilityKey(roomID uuid.UUID) string {
	return fmt.Sprintf("room:availability:%s", roomID)
}

// Get returns (available, found). Errors are logged and reported as a miss.
func (c *AvailabilityCache) Get(ctx context.Context, roomID uuid.UUID) (bool, bool) {
	val, err := c.client.Get(ctx, availabilityKey(roomID)).Result()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("availability cache read failed", "room_id", roomID, "error", err.Error())
		}
		return false, false
	}
	return val == "1", true
}

func (c *AvailabilityCache) Set(ctx context.Context, roomID uuid.UUID, available bool) {
	val := "0"
	if available {
		val = "1"
	}
	if err := c.client.Set(ctx, availabilityKey(roomID), val, c.ttl).Err(); err != nil {
		slog.Warn("availability cache write failed", "room_id", roomID, "error", err.Error())
	}
}

// Invalidate drops the cached hint after a booking mutation commits.
func (c *AvailabilityCache) Invalidate(ctx context.Context, roomID uuid.UUID) {
	if err := c.client.Del(ctx, availabilityKey(roomID)).Err(); err != nil {
		slog.Warn("availability cache invalidation failed", "room_id", roomID, "error", err.Error())
	}
}
