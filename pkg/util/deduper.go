package util

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Deduper suppresses duplicate events inside a TTL window using redis SetNX.
type Deduper struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewDeduper(rdb *redis.Client, ttl time.Duration, logger *zap.Logger) *Deduper {
	return &Deduper{
		rdb:    rdb,
		ttl:    ttl,
		logger: logger,
	}
}

// AcquireOnce tries to acquire the dedup lock for an event + staff pair.
// Returns true when this is the first occurrence inside the window, false on
// a duplicate. When redis is unavailable the event is allowed through rather
// than dropped.
func (d *Deduper) AcquireOnce(ctx context.Context, event string, staffID int) bool {
	key := fmt.Sprintf("dedup:%s:%d", event, staffID)

	ok, err := d.rdb.SetNX(ctx, key, 1, d.ttl).Result()
	if err != nil {
		if d.logger != nil {
			d.logger.Warn("Redis dedup check failed, allowing event",
				zap.String("event", event),
				zap.Int("staff_id", staffID),
				zap.Error(err),
			)
		}
		return true
	}

	if !ok && d.logger != nil {
		d.logger.Info("Suppressed duplicated event",
			zap.String("event", event),
			zap.Int("staff_id", staffID),
			zap.String("dedup_key", key),
		)
	}

	return ok
}
