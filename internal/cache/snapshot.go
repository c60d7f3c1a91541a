package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"worktrack/internal/model"
)

// SnapshotCache keeps short-lived copies of upstream task and staff payloads
// so repeated board loads do not hammer the upstream services. Entries expire
// on their own; nothing here outlives the TTL.
type SnapshotCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewSnapshotCache(rdb *redis.Client, ttl time.Duration, logger *zap.Logger) *SnapshotCache {
	if ttl == 0 {
		ttl = 30 * time.Second
	}
	return &SnapshotCache{rdb: rdb, ttl: ttl, logger: logger}
}

func taskKey(staffID int) string {
	return fmt.Sprintf("snapshot:tasks:%d", staffID)
}

const staffKey = "snapshot:staff"

// GetTasks returns a cached task snapshot for the staff member, if present.
func (c *SnapshotCache) GetTasks(ctx context.Context, staffID int) ([]model.Task, bool) {
	raw, err := c.rdb.Get(ctx, taskKey(staffID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("Task snapshot read failed", zap.Error(err), zap.Int("staff_id", staffID))
		}
		return nil, false
	}

	var tasks []model.Task
	if err := json.Unmarshal(raw, &tasks); err != nil {
		c.logger.Warn("Task snapshot decode failed", zap.Error(err), zap.Int("staff_id", staffID))
		return nil, false
	}
	return tasks, true
}

// PutTasks stores a task snapshot. Cache failures are logged and swallowed;
// the board can always fall through to the upstream service.
func (c *SnapshotCache) PutTasks(ctx context.Context, staffID int, tasks []model.Task) {
	raw, err := json.Marshal(tasks)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, taskKey(staffID), raw, c.ttl).Err(); err != nil {
		c.logger.Warn("Task snapshot write failed", zap.Error(err), zap.Int("staff_id", staffID))
	}
}

// GetStaff returns the cached staff directory, if present.
func (c *SnapshotCache) GetStaff(ctx context.Context) ([]model.Staff, bool) {
	raw, err := c.rdb.Get(ctx, staffKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("Staff snapshot read failed", zap.Error(err))
		}
		return nil, false
	}

	var staff []model.Staff
	if err := json.Unmarshal(raw, &staff); err != nil {
		c.logger.Warn("Staff snapshot decode failed", zap.Error(err))
		return nil, false
	}
	return staff, true
}

// PutStaff stores the staff directory snapshot.
func (c *SnapshotCache) PutStaff(ctx context.Context, staff []model.Staff) {
	raw, err := json.Marshal(staff)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, staffKey, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("Staff snapshot write failed", zap.Error(err))
	}
}
