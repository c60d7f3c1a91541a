package notify

import (
	"context"
	"time"

	"go.uber.org/zap"

	"worktrack/pkg/metrics"
)

// Notifier emits the generic user-facing error notification. The board only
// ever raises one kind: the staff directory could not be loaded.
type Notifier interface {
	StaffDirectoryUnavailable(ctx context.Context, staffID int)
}

// Event is the payload handed to the notification subsystem.
type Event struct {
	StaffID   int       `json:"staff_id"`
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

const routingKeyNotificationCreated = "notification.created"

// Publisher is the slice of pkg/mq the notifier needs.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

// DedupGuard is satisfied by util.Deduper; it gates repeat events inside the
// suppression window.
type DedupGuard interface {
	AcquireOnce(ctx context.Context, event string, staffID int) bool
}

// MQNotifier publishes notification events to the events exchange. A redis
// dedup window keeps a flapping staff service from spamming the exchange;
// within a single board load at most one event is published either way.
type MQNotifier struct {
	pub     Publisher
	deduper DedupGuard
	logger  *zap.Logger
}

func NewMQNotifier(pub Publisher, deduper DedupGuard, logger *zap.Logger) *MQNotifier {
	return &MQNotifier{pub: pub, deduper: deduper, logger: logger}
}

func (n *MQNotifier) StaffDirectoryUnavailable(ctx context.Context, staffID int) {
	if n.deduper != nil && !n.deduper.AcquireOnce(ctx, "staff_directory_unavailable", staffID) {
		return
	}

	event := Event{
		StaffID:   staffID,
		Kind:      "error",
		Message:   "Failed to load the staff directory",
		CreatedAt: time.Now().UTC(),
	}

	if err := n.pub.Publish(ctx, routingKeyNotificationCreated, event); err != nil {
		// the notification is advisory; a lost one must not fail the load
		n.logger.Error("Failed to publish staff failure notification",
			zap.Error(err),
			zap.Int("staff_id", staffID),
		)
		return
	}

	metrics.IncrementStaffNotify()
	n.logger.Info("Published staff failure notification", zap.Int("staff_id", staffID))
}
