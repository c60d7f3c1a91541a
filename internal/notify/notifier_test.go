package notify

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
)

type fakePublisher struct {
	calls   int
	lastKey string
	lastMsg any
	err     error
}

func (f *fakePublisher) Publish(ctx context.Context, routingKey string, payload any) error {
	f.calls++
	f.lastKey = routingKey
	f.lastMsg = payload
	return f.err
}

type fakeGuard struct {
	allow bool
	calls int
}

func (f *fakeGuard) AcquireOnce(ctx context.Context, event string, staffID int) bool {
	f.calls++
	return f.allow
}

func TestStaffDirectoryUnavailable_PublishesOneEvent(t *testing.T) {
	pub := &fakePublisher{}
	n := NewMQNotifier(pub, &fakeGuard{allow: true}, zap.NewNop())

	n.StaffDirectoryUnavailable(context.Background(), 42)

	if pub.calls != 1 {
		t.Fatalf("expected 1 publish, got %d", pub.calls)
	}
	if pub.lastKey != routingKeyNotificationCreated {
		t.Errorf("routing key: got %q want %q", pub.lastKey, routingKeyNotificationCreated)
	}
	event, ok := pub.lastMsg.(Event)
	if !ok {
		t.Fatalf("payload type: got %T", pub.lastMsg)
	}
	if event.StaffID != 42 || event.Kind != "error" {
		t.Errorf("event payload: got %+v", event)
	}
}

func TestStaffDirectoryUnavailable_SuppressedInsideWindow(t *testing.T) {
	pub := &fakePublisher{}
	guard := &fakeGuard{allow: false}
	n := NewMQNotifier(pub, guard, zap.NewNop())

	n.StaffDirectoryUnavailable(context.Background(), 42)
	n.StaffDirectoryUnavailable(context.Background(), 42)

	if guard.calls != 2 {
		t.Fatalf("guard must be consulted each time, got %d calls", guard.calls)
	}
	if pub.calls != 0 {
		t.Fatalf("suppressed events must not publish, got %d", pub.calls)
	}
}

func TestStaffDirectoryUnavailable_NilGuardStillPublishes(t *testing.T) {
	pub := &fakePublisher{}
	n := NewMQNotifier(pub, nil, zap.NewNop())

	n.StaffDirectoryUnavailable(context.Background(), 42)

	if pub.calls != 1 {
		t.Fatalf("expected 1 publish without a guard, got %d", pub.calls)
	}
}

func TestStaffDirectoryUnavailable_PublishErrorSwallowed(t *testing.T) {
	pub := &fakePublisher{err: errors.New("channel closed")}
	n := NewMQNotifier(pub, &fakeGuard{allow: true}, zap.NewNop())

	// the notification is advisory; a publish failure must not panic or block
	n.StaffDirectoryUnavailable(context.Background(), 42)

	if pub.calls != 1 {
		t.Fatalf("expected 1 attempted publish, got %d", pub.calls)
	}
}
