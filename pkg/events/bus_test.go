package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusDeliversToAllSubscribers(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	sub1 := bus.Subscribe(8)
	sub2 := bus.Subscribe(8)

	bus.Publish(New(EventTypeTaskCreated, "task-1", TaskStatusPayload{TaskID: "task-1", Status: "pending"}))

	for _, sub := range []*Subscription{sub1, sub2} {
		select {
		case evt := <-sub.Events():
			assert.Equal(t, EventTypeTaskCreated, evt.Type)
			assert.Equal(t, "task-1", evt.TaskID)
		case <-time.After(time.Second):
			t.Fatal("expected event was not delivered")
		}
	}
}

func TestBusPerSubscriberOrdering(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	sub := bus.Subscribe(16)

	for i := 0; i < 10; i++ {
		bus.Publish(New(EventTypeTaskUpdated, "task-1", TaskStatusPayload{Priority: i}))
	}

	for i := 0; i < 10; i++ {
		evt := <-sub.Events()
		payload, ok := evt.Payload.(TaskStatusPayload)
		require.True(t, ok)
		assert.Equal(t, i, payload.Priority)
	}
}

func TestBusDropsOldestOnOverflow(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	sub := bus.Subscribe(3)

	for i := 0; i < 5; i++ {
		bus.Publish(New(EventTypeTaskUpdated, "task-1", TaskStatusPayload{Priority: i}))
	}

	assert.Equal(t, int64(2), sub.Dropped())

	// The three newest events survive.
	for _, want := range []int{2, 3, 4} {
		evt := <-sub.Events()
		payload := evt.Payload.(TaskStatusPayload)
		assert.Equal(t, want, payload.Priority)
	}
}

func TestBusPublishDoesNotBlockOnSlowSubscriber(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	// Never drained.
	sub := bus.Subscribe(1)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			bus.Publish(New(EventTypeToolCalled, "task-1", ToolCalledPayload{Step: i}))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}
	assert.GreaterOrEqual(t, sub.Dropped(), int64(90))
}

func TestBusUnsubscribeClosesChannel(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	sub := bus.Subscribe(4)
	require.Equal(t, 1, bus.SubscriberCount())

	sub.Unsubscribe()
	sub.Unsubscribe() // idempotent

	_, open := <-sub.Events()
	assert.False(t, open)
	assert.Equal(t, 0, bus.SubscriberCount())
}

func TestBusCloseStopsDelivery(t *testing.T) {
	bus := NewBus()
	sub := bus.Subscribe(4)

	bus.Close()
	bus.Publish(New(EventTypeTaskCreated, "task-1", nil))

	_, open := <-sub.Events()
	assert.False(t, open)
}
