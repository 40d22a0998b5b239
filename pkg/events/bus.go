package events

import (
	"sync"
	"sync/atomic"
)

// DefaultBufferSize is the per-subscriber buffer used when Subscribe is
// called with a non-positive size.
const DefaultBufferSize = 256

// Bus is the in-process fan-out of domain events. Publish never blocks:
// a full subscriber buffer sheds its oldest event first.
type Bus struct {
	mu     sync.RWMutex
	subs   map[uint64]*Subscription
	nextID uint64
	closed bool
}

// Subscription is one subscriber's bounded event feed.
type Subscription struct {
	id      uint64
	bus     *Bus
	ch      chan Event
	dropped atomic.Int64
	once    sync.Once
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[uint64]*Subscription)}
}

// Subscribe registers a new subscriber with the given buffer size.
func (b *Bus) Subscribe(buffer int) *Subscription {
	if buffer <= 0 {
		buffer = DefaultBufferSize
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	sub := &Subscription{
		id:  b.nextID,
		bus: b,
		ch:  make(chan Event, buffer),
	}
	if b.closed {
		close(sub.ch)
		return sub
	}
	b.subs[sub.id] = sub
	return sub
}

// Publish delivers the event to every subscriber. It never blocks the
// publisher: when a subscriber's buffer is full, the oldest buffered event
// is discarded and the subscription's drop counter incremented.
func (b *Bus) Publish(evt Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}
	for _, sub := range b.subs {
		sub.offer(evt)
	}
}

// Close shuts the bus down. All subscriber channels are closed; subsequent
// Publish calls are no-ops.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for id, sub := range b.subs {
		close(sub.ch)
		delete(b.subs, id)
	}
}

// SubscriberCount returns the number of live subscriptions.
func (b *Bus) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// offer enqueues without blocking, shedding the oldest event on overflow.
func (s *Subscription) offer(evt Event) {
	for {
		select {
		case s.ch <- evt:
			return
		default:
		}
		// Buffer full: drop the oldest queued event and retry. The retry
		// loop handles the race where the consumer drains concurrently.
		select {
		case <-s.ch:
			s.dropped.Add(1)
		default:
		}
	}
}

// Events returns the receive channel. It is closed on Unsubscribe or bus
// shutdown.
func (s *Subscription) Events() <-chan Event {
	return s.ch
}

// Dropped returns the total number of events shed from this subscription.
func (s *Subscription) Dropped() int64 {
	return s.dropped.Load()
}

// Unsubscribe detaches the subscription and closes its channel. Safe to call
// more than once.
func (s *Subscription) Unsubscribe() {
	s.once.Do(func() {
		s.bus.mu.Lock()
		defer s.bus.mu.Unlock()
		if _, ok := s.bus.subs[s.id]; ok {
			delete(s.bus.subs, s.id)
			close(s.ch)
		}
	})
}
