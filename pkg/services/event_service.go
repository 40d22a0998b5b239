package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/frugalops/foreman/ent"
	entevent "github.com/frugalops/foreman/ent/event"
	"github.com/frugalops/foreman/pkg/events"
)

// EventService publishes domain events on the in-process bus and persists
// them for WebSocket catchup. Persistence is best-effort: domain state never
// depends on event delivery, so a failed insert is logged and dropped.
type EventService struct {
	client *ent.Client
	bus    *events.Bus
}

// NewEventService creates an EventService.
func NewEventService(client *ent.Client, bus *events.Bus) *EventService {
	return &EventService{client: client, bus: bus}
}

// Bus exposes the underlying bus for subscribers.
func (s *EventService) Bus() *events.Bus {
	return s.bus
}

// Record publishes the event and persists it for catchup.
func (s *EventService) Record(ctx context.Context, ev events.Event) {
	s.bus.Publish(ev)

	payload, err := toJSONMap(ev.Payload)
	if err != nil {
		slog.Warn("Failed to encode event payload, persisting empty",
			"event_type", ev.Type, "error", err)
		payload = map[string]interface{}{}
	}

	builder := s.client.Event.Create().
		SetEventType(ev.Type).
		SetPayload(payload).
		SetCreatedAt(ev.Timestamp)
	if ev.TaskID != "" {
		builder.SetTaskID(ev.TaskID)
	}
	if err := builder.Exec(ctx); err != nil {
		slog.Warn("Failed to persist event", "event_type", ev.Type, "task_id", ev.TaskID, "error", err)
	}
}

// ListSince returns persisted events with id > afterID, oldest first, for
// catchup after a WebSocket reconnect.
func (s *EventService) ListSince(ctx context.Context, afterID int64, limit int) ([]*ent.Event, error) {
	if limit <= 0 || limit > 1000 {
		limit = 200
	}
	evs, err := s.client.Event.Query().
		Where(entevent.IDGT(afterID)).
		Order(ent.Asc(entevent.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return evs, nil
}

// PurgeOldEvents deletes persisted events older than the TTL. Events exist
// only for WebSocket catchup; anything a client has not caught up on within
// the TTL is gone regardless. Returns the number of rows removed.
func (s *EventService) PurgeOldEvents(ctx context.Context, ttl time.Duration) (int, error) {
	cutoff := time.Now().Add(-ttl)
	n, err := s.client.Event.Delete().
		Where(entevent.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge old events: %w", err)
	}
	return n, nil
}

// toJSONMap converts a typed payload into the generic map the events table
// stores.
func toJSONMap(payload any) (map[string]interface{}, error) {
	if payload == nil {
		return map[string]interface{}{}, nil
	}
	if m, ok := payload.(map[string]interface{}); ok {
		return m, nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}
