// Package events provides the in-process publish/subscribe bus used by all
// orchestrator components to announce state changes, plus the typed payloads
// carried on it.
//
// Delivery contract:
//   - Events are notifications only — domain state NEVER depends on delivery.
//   - Per-subscriber delivery is FIFO; cross-subscriber order is undefined.
//   - Each subscriber has a bounded buffer. When it overflows, the oldest
//     buffered event is dropped first and the subscription's drop counter is
//     incremented. Consumers that care (the WebSocket gateway) surface a
//     "dropped" marker to their clients.
package events

import "time"

// Event types published on the bus.
const (
	EventTypeTaskCreated         = "task_created"
	EventTypeTaskAssigned        = "task_assigned"
	EventTypeTaskUpdated         = "task_updated"
	EventTypeTaskCompleted       = "task_completed"
	EventTypeTaskTimeout         = "task_timeout"
	EventTypeAgentStatusChanged  = "agent_status_changed"
	EventTypeToolCalled          = "tool_called"
	EventTypeLoopDetected        = "loop_detected"
	EventTypeBudgetWarning       = "budget_warning"
	EventTypeBudgetExceeded      = "budget_exceeded"
	EventTypeCodeReviewCompleted = "code_review_completed"
)

// Event is the envelope carried on the bus and over the WebSocket stream.
type Event struct {
	Type      string    `json:"type"`
	TaskID    string    `json:"task_id,omitempty"`
	Payload   any       `json:"payload"`
	Timestamp time.Time `json:"timestamp"`
}

// New builds an event envelope with the current timestamp.
func New(eventType, taskID string, payload any) Event {
	return Event{
		Type:      eventType,
		TaskID:    taskID,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
}
