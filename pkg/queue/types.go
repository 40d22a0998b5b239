// Package queue provides the task assignment and execution infrastructure:
// the assigner poll loop, the per-task executor, the tool-event ingest sink,
// and the stuck-task sweeper.
package queue

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for queue operations.
var (
	// ErrNoTasksAvailable indicates no pending tasks are in the queue.
	ErrNoTasksAvailable = errors.New("no tasks available")

	// ErrNoActiveRun indicates a tool event arrived for a task that is not
	// currently executing on this instance.
	ErrNoActiveRun = errors.New("no active run for task")
)

// Canceller cancels the in-flight runtime call of a task. Implemented by
// the Assigner's run registry; used by the Sweeper.
type Canceller interface {
	CancelTask(taskID string) bool
}

// Recovery records one sweeper intervention, kept in a bounded ring for
// observability.
type Recovery struct {
	TaskID      string    `json:"task_id"`
	AgentID     string    `json:"agent_id,omitempty"`
	StuckSince  time.Time `json:"stuck_since"`
	RecoveredAt time.Time `json:"recovered_at"`
	Reason      string    `json:"reason"`
}

// ReviewTrigger is invoked after a task completes successfully. Implemented
// by the review package; nil disables reviews.
type ReviewTrigger interface {
	OnTaskCompleted(ctx context.Context, taskID string)
}

// QueueHealth reports assigner and sweeper state.
type QueueHealth struct {
	IsHealthy      bool       `json:"is_healthy"`
	PodID          string     `json:"pod_id"`
	QueueDepth     int        `json:"queue_depth"`
	ActiveRuns     int        `json:"active_runs"`
	TasksAssigned  int        `json:"tasks_assigned"`
	LastSweep      time.Time  `json:"last_sweep"`
	SweptTotal     int        `json:"swept_total"`
	RecentRecovery []Recovery `json:"recent_recoveries"`
}
