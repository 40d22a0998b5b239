package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/frugalops/foreman/ent"
	"github.com/frugalops/foreman/ent/task"
	"github.com/frugalops/foreman/pkg/events"
	"github.com/frugalops/foreman/pkg/resources"
	"github.com/frugalops/foreman/pkg/services"
)

// recoveryRingSize bounds the recent-recovery history the sweeper keeps.
const recoveryRingSize = 50

// Sweeper periodically aborts stuck tasks: assigned or in_progress with no
// progress past the task timeout. All instances run it independently; the
// CAS transition makes recovery idempotent.
type Sweeper struct {
	client    *ent.Client
	tasks     *services.TaskService
	agents    *services.AgentService
	events    *services.EventService
	pool      *resources.Pool
	canceller Canceller // nil when no local runs can be cancelled

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	mu         sync.Mutex
	timeout    time.Duration
	interval   time.Duration
	lastSweep  time.Time
	sweptTotal int
	recoveries []Recovery
}

// NewSweeper creates a sweeper.
func NewSweeper(client *ent.Client, tasks *services.TaskService, agents *services.AgentService,
	ev *services.EventService, pool *resources.Pool, canceller Canceller,
	timeout, interval time.Duration) *Sweeper {
	if timeout <= 0 {
		timeout = 10 * time.Minute
	}
	if interval <= 0 {
		interval = time.Minute
	}
	return &Sweeper{
		client:    client,
		tasks:     tasks,
		agents:    agents,
		events:    ev,
		pool:      pool,
		canceller: canceller,
		stopCh:    make(chan struct{}),
		timeout:   timeout,
		interval:  interval,
	}
}

// Start begins the periodic scan in a goroutine.
func (s *Sweeper) Start(ctx context.Context) {
	s.wg.Add(1)
	go s.run(ctx)
}

// Stop signals the sweeper and waits for it. Safe to call multiple times.
func (s *Sweeper) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()
}

// SetTimeout changes the stuck threshold at runtime.
func (s *Sweeper) SetTimeout(d time.Duration) {
	if d <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timeout = d
}

// SetInterval changes the scan cadence at runtime; takes effect on the next
// tick.
func (s *Sweeper) SetInterval(d time.Duration) {
	if d <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.interval = d
}

// Recoveries returns the recent recovery ring, newest last.
func (s *Sweeper) Recoveries() []Recovery {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Recovery, len(s.recoveries))
	copy(out, s.recoveries)
	return out
}

// Stats returns sweep counters for health reporting.
func (s *Sweeper) Stats() (lastSweep time.Time, sweptTotal int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSweep, s.sweptTotal
}

func (s *Sweeper) run(ctx context.Context) {
	defer s.wg.Done()

	slog.Info("Sweeper started", "timeout", s.currentTimeout(), "interval", s.currentInterval())
	for {
		select {
		case <-s.stopCh:
			slog.Info("Sweeper shutting down")
			return
		case <-ctx.Done():
			return
		case <-time.After(s.currentInterval()):
			if err := s.Sweep(ctx); err != nil {
				slog.Error("Sweep failed", "error", err)
			}
		}
	}
}

func (s *Sweeper) currentTimeout() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timeout
}

func (s *Sweeper) currentInterval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.interval
}

// Sweep runs one scan: every live task without progress past the timeout is
// aborted, its slots and agent freed, and a task_timeout alert emitted.
func (s *Sweeper) Sweep(ctx context.Context) error {
	threshold := time.Now().Add(-s.currentTimeout())

	stuck, err := s.client.Task.Query().
		Where(
			task.StatusIn(task.StatusAssigned, task.StatusInProgress),
			task.LastHeartbeatAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query stuck tasks: %w", err)
	}

	s.mu.Lock()
	s.lastSweep = time.Now()
	s.mu.Unlock()

	if len(stuck) == 0 {
		return nil
	}
	slog.Warn("Detected stuck tasks", "count", len(stuck))

	recovered := 0
	for _, t := range stuck {
		if err := s.recover(ctx, t); err != nil {
			slog.Error("Failed to recover stuck task", "task_id", t.ID, "error", err)
			continue
		}
		recovered++
	}

	s.mu.Lock()
	s.sweptTotal += recovered
	s.mu.Unlock()
	return nil
}

// recover aborts one stuck task.
func (s *Sweeper) recover(ctx context.Context, t *ent.Task) error {
	stuckSince := t.UpdatedAt
	if t.LastHeartbeatAt != nil {
		stuckSince = *t.LastHeartbeatAt
	}
	log := slog.With("task_id", t.ID, "stuck_since", stuckSince)

	// Cancel the in-flight runtime call first so the executor cannot write a
	// competing terminal state. A cancelled call is never a success.
	if s.canceller != nil && s.canceller.CancelTask(t.ID) {
		log.Info("Cancelled in-flight run")
	}

	updated, err := s.tasks.Transition(ctx, t.ID, t.Status, task.StatusAborted, func(u *ent.TaskUpdateOne) {
		u.SetCompletedAt(time.Now()).
			SetErrorCategory("timeout").
			SetErrorMessage(fmt.Sprintf("no heartbeat since %s, aborted by sweeper", stuckSince.Format(time.RFC3339)))
	})
	if err != nil {
		if errors.Is(err, services.ErrStateConflict) {
			// The executor finished in the window between query and CAS.
			return nil
		}
		return err
	}

	s.pool.ReleaseAll(t.ID)

	agentID := ""
	if t.AssignedAgentID != nil {
		agentID = *t.AssignedAgentID
		if _, err := s.agents.SetIdle(ctx, agentID, false); err != nil &&
			!errors.Is(err, services.ErrStateConflict) {
			log.Warn("Failed to free agent of stuck task", "agent_id", agentID, "error", err)
		}
	}

	s.events.Record(ctx, events.New(events.EventTypeTaskTimeout, t.ID, events.TaskStatusPayload{
		TaskID:        t.ID,
		Status:        string(updated.Status),
		AgentID:       agentID,
		ErrorCategory: "timeout",
	}))

	s.mu.Lock()
	s.recoveries = append(s.recoveries, Recovery{
		TaskID:      t.ID,
		AgentID:     agentID,
		StuckSince:  stuckSince,
		RecoveredAt: time.Now(),
		Reason:      "timeout",
	})
	if len(s.recoveries) > recoveryRingSize {
		s.recoveries = s.recoveries[len(s.recoveries)-recoveryRingSize:]
	}
	s.mu.Unlock()

	log.Warn("Stuck task aborted")
	return nil
}

// CleanupStartupOrphans aborts tasks this instance owned when it previously
// crashed. Called once during startup, before the assigner begins.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, podID string) error {
	orphans, err := client.Task.Query().
		Where(
			task.StatusIn(task.StatusAssigned, task.StatusInProgress),
			task.PodIDEQ(podID),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}
	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run", "pod_id", podID, "count", len(orphans))
	now := time.Now()
	for _, t := range orphans {
		err := client.Task.UpdateOneID(t.ID).
			SetStatus(task.StatusAborted).
			SetCompletedAt(now).
			SetErrorCategory("timeout").
			SetErrorMessage(fmt.Sprintf("orphaned: instance %s restarted mid-run", podID)).
			Exec(ctx)
		if err != nil {
			slog.Error("Failed to abort startup orphan", "task_id", t.ID, "error", err)
			continue
		}
		slog.Info("Startup orphan aborted", "task_id", t.ID)
	}
	return nil
}
