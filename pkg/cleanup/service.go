// Package cleanup provides data retention enforcement.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/frugalops/foreman/pkg/config"
	"github.com/frugalops/foreman/pkg/services"
)

// Service periodically enforces retention policies:
//   - Deletes terminal tasks past the retention window, with their
//     execution logs and review records
//   - Removes persisted events past their TTL
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config *config.RetentionConfig
	tasks  *services.TaskService
	events *services.EventService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, tasks *services.TaskService, events *services.EventService) *Service {
	return &Service{
		config: cfg,
		tasks:  tasks,
		events: events,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"task_retention_days", s.config.TaskRetentionDays,
		"event_ttl", s.config.EventTTL(),
		"interval", s.config.CleanupInterval())
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.RunAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunAll(ctx)
		}
	}
}

// RunAll executes one full retention pass. Errors are logged, never
// returned.
func (s *Service) RunAll(ctx context.Context) {
	s.purgeOldTasks(ctx)
	s.purgeOldEvents(ctx)
}

func (s *Service) purgeOldTasks(ctx context.Context) {
	retention := time.Duration(s.config.TaskRetentionDays) * 24 * time.Hour
	count, err := s.tasks.PurgeTerminalTasks(ctx, retention)
	if err != nil {
		slog.Error("Retention: task purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged terminal tasks", "count", count)
	}
}

func (s *Service) purgeOldEvents(ctx context.Context) {
	count, err := s.events.PurgeOldEvents(ctx, s.config.EventTTL())
	if err != nil {
		slog.Error("Retention: event purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged old events", "count", count)
	}
}
