package slack

import (
	"context"
	"log/slog"
	"time"

	"github.com/frugalops/foreman/pkg/events"
)

// NotifierConfig holds the parameters needed to construct a Notifier.
type NotifierConfig struct {
	Token        string
	Channel      string
	DashboardURL string
}

// Notifier watches the event bus and posts escalation notices: terminal
// task failures, sweeper timeouts, and budget threshold crossings.
// Nil-safe: Start and Stop are no-ops on a nil receiver.
type Notifier struct {
	client       *Client
	dashboardURL string
	logger       *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}

	// Budget notices repeat on every premium call once the threshold is
	// crossed; only the first one per UTC day is worth a ping.
	notifiedWarning  string // day the last warning was sent, "2026-08-26"
	notifiedExceeded string
}

// NewNotifier creates a Slack escalation notifier.
// Returns nil if Token or Channel is empty.
func NewNotifier(cfg NotifierConfig) *Notifier {
	if cfg.Token == "" || cfg.Channel == "" {
		return nil
	}
	return &Notifier{
		client:       NewClient(cfg.Token, cfg.Channel),
		dashboardURL: cfg.DashboardURL,
		logger:       slog.Default().With("component", "slack-notifier"),
	}
}

// NewNotifierWithClient creates a Notifier backed by a pre-built Client.
// Useful for testing with a mock API server.
func NewNotifierWithClient(client *Client, dashboardURL string) *Notifier {
	return &Notifier{
		client:       client,
		dashboardURL: dashboardURL,
		logger:       slog.Default().With("component", "slack-notifier"),
	}
}

// Start subscribes to the bus and launches the delivery loop.
func (n *Notifier) Start(ctx context.Context, bus *events.Bus) {
	if n == nil || n.cancel != nil {
		return
	}
	ctx, n.cancel = context.WithCancel(ctx)
	n.done = make(chan struct{})
	sub := bus.Subscribe(64)

	go n.run(ctx, sub)

	n.logger.Info("Slack notifier started")
}

// Stop signals the delivery loop to exit and waits for it to finish.
func (n *Notifier) Stop() {
	if n == nil || n.cancel == nil {
		return
	}
	n.cancel()
	<-n.done
	n.logger.Info("Slack notifier stopped")
}

func (n *Notifier) run(ctx context.Context, sub *events.Subscription) {
	defer close(n.done)
	defer sub.Unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return
		case evt, ok := <-sub.Events():
			if !ok {
				return
			}
			n.handle(ctx, evt)
		}
	}
}

// handle dispatches one bus event. Delivery errors are logged, never
// propagated (fail-open).
func (n *Notifier) handle(ctx context.Context, evt events.Event) {
	switch evt.Type {
	case events.EventTypeTaskTimeout:
		n.notifyTaskFailure(ctx, evt, "timeout")

	case events.EventTypeTaskUpdated:
		payload, ok := evt.Payload.(events.TaskStatusPayload)
		if !ok || payload.Status != "failed" {
			return
		}
		n.notifyTaskFailure(ctx, evt, "failed")

	case events.EventTypeBudgetWarning:
		n.notifyBudget(ctx, evt, false)

	case events.EventTypeBudgetExceeded:
		n.notifyBudget(ctx, evt, true)
	}
}

func (n *Notifier) notifyTaskFailure(ctx context.Context, evt events.Event, category string) {
	var errorMessage string
	if payload, ok := evt.Payload.(events.TaskStatusPayload); ok {
		errorMessage = payload.ErrorMessage
	}

	blocks := BuildTaskFailureMessage(evt.TaskID, category, errorMessage, n.dashboardURL)
	if err := n.client.PostMessage(ctx, blocks, 5*time.Second); err != nil {
		n.logger.Error("Failed to send task failure notification",
			"task_id", evt.TaskID, "category", category, "error", err)
	}
}

func (n *Notifier) notifyBudget(ctx context.Context, evt events.Event, exceeded bool) {
	if !n.shouldNotifyBudget(exceeded, time.Now().UTC()) {
		return
	}

	payload, _ := evt.Payload.(events.BudgetPayload)
	blocks := BuildBudgetMessage(exceeded, payload.DailySpentCents, payload.DailyLimitCents)
	if err := n.client.PostMessage(ctx, blocks, 5*time.Second); err != nil {
		n.logger.Error("Failed to send budget notification",
			"exceeded", exceeded, "error", err)
	}
}

// shouldNotifyBudget returns true at most once per UTC day per notice kind.
// Called only from the single delivery goroutine; no locking needed.
func (n *Notifier) shouldNotifyBudget(exceeded bool, now time.Time) bool {
	day := now.Format("2006-01-02")
	if exceeded {
		if n.notifiedExceeded == day {
			return false
		}
		n.notifiedExceeded = day
		return true
	}
	if n.notifiedWarning == day {
		return false
	}
	n.notifiedWarning = day
	return true
}
