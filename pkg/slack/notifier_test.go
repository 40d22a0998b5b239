package slack

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frugalops/foreman/pkg/events"
)

// postRecorder captures the block payloads the mock Slack API receives.
type postRecorder struct {
	mu     sync.Mutex
	bodies []string
}

func (r *postRecorder) add(body string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bodies = append(r.bodies, body)
}

func (r *postRecorder) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.bodies...)
}

func newMockSlackAPI(t *testing.T) (*httptest.Server, *postRecorder) {
	t.Helper()
	rec := &postRecorder{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		rec.add(r.Form.Get("blocks"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"channel":"C123","ts":"123.456"}`))
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

func newTestNotifier(t *testing.T) (*Notifier, *postRecorder) {
	t.Helper()
	srv, rec := newMockSlackAPI(t)
	client := NewClientWithAPIURL("xoxb-test", "C123", srv.URL+"/")
	return NewNotifierWithClient(client, "https://dash.example.com"), rec
}

func TestNewNotifier(t *testing.T) {
	t.Run("returns nil when token empty", func(t *testing.T) {
		assert.Nil(t, NewNotifier(NotifierConfig{Token: "", Channel: "C123"}))
	})

	t.Run("returns nil when channel empty", func(t *testing.T) {
		assert.Nil(t, NewNotifier(NotifierConfig{Token: "xoxb-test", Channel: ""}))
	})

	t.Run("returns notifier when configured", func(t *testing.T) {
		assert.NotNil(t, NewNotifier(NotifierConfig{Token: "xoxb-test", Channel: "C123"}))
	})
}

func TestNotifier_NilReceiver(t *testing.T) {
	var n *Notifier

	// Should not panic
	n.Start(context.Background(), events.NewBus())
	n.Stop()
}

func TestNotifier_PostsTaskTimeout(t *testing.T) {
	n, rec := newTestNotifier(t)

	n.handle(context.Background(), events.New(events.EventTypeTaskTimeout, "task-9",
		events.TaskStatusPayload{TaskID: "task-9", Status: "aborted", ErrorMessage: "no heartbeat"}))

	bodies := rec.all()
	require.Len(t, bodies, 1)
	assert.Contains(t, bodies[0], "Task Timed Out")
	assert.Contains(t, bodies[0], "task-9")
	assert.Contains(t, bodies[0], "no heartbeat")
}

func TestNotifier_PostsTaskFailure(t *testing.T) {
	n, rec := newTestNotifier(t)

	n.handle(context.Background(), events.New(events.EventTypeTaskUpdated, "task-3",
		events.TaskStatusPayload{TaskID: "task-3", Status: "failed", ErrorMessage: "validation exploded"}))

	bodies := rec.all()
	require.Len(t, bodies, 1)
	assert.Contains(t, bodies[0], "Task Failed")
}

func TestNotifier_IgnoresNonTerminalUpdates(t *testing.T) {
	n, rec := newTestNotifier(t)

	n.handle(context.Background(), events.New(events.EventTypeTaskUpdated, "task-3",
		events.TaskStatusPayload{TaskID: "task-3", Status: "in_progress"}))
	n.handle(context.Background(), events.New(events.EventTypeToolCalled, "task-3",
		events.ToolCalledPayload{TaskID: "task-3", Action: "bash"}))

	assert.Empty(t, rec.all())
}

func TestNotifier_BudgetWarningOncePerDay(t *testing.T) {
	n, rec := newTestNotifier(t)
	payload := events.BudgetPayload{DailySpentCents: 412, DailyLimitCents: 500}

	n.handle(context.Background(), events.New(events.EventTypeBudgetWarning, "", payload))
	n.handle(context.Background(), events.New(events.EventTypeBudgetWarning, "", payload))

	bodies := rec.all()
	require.Len(t, bodies, 1)
	assert.Contains(t, bodies[0], "Daily Budget Warning")
	assert.Contains(t, bodies[0], "$4.12")
}

func TestNotifier_BudgetExceededIndependentOfWarning(t *testing.T) {
	n, rec := newTestNotifier(t)

	n.handle(context.Background(), events.New(events.EventTypeBudgetWarning, "",
		events.BudgetPayload{DailySpentCents: 400, DailyLimitCents: 500}))
	n.handle(context.Background(), events.New(events.EventTypeBudgetExceeded, "",
		events.BudgetPayload{DailySpentCents: 501, DailyLimitCents: 500}))

	bodies := rec.all()
	require.Len(t, bodies, 2)
	assert.Contains(t, bodies[1], "Daily Budget Exceeded")
}

func TestShouldNotifyBudget_ResetsNextDay(t *testing.T) {
	n := &Notifier{}
	day1 := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)
	day2 := day1.Add(24 * time.Hour)

	assert.True(t, n.shouldNotifyBudget(false, day1))
	assert.False(t, n.shouldNotifyBudget(false, day1))
	assert.True(t, n.shouldNotifyBudget(false, day2))
}

func TestNotifier_StartStop(t *testing.T) {
	n, rec := newTestNotifier(t)
	bus := events.NewBus()
	defer bus.Close()

	n.Start(context.Background(), bus)
	bus.Publish(events.New(events.EventTypeTaskTimeout, "task-1",
		events.TaskStatusPayload{TaskID: "task-1", Status: "aborted"}))

	assert.Eventually(t, func() bool { return len(rec.all()) == 1 }, 2*time.Second, 10*time.Millisecond)
	n.Stop()
}
