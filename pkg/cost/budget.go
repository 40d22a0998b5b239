package cost

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/frugalops/foreman/pkg/events"
)

// ErrPremiumBlocked is returned by components that refuse a premium model
// call while the daily budget is exhausted.
var ErrPremiumBlocked = errors.New("daily budget exceeded, premium calls blocked")

// Guard accumulates model spend and blocks premium-tier calls once the
// daily limit is exceeded. Counters reset at UTC midnight, evaluated lazily
// on access. A recorded transaction never decreases totals.
type Guard struct {
	mu sync.Mutex

	dailyLimitCents  int64
	warningThreshold float64
	enabled          bool

	dailySpentCents   float64
	allTimeSpentCents float64
	perModelCents     map[string]float64
	taskCount         int64
	taskSpentCents    float64

	windowStart time.Time // UTC midnight of the current day

	// One-shot alert latches, re-armed on window reset.
	warned   bool
	exceeded bool

	bus *events.Bus
}

// GuardConfig configures a budget guard.
type GuardConfig struct {
	DailyLimitCents  int64
	WarningThreshold float64 // fraction of the daily limit, default 0.8
	Enabled          bool
}

// Snapshot is a consistent view of the guard's state.
type Snapshot struct {
	Enabled           bool      `json:"enabled"`
	DailyLimitCents   int64     `json:"daily_limit_cents"`
	DailySpentCents   float64   `json:"daily_spent_cents"`
	AllTimeSpentCents float64   `json:"all_time_spent_cents"`
	IsWarning         bool      `json:"is_warning"`
	IsOverBudget      bool      `json:"is_over_budget"`
	PremiumBlocked    bool      `json:"premium_blocked"`
	ResetsAt          time.Time `json:"resets_at"` // next UTC midnight
	TaskCount         int64     `json:"task_count"`
	AvgCostPerTask    float64   `json:"avg_cost_per_task_cents"`
	PerModelCents     map[string]float64 `json:"per_model_cents"`
}

// NewGuard creates a budget guard. The bus is optional; when set, the guard
// publishes budget_warning and budget_exceeded at most once per daily window.
func NewGuard(cfg GuardConfig, bus *events.Bus) *Guard {
	threshold := cfg.WarningThreshold
	if threshold <= 0 || threshold >= 1 {
		threshold = 0.8
	}
	return &Guard{
		dailyLimitCents:  cfg.DailyLimitCents,
		warningThreshold: threshold,
		enabled:          cfg.Enabled,
		perModelCents:    make(map[string]float64),
		windowStart:      utcMidnight(time.Now()),
		bus:              bus,
	}
}

// RecordUsage adds the cost of one model call to the daily and all-time
// totals and re-evaluates the warning and over-budget flags.
func (g *Guard) RecordUsage(inputTokens, outputTokens int, model string) {
	cents := CalculateCents(model, inputTokens, outputTokens)

	g.mu.Lock()
	defer g.mu.Unlock()

	g.maybeResetLocked(time.Now())
	g.dailySpentCents += cents
	g.allTimeSpentCents += cents
	g.perModelCents[NormalizeModel(model)] += cents

	g.alertLocked(model)
}

// RecordTaskCost folds one finished task's total cost into the per-task
// statistics exposed by Snapshot.
func (g *Guard) RecordTaskCost(cents float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.taskCount++
	g.taskSpentCents += cents
}

// IsPremiumBlocked reports whether premium and mid tier calls must be
// refused. Local calls are always free and allowed.
func (g *Guard) IsPremiumBlocked() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.maybeResetLocked(time.Now())
	return g.enabled && g.overBudgetLocked()
}

// Snapshot returns the current budget state.
func (g *Guard) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.maybeResetLocked(time.Now())

	perModel := make(map[string]float64, len(g.perModelCents))
	for model, cents := range g.perModelCents {
		perModel[model] = cents
	}

	var avg float64
	if g.taskCount > 0 {
		avg = g.taskSpentCents / float64(g.taskCount)
	}

	over := g.overBudgetLocked()
	return Snapshot{
		Enabled:           g.enabled,
		DailyLimitCents:   g.dailyLimitCents,
		DailySpentCents:   g.dailySpentCents,
		AllTimeSpentCents: g.allTimeSpentCents,
		IsWarning:         g.warningLocked(),
		IsOverBudget:      over,
		PremiumBlocked:    g.enabled && over,
		ResetsAt:          g.windowStart.Add(24 * time.Hour),
		TaskCount:         g.taskCount,
		AvgCostPerTask:    avg,
		PerModelCents:     perModel,
	}
}

func (g *Guard) overBudgetLocked() bool {
	return g.dailyLimitCents > 0 && g.dailySpentCents > float64(g.dailyLimitCents)
}

func (g *Guard) warningLocked() bool {
	return g.dailyLimitCents > 0 &&
		g.dailySpentCents >= g.warningThreshold*float64(g.dailyLimitCents)
}

// maybeResetLocked rolls the daily counters when the UTC day has changed.
func (g *Guard) maybeResetLocked(now time.Time) {
	midnight := utcMidnight(now)
	if midnight.After(g.windowStart) {
		slog.Info("Budget daily window reset",
			"previous_spent_cents", g.dailySpentCents,
			"window_start", midnight)
		g.dailySpentCents = 0
		g.windowStart = midnight
		g.warned = false
		g.exceeded = false
	}
}

// alertLocked publishes threshold events, each at most once per window.
func (g *Guard) alertLocked(model string) {
	if g.bus == nil || g.dailyLimitCents <= 0 {
		return
	}
	payload := events.BudgetPayload{
		DailySpentCents: g.dailySpentCents,
		DailyLimitCents: g.dailyLimitCents,
		Model:           NormalizeModel(model),
	}
	if g.overBudgetLocked() && !g.exceeded {
		g.exceeded = true
		g.bus.Publish(events.New(events.EventTypeBudgetExceeded, "", payload))
		slog.Warn("Daily budget exceeded",
			"spent_cents", g.dailySpentCents, "limit_cents", g.dailyLimitCents)
		return
	}
	if g.warningLocked() && !g.warned {
		g.warned = true
		g.bus.Publish(events.New(events.EventTypeBudgetWarning, "", payload))
		slog.Warn("Daily budget warning threshold crossed",
			"spent_cents", g.dailySpentCents, "limit_cents", g.dailyLimitCents)
	}
}

func utcMidnight(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
