package cost

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frugalops/foreman/pkg/events"
)

func TestGuardRecordUsageAccumulates(t *testing.T) {
	g := NewGuard(GuardConfig{DailyLimitCents: 1000, Enabled: true}, nil)

	g.RecordUsage(1_000_000, 0, "claude-haiku") // $0.80 = 80 cents
	g.RecordUsage(1_000_000, 0, "claude-haiku")

	snap := g.Snapshot()
	assert.InDelta(t, 160, snap.DailySpentCents, 1e-9)
	assert.InDelta(t, 160, snap.AllTimeSpentCents, 1e-9)
	assert.InDelta(t, 160, snap.PerModelCents["claude-haiku"], 1e-9)
	assert.False(t, snap.IsOverBudget)
	assert.False(t, snap.PremiumBlocked)
}

func TestGuardMonotonicSpend(t *testing.T) {
	g := NewGuard(GuardConfig{DailyLimitCents: 1000, Enabled: true}, nil)

	var prev float64
	for i := 0; i < 50; i++ {
		g.RecordUsage(10_000, 10_000, "claude-sonnet-4")
		snap := g.Snapshot()
		assert.GreaterOrEqual(t, snap.DailySpentCents, prev)
		prev = snap.DailySpentCents
	}
}

func TestGuardPremiumBlockedPastLimit(t *testing.T) {
	// Daily limit 10 cents, one premium call costing 12 cents.
	g := NewGuard(GuardConfig{DailyLimitCents: 10, Enabled: true}, nil)
	require.False(t, g.IsPremiumBlocked())

	// 8000 output tokens of opus = $0.60 = 60 cents... use a call worth ~12 cents:
	// 1600 output tokens * $75/M = $0.12.
	g.RecordUsage(0, 1600, "claude-opus-4")

	assert.True(t, g.IsPremiumBlocked())
	snap := g.Snapshot()
	assert.True(t, snap.IsOverBudget)
	assert.True(t, snap.PremiumBlocked)
}

func TestGuardDisabledNeverBlocks(t *testing.T) {
	g := NewGuard(GuardConfig{DailyLimitCents: 1, Enabled: false}, nil)
	g.RecordUsage(0, 1_000_000, "claude-opus-4")

	assert.False(t, g.IsPremiumBlocked())
	assert.True(t, g.Snapshot().IsOverBudget)
}

func TestGuardExceededEventEmittedOnce(t *testing.T) {
	bus := events.NewBus()
	defer bus.Close()
	sub := bus.Subscribe(16)

	g := NewGuard(GuardConfig{DailyLimitCents: 10, Enabled: true}, bus)

	// Cross the limit repeatedly; the event must fire exactly once.
	for i := 0; i < 5; i++ {
		g.RecordUsage(0, 1600, "claude-opus-4")
	}

	exceeded := 0
	warnings := 0
	for {
		select {
		case evt := <-sub.Events():
			switch evt.Type {
			case events.EventTypeBudgetExceeded:
				exceeded++
			case events.EventTypeBudgetWarning:
				warnings++
			}
			continue
		case <-time.After(100 * time.Millisecond):
		}
		break
	}
	assert.Equal(t, 1, exceeded)
	assert.LessOrEqual(t, warnings, 1)
}

func TestGuardWarningThreshold(t *testing.T) {
	bus := events.NewBus()
	defer bus.Close()
	sub := bus.Subscribe(16)

	// Limit 100 cents, warning at 80%.
	g := NewGuard(GuardConfig{DailyLimitCents: 100, Enabled: true}, bus)

	g.RecordUsage(1_000_000, 0, "claude-haiku") // 80 cents — hits the threshold
	snap := g.Snapshot()
	assert.True(t, snap.IsWarning)
	assert.False(t, snap.IsOverBudget)

	select {
	case evt := <-sub.Events():
		assert.Equal(t, events.EventTypeBudgetWarning, evt.Type)
	case <-time.After(time.Second):
		t.Fatal("expected budget_warning event")
	}
}

func TestGuardResetsAtNextUTCMidnight(t *testing.T) {
	g := NewGuard(GuardConfig{DailyLimitCents: 100, Enabled: true}, nil)
	snap := g.Snapshot()

	now := time.Now().UTC()
	assert.True(t, snap.ResetsAt.After(now))
	assert.Equal(t, 0, snap.ResetsAt.Hour())
	assert.Equal(t, 0, snap.ResetsAt.Minute())
	assert.LessOrEqual(t, snap.ResetsAt.Sub(now), 24*time.Hour)
}

func TestGuardDailyWindowRollover(t *testing.T) {
	g := NewGuard(GuardConfig{DailyLimitCents: 10, Enabled: true}, nil)
	g.RecordUsage(0, 1600, "claude-opus-4")
	require.True(t, g.IsPremiumBlocked())

	// Simulate yesterday's window.
	g.mu.Lock()
	g.windowStart = g.windowStart.Add(-24 * time.Hour)
	g.mu.Unlock()

	snap := g.Snapshot()
	assert.InDelta(t, 0, snap.DailySpentCents, 1e-9)
	assert.Greater(t, snap.AllTimeSpentCents, 0.0) // all-time survives the reset
	assert.False(t, g.IsPremiumBlocked())
}

func TestGuardTaskStats(t *testing.T) {
	g := NewGuard(GuardConfig{DailyLimitCents: 1000, Enabled: true}, nil)
	g.RecordTaskCost(30)
	g.RecordTaskCost(10)

	snap := g.Snapshot()
	assert.Equal(t, int64(2), snap.TaskCount)
	assert.InDelta(t, 20, snap.AvgCostPerTask, 1e-9)
}
