package router

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frugalops/foreman/pkg/cost"
	"github.com/frugalops/foreman/pkg/resources"
)

// stubDir serves idle agents from a fixed map.
type stubDir struct {
	idle map[string]Agent
	err  error
}

func (d *stubDir) IdleAgent(_ context.Context, kind string) (Agent, bool, error) {
	if d.err != nil {
		return Agent{}, false, d.err
	}
	a, ok := d.idle[kind]
	return a, ok, nil
}

func allIdle() *stubDir {
	return &stubDir{idle: map[string]Agent{
		KindCoder: {ID: "coder-1", Kind: KindCoder},
		KindQA:    {ID: "qa-1", Kind: KindQA},
		KindCTO:   {ID: "cto-1", Kind: KindCTO},
	}}
}

func TestRouteSimpleTaskGoesLocal(t *testing.T) {
	r := New(allIdle(), nil)
	d, err := r.Route(context.Background(), Input{TaskID: "t1", Complexity: 2.0})
	require.NoError(t, err)

	assert.Equal(t, "coder-1", d.AgentID)
	assert.Equal(t, cost.TierLocal, d.Tier)
	assert.Equal(t, 0.0, d.EstCost)
	assert.False(t, d.EscalateToHuman)
	assert.False(t, d.NoCapacity)
}

func TestRouteComplexTaskGoesCheapQA(t *testing.T) {
	r := New(allIdle(), nil)
	d, err := r.Route(context.Background(), Input{TaskID: "t1", Complexity: 4.0})
	require.NoError(t, err)

	assert.Equal(t, "qa-1", d.AgentID)
	assert.Equal(t, cost.TierCheap, d.Tier)
	assert.Equal(t, 0.001, d.EstCost)
}

func TestRouteFixLadder(t *testing.T) {
	r := New(allIdle(), nil)

	first, err := r.Route(context.Background(), Input{Complexity: 2, CurrentIteration: 1})
	require.NoError(t, err)
	assert.Equal(t, KindQA, first.AgentKind)
	assert.Equal(t, cost.TierCheap, first.Tier)
	assert.Contains(t, first.Reason, "1st fix")

	second, err := r.Route(context.Background(), Input{Complexity: 2, CurrentIteration: 2})
	require.NoError(t, err)
	assert.Equal(t, KindCTO, second.AgentKind)
	assert.Equal(t, cost.TierMid, second.Tier)
	assert.Contains(t, second.Reason, "2nd fix")
}

func TestRouteEscalatesAfterThreeAttempts(t *testing.T) {
	r := New(allIdle(), nil)
	d, err := r.Route(context.Background(), Input{Complexity: 5, CurrentIteration: 3})
	require.NoError(t, err)

	assert.True(t, d.EscalateToHuman)
	assert.Empty(t, d.AgentID)
}

func TestRouteRequiredAgentWins(t *testing.T) {
	r := New(allIdle(), nil)
	// required agent beats both the complexity ladder and escalation
	d, err := r.Route(context.Background(), Input{
		RequiredAgent: KindCTO, Complexity: 1, CurrentIteration: 3,
	})
	require.NoError(t, err)

	assert.False(t, d.EscalateToHuman)
	assert.Equal(t, "cto-1", d.AgentID)
	assert.Equal(t, cost.TierPremium, d.Tier)
	assert.Equal(t, 1.0, d.Confidence)
}

func TestRouteCTOTakesOverWhenKindBusy(t *testing.T) {
	dir := &stubDir{idle: map[string]Agent{
		KindCTO: {ID: "cto-1", Kind: KindCTO},
	}}
	r := New(dir, nil)
	d, err := r.Route(context.Background(), Input{Complexity: 2})
	require.NoError(t, err)

	assert.Equal(t, "cto-1", d.AgentID)
	assert.Equal(t, KindCTO, d.AgentKind)
	assert.Equal(t, cost.TierLocal, d.Tier, "tier follows the task, not the stand-in agent")
	assert.Contains(t, d.Reason, "cto takes over")
}

func TestRouteNoCapacity(t *testing.T) {
	r := New(&stubDir{idle: map[string]Agent{}}, nil)
	d, err := r.Route(context.Background(), Input{Complexity: 2})
	require.NoError(t, err)

	assert.True(t, d.NoCapacity)
	assert.Empty(t, d.AgentID)
}

func TestRouteDirectoryErrorPropagates(t *testing.T) {
	r := New(&stubDir{err: errors.New("store down")}, nil)
	_, err := r.Route(context.Background(), Input{Complexity: 2})
	assert.Error(t, err)
}

// exhaustedGuard returns a guard past its daily limit.
func exhaustedGuard(t *testing.T) *cost.Guard {
	t.Helper()
	guard := cost.NewGuard(cost.GuardConfig{DailyLimitCents: 10, Enabled: true}, nil)
	guard.RecordUsage(100_000, 0, "claude-opus") // 150 cents
	require.True(t, guard.IsPremiumBlocked())
	return guard
}

func TestRouteBudgetExceededDowngradesToLocal(t *testing.T) {
	guard := exhaustedGuard(t)

	r := New(allIdle(), guard)

	// iteration 2 would route cto/mid; the exhausted budget forces local
	d, err := r.Route(context.Background(), Input{Complexity: 5, CurrentIteration: 2})
	require.NoError(t, err)
	assert.Equal(t, cost.TierLocal, d.Tier)
	assert.Equal(t, KindCoder, d.AgentKind)
	assert.Contains(t, d.Reason, "budget exceeded")

	// local routing is unaffected
	d, err = r.Route(context.Background(), Input{Complexity: 2})
	require.NoError(t, err)
	assert.Equal(t, cost.TierLocal, d.Tier)
	assert.Equal(t, "coder-1", d.AgentID)
}

func TestRouteFallbackAgentPrefersQA(t *testing.T) {
	r := New(allIdle(), nil)
	d, err := r.Route(context.Background(), Input{Complexity: 2})
	require.NoError(t, err)

	assert.Equal(t, "coder-1", d.AgentID)
	assert.Equal(t, "qa-1", d.FallbackAgentID)
}

func TestDecideDecomposition(t *testing.T) {
	deep := DecideDecomposition(8)
	assert.Equal(t, cost.TierPremium, deep.Tier)

	shallow := DecideDecomposition(7.9)
	assert.Equal(t, cost.TierMid, shallow.Tier)
}

func TestDecideReview(t *testing.T) {
	d := DecideReview(3)
	assert.Equal(t, cost.TierPremium, d.Tier)
	assert.InDelta(t, 0.06, d.EstCost, 1e-9)
}

func TestRouteReviewTaskGoesToCTOOnPremium(t *testing.T) {
	r := New(allIdle(), nil)
	d, err := r.Route(context.Background(), Input{TaskID: "r1", TaskType: "review", RequiredAgent: KindCTO})
	require.NoError(t, err)

	assert.Equal(t, "cto-1", d.AgentID)
	assert.Equal(t, KindCTO, d.AgentKind)
	assert.Equal(t, cost.TierPremium, d.Tier)
	assert.InDelta(t, 0.02, d.EstCost, 1e-9)
	assert.False(t, d.NoCapacity)
}

func TestRouteReviewDeferredWhenBudgetExhausted(t *testing.T) {
	// A review cannot be downgraded to a cheaper tier; it waits for the next
	// daily window instead.
	r := New(allIdle(), exhaustedGuard(t))
	d, err := r.Route(context.Background(), Input{TaskID: "r1", TaskType: "review", RequiredAgent: KindCTO})
	require.NoError(t, err)

	assert.True(t, d.NoCapacity)
	assert.Empty(t, d.AgentID)
	assert.Contains(t, d.Reason, "review deferred")
}

func TestRouteReviewNoIdleCTO(t *testing.T) {
	r := New(&stubDir{idle: map[string]Agent{
		KindCoder: {ID: "coder-1", Kind: KindCoder},
	}}, nil)
	d, err := r.Route(context.Background(), Input{TaskType: "review"})
	require.NoError(t, err)

	assert.True(t, d.NoCapacity)
}

func TestPoolClass(t *testing.T) {
	assert.Equal(t, resources.ClassLocal, PoolClass(cost.TierLocal))
	for _, tier := range []cost.Tier{cost.TierCheap, cost.TierMid, cost.TierPremium} {
		assert.Equal(t, resources.ClassPremiumCloud, PoolClass(tier))
	}
}
