// Package router maps task state to an execution decision: which agent kind
// runs the task, on which model tier, with what fallback. Rules are ordered;
// the first match wins.
package router

import (
	"context"
	"fmt"

	"github.com/frugalops/foreman/pkg/cost"
	"github.com/frugalops/foreman/pkg/resources"
)

// Agent kinds.
const (
	KindCoder = "coder"
	KindQA    = "qa"
	KindCTO   = "cto"
)

// Estimated cost per call by tier, in USD.
var tierEstCost = map[cost.Tier]float64{
	cost.TierLocal:   0,
	cost.TierCheap:   0.001,
	cost.TierMid:     0.005,
	cost.TierPremium: 0.04,
}

// kindTier is the default tier for an explicitly required agent kind.
var kindTier = map[string]cost.Tier{
	KindCoder: cost.TierLocal,
	KindQA:    cost.TierCheap,
	KindCTO:   cost.TierPremium,
}

// Agent is the slice of agent state routing needs.
type Agent struct {
	ID   string
	Kind string
}

// Directory answers idle-agent queries. Backed by the agent service in
// production and by a stub in tests.
type Directory interface {
	// IdleAgent returns an idle agent of the given kind, or ok=false when
	// none is available.
	IdleAgent(ctx context.Context, kind string) (Agent, bool, error)
}

// Input is the task state the router evaluates.
type Input struct {
	TaskID           string
	TaskType         string
	RequiredAgent    string
	Complexity       float64
	CurrentIteration int
}

// Decision is the routing verdict for one task.
type Decision struct {
	AgentID         string
	AgentKind       string
	Tier            cost.Tier
	Reason          string
	Confidence      float64
	FallbackAgentID string
	EstCost         float64

	// EscalateToHuman marks tasks that exhausted their fix attempts.
	EscalateToHuman bool
	// NoCapacity means no agent can take the task right now; leave pending.
	NoCapacity bool
}

// Router produces routing decisions.
type Router struct {
	dir    Directory
	budget *cost.Guard
}

// New creates a router. The budget guard may be nil (no premium blocking).
func New(dir Directory, budget *cost.Guard) *Router {
	return &Router{dir: dir, budget: budget}
}

// Route evaluates the ordered rules for a task.
func (r *Router) Route(ctx context.Context, in Input) (Decision, error) {
	// Review tasks only run on the premium tier; an exhausted budget leaves
	// them pending until the daily window resets instead of downgrading to a
	// model that cannot review.
	if in.TaskType == "review" {
		return r.routeReview(ctx)
	}

	// Rule order: an explicit required agent wins over everything,
	// including escalation.
	if in.RequiredAgent == "" && in.CurrentIteration >= 3 {
		return Decision{
			EscalateToHuman: true,
			Reason:          fmt.Sprintf("%d failed attempts, escalating to human", in.CurrentIteration),
			Confidence:      1.0,
		}, nil
	}

	kind, tier, reason, confidence := r.pickTarget(in)

	// Budget exhaustion downgrades paid tiers to local instead of stalling
	// the queue. Already-running premium work is unaffected.
	if r.budget != nil && r.budget.IsPremiumBlocked() && tier != cost.TierLocal && tier != cost.TierCheap {
		kind, tier = KindCoder, cost.TierLocal
		reason = reason + "; daily budget exceeded, downgraded to local"
	}

	agent, ok, err := r.dir.IdleAgent(ctx, kind)
	if err != nil {
		return Decision{}, fmt.Errorf("idle agent lookup for kind %s: %w", kind, err)
	}
	if !ok {
		// The cto doubles as routing manager when the target kind is busy.
		if kind != KindCTO {
			if cto, ctoOK, ctoErr := r.dir.IdleAgent(ctx, KindCTO); ctoErr != nil {
				return Decision{}, fmt.Errorf("cto fallback lookup: %w", ctoErr)
			} else if ctoOK {
				return r.finish(ctx, Decision{
					AgentID:    cto.ID,
					AgentKind:  KindCTO,
					Tier:       tier,
					Reason:     reason + "; no idle " + kind + ", cto takes over",
					Confidence: confidence * 0.8,
					EstCost:    tierEstCost[tier],
				}), nil
			}
		}
		return Decision{NoCapacity: true, Reason: "no idle agent for kind " + kind}, nil
	}

	return r.finish(ctx, Decision{
		AgentID:    agent.ID,
		AgentKind:  kind,
		Tier:       tier,
		Reason:     reason,
		Confidence: confidence,
		EstCost:    tierEstCost[tier],
	}), nil
}

// routeReview places one review task with the cto on the premium tier.
func (r *Router) routeReview(ctx context.Context) (Decision, error) {
	if r.budget != nil && r.budget.IsPremiumBlocked() {
		return Decision{NoCapacity: true, Reason: "daily budget exceeded, review deferred"}, nil
	}

	d := DecideReview(1)
	agent, ok, err := r.dir.IdleAgent(ctx, KindCTO)
	if err != nil {
		return Decision{}, fmt.Errorf("idle agent lookup for kind %s: %w", KindCTO, err)
	}
	if !ok {
		return Decision{NoCapacity: true, Reason: "no idle agent for kind " + KindCTO}, nil
	}
	d.AgentID = agent.ID
	d.AgentKind = KindCTO
	return r.finish(ctx, d), nil
}

// pickTarget applies rules 1-5: required agent first, then the
// iteration/complexity ladder.
func (r *Router) pickTarget(in Input) (kind string, tier cost.Tier, reason string, confidence float64) {
	if in.RequiredAgent != "" {
		t, ok := kindTier[in.RequiredAgent]
		if !ok {
			t = cost.TierCheap
		}
		return in.RequiredAgent, t, "required agent " + in.RequiredAgent, 1.0
	}
	switch {
	case in.CurrentIteration == 0 && in.Complexity < 4:
		return KindCoder, cost.TierLocal,
			fmt.Sprintf("complexity %.1f below 4, local coder", in.Complexity), 0.9
	case in.CurrentIteration == 0:
		return KindQA, cost.TierCheap,
			fmt.Sprintf("complexity %.1f, cheap qa", in.Complexity), 0.85
	case in.CurrentIteration == 1:
		return KindQA, cost.TierCheap, "1st fix", 0.8
	default: // iteration 2; >=3 escalates before this is used
		return KindCTO, cost.TierMid, "2nd fix", 0.7
	}
}

// finish attaches a fallback agent: the nearest idle agent of a different
// kind, preferring qa when the primary is a coder.
func (r *Router) finish(ctx context.Context, d Decision) Decision {
	order := []string{KindQA, KindCoder, KindCTO}
	if d.AgentKind == KindQA {
		order = []string{KindCoder, KindCTO}
	}
	for _, kind := range order {
		if kind == d.AgentKind {
			continue
		}
		if agent, ok, err := r.dir.IdleAgent(ctx, kind); err == nil && ok {
			d.FallbackAgentID = agent.ID
			break
		}
	}
	return d
}

// ManualDecision builds the decision for an operator-forced assignment. The
// tier follows the agent's kind; no fallback is attached.
func ManualDecision(agent Agent) Decision {
	tier, ok := kindTier[agent.Kind]
	if !ok {
		tier = cost.TierCheap
	}
	return Decision{
		AgentID:    agent.ID,
		AgentKind:  agent.Kind,
		Tier:       tier,
		Reason:     "manual assignment to " + agent.ID,
		Confidence: 1.0,
		EstCost:    tierEstCost[tier],
	}
}

// DecideDecomposition routes the splitting of a parent task. Deep tasks get
// the premium model; the rest split on mid.
func DecideDecomposition(complexity float64) Decision {
	tier := cost.TierMid
	reason := "decomposition on mid tier"
	if complexity >= 8 {
		tier = cost.TierPremium
		reason = fmt.Sprintf("complexity %.1f, decomposition needs premium", complexity)
	}
	return Decision{Tier: tier, Reason: reason, Confidence: 0.9, EstCost: tierEstCost[tier]}
}

// DecideReview routes a code review over a batch of tasks. Reviews always use
// the premium tier.
func DecideReview(taskCount int) Decision {
	return Decision{
		Tier:       cost.TierPremium,
		Reason:     fmt.Sprintf("code review of %d task(s) on premium", taskCount),
		Confidence: 1.0,
		EstCost:    0.02 * float64(taskCount),
	}
}

// PoolClass maps a tier to the resource pool class guarding it.
func PoolClass(tier cost.Tier) string {
	if tier == cost.TierLocal {
		return resources.ClassLocal
	}
	return resources.ClassPremiumCloud
}
