package assess

import (
	"context"
	"fmt"
	"log/slog"
	"math"
)

// Complexity sources.
const (
	SourceRouter   = "router"
	SourceHaiku    = "haiku"
	SourceDual     = "dual"
	SourceOverride = "override"
)

// Result is the reconciled complexity verdict for a task.
type Result struct {
	Complexity float64 // [1,10], one decimal
	Source     string
	Reasoning  string
}

// Assessor produces the final complexity score. The judge is optional; when
// nil (or failing), the heuristic alone decides.
type Assessor struct {
	judge *Judge
}

// NewAssessor creates an assessor. Pass a nil judge to disable dual scoring.
func NewAssessor(judge *Judge) *Assessor {
	return &Assessor{judge: judge}
}

// Assess scores the task. Reconciliation when both opinions exist:
//
//   - judge − heuristic ≥ 2  → trust the judge (it sees semantic complexity
//     the keyword heuristic missed)
//   - judge − heuristic ≤ −2 → weighted average, 0.6·heuristic + 0.4·judge
//   - otherwise              → simple mean
//
// The final score is rounded to one decimal; rounding an already-rounded
// score is a no-op.
func (a *Assessor) Assess(ctx context.Context, in Input) Result {
	routerScore, routerReasoning := Heuristic(in)

	if a.judge == nil {
		return Result{
			Complexity: Round1(routerScore),
			Source:     SourceRouter,
			Reasoning:  routerReasoning,
		}
	}

	judgeScore, judgeReasoning, err := a.judge.Score(ctx, in)
	if err != nil {
		slog.Debug("Judge unavailable, falling back to heuristic", "error", err)
		return Result{
			Complexity: Round1(routerScore),
			Source:     SourceRouter,
			Reasoning:  routerReasoning,
		}
	}

	diff := judgeScore - routerScore
	switch {
	case diff >= 2:
		return Result{
			Complexity: Round1(judgeScore),
			Source:     SourceHaiku,
			Reasoning:  fmt.Sprintf("judge overrode heuristic %.1f: %s", routerScore, judgeReasoning),
		}
	case diff <= -2:
		return Result{
			Complexity: Round1(clamp(0.6*routerScore + 0.4*judgeScore)),
			Source:     SourceDual,
			Reasoning:  fmt.Sprintf("weighted 0.6·%.1f + 0.4·%.1f; %s", routerScore, judgeScore, judgeReasoning),
		}
	default:
		return Result{
			Complexity: Round1(clamp((routerScore + judgeScore) / 2)),
			Source:     SourceDual,
			Reasoning:  fmt.Sprintf("mean of heuristic %.1f and judge %.1f; %s", routerScore, judgeScore, judgeReasoning),
		}
	}
}

// Round1 rounds to one decimal place. Idempotent.
func Round1(x float64) float64 {
	return math.Round(x*10) / 10
}
