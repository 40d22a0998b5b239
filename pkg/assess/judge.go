package assess

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/frugalops/foreman/pkg/cost"
	"github.com/frugalops/foreman/pkg/llm"
)

// DefaultJudgeTimeout bounds the judge model call.
const DefaultJudgeTimeout = 30 * time.Second

const judgeSystemPrompt = `You estimate the complexity of software engineering tasks.
Respond with ONLY a JSON object of the shape:
{"complexity": <integer 1-10>, "reasoning": "<one sentence>", "factors": ["<factor>", ...]}
No prose outside the JSON.`

// judgeVerdict is the schema the judge model must produce.
type judgeVerdict struct {
	Complexity int      `json:"complexity"`
	Reasoning  string   `json:"reasoning"`
	Factors    []string `json:"factors"`
}

// Judge asks a cheap model for a second complexity opinion.
type Judge struct {
	client  llm.Client
	budget  *cost.Guard
	model   string
	timeout time.Duration
}

// NewJudge creates a judge backed by the given model. The budget guard may be
// nil (spend not tracked); an empty timeout uses DefaultJudgeTimeout.
func NewJudge(client llm.Client, model string, budget *cost.Guard, timeout time.Duration) *Judge {
	if timeout <= 0 {
		timeout = DefaultJudgeTimeout
	}
	return &Judge{client: client, budget: budget, model: model, timeout: timeout}
}

// Score returns the judge's complexity opinion. Any failure — transport,
// malformed output, out-of-range score — makes the judge unavailable for
// this task; the caller falls back to the heuristic alone.
func (j *Judge) Score(ctx context.Context, in Input) (float64, string, error) {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	completion, err := j.client.Complete(ctx, &llm.CompleteInput{
		Model:        j.model,
		SystemPrompt: judgeSystemPrompt,
		UserPrompt: fmt.Sprintf("Task type: %s\nTitle: %s\n\n%s",
			in.TaskType, in.Title, in.Description),
		MaxTokens:   512,
		Temperature: 0,
	})
	if err != nil {
		return 0, "", fmt.Errorf("judge call failed: %w", err)
	}
	// The tokens were spent whether or not the verdict parses.
	if j.budget != nil {
		j.budget.RecordUsage(completion.InputTokens, completion.OutputTokens, completion.ModelUsed)
	}

	obj, err := ExtractJSONObject(completion.Content)
	if err != nil {
		slog.Debug("Judge output contained no JSON", "model", j.model)
		return 0, "", fmt.Errorf("judge output unparseable: %w", err)
	}

	var verdict judgeVerdict
	if err := json.Unmarshal([]byte(obj), &verdict); err != nil {
		return 0, "", fmt.Errorf("judge JSON malformed: %w", err)
	}
	if verdict.Complexity < 1 || verdict.Complexity > 10 {
		return 0, "", fmt.Errorf("judge complexity %d out of range", verdict.Complexity)
	}

	reasoning := verdict.Reasoning
	if len(verdict.Factors) > 0 {
		reasoning = fmt.Sprintf("%s (factors: %v)", verdict.Reasoning, verdict.Factors)
	}
	return float64(verdict.Complexity), reasoning, nil
}
