// Package review implements the post-completion code review pipeline: the
// trigger that decides which completed tasks deserve a review, and the
// reviewer that runs review tasks against a premium model.
package review

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/frugalops/foreman/pkg/agentruntime"
	"github.com/frugalops/foreman/pkg/assess"
	"github.com/frugalops/foreman/pkg/cost"
	"github.com/frugalops/foreman/pkg/llm"
	"github.com/frugalops/foreman/pkg/services"
)

// ApprovalThreshold is the minimum quality score for a default approval.
const ApprovalThreshold = 7.0

// transcriptCap bounds how much of the execution log goes into the prompt.
const transcriptCap = 24 * 1024

const reviewSystemPrompt = `You are a senior engineer reviewing code produced by an AI coding agent.
You receive the original task and the agent's execution transcript (tool calls and their results).

Judge correctness, robustness, and maintainability of the produced code.

Respond with ONLY a JSON object, no prose, in exactly this shape:
{
  "qualityScore": <number 0-10>,
  "findings": [{"severity": "critical|high|medium|low", "category": "correctness|robustness|maintainability", "description": "<what is wrong>", "suggestion": "<how to fix it>"}],
  "summary": "<2-3 sentence overall assessment>",
  "approved": <true|false>
}`

// Reviewer runs review tasks. It implements the runtime interface so the
// executor can dispatch review tasks to it in-process: the review consumes
// the parent task's execution log and asks a premium model for a verdict.
type Reviewer struct {
	tasks   *services.TaskService
	logs    *services.LogService
	reviews *services.ReviewService
	llm     llm.Client
	budget  *cost.Guard
	model   string
}

// NewReviewer creates a reviewer.
func NewReviewer(tasks *services.TaskService, logs *services.LogService, reviews *services.ReviewService,
	client llm.Client, budget *cost.Guard, model string) *Reviewer {
	return &Reviewer{
		tasks:   tasks,
		logs:    logs,
		reviews: reviews,
		llm:     client,
		budget:  budget,
		model:   model,
	}
}

// verdictJSON is the reviewer model's expected response shape. Approved is a
// pointer so an omitted field falls back to the score/severity default.
type verdictJSON struct {
	QualityScore float64                  `json:"qualityScore"`
	Findings     []map[string]interface{} `json:"findings"`
	Summary      string                   `json:"summary"`
	Approved     *bool                    `json:"approved"`
}

// Execute runs one review task to completion. The task's parent is the
// reviewed task; its execution log is the review input.
func (r *Reviewer) Execute(ctx context.Context, req *agentruntime.ExecuteRequest) (*agentruntime.ExecuteResponse, error) {
	// Reviews only run on the premium model; there is no cheaper tier to
	// fall back to, so an exhausted budget refuses the run outright.
	if r.budget != nil && r.budget.IsPremiumBlocked() {
		return nil, fmt.Errorf("review of task %s refused: %w", req.TaskID, cost.ErrPremiumBlocked)
	}

	reviewTask, err := r.tasks.GetTask(ctx, req.TaskID)
	if err != nil {
		return nil, fmt.Errorf("loading review task: %w", err)
	}
	if reviewTask.ParentTaskID == nil || *reviewTask.ParentTaskID == "" {
		return nil, fmt.Errorf("review task %s has no parent to review", req.TaskID)
	}
	parentID := *reviewTask.ParentTaskID

	parent, err := r.tasks.GetTask(ctx, parentID)
	if err != nil {
		return nil, fmt.Errorf("loading reviewed task %s: %w", parentID, err)
	}

	transcript, err := r.buildTranscript(ctx, parentID)
	if err != nil {
		return nil, err
	}

	completion, err := r.llm.Complete(ctx, &llm.CompleteInput{
		Model:        r.model,
		SystemPrompt: reviewSystemPrompt,
		UserPrompt:   buildReviewPrompt(parent.Title, parent.Description, transcript),
		MaxTokens:    2000,
	})
	if err != nil {
		return nil, fmt.Errorf("reviewer model call failed: %w", err)
	}
	if r.budget != nil {
		r.budget.RecordUsage(completion.InputTokens, completion.OutputTokens, completion.ModelUsed)
	}

	verdict, err := parseVerdict(completion.Content)
	if err != nil {
		return nil, fmt.Errorf("unusable reviewer response: %w", err)
	}
	verdict.ModelUsed = completion.ModelUsed
	verdict.InputTokens = completion.InputTokens
	verdict.OutputTokens = completion.OutputTokens

	if _, err := r.reviews.Complete(ctx, parentID, verdict); err != nil {
		return nil, fmt.Errorf("persisting review verdict: %w", err)
	}

	slog.Info("Code review completed",
		"task_id", parentID, "review_task_id", req.TaskID,
		"quality_score", verdict.QualityScore, "approved", verdict.Approved)

	return &agentruntime.ExecuteResponse{
		Success: true,
		Output: agentruntime.Output{
			Status:       agentruntime.StatusSuccess,
			Confidence:   1.0,
			ActualOutput: verdict.Summary,
		},
		Metrics: agentruntime.Metrics{
			InputTokens:  completion.InputTokens,
			OutputTokens: completion.OutputTokens,
			ModelUsed:    completion.ModelUsed,
		},
	}, nil
}

// buildTranscript renders the parent's execution log for the prompt, newest
// steps kept when the cap is exceeded.
func (r *Reviewer) buildTranscript(ctx context.Context, taskID string) (string, error) {
	entries, err := r.logs.List(ctx, taskID)
	if err != nil {
		return "", fmt.Errorf("loading execution log of %s: %w", taskID, err)
	}
	if len(entries) == 0 {
		return "(no execution log was recorded)", nil
	}

	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "--- step %d: %s ---\n", e.Step, e.Action)
		if e.Input != "" {
			fmt.Fprintf(&b, "input:\n%s\n", e.Input)
		}
		if e.Observation != "" {
			fmt.Fprintf(&b, "result:\n%s\n", e.Observation)
		}
	}

	transcript := b.String()
	if len(transcript) > transcriptCap {
		transcript = "(transcript truncated)\n" + transcript[len(transcript)-transcriptCap:]
	}
	return transcript, nil
}

func buildReviewPrompt(title, description, transcript string) string {
	var b strings.Builder
	b.WriteString("Task: ")
	b.WriteString(title)
	b.WriteString("\n\n")
	b.WriteString(description)
	b.WriteString("\n\nExecution transcript:\n")
	b.WriteString(transcript)
	return b.String()
}

// parseVerdict extracts and validates the model's JSON verdict. The quality
// score is clamped to [0,10]; a missing approved flag defaults to
// score >= 7 with no critical or high finding.
func parseVerdict(raw string) (services.ReviewVerdict, error) {
	payload, err := assess.ExtractJSONObject(raw)
	if err != nil {
		return services.ReviewVerdict{}, err
	}

	var v verdictJSON
	if err := json.Unmarshal([]byte(payload), &v); err != nil {
		return services.ReviewVerdict{}, fmt.Errorf("invalid verdict JSON: %w", err)
	}

	score := v.QualityScore
	if score < 0 {
		score = 0
	}
	if score > 10 {
		score = 10
	}

	approved := score >= ApprovalThreshold && !hasBlockingFinding(v.Findings)
	if v.Approved != nil {
		approved = *v.Approved
	}

	return services.ReviewVerdict{
		QualityScore: score,
		Findings:     v.Findings,
		Summary:      v.Summary,
		Approved:     approved,
	}, nil
}

func hasBlockingFinding(findings []map[string]interface{}) bool {
	for _, f := range findings {
		severity, _ := f["severity"].(string)
		switch strings.ToLower(severity) {
		case "critical", "high":
			return true
		}
	}
	return false
}
