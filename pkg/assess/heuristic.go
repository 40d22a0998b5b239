// Package assess scores task complexity on a 1–10 scale. Scoring is dual:
// a fast keyword heuristic always runs, and an optional cheap "judge" model
// provides a second opinion that is reconciled against it.
package assess

import (
	"fmt"
	"regexp"
	"strings"
)

// Input is everything the assessor looks at.
type Input struct {
	Title            string
	Description      string
	TaskType         string
	Priority         int
	CurrentIteration int
}

// Complexity bounds.
const (
	MinComplexity = 1.0
	MaxComplexity = 10.0
)

var stepPattern = regexp.MustCompile(`(?i)\bstep\s+\d+\s*[:.]`)

// Keyword weights for the heuristic. High-signal keywords indicate work that
// spans files or systems; low-signal keywords indicate boilerplate.
var (
	highKeywords   = []string{"multi-file", "architecture", "design", "refactor", "integrate", "api", "database"}
	mediumKeywords = []string{"test", "verify", "validate", "debug", "fix", "update"}
	lowKeywords    = []string{"create", "add", "simple", "basic"}
)

// taskTypeWeights biases the score by the kind of work requested.
var taskTypeWeights = map[string]float64{
	"code":   1.0,
	"test":   1.5,
	"review": 2.0,
}

// Heuristic computes the router's keyword-based complexity score. The result
// is clamped to [MinComplexity, MaxComplexity] but NOT rounded — rounding
// happens once, after reconciliation.
func Heuristic(in Input) (float64, string) {
	var score float64
	var parts []string

	text := strings.ToLower(in.Title + " " + in.Description)

	if steps := len(stepPattern.FindAllString(in.Description, -1)); steps > 0 {
		score += 0.5 * float64(steps)
		parts = append(parts, fmt.Sprintf("%d numbered steps (+%.1f)", steps, 0.5*float64(steps)))
	}

	for _, kw := range highKeywords {
		if strings.Contains(text, kw) {
			score += 2
			parts = append(parts, fmt.Sprintf("high-signal %q (+2)", kw))
		}
	}
	for _, kw := range mediumKeywords {
		if strings.Contains(text, kw) {
			score += 1
			parts = append(parts, fmt.Sprintf("medium %q (+1)", kw))
		}
	}
	for _, kw := range lowKeywords {
		if strings.Contains(text, kw) {
			score -= 0.5
			parts = append(parts, fmt.Sprintf("low %q (-0.5)", kw))
		}
	}

	if w, ok := taskTypeWeights[in.TaskType]; ok {
		score += w
		parts = append(parts, fmt.Sprintf("type %s (+%.1f)", in.TaskType, w))
	}

	priorityBonus := float64(in.Priority) / 10 * 0.5
	score += priorityBonus
	if priorityBonus > 0 {
		parts = append(parts, fmt.Sprintf("priority %d (+%.2f)", in.Priority, priorityBonus))
	}

	if in.CurrentIteration > 0 {
		bump := 1.5 * float64(in.CurrentIteration)
		score += bump
		parts = append(parts, fmt.Sprintf("%d failed attempts (+%.1f)", in.CurrentIteration, bump))
	}

	score = clamp(score)
	reasoning := "heuristic: " + strings.Join(parts, ", ")
	if len(parts) == 0 {
		reasoning = "heuristic: no signals, floor score"
	}
	return score, reasoning
}

func clamp(score float64) float64 {
	if score < MinComplexity {
		return MinComplexity
	}
	if score > MaxComplexity {
		return MaxComplexity
	}
	return score
}
