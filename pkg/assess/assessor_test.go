package assess

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/frugalops/foreman/pkg/llm"
)

// fakeLLM returns canned completions for judge tests.
type fakeLLM struct {
	content string
	model   string
	err     error
}

func (f *fakeLLM) Complete(_ context.Context, _ *llm.CompleteInput) (*llm.Completion, error) {
	if f.err != nil {
		return nil, f.err
	}
	model := f.model
	if model == "" {
		model = "judge-test"
	}
	return &llm.Completion{Content: f.content, ModelUsed: model, InputTokens: 10, OutputTokens: 20}, nil
}

func (f *fakeLLM) Close() error { return nil }

func judgeWith(content string, err error) *Judge {
	return NewJudge(&fakeLLM{content: content, err: err}, "judge-test", nil, time.Second)
}

// noSignalInput scores the heuristic floor (1.0): no keywords, no type
// weight, no priority, no iterations.
var noSignalInput = Input{Title: "qq", Description: "zz"}

func TestAssessWithoutJudge(t *testing.T) {
	res := NewAssessor(nil).Assess(context.Background(), Input{
		Title:       "Refactor the storage layer",
		Description: "refactor the database access behind a new api",
		TaskType:    "code",
	})

	assert.Equal(t, SourceRouter, res.Source)
	assert.Equal(t, 7.0, res.Complexity)
	assert.Contains(t, res.Reasoning, "heuristic")
}

func TestAssessJudgeErrorFallsBack(t *testing.T) {
	a := NewAssessor(judgeWith("", errors.New("sidecar down")))
	res := a.Assess(context.Background(), noSignalInput)

	assert.Equal(t, SourceRouter, res.Source)
	assert.Equal(t, 1.0, res.Complexity)
}

func TestAssessJudgeMalformedOutputFallsBack(t *testing.T) {
	for _, content := range []string{
		"I think it's about a five.",
		`{"complexity": "five"}`,
		`{"complexity": 0}`,
		`{"complexity": 11}`,
	} {
		a := NewAssessor(judgeWith(content, nil))
		res := a.Assess(context.Background(), noSignalInput)
		assert.Equal(t, SourceRouter, res.Source, "content %q", content)
	}
}

func TestAssessJudgeMuchHigherWins(t *testing.T) {
	// heuristic 1.0, judge 5: diff +4, the judge's verdict is taken whole.
	a := NewAssessor(judgeWith(`{"complexity": 5, "reasoning": "hidden coupling", "factors": ["io", "state"]}`, nil))
	res := a.Assess(context.Background(), noSignalInput)

	assert.Equal(t, SourceHaiku, res.Source)
	assert.Equal(t, 5.0, res.Complexity)
	assert.Contains(t, res.Reasoning, "hidden coupling")
}

func TestAssessJudgeMuchLowerWeighted(t *testing.T) {
	// heuristic 7.0 (refactor, database, api, code), judge 3: diff -4,
	// weighted 0.6*7 + 0.4*3 = 5.4.
	a := NewAssessor(judgeWith(`{"complexity": 3, "reasoning": "mostly mechanical"}`, nil))
	res := a.Assess(context.Background(), Input{
		Title:       "Refactor the storage layer",
		Description: "refactor the database access behind a new api",
		TaskType:    "code",
	})

	assert.Equal(t, SourceDual, res.Source)
	assert.Equal(t, 5.4, res.Complexity)
}

func TestAssessCloseScoresAveraged(t *testing.T) {
	// heuristic 2.0 (fix +1, code +1), judge 3: diff +1, mean 2.5.
	a := NewAssessor(judgeWith(`{"complexity": 3, "reasoning": "small"}`, nil))
	res := a.Assess(context.Background(), Input{
		Title:       "Fix the handler",
		Description: "fix it",
		TaskType:    "code",
	})

	assert.Equal(t, SourceDual, res.Source)
	assert.Equal(t, 2.5, res.Complexity)
}

func TestAssessJudgeFencedOutputAccepted(t *testing.T) {
	a := NewAssessor(judgeWith("```json\n{\"complexity\": 5, \"reasoning\": \"ok\"}\n```", nil))
	res := a.Assess(context.Background(), noSignalInput)

	assert.Equal(t, SourceHaiku, res.Source)
	assert.Equal(t, 5.0, res.Complexity)
}

func TestRound1Idempotent(t *testing.T) {
	for _, x := range []float64{1.0, 2.25, 5.4, 6.66, 9.95, 10.0} {
		once := Round1(x)
		assert.Equal(t, once, Round1(once), "x=%v", x)
	}
}

func TestAssessResultAlwaysInRange(t *testing.T) {
	inputs := []Input{
		noSignalInput,
		{Title: "Refactor architecture design api database", Description: "integrate multi-file", TaskType: "review", Priority: 10, CurrentIteration: 2},
	}
	a := NewAssessor(nil)
	for _, in := range inputs {
		res := a.Assess(context.Background(), in)
		assert.GreaterOrEqual(t, res.Complexity, MinComplexity)
		assert.LessOrEqual(t, res.Complexity, MaxComplexity)
	}
}
