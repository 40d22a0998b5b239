package review

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frugalops/foreman/pkg/agentruntime"
	"github.com/frugalops/foreman/pkg/cost"
)

func TestParseVerdict_ExplicitApproval(t *testing.T) {
	v, err := parseVerdict(`{"qualityScore": 4.5, "findings": [], "summary": "rough but works", "approved": true}`)
	require.NoError(t, err)

	assert.Equal(t, 4.5, v.QualityScore)
	assert.True(t, v.Approved, "explicit approved flag overrides the score default")
	assert.Equal(t, "rough but works", v.Summary)
}

func TestParseVerdict_ExplicitRejectionDespiteHighScore(t *testing.T) {
	v, err := parseVerdict(`{"qualityScore": 9, "findings": [], "summary": "", "approved": false}`)
	require.NoError(t, err)

	assert.False(t, v.Approved)
}

func TestParseVerdict_DefaultApprovalFromScore(t *testing.T) {
	v, err := parseVerdict(`{"qualityScore": 8, "findings": [], "summary": "clean"}`)
	require.NoError(t, err)

	assert.True(t, v.Approved)
}

func TestParseVerdict_DefaultRejectionBelowThreshold(t *testing.T) {
	v, err := parseVerdict(`{"qualityScore": 6.9, "findings": [], "summary": "meh"}`)
	require.NoError(t, err)

	assert.False(t, v.Approved)
}

func TestParseVerdict_CriticalFindingBlocksDefaultApproval(t *testing.T) {
	v, err := parseVerdict(`{
		"qualityScore": 8.5,
		"findings": [{"severity": "Critical", "category": "correctness", "description": "secret logged in plaintext", "suggestion": "mask before logging"}],
		"summary": "good structure, one blocker"
	}`)
	require.NoError(t, err)

	assert.False(t, v.Approved)
	assert.Len(t, v.Findings, 1)
}

func TestParseVerdict_LowSeverityFindingsDoNotBlock(t *testing.T) {
	v, err := parseVerdict(`{
		"qualityScore": 7.5,
		"findings": [
			{"severity": "medium", "description": "naming could be clearer"},
			{"severity": "low", "description": "missing doc comment"}
		],
		"summary": "solid"
	}`)
	require.NoError(t, err)

	assert.True(t, v.Approved)
}

func TestParseVerdict_ClampsScore(t *testing.T) {
	v, err := parseVerdict(`{"qualityScore": 14, "findings": [], "summary": ""}`)
	require.NoError(t, err)
	assert.Equal(t, 10.0, v.QualityScore)

	v, err = parseVerdict(`{"qualityScore": -3, "findings": [], "summary": ""}`)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v.QualityScore)
	assert.False(t, v.Approved)
}

func TestParseVerdict_MarkdownFencedResponse(t *testing.T) {
	raw := "Here is my review:\n```json\n{\"qualityScore\": 7, \"findings\": [], \"summary\": \"fine\"}\n```"
	v, err := parseVerdict(raw)
	require.NoError(t, err)

	assert.Equal(t, 7.0, v.QualityScore)
	assert.True(t, v.Approved)
}

func TestParseVerdict_RejectsNonJSON(t *testing.T) {
	_, err := parseVerdict("the code looks great, ship it")
	assert.Error(t, err)
}

func TestHasBlockingFinding(t *testing.T) {
	assert.False(t, hasBlockingFinding(nil))
	assert.False(t, hasBlockingFinding([]map[string]interface{}{{"severity": "low"}}))
	assert.True(t, hasBlockingFinding([]map[string]interface{}{{"severity": "high"}}))
	assert.True(t, hasBlockingFinding([]map[string]interface{}{
		{"severity": "low"}, {"severity": "critical"},
	}))
	// A finding without a severity never blocks.
	assert.False(t, hasBlockingFinding([]map[string]interface{}{{"description": "odd"}}))
}

func TestParseVerdict_KeepsFindingDetail(t *testing.T) {
	v, err := parseVerdict(`{
		"qualityScore": 5,
		"findings": [{"severity": "medium", "category": "robustness", "description": "no retry on 5xx", "suggestion": "wrap the call with backoff"}],
		"summary": "needs work"
	}`)
	require.NoError(t, err)

	require.Len(t, v.Findings, 1)
	assert.Equal(t, "robustness", v.Findings[0]["category"])
	assert.Equal(t, "wrap the call with backoff", v.Findings[0]["suggestion"])
}

func TestReviewPromptRequestsFindingShape(t *testing.T) {
	for _, key := range []string{`"severity"`, `"category"`, `"description"`, `"suggestion"`} {
		assert.Contains(t, reviewSystemPrompt, key)
	}
}

func TestExecuteRefusesWhenPremiumBlocked(t *testing.T) {
	guard := cost.NewGuard(cost.GuardConfig{DailyLimitCents: 10, Enabled: true}, nil)
	guard.RecordUsage(100_000, 0, "claude-opus")
	require.True(t, guard.IsPremiumBlocked())

	r := NewReviewer(nil, nil, nil, nil, guard, "claude-opus")
	_, err := r.Execute(context.Background(), &agentruntime.ExecuteRequest{TaskID: "t1"})

	assert.ErrorIs(t, err, cost.ErrPremiumBlocked)
}

func TestBuildReviewPrompt(t *testing.T) {
	prompt := buildReviewPrompt("Add retry logic", "Wrap the HTTP client with retries.", "--- step 1: bash ---")

	assert.Contains(t, prompt, "Task: Add retry logic")
	assert.Contains(t, prompt, "Wrap the HTTP client with retries.")
	assert.Contains(t, prompt, "Execution transcript:")
	assert.Contains(t, prompt, "--- step 1: bash ---")
}
