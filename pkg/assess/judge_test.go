package assess

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frugalops/foreman/pkg/cost"
)

func TestJudgeScoreRecordsSpend(t *testing.T) {
	guard := cost.NewGuard(cost.GuardConfig{DailyLimitCents: 1000, Enabled: true}, nil)
	j := NewJudge(&fakeLLM{
		content: `{"complexity": 6, "reasoning": "cross-cutting change"}`,
		model:   "claude-haiku",
	}, "claude-haiku", guard, time.Second)

	score, _, err := j.Score(context.Background(), noSignalInput)
	require.NoError(t, err)
	assert.Equal(t, 6.0, score)

	snap := guard.Snapshot()
	assert.Greater(t, snap.DailySpentCents, 0.0)
	assert.Contains(t, snap.PerModelCents, "claude-haiku")
}

func TestJudgeScoreRecordsSpendOnUnparseableVerdict(t *testing.T) {
	// The tokens were spent even though the verdict is garbage.
	guard := cost.NewGuard(cost.GuardConfig{DailyLimitCents: 1000, Enabled: true}, nil)
	j := NewJudge(&fakeLLM{content: "about a five, I'd say", model: "claude-haiku"},
		"claude-haiku", guard, time.Second)

	_, _, err := j.Score(context.Background(), noSignalInput)
	require.Error(t, err)
	assert.Greater(t, guard.Snapshot().DailySpentCents, 0.0)
}

func TestJudgeScoreNilGuard(t *testing.T) {
	j := judgeWith(`{"complexity": 4, "reasoning": "ok"}`, nil)

	score, _, err := j.Score(context.Background(), noSignalInput)
	require.NoError(t, err)
	assert.Equal(t, 4.0, score)
}
