package cost

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateKnownFamilies(t *testing.T) {
	tests := []struct {
		name         string
		model        string
		inputTokens  int
		outputTokens int
		want         float64
	}{
		{"haiku", "claude-3-5-haiku-20241022", 1_000_000, 1_000_000, 4.80},
		{"sonnet with provider prefix", "anthropic/claude-sonnet-4", 1_000_000, 0, 3.00},
		{"opus output heavy", "claude-opus-4", 0, 100_000, 7.50},
		{"gpt-4o-mini not shadowed by gpt-4o", "openai/gpt-4o-mini", 1_000_000, 0, 0.15},
		{"gpt-4o", "gpt-4o-2024-08-06", 1_000_000, 0, 2.50},
		{"local is free", "ollama/local-qwen", 5_000_000, 5_000_000, 0},
		{"unknown is free", "some-mystery-model", 1_000_000, 1_000_000, 0},
		{"case insensitive", "CLAUDE-HAIKU", 1_000_000, 1_000_000, 4.80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(tt.model, tt.inputTokens, tt.outputTokens)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestCalculatePrecision(t *testing.T) {
	// Single-token costs must survive with at least 6 decimals.
	got := Calculate("claude-haiku", 1, 0)
	assert.InDelta(t, 0.0000008, got, 1e-12)
}

func TestCalculateAdditive(t *testing.T) {
	models := []string{"claude-haiku", "claude-sonnet-4", "gpt-4o", "local"}
	for _, model := range models {
		split := Calculate(model, 1234, 567) + Calculate(model, 89, 4321)
		joint := Calculate(model, 1234+89, 567+4321)
		assert.InDelta(t, joint, split, 1e-9, "cost must be additive for %s", model)
	}
}

func TestTierFor(t *testing.T) {
	assert.Equal(t, TierLocal, TierFor("local"))
	assert.Equal(t, TierLocal, TierFor("unknown-model"))
	assert.Equal(t, TierCheap, TierFor("claude-haiku"))
	assert.Equal(t, TierCheap, TierFor("gpt-4o-mini"))
	assert.Equal(t, TierMid, TierFor("claude-sonnet-4"))
	assert.Equal(t, TierMid, TierFor("gpt-4o"))
	assert.Equal(t, TierPremium, TierFor("claude-opus-4"))
}

func TestSumByTier(t *testing.T) {
	totals := SumByTier([]Usage{
		{Model: "claude-haiku", InputTokens: 1_000_000, OutputTokens: 0},
		{Model: "claude-haiku", InputTokens: 1_000_000, OutputTokens: 0},
		{Model: "claude-opus-4", InputTokens: 1_000_000, OutputTokens: 0},
		{Model: "local", InputTokens: 9_000_000, OutputTokens: 9_000_000},
	})

	assert.InDelta(t, 1.60, totals[TierCheap], 1e-9)
	assert.InDelta(t, 15.00, totals[TierPremium], 1e-9)
	assert.InDelta(t, 0, totals[TierLocal], 1e-9)
	assert.InDelta(t, 0, totals[TierMid], 1e-9)
}
