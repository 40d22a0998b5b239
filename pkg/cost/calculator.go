// Package cost provides model pricing, cost calculation, and the budget
// guard that gates premium-tier usage behind a daily spending limit.
package cost

import "strings"

// Pricing is the USD cost per one million tokens for a model family.
type Pricing struct {
	InputPerMillion  float64
	OutputPerMillion float64
}

// familyPricing maps model families to pricing. Matching is case-insensitive
// and substring-based after stripping provider prefixes, so "anthropic/claude-haiku-4"
// and "claude-3-5-haiku-20241022" both resolve to "haiku". Unknown models and
// the local family cost zero.
var familyPricing = map[string]Pricing{
	"haiku":       {InputPerMillion: 0.80, OutputPerMillion: 4.00},
	"sonnet":      {InputPerMillion: 3.00, OutputPerMillion: 15.00},
	"opus":        {InputPerMillion: 15.00, OutputPerMillion: 75.00},
	"gpt-4o-mini": {InputPerMillion: 0.15, OutputPerMillion: 0.60},
	"gpt-4o":      {InputPerMillion: 2.50, OutputPerMillion: 10.00},
	"deepseek":    {InputPerMillion: 0.27, OutputPerMillion: 1.10},
	"local":       {},
}

// familyOrder controls lookup precedence: more specific families first so
// "gpt-4o-mini" is not shadowed by "gpt-4o".
var familyOrder = []string{"gpt-4o-mini", "gpt-4o", "haiku", "sonnet", "opus", "deepseek", "local"}

// strippedPrefixes are well-known provider prefixes removed before matching.
var strippedPrefixes = []string{"anthropic/", "openai/", "openrouter/", "ollama/", "bedrock/"}

// NormalizeModel lowercases the model name and strips provider prefixes.
func NormalizeModel(model string) string {
	m := strings.ToLower(strings.TrimSpace(model))
	for _, prefix := range strippedPrefixes {
		m = strings.TrimPrefix(m, prefix)
	}
	return m
}

// PricingFor resolves the pricing for a model. The zero Pricing is returned
// for unknown models and the local family.
func PricingFor(model string) Pricing {
	m := NormalizeModel(model)
	for _, family := range familyOrder {
		if strings.Contains(m, family) {
			return familyPricing[family]
		}
	}
	return Pricing{}
}

// Calculate returns the USD cost of a single call. The result is linear in
// both token counts, so costs are additive across calls.
func Calculate(model string, inputTokens, outputTokens int) float64 {
	p := PricingFor(model)
	return float64(inputTokens)*p.InputPerMillion/1_000_000 +
		float64(outputTokens)*p.OutputPerMillion/1_000_000
}

// CalculateCents returns the cost of a single call in cents.
func CalculateCents(model string, inputTokens, outputTokens int) float64 {
	return Calculate(model, inputTokens, outputTokens) * 100
}

// Tier is the cost/quality class of a model backend.
type Tier string

// Tiers, cheapest first.
const (
	TierLocal   Tier = "local" // free
	TierCheap   Tier = "cheap"
	TierMid     Tier = "mid"
	TierPremium Tier = "premium"
)

// TierFor classifies a model into a tier by its pricing.
func TierFor(model string) Tier {
	p := PricingFor(model)
	switch {
	case p.OutputPerMillion == 0:
		return TierLocal
	case p.OutputPerMillion <= 5:
		return TierCheap
	case p.OutputPerMillion <= 20:
		return TierMid
	default:
		return TierPremium
	}
}

// Usage is one model call's token counts, used for tier aggregation.
type Usage struct {
	Model        string
	InputTokens  int
	OutputTokens int
}

// SumByTier aggregates the USD cost of many calls per tier.
func SumByTier(usages []Usage) map[Tier]float64 {
	totals := map[Tier]float64{
		TierLocal:   0,
		TierCheap:   0,
		TierMid:     0,
		TierPremium: 0,
	}
	for _, u := range usages {
		totals[TierFor(u.Model)] += Calculate(u.Model, u.InputTokens, u.OutputTokens)
	}
	return totals
}
