// Package loop detects pathological tool-use patterns within a single run:
// exact repeats, near-duplicate inputs, per-tool overuse, and runaway call
// counts. A Detector holds per-run state only and is never shared across
// tasks.
package loop

import (
	"fmt"
	"strings"
)

// Verdict classifies a proposed tool action.
type Verdict string

// Verdicts, in escalating order.
const (
	VerdictOK    Verdict = "ok"
	VerdictWarn  Verdict = "warn"  // advisory — action still executes
	VerdictBlock Verdict = "block" // action is refused, agent sees a structured error
	VerdictAbort Verdict = "abort" // fatal — the run terminates
)

// Detection limits.
const (
	historySize         = 20
	exactDuplicateSpan  = 3 // look-back window for exact repeats
	similaritySpan      = 5 // look-back window for near-duplicates
	similarityThreshold = 0.8
	globalCallCap       = 50
)

// toolCaps limits how many times a single tool may run within one run.
var toolCaps = map[string]int{
	"file_write": 3,
	"file_edit":  5,
	"shell_run":  10,
}

// Decision is the detector's answer for one proposed action.
type Decision struct {
	Verdict Verdict
	Reason  string
}

type entry struct {
	tool  string
	input string // normalized
}

// Detector is the per-run action history. Not safe for concurrent use; each
// executor owns exactly one and consults it serially.
type Detector struct {
	history    []entry // bounded to historySize, newest last
	toolCounts map[string]int
	executed   int
}

// NewDetector creates an empty per-run detector.
func NewDetector() *Detector {
	return &Detector{
		toolCounts: make(map[string]int),
	}
}

// Check evaluates a proposed action. Actions that pass (ok or warn) are
// recorded as executed; blocked and aborted actions leave the history
// untouched so the repeat keeps being refused until the agent changes
// strategy.
func (d *Detector) Check(tool, input string) Decision {
	normalized := normalize(input)

	// Fatal global cap first — nothing may run past it.
	if d.executed >= globalCallCap {
		return Decision{
			Verdict: VerdictAbort,
			Reason:  fmt.Sprintf("run exceeded the global cap of %d tool calls", globalCallCap),
		}
	}

	// Exact duplicate: refuse the third occurrence within the recent window.
	if d.countRecentExact(tool, normalized, exactDuplicateSpan) >= 2 {
		return Decision{
			Verdict: VerdictBlock,
			Reason:  fmt.Sprintf("action %q repeated with identical input — change strategy", tool),
		}
	}

	// Per-tool cap.
	if limit, ok := toolCaps[tool]; ok && d.toolCounts[tool] >= limit {
		return Decision{
			Verdict: VerdictBlock,
			Reason:  fmt.Sprintf("tool %q exceeded its per-run limit of %d calls", tool, limit),
		}
	}

	decision := Decision{Verdict: VerdictOK}
	if d.maxRecentSimilarity(normalized, similaritySpan) > similarityThreshold {
		decision = Decision{
			Verdict: VerdictWarn,
			Reason:  "input is nearly identical to a recent action",
		}
	}

	d.record(tool, normalized)
	return decision
}

// Executed returns how many actions have passed the detector this run.
func (d *Detector) Executed() int {
	return d.executed
}

func (d *Detector) record(tool, normalized string) {
	d.history = append(d.history, entry{tool: tool, input: normalized})
	if len(d.history) > historySize {
		d.history = d.history[len(d.history)-historySize:]
	}
	d.toolCounts[tool]++
	d.executed++
}

// countRecentExact counts exact (tool, input) matches within the last span
// history entries.
func (d *Detector) countRecentExact(tool, normalized string, span int) int {
	count := 0
	for _, e := range d.tail(span) {
		if e.tool == tool && e.input == normalized {
			count++
		}
	}
	return count
}

// maxRecentSimilarity returns the highest Jaccard similarity between the
// input and the last span history entries.
func (d *Detector) maxRecentSimilarity(normalized string, span int) float64 {
	best := 0.0
	tokens := tokenSet(normalized)
	for _, e := range d.tail(span) {
		if sim := jaccard(tokens, tokenSet(e.input)); sim > best {
			best = sim
		}
	}
	return best
}

func (d *Detector) tail(span int) []entry {
	if len(d.history) <= span {
		return d.history
	}
	return d.history[len(d.history)-span:]
}

// normalize lowercases and collapses whitespace so cosmetic differences do
// not defeat duplicate detection.
func normalize(input string) string {
	return strings.Join(strings.Fields(strings.ToLower(input)), " ")
}

func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range strings.Fields(s) {
		set[tok] = struct{}{}
	}
	return set
}

// jaccard computes |a∩b| / |a∪b| over token sets. Two empty sets count as
// identical.
func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}
	intersection := 0
	for tok := range a {
		if _, ok := b[tok]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
