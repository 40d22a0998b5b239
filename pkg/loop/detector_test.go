package loop

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExactDuplicateBlocksAtThirdOccurrence(t *testing.T) {
	d := NewDetector()

	first := d.Check("file_write", `{"path":"main.go","content":"x"}`)
	assert.Equal(t, VerdictOK, first.Verdict)

	// Second identical call is only similarity-flagged, not blocked.
	second := d.Check("file_write", `{"path":"main.go","content":"x"}`)
	assert.Equal(t, VerdictWarn, second.Verdict)

	third := d.Check("file_write", `{"path":"main.go","content":"x"}`)
	assert.Equal(t, VerdictBlock, third.Verdict)

	// Still blocked until the agent does something else.
	fourth := d.Check("file_write", `{"path":"main.go","content":"x"}`)
	assert.Equal(t, VerdictBlock, fourth.Verdict)
}

func TestExactDuplicateNormalizesWhitespaceAndCase(t *testing.T) {
	d := NewDetector()
	d.Check("shell_run", "go   test ./...")
	d.Check("shell_run", "GO TEST ./...")

	got := d.Check("shell_run", "go test   ./...")
	assert.Equal(t, VerdictBlock, got.Verdict)
}

func TestSimilarInputWarns(t *testing.T) {
	d := NewDetector()
	d.Check("file_edit", "replace foo with bar in server.go request handler setup code")

	got := d.Check("file_edit", "replace foo with bar in server.go request handler setup logic")
	assert.Equal(t, VerdictWarn, got.Verdict)
}

func TestDissimilarInputsPass(t *testing.T) {
	d := NewDetector()
	d.Check("shell_run", "go build ./...")
	got := d.Check("shell_run", "ls -la /tmp/workspace")
	assert.Equal(t, VerdictOK, got.Verdict)
}

func TestPerToolCaps(t *testing.T) {
	tests := []struct {
		tool string
		cap  int
	}{
		{"file_write", 3},
		{"file_edit", 5},
		{"shell_run", 10},
	}
	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			d := NewDetector()
			for i := 0; i < tt.cap; i++ {
				got := d.Check(tt.tool, fmt.Sprintf("distinct unrelated input number%d alpha%d", i, i*7))
				assert.NotEqual(t, VerdictBlock, got.Verdict, "call %d should execute", i+1)
			}
			over := d.Check(tt.tool, "yet another completely different request entirely")
			assert.Equal(t, VerdictBlock, over.Verdict)
		})
	}
}

func TestUncappedToolHasNoPerToolLimit(t *testing.T) {
	d := NewDetector()
	for i := 0; i < 20; i++ {
		got := d.Check("file_read", fmt.Sprintf("unique file path number %d variant %d", i, i*13))
		assert.NotEqual(t, VerdictBlock, got.Verdict)
	}
}

func TestGlobalCapAborts(t *testing.T) {
	d := NewDetector()
	for i := 0; i < 50; i++ {
		got := d.Check("file_read", fmt.Sprintf("totally distinct input %d marker %d", i, i*31))
		assert.NotEqual(t, VerdictAbort, got.Verdict, "call %d should not abort", i+1)
	}
	assert.Equal(t, 50, d.Executed())

	over := d.Check("file_read", "the fifty first call")
	assert.Equal(t, VerdictAbort, over.Verdict)
}

func TestBlockedActionsDoNotCountAsExecuted(t *testing.T) {
	d := NewDetector()
	d.Check("file_write", "same input every time")
	d.Check("file_write", "same input every time")
	d.Check("file_write", "same input every time") // blocked
	d.Check("file_write", "same input every time") // blocked

	assert.Equal(t, 2, d.Executed())
}

func TestJaccard(t *testing.T) {
	a := tokenSet("alpha beta gamma delta")
	b := tokenSet("alpha beta gamma epsilon")
	assert.InDelta(t, 3.0/5.0, jaccard(a, b), 1e-9)

	assert.InDelta(t, 1.0, jaccard(tokenSet(""), tokenSet("")), 1e-9)
	assert.InDelta(t, 0.0, jaccard(tokenSet("x"), tokenSet("y")), 1e-9)
}
