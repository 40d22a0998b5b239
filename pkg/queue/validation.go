package queue

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"time"
)

// Validation command bounds. Any violation fails validation.
const (
	validationTimeout   = 15 * time.Second
	validationOutputCap = 64 * 1024
)

// ValidationResult is the outcome of running a task's validation command.
type ValidationResult struct {
	Passed bool
	Output string
	Err    error
}

// boundedBuffer caps captured output; writes past the cap are discarded.
type boundedBuffer struct {
	buf      bytes.Buffer
	limit    int
	overflow bool
}

func (b *boundedBuffer) Write(p []byte) (int, error) {
	remaining := b.limit - b.buf.Len()
	if remaining <= 0 {
		b.overflow = true
		return len(p), nil
	}
	if len(p) > remaining {
		b.overflow = true
		b.buf.Write(p[:remaining])
		return len(p), nil
	}
	return b.buf.Write(p)
}

// RunValidation executes a validation command via the shell. Exit code zero
// within the time and output bounds passes; everything else fails.
func RunValidation(ctx context.Context, command string) ValidationResult {
	ctx, cancel := context.WithTimeout(ctx, validationTimeout)
	defer cancel()

	out := &boundedBuffer{limit: validationOutputCap}
	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	cmd.Stdout = out
	cmd.Stderr = out

	err := cmd.Run()
	switch {
	case ctx.Err() == context.DeadlineExceeded:
		return ValidationResult{
			Passed: false,
			Output: out.buf.String(),
			Err:    fmt.Errorf("validation command timed out after %v", validationTimeout),
		}
	case out.overflow:
		return ValidationResult{
			Passed: false,
			Output: out.buf.String(),
			Err:    fmt.Errorf("validation output exceeded %d bytes", validationOutputCap),
		}
	case err != nil:
		return ValidationResult{
			Passed: false,
			Output: out.buf.String(),
			Err:    fmt.Errorf("validation command failed: %w", err),
		}
	}
	return ValidationResult{Passed: true, Output: out.buf.String()}
}
