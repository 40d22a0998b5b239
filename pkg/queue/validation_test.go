package queue

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunValidation_Success(t *testing.T) {
	result := RunValidation(context.Background(), "echo ok")

	assert.True(t, result.Passed)
	assert.NoError(t, result.Err)
	assert.Contains(t, result.Output, "ok")
}

func TestRunValidation_NonZeroExit(t *testing.T) {
	result := RunValidation(context.Background(), "exit 3")

	assert.False(t, result.Passed)
	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "validation command failed")
}

func TestRunValidation_CapturesStderr(t *testing.T) {
	result := RunValidation(context.Background(), "echo broken >&2; exit 1")

	assert.False(t, result.Passed)
	assert.Contains(t, result.Output, "broken")
}

func TestRunValidation_OutputOverflow(t *testing.T) {
	// Emit well past the cap; the command itself succeeds but the bounded
	// output makes validation fail.
	result := RunValidation(context.Background(), "head -c 100000 /dev/zero | tr '\\0' 'x'")

	assert.False(t, result.Passed)
	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "output exceeded")
	assert.Len(t, result.Output, validationOutputCap)
}

func TestBoundedBuffer_StopsAtLimit(t *testing.T) {
	b := &boundedBuffer{limit: 10}

	n, err := b.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.False(t, b.overflow)

	// This write crosses the limit: reported as fully written, truncated in
	// the buffer.
	n, err = b.Write([]byte("worldworld"))
	require.NoError(t, err)
	assert.Equal(t, 10, n)
	assert.True(t, b.overflow)
	assert.Equal(t, "helloworld", b.buf.String())

	n, err = b.Write([]byte("more"))
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, 10, b.buf.Len())
}

func TestRunValidation_EmptyOutputCommand(t *testing.T) {
	result := RunValidation(context.Background(), "true")

	assert.True(t, result.Passed)
	assert.Empty(t, strings.TrimSpace(result.Output))
}
