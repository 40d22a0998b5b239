package resources

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryAcquireRespectsMaxSlots(t *testing.T) {
	p := NewPool(1, 2)

	assert.True(t, p.TryAcquire(ClassLocal, "task-1"))
	assert.False(t, p.TryAcquire(ClassLocal, "task-2"), "local has a single slot")

	assert.True(t, p.TryAcquire(ClassPremiumCloud, "task-3"))
	assert.True(t, p.TryAcquire(ClassPremiumCloud, "task-4"))
	assert.False(t, p.TryAcquire(ClassPremiumCloud, "task-5"))
}

func TestTryAcquireIdempotentForHolder(t *testing.T) {
	p := NewPool(1, 2)

	require.True(t, p.TryAcquire(ClassLocal, "task-1"))
	assert.True(t, p.TryAcquire(ClassLocal, "task-1"), "re-acquire by the holder succeeds")

	status := p.Status()[ClassLocal]
	assert.Equal(t, 1, status.Active)
}

func TestReleaseThenAcquire(t *testing.T) {
	p := NewPool(1, 2)

	require.True(t, p.TryAcquire(ClassLocal, "task-1"))
	require.False(t, p.TryAcquire(ClassLocal, "task-2"))

	p.Release(ClassLocal, "task-1")
	assert.True(t, p.TryAcquire(ClassLocal, "task-2"))
}

func TestReleaseUnheldIsNoop(t *testing.T) {
	p := NewPool(1, 2)
	p.Release(ClassLocal, "never-held")
	p.Release("unknown-class", "task-1")

	assert.True(t, p.TryAcquire(ClassLocal, "task-1"))
}

func TestUnknownClassRejected(t *testing.T) {
	p := NewPool(1, 2)
	assert.False(t, p.TryAcquire("gpu-cluster", "task-1"))
}

func TestReleaseAll(t *testing.T) {
	p := NewPool(1, 2)
	require.True(t, p.TryAcquire(ClassLocal, "task-1"))
	require.True(t, p.TryAcquire(ClassPremiumCloud, "task-1"))

	p.ReleaseAll("task-1")

	for name, st := range p.Status() {
		assert.Equal(t, 0, st.Active, "class %s should be empty", name)
	}
}

func TestStatusSnapshot(t *testing.T) {
	p := NewPool(1, 2)
	require.True(t, p.TryAcquire(ClassPremiumCloud, "task-b"))
	require.True(t, p.TryAcquire(ClassPremiumCloud, "task-a"))

	st := p.Status()[ClassPremiumCloud]
	assert.Equal(t, 2, st.Max)
	assert.Equal(t, 2, st.Active)
	assert.Equal(t, []string{"task-a", "task-b"}, st.ActiveTaskIDs)
}

func TestClear(t *testing.T) {
	p := NewPool(1, 2)
	require.True(t, p.TryAcquire(ClassLocal, "task-1"))

	p.Clear()
	assert.True(t, p.TryAcquire(ClassLocal, "task-2"))
}

func TestNoOvercommitUnderContention(t *testing.T) {
	p := NewPool(1, 2)

	var wg sync.WaitGroup
	acquired := make(chan string, 100)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := fmt.Sprintf("task-%d", n)
			if p.TryAcquire(ClassPremiumCloud, id) {
				acquired <- id
			}
		}(i)
	}
	wg.Wait()
	close(acquired)

	var winners []string
	for id := range acquired {
		winners = append(winners, id)
	}
	assert.Len(t, winners, 2, "exactly max_slots acquisitions may succeed")
	assert.Equal(t, 2, p.Status()[ClassPremiumCloud].Active)
}
