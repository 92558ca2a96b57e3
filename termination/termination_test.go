package termination_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphalgo/termination"
)

func TestCheck(t *testing.T) {
	require.NoError(t, termination.Check(nil))
	require.NoError(t, termination.Check(termination.RunningTrue))
	require.ErrorIs(t, termination.Check(termination.FlagFunc(func() bool { return false })), termination.ErrCancelled)
}

func TestAtomic(t *testing.T) {
	var zero termination.Atomic
	assert.True(t, zero.Running(), "zero value is running")

	f := termination.NewAtomic()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f.Stop()
			_ = f.Running()
		}()
	}
	wg.Wait()
	assert.False(t, f.Running())
	f.Stop()
	assert.False(t, f.Running(), "Stop is idempotent")
}

func TestFromContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	f := termination.FromContext(ctx)
	assert.True(t, f.Running())
	cancel()
	assert.False(t, f.Running())

	assert.True(t, termination.FromContext(nil).Running(), "nil context never stops") //nolint:staticcheck
}

func TestAny(t *testing.T) {
	assert.True(t, termination.Any().Running())
	assert.True(t, termination.Any(nil, nil).Running())

	a, b := termination.NewAtomic(), termination.NewAtomic()
	single := termination.Any(nil, a)
	assert.Same(t, a, single)

	both := termination.Any(a, b)
	assert.True(t, both.Running())
	b.Stop()
	assert.False(t, both.Running())
	assert.True(t, a.Running())
}
