// SPDX-License-Identifier: Unlicense OR MIT

package gl_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glutils.org/gl"
	"glutils.org/gl/gltest"
)

func TestFenceClientWait(t *testing.T) {
	f := gltest.New()
	s, err := gl.FenceSync(f)
	require.NoError(t, err)
	require.True(t, s.Is(f))

	f.SyncResults = []gl.Enum{gl.TIMEOUT_EXPIRED, gl.CONDITION_SATISFIED}
	assert.Equal(t, gl.TimeoutExpired, s.ClientWait(f, true, time.Millisecond))
	call, ok := f.Last("ClientWaitSync")
	require.True(t, ok)
	assert.Equal(t, []any{s, gl.Enum(gl.SYNC_FLUSH_COMMANDS_BIT), uint64(time.Millisecond)}, call.Args)

	st := s.ClientWait(f, false, -time.Second)
	assert.Equal(t, gl.ConditionSatisfied, st)
	assert.True(t, st.Signaled())
	call, _ = f.Last("ClientWaitSync")
	assert.Equal(t, []any{s, gl.Enum(0), uint64(0)}, call.Args)
	assert.Equal(t, gl.AlreadySignaled, s.ClientWait(f, false, 0))

	s.Delete(f)
	assert.False(t, s.Is(f))
}

func TestSyncServerWait(t *testing.T) {
	f := gltest.New()
	s, err := gl.FenceSync(f)
	require.NoError(t, err)
	s.Wait(f)
	require.NoError(t, gl.CheckError(f, "wait"))
	assert.Equal(t, 1, f.SyncState(s).ServerWaits)
}

func TestSyncAwait(t *testing.T) {
	f := gltest.New()
	s, err := gl.FenceSync(f)
	require.NoError(t, err)
	f.SyncResults = []gl.Enum{gl.TIMEOUT_EXPIRED, gl.TIMEOUT_EXPIRED, gl.CONDITION_SATISFIED}
	require.NoError(t, s.Await(context.Background(), f, time.Microsecond))

	calls := f.Called("ClientWaitSync")
	require.Len(t, calls, 3)
	assert.Equal(t, gl.Enum(gl.SYNC_FLUSH_COMMANDS_BIT), calls[0].Args[1], "first poll flushes")
	assert.Equal(t, gl.Enum(0), calls[1].Args[1])
}

func TestSyncAwaitFailed(t *testing.T) {
	f := gltest.New()
	s, err := gl.FenceSync(f)
	require.NoError(t, err)
	f.SyncResults = []gl.Enum{gl.WAIT_FAILED}
	err = s.Await(context.Background(), f, time.Microsecond)
	assert.ErrorIs(t, err, gl.ErrWaitFailed)
	var glErr *gl.Error
	require.ErrorAs(t, err, &glErr)
	assert.Equal(t, gl.Enum(gl.INVALID_VALUE), glErr.Code)
}

func TestSyncAwaitCanceled(t *testing.T) {
	f := gltest.New()
	s, err := gl.FenceSync(f)
	require.NoError(t, err)
	f.SyncResults = []gl.Enum{gl.TIMEOUT_EXPIRED}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = s.Await(ctx, f, time.Hour)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSyncStatusString(t *testing.T) {
	assert.Equal(t, "already signaled", gl.AlreadySignaled.String())
	assert.Equal(t, "timeout expired", gl.TimeoutExpired.String())
	assert.Equal(t, "condition satisfied", gl.ConditionSatisfied.String())
	assert.Equal(t, "wait failed", gl.WaitFailed.String())
	assert.False(t, gl.WaitFailed.Signaled())
}
