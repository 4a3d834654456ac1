// SPDX-License-Identifier: Unlicense OR MIT

package gl

import (
	"context"
	"fmt"
	"time"
)

// Sync is a fence created by FenceSync. The driver names syncs with
// opaque pointers rather than integers.
type Sync struct{ V uintptr }

func (s Sync) IsZero() bool { return s.V == 0 }

func (s Sync) Is(f Functions) bool {
	return f.IsSync(s)
}

func (s Sync) Delete(f Functions) {
	f.DeleteSync(s)
}

// FenceSync inserts a fence that is signaled when all previously issued
// commands have completed.
func FenceSync(f Functions) (Sync, error) {
	s := f.FenceSync(SYNC_GPU_COMMANDS_COMPLETE, 0)
	if s.IsZero() {
		return Sync{}, failure(f, "FenceSync")
	}
	return s, nil
}

// SyncStatus is the result of ClientWait.
type SyncStatus Enum

const (
	AlreadySignaled    SyncStatus = ALREADY_SIGNALED
	TimeoutExpired     SyncStatus = TIMEOUT_EXPIRED
	ConditionSatisfied SyncStatus = CONDITION_SATISFIED
	WaitFailed         SyncStatus = WAIT_FAILED
)

func (s SyncStatus) String() string {
	switch s {
	case AlreadySignaled:
		return "already signaled"
	case TimeoutExpired:
		return "timeout expired"
	case ConditionSatisfied:
		return "condition satisfied"
	case WaitFailed:
		return "wait failed"
	default:
		return fmt.Sprintf("SyncStatus(0x%x)", uint(s))
	}
}

// Signaled reports whether the fence was signaled.
func (s SyncStatus) Signaled() bool {
	return s == AlreadySignaled || s == ConditionSatisfied
}

// ClientWait blocks the calling thread until s is signaled or timeout
// elapses. With flush set, pending commands are flushed first so the wait
// can complete.
func (s Sync) ClientWait(f Functions, flush bool, timeout time.Duration) SyncStatus {
	var flags Enum
	if flush {
		flags = SYNC_FLUSH_COMMANDS_BIT
	}
	if timeout < 0 {
		timeout = 0
	}
	return SyncStatus(f.ClientWaitSync(s, flags, uint64(timeout.Nanoseconds())))
}

// Wait makes the server wait for s before executing further commands. It
// returns immediately.
func (s Sync) Wait(f Functions) {
	f.WaitSync(s, 0, TIMEOUT_IGNORED)
}

// Await polls s until it is signaled or ctx is done. The first poll
// flushes pending commands.
func (s Sync) Await(ctx context.Context, f Functions, poll time.Duration) error {
	flush := true
	for {
		switch st := s.ClientWait(f, flush, 0); {
		case st.Signaled():
			return nil
		case st == WaitFailed:
			if err := CheckError(f, "ClientWaitSync"); err != nil {
				return fmt.Errorf("%w: %w", ErrWaitFailed, err)
			}
			return ErrWaitFailed
		}
		flush = false
		t := time.NewTimer(poll)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
	}
}
