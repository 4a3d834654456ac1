// SPDX-License-Identifier: Unlicense OR MIT

package gltest

import (
	"slices"

	"glutils.org/gl"
)

// SyncState is the simulated state of a fence.
type SyncState struct {
	Condition gl.Enum
	Signaled  bool
	// ServerWaits counts WaitSync calls.
	ServerWaits int
}

func (r *Recorder) SyncState(s gl.Sync) *SyncState {
	return r.syncs[s.V]
}

func (r *Recorder) FenceSync(condition, flags gl.Enum) gl.Sync {
	r.record("FenceSync", condition, flags)
	if condition != gl.SYNC_GPU_COMMANDS_COMPLETE {
		r.fail(gl.INVALID_ENUM)
		return gl.Sync{}
	}
	if flags != 0 {
		r.fail(gl.INVALID_VALUE)
		return gl.Sync{}
	}
	if r.FailCreate {
		return gl.Sync{}
	}
	s := gl.Sync{V: uintptr(r.name())}
	r.syncs[s.V] = &SyncState{Condition: condition}
	return s
}

func (r *Recorder) DeleteSync(s gl.Sync) {
	r.record("DeleteSync", s)
	delete(r.syncs, s.V)
}

func (r *Recorder) IsSync(s gl.Sync) bool {
	r.record("IsSync", s)
	return r.syncs[s.V] != nil
}

// ClientWaitSync returns the next queued result. WAIT_FAILED is reported
// together with INVALID_VALUE, as a driver does for a bad sync.
func (r *Recorder) ClientWaitSync(s gl.Sync, flags gl.Enum, timeout uint64) gl.Enum {
	r.record("ClientWaitSync", s, flags, timeout)
	st := r.syncs[s.V]
	if st == nil {
		r.fail(gl.INVALID_VALUE)
		return gl.WAIT_FAILED
	}
	if st.Signaled {
		return gl.ALREADY_SIGNALED
	}
	res := gl.Enum(gl.ALREADY_SIGNALED)
	if len(r.SyncResults) > 0 {
		res = r.SyncResults[0]
		r.SyncResults = slices.Delete(r.SyncResults, 0, 1)
	}
	switch res {
	case gl.ALREADY_SIGNALED, gl.CONDITION_SATISFIED:
		st.Signaled = true
	case gl.WAIT_FAILED:
		r.fail(gl.INVALID_VALUE)
	}
	return res
}

func (r *Recorder) WaitSync(s gl.Sync, flags gl.Enum, timeout uint64) {
	r.record("WaitSync", s, flags, timeout)
	st := r.syncs[s.V]
	if st == nil {
		r.fail(gl.INVALID_VALUE)
		return
	}
	if flags != 0 || timeout != gl.TIMEOUT_IGNORED {
		r.fail(gl.INVALID_VALUE)
		return
	}
	st.ServerWaits++
}
