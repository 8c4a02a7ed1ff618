package timer

import "time"

// CancelFunc stops a scheduled call. It reports whether the call was still
// pending; false means the function already ran or was cancelled earlier.
type CancelFunc func() bool

// Scheduler defers a single function call. The journey controller uses it for
// its cancel-and-reschedule save debounce; tests substitute a manual
// implementation to fire or drop pending calls deterministically.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) CancelFunc
}

// AfterFuncScheduler schedules through the runtime timer. The deferred fn
// runs on its own goroutine, so callers guard shared state themselves.
type AfterFuncScheduler struct{}

func (AfterFuncScheduler) Schedule(d time.Duration, fn func()) CancelFunc {
	t := time.AfterFunc(d, fn)
	return t.Stop
}
