// Package stopcond provides the monotonic timer and stopping-condition
// predicate every search engine polls at least once per iteration.
package stopcond

import (
	"time"

	"github.com/katalvlaran/heurigo/objective"
)

// Timer reads a monotonic clock. The zero value of the duration returned is
// implementor-defined; only differences between successive readings are
// meaningful.
type Timer interface {
	// Time returns the duration elapsed since the timer's epoch.
	Time() time.Duration
}

// WallTimer is a Timer backed by the wall clock, started at construction.
type WallTimer struct {
	start time.Time
}

// NewWallTimer starts a new wall-clock timer whose epoch is now.
func NewWallTimer() *WallTimer {
	return &WallTimer{start: time.Now()}
}

// Time implements Timer.
func (w *WallTimer) Time() time.Duration {
	return time.Since(w.start)
}

// StopCondition decides, given the current primal and dual bounds, whether
// an engine should halt. It may be called many times per second, so
// implementations must stay cheap.
type StopCondition interface {
	// Stop reports whether the engine should terminate now.
	Stop(primal, dual objective.Obj) bool
	// Clone returns an independent copy. For time-based conditions this
	// resets the clock's reference point to now, so that running the same
	// budget twice is as simple as cloning and re-invoking Solve.
	Clone() StopCondition
}

// TimeStop halts once duration has elapsed since the condition was
// constructed or last cloned. It ignores the primal/dual bounds entirely.
type TimeStop struct {
	timer    Timer
	start    time.Duration
	duration time.Duration
}

// NewTimeStop builds a TimeStop that fires once timer.Time() reaches
// timer.Time()-at-construction plus duration.
func NewTimeStop(timer Timer, duration time.Duration) *TimeStop {
	return &TimeStop{timer: timer, start: timer.Time(), duration: duration}
}

// Stop implements StopCondition.
func (t *TimeStop) Stop(_, _ objective.Obj) bool {
	return t.timer.Time() >= t.start+t.duration
}

// Clone implements StopCondition, resetting start to the current time so a
// cloned TimeStop gets a fresh budget of the same duration.
func (t *TimeStop) Clone() StopCondition {
	return &TimeStop{timer: t.timer, start: t.timer.Time(), duration: t.duration}
}

// Never never fires; useful for tests that want an engine to run to
// exhaustion (e.g. a finite beam) rather than on a budget.
type Never struct{}

// Stop implements StopCondition and always returns false.
func (Never) Stop(_, _ objective.Obj) bool { return false }

// Clone implements StopCondition; Never is stateless so Clone returns an
// equivalent value.
func (n Never) Clone() StopCondition { return n }
