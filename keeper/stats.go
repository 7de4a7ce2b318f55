package keeper

import (
	"time"

	"github.com/katalvlaran/heurigo/objective"
	"github.com/katalvlaran/heurigo/stopcond"
)

// EventKind distinguishes the two reasons an Event was recorded.
type EventKind int

const (
	// PrimalUpdate marks an event recorded by AddSolution/AddSolutionFunc.
	PrimalUpdate EventKind = iota
	// DualUpdate marks an event recorded by AddDualBound.
	DualUpdate
)

// Event is one time-and-iteration-stamped entry in a Stats event log. Both
// PrimalBound and DualBound are populated on every event with the running
// envelope value as of that event, regardless of which triggered it.
type Event struct {
	Kind        EventKind
	Time        time.Duration
	Iter        uint64
	PrimalBound objective.Obj
	DualBound   objective.Obj
}

// Stats wraps any Keeper[Sol], appending an Event to an append-only log on
// every reported solution and every reported dual bound, each stamped with
// the running primal minimum and dual maximum. It always forwards every call to the wrapped keeper,
// so the wrapped keeper's own responsibilities (e.g. tracking best-so-far)
// still run; Stats only adds the event-log side effect.
type Stats[Sol any] struct {
	underlying Keeper[Sol]
	timer      stopcond.Timer

	its       uint64
	events    []Event
	ringCap   int // 0 means unbounded
	curPrimal objective.Obj
	curDual   objective.Obj
}

// NewStats wraps underlying with an unbounded event log, timestamped
// against timer.
func NewStats[Sol any](underlying Keeper[Sol], timer stopcond.Timer) *Stats[Sol] {
	return &Stats[Sol]{
		underlying: underlying,
		timer:      timer,
		curPrimal:  objective.Unfeasible,
		curDual:    objective.Unbounded,
	}
}

// NewStatsRingBuffer wraps underlying with an event log bounded to the most
// recent cap events, so long runs don't grow the log without bound.
// cap <= 0 means unbounded, identical to NewStats.
func NewStatsRingBuffer[Sol any](underlying Keeper[Sol], timer stopcond.Timer, cap int) *Stats[Sol] {
	s := NewStats(underlying, timer)
	s.ringCap = cap
	return s
}

func (s *Stats[Sol]) record(kind EventKind) {
	e := Event{
		Kind:        kind,
		Time:        s.timer.Time(),
		Iter:        s.its,
		PrimalBound: s.curPrimal,
		DualBound:   s.curDual,
	}
	s.events = append(s.events, e)
	if s.ringCap > 0 && len(s.events) > s.ringCap {
		s.events = s.events[len(s.events)-s.ringCap:]
	}
}

// AddSolution implements Keeper: updates the running primal envelope (a
// running minimum), appends a PrimalUpdate event, and forwards to the
// wrapped keeper.
func (s *Stats[Sol]) AddSolution(sol Sol, obj objective.Obj) {
	s.curPrimal = objective.Min(s.curPrimal, obj)
	s.record(PrimalUpdate)
	s.underlying.AddSolution(sol, obj)
}

// AddSolutionFunc implements Keeper, with the same laziness contract as the
// wrapped keeper: f is only invoked when obj improves the wrapped keeper's
// best. The event log is still updated with the running envelope either
// way, since the caller is reporting a candidate objective regardless of
// whether the solution itself gets materialised.
func (s *Stats[Sol]) AddSolutionFunc(f func() Sol, obj objective.Obj) {
	s.curPrimal = objective.Min(s.curPrimal, obj)
	s.record(PrimalUpdate)
	s.underlying.AddSolutionFunc(f, obj)
}

// AddDualBound implements Keeper: updates the running dual envelope (a
// running maximum), appends a DualUpdate event, and forwards to the wrapped
// keeper.
func (s *Stats[Sol]) AddDualBound(db objective.Obj) {
	s.curDual = objective.Max(s.curDual, db)
	s.record(DualUpdate)
	s.underlying.AddDualBound(db)
}

// Iter implements Keeper: advances the iteration counter and forwards to
// the wrapped keeper.
func (s *Stats[Sol]) Iter() {
	s.its++
	s.underlying.Iter()
}

// BestSolution implements Keeper by delegating to the wrapped keeper.
func (s *Stats[Sol]) BestSolution() (Sol, objective.Obj, bool) {
	return s.underlying.BestSolution()
}

// BestObj implements Keeper by delegating to the wrapped keeper.
func (s *Stats[Sol]) BestObj() objective.Obj {
	return s.underlying.BestObj()
}

// Events returns the append-only event log recorded so far.
func (s *Stats[Sol]) Events() []Event {
	return s.events
}

// Iters returns the number of iterations recorded so far.
func (s *Stats[Sol]) Iters() uint64 {
	return s.its
}
