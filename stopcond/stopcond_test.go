package stopcond

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heurigo/objective"
)

// fakeTimer advances only when told to, for deterministic tests.
type fakeTimer struct{ d time.Duration }

func (f *fakeTimer) Time() time.Duration { return f.d }

func TestTimeStop_FiresAfterDuration(t *testing.T) {
	ft := &fakeTimer{}
	ts := NewTimeStop(ft, 10*time.Millisecond)

	require.False(t, ts.Stop(objective.Unfeasible, objective.Unbounded), "stop fired immediately")
	ft.d = 5 * time.Millisecond
	require.False(t, ts.Stop(objective.Unfeasible, objective.Unbounded), "stop fired before budget elapsed")
	ft.d = 10 * time.Millisecond
	require.True(t, ts.Stop(objective.Unfeasible, objective.Unbounded), "stop did not fire once budget elapsed")
}

func TestTimeStop_CloneResetsStart(t *testing.T) {
	ft := &fakeTimer{}
	ts := NewTimeStop(ft, 10*time.Millisecond)
	ft.d = 100 * time.Millisecond
	require.True(t, ts.Stop(objective.Unfeasible, objective.Unbounded), "expected original to have expired")

	cloned := ts.Clone()
	require.False(t, cloned.Stop(objective.Unfeasible, objective.Unbounded), "clone should restart the budget from the current time")
	ft.d += 10 * time.Millisecond
	require.True(t, cloned.Stop(objective.Unfeasible, objective.Unbounded), "clone should still expire after its own budget")
}

func TestNever_NeverFires(t *testing.T) {
	var n Never
	require.False(t, n.Stop(objective.Unfeasible, objective.Unbounded), "Never fired")
}
