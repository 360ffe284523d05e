package deadlock_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dalzilio/safenet/deadlock"
	"github.com/dalzilio/safenet/net"
	"github.com/dalzilio/safenet/symbolic"
)

func TestS1NoDeadlock(t *testing.T) {
	n, _, err := net.Build().
		Place("p0", 1).
		Place("p1", 0).
		Transition("t0").
		Transition("t1").
		Arc("p0", "t0").
		Arc("t0", "p1").
		Arc("p1", "t1").
		Arc("t1", "p0").
		Done(true)
	require.NoError(t, err)
	res, err := symbolic.Reachable(n)
	require.NoError(t, err)
	require.Nil(t, deadlock.Find(n, res))
}

func TestS2ImmediateDeadlock(t *testing.T) {
	n, _, err := net.Build().
		Place("p0", 0).
		Place("p1", 0).
		Transition("t0").
		Arc("p0", "t0").
		Done(true)
	require.NoError(t, err)
	res, err := symbolic.Reachable(n)
	require.NoError(t, err)
	m := deadlock.Find(n, res)
	require.Equal(t, []int{0, 0}, m)
}

func TestS4NoDeadlock(t *testing.T) {
	n, _, err := net.Build().
		Place("p0", 1).
		Place("p1", 1).
		Transition("t0").
		Transition("t1").
		Arc("p0", "t0").
		Arc("p1", "t0").
		Arc("t1", "p0").
		Arc("t1", "p1").
		Done(true)
	require.NoError(t, err)
	res, err := symbolic.Reachable(n)
	require.NoError(t, err)
	// t1 is always enabled from (0,0), so (0,0) is not a deadlock.
	require.Nil(t, deadlock.Find(n, res))
}
