package symbolic

import (
	"testing"

	"github.com/dalzilio/safenet/net"
)

// TestS5MaxIterationCap is scenario S5: construct a net and cap so the
// engine exceeds the cap before convergence; expect ErrDiverged and no
// usable Reach. The net itself (S1's producer/consumer) takes more than
// one iteration to reach its fixpoint, so an artificially lowered cap of 1
// trips before convergence.
func TestS5MaxIterationCap(t *testing.T) {
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
	if err != nil {
		t.Fatal(err)
	}

	saved := maxIterations
	maxIterations = 1
	defer func() { maxIterations = saved }()

	_, err = Reachable(n)
	if err != ErrDiverged {
		t.Fatalf("expected ErrDiverged with a starved cap, got %v", err)
	}
}
