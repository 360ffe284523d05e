// Package maximize maximises a linear objective c·M over the reachable set
// produced by package symbolic.
package maximize

import (
	"errors"
	"fmt"

	"github.com/dalzilio/safenet/symbolic"
)

// ErrDimensionMismatch is returned when the objective vector's length does
// not match the net's place count.
var ErrDimensionMismatch = errors.New("maximize: objective length does not match place count")

// Result is a maximising reachable marking and its score.
type Result struct {
	Marking []int
	Value   int
}

// Maximise returns a reachable marking M maximising c·M, and the maximal
// value. It returns (nil, false, nil) if R has no models. len(c) must equal
// the place count; otherwise ErrDimensionMismatch.
//
// Don't-care place variables in a given model of R are completed greedily:
// M_i = 1 if c_i > 0 else 0. This is optimal because a model of R (before
// completion) represents every concrete marking agreeing on the fixed
// variables regardless of the free ones, so the best completion is the one
// that pushes each free coordinate toward its own best contribution to the
// score. Ties are broken by first-encountered marking.
func Maximise(placeIDs []string, r *symbolic.Result, c []int) (*Result, bool, error) {
	if len(c) != len(placeIDs) {
		return nil, false, fmt.Errorf("%w: got %d, want %d", ErrDimensionMismatch, len(c), len(placeIDs))
	}

	var best *Result
	_ = r.Assignments(func(profile []int) error {
		m := complete(profile, c)
		v := score(m, c)
		if best == nil || v > best.Value {
			best = &Result{Marking: m, Value: v}
		}
		return nil
	})
	if best == nil {
		return nil, false, nil
	}
	return best, true, nil
}

// complete turns an Allsat profile (entries -1 for don't cares) into a
// concrete marking, greedily setting each free place to 1 when its
// objective coefficient is positive, 0 otherwise.
func complete(profile, c []int) []int {
	m := make([]int, len(profile))
	for i, v := range profile {
		switch {
		case v != -1:
			m[i] = v
		case c[i] > 0:
			m[i] = 1
		default:
			m[i] = 0
		}
	}
	return m
}

func score(m, c []int) int {
	total := 0
	for i, v := range m {
		total += v * c[i]
	}
	return total
}
