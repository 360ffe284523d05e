// Package symbolic implements the symbolic reachability engine: it builds
// a transition relation per transition and computes the set of reachable
// markings as a BDD over the current-state place variables, via a
// breadth-first fixpoint with existential abstraction.
package symbolic

import "errors"

// ErrDiverged is returned when the fixpoint loop reaches maxIterations
// without converging. The caller must not use any partial Reach.
var ErrDiverged = errors.New("symbolic: fixpoint did not converge within the iteration cap")
