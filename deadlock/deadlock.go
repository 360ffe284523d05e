// Package deadlock searches the reachable set produced by package symbolic
// for a marking that enables no transition.
//
// The reference this system is modelled on formulates enabledness as an
// integer program maximising the count of enabled transitions and checks
// that the optimum is zero. No ILP library appears anywhere in the example
// pack, and the specification itself prefers the simpler form: enabledness
// is a linear test per transition, so this package tests it directly
// instead of wrapping it in a solver.
package deadlock

import (
	"github.com/dalzilio/safenet/net"
	"github.com/dalzilio/safenet/symbolic"
)

// Find returns a reachable marking enabling no transition, or nil if every
// reachable marking enables at least one. It iterates the models of R
// (package symbolic's don't-care expansion already turns each satisfying
// assignment into every concrete completion), testing enabledness directly
// against the Net's I and O matrices rather than through don't-care-by-don't-care
// ILP relaxation.
func Find(n *net.Net, r *symbolic.Result) []int {
	for _, m := range r.Models() {
		if isDeadlock(n, m) {
			return m
		}
	}
	return nil
}

// isDeadlock reports whether no transition is enabled in marking m. A
// transition t is enabled iff every place i with I[i][t]=1 has m[i]=1;
// given 1-safeness the "does firing stay in {0,1}" check reduces to: no
// place i with O[i][t]=1 and I[i][t]=0 already has m[i]=1.
func isDeadlock(n *net.Net, m []int) bool {
	for t := 0; t < n.NumTrans(); t++ {
		if enabled(n, m, t) {
			return false
		}
	}
	return true
}

func enabled(n *net.Net, m []int, t int) bool {
	for i := 0; i < n.NumPlaces(); i++ {
		if n.I[i][t] == 1 && m[i] != 1 {
			return false
		}
		if n.O[i][t] == 1 && n.I[i][t] == 0 && m[i] == 1 {
			return false
		}
	}
	return true
}
