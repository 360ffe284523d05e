// Package explicit computes the set of reachable markings of a Net by
// direct graph search. It exists purely as a cross-checking oracle for the
// symbolic engine (package symbolic): its reachable-set size and membership
// must agree with the BDD-based computation for every net under test.
package explicit

import (
	"github.com/dalzilio/safenet/net"
)

// Marking is a length-P bit vector, one entry per place, indexed the same
// way as the originating Net's PlaceIDs.
type Marking []int

// key turns a marking into a comparable map key.
func (m Marking) key() string {
	b := make([]byte, len(m))
	for i, v := range m {
		if v != 0 {
			b[i] = 1
		}
	}
	return string(b)
}

// Reachable performs a closed graph search from M0, returning the set of
// reachable markings keyed by their string encoding for membership tests,
// and the ordered list of distinct markings found. A transition t is
// enabled in M iff M >= I[:,t] componentwise; firing produces
// M' = M - I[:,t] + O[:,t]. Successors with a component outside {0,1} are
// discarded, enforcing the 1-safeness invariant. Search order (DFS here) is
// irrelevant to the result; termination is guaranteed since the state space
// is bounded by 2^P.
func Reachable(n *net.Net) *Set {
	s := &Set{byKey: make(map[string]Marking)}
	m0 := Marking(append([]int(nil), n.M0...))
	s.add(m0)

	stack := []Marking{m0}
	for len(stack) > 0 {
		m := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for t := 0; t < n.NumTrans(); t++ {
			succ, ok := fire(n, m, t)
			if !ok {
				continue
			}
			if s.add(succ) {
				stack = append(stack, succ)
			}
		}
	}
	return s
}

// Enabled reports whether transition t is enabled in marking m: every place
// i with I[i][t]=1 must have m[i]=1.
func Enabled(n *net.Net, m Marking, t int) bool {
	for i := 0; i < n.NumPlaces(); i++ {
		if n.I[i][t] != 0 && m[i] == 0 {
			return false
		}
	}
	return true
}

// fire computes the successor of firing transition t in marking m, if t is
// enabled and the result stays within {0,1} per place; otherwise ok is
// false.
func fire(n *net.Net, m Marking, t int) (succ Marking, ok bool) {
	if !Enabled(n, m, t) {
		return nil, false
	}
	next := make(Marking, len(m))
	copy(next, m)
	for i := 0; i < n.NumPlaces(); i++ {
		next[i] += n.O[i][t] - n.I[i][t]
		if next[i] < 0 || next[i] > 1 {
			return nil, false
		}
	}
	return next, true
}

// Set is the result of Reachable: a deduplicated collection of markings
// supporting membership and iteration.
type Set struct {
	byKey map[string]Marking
	order []Marking
}

func (s *Set) add(m Marking) bool {
	k := m.key()
	if _, ok := s.byKey[k]; ok {
		return false
	}
	cp := append(Marking(nil), m...)
	s.byKey[k] = cp
	s.order = append(s.order, cp)
	return true
}

// Len returns the number of distinct reachable markings.
func (s *Set) Len() int { return len(s.order) }

// Contains reports whether m is a member of the set.
func (s *Set) Contains(m Marking) bool {
	_, ok := s.byKey[m.key()]
	return ok
}

// Markings returns the distinct reachable markings, in discovery order.
func (s *Set) Markings() []Marking { return s.order }
