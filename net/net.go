package net

import "fmt"

// Net is a 1-safe Place/Transition Petri net: places and transitions are
// identified by their position in PlaceIDs/TransIDs (document order, for a
// loaded net; insertion order, for a built one). I and O are kept in
// canonical P x T orientation: I[p][t] is the number of tokens transition t
// consumes from place p; O[p][t] is the number it produces there. M0 is the
// initial marking.
//
// A Net is immutable once constructed; Load and Builder.Done are the only
// ways to produce one, and both run Validate before returning it.
type Net struct {
	PlaceIDs   []string
	TransIDs   []string
	PlaceNames map[string]string
	TransNames map[string]string

	I  [][]int // P x T
	O  [][]int // P x T
	M0 []int   // length P

	placeIndex map[string]int
	transIndex map[string]int
}

// NumPlaces returns P, the number of places.
func (n *Net) NumPlaces() int { return len(n.PlaceIDs) }

// NumTrans returns T, the number of transitions.
func (n *Net) NumTrans() int { return len(n.TransIDs) }

// PlaceIndex returns the position of a place id, or -1 if unknown.
func (n *Net) PlaceIndex(id string) int {
	if i, ok := n.placeIndex[id]; ok {
		return i
	}
	return -1
}

// TransIndex returns the position of a transition id, or -1 if unknown.
func (n *Net) TransIndex(id string) int {
	if i, ok := n.transIndex[id]; ok {
		return i
	}
	return -1
}

// Validate checks the structural invariants of the §3 data model: agreeing
// shapes, no duplicate ids, a non-negative initial marking, and that arc
// weights and M0 entries lie in {0,1}, per the Open Question
// resolution to reject non-safe nets at load time rather than leaving their
// handling to the symbolic encoding. Isolated places or transitions (no
// incident arcs) never fail validation; the caller is expected to log the
// returned warnings.
//
// In lenient mode, conditions that would otherwise be fatal are instead
// appended to the returned warning slice and Validate returns a nil error
// as long as the shapes themselves are consistent (a shape mismatch is
// always fatal, since no downstream computation can proceed without it).
func (n *Net) Validate(strict bool) (warnings []string, err error) {
	p, t := n.NumPlaces(), n.NumTrans()

	if len(n.I) != p || len(n.O) != p {
		return nil, fmt.Errorf("%w: I/O have %d/%d rows, want %d places", ErrOrientation, len(n.I), len(n.O), p)
	}
	for i := range n.I {
		if len(n.I[i]) != t || len(n.O[i]) != t {
			return nil, fmt.Errorf("%w: row %d has %d/%d columns, want %d transitions", ErrOrientation, i, len(n.I[i]), len(n.O[i]), t)
		}
	}
	if len(n.M0) != p {
		return nil, fmt.Errorf("%w: M0 has length %d, want %d", ErrOrientation, len(n.M0), p)
	}

	report := func(msg string) error {
		if strict {
			return fmt.Errorf("%w: %s", ErrValidation, msg)
		}
		warnings = append(warnings, msg)
		return nil
	}

	if p == 0 {
		if e := report("net has no places"); e != nil {
			return warnings, e
		}
	}
	if t == 0 {
		if e := report("net has no transitions"); e != nil {
			return warnings, e
		}
	}
	if dup := firstDuplicate(n.PlaceIDs); dup != "" {
		if e := report(fmt.Sprintf("duplicate place id %q", dup)); e != nil {
			return warnings, e
		}
	}
	if dup := firstDuplicate(n.TransIDs); dup != "" {
		if e := report(fmt.Sprintf("duplicate transition id %q", dup)); e != nil {
			return warnings, e
		}
	}
	for i, m := range n.M0 {
		if m < 0 {
			if e := report(fmt.Sprintf("negative initial marking at place %q", n.PlaceIDs[i])); e != nil {
				return warnings, e
			}
		}
		if m > 1 {
			if e := report(fmt.Sprintf("initial marking at place %q exceeds 1 (non-safe net)", n.PlaceIDs[i])); e != nil {
				return warnings, e
			}
		}
	}
	for i := 0; i < p; i++ {
		for j := 0; j < t; j++ {
			if n.I[i][j] > 1 || n.O[i][j] > 1 {
				if e := report(fmt.Sprintf("arc weight between place %q and transition %q exceeds 1 (non-safe net)", n.PlaceIDs[i], n.TransIDs[j])); e != nil {
					return warnings, e
				}
			}
		}
	}

	// Isolated-node warnings are always non-fatal, per §7.
	for i := 0; i < p; i++ {
		touched := false
		for j := 0; j < t; j++ {
			if n.I[i][j] != 0 || n.O[i][j] != 0 {
				touched = true
				break
			}
		}
		if !touched {
			warnings = append(warnings, fmt.Sprintf("isolated place %q (no incident arcs)", n.PlaceIDs[i]))
		}
	}
	for j := 0; j < t; j++ {
		touched := false
		for i := 0; i < p; i++ {
			if n.I[i][j] != 0 || n.O[i][j] != 0 {
				touched = true
				break
			}
		}
		if !touched {
			warnings = append(warnings, fmt.Sprintf("isolated transition %q (no incident arcs)", n.TransIDs[j]))
		}
	}

	return warnings, nil
}

func firstDuplicate(ids []string) string {
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			return id
		}
		seen[id] = true
	}
	return ""
}

func indexOf(ids []string) map[string]int {
	m := make(map[string]int, len(ids))
	for i, id := range ids {
		m[id] = i
	}
	return m
}
