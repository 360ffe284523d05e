package net

import "fmt"

// Builder provides a fluent API for constructing a Net programmatically,
// without going through PNML — useful for tests and for callers that
// already hold a net description in memory.
//
// Example:
//
//	n, warnings, err := net.Build().
//	    Place("p0", 1).
//	    Place("p1", 0).
//	    Transition("t0").
//	    Arc("p0", "t0").
//	    Arc("t0", "p1").
//	    Done(false)
type Builder struct {
	placeIDs   []string
	transIDs   []string
	placeNames map[string]string
	transNames map[string]string
	m0         map[string]int
	arcs       []arc
	err        error
}

type arc struct {
	source, target string
}

// Build returns an empty Builder.
func Build() *Builder {
	return &Builder{
		placeNames: make(map[string]string),
		transNames: make(map[string]string),
		m0:         make(map[string]int),
	}
}

// Place adds a place with the given id and initial marking.
func (b *Builder) Place(id string, initial int) *Builder {
	return b.PlaceNamed(id, "", initial)
}

// PlaceNamed adds a place with an id, a human-readable name, and an initial
// marking.
func (b *Builder) PlaceNamed(id, name string, initial int) *Builder {
	if b.err != nil {
		return b
	}
	for _, p := range b.placeIDs {
		if p == id {
			b.err = fmt.Errorf("%w: duplicate place id %q", ErrValidation, id)
			return b
		}
	}
	b.placeIDs = append(b.placeIDs, id)
	if name != "" {
		b.placeNames[id] = name
	}
	b.m0[id] = initial
	return b
}

// Transition adds a transition with the given id.
func (b *Builder) Transition(id string) *Builder {
	return b.TransitionNamed(id, "")
}

// TransitionNamed adds a transition with an id and a human-readable name.
func (b *Builder) TransitionNamed(id, name string) *Builder {
	if b.err != nil {
		return b
	}
	for _, t := range b.transIDs {
		if t == id {
			b.err = fmt.Errorf("%w: duplicate transition id %q", ErrValidation, id)
			return b
		}
	}
	b.transIDs = append(b.transIDs, id)
	if name != "" {
		b.transNames[id] = name
	}
	return b
}

// Arc records an arc between a place and a transition (in either
// direction); direction is resolved against the declared ids in Done.
// Repeated arcs accumulate, matching the PNML loader's multiplicity rule.
func (b *Builder) Arc(source, target string) *Builder {
	if b.err != nil {
		return b
	}
	b.arcs = append(b.arcs, arc{source, target})
	return b
}

// Done assembles and validates the Net, per §4.1's arc-direction rule: an
// arc whose source is a place and target is a transition increments I;
// an arc whose source is a transition and target is a place increments O.
func (b *Builder) Done(strict bool) (*Net, []string, error) {
	if b.err != nil {
		return nil, nil, b.err
	}
	pidx := indexOf(b.placeIDs)
	tidx := indexOf(b.transIDs)

	n := &Net{
		PlaceIDs:   b.placeIDs,
		TransIDs:   b.transIDs,
		PlaceNames: b.placeNames,
		TransNames: b.transNames,
		placeIndex: pidx,
		transIndex: tidx,
	}
	n.I = zeros(len(b.placeIDs), len(b.transIDs))
	n.O = zeros(len(b.placeIDs), len(b.transIDs))
	n.M0 = make([]int, len(b.placeIDs))
	for id, m := range b.m0 {
		n.M0[pidx[id]] = m
	}

	for _, a := range b.arcs {
		if pi, ok := pidx[a.source]; ok {
			ti, ok := tidx[a.target]
			if !ok {
				return nil, nil, fmt.Errorf("%w: arc target %q is not a known transition", ErrMalformedPNML, a.target)
			}
			n.I[pi][ti]++
			continue
		}
		if ti, ok := tidx[a.source]; ok {
			pi, ok := pidx[a.target]
			if !ok {
				return nil, nil, fmt.Errorf("%w: arc target %q is not a known place", ErrMalformedPNML, a.target)
			}
			n.O[pi][ti]++
			continue
		}
		return nil, nil, fmt.Errorf("%w: arc source %q is neither a known place nor transition", ErrMalformedPNML, a.source)
	}

	warnings, err := n.Validate(strict)
	if err != nil {
		return nil, warnings, err
	}
	return n, warnings, nil
}

func zeros(rows, cols int) [][]int {
	m := make([][]int, rows)
	for i := range m {
		m[i] = make([]int, cols)
	}
	return m
}
