// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// Set wraps a BDD and adds a few convenience combinators built out of the
// interface's primitives, mirroring the teacher package's split between the
// low-level BDD interface and the higher-level Set.
type Set struct {
	BDD
}

// NewSet returns a Set wrapping a fresh BDD with varnum variables.
func NewSet(varnum int, options ...func(*configs)) (*Set, error) {
	b, err := New(varnum, options...)
	if err != nil {
		return nil, err
	}
	return &Set{BDD: b}, nil
}

// And returns the conjunction of a (non-empty) sequence of nodes.
func (s *Set) And(n ...Node) Node {
	if len(n) == 0 {
		return s.True()
	}
	res := n[0]
	for _, m := range n[1:] {
		res = s.Apply(res, m, OPand)
	}
	return res
}

// Or returns the disjunction of a sequence of nodes.
func (s *Set) Or(n ...Node) Node {
	if len(n) == 0 {
		return s.False()
	}
	res := n[0]
	for _, m := range n[1:] {
		res = s.Apply(res, m, OPor)
	}
	return res
}

// AndExist returns exist vars . (n1 & n2), the relational composition used
// to compute one transition's contribution to the successor image.
func (s *Set) AndExist(n1, n2 Node, vars []int) Node {
	return s.AppEx(n1, n2, OPand, vars)
}
