// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import "math/big"

// Node is a reference to a vertex of a BDD. The convention is that 1
// (respectively 0) is the address of the constant function True
// (respectively False); nil denotes an error.
type Node *int

// Replacer describes a level-to-level renaming used by Replace, such as the
// one built by NewReplacer.
type Replacer interface {
	// image returns the new level for an old one, and whether it changed.
	image(level int32) (int32, bool)
}

// BDD is the interface implementing the operations needed over Binary
// Decision Diagrams by the symbolic reachability engine: constants,
// variable creation with a fixed ordering, the logical connectives,
// existential quantification, variable substitution, a semantic
// equivalence test, and model enumeration with model count.
type BDD interface {
	// Error returns the error status of the BDD, or the empty string.
	Error() string

	// Varnum returns the number of declared variables.
	Varnum() int

	// True returns the constant function true.
	True() Node

	// False returns the constant function false.
	False() Node

	// From returns a constant Node built from a boolean value.
	From(v bool) Node

	// Ithvar returns the Node for the i'th variable, in positive form.
	Ithvar(i int) Node

	// NIthvar returns the Node for the negation of the i'th variable.
	NIthvar(i int) Node

	// Not returns the negation of n.
	Not(n Node) Node

	// Apply performs a binary operation (and, or, ...) on two nodes.
	Apply(left, right Node, op Operator) Node

	// Ite is the if-then-else operator: (f & g) | (!f & h).
	Ite(f, g, h Node) Node

	// Exist existentially quantifies the variables in vars out of n.
	Exist(n Node, vars []int) Node

	// AppEx applies op to left and right, then existentially quantifies
	// the variables in vars out of the result. It is equivalent to (but
	// more convenient than) Exist(Apply(left, right, op), vars).
	AppEx(left, right Node, op Operator, vars []int) Node

	// Replace substitutes variables in n according to r.
	Replace(n Node, r Replacer) Node

	// NewReplacer builds a Replacer substituting oldvars[k] with
	// newvars[k], for every k.
	NewReplacer(oldvars, newvars []int) (Replacer, error)

	// Equal tests semantic equivalence between two nodes. Because the
	// node table is hash-consed, this reduces to testing whether the two
	// nodes are the same vertex.
	Equal(n1, n2 Node) bool

	// Satcount returns the number of satisfying assignments of n over
	// the first nvars declared variables, using arbitrary precision
	// arithmetic. nvars must not exceed Varnum().
	Satcount(n Node, nvars int) *big.Int

	// Allsat iterates over every satisfying assignment of n, restricted
	// to the first nvars declared variables. f receives a slice of
	// length nvars where each entry is 0 (false), 1 (true) or -1 (don't
	// care). Iteration stops, and the error is returned, if f errors.
	Allsat(n Node, nvars int, f func([]int) error) error

	// Stats returns a short human-readable summary of the BDD (number of
	// variables, nodes allocated).
	Stats() string
}
