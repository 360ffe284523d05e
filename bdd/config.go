// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// configs stores the tunable parameters of a BDD instance.
type configs struct {
	varnum      int // number of declared variables
	nodesize    int // initial size of the node table
	maxnodesize int // hard cap on the node table (0 means no limit)
}

func makeconfigs(varnum int) *configs {
	return &configs{
		varnum:   varnum,
		nodesize: 2*varnum + 2,
	}
}

// Nodesize is a configuration option for New. It sets the preferred initial
// size of the node table. The table still grows on demand; this only avoids
// a few early reallocations.
func Nodesize(size int) func(*configs) {
	return func(c *configs) {
		if size >= 2*c.varnum+2 {
			c.nodesize = size
		}
	}
}

// Maxnodesize is a configuration option for New. It sets a hard limit on the
// number of nodes the table may grow to. A node that would exceed it is not
// created: the BDD's error is set (see Error) and the constant False is used
// in its place, so results computed once Error is non-empty are not
// meaningful. The default, 0, means no limit.
func Maxnodesize(size int) func(*configs) {
	return func(c *configs) {
		c.maxnodesize = size
	}
}
