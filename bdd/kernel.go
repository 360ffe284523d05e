// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"fmt"
)

// _MAXVAR bounds the number of variables a table may declare; chosen the
// same as the teacher's limit, well above anything a 1-safe net of
// practical size needs (the engine declares 2*P variables for P places).
const _MAXVAR = 0x1FFFFF

// bddnode is a single vertex of the shared node table. The two constants,
// False and True, always occupy index 0 and 1.
type bddnode struct {
	level int32 // variable index, or varnum for the two constants
	low   int   // false branch
	high  int   // true branch
}

// table is the concrete implementation of BDD: a hash-consed node table
// backed by the Go runtime map, following the "Hudd"-style design described
// in the teacher package (github.com/dalzilio/rudd), stripped of the
// alternative BuDDy-style array backend and of explicit garbage collection:
// nodes are never reclaimed during the lifetime of a table, which is
// appropriate for the bounded, short-lived analyses run by this package's
// callers (one table per symbolic reachability computation).
type table struct {
	varnum int
	nodes  []bddnode
	unique map[[3]int32]int // (level, low, high) -> node index

	ithvars  []int // ithvars[i] is the node for variable i, positive form
	nithvars []int // nithvars[i] is the node for variable i, negated form

	maxnodesize int
	err         error
}

func mk(id int) Node {
	v := id
	return &v
}

func idOf(n Node) int {
	return *n
}

// New returns a fresh BDD with varnum declared variables, numbered
// [0, varnum). Options such as Nodesize or Maxnodesize tune the initial
// table capacity.
func New(varnum int, options ...func(*configs)) (BDD, error) {
	if varnum < 1 || varnum > _MAXVAR {
		return nil, fmt.Errorf("bdd: bad number of variables (%d)", varnum)
	}
	cfg := makeconfigs(varnum)
	for _, o := range options {
		o(cfg)
	}
	t := &table{
		varnum:      varnum,
		nodes:       make([]bddnode, 2, cfg.nodesize),
		unique:      make(map[[3]int32]int, cfg.nodesize),
		ithvars:     make([]int, varnum),
		nithvars:    make([]int, varnum),
		maxnodesize: cfg.maxnodesize,
	}
	// Constants are always kept at index 0 (False) and 1 (True); their
	// level is conventionally varnum so that they sort after every real
	// variable.
	t.nodes[0] = bddnode{level: int32(varnum), low: 0, high: 0}
	t.nodes[1] = bddnode{level: int32(varnum), low: 1, high: 1}
	for i := 0; i < varnum; i++ {
		t.ithvars[i] = t.makenode(int32(i), 0, 1)
		t.nithvars[i] = t.makenode(int32(i), 1, 0)
	}
	return t, nil
}

// makenode returns the (hash-consed) index of the node (level, low, high),
// reducing it to low if low == high.
func (t *table) makenode(level int32, low, high int) int {
	if low == high {
		return low
	}
	key := [3]int32{level, int32(low), int32(high)}
	if id, ok := t.unique[key]; ok {
		return id
	}
	if t.maxnodesize > 0 && len(t.nodes) >= t.maxnodesize {
		t.seterror("node table exceeded maximum size (%d)", t.maxnodesize)
		return 0
	}
	id := len(t.nodes)
	t.nodes = append(t.nodes, bddnode{level: level, low: low, high: high})
	t.unique[key] = id
	return id
}

func (t *table) seterror(format string, a ...interface{}) {
	if t.err == nil {
		t.err = fmt.Errorf(format, a...)
	}
}

func (t *table) Error() string {
	if t.err == nil {
		return ""
	}
	return t.err.Error()
}

func (t *table) Varnum() int { return t.varnum }

func (t *table) True() Node  { return mk(1) }
func (t *table) False() Node { return mk(0) }

func (t *table) From(v bool) Node {
	if v {
		return t.True()
	}
	return t.False()
}

func (t *table) Ithvar(i int) Node {
	if i < 0 || i >= t.varnum {
		t.seterror("bdd: variable index out of range (%d)", i)
		return nil
	}
	return mk(t.ithvars[i])
}

func (t *table) NIthvar(i int) Node {
	if i < 0 || i >= t.varnum {
		t.seterror("bdd: variable index out of range (%d)", i)
		return nil
	}
	return mk(t.nithvars[i])
}

func (t *table) low(id int) int  { return t.nodes[id].low }
func (t *table) high(id int) int { return t.nodes[id].high }

func (t *table) Stats() string {
	return fmt.Sprintf("Varnum: %d, Allocated: %d\n", t.varnum, len(t.nodes))
}
