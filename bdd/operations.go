// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import "math/big"

func (t *table) isconst(n int) bool { return n < 2 }

func (t *table) Not(n Node) Node {
	if n == nil {
		return nil
	}
	return mk(t.not(idOf(n), make(map[int]int)))
}

func (t *table) not(n int, memo map[int]int) int {
	if n == 0 {
		return 1
	}
	if n == 1 {
		return 0
	}
	if v, ok := memo[n]; ok {
		return v
	}
	nd := t.nodes[n]
	res := t.makenode(nd.level, t.not(nd.low, memo), t.not(nd.high, memo))
	memo[n] = res
	return res
}

type applykey struct {
	op          Operator
	left, right int
}

func (t *table) Apply(left, right Node, op Operator) Node {
	if left == nil || right == nil {
		return nil
	}
	return mk(t.apply(idOf(left), idOf(right), op, make(map[applykey]int)))
}

func (t *table) apply(left, right int, op Operator, memo map[applykey]int) int {
	if t.isconst(left) && t.isconst(right) {
		return opres[op][left][right]
	}
	key := applykey{op, left, right}
	if v, ok := memo[key]; ok {
		return v
	}
	lnode, rnode := t.nodes[left], t.nodes[right]
	top := lnode.level
	if rnode.level < top {
		top = rnode.level
	}
	llow, lhigh := left, left
	if !t.isconst(left) && lnode.level == top {
		llow, lhigh = lnode.low, lnode.high
	}
	rlow, rhigh := right, right
	if !t.isconst(right) && rnode.level == top {
		rlow, rhigh = rnode.low, rnode.high
	}
	lo := t.apply(llow, rlow, op, memo)
	hi := t.apply(lhigh, rhigh, op, memo)
	res := t.makenode(top, lo, hi)
	memo[key] = res
	return res
}

type itekey struct{ f, g, h int }

func (t *table) Ite(f, g, h Node) Node {
	if f == nil || g == nil || h == nil {
		return nil
	}
	return mk(t.ite(idOf(f), idOf(g), idOf(h), make(map[itekey]int)))
}

func (t *table) ite(f, g, h int, memo map[itekey]int) int {
	if f == 1 {
		return g
	}
	if f == 0 {
		return h
	}
	if g == h {
		return g
	}
	if g == 1 && h == 0 {
		return f
	}
	key := itekey{f, g, h}
	if v, ok := memo[key]; ok {
		return v
	}
	fn := t.nodes[f]
	top := fn.level
	if !t.isconst(g) && t.nodes[g].level < top {
		top = t.nodes[g].level
	}
	if !t.isconst(h) && t.nodes[h].level < top {
		top = t.nodes[h].level
	}
	cof := func(n int) (int, int) {
		if t.isconst(n) || t.nodes[n].level != top {
			return n, n
		}
		return t.nodes[n].low, t.nodes[n].high
	}
	flow, fhigh := cof(f)
	glow, ghigh := cof(g)
	hlow, hhigh := cof(h)
	lo := t.ite(flow, glow, hlow, memo)
	hi := t.ite(fhigh, ghigh, hhigh, memo)
	res := t.makenode(top, lo, hi)
	memo[key] = res
	return res
}

// varset builds a lookup table of the (declared) levels to quantify.
func (t *table) varset(vars []int) map[int32]bool {
	s := make(map[int32]bool, len(vars))
	for _, v := range vars {
		s[int32(v)] = true
	}
	return s
}

func (t *table) Exist(n Node, vars []int) Node {
	if n == nil {
		return nil
	}
	s := t.varset(vars)
	return mk(t.exist(idOf(n), s, make(map[int]int)))
}

func (t *table) exist(n int, vars map[int32]bool, memo map[int]int) int {
	if t.isconst(n) {
		return n
	}
	if v, ok := memo[n]; ok {
		return v
	}
	nd := t.nodes[n]
	lo := t.exist(nd.low, vars, memo)
	hi := t.exist(nd.high, vars, memo)
	var res int
	if vars[nd.level] {
		res = t.apply(lo, hi, OPor, make(map[applykey]int))
	} else {
		res = t.makenode(nd.level, lo, hi)
	}
	memo[n] = res
	return res
}

func (t *table) AppEx(left, right Node, op Operator, vars []int) Node {
	if left == nil || right == nil {
		return nil
	}
	s := t.varset(vars)
	prod := t.apply(idOf(left), idOf(right), op, make(map[applykey]int))
	return mk(t.exist(prod, s, make(map[int]int)))
}

func (t *table) Equal(n1, n2 Node) bool {
	if n1 == n2 {
		return true
	}
	if n1 == nil || n2 == nil {
		return false
	}
	return *n1 == *n2
}

// Satcount computes the number of satisfying assignments of n over the
// first nvars declared variables. It follows the classical BuDDy recursive
// formula, adapted with an explicit scope bound in place of the BDD's full
// declared Varnum (see the package doc for why: this table's variables
// span both a "current" and a "next" copy of every place, and a caller
// such as the symbolic engine wants the count over the current copy
// only).
func (t *table) Satcount(n Node, nvars int) *big.Int {
	if n == nil {
		return big.NewInt(0)
	}
	id := idOf(n)
	bound := int32(nvars)
	if id == 0 {
		return big.NewInt(0)
	}
	if id == 1 {
		return new(big.Int).Lsh(big.NewInt(1), uint(bound))
	}
	memo := make(map[int]*big.Int)
	sub := t.satcountrec(id, bound, memo)
	rootlevel := t.nodes[id].level
	return new(big.Int).Lsh(sub, uint(rootlevel))
}

// childlevel returns the level of a node for the purpose of counting the
// variables skipped along an edge, treating both constants and anything at
// or past the scope bound as sitting exactly at the bound.
func (t *table) childlevel(n int, bound int32) int32 {
	if t.isconst(n) || t.nodes[n].level > bound {
		return bound
	}
	return t.nodes[n].level
}

func (t *table) satcountrec(n int, bound int32, memo map[int]*big.Int) *big.Int {
	if n == 0 {
		return big.NewInt(0)
	}
	if n == 1 {
		return big.NewInt(1)
	}
	if v, ok := memo[n]; ok {
		return v
	}
	nd := t.nodes[n]
	loGap := t.childlevel(nd.low, bound) - nd.level - 1
	hiGap := t.childlevel(nd.high, bound) - nd.level - 1
	lo := new(big.Int).Lsh(t.satcountrec(nd.low, bound, memo), uint(loGap))
	hi := new(big.Int).Lsh(t.satcountrec(nd.high, bound, memo), uint(hiGap))
	res := new(big.Int).Add(lo, hi)
	memo[n] = res
	return res
}

func (t *table) Allsat(n Node, nvars int, f func([]int) error) error {
	if n == nil {
		return t.err
	}
	profile := make([]int, nvars)
	for i := range profile {
		profile[i] = -1
	}
	return t.allsat(idOf(n), nvars, profile, f)
}

func (t *table) allsat(n int, nvars int, profile []int, f func([]int) error) error {
	if n == 0 {
		return nil
	}
	if n == 1 {
		return f(append([]int(nil), profile...))
	}
	nd := t.nodes[n]
	if int(nd.level) >= nvars {
		// Outside the counting scope: treat the rest as a single model.
		return f(append([]int(nil), profile...))
	}
	profile[nd.level] = 0
	if err := t.allsat(nd.low, nvars, profile, f); err != nil {
		return err
	}
	profile[nd.level] = 1
	if err := t.allsat(nd.high, nvars, profile, f); err != nil {
		return err
	}
	profile[nd.level] = -1
	return nil
}
