// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import "fmt"

// replacer is a level-to-level renaming, as returned by NewReplacer.
//
// Replace assumes the renaming is order-preserving: if level a is mapped to
// level a' and level b > a is mapped to level b', then b' > a'. Every
// renaming used by the symbolic reachability engine (next-state variable
// P+i renamed back to current-state variable i, for every place i) satisfies
// this by construction, since it shifts a contiguous block of levels down by
// a constant P.
type replacer struct {
	image_ []int32 // image_[level] is the new level, or level itself if unchanged
}

func (r *replacer) image(level int32) (int32, bool) {
	nl := r.image_[level]
	return nl, nl != level
}

// NewReplacer returns a Replacer substituting oldvars[k] with newvars[k],
// for every k. Every value must lie in [0, Varnum).
func (t *table) NewReplacer(oldvars, newvars []int) (Replacer, error) {
	if len(oldvars) != len(newvars) {
		return nil, fmt.Errorf("bdd: mismatched lengths for NewReplacer (%d vs %d)", len(oldvars), len(newvars))
	}
	r := &replacer{image_: make([]int32, t.varnum)}
	for i := range r.image_ {
		r.image_[i] = int32(i)
	}
	seen := make(map[int]bool, len(oldvars))
	for k, old := range oldvars {
		if old < 0 || old >= t.varnum || newvars[k] < 0 || newvars[k] >= t.varnum {
			return nil, fmt.Errorf("bdd: variable out of range in NewReplacer (%d -> %d)", old, newvars[k])
		}
		if seen[old] {
			return nil, fmt.Errorf("bdd: duplicate variable (%d) in NewReplacer", old)
		}
		seen[old] = true
		r.image_[old] = int32(newvars[k])
	}
	return r, nil
}

func (t *table) Replace(n Node, r Replacer) Node {
	if n == nil {
		return nil
	}
	return mk(t.replace(idOf(n), r, make(map[int]int)))
}

func (t *table) replace(n int, r Replacer, memo map[int]int) int {
	if t.isconst(n) {
		return n
	}
	if v, ok := memo[n]; ok {
		return v
	}
	nd := t.nodes[n]
	lo := t.replace(nd.low, r, memo)
	hi := t.replace(nd.high, r, memo)
	level := nd.level
	if nl, changed := r.image(level); changed {
		level = nl
	}
	res := t.makenode(level, lo, hi)
	memo[n] = res
	return res
}
