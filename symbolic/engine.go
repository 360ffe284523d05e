package symbolic

import (
	"fmt"
	"log"
	"math/big"

	"github.com/google/uuid"

	"github.com/dalzilio/safenet/bdd"
	"github.com/dalzilio/safenet/net"
)

// maxIterations bounds the fixpoint loop (§4.3's safety bound); reaching it
// without convergence is reported as ErrDiverged rather than silently
// truncating Reach. It is a var, not a const, so tests can exercise the
// cap without waiting for a pathologically large net.
var maxIterations = 10000

// Engine owns one BDD node table scoped to a single net's analysis: 2*P
// variables, the first P ("current", levels [0,P)) and the next P ("next",
// levels [P,2P)). Scoping the table to an Engine handle (rather than a
// single process-wide global, which is what BDD packages traditionally
// expose) lets independent analyses run side by side without sharing
// mutable state, per the design note on the global variable registry.
type Engine struct {
	set *bdd.Set
	p   int

	// RunID identifies one Reachable invocation for logging; it has no
	// influence on the computed result.
	RunID uuid.UUID
}

// NewEngine allocates a fresh Engine for a net with p places.
func NewEngine(p int) (*Engine, error) {
	if p < 1 {
		return nil, fmt.Errorf("symbolic: engine requires at least one place, got %d", p)
	}
	set, err := bdd.NewSet(2 * p)
	if err != nil {
		return nil, err
	}
	return &Engine{set: set, p: p}, nil
}

func (e *Engine) current(i int) int { return i }
func (e *Engine) next(i int) int    { return e.p + i }

func (e *Engine) currentVars() []int {
	vars := make([]int, e.p)
	for i := range vars {
		vars[i] = e.current(i)
	}
	return vars
}

// Result is the output of Reachable: the BDD characterising the reachable
// set and its model count, scoped to the engine that produced it.
type Result struct {
	Engine *Engine
	R      bdd.Node
	Count  *big.Int
}

// markingNode builds the BDD of a single fully-specified marking over the
// current variables: the conjunction x_i if m[i]=1 else not x_i.
func (e *Engine) markingNode(m []int) bdd.Node {
	clauses := make([]bdd.Node, e.p)
	for i, v := range m {
		if v != 0 {
			clauses[i] = e.set.Ithvar(e.current(i))
		} else {
			clauses[i] = e.set.NIthvar(e.current(i))
		}
	}
	return e.set.And(clauses...)
}

// transitionRelation builds T_t per the §3 clause table.
func (e *Engine) transitionRelation(n *net.Net, t int) bdd.Node {
	clauses := make([]bdd.Node, n.NumPlaces())
	for i := 0; i < n.NumPlaces(); i++ {
		cur, nxt := e.set.Ithvar(e.current(i)), e.set.Ithvar(e.next(i))
		ncur, nnxt := e.set.NIthvar(e.current(i)), e.set.NIthvar(e.next(i))
		switch {
		case n.I[i][t] == 0 && n.O[i][t] == 0:
			clauses[i] = e.set.Apply(cur, nxt, bdd.OPbiimp)
		case n.I[i][t] == 1 && n.O[i][t] == 0:
			clauses[i] = e.set.Apply(cur, nnxt, bdd.OPand)
		case n.I[i][t] == 0 && n.O[i][t] == 1:
			clauses[i] = e.set.Apply(ncur, nxt, bdd.OPand)
		default: // I=1, O=1: self-loop, consumed and reproduced
			clauses[i] = e.set.Apply(cur, nxt, bdd.OPand)
		}
	}
	return e.set.And(clauses...)
}

// Reachable implements the §4.3 algorithm: classical symbolic
// breadth-first fixpoint with a transition relation per transition.
func Reachable(n *net.Net) (*Result, error) {
	if n.NumPlaces() == 0 {
		// A net with no places has exactly one marking, the empty one,
		// and it is trivially reachable; there are no variables to
		// allocate a BDD engine over.
		return &Result{Count: big.NewInt(1)}, nil
	}
	e, err := NewEngine(n.NumPlaces())
	if err != nil {
		return nil, err
	}
	e.RunID = uuid.New()
	log.Printf("symbolic: run %s: computing reachable set for a net with %d places, %d transitions", e.RunID, n.NumPlaces(), n.NumTrans())

	reach := e.markingNode(n.M0)

	if n.NumTrans() == 0 {
		return e.result(reach), nil
	}

	relations := make([]bdd.Node, n.NumTrans())
	for t := range relations {
		relations[t] = e.transitionRelation(n, t)
	}

	currentVars := e.currentVars()
	for iter := 0; ; iter++ {
		if iter >= maxIterations {
			log.Printf("symbolic: run %s: diverged after %d iterations", e.RunID, iter)
			return nil, ErrDiverged
		}
		postPrime := e.set.False()
		for _, rel := range relations {
			pairs := e.set.AndExist(reach, rel, currentVars)
			postPrime = e.set.Or(postPrime, pairs)
		}
		post, err := e.unprime(postPrime)
		if err != nil {
			return nil, err
		}
		newReach := e.set.Or(reach, post)
		if e.set.Equal(newReach, reach) {
			log.Printf("symbolic: run %s: converged after %d iterations", e.RunID, iter)
			return e.result(reach), nil
		}
		reach = newReach
	}
}

// unprime renames the next-state variables [P,2P) back onto the
// current-state ones [0,P), per the fixpoint loop's rename-by-replace step.
func (e *Engine) unprime(n bdd.Node) (bdd.Node, error) {
	oldvars := make([]int, e.p)
	newvars := make([]int, e.p)
	for i := 0; i < e.p; i++ {
		oldvars[i] = e.next(i)
		newvars[i] = e.current(i)
	}
	r, err := e.set.NewReplacer(oldvars, newvars)
	if err != nil {
		return nil, err
	}
	return e.set.Replace(n, r), nil
}

func (e *Engine) result(reach bdd.Node) *Result {
	return &Result{
		Engine: e,
		R:      reach,
		Count:  e.set.Satcount(reach, e.p),
	}
}

// Assignments calls f once per satisfying assignment of R, without
// expanding don't-care place variables into their concrete completions:
// entries left at -1 in the profile are unconstrained by that assignment.
// Callers that can complete don't-cares cheaply (package maximize's greedy
// completion) should prefer this over Models, which expands eagerly and
// can be exponential in the number of don't-cares.
func (r *Result) Assignments(f func(profile []int) error) error {
	if r.Engine == nil {
		return f([]int{})
	}
	return r.Engine.set.Allsat(r.R, r.Engine.p, f)
}

// Models enumerates the markings in R, expanding don't-care place
// variables into every concrete completion. It is used by tests that
// cross-check the symbolic engine against the explicit oracle, and may be
// reused wherever a caller needs the literal reachable set rather than
// just its BDD representation or its count.
func (r *Result) Models() [][]int {
	var out [][]int
	_ = r.Assignments(func(profile []int) error {
		expandDontCares(profile, 0, &out)
		return nil
	})
	return out
}

func expandDontCares(profile []int, i int, out *[][]int) {
	if i == len(profile) {
		*out = append(*out, append([]int(nil), profile...))
		return
	}
	if profile[i] != -1 {
		expandDontCares(profile, i+1, out)
		return
	}
	profile[i] = 0
	expandDontCares(profile, i+1, out)
	profile[i] = 1
	expandDontCares(profile, i+1, out)
	profile[i] = -1
}

// Contains reports whether marking m is a model of R.
func (r *Result) Contains(m []int) bool {
	if r.Engine == nil {
		return len(m) == 0
	}
	n := r.Engine.markingNode(m)
	conj := r.Engine.set.And(n, r.R)
	return !r.Engine.set.Equal(conj, r.Engine.set.False())
}
