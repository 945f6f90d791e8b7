package search

import (
	"time"

	"github.com/katalvlaran/amphipod/burrow"
	"github.com/katalvlaran/amphipod/cost"
	"github.com/katalvlaran/amphipod/moves"
)

// memoEntry is the remaining cost of a state. When exact, cost is the true
// cost-to-goal and ok is false for states from which no goal is reachable.
// Otherwise the state was cut by the incumbent and cost is a lower bound.
type memoEntry struct {
	cost  int
	ok    bool
	exact bool
}

// memo is the memoized depth-first Solver.
type memo struct {
	options Options
}

// NewMemo returns a memoized recursive Solver. The Strategy option is ignored.
func NewMemo(opts ...Option) Solver {
	cfg := buildOptions(opts)
	cfg.Strategy = Memo

	return &memo{options: cfg}
}

// Solve runs the recursion from start.
//
// Each state resolves to the minimum over its moves of
// move cost + cost-to-goal of the successor; goal states resolve to 0 and
// states without moves to "no solution". Resolved values are memoized by
// canonical key. With branch-and-bound, a state cut by the incumbent is
// stored with a lower bound on its cost instead; a later visit re-expands it
// only when g plus that bound can still beat the incumbent.
//
// Returns ErrNoSolution when the start state cannot reach a goal.
func (m *memo) Solve(start burrow.State) (Result, error) {
	if start.Len() == 0 {
		return Result{Strategy: Memo}, ErrEmptyState
	}

	began := time.Now()
	e := &memoEngine{
		options: m.options,
		table:   make(map[burrow.Key]memoEntry),
		clock:   newClock(began, m.options),
	}
	rem, ok, _ := e.visit(start, 0, 0)

	res := Result{
		Strategy:  Memo,
		Expanded:  e.expanded,
		Generated: e.generated,
		Cached:    len(e.table),
		Elapsed:   time.Since(began),
	}
	if e.err != nil {
		return res, e.err
	}

	switch {
	case m.options.BranchAndBound && e.found:
		res.Cost = e.best
	case !m.options.BranchAndBound && ok:
		res.Cost = rem
	default:
		return res, ErrNoSolution
	}

	return res, nil
}

// memoEngine holds all search data of a single recursive execution.
type memoEngine struct {
	options Options
	table   map[burrow.Key]memoEntry
	clock   clock
	err     error

	// Incumbent: best complete cost found so far.
	best  int
	found bool

	expanded  int
	generated int
}

// improve records a complete solution of total cost total.
func (e *memoEngine) improve(total int) {
	if e.found && total >= e.best {
		return
	}
	e.best, e.found = total, true
	e.report(0)
}

// visit resolves the cost-to-goal of s reached with g energy spent.
// exact is false when some branch below s was cut by the incumbent; rem is
// then a lower bound on the cost-to-goal and ok is true.
func (e *memoEngine) visit(s burrow.State, g, depth int) (rem int, ok, exact bool) {
	key := s.Key()
	hit, cached := e.table[key]
	if cached && hit.exact {
		if hit.ok {
			e.improve(g + hit.cost)
		}
		return hit.cost, hit.ok, true
	}

	if s.IsGoal() {
		e.table[key] = memoEntry{cost: 0, ok: true, exact: true}
		e.improve(g)
		return 0, true, true
	}

	bound := 0
	if e.options.BranchAndBound {
		bound = cost.Heuristic(s)
		if cached && hit.cost > bound {
			bound = hit.cost
		}
		if e.found && g+bound >= e.best {
			e.table[key] = memoEntry{cost: bound, ok: true}
			return bound, true, false
		}
	}

	e.expanded++
	if e.err = e.clock.check(); e.err != nil {
		return 0, false, false
	}
	if e.options.Progress != nil && e.expanded%e.options.ProgressEvery == 0 {
		e.report(depth)
	}

	exact = true
	for _, mv := range moves.Successors(s, e.options.DeadEndPruning) {
		e.generated++
		sub, subOK, subExact := e.visit(mv.Next, g+mv.Cost, depth+1)
		if e.err != nil {
			return 0, false, false
		}
		if !subExact {
			exact = false
		}
		if subOK && (!ok || mv.Cost+sub < rem) {
			rem, ok = mv.Cost+sub, true
		}
	}

	if exact {
		e.table[key] = memoEntry{cost: rem, ok: ok, exact: true}
		if ok {
			e.improve(g + rem)
		}
		return rem, ok, true
	}

	// Cut children contributed lower bounds, so rem is one as well.
	if rem < bound {
		rem = bound
	}
	e.table[key] = memoEntry{cost: rem, ok: true}

	return rem, true, false
}

func (e *memoEngine) report(depth int) {
	if e.options.Progress == nil {
		return
	}
	e.options.Progress(Progress{
		Strategy: Memo,
		Expanded: e.expanded,
		Frontier: depth,
		Cached:   len(e.table),
		Best:     e.best,
		Found:    e.found,
	})
}
