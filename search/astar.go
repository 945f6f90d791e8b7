package search

import (
	"container/heap"
	"time"

	"github.com/katalvlaran/amphipod/burrow"
	"github.com/katalvlaran/amphipod/cost"
	"github.com/katalvlaran/amphipod/moves"
)

// aStar is the best-first Solver.
type aStar struct {
	options Options
}

// NewAStar returns a best-first Solver. The Strategy option is ignored.
func NewAStar(opts ...Option) Solver {
	cfg := buildOptions(opts)
	cfg.Strategy = AStar

	return &aStar{options: cfg}
}

// Solve runs the search from start.
//
// Loop:
//  1. Pop the entry with the smallest g + h; once a goal is known, stop as
//     soon as that priority can no longer beat it.
//  2. Skip the entry if its state was already expanded.
//  3. A goal state records g as a candidate answer.
//  4. Otherwise push every successor whose g + h does not exceed the best
//     answer so far.
//
// Returns ErrNoSolution when the frontier drains without reaching a goal.
func (a *aStar) Solve(start burrow.State) (Result, error) {
	if start.Len() == 0 {
		return Result{Strategy: AStar}, ErrEmptyState
	}

	began := time.Now()
	r := &aStarRunner{
		options: a.options,
		visited: make(map[burrow.Key]struct{}),
		clock:   newClock(began, a.options),
	}
	err := r.process(start)

	res := Result{
		Strategy:  AStar,
		Cost:      r.best,
		Expanded:  r.expanded,
		Generated: r.generated,
		Cached:    len(r.visited),
		Elapsed:   time.Since(began),
	}
	if err != nil {
		return res, err
	}
	if !r.found {
		res.Cost = 0
		return res, ErrNoSolution
	}

	return res, nil
}

// aStarRunner holds the mutable state of a single A* execution.
type aStarRunner struct {
	options   Options
	pq        statePQ
	visited   map[burrow.Key]struct{}
	clock     clock
	best      int
	found     bool
	expanded  int
	generated int
}

func (r *aStarRunner) process(start burrow.State) error {
	heap.Init(&r.pq)
	heap.Push(&r.pq, &stateItem{state: start, g: 0, f: cost.Heuristic(start)})

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*stateItem)
		if r.found && item.f >= r.best {
			break
		}

		key := item.state.Key()
		if _, seen := r.visited[key]; seen {
			continue
		}
		r.visited[key] = struct{}{}
		r.expanded++

		if err := r.clock.check(); err != nil {
			return err
		}
		if r.options.Progress != nil && r.expanded%r.options.ProgressEvery == 0 {
			r.report()
		}

		if item.state.IsGoal() {
			if !r.found || item.g < r.best {
				r.best, r.found = item.g, true
				r.report()
			}
			continue
		}

		r.expand(item)
	}

	return nil
}

// expand pushes the admissible successors of item onto the frontier.
func (r *aStarRunner) expand(item *stateItem) {
	for _, mv := range moves.Successors(item.state, r.options.DeadEndPruning) {
		g := item.g + mv.Cost
		f := g + cost.Heuristic(mv.Next)
		if r.found && f > r.best {
			continue
		}
		if _, seen := r.visited[mv.Next.Key()]; seen {
			continue
		}
		r.generated++
		heap.Push(&r.pq, &stateItem{state: mv.Next, g: g, f: f})
	}
}

func (r *aStarRunner) report() {
	if r.options.Progress == nil {
		return
	}
	r.options.Progress(Progress{
		Strategy: AStar,
		Expanded: r.expanded,
		Frontier: r.pq.Len(),
		Cached:   len(r.visited),
		Best:     r.best,
		Found:    r.found,
	})
}
