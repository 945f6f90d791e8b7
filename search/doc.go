// Package search finds the minimum total energy needed to sort a burrow.
//
// Two interchangeable strategies implement the Solver interface and always
// agree on the answer:
//
//   - AStar (NewAStar): best-first search over states ordered by
//     g + h, where g is the energy spent so far and h is cost.Heuristic.
//     Duplicate frontier entries are tolerated ("lazy" insertion) and
//     skipped on pop through a visited set keyed by burrow.Key. Goal
//     states record a candidate answer; successors whose g + h exceeds the
//     best answer are never pushed.
//
//   - Memo (NewMemo): depth-first recursion with a memo table mapping a
//     state key to its exact remaining cost. Convergent move orders collapse
//     onto one entry, which keeps the exponential branching tractable.
//     WithBranchAndBound adds a global incumbent: a branch whose g + h
//     already meets the incumbent is abandoned. A cut state is stored with a
//     lower bound on its remaining cost instead of an exact one, and is only
//     re-expanded when reached cheaply enough for that bound to beat the
//     incumbent.
//
// Every Solve call owns its frontier, visited set and memo table; solvers
// hold no state between calls and are safe to reuse.
//
// Options:
//
//   - WithStrategy:       pick the strategy for Solve (default AStar).
//   - WithDeadEndPruning: skip moves that can never lead to a cheaper goal
//     (see moves.Useful). Enabled by default.
//   - WithBranchAndBound: incumbent pruning for the Memo strategy.
//   - WithTimeLimit:      soft wall-clock budget, checked every 4096 expansions.
//   - WithProgress:       periodic diagnostic callback.
//   - WithContext:        cancel the search; Solve returns ctx.Err().
//
// Errors (sentinel):
//
//   - ErrEmptyState:      the start state has no agents.
//   - ErrNoSolution:      no goal state is reachable.
//   - ErrUnknownStrategy: Solve was given an unsupported Strategy.
//   - ErrTimeLimit:       the time budget elapsed before the search finished.
//   - ErrBadTimeLimit:    WithTimeLimit received a negative duration.
//
// Example usage:
//
//	start, err := burrow.Parse(lines)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := search.Solve(start, search.WithStrategy(search.Memo))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Cost)
package search
