// Package amphipod finds the least total energy needed to sort amphipods
// into their home rooms in a burrow: a hallway of eleven cells above four
// side rooms, each room holding two (folded) or four (extended) agents.
//
// What is inside
//
//	• burrow/: geometry, state, parsing of the ASCII diagram, goal test
//	• moves/ : legal destinations, path checks, dead-end filter
//	• cost/  : step cost and the admissible heuristic
//	• search/: A* and memoized branch-and-bound solvers behind one Solver
//
// Binary
//
//	cmd/amphipod: `amphipod solve [file]`, diagnostics via bolt
//	internal/{cli,config,logging}
//
// Quick start
//
//	start, _ := burrow.ParseString(grid)
//	res, err := search.Solve(start)              // A*, dead-end pruning on
//	res, err  = search.Solve(start,
//		search.WithStrategy(search.Memo),
//		search.WithBranchAndBound())
//
// Both strategies return the same optimum; A* usually expands fewer states.
package amphipod
