// Package cost prices agent moves and estimates the energy still needed to
// sort a burrow.
//
// Step is exact: Manhattan distance times the kind's per-step energy.
// For every move produced by package moves the Manhattan distance equals
// the walked route, since each route crosses the hallway.
//
// Heuristic is a lower bound on the remaining energy. It relaxes the
// puzzle by ignoring blocking between agents: each agent walks alone to
// the entrance of its home room. Per agent, times its energy:
//
//   - settled (home room, only its own kind below):       0
//   - home room but something foreign below it:           row + 2
//     (climb row-1, one step aside, one step back, at least one down)
//   - foreign room:                                       (row-1) + |col-home| + 1
//   - hallway:                                            |col-home| + 1
//
// The estimate never exceeds the true cost (admissible) and a single move
// never lowers it by more than the move's own cost (consistent), which is
// what lets a best-first search close states on first expansion.
package cost

import "github.com/katalvlaran/amphipod/burrow"

// Step returns the energy for an agent of kind k to move from from to to.
func Step(k burrow.Kind, from, to burrow.Position) int {
	return burrow.Distance(from, to) * k.Energy()
}

// Agent returns the lower bound contribution of agent i of s.
func Agent(s burrow.State, i int) int {
	a := s.Agent(i)
	home := a.Kind.HomeColumn()
	dx := a.Pos.Col - home
	if dx < 0 {
		dx = -dx
	}

	var steps int
	switch {
	case a.Pos.Row == burrow.HallwayRow:
		steps = dx + 1
	case dx != 0:
		steps = (a.Pos.Row - burrow.HallwayRow) + dx + 1
	case s.Settled(i):
		steps = 0
	default:
		steps = a.Pos.Row + 2
	}

	return steps * a.Kind.Energy()
}

// Heuristic returns a lower bound on the energy needed to reach a goal
// state from s. It is zero for goal states.
func Heuristic(s burrow.State) int {
	total := 0
	for i := 0; i < s.Len(); i++ {
		total += Agent(s, i)
	}

	return total
}
