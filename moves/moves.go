// Package moves enumerates the legal moves of a single agent in a burrow
// and checks whether the corridor between two cells is free.
//
// Movement rules:
//
//   - An agent in the hallway may only move into its own home room.
//   - An agent in a room that has not moved yet may move to any hallway
//     stop (never onto a room entrance).
//   - An agent that already left its room and came back is immobile.
//
// Between two stopping points the route is a fixed L shape (up the source
// column, along the hallway, down the destination column), so legality is
// decided in closed form in O(depth + hallway width) without a graph search.
package moves

import (
	"github.com/katalvlaran/amphipod/burrow"
	"github.com/katalvlaran/amphipod/cost"
)

// Move is one legal transition of a state.
type Move struct {
	Agent int             // index of the moving agent
	From  burrow.Position // origin cell
	To    burrow.Position // destination cell
	Cost  int             // energy spent
	Next  burrow.State    // resulting state
}

// Candidates returns the destination cells agent i may aim for, before any
// obstruction check.
func Candidates(s burrow.State, i int) []burrow.Position {
	a := s.Agent(i)
	l := s.Layout()

	switch {
	case a.Pos.Row == burrow.HallwayRow:
		home := l.HomeColumn(a.Kind)
		out := make([]burrow.Position, 0, l.Depth())
		for r := burrow.FirstRoomRow; r <= l.LastRoomRow(); r++ {
			out = append(out, burrow.Position{Row: r, Col: home})
		}

		return out
	case !a.Moved:
		stops := l.Stops()
		out := make([]burrow.Position, 0, len(stops))
		for _, c := range stops {
			out = append(out, burrow.Position{Row: burrow.HallwayRow, Col: c})
		}

		return out
	default:
		return nil
	}
}

// Path returns the cells traversed from from to to in travel order,
// excluding from and including to. It is empty when from == to.
func Path(from, to burrow.Position) []burrow.Position {
	out := make([]burrow.Position, 0, burrow.Distance(from, to))
	walk(from, to, func(p burrow.Position) bool {
		out = append(out, p)

		return true
	})

	return out
}

// PathOpen reports whether no agent of s stands on Path(from, to).
func PathOpen(s burrow.State, from, to burrow.Position) bool {
	return walk(from, to, func(p burrow.Position) bool {
		return !s.Occupied(p)
	})
}

// Destinations returns every cell agent i can legally reach this turn.
func Destinations(s burrow.State, i int) []burrow.Position {
	a := s.Agent(i)
	l := s.Layout()
	cands := Candidates(s, i)
	out := cands[:0]
	for _, to := range cands {
		// Rooms other than the agent's own are never enterable.
		if l.IsRoom(to) && to.Col != l.HomeColumn(a.Kind) {
			continue
		}
		if !PathOpen(s, a.Pos, to) {
			continue
		}
		out = append(out, to)
	}

	return out
}

// Useful reports whether moving agent i to to can still be part of a
// solution worth exploring:
//
//   - entering a room is only useful into its deepest free row, with only
//     the agent's own kind below it;
//   - leaving a room is useless for a settled agent.
//
// Rejected moves either dead-end (the agent is immobile in a room that can
// never be completed) or only add cost, so filtering them never changes the
// optimum.
func Useful(s burrow.State, i int, to burrow.Position) bool {
	a := s.Agent(i)
	l := s.Layout()
	if !l.IsRoom(to) {
		return !s.Settled(i)
	}
	for r := to.Row + 1; r <= l.LastRoomRow(); r++ {
		b, ok := s.At(burrow.Position{Row: r, Col: to.Col})
		if !ok || b.Kind != a.Kind {
			return false
		}
	}

	return true
}

// Successors returns every legal move of every agent in s, in agent order.
// With pruneDeadEnds, moves rejected by Useful are skipped.
func Successors(s burrow.State, pruneDeadEnds bool) []Move {
	var out []Move
	for i := 0; i < s.Len(); i++ {
		a := s.Agent(i)
		for _, to := range Destinations(s, i) {
			if pruneDeadEnds && !Useful(s, i, to) {
				continue
			}
			out = append(out, Move{
				Agent: i,
				From:  a.Pos,
				To:    to,
				Cost:  cost.Step(a.Kind, a.Pos, to),
				Next:  s.Move(i, to),
			})
		}
	}

	return out
}

// walk visits the cells of the route from from to to, stopping early when
// visit returns false. It reports whether every visit returned true.
func walk(from, to burrow.Position, visit func(burrow.Position) bool) bool {
	if from == to {
		return true
	}

	// Same column: a straight vertical run.
	if from.Col == to.Col {
		step := 1
		if to.Row < from.Row {
			step = -1
		}
		for r := from.Row + step; ; r += step {
			if !visit(burrow.Position{Row: r, Col: from.Col}) {
				return false
			}
			if r == to.Row {
				return true
			}
		}
	}

	// Up the source column to the hallway.
	for r := from.Row - 1; r >= burrow.HallwayRow; r-- {
		if !visit(burrow.Position{Row: r, Col: from.Col}) {
			return false
		}
	}

	// Along the hallway.
	step := 1
	if to.Col < from.Col {
		step = -1
	}
	for c := from.Col + step; ; c += step {
		if !visit(burrow.Position{Row: burrow.HallwayRow, Col: c}) {
			return false
		}
		if c == to.Col {
			break
		}
	}

	// Down the destination column.
	for r := burrow.HallwayRow + 1; r <= to.Row; r++ {
		if !visit(burrow.Position{Row: r, Col: to.Col}) {
			return false
		}
	}

	return true
}
