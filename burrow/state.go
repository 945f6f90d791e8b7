package burrow

import (
	"fmt"
	"strings"
)

// Key is the canonical encoding of a State: one byte per legal cell,
// indexed by Layout.CellIndex. Zero means empty; otherwise the byte is
// 1 + 2×kind + moved. Two states with the same occupants on the same cells
// produce the same Key regardless of the order agents are stored in.
type Key [KeySize]byte

// State is one configuration of the whole burrow.
//
// The backing array has fixed capacity so that copying a State is a
// cheap value copy; successors never share storage with their parent.
type State struct {
	layout Layout
	agents [MaxAgents]Agent
	n      int
}

// New builds a State on layout l from the given agents.
//
// Validation (in order):
//  1. l must be a constructed layout (ErrDepth).
//  2. len(agents) == l.Agents() (ErrAgentCount).
//  3. each agent sits on a legal cell (ErrIllegalCell).
//  4. no two agents share a cell (ErrOverlap).
//  5. every kind appears exactly l.Depth() times (ErrKindCount).
func New(l Layout, agents []Agent) (State, error) {
	if l.depth < 1 || l.depth > MaxDepth {
		return State{}, fmt.Errorf("%w: %d", ErrDepth, l.depth)
	}
	if len(agents) != l.Agents() {
		return State{}, fmt.Errorf("%w: got %d, want %d", ErrAgentCount, len(agents), l.Agents())
	}

	var (
		seen   [KeySize]bool
		counts [NumKinds]int
		s      = State{layout: l, n: len(agents)}
	)
	for i, a := range agents {
		idx, ok := l.CellIndex(a.Pos)
		if !ok {
			return State{}, fmt.Errorf("%w: %s at %s", ErrIllegalCell, a.Kind, a.Pos)
		}
		if seen[idx] {
			return State{}, fmt.Errorf("%w: %s", ErrOverlap, a.Pos)
		}
		if a.Kind >= NumKinds {
			return State{}, fmt.Errorf("%w: unknown kind %d", ErrKindCount, a.Kind)
		}
		seen[idx] = true
		counts[a.Kind]++
		s.agents[i] = a
	}
	for k, c := range counts {
		if c != l.depth {
			return State{}, fmt.Errorf("%w: %s appears %d times, want %d", ErrKindCount, Kind(k), c, l.depth)
		}
	}

	return s, nil
}

// Layout returns the topology the state lives on.
func (s State) Layout() Layout { return s.layout }

// Len returns the number of agents.
func (s State) Len() int { return s.n }

// Agent returns the i-th agent.
func (s State) Agent(i int) Agent { return s.agents[i] }

// Agents returns a copy of the agents in storage order.
func (s State) Agents() []Agent {
	out := make([]Agent, s.n)
	copy(out, s.agents[:s.n])

	return out
}

// At returns the agent occupying p, if any.
func (s State) At(p Position) (Agent, bool) {
	for i := 0; i < s.n; i++ {
		if s.agents[i].Pos == p {
			return s.agents[i], true
		}
	}

	return Agent{}, false
}

// Occupied reports whether any agent stands on p.
func (s State) Occupied(p Position) bool {
	_, ok := s.At(p)

	return ok
}

// Move returns a successor in which agent i stands on to and is marked as
// moved. The receiver is not modified. No legality check is performed;
// see package moves for that.
func (s State) Move(i int, to Position) State {
	s.agents[i].Pos = to
	s.agents[i].Moved = true

	return s
}

// IsGoal reports whether every agent is inside its own home room.
func (s State) IsGoal() bool {
	for i := 0; i < s.n; i++ {
		a := s.agents[i]
		if a.Pos.Col != a.Kind.HomeColumn() || !s.layout.IsRoomRow(a.Pos.Row) {
			return false
		}
	}

	return true
}

// Settled reports whether agent i is in its home room with only its own
// kind below it. A settled agent never has to move again.
func (s State) Settled(i int) bool {
	a := s.agents[i]
	if a.Pos.Col != a.Kind.HomeColumn() || !s.layout.IsRoomRow(a.Pos.Row) {
		return false
	}
	for r := a.Pos.Row + 1; r <= s.layout.LastRoomRow(); r++ {
		b, ok := s.At(Position{Row: r, Col: a.Pos.Col})
		if !ok || b.Kind != a.Kind {
			return false
		}
	}

	return true
}

// Key returns the canonical encoding of s.
func (s State) Key() Key {
	var k Key
	for i := 0; i < s.n; i++ {
		a := s.agents[i]
		idx, _ := s.layout.CellIndex(a.Pos)
		code := 1 + 2*byte(a.Kind)
		if a.Moved {
			code++
		}
		k[idx] = code
	}

	return k
}

// Equal reports whether s and o describe the same configuration,
// independent of agent storage order.
func (s State) Equal(o State) bool {
	return s.layout == o.layout && s.Key() == o.Key()
}

// String renders the burrow in the puzzle's grid notation.
func (s State) String() string {
	rows := make([][]byte, 0, s.layout.depth+3)
	rows = append(rows, []byte("#############"), []byte("#...........#"))
	for r := FirstRoomRow; r <= s.layout.LastRoomRow(); r++ {
		if r == FirstRoomRow {
			rows = append(rows, []byte("###.#.#.#.###"))
		} else {
			rows = append(rows, []byte("  #.#.#.#.#  "))
		}
	}
	rows = append(rows, []byte("  #########  "))

	for i := 0; i < s.n; i++ {
		a := s.agents[i]
		rows[a.Pos.Row][a.Pos.Col] = byte(a.Kind.Rune())
	}

	var sb strings.Builder
	for _, row := range rows {
		sb.WriteString(strings.TrimRight(string(row), " "))
		sb.WriteByte('\n')
	}

	return sb.String()
}
