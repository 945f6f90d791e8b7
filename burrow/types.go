package burrow

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by layout and state construction.
var (
	// ErrDepth indicates a room depth outside [1, MaxDepth].
	ErrDepth = errors.New("burrow: room depth out of range")

	// ErrMalformedGrid indicates the textual grid cannot describe a burrow.
	ErrMalformedGrid = errors.New("burrow: malformed grid")

	// ErrIllegalCell indicates an agent positioned outside the legal cells.
	ErrIllegalCell = errors.New("burrow: agent on illegal cell")

	// ErrAgentCount indicates the number of agents does not fill the rooms exactly.
	ErrAgentCount = errors.New("burrow: agent count does not match layout")

	// ErrKindCount indicates a kind that cannot exactly fill its home room.
	ErrKindCount = errors.New("burrow: kind count does not match room depth")

	// ErrOverlap indicates two agents occupying the same cell.
	ErrOverlap = errors.New("burrow: two agents share a cell")
)

const (
	// NumKinds is the number of agent kinds (and rooms).
	NumKinds = 4

	// MaxDepth is the deepest supported room.
	MaxDepth = 4

	// MaxAgents is the capacity of a State.
	MaxAgents = NumKinds * MaxDepth

	// HallwayRow is the grid row of the hallway.
	HallwayRow = 1

	// FirstRoomRow is the topmost room row.
	FirstRoomRow = 2

	// HallwayFirstCol and HallwayLastCol bound the hallway columns.
	HallwayFirstCol = 1
	HallwayLastCol  = 11

	hallwayLen = HallwayLastCol - HallwayFirstCol + 1

	// KeySize is the number of cells encoded in a Key.
	KeySize = hallwayLen + NumKinds*MaxDepth
)

// Position is a cell of the burrow grid. Row 0 is the top wall.
type Position struct {
	Row int
	Col int
}

// Distance returns the Manhattan distance between p and q.
func Distance(p, q Position) int {
	return abs(p.Row-q.Row) + abs(p.Col-q.Col)
}

// String renders the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

// Kind is the type of an amphipod.
type Kind uint8

const (
	Amber  Kind = iota // A, home column 3, energy 1
	Bronze             // B, home column 5, energy 10
	Copper             // C, home column 7, energy 100
	Desert             // D, home column 9, energy 1000
)

var kindEnergy = [NumKinds]int{1, 10, 100, 1000}

// Energy returns the cost of a single step for this kind.
func (k Kind) Energy() int { return kindEnergy[k] }

// HomeColumn returns the grid column of the kind's home room.
func (k Kind) HomeColumn() int { return 3 + 2*int(k) }

// Rune returns the grid marker of the kind.
func (k Kind) Rune() rune { return rune('A' + k) }

func (k Kind) String() string { return string(k.Rune()) }

// KindFromRune maps 'A'..'D' to a Kind. ok is false for any other rune.
func KindFromRune(r rune) (k Kind, ok bool) {
	if r < 'A' || r > 'D' {
		return 0, false
	}

	return Kind(r - 'A'), true
}

// Agent is a single amphipod.
//
// Moved records that the agent has left its starting room; such an agent
// may only travel once more, into its home room.
type Agent struct {
	Kind  Kind
	Pos   Position
	Moved bool
}
