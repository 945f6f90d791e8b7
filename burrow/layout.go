package burrow

import "fmt"

// stops lists the hallway columns an agent may stop on.
// The columns directly above the room entrances (3, 5, 7, 9) are excluded.
var stops = [...]int{1, 2, 4, 6, 8, 10, 11}

// Layout is the static topology of a burrow with rooms of a given depth.
// The zero value is not usable; construct with NewLayout.
type Layout struct {
	depth int
}

// NewLayout returns the layout for rooms of the given depth.
// Returns ErrDepth unless 1 ≤ depth ≤ MaxDepth.
func NewLayout(depth int) (Layout, error) {
	if depth < 1 || depth > MaxDepth {
		return Layout{}, fmt.Errorf("%w: %d", ErrDepth, depth)
	}

	return Layout{depth: depth}, nil
}

// Depth returns the number of rows in every room.
func (l Layout) Depth() int { return l.depth }

// Agents returns the number of agents a state on this layout holds.
func (l Layout) Agents() int { return NumKinds * l.depth }

// LastRoomRow returns the bottom room row.
func (l Layout) LastRoomRow() int { return FirstRoomRow + l.depth - 1 }

// HomeColumn returns the room column assigned to k.
func (l Layout) HomeColumn(k Kind) int { return k.HomeColumn() }

// Stops returns the hallway columns agents may stop on, in ascending order.
func (l Layout) Stops() []int {
	out := make([]int, len(stops))
	copy(out, stops[:])

	return out
}

// IsRoomRow reports whether row lies inside the rooms.
func (l Layout) IsRoomRow(row int) bool {
	return row >= FirstRoomRow && row <= l.LastRoomRow()
}

// IsHallway reports whether p is a hallway cell.
func (l Layout) IsHallway(p Position) bool {
	return p.Row == HallwayRow && p.Col >= HallwayFirstCol && p.Col <= HallwayLastCol
}

// IsRoom reports whether p is a room cell.
func (l Layout) IsRoom(p Position) bool {
	return l.IsRoomRow(p.Row) && roomOf(p.Col) >= 0
}

// Contains reports whether p is a legal cell of the burrow.
func (l Layout) Contains(p Position) bool {
	return l.IsHallway(p) || l.IsRoom(p)
}

// IsEntrance reports whether p is the hallway cell directly above a room.
func (l Layout) IsEntrance(p Position) bool {
	return p.Row == HallwayRow && roomOf(p.Col) >= 0
}

// Room returns the kind whose home column is col. ok is false for
// columns that hold no room.
func (l Layout) Room(col int) (k Kind, ok bool) {
	r := roomOf(col)
	if r < 0 {
		return 0, false
	}

	return Kind(r), true
}

// CellIndex maps a legal cell to a dense index in [0, KeySize).
// Hallway cells come first, followed by rooms in kind order, top to bottom.
// ok is false for cells outside the layout.
func (l Layout) CellIndex(p Position) (idx int, ok bool) {
	if l.IsHallway(p) {
		return p.Col - HallwayFirstCol, true
	}
	if l.IsRoom(p) {
		return hallwayLen + roomOf(p.Col)*MaxDepth + (p.Row - FirstRoomRow), true
	}

	return 0, false
}

// Cells returns every legal cell: the hallway left to right, then each
// room top to bottom.
func (l Layout) Cells() []Position {
	out := make([]Position, 0, hallwayLen+NumKinds*l.depth)
	for c := HallwayFirstCol; c <= HallwayLastCol; c++ {
		out = append(out, Position{Row: HallwayRow, Col: c})
	}
	for k := Kind(0); k < NumKinds; k++ {
		for r := FirstRoomRow; r <= l.LastRoomRow(); r++ {
			out = append(out, Position{Row: r, Col: k.HomeColumn()})
		}
	}

	return out
}

// roomOf returns the room index for a column, or -1.
func roomOf(col int) int {
	if col < 3 || col > 9 || col%2 == 0 {
		return -1
	}

	return (col - 3) / 2
}
