// Package burrow models the amphipod burrow: a single hallway row with four
// rooms hanging below it, and the agents (amphipods) that must be sorted
// into their home rooms.
//
// What:
//
//   - Layout describes the fixed topology: hallway cells, room cells, the
//     hallway stopping columns and the home column of every Kind.
//   - State is a fixed-capacity snapshot of every agent in the burrow.
//     It is a plain value: copying a State yields an independent successor.
//   - Key is a canonical, permutation-invariant encoding of a State used
//     for visited sets and memo tables.
//
// Geometry (depth 2):
//
//	#############    row 0 (wall)
//	#...........#    row 1 (hallway, columns 1..11)
//	###B#C#B#D###    row 2 (room row)
//	  #A#D#C#A#      row 3 (room row)
//	  #########      closing wall
//
// Room columns are 3, 5, 7 and 9 (home of A, B, C and D respectively).
// Agents may never stop in the hallway directly above a room entrance.
//
// Complexity:
//
//   - Parse:   O(R×C) over the input grid.
//   - Key:     O(n) with n ≤ MaxAgents.
//   - IsGoal:  O(n).
//
// Errors:
//
//   - ErrDepth:         room depth outside [1, MaxDepth].
//   - ErrMalformedGrid: grid too short to contain a hallway and a room row.
//   - ErrIllegalCell:   an agent sits on a wall or outside the burrow.
//   - ErrAgentCount:    agent count differs from 4×depth.
//   - ErrKindCount:     a kind does not appear exactly depth times.
//   - ErrOverlap:       two agents share a cell.
package burrow
