package burrow

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// extraRows are spliced into a depth-2 diagram to unfold the full burrow.
var extraRows = [...]string{
	"  #D#C#B#A#",
	"  #D#B#A#C#",
}

// ReadLines reads the grid from r, one string per line, dropping trailing
// blank lines.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("burrow: read grid: %w", err)
	}

	return trimBlank(lines), nil
}

// Extend unfolds a diagram by inserting the two hidden rows immediately
// before its last two lines. The input slice is not modified.
func Extend(lines []string) ([]string, error) {
	lines = trimBlank(lines)
	if len(lines) < 2 {
		return nil, fmt.Errorf("%w: %d lines, cannot extend", ErrMalformedGrid, len(lines))
	}
	cut := len(lines) - 2
	out := make([]string, 0, len(lines)+len(extraRows))
	out = append(out, lines[:cut]...)
	out = append(out, extraRows[:]...)
	out = append(out, lines[cut:]...)

	return out, nil
}

// Parse builds a State from the textual grid.
//
// Every 'A'..'D' becomes an agent at its (row, column); walls, floor and
// any other character are ignored. The room depth is the number of rows
// between the hallway row and the closing wall.
//
// Errors: ErrMalformedGrid, ErrDepth, ErrIllegalCell, ErrAgentCount,
// ErrKindCount (all wrapped with context).
func Parse(lines []string) (State, error) {
	lines = trimBlank(lines)
	if len(lines) < 4 {
		return State{}, fmt.Errorf("%w: need at least 4 rows, got %d", ErrMalformedGrid, len(lines))
	}
	if len(lines[HallwayRow]) <= HallwayLastCol {
		return State{}, fmt.Errorf("%w: hallway row too short", ErrMalformedGrid)
	}

	l, err := NewLayout(len(lines) - 3)
	if err != nil {
		return State{}, err
	}

	agents := make([]Agent, 0, l.Agents())
	for row, line := range lines {
		for col, ch := range line {
			k, ok := KindFromRune(ch)
			if !ok {
				continue
			}
			p := Position{Row: row, Col: col}
			if !l.Contains(p) {
				return State{}, fmt.Errorf("%w: %c at %s", ErrIllegalCell, ch, p)
			}
			agents = append(agents, Agent{Kind: k, Pos: p})
		}
	}

	return New(l, agents)
}

// ParseString is Parse over a newline-separated grid. Leading and trailing
// newlines are ignored.
func ParseString(grid string) (State, error) {
	return Parse(strings.Split(strings.Trim(grid, "\n"), "\n"))
}

func trimBlank(lines []string) []string {
	end := len(lines)
	for end > 0 && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}

	return lines[:end]
}
