package burrow_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/amphipod/burrow"
)

const (
	example = `#############
#...........#
###B#C#B#D###
  #A#D#C#A#
  #########`

	sorted = `#############
#...........#
###A#B#C#D###
  #A#B#C#D#
  #########`
)

func mustParse(t *testing.T, grid string) burrow.State {
	t.Helper()
	s, err := burrow.ParseString(grid)
	require.NoError(t, err)

	return s
}

// ------------------------------------------------------------------------
// 1. Positions and kinds
// ------------------------------------------------------------------------

func TestDistance_Properties(t *testing.T) {
	pts := []burrow.Position{
		{Row: 1, Col: 1}, {Row: 1, Col: 11}, {Row: 2, Col: 3},
		{Row: 5, Col: 9}, {Row: 3, Col: 7}, {Row: 13, Col: 42},
	}
	for _, p := range pts {
		assert.Equal(t, 0, burrow.Distance(p, p), "distance to self of %s", p)
		for _, q := range pts {
			assert.Equal(t, burrow.Distance(p, q), burrow.Distance(q, p), "%s vs %s", p, q)
			if p != q {
				assert.Positive(t, burrow.Distance(p, q))
			}
		}
	}
}

func TestDistance_Manhattan(t *testing.T) {
	assert.Equal(t, 3, burrow.Distance(burrow.Position{Row: 2, Col: 2}, burrow.Position{Row: 2, Col: 5}))
	assert.Equal(t, 5, burrow.Distance(burrow.Position{Row: 1, Col: 5}, burrow.Position{Row: 3, Col: 2}))
}

func TestKind_Attributes(t *testing.T) {
	tests := []struct {
		r      rune
		kind   burrow.Kind
		energy int
		home   int
	}{
		{'A', burrow.Amber, 1, 3},
		{'B', burrow.Bronze, 10, 5},
		{'C', burrow.Copper, 100, 7},
		{'D', burrow.Desert, 1000, 9},
	}
	for _, tt := range tests {
		k, ok := burrow.KindFromRune(tt.r)
		require.True(t, ok)
		assert.Equal(t, tt.kind, k)
		assert.Equal(t, tt.energy, k.Energy())
		assert.Equal(t, tt.home, k.HomeColumn())
		assert.Equal(t, string(tt.r), k.String())
	}
	for _, r := range []rune{'.', '#', 'E', 'a', ' '} {
		_, ok := burrow.KindFromRune(r)
		assert.False(t, ok, "rune %q", r)
	}
}

// ------------------------------------------------------------------------
// 2. Layout
// ------------------------------------------------------------------------

func TestNewLayout_Depth(t *testing.T) {
	for _, d := range []int{0, -1, burrow.MaxDepth + 1} {
		_, err := burrow.NewLayout(d)
		assert.ErrorIs(t, err, burrow.ErrDepth, "depth %d", d)
	}
	l, err := burrow.NewLayout(4)
	require.NoError(t, err)
	assert.Equal(t, 4, l.Depth())
	assert.Equal(t, 16, l.Agents())
	assert.Equal(t, 5, l.LastRoomRow())
}

func TestLayout_Cells(t *testing.T) {
	l, _ := burrow.NewLayout(2)
	cells := l.Cells()
	require.Len(t, cells, 11+8)

	seen := make(map[int]bool)
	for _, p := range cells {
		require.True(t, l.Contains(p), "cell %s", p)
		idx, ok := l.CellIndex(p)
		require.True(t, ok)
		require.False(t, seen[idx], "duplicate index %d", idx)
		seen[idx] = true
	}

	assert.True(t, l.IsHallway(burrow.Position{Row: 1, Col: 1}))
	assert.True(t, l.IsEntrance(burrow.Position{Row: 1, Col: 5}))
	assert.False(t, l.IsEntrance(burrow.Position{Row: 1, Col: 6}))
	assert.True(t, l.IsRoom(burrow.Position{Row: 3, Col: 9}))
	assert.False(t, l.IsRoom(burrow.Position{Row: 4, Col: 9}), "below depth")
	assert.False(t, l.Contains(burrow.Position{Row: 2, Col: 4}), "wall between rooms")
	assert.False(t, l.Contains(burrow.Position{Row: 0, Col: 3}), "top wall")
	_, ok := l.CellIndex(burrow.Position{Row: 2, Col: 2})
	assert.False(t, ok)

	assert.Equal(t, []int{1, 2, 4, 6, 8, 10, 11}, l.Stops())
	for _, c := range l.Stops() {
		assert.False(t, l.IsEntrance(burrow.Position{Row: 1, Col: c}))
	}
	k, ok := l.Room(7)
	require.True(t, ok)
	assert.Equal(t, burrow.Copper, k)
	_, ok = l.Room(8)
	assert.False(t, ok)
}

// ------------------------------------------------------------------------
// 3. Parsing and construction
// ------------------------------------------------------------------------

func TestParse_Example(t *testing.T) {
	s := mustParse(t, example)
	require.Equal(t, 8, s.Len())
	assert.Equal(t, 2, s.Layout().Depth())

	a, ok := s.At(burrow.Position{Row: 2, Col: 3})
	require.True(t, ok)
	assert.Equal(t, burrow.Bronze, a.Kind)
	assert.False(t, a.Moved)

	a, ok = s.At(burrow.Position{Row: 3, Col: 9})
	require.True(t, ok)
	assert.Equal(t, burrow.Amber, a.Kind)

	assert.False(t, s.Occupied(burrow.Position{Row: 1, Col: 4}))
}

func TestParse_IgnoresUnknownTokens(t *testing.T) {
	grid := strings.Replace(example, "#...", "#?x.", 1)
	s, err := burrow.ParseString(grid + "\n\n")
	require.NoError(t, err)
	assert.True(t, s.Equal(mustParse(t, example)))
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		grid string
		want error
	}{
		{"too short", "#############\n#...........#", burrow.ErrMalformedGrid},
		{"short hallway", "###\n#.#\n#A#\n###", burrow.ErrMalformedGrid},
		{"too deep", strings.Repeat("  #A#B#C#D#\n", 5), burrow.ErrDepth},
		{"agent on wall", strings.Replace(sorted, "###A", "#A#A", 1), burrow.ErrIllegalCell},
		{"missing agent", strings.Replace(sorted, "#D#\n", "#.#\n", 1), burrow.ErrAgentCount},
		{"wrong mix", strings.Replace(sorted, "###A", "###B", 1), burrow.ErrKindCount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := tt.grid
			if tt.name == "too deep" {
				grid = "#############\n#...........#\n" + grid + "  #########"
			}
			_, err := burrow.ParseString(grid)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v, want %v", err, tt.want)
		})
	}
}

func TestNew_Overlap(t *testing.T) {
	l, _ := burrow.NewLayout(1)
	agents := []burrow.Agent{
		{Kind: burrow.Amber, Pos: burrow.Position{Row: 2, Col: 3}},
		{Kind: burrow.Bronze, Pos: burrow.Position{Row: 2, Col: 3}},
		{Kind: burrow.Copper, Pos: burrow.Position{Row: 2, Col: 7}},
		{Kind: burrow.Desert, Pos: burrow.Position{Row: 2, Col: 9}},
	}
	_, err := burrow.New(l, agents)
	assert.ErrorIs(t, err, burrow.ErrOverlap)

	_, err = burrow.New(burrow.Layout{}, agents)
	assert.ErrorIs(t, err, burrow.ErrDepth)
}

func TestExtend(t *testing.T) {
	lines := strings.Split(example, "\n")
	out, err := burrow.Extend(lines)
	require.NoError(t, err)
	require.Len(t, out, len(lines)+2)
	assert.Equal(t, "  #D#C#B#A#", out[3])
	assert.Equal(t, "  #D#B#A#C#", out[4])
	assert.Equal(t, lines[3], out[5])
	assert.Len(t, lines, 5, "input must not be modified")

	s, err := burrow.Parse(out)
	require.NoError(t, err)
	assert.Equal(t, 16, s.Len())
	assert.Equal(t, 4, s.Layout().Depth())

	_, err = burrow.Extend([]string{"#"})
	assert.ErrorIs(t, err, burrow.ErrMalformedGrid)
}

func TestReadLines(t *testing.T) {
	lines, err := burrow.ReadLines(strings.NewReader(strings.ReplaceAll(example, "\n", "\r\n") + "\r\n\r\n"))
	require.NoError(t, err)
	assert.Equal(t, strings.Split(example, "\n"), lines)
}

// ------------------------------------------------------------------------
// 4. Goal predicate, moves and keys
// ------------------------------------------------------------------------

func TestIsGoal(t *testing.T) {
	assert.True(t, mustParse(t, sorted).IsGoal())
	assert.False(t, mustParse(t, example).IsGoal())

	// One agent in the hallway, one room slot free.
	s := mustParse(t, `#############
#.A.........#
###.#B#C#D###
  #A#B#C#D#
  #########`)
	assert.False(t, s.IsGoal())

	for i := 0; i < s.Len(); i++ {
		if s.Agent(i).Pos.Row == burrow.HallwayRow {
			assert.True(t, s.Move(i, burrow.Position{Row: 2, Col: 3}).IsGoal())
		}
	}
}

// TestIsGoal_MatchesDefinition checks the predicate against its definition on
// every single-agent displacement of the sorted burrow.
func TestIsGoal_MatchesDefinition(t *testing.T) {
	s := mustParse(t, sorted)
	l := s.Layout()
	for i := 0; i < s.Len(); i++ {
		for _, p := range l.Cells() {
			if s.Occupied(p) {
				continue
			}
			next := s.Move(i, p)
			want := true
			for _, a := range next.Agents() {
				if a.Pos.Col != a.Kind.HomeColumn() || !l.IsRoomRow(a.Pos.Row) {
					want = false
				}
			}
			assert.Equal(t, want, next.IsGoal(), "agent %d to %s", i, p)
		}
	}
}

func TestMove_DoesNotAlias(t *testing.T) {
	s := mustParse(t, example)
	to := burrow.Position{Row: 1, Col: 1}
	next := s.Move(0, to)

	assert.Equal(t, to, next.Agent(0).Pos)
	assert.True(t, next.Agent(0).Moved)
	assert.NotEqual(t, to, s.Agent(0).Pos)
	assert.False(t, s.Agent(0).Moved)
	assert.False(t, s.Equal(next))
}

func TestKey_PermutationInvariant(t *testing.T) {
	s := mustParse(t, example)
	agents := s.Agents()

	// Reverse storage order.
	rev := make([]burrow.Agent, len(agents))
	for i, a := range agents {
		rev[len(agents)-1-i] = a
	}
	r, err := burrow.New(s.Layout(), rev)
	require.NoError(t, err)

	assert.True(t, s.Equal(r))
	assert.Equal(t, s.Key(), r.Key())
}

func TestKey_SameKindSwap(t *testing.T) {
	s := mustParse(t, example)
	agents := s.Agents()

	var bronze []int
	for i, a := range agents {
		if a.Kind == burrow.Bronze {
			bronze = append(bronze, i)
		}
	}
	require.Len(t, bronze, 2)
	i, j := bronze[0], bronze[1]
	agents[i].Pos, agents[j].Pos = agents[j].Pos, agents[i].Pos

	swapped, err := burrow.New(s.Layout(), agents)
	require.NoError(t, err)
	assert.NotEqual(t, s.Agent(i).Pos, swapped.Agent(i).Pos)
	assert.Equal(t, s.Key(), swapped.Key())
	assert.True(t, s.Equal(swapped))
}

// The has-left-room flag is part of a configuration.
func TestKey_MovedFlagDistinguishes(t *testing.T) {
	s := mustParse(t, example)
	agents := s.Agents()
	agents[0].Moved = true

	marked, err := burrow.New(s.Layout(), agents)
	require.NoError(t, err)
	for i := 0; i < s.Len(); i++ {
		assert.Equal(t, s.Agent(i).Pos, marked.Agent(i).Pos)
	}
	assert.NotEqual(t, s.Key(), marked.Key())
	assert.False(t, s.Equal(marked))
}

func TestKey_DistinguishesConfigurations(t *testing.T) {
	s := mustParse(t, example)
	seen := map[burrow.Key]burrow.Position{}
	for _, c := range s.Layout().Stops() {
		p := burrow.Position{Row: burrow.HallwayRow, Col: c}
		k := s.Move(0, p).Key()
		_, dup := seen[k]
		require.False(t, dup, "key collision for %s", p)
		seen[k] = p
	}
}

func TestSettled(t *testing.T) {
	s := mustParse(t, example)
	for i := 0; i < s.Len(); i++ {
		a := s.Agent(i)
		switch a.Pos {
		case burrow.Position{Row: 3, Col: 3}, burrow.Position{Row: 3, Col: 7}:
			assert.True(t, s.Settled(i), "%s at %s", a.Kind, a.Pos)
		default:
			assert.False(t, s.Settled(i), "%s at %s", a.Kind, a.Pos)
		}
	}
}

func TestString_RoundTrip(t *testing.T) {
	for _, grid := range []string{example, sorted} {
		s := mustParse(t, grid)
		back := mustParse(t, s.String())
		assert.True(t, s.Equal(back))
	}
	assert.Equal(t, example+"\n", mustParse(t, example).String())
}
