package maze

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Returns a maze wrapping the given rows, failing the test on error.
func mustMaze(t *testing.T, rows []string, start, end Coord) *Maze {
	t.Helper()
	g, e := NewGridFromStrings(rows)
	require.NoError(t, e)
	m, e := NewMaze(g, start, end)
	require.NoError(t, e)
	return m
}

// Returns the number of cells in the shortest simple path from start to end,
// found by trying every simple path. Returns 0 if there is no path.
func exhaustiveShortest(g *Grid, start, end Coord) int {
	best := 0
	onPath := make(map[Coord]bool)
	var walk func(c Coord, length int)
	walk = func(c Coord, length int) {
		if c == end {
			if (best == 0) || (length < best) {
				best = length
			}
			return
		}
		onPath[c] = true
		for _, n := range g.Neighbors(c) {
			if !onPath[n] {
				walk(n, length+1)
			}
		}
		onPath[c] = false
	}
	walk(start, 1)
	return best
}

// Fails the test if path isn't a simple path of adjacent open cells from
// start to end.
func checkPath(t *testing.T, g *Grid, path []Coord, start, end Coord) {
	t.Helper()
	require.NotEmpty(t, path)
	assert.Equal(t, start, path[0])
	assert.Equal(t, end, path[len(path)-1])
	seen := make(map[Coord]bool)
	for i, c := range path {
		assert.True(t, g.IsOpen(c), "%s is not open", c)
		assert.False(t, seen[c], "%s was visited twice", c)
		seen[c] = true
		if i != 0 {
			assert.True(t, path[i-1].IsAdjacent(c), "%s and %s aren't "+
				"adjacent", path[i-1], c)
		}
	}
}

func TestShortestPathMatchesExhaustiveSearch(t *testing.T) {
	for width := 2; width <= 10; width++ {
		for height := 2; height <= 10; height++ {
			m, e := NewMazeWithSeed(width, height, int64(width*100+height))
			require.NoError(t, e)
			if m.Start == m.End {
				continue
			}
			path, e := ShortestPath(m, m.Start, m.End)
			require.NoError(t, e)
			checkPath(t, m.Grid, path, m.Start, m.End)
			assert.Equal(t, exhaustiveShortest(m.Grid, m.Start, m.End),
				len(path), "%dx%d", width, height)
		}
	}
}

func TestShortestPathWithLoops(t *testing.T) {
	m := mustMaze(t, []string{
		"    ",
		" ## ",
		"    ",
		"#   ",
	}, Coord{Row: 0, Col: 0}, Coord{Row: 3, Col: 3})
	path, e := ShortestPath(m, m.Start, m.End)
	require.NoError(t, e)
	checkPath(t, m.Grid, path, m.Start, m.End)
	assert.Equal(t, exhaustiveShortest(m.Grid, m.Start, m.End), len(path))
	assert.Len(t, path, 7)
}

func TestShortestPathBetweenArbitraryCells(t *testing.T) {
	m, e := NewMazeWithSeed(9, 9, 5)
	require.NoError(t, e)
	start := m.End
	end := Coord{Row: 8, Col: 8}
	if start == end {
		end = Coord{Row: 0, Col: 8}
	}
	path, e := ShortestPath(m, start, end)
	require.NoError(t, e)
	checkPath(t, m.Grid, path, start, end)
}

func TestSearchBlockedEndpoint(t *testing.T) {
	m, e := NewMazeWithSeed(7, 7, 42)
	require.NoError(t, e)
	// Odd rows and columns never hold rooms, so (1, 1) is always a wall.
	wall := Coord{Row: 1, Col: 1}
	require.False(t, m.Grid.IsOpen(wall))
	tests := []struct {
		name       string
		start, end Coord
	}{
		{"wall start", wall, m.End},
		{"wall end", m.Start, wall},
		{"off-grid start", Coord{Row: -1, Col: 0}, m.End},
		{"off-grid end", m.Start, Coord{Row: 0, Col: 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, e := ShortestPath(m, tt.start, tt.end)
			assert.True(t, errors.Is(e, ErrBlockedEndpoint), "%v", e)
			_, e = NewBFS(m, tt.start, tt.end)
			assert.True(t, errors.Is(e, ErrBlockedEndpoint), "%v", e)
		})
	}
}

func TestSearchSameEndpoints(t *testing.T) {
	m, e := NewMazeWithSeed(5, 5, 42)
	require.NoError(t, e)
	path, e := ShortestPath(m, m.End, m.End)
	assert.Nil(t, path)
	assert.True(t, errors.Is(e, ErrSameEndpoints), "%v", e)
}

func TestSearchNotFound(t *testing.T) {
	m := mustMaze(t, []string{"  #  "}, Coord{Row: 0, Col: 0},
		Coord{Row: 0, Col: 4})
	result, e := Search(m, m.Start, m.End)
	assert.True(t, errors.Is(e, ErrNotFound), "%v", e)
	require.NotNil(t, result)
	assert.False(t, result.Found)
	assert.Nil(t, result.Path)
	assert.Equal(t, []Coord{{0, 0}, {0, 1}}, result.VisitedInOrder)

	_, e = ShortestPath(m, m.Start, m.End)
	assert.True(t, errors.Is(e, ErrNotFound), "%v", e)
}

func TestSearchVisitOrder(t *testing.T) {
	m := mustMaze(t, []string{
		"   ",
		" # ",
		"   ",
	}, Coord{Row: 0, Col: 0}, Coord{Row: 2, Col: 2})
	result, e := Search(m, m.Start, m.End)
	require.NoError(t, e)
	assert.True(t, result.Found)
	// Neighbors are queued east, west, north, south, so the two branches
	// alternate.
	expected := []Coord{
		{0, 0},
		{0, 1}, {1, 0},
		{0, 2}, {2, 0},
		{1, 2}, {2, 1},
		{2, 2},
	}
	if diff := cmp.Diff(expected, result.VisitedInOrder); diff != "" {
		t.Errorf("Wrong visit order (-want +got):\n%s", diff)
	}
	assert.Equal(t, []Coord{{0, 0}, {0, 1}, {0, 2}, {1, 2}, {2, 2}},
		result.Path)
}

func TestSearchPredecessors(t *testing.T) {
	m, e := NewMazeWithSeed(11, 11, 17)
	require.NoError(t, e)
	result, e := Search(m, m.Start, m.End)
	require.NoError(t, e)
	_, ok := result.Predecessor(m.Start)
	assert.False(t, ok, "the start has no predecessor")
	_, ok = result.Predecessor(Coord{Row: 1, Col: 1})
	assert.False(t, ok, "walls are never reached")
	_, ok = result.Predecessor(Coord{Row: -1, Col: 1})
	assert.False(t, ok)
	for i := 1; i < len(result.Path); i++ {
		p, ok := result.Predecessor(result.Path[i])
		require.True(t, ok)
		assert.Equal(t, result.Path[i-1], p)
	}
	// Everything visited other than the start was reached from somewhere.
	for _, c := range result.VisitedInOrder[1:] {
		_, ok := result.Predecessor(c)
		assert.True(t, ok, "%s", c)
	}
}

func TestBFSStepMatchesSearch(t *testing.T) {
	m, e := NewMazeWithSeed(25, 19, 2024)
	require.NoError(t, e)
	result, e := Search(m, m.Start, m.End)
	require.NoError(t, e)

	b, e := NewBFS(m, m.Start, m.End)
	require.NoError(t, e)
	_, e = b.Path()
	assert.True(t, errors.Is(e, ErrNotFound), "no path before stepping")
	var stepped []Coord
	for !b.Done() {
		c, ok := b.Step()
		if !ok {
			break
		}
		stepped = append(stepped, c)
		assert.Equal(t, stepped, b.Visited())
	}
	assert.True(t, b.Found())
	assert.Equal(t, result.VisitedInOrder, stepped)
	assert.Equal(t, m.End, stepped[len(stepped)-1])
	path, e := b.Path()
	require.NoError(t, e)
	assert.Equal(t, result.Path, path)

	// Stepping a finished search does nothing.
	_, ok := b.Step()
	assert.False(t, ok)
	assert.Len(t, b.Visited(), len(stepped))
}

func TestBFSLargeCorridor(t *testing.T) {
	// Long enough to compact the queue several times.
	m, e := NewMazeWithSeed(1, 9999, 1)
	require.NoError(t, e)
	path, e := ShortestPath(m, m.Start, m.End)
	require.NoError(t, e)
	assert.Len(t, path, 9999)
}

func TestSearchDoesNotModifyMaze(t *testing.T) {
	m, e := NewMazeWithSeed(13, 13, 77)
	require.NoError(t, e)
	before := m.Grid.String()
	_, e = Search(m, m.Start, m.End)
	require.NoError(t, e)
	assert.Equal(t, before, m.Grid.String())
}

func TestEndToEndScenario(t *testing.T) {
	m, e := NewMazeWithSeed(5, 5, 42)
	require.NoError(t, e)
	assert.Equal(t, Coord{Row: 0, Col: 0}, m.Start)
	assert.True(t, m.Grid.IsOpen(m.End))
	_, reachable := floodDistances(m.Grid, m.Start)[m.End]
	assert.True(t, reachable)
	require.NotEqual(t, m.Start, m.End)

	path, e := ShortestPath(m, m.Start, m.End)
	require.NoError(t, e)
	assert.Equal(t, Coord{Row: 0, Col: 0}, path[0])
	assert.Equal(t, m.End, path[len(path)-1])

	v := NewValidator(m)
	var result StepResult
	for i, c := range path {
		result, e = v.TryExtend(c)
		require.NoError(t, e)
		assert.True(t, result.Accepted)
		assert.Equal(t, i == len(path)-1, result.Complete)
	}
	assert.True(t, result.Complete)
	assert.Equal(t, path, v.Path())
}
