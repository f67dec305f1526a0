package maze

import (
	"fmt"
	"math/rand"
	"time"
)

// A generated (or externally supplied) grid along with the cells where a path
// through it starts and ends. Both endpoints are always open. Nothing in this
// library modifies a Maze's grid after it has been created, so a Maze can be
// shared between any number of solvers and validators.
type Maze struct {
	Grid  *Grid
	Start Coord
	End   Coord
	// The seed used to generate the maze. Zero if the maze wasn't generated
	// by NewMazeWithSeed.
	Seed int64
}

// One room on the explicit DFS stack used by Generate.
type carveFrame struct {
	room Coord
	// The room's directions, in the random order they'll be tried.
	order [4]Coord
	// The index in order of the next direction to try.
	next int
	// The number of edges between this room and the start room.
	depth int
}

// Returns a frame for room with a freshly shuffled direction order.
func newCarveFrame(room Coord, depth int, rng *rand.Rand) carveFrame {
	toReturn := carveFrame{
		room:  room,
		order: directions,
		depth: depth,
	}
	rng.Shuffle(len(toReturn.order), func(i, j int) {
		toReturn.order[i], toReturn.order[j] = toReturn.order[j],
			toReturn.order[i]
	})
	return toReturn
}

// Generates a perfect maze with the given dimensions, using rng as the only
// source of randomness. Rooms sit at even (row, col) coordinates, and the
// cells between them are walls until the carving passes through them. The
// maze starts at (0, 0) and ends at the first room the carving reached at its
// greatest depth. If the width or height is even, the last column or row will
// be entirely walls.
func Generate(width, height int, rng *rand.Rand) (*Maze, error) {
	if rng == nil {
		return nil, fmt.Errorf("a random source is required")
	}
	grid, e := newGrid(width, height)
	if e != nil {
		return nil, e
	}
	start := Coord{Row: 0, Col: 0}
	end := start
	maxDepth := 0
	grid.set(start, Open)

	// Each room is pushed exactly once, when it's carved, so the stack never
	// holds more frames than there are rooms.
	stack := make([]carveFrame, 0, 64)
	stack = append(stack, newCarveFrame(start, 0, rng))
	for len(stack) != 0 {
		current := &(stack[len(stack)-1])
		if current.next >= len(current.order) {
			// Every direction from this room was tried, so backtrack.
			stack = stack[:len(stack)-1]
			continue
		}
		d := current.order[current.next]
		current.next++
		dst := Coord{
			Row: current.room.Row + 2*d.Row,
			Col: current.room.Col + 2*d.Col,
		}
		if !grid.InBounds(dst) || grid.IsOpen(dst) {
			continue
		}
		grid.set(Coord{
			Row: current.room.Row + d.Row,
			Col: current.room.Col + d.Col,
		}, Open)
		grid.set(dst, Open)
		depth := current.depth + 1
		// Ties go to whichever room got there first.
		if depth > maxDepth {
			maxDepth = depth
			end = dst
		}
		// Note that appending may invalidate current.
		stack = append(stack, newCarveFrame(dst, depth, rng))
	}

	toReturn := &Maze{
		Grid:  grid,
		Start: start,
		End:   end,
	}
	return toReturn, nil
}

// Generates a maze using a random generator seeded with the given seed. If
// the seed is not positive, a new seed will be selected based on the current
// time in nanoseconds. The seed that was used is stored in the returned maze.
func NewMazeWithSeed(width, height int, seed int64) (*Maze, error) {
	if seed <= 0 {
		seed = time.Now().UnixNano()
	}
	toReturn, e := Generate(width, height, rand.New(rand.NewSource(seed)))
	if e != nil {
		return nil, fmt.Errorf("Error generating maze: %w", e)
	}
	toReturn.Seed = seed
	return toReturn, nil
}

// Wraps a grid that didn't come from Generate, such as one loaded with
// NewGridFromStrings. The grid isn't required to be a perfect maze, but the
// start and end must both be open cells.
func NewMaze(grid *Grid, start, end Coord) (*Maze, error) {
	if grid == nil {
		return nil, fmt.Errorf("%w: no grid given", ErrInvalidDimensions)
	}
	if !grid.IsOpen(start) {
		return nil, fmt.Errorf("%w: start %s is not an open cell",
			ErrBlockedEndpoint, start)
	}
	if !grid.IsOpen(end) {
		return nil, fmt.Errorf("%w: end %s is not an open cell",
			ErrBlockedEndpoint, end)
	}
	return &Maze{
		Grid:  grid,
		Start: start,
		End:   end,
	}, nil
}

// Returns a human-readable string about the maze, for providing debug info
// such as the random seed.
func (m *Maze) Info() string {
	return fmt.Sprintf("%dx%d grid maze with random seed %d, %d open cells, "+
		"start %s, end %s", m.Grid.width, m.Grid.height, m.Seed,
		m.Grid.OpenCount(), m.Start, m.End)
}
