// This defines a library for generating 2D "perfect" mazes on a grid of wall
// and open cells, finding the shortest path through them, and checking paths
// drawn by a user.
package maze

import (
	"fmt"
	"strings"
)

// The state of a single grid cell.
type CellState uint8

const (
	Wall CellState = iota
	Open
)

func (s CellState) String() string {
	switch s {
	case Wall:
		return "wall"
	case Open:
		return "open"
	}
	return fmt.Sprintf("Unknown CellState: %d", uint8(s))
}

// A row and column in a Grid. Row 0 is the top, column 0 is the left.
type Coord struct {
	Row int
	Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Returns true if c and other differ by exactly 1 in either the row or the
// column, but not both. Diagonals aren't adjacent, and neither is c itself.
func (c Coord) IsAdjacent(other Coord) bool {
	rowDiff := c.Row - other.Row
	if rowDiff < 0 {
		rowDiff = -rowDiff
	}
	colDiff := c.Col - other.Col
	if colDiff < 0 {
		colDiff = -colDiff
	}
	return (rowDiff + colDiff) == 1
}

// The four axis directions, as row and column offsets. The order is east,
// west, north, south. Searches visit neighbors in this order.
var directions = [4]Coord{
	{Row: 0, Col: 1},
	{Row: 0, Col: -1},
	{Row: -1, Col: 0},
	{Row: 1, Col: 0},
}

// A 2D array of wall or open cells. Grids can't be modified outside of this
// package; they're built by Generate or NewGridFromStrings.
type Grid struct {
	width  int
	height int
	// Row-major; the cell at (row, col) is at index row*width + col.
	cells []CellState
}

// Allocates a grid where every cell is a wall.
func newGrid(width, height int) (*Grid, error) {
	if (width < 1) || (height < 1) {
		return nil, fmt.Errorf("%w: width and height must be at least 1, "+
			"got %dx%d", ErrInvalidDimensions, width, height)
	}
	cellCount := width * height
	// Check for overflow.
	if (cellCount <= 0) || ((cellCount / width) != height) {
		return nil, fmt.Errorf("%w: the maze's size was too big",
			ErrInvalidDimensions)
	}
	toReturn := &Grid{
		width:  width,
		height: height,
		cells:  make([]CellState, cellCount),
	}
	return toReturn, nil
}

// Builds a grid from rows of text, such as a maze that wasn't generated by
// this library. A '#' byte is a wall and any other byte is open. Every row
// must have the same, nonzero, length.
func NewGridFromStrings(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows given", ErrInvalidDimensions)
	}
	toReturn, e := newGrid(len(rows[0]), len(rows))
	if e != nil {
		return nil, e
	}
	for row, line := range rows {
		if len(line) != toReturn.width {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d",
				ErrInvalidDimensions, row, len(line), toReturn.width)
		}
		for col := 0; col < len(line); col++ {
			if line[col] != '#' {
				toReturn.cells[row*toReturn.width+col] = Open
			}
		}
	}
	return toReturn, nil
}

// Returns the number of columns in the grid.
func (g *Grid) Width() int {
	return g.width
}

// Returns the number of rows in the grid.
func (g *Grid) Height() int {
	return g.height
}

// Returns true if c is within the grid's bounds.
func (g *Grid) InBounds(c Coord) bool {
	return (c.Row >= 0) && (c.Col >= 0) && (c.Row < g.height) &&
		(c.Col < g.width)
}

// Returns the state of the cell at c. Anything outside the grid is a wall.
func (g *Grid) State(c Coord) CellState {
	if !g.InBounds(c) {
		return Wall
	}
	return g.cells[g.index(c)]
}

// Returns true if c is an open cell within the grid.
func (g *Grid) IsOpen(c Coord) bool {
	return g.State(c) == Open
}

// Returns the row-major index of c. c must be in bounds.
func (g *Grid) index(c Coord) int {
	return c.Row*g.width + c.Col
}

// Converts a row-major index back to a Coord.
func (g *Grid) coord(index int) Coord {
	return Coord{
		Row: index / g.width,
		Col: index % g.width,
	}
}

func (g *Grid) set(c Coord, s CellState) {
	g.cells[g.index(c)] = s
}

// Returns the open cells orthogonally adjacent to c, in east, west, north,
// south order.
func (g *Grid) Neighbors(c Coord) []Coord {
	toReturn := make([]Coord, 0, len(directions))
	for _, d := range directions {
		n := Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
		if g.IsOpen(n) {
			toReturn = append(toReturn, n)
		}
	}
	return toReturn
}

// Returns the number of open cells in the grid.
func (g *Grid) OpenCount() int {
	count := 0
	for _, s := range g.cells {
		if s == Open {
			count++
		}
	}
	return count
}

// Returns the number of pairs of orthogonally adjacent open cells. Each pair
// is only counted once.
func (g *Grid) EdgeCount() int {
	count := 0
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			c := Coord{Row: row, Col: col}
			if !g.IsOpen(c) {
				continue
			}
			// Only look right and down so each edge is seen once.
			if g.IsOpen(Coord{Row: row, Col: col + 1}) {
				count++
			}
			if g.IsOpen(Coord{Row: row + 1, Col: col}) {
				count++
			}
		}
	}
	return count
}

// Implements the disjoint set data structure from CLRS. Used by IsPerfect.
type disjointSet struct {
	parent *disjointSet
	rank   int
}

// Returns a new disjointSet containing only itself.
func newDisjointSet() *disjointSet {
	toReturn := disjointSet{
		rank: 0,
	}
	toReturn.parent = &toReturn
	return &toReturn
}

// Finds the unique "root" of a disjoint set. May adjust parent pointers.
func (s *disjointSet) findSet() *disjointSet {
	if s != s.parent {
		s.parent = s.parent.findSet()
	}
	return s.parent
}

// Adjusts both s and other to become part of the same set. May adjust parent
// pointers and ranks.
func (s *disjointSet) union(other *disjointSet) {
	x := s.findSet()
	y := other.findSet()
	if x.rank > y.rank {
		y.parent = x
		return
	}
	x.parent = y
	if x.rank == y.rank {
		y.rank++
	}
}

// Returns true if the open cells and the edges between them form a spanning
// tree: every open cell is reachable from every other by exactly one simple
// path. A grid with no open cells is not perfect.
func (g *Grid) IsPerfect() bool {
	sets := make([]*disjointSet, len(g.cells))
	setCount := 0
	for i, s := range g.cells {
		if s == Open {
			sets[i] = newDisjointSet()
			setCount++
		}
	}
	if setCount == 0 {
		return false
	}
	for i := range g.cells {
		if sets[i] == nil {
			continue
		}
		c := g.coord(i)
		// Join with the open neighbors to the right and below. If a neighbor
		// is already in our set, this edge closes a loop.
		for _, d := range directions {
			if (d.Row < 0) || (d.Col < 0) {
				continue
			}
			n := Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
			if !g.IsOpen(n) {
				continue
			}
			a := sets[i]
			b := sets[g.index(n)]
			if a.findSet() == b.findSet() {
				return false
			}
			a.union(b)
			setCount--
		}
	}
	return setCount == 1
}

// Lays the grid out as text: a column-number header, a separator, then one
// line per row prefixed with its row number. cellByte chooses the character
// for each cell.
func (g *Grid) Format(cellByte func(c Coord) byte) string {
	var sb strings.Builder
	sb.WriteString("     ")
	for col := 0; col < g.width; col++ {
		if col != 0 {
			sb.WriteByte(' ')
		}
		// Only the last digit fits above each cell.
		sb.WriteByte(byte('0' + col%10))
	}
	sb.WriteString("\n   ")
	sb.WriteString(strings.Repeat("-", 2*g.width))
	sb.WriteByte('\n')
	for row := 0; row < g.height; row++ {
		sb.WriteString(fmt.Sprintf("%2d |", row))
		for col := 0; col < g.width; col++ {
			sb.WriteByte(' ')
			sb.WriteByte(cellByte(Coord{Row: row, Col: col}))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Returns the grid as text, using '#' for walls and ' ' for open cells.
func (g *Grid) String() string {
	return g.Format(func(c Coord) byte {
		if g.IsOpen(c) {
			return ' '
		}
		return '#'
	})
}
