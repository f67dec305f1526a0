package maze

import (
	"fmt"
)

// A breadth-first search through a maze's open cells, advanced one dequeued
// cell at a time by Step. This lets a caller (such as something animating the
// search) pace the search itself. Create using NewBFS. A BFS is not safe for
// concurrent use, but several may share a Maze.
type BFS struct {
	grid  *Grid
	start Coord
	end   Coord
	// FIFO frontier of row-major cell indices. head is the index of the next
	// entry to dequeue, so the frontier is queue[head:].
	queue []int
	head  int
	// Cells are marked visited as soon as they're enqueued.
	visited []bool
	// parentIndices[i] is the index of the cell from which cell i was first
	// reached, or -1 for the start and any cell not reached yet.
	parentIndices []int
	// Cells in the order they were dequeued.
	visitedInOrder []Coord
	found          bool
	done           bool
}

// Checks the endpoints of a search.
func checkEndpoints(m *Maze, start, end Coord) error {
	if (m == nil) || (m.Grid == nil) {
		return fmt.Errorf("%w: no maze given", ErrInvalidDimensions)
	}
	if !m.Grid.IsOpen(start) {
		return fmt.Errorf("%w: start %s is not an open cell",
			ErrBlockedEndpoint, start)
	}
	if !m.Grid.IsOpen(end) {
		return fmt.Errorf("%w: end %s is not an open cell",
			ErrBlockedEndpoint, end)
	}
	if start == end {
		return fmt.Errorf("%w: %s", ErrSameEndpoints, start)
	}
	return nil
}

// Prepares a search from start to end, without visiting any cells yet.
// Returns an error wrapping ErrBlockedEndpoint if either endpoint isn't an
// open cell, or ErrSameEndpoints if they're the same cell.
func NewBFS(m *Maze, start, end Coord) (*BFS, error) {
	e := checkEndpoints(m, start, end)
	if e != nil {
		return nil, e
	}
	g := m.Grid
	toReturn := &BFS{
		grid:  g,
		start: start,
		end:   end,
		// The initial capacity is arbitrary; in a maze the frontier stays
		// small relative to the number of cells.
		queue:          make([]int, 0, len(g.cells)/4+1),
		visited:        make([]bool, len(g.cells)),
		parentIndices:  make([]int, len(g.cells)),
		visitedInOrder: make([]Coord, 0, len(g.cells)/2+1),
	}
	for i := range toReturn.parentIndices {
		toReturn.parentIndices[i] = -1
	}
	startIndex := g.index(start)
	toReturn.queue = append(toReturn.queue, startIndex)
	toReturn.visited[startIndex] = true
	return toReturn, nil
}

// Dequeues and visits a single cell, returning it. Returns false, without a
// cell, once the search is over, either because the end was reached or
// because the frontier is empty.
func (b *BFS) Step() (Coord, bool) {
	if b.done {
		return Coord{}, false
	}
	if b.head >= len(b.queue) {
		b.done = true
		return Coord{}, false
	}
	currentIndex := b.queue[b.head]
	b.head++
	current := b.grid.coord(currentIndex)
	b.visitedInOrder = append(b.visitedInOrder, current)
	if current == b.end {
		b.found = true
		b.done = true
		return current, true
	}
	for _, d := range directions {
		n := Coord{Row: current.Row + d.Row, Col: current.Col + d.Col}
		if !b.grid.IsOpen(n) {
			continue
		}
		nIndex := b.grid.index(n)
		if b.visited[nIndex] {
			continue
		}
		b.visited[nIndex] = true
		b.parentIndices[nIndex] = currentIndex
		b.queue = append(b.queue, nIndex)
	}
	// Release the dequeued prefix once it dominates the slice.
	if (b.head > 1024) && (b.head*2 > len(b.queue)) {
		b.queue = append(b.queue[:0], b.queue[b.head:]...)
		b.head = 0
	}
	return current, true
}

// Returns true once Step has nothing left to do.
func (b *BFS) Done() bool {
	return b.done
}

// Returns true if the search has reached the end cell.
func (b *BFS) Found() bool {
	return b.found
}

// Returns the cells visited so far, in the order they were dequeued. The
// returned slice must not be modified.
func (b *BFS) Visited() []Coord {
	return b.visitedInOrder
}

// Returns the cell from which c was first reached. Returns false for the
// start cell and for any cell the search hasn't reached.
func (b *BFS) Predecessor(c Coord) (Coord, bool) {
	if !b.grid.InBounds(c) {
		return Coord{}, false
	}
	parent := b.parentIndices[b.grid.index(c)]
	if parent < 0 {
		return Coord{}, false
	}
	return b.grid.coord(parent), true
}

// Returns the path from the start to the end, inclusive, by following
// predecessors back from the end. Returns an error wrapping ErrNotFound if the
// end hasn't been reached.
func (b *BFS) Path() ([]Coord, error) {
	if !b.found {
		if b.done {
			return nil, fmt.Errorf("%w: from %s to %s", ErrNotFound, b.start,
				b.end)
		}
		return nil, fmt.Errorf("%w: the search hasn't reached %s yet",
			ErrNotFound, b.end)
	}
	toReturn := make([]Coord, 0, 64)
	index := b.grid.index(b.end)
	for index >= 0 {
		toReturn = append(toReturn, b.grid.coord(index))
		index = b.parentIndices[index]
	}
	// We followed the chain backwards, so reverse it.
	for i, j := 0, len(toReturn)-1; i < j; i, j = i+1, j-1 {
		toReturn[i], toReturn[j] = toReturn[j], toReturn[i]
	}
	return toReturn, nil
}

// Holds the outcome of a complete breadth-first search.
type SearchResult struct {
	Found bool
	// Every cell the search dequeued, in order. A renderer can replay these
	// to animate the search.
	VisitedInOrder []Coord
	// The shortest path from start to end, inclusive. Nil if Found is false.
	Path []Coord
	bfs  *BFS
}

// Returns the cell from which c was first reached during the search. The
// search's start cell, and any cell the search never reached, has no
// predecessor.
func (r *SearchResult) Predecessor(c Coord) (Coord, bool) {
	return r.bfs.Predecessor(c)
}

// Runs a breadth-first search from start to end to completion. If the end
// can't be reached, this returns the (unsuccessful) result along with an
// error wrapping ErrNotFound.
func Search(m *Maze, start, end Coord) (*SearchResult, error) {
	b, e := NewBFS(m, start, end)
	if e != nil {
		return nil, e
	}
	for {
		_, ok := b.Step()
		if !ok {
			break
		}
	}
	toReturn := &SearchResult{
		Found:          b.Found(),
		VisitedInOrder: b.Visited(),
		bfs:            b,
	}
	toReturn.Path, e = b.Path()
	if e != nil {
		return toReturn, e
	}
	return toReturn, nil
}

// Returns the shortest path from start to end, inclusive.
func ShortestPath(m *Maze, start, end Coord) ([]Coord, error) {
	result, e := Search(m, start, end)
	if e != nil {
		return nil, e
	}
	return result.Path, nil
}
