// Package render draws mazes as console text or as images. It only consumes
// the data produced by the maze package; any pacing of an animated search is
// up to the caller.
package render

import (
	"fmt"

	maze "github.com/yalue/perfect_maze"
)

// Extra information to draw on top of a maze. Any field may be empty.
type Overlay struct {
	// Cells a search has visited.
	Visited []maze.Coord
	// A path through the maze, such as a solution or a user's path.
	Path []maze.Coord
	// The cell currently being examined, if any.
	Current *maze.Coord
}

// What gets drawn for a single cell.
type Marker uint8

const (
	WallMarker Marker = iota
	OpenMarker
	VisitedMarker
	PathMarker
	CurrentMarker
	StartMarker
	EndMarker
)

func (k Marker) String() string {
	switch k {
	case WallMarker:
		return "wall"
	case OpenMarker:
		return "open"
	case VisitedMarker:
		return "visited"
	case PathMarker:
		return "path"
	case CurrentMarker:
		return "current"
	case StartMarker:
		return "start"
	case EndMarker:
		return "end"
	}
	return fmt.Sprintf("Unknown Marker: %d", uint8(k))
}

// Resolves the marker for every cell of a maze and overlay. Computed once, so
// drawing doesn't need to search the overlay's slices per cell.
type markerMap struct {
	width   int
	markers []Marker
}

func newMarkerMap(m *maze.Maze, o *Overlay) *markerMap {
	g := m.Grid
	toReturn := &markerMap{
		width:   g.Width(),
		markers: make([]Marker, g.Width()*g.Height()),
	}
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			if g.IsOpen(maze.Coord{Row: row, Col: col}) {
				toReturn.markers[row*g.Width()+col] = OpenMarker
			}
		}
	}
	// Later layers take precedence over earlier ones.
	if o != nil {
		toReturn.mark(g, o.Visited, VisitedMarker)
		toReturn.mark(g, o.Path, PathMarker)
		if o.Current != nil {
			toReturn.mark(g, []maze.Coord{*o.Current}, CurrentMarker)
		}
	}
	toReturn.mark(g, []maze.Coord{m.End}, EndMarker)
	toReturn.mark(g, []maze.Coord{m.Start}, StartMarker)
	return toReturn
}

// Sets the marker for each of the given cells, skipping any that are outside
// the grid.
func (k *markerMap) mark(g *maze.Grid, cells []maze.Coord, marker Marker) {
	for _, c := range cells {
		if !g.InBounds(c) {
			continue
		}
		k.markers[c.Row*k.width+c.Col] = marker
	}
}

func (k *markerMap) at(c maze.Coord) Marker {
	return k.markers[c.Row*k.width+c.Col]
}

// Returns the marker that would be drawn at c. Start and end always win,
// followed by the current cell, the path, and then visited cells. Returns
// WallMarker for cells outside the maze.
func MarkerAt(m *maze.Maze, o *Overlay, c maze.Coord) Marker {
	if !m.Grid.InBounds(c) {
		return WallMarker
	}
	return newMarkerMap(m, o).at(c)
}
