package render

import (
	maze "github.com/yalue/perfect_maze"
)

// The character used for each marker in text output.
func (k Marker) Byte() byte {
	switch k {
	case WallMarker:
		return '#'
	case OpenMarker:
		return ' '
	case VisitedMarker:
		return 'O'
	case PathMarker:
		return '.'
	case CurrentMarker:
		return '@'
	case StartMarker:
		return 'S'
	case EndMarker:
		return 'E'
	}
	return '?'
}

// Returns the maze as text, with row and column numbers. The overlay may be
// nil.
func Text(m *maze.Maze, o *Overlay) string {
	markers := newMarkerMap(m, o)
	return m.Grid.Format(func(c maze.Coord) byte {
		return markers.at(c).Byte()
	})
}
