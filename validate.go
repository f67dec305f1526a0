package maze

import (
	"fmt"
)

// The outcome of a single Validator.TryExtend call.
type StepResult struct {
	// True if the step was added to the path, or was a repeat of the last
	// step.
	Accepted bool
	// True once the path has reached the maze's end.
	Complete bool
}

// Checks a path that's drawn one cell at a time, for example by a user
// dragging a pointer across a maze. Each step must be an open cell adjacent
// to the previous one. Revisiting an earlier cell is allowed, so the path
// doesn't need to be simple. Create using NewValidator. A Validator is not
// safe for concurrent use.
type Validator struct {
	maze     *Maze
	path     []Coord
	complete bool
}

// Returns a new Validator with an empty path through m.
func NewValidator(m *Maze) *Validator {
	return &Validator{
		maze: m,
		path: make([]Coord, 0, 64),
	}
}

// Attempts to add c to the end of the path. If c is rejected, the path is
// unchanged and the returned error wraps ErrInvalidStep. Once the path is
// complete, every step is rejected until Reset is called.
func (v *Validator) TryExtend(c Coord) (StepResult, error) {
	if v.complete {
		return StepResult{Complete: true}, fmt.Errorf("%w: the path is "+
			"already complete", ErrInvalidStep)
	}
	if !v.maze.Grid.InBounds(c) {
		return StepResult{}, fmt.Errorf("%w: %s is outside the maze",
			ErrInvalidStep, c)
	}
	if !v.maze.Grid.IsOpen(c) {
		return StepResult{}, fmt.Errorf("%w: %s is a wall", ErrInvalidStep, c)
	}
	if len(v.path) != 0 {
		last := v.path[len(v.path)-1]
		if c == last {
			// Hovering over the same cell doesn't add anything.
			return StepResult{Accepted: true}, nil
		}
		if !c.IsAdjacent(last) {
			return StepResult{}, fmt.Errorf("%w: %s is not adjacent to %s",
				ErrInvalidStep, c, last)
		}
	}
	v.path = append(v.path, c)
	if (c == v.maze.End) && v.isContinuous() {
		v.complete = true
	}
	return StepResult{
		Accepted: true,
		Complete: v.complete,
	}, nil
}

// Re-checks every consecutive pair of cells in the path.
func (v *Validator) isContinuous() bool {
	for i := 1; i < len(v.path); i++ {
		if !v.path[i-1].IsAdjacent(v.path[i]) {
			return false
		}
	}
	return true
}

// Clears the path, so the next step will start a new one.
func (v *Validator) Reset() {
	v.path = v.path[:0]
	v.complete = false
}

// Returns true if the path has reached the end of the maze.
func (v *Validator) Complete() bool {
	return v.complete
}

// Returns a copy of the accepted path.
func (v *Validator) Path() []Coord {
	toReturn := make([]Coord, len(v.path))
	copy(toReturn, v.path)
	return toReturn
}
