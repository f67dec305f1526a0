package maze

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A corridor from (0, 0) to (0, 4) with a branch down to (2, 2).
func corridorMaze(t *testing.T) *Maze {
	return mustMaze(t, []string{
		"     ",
		"## ##",
		"## ##",
	}, Coord{Row: 0, Col: 0}, Coord{Row: 0, Col: 4})
}

func TestValidatorRejectsWall(t *testing.T) {
	v := NewValidator(corridorMaze(t))
	_, e := v.TryExtend(Coord{Row: 0, Col: 0})
	require.NoError(t, e)
	result, e := v.TryExtend(Coord{Row: 1, Col: 0})
	assert.True(t, errors.Is(e, ErrInvalidStep), "%v", e)
	assert.False(t, result.Accepted)
	assert.Equal(t, []Coord{{0, 0}}, v.Path())
}

func TestValidatorRejectsOffGrid(t *testing.T) {
	v := NewValidator(corridorMaze(t))
	for _, c := range []Coord{{-1, 0}, {0, 5}, {3, 2}} {
		result, e := v.TryExtend(c)
		assert.True(t, errors.Is(e, ErrInvalidStep), "%v", e)
		assert.False(t, result.Accepted)
	}
	assert.Empty(t, v.Path())
}

func TestValidatorRejectsSkippedCell(t *testing.T) {
	v := NewValidator(corridorMaze(t))
	_, e := v.TryExtend(Coord{Row: 0, Col: 0})
	require.NoError(t, e)
	result, e := v.TryExtend(Coord{Row: 0, Col: 2})
	assert.True(t, errors.Is(e, ErrInvalidStep), "%v", e)
	assert.False(t, result.Accepted)
	assert.Equal(t, []Coord{{0, 0}}, v.Path())
}

func TestValidatorFirstStepAnywhere(t *testing.T) {
	v := NewValidator(corridorMaze(t))
	result, e := v.TryExtend(Coord{Row: 2, Col: 2})
	require.NoError(t, e)
	assert.True(t, result.Accepted)
	assert.False(t, result.Complete)
}

func TestValidatorRepeatedCellIsNoOp(t *testing.T) {
	v := NewValidator(corridorMaze(t))
	for i := 0; i < 3; i++ {
		result, e := v.TryExtend(Coord{Row: 0, Col: 0})
		require.NoError(t, e)
		assert.True(t, result.Accepted)
	}
	assert.Equal(t, []Coord{{0, 0}}, v.Path())
}

func TestValidatorAllowsRevisiting(t *testing.T) {
	v := NewValidator(corridorMaze(t))
	steps := []Coord{
		{0, 0}, {0, 1}, {0, 2}, {1, 2}, {2, 2}, {1, 2}, {0, 2}, {0, 1},
		{0, 2}, {0, 3}, {0, 4},
	}
	var result StepResult
	var e error
	for _, c := range steps {
		result, e = v.TryExtend(c)
		require.NoError(t, e, "%s", c)
		assert.True(t, result.Accepted)
	}
	assert.True(t, result.Complete)
	assert.True(t, v.Complete())
	assert.Equal(t, steps, v.Path())
}

func TestValidatorFreezesWhenComplete(t *testing.T) {
	m := corridorMaze(t)
	v := NewValidator(m)
	for col := 0; col < 5; col++ {
		_, e := v.TryExtend(Coord{Row: 0, Col: col})
		require.NoError(t, e)
	}
	require.True(t, v.Complete())

	result, e := v.TryExtend(Coord{Row: 0, Col: 3})
	assert.True(t, errors.Is(e, ErrInvalidStep), "%v", e)
	assert.False(t, result.Accepted)
	assert.True(t, result.Complete)
	assert.Len(t, v.Path(), 5)

	v.Reset()
	assert.False(t, v.Complete())
	assert.Empty(t, v.Path())
	result, e = v.TryExtend(Coord{Row: 0, Col: 3})
	require.NoError(t, e)
	assert.True(t, result.Accepted)
	result, e = v.TryExtend(Coord{Row: 0, Col: 4})
	require.NoError(t, e)
	assert.True(t, result.Complete)
}

func TestValidatorPathIsCopy(t *testing.T) {
	v := NewValidator(corridorMaze(t))
	_, e := v.TryExtend(Coord{Row: 0, Col: 0})
	require.NoError(t, e)
	path := v.Path()
	path[0] = Coord{Row: 9, Col: 9}
	assert.Equal(t, []Coord{{0, 0}}, v.Path())
}

func TestValidatorSingleCellMaze(t *testing.T) {
	m, e := NewMazeWithSeed(1, 1, 1)
	require.NoError(t, e)
	v := NewValidator(m)
	result, e := v.TryExtend(m.Start)
	require.NoError(t, e)
	assert.True(t, result.Complete)
}

func TestValidatorSharesMazeWithSolver(t *testing.T) {
	m, e := NewMazeWithSeed(41, 41, 9)
	require.NoError(t, e)
	path, e := ShortestPath(m, m.Start, m.End)
	require.NoError(t, e)

	done := make(chan bool)
	for i := 0; i < 4; i++ {
		go func() {
			v := NewValidator(m)
			var result StepResult
			for _, c := range path {
				result, _ = v.TryExtend(c)
			}
			_, e := ShortestPath(m, m.Start, m.End)
			done <- result.Complete && (e == nil)
		}()
	}
	for i := 0; i < 4; i++ {
		assert.True(t, <-done)
	}
}
