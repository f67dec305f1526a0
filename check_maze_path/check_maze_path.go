// This defines an executable that checks a path through a maze, one cell at a
// time, the same way a user drawing a path would.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	maze "github.com/yalue/perfect_maze"
	"github.com/yalue/perfect_maze/internal/config"
	"github.com/yalue/perfect_maze/render"
)

// Parses a "row col" line. Commas may be used in place of spaces.
func parseCoord(line string) (maze.Coord, error) {
	fields := strings.Fields(strings.ReplaceAll(line, ",", " "))
	if len(fields) != 2 {
		return maze.Coord{}, fmt.Errorf("expected two integers separated " +
			"by a space")
	}
	row, e := strconv.Atoi(fields[0])
	if e != nil {
		return maze.Coord{}, fmt.Errorf("Invalid row: %w", e)
	}
	col, e := strconv.Atoi(fields[1])
	if e != nil {
		return maze.Coord{}, fmt.Errorf("Invalid column: %w", e)
	}
	return maze.Coord{Row: row, Col: col}, nil
}

// Feeds each line of input to a validator for m, reporting the result of each
// step to out. Blank lines and lines starting with '#' are ignored, and a
// line reading "reset" starts a new path. Returns true if the path was
// complete at the end of the input.
func checkPath(m *maze.Maze, input io.Reader, out io.Writer) (bool, error) {
	v := maze.NewValidator(m)
	scanner := bufio.NewScanner(input)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if (line == "") || strings.HasPrefix(line, "#") {
			continue
		}
		if line == "reset" {
			v.Reset()
			fmt.Fprintf(out, "Line %d: path reset.\n", lineNumber)
			continue
		}
		c, e := parseCoord(line)
		if e != nil {
			fmt.Fprintf(out, "Line %d: invalid input (%s), skipping.\n",
				lineNumber, e)
			continue
		}
		result, e := v.TryExtend(c)
		if e != nil {
			fmt.Fprintf(out, "Line %d: rejected: %s\n", lineNumber, e)
			continue
		}
		if result.Complete {
			fmt.Fprintf(out, "Line %d: accepted %s, maze solved!\n",
				lineNumber, c)
			continue
		}
		fmt.Fprintf(out, "Line %d: accepted %s\n", lineNumber, c)
	}
	e := scanner.Err()
	if e != nil {
		return v.Complete(), fmt.Errorf("Error reading input: %w", e)
	}
	path := v.Path()
	fmt.Fprint(out, render.Text(m, &render.Overlay{Path: path}))
	fmt.Fprintf(out, "Path has %d cells.\n", len(path))
	if v.Complete() {
		shortest, e := maze.ShortestPath(m, m.Start, m.End)
		if (e == nil) && (len(shortest) != 0) {
			fmt.Fprintf(out, "The shortest path has %d cells.\n",
				len(shortest))
		} else if (e != nil) && !errors.Is(e, maze.ErrSameEndpoints) {
			return true, fmt.Errorf("Error finding shortest path: %w", e)
		}
	}
	return v.Complete(), nil
}

func run() int {
	defaults, e := config.Load()
	if e != nil {
		fmt.Printf("Warning: %s\n", e)
	}
	var cellsWide, cellsHigh int
	var randomSeed int64
	var pathFilename string
	flag.IntVar(&cellsWide, "cells_wide", defaults.CellsWide,
		"The width of the maze, in grid cells.")
	flag.IntVar(&cellsHigh, "cells_high", defaults.CellsHigh,
		"The height of the maze, in grid cells.")
	flag.Int64Var(&randomSeed, "random_seed", defaults.RandomSeed,
		"If positive, specifies the random seed to use.")
	flag.StringVar(&pathFilename, "path_file", "",
		"A file containing one \"row col\" pair per line. Reads from stdin "+
			"if not set.")
	flag.Parse()
	if (cellsWide < 1) || (cellsHigh < 1) {
		fmt.Println("Invalid or missing argument.")
		fmt.Println("Run with -help for more information.")
		return 1
	}
	m, e := maze.NewMazeWithSeed(cellsWide, cellsHigh, randomSeed)
	if e != nil {
		fmt.Printf("Failed generating maze: %s\n", e)
		return 1
	}
	fmt.Printf("Generated %s OK.\n", m.Info())
	fmt.Print(render.Text(m, nil))

	input := io.Reader(os.Stdin)
	if pathFilename != "" {
		f, e := os.Open(pathFilename)
		if e != nil {
			fmt.Printf("Error opening path file %s: %s\n", pathFilename, e)
			return 1
		}
		defer f.Close()
		input = f
	} else {
		fmt.Println("Enter coordinates as \"row column\", one per line:")
	}
	complete, e := checkPath(m, input, os.Stdout)
	if e != nil {
		fmt.Printf("%s\n", e)
		return 1
	}
	if !complete {
		fmt.Println("The path does not reach the end of the maze.")
		return 2
	}
	return 0
}

func main() {
	os.Exit(run())
}
