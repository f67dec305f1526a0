// This defines a basic executable for generating an image of a maze, and
// optionally its solution or the search that found it.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/yalue/image_utils"
	maze "github.com/yalue/perfect_maze"
	"github.com/yalue/perfect_maze/internal/config"
	"github.com/yalue/perfect_maze/render"
)

const arrowLength = 16

// The arrows sit in the border to the left of the maze, so the border must be
// wide enough to hold one.
const borderWidth = arrowLength + 2

// Returns an arrow pointing to the right, outlined in arrowColor.
func getOutlinedArrow(arrowColor color.Color) image.Image {
	outerArrow := image_utils.ResizeImage(image_utils.RightArrow(arrowColor),
		arrowLength, arrowLength)
	innerArrow := image_utils.ResizeImage(image_utils.RightArrow(color.White),
		arrowLength/2, arrowLength/2)
	toReturn := image_utils.NewCompositeImage()
	toReturn.AddImage(outerArrow, image.Pt(0, 0))
	toReturn.AddImage(innerArrow, image.Pt(arrowLength/4, arrowLength/4))
	return image_utils.ToRGBA(toReturn)
}

// Returns the top-left corner at which to draw an arrow from getOutlinedArrow
// so that it points at the given row of the maze from the left border.
func getArrowTopLeft(row int) image.Point {
	center := render.CellCenter(maze.Coord{Row: row, Col: 0}, borderWidth)
	return image.Pt(1, center.Y-arrowLength/2)
}

// Adds "decorations" to the maze image, including a border and start and end
// arrows. Rasterizes the result to an image.RGBA.
func drawMazeDecorations(m *maze.Maze, pic image.Image) (*image.RGBA, error) {
	decorated := image_utils.NewCompositeImage()
	mazePic := image_utils.ToRGBA(render.AddImageBorder(pic, borderWidth))
	e := decorated.AddImage(mazePic, image.Pt(0, 0))
	if e != nil {
		return nil, fmt.Errorf("Error setting base maze image: %w", e)
	}
	blueColor := color.RGBA{100, 120, 255, 255}
	redColor := color.RGBA{230, 20, 20, 255}

	startArrow := getOutlinedArrow(blueColor)
	e = decorated.AddImage(startArrow, getArrowTopLeft(m.Start.Row))
	if e != nil {
		return nil, fmt.Errorf("Error adding start arrow: %w", e)
	}
	// The start and end may share a row, in which case the start arrow wins.
	if m.End.Row != m.Start.Row {
		endArrow := getOutlinedArrow(redColor)
		e = decorated.AddImage(endArrow, getArrowTopLeft(m.End.Row))
		if e != nil {
			return nil, fmt.Errorf("Error adding end arrow: %w", e)
		}
	}
	return image_utils.ToRGBA(decorated), nil
}

// Writes pic to the named PNG file.
func savePNG(pic image.Image, filename string) error {
	f, e := os.Create(filename)
	if e != nil {
		return fmt.Errorf("Error creating output file %s: %w", filename, e)
	}
	defer f.Close()
	e = png.Encode(f, pic)
	if e != nil {
		return fmt.Errorf("Error writing image to %s: %w", filename, e)
	}
	return nil
}

// Replays the breadth-first search one step at a time, writing an image of
// each step to dir. Returns the number of frames written, including a last
// frame with the solution.
func writeSearchFrames(m *maze.Maze, dir string) (int, error) {
	e := os.MkdirAll(dir, 0755)
	if e != nil {
		return 0, fmt.Errorf("Error creating frames directory: %w", e)
	}
	bfs, e := maze.NewBFS(m, m.Start, m.End)
	if e != nil {
		return 0, e
	}
	frameCount := 0
	writeFrame := func(o *render.Overlay) error {
		pic, e := drawMazeDecorations(m, render.NewImage(m, o))
		if e != nil {
			return e
		}
		filename := filepath.Join(dir, fmt.Sprintf("frame_%05d.png",
			frameCount))
		frameCount++
		return savePNG(pic, filename)
	}
	for {
		current, ok := bfs.Step()
		if !ok {
			break
		}
		e = writeFrame(&render.Overlay{
			Visited: bfs.Visited(),
			Current: &current,
		})
		if e != nil {
			return frameCount, e
		}
	}
	path, e := bfs.Path()
	if e != nil {
		return frameCount, e
	}
	e = writeFrame(&render.Overlay{
		Visited: bfs.Visited(),
		Path:    path,
	})
	return frameCount, e
}

func run() int {
	defaults, e := config.Load()
	if e != nil {
		fmt.Printf("Warning: %s\n", e)
	}
	var cellsWide, cellsHigh int
	var randomSeed int64
	var showSolution, showSearch, printMaze bool
	var outFilename, framesDir string
	flag.IntVar(&cellsWide, "cells_wide", defaults.CellsWide,
		"The width of the maze, in grid cells.")
	flag.IntVar(&cellsHigh, "cells_high", defaults.CellsHigh,
		"The height of the maze, in grid cells.")
	flag.Int64Var(&randomSeed, "random_seed", defaults.RandomSeed,
		"If positive, specifies the random seed to use.")
	flag.BoolVar(&showSolution, "show_solution", false,
		"If set, shows the solution of the maze.")
	flag.BoolVar(&showSearch, "show_search", false,
		"If set, shows the cells visited while finding the solution.")
	flag.BoolVar(&printMaze, "print", false,
		"If set, prints the maze to stdout as text.")
	flag.StringVar(&outFilename, "output_file", defaults.OutputFile,
		"The name of the .png file to which the maze will be saved.")
	flag.StringVar(&framesDir, "frames_dir", "",
		"If set, a directory in which to save one image for each step of "+
			"the search for the solution.")
	flag.Parse()
	if (cellsWide < 1) || (cellsHigh < 1) ||
		((outFilename == "") && (framesDir == "") && !printMaze) {
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

	var overlay render.Overlay
	if showSolution || showSearch {
		fmt.Printf("Finding solution to the maze.\n")
		result, e := maze.Search(m, m.Start, m.End)
		if e != nil {
			fmt.Printf("Error finding solution: %s\n", e)
			return 1
		}
		fmt.Printf("Visited %d cells, solution is %d cells long.\n",
			len(result.VisitedInOrder), len(result.Path))
		if showSearch {
			overlay.Visited = result.VisitedInOrder
		}
		if showSolution {
			overlay.Path = result.Path
		}
	}
	if printMaze {
		fmt.Print(render.Text(m, &overlay))
	}
	if framesDir != "" {
		frameCount, e := writeSearchFrames(m, framesDir)
		if e != nil {
			fmt.Printf("Error writing search frames: %s\n", e)
			return 1
		}
		fmt.Printf("Wrote %d frames to %s OK.\n", frameCount, framesDir)
	}
	if outFilename == "" {
		return 0
	}
	finalPic, e := drawMazeDecorations(m, render.NewImage(m, &overlay))
	if e != nil {
		fmt.Printf("Error adding maze decorations: %s\n", e)
		return 1
	}
	e = savePNG(finalPic, outFilename)
	if e != nil {
		fmt.Printf("%s\n", e)
		return 1
	}
	fmt.Printf("Image %s written OK.\n", outFilename)
	return 0
}

func main() {
	os.Exit(run())
}
