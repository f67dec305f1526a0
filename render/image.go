package render

import (
	"image"
	"image/color"

	maze "github.com/yalue/perfect_maze"
)

// The number of pixels across, in a square cell.
const CellPixels = 9

// The color used for each marker in images.
func (k Marker) Color() color.Color {
	switch k {
	case WallMarker:
		return color.Black
	case OpenMarker:
		return color.White
	case VisitedMarker:
		return color.RGBA{R: 128, G: 128, B: 128, A: 255}
	case PathMarker:
		// "Lime green"
		return color.RGBA{R: 50, G: 205, B: 50, A: 255}
	case CurrentMarker:
		return color.RGBA{R: 255, G: 165, B: 0, A: 255}
	case StartMarker:
		return color.RGBA{R: 0, G: 0, B: 255, A: 255}
	case EndMarker:
		return color.RGBA{R: 255, G: 0, B: 0, A: 255}
	}
	return color.Transparent
}

// Satisfies the image.Image interface, drawing each maze cell as a solid
// CellPixels-wide square. Non-wall cells get a one-pixel light outline so
// adjacent path cells remain distinguishable.
type mazeImage struct {
	width   int
	height  int
	markers *markerMap
}

// Returns an image of the maze with the given overlay, which may be nil. The
// overlay is copied, so it can be modified afterwards.
func NewImage(m *maze.Maze, o *Overlay) image.Image {
	return &mazeImage{
		width:   m.Grid.Width(),
		height:  m.Grid.Height(),
		markers: newMarkerMap(m, o),
	}
}

func (p *mazeImage) ColorModel() color.Model {
	return color.RGBAModel
}

func (p *mazeImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width*CellPixels, p.height*CellPixels)
}

func (p *mazeImage) At(x, y int) color.Color {
	if (x < 0) || (y < 0) || (x >= p.width*CellPixels) ||
		(y >= p.height*CellPixels) {
		return color.Transparent
	}
	// Columns run along the x axis and rows along the y axis.
	c := maze.Coord{Row: y / CellPixels, Col: x / CellPixels}
	marker := p.markers.at(c)
	if marker == WallMarker {
		return marker.Color()
	}
	xOffset := x % CellPixels
	yOffset := y % CellPixels
	if (xOffset == 0) || (yOffset == 0) {
		return color.RGBA{R: 220, G: 220, B: 220, A: 255}
	}
	return marker.Color()
}

// Satisfies the Image interface, surrounds an image with a solid-color border.
type imageBorder struct {
	pic         image.Image
	picBounds   image.Rectangle
	borderWidth int
	fillColor   color.Color
}

func (b *imageBorder) ColorModel() color.Model {
	return b.pic.ColorModel()
}

func (b *imageBorder) Bounds() image.Rectangle {
	tmp := b.picBounds
	w := b.borderWidth * 2
	return image.Rect(0, 0, tmp.Dx()+w, tmp.Dy()+w)
}

func (b *imageBorder) At(x, y int) color.Color {
	tmp := b.picBounds
	if (x < b.borderWidth) || (y < b.borderWidth) {
		return b.fillColor
	}
	if (x >= tmp.Dx()+b.borderWidth) || (y >= tmp.Dy()+b.borderWidth) {
		return b.fillColor
	}
	return b.pic.At(x-b.borderWidth+tmp.Min.X, y-b.borderWidth+tmp.Min.Y)
}

// Returns a new image, consisting of the given image surrounded by a white
// border with the given width in pixels.
func AddImageBorder(pic image.Image, width int) image.Image {
	return &imageBorder{
		pic:         pic,
		picBounds:   pic.Bounds(),
		borderWidth: width,
		fillColor:   color.White,
	}
}

// Returns the pixel at the center of the given cell in an image returned by
// NewImage, offset by the given border width.
func CellCenter(c maze.Coord, borderWidth int) image.Point {
	return image.Pt(c.Col*CellPixels+CellPixels/2+borderWidth,
		c.Row*CellPixels+CellPixels/2+borderWidth)
}
