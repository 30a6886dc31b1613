package types

// Point is a cell on the board in grid coordinates
type Point struct {
	X, Y int
}

// Add returns the cell reached by moving p by v
func (p Point) Add(v Velocity) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Velocity is the per-tick displacement of the snake head.
// Exactly one axis is non-zero once the snake is moving.
type Velocity struct {
	X, Y int
}

var (
	Up    = Velocity{X: 0, Y: -1}
	Down  = Velocity{X: 0, Y: 1}
	Left  = Velocity{X: -1, Y: 0}
	Right = Velocity{X: 1, Y: 0}
)

// IsZero reports whether the velocity has no direction yet
func (v Velocity) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Horizontal reports whether v moves along the x axis
func (v Velocity) Horizontal() bool {
	return v.X != 0
}

// Vertical reports whether v moves along the y axis
func (v Velocity) Vertical() bool {
	return v.Y != 0
}

// Grid represents the game grid dimensions
type Grid struct {
	Width    int
	Height   int
	TileSize int
}

// NewGrid derives the grid from a viewport size in pixels.
// ok is false when the viewport cannot hold a single tile on either axis.
func NewGrid(viewportWidth, viewportHeight, tileSize int) (Grid, bool) {
	if tileSize <= 0 || viewportWidth < tileSize || viewportHeight < tileSize {
		return Grid{}, false
	}
	return Grid{
		Width:    viewportWidth / tileSize,
		Height:   viewportHeight / tileSize,
		TileSize: tileSize,
	}, true
}

// Contains reports whether p lies inside [0, Width) x [0, Height)
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// CanvasSize is the pixel size of the board aligned to whole tiles
func (g Grid) CanvasSize() (int, int) {
	return g.Width * g.TileSize, g.Height * g.TileSize
}

// Game constants
const (
	DefaultTileSize      = 20
	DefaultTicksPerSec   = 10
	DefaultInitialLength = 5
)
