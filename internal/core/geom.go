// Package core provides fundamental types shared by the simulation, the scenes
// and the frontends. It contains no external dependencies (especially no Bubble
// Tea or Ebiten) to keep game logic pure and testable.
package core

// Cell is one discrete grid unit addressed by integer coordinates.
// Wall cells may lie one unit outside the board (x/y = -1 or W/H).
type Cell struct {
	X, Y int
}

// C is shorthand for Cell{X: x, Y: y}.
func C(x, y int) Cell {
	return Cell{X: x, Y: y}
}

// Add returns the cell offset by the given vector.
func (c Cell) Add(v Cell) Cell {
	return Cell{X: c.X + v.X, Y: c.Y + v.Y}
}

// Direction is one of the four movement directions.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists all directions in declaration order.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// Vector returns the unit step for the direction. Y grows downwards.
func (d Direction) Vector() Cell {
	switch d {
	case DirUp:
		return Cell{0, -1}
	case DirDown:
		return Cell{0, 1}
	case DirLeft:
		return Cell{-1, 0}
	case DirRight:
		return Cell{1, 0}
	}
	return Cell{}
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Board holds the playfield dimensions in cells.
type Board struct {
	W, H int
}

// InBounds reports whether c lies on the playfield.
func (b Board) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < b.W && c.Y >= 0 && c.Y < b.H
}

// Area returns the number of in-bounds cells.
func (b Board) Area() int {
	return b.W * b.H
}

// Rect represents an axis-aligned rectangle in screen units (pixels or terminal
// characters, depending on the frontend).
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Geometry maps board cells onto screen rectangles.
// The offset is the screen position of cell (0, 0); the wall ring at -1 is
// drawn inside that margin.
type Geometry struct {
	Board   Board
	CellW   int
	CellH   int
	OffsetX int
	OffsetY int
}

// PixelGeometry returns the square-cell layout used by pixel frontends: the
// play area sits one cell in from the screen edge on every side.
func PixelGeometry(b Board, cellSize int) Geometry {
	return Geometry{
		Board:   b,
		CellW:   cellSize,
		CellH:   cellSize,
		OffsetX: cellSize,
		OffsetY: cellSize,
	}
}

// CellRect returns the screen rectangle covered by c.
func (g Geometry) CellRect(c Cell) Rect {
	return Rect{
		X: g.OffsetX + c.X*g.CellW,
		Y: g.OffsetY + c.Y*g.CellH,
		W: g.CellW,
		H: g.CellH,
	}
}

// PlayRect returns the screen rectangle covered by the in-bounds board.
func (g Geometry) PlayRect() Rect {
	return Rect{
		X: g.OffsetX,
		Y: g.OffsetY,
		W: g.Board.W * g.CellW,
		H: g.Board.H * g.CellH,
	}
}

// ScreenSize returns the smallest screen that fits the board and its wall ring
// with a symmetric margin.
func (g Geometry) ScreenSize() (int, int) {
	return g.Board.W*g.CellW + 2*g.OffsetX, g.Board.H*g.CellH + 2*g.OffsetY
}

// TerminalGeometry centers board b in a cols x rows terminal area using two
// characters per cell, so cells look square. It reports false when the
// board and its wall ring do not fit.
func TerminalGeometry(b Board, cols, rows int) (Geometry, bool) {
	g := Geometry{Board: b, CellW: 2, CellH: 1}
	needW := (b.W + 2) * g.CellW
	needH := (b.H + 2) * g.CellH
	g.OffsetX = max(g.CellW, (cols-b.W*g.CellW)/2)
	g.OffsetY = max(g.CellH, (rows-b.H*g.CellH)/2)
	return g, cols >= needW && rows >= needH
}
