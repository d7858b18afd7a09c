// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned bounding box in screen cells.
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

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Viewport maps a floating-point world (pixels) onto a grid of screen cells.
// The world is scaled independently on each axis so it always fills the grid.
type Viewport struct {
	WorldW, WorldH float64
	CellsW, CellsH int
}

// NewViewport creates a viewport for the given world size and cell grid.
func NewViewport(worldW, worldH float64, cellsW, cellsH int) Viewport {
	return Viewport{WorldW: worldW, WorldH: worldH, CellsW: cellsW, CellsH: cellsH}
}

// Col converts a world x-coordinate to a screen column.
func (v Viewport) Col(x float64) int {
	if v.WorldW <= 0 {
		return 0
	}
	return int(x * float64(v.CellsW) / v.WorldW)
}

// Row converts a world y-coordinate to a screen row.
func (v Viewport) Row(y float64) int {
	if v.WorldH <= 0 {
		return 0
	}
	return int(y * float64(v.CellsH) / v.WorldH)
}

// WorldX converts a screen column back to the world x-coordinate of its center.
func (v Viewport) WorldX(col int) float64 {
	if v.CellsW <= 0 {
		return 0
	}
	return (float64(col) + 0.5) * v.WorldW / float64(v.CellsW)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
