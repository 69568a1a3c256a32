// Package cursor partitions a surface into a fixed grid of cells and resolves the cell under the pointer
package cursor

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/goo-scene/input"
)

// ErrInvalidDimensions is returned for non-positive rows or columns
var ErrInvalidDimensions = errors.New("cursor: grid dimensions must be positive")

// Rect is an axis-aligned region in surface coordinates
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside r, edges inclusive
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Cell is one grid region, Index = Row*Columns + Col
type Cell struct {
	Index int
	Row   int
	Col   int
	Rect  Rect
}

// Grid is a fixed rows x columns partition of a surface
// Dimensions never change after construction, bounds may be re-laid out
type Grid struct {
	Rows    int
	Columns int

	bounds Rect
	cells  []Cell // row-major
}

// NewGrid partitions bounds into rows x cols cells
func NewGrid(rows, cols int, bounds Rect) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	g := &Grid{
		Rows:    rows,
		Columns: cols,
		cells:   make([]Cell, rows*cols),
	}
	g.SetBounds(bounds)
	return g, nil
}

// SetBounds re-lays out cell rectangles over new surface bounds, indices are unchanged
// Cell edges come from edge, the same expression IndexAt tests against
func (g *Grid) SetBounds(bounds Rect) {
	g.bounds = bounds
	for r := 0; r < g.Rows; r++ {
		y0 := edge(bounds.Y, bounds.H, g.Rows, r)
		y1 := edge(bounds.Y, bounds.H, g.Rows, r+1)
		for c := 0; c < g.Columns; c++ {
			x0 := edge(bounds.X, bounds.W, g.Columns, c)
			x1 := edge(bounds.X, bounds.W, g.Columns, c+1)
			idx := r*g.Columns + c
			g.cells[idx] = Cell{
				Index: idx,
				Row:   r,
				Col:   c,
				Rect:  Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0},
			}
		}
	}
}

// Bounds returns the surface region covered by the grid
func (g *Grid) Bounds() Rect {
	return g.bounds
}

// Len returns the number of cells
func (g *Grid) Len() int {
	return len(g.cells)
}

// Cells returns all cells in row-major order
// The slice is shared, callers must not modify it
func (g *Grid) Cells() []Cell {
	return g.cells
}

// Cell returns cell i, ok is false when out of range
func (g *Grid) Cell(i int) (Cell, bool) {
	if i < 0 || i >= len(g.cells) {
		return Cell{}, false
	}
	return g.cells[i], true
}

// IndexAt returns the index of the cell containing (x, y)
// Points on a shared edge belong to the lower row/column, points outside clamp to the nearest edge cell
func (g *Grid) IndexAt(x, y float64) int {
	c := axisIndex(x, g.bounds.X, g.bounds.W, g.Columns)
	r := axisIndex(y, g.bounds.Y, g.bounds.H, g.Rows)
	return r*g.Columns + c
}

// CellAt returns the cell containing (x, y) in surface coordinates
func (g *Grid) CellAt(x, y float64) Cell {
	return g.cells[g.IndexAt(x, y)]
}

// CellAtCursor resolves a normalized pointer sample against the grid bounds
// Pure query, repeated calls with the same sample return the same cell
func (g *Grid) CellAtCursor(p input.PointerSample) Cell {
	x, y := input.Denormalize(p, g.bounds.W, g.bounds.H)
	return g.CellAt(g.bounds.X+x, g.bounds.Y+y)
}

// edge returns the position of boundary i of n equal slots over [start, start+size]
func edge(start, size float64, n, i int) float64 {
	return start + size*float64(i)/float64(n)
}

// axisIndex maps a position along one axis to a slot in [0, n)
// The estimate is corrected against edge so a point exactly on a laid-out edge takes the lower slot
func axisIndex(v, start, size float64, n int) int {
	if size <= 0 || n <= 1 {
		return 0
	}
	i := int(math.Floor((v - start) * float64(n) / size))
	i = max(0, min(i, n-1))
	for i > 0 && v <= edge(start, size, n, i) {
		i--
	}
	for i < n-1 && v > edge(start, size, n, i+1) {
		i++
	}
	return i
}
