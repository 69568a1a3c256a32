package render

import "math"

// Cell is one composited terminal cell
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
}

// RenderBuffer is a compositor over a flat cell array with a depth buffer for projected points
type RenderBuffer struct {
	cells   []Cell
	depth   []float64
	touched []bool
	width   int
	height  int
	bg      RGB
}

// NewRenderBuffer creates a buffer with the specified dimensions cleared to bg
func NewRenderBuffer(width, height int, bg RGB) *RenderBuffer {
	b := &RenderBuffer{bg: bg}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
		b.depth = make([]float64, size)
		b.touched = make([]bool, size)
	} else {
		b.cells = b.cells[:size]
		b.depth = b.depth[:size]
		b.touched = b.touched[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to empty background using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Fg: b.bg, Bg: b.bg}
	b.depth[0] = math.Inf(1)
	b.touched[0] = false
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
		copy(b.depth[filled:], b.depth[:filled])
		copy(b.touched[filled:], b.touched[:filled])
	}
}

// SetBackground changes the clear color, applied on the next Clear
func (b *RenderBuffer) SetBackground(bg RGB) {
	b.bg = bg
}

// Bounds returns width and height
func (b *RenderBuffer) Bounds() (int, int) {
	return b.width, b.height
}

// inBounds returns true if in screen bounds
func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at (x, y), the zero cell outside bounds
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// Touched reports whether anything was drawn at (x, y) since the last Clear
func (b *RenderBuffer) Touched(x, y int) bool {
	return b.inBounds(x, y) && b.touched[y*b.width+x]
}

// ===== COMPOSITOR API =====

// Set composites a cell with specified blend mode, a zero rune keeps the existing glyph
func (b *RenderBuffer) Set(x, y int, r rune, fg, bg RGB, mode BlendMode, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	dst := &b.cells[idx]

	op := uint8(mode) & 0x0F
	flags := uint8(mode) & 0xF0

	if r != 0 {
		dst.Rune = r
	}
	if flags&flagBg != 0 {
		dst.Bg = apply(op, dst.Bg, bg, alpha)
	}
	if flags&flagFg != 0 {
		dst.Fg = apply(op, dst.Fg, fg, alpha)
	}
	b.touched[idx] = true
}

// SetFgOnly writes rune and foreground while preserving existing background
func (b *RenderBuffer) SetFgOnly(x, y int, r rune, fg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx].Rune = r
	b.cells[idx].Fg = fg
	b.touched[idx] = true
}

// SetWithBg writes a cell with explicit fg and bg colors (opaque replace)
func (b *RenderBuffer) SetWithBg(x, y int, r rune, fg, bg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx] = Cell{Rune: r, Fg: fg, Bg: bg}
	b.touched[idx] = true
}

// Plot writes a glyph only if depth is nearer than what the cell already holds
// Returns true when the point won the depth test
func (b *RenderBuffer) Plot(x, y int, depth float64, r rune, fg RGB) bool {
	if !b.inBounds(x, y) {
		return false
	}
	idx := y*b.width + x
	if depth >= b.depth[idx] {
		return false
	}
	b.depth[idx] = depth
	b.cells[idx].Rune = r
	b.cells[idx].Fg = fg
	b.touched[idx] = true
	return true
}
