package input

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/goo-scene/vmath"
)

// PointerSample is an immutable pointer reading normalized to [-0.5, 0.5]
// X grows rightward, Y grows downward, (0, 0) is the surface center
type PointerSample struct {
	X, Y      float64
	Timestamp time.Time
}

// Normalize converts raw surface coordinates to a sample
// Zero or negative viewport dimensions yield the center
func Normalize(rawX, rawY, width, height float64, at time.Time) PointerSample {
	s := PointerSample{Timestamp: at}
	if width > 0 {
		s.X = vmath.ClampF(rawX/width-0.5, -0.5, 0.5)
	}
	if height > 0 {
		s.Y = vmath.ClampF(rawY/height-0.5, -0.5, 0.5)
	}
	return s
}

// Denormalize maps a sample back into surface coordinates of the given size
func Denormalize(s PointerSample, width, height float64) (x, y float64) {
	return (s.X + 0.5) * width, (s.Y + 0.5) * height
}

// CellCenter returns the raw coordinates of the center of terminal cell (col, row)
// Terminal mouse reports are integral, sampling the cell center keeps grid lookups stable
func CellCenter(col, row int) (float64, float64) {
	return float64(col) + 0.5, float64(row) + 0.5
}

// Pointer publishes the latest sample, last writer wins
// Safe for one producer and any number of readers
type Pointer struct {
	current atomic.Pointer[PointerSample]
}

// NewPointer creates a pointer resting at the surface center
func NewPointer() *Pointer {
	p := &Pointer{}
	p.current.Store(&PointerSample{})
	return p
}

// Publish replaces the current sample
func (p *Pointer) Publish(s PointerSample) {
	p.current.Store(&s)
}

// Load returns a copy of the current sample
func (p *Pointer) Load() PointerSample {
	if s := p.current.Load(); s != nil {
		return *s
	}
	return PointerSample{}
}
