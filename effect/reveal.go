// Package effect holds per-frame collaborators layered over the scene: the goo reveal and scrambled labels
package effect

import (
	"math"

	"github.com/lixenwraith/goo-scene/cursor"
	"github.com/lixenwraith/goo-scene/parameter"
	"github.com/lixenwraith/goo-scene/scene"
	"github.com/lixenwraith/goo-scene/tween"
)

// Phase is one staggered opacity segment of the reveal timeline
type Phase struct {
	// Offset is when the phase starts relative to the trigger, in seconds
	Offset   float64
	Duration float64
	// Each is the stagger per unit grid distance
	Each float64
	Ease tween.Ease
	To   float64
}

// RevealConfig describes the two-phase goo timeline
type RevealConfig struct {
	In  Phase
	Out Phase
	// AutoInterval re-triggers from the pointer cell, zero disables
	AutoInterval float64
}

// DefaultRevealConfig returns the stock fade in / fade out timeline
func DefaultRevealConfig() RevealConfig {
	in, _ := tween.ByName(parameter.RevealInEase)
	out, _ := tween.ByName(parameter.RevealOutEase)
	return RevealConfig{
		In: Phase{
			Duration: parameter.RevealInDuration,
			Each:     parameter.RevealInEach,
			Ease:     in,
			To:       1,
		},
		Out: Phase{
			Offset:   parameter.RevealOutOffset,
			Duration: parameter.RevealOutDuration,
			Each:     parameter.RevealOutEach,
			Ease:     out,
			To:       0,
		},
		AutoInterval: parameter.RevealAutoInterval.Seconds(),
	}
}

// Reveal animates per-cell opacity across a cursor grid
// Not safe for concurrent use, driven from the scheduler goroutine
type Reveal struct {
	grid *cursor.Grid
	cfg  RevealConfig

	in, out tween.Track
	base    []float64 // opacity at trigger time
	opacity []float64

	elapsed float64
	end     float64
	active  bool
	origin  int

	sinceAuto float64
	autoFired bool
	triggers  int
}

// NewReveal binds a reveal to a grid, all cells start transparent
func NewReveal(grid *cursor.Grid, cfg RevealConfig) *Reveal {
	n := grid.Len()
	return &Reveal{
		grid:    grid,
		cfg:     cfg,
		base:    make([]float64, n),
		opacity: make([]float64, n),
	}
}

// Grid returns the grid the reveal is laid over
func (r *Reveal) Grid() *cursor.Grid {
	return r.grid
}

// Trigger restarts the timeline radiating from cell `from`
// Cells continue from their current opacity
func (r *Reveal) Trigger(from int) {
	rows, cols := r.grid.Rows, r.grid.Columns
	if from < 0 || from >= rows*cols {
		from = 0
	}
	copy(r.base, r.opacity)
	r.in = track(r.cfg.In, tween.GridStagger(rows, cols, from, r.cfg.In.Each))
	r.out = track(r.cfg.Out, tween.GridStagger(rows, cols, from, r.cfg.Out.Each))
	r.end = math.Max(r.in.End(), r.out.End())
	r.elapsed = 0
	r.active = true
	r.origin = from
	r.triggers++
}

// TriggerAtCursor starts the timeline from the cell under the pointer
func (r *Reveal) TriggerAtCursor(p scene.FrameInput) {
	r.Trigger(r.grid.CellAtCursor(p.Pointer).Index)
}

// Advance moves the timeline forward by dt seconds
func (r *Reveal) Advance(dt float64) {
	if !r.active {
		return
	}
	if dt > 0 {
		r.elapsed += dt
	}
	for i := range r.opacity {
		r.opacity[i] = r.at(i, r.elapsed)
	}
	if r.elapsed >= r.end {
		r.active = false
	}
}

// at evaluates cell i: the out phase owns the value once started, seeded from the in phase at that moment
func (r *Reveal) at(i int, t float64) float64 {
	outStart := r.out.Start(i)
	if t < outStart {
		return r.in.At(i, t, r.base[i])
	}
	from := r.in.At(i, outStart, r.base[i])
	return r.out.At(i, t, from)
}

// Frame is the scheduler hook: auto trigger on interval, then advance
func (r *Reveal) Frame(_ *scene.State, in scene.FrameInput) {
	if r.cfg.AutoInterval > 0 {
		r.sinceAuto += in.Delta
		if !r.autoFired || r.sinceAuto >= r.cfg.AutoInterval {
			r.autoFired = true
			r.sinceAuto = 0
			r.TriggerAtCursor(in)
		}
	}
	r.Advance(in.Delta)
}

// Opacity returns cell i's current opacity in [0, 1]
func (r *Reveal) Opacity(i int) float64 {
	if i < 0 || i >= len(r.opacity) {
		return 0
	}
	return r.opacity[i]
}

// Active reports whether a timeline is running
func (r *Reveal) Active() bool {
	return r.active
}

// Origin returns the cell the last trigger radiated from
func (r *Reveal) Origin() int {
	return r.origin
}

// Triggers counts timeline starts
func (r *Reveal) Triggers() int {
	return r.triggers
}

func track(p Phase, delays []float64) tween.Track {
	return tween.Track{
		Offset:   p.Offset,
		Duration: p.Duration,
		To:       p.To,
		Ease:     p.Ease,
		Delays:   delays,
	}
}
