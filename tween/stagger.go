package tween

import "math"

// GridStagger returns per-index start delays radiating from index `from` over a rows x cols grid
// Delay grows with euclidean grid distance, normalized so the farthest cell starts at each*max(rows, cols)
func GridStagger(rows, cols, from int, each float64) []float64 {
	n := rows * cols
	if n <= 0 {
		return nil
	}
	if from < 0 || from >= n {
		from = 0
	}

	originX := float64(from % cols)
	originY := float64(from / cols)

	dist := make([]float64, n)
	lo, hi := math.Inf(1), 0.0
	for i := 0; i < n; i++ {
		dx := float64(i%cols) - originX
		dy := originY - float64(i/cols)
		d := math.Sqrt(dx*dx + dy*dy)
		dist[i] = d
		hi = math.Max(hi, d)
		lo = math.Min(lo, d)
	}

	amount := each * float64(max(cols, rows))
	span := hi - lo
	for i := range dist {
		if span == 0 {
			dist[i] = 0
			continue
		}
		dist[i] = (dist[i] - lo) / span * amount
	}
	return dist
}

// Track is one staggered tween segment applied to every element of a group
// Each element i starts at Offset + Delays[i] and runs for Duration toward To
type Track struct {
	Offset   float64
	Duration float64
	To       float64
	Ease     Ease
	Delays   []float64
}

// Start returns when element i begins
func (tr *Track) Start(i int) float64 {
	if i < len(tr.Delays) {
		return tr.Offset + tr.Delays[i]
	}
	return tr.Offset
}

// End returns the latest completion time across all elements
func (tr *Track) End() float64 {
	end := tr.Offset + tr.Duration
	for _, d := range tr.Delays {
		end = math.Max(end, tr.Offset+d+tr.Duration)
	}
	return end
}

// At evaluates element i at local time t given the value it started from
func (tr *Track) At(i int, t, from float64) float64 {
	start := tr.Start(i)
	if t <= start {
		return from
	}
	if tr.Duration <= 0 {
		return tr.To
	}
	p := (t - start) / tr.Duration
	if p >= 1 {
		return tr.To
	}
	ease := tr.Ease
	if ease == nil {
		ease = Linear
	}
	return from + (tr.To-from)*ease(p)
}
