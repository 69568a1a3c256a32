package status

import "sync/atomic"

// Metric keys published by the frame loop
const (
	KeyFrames       = "engine.frames"
	KeyRenderErrors = "engine.render_errors"
	KeyDropped      = "engine.dropped"
	KeyFPS          = "engine.fps"
	KeyBound        = "scene.bound"
	KeyHover        = "scene.hover"
	KeyLoaded       = "asset.loaded"
)

// Registry is the central metrics facade
// Producers cache pointers once; per-frame writes go straight to the atomics
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}
