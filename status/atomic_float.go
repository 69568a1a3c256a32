package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat is a float64 gauge stored as its IEEE bits
// The zero value reads 0 and is ready to use
type AtomicFloat struct {
	bits atomic.Uint64
}

// Set replaces the gauge value
func (f *AtomicFloat) Set(v float64) {
	f.bits.Store(math.Float64bits(v))
}

// Get reads the gauge value
func (f *AtomicFloat) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}

// Add adds delta and returns the result
func (f *AtomicFloat) Add(delta float64) float64 {
	return f.update(func(cur float64) float64 { return cur + delta })
}

// Smooth folds sample into an exponential moving average and returns it
// weight is the share of the new sample; an unset (zero) gauge takes the sample as is
func (f *AtomicFloat) Smooth(sample, weight float64) float64 {
	return f.update(func(cur float64) float64 {
		if cur == 0 {
			return sample
		}
		return cur + (sample-cur)*weight
	})
}

func (f *AtomicFloat) update(fn func(float64) float64) float64 {
	for {
		old := f.bits.Load()
		next := fn(math.Float64frombits(old))
		if f.bits.CompareAndSwap(old, math.Float64bits(next)) {
			return next
		}
	}
}
