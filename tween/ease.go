// Package tween eases scalar values over fixed durations
package tween

import (
	"strings"

	"github.com/tanema/gween/ease"
)

// Ease maps normalized progress [0, 1] to eased progress
type Ease func(p float64) float64

// FromFunc adapts a gween easing function to normalized progress
// gween evaluates in float32, results carry that precision
func FromFunc(fn ease.TweenFunc) Ease {
	return func(p float64) float64 {
		return float64(fn(float32(p), 0, 1, 1))
	}
}

// Linear is the identity ease
var Linear = FromFunc(ease.Linear)

// Power names follow the GSAP convention: powerN is a polynomial of degree N+1
var (
	Power1Out = FromFunc(ease.OutQuad)
	Power2Out = FromFunc(ease.OutCubic)
	Power3Out = FromFunc(ease.OutQuart)
	Power4Out = FromFunc(ease.OutQuint)

	Power2In    = FromFunc(ease.InCubic)
	Power2InOut = FromFunc(ease.InOutCubic)
)

// powerFuncs indexes gween curves by power, then in/out/inout
var powerFuncs = [...]map[string]ease.TweenFunc{
	1: {"in": ease.InQuad, "out": ease.OutQuad, "inout": ease.InOutQuad},
	2: {"in": ease.InCubic, "out": ease.OutCubic, "inout": ease.InOutCubic},
	3: {"in": ease.InQuart, "out": ease.OutQuart, "inout": ease.InOutQuart},
	4: {"in": ease.InQuint, "out": ease.OutQuint, "inout": ease.InOutQuint},
}

// ByName resolves "power2.out" style names, a bare "powerN" means out
// Unknown names resolve to Linear with ok=false
func ByName(name string) (Ease, bool) {
	fn, ok := funcByName(name)
	if !ok {
		return Linear, false
	}
	return FromFunc(fn), true
}

func funcByName(name string) (ease.TweenFunc, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == "none" || name == "linear" {
		return ease.Linear, true
	}

	base, kind, found := strings.Cut(name, ".")
	if !found {
		kind = "out"
	}
	if !strings.HasPrefix(base, "power") || len(base) != len("power")+1 {
		return nil, false
	}
	n := int(base[len(base)-1] - '0')
	if n < 0 || n >= len(powerFuncs) {
		return nil, false
	}
	if n == 0 {
		return ease.Linear, true
	}
	fn, ok := powerFuncs[n][kind]
	return fn, ok
}
