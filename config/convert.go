package config

import (
	"fmt"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/goo-scene/asset"
	"github.com/lixenwraith/goo-scene/effect"
	"github.com/lixenwraith/goo-scene/scene"
	"github.com/lixenwraith/goo-scene/tween"
)

// ModelSpec converts an actor entry into an asset build request
func (a ActorConfig) ModelSpec() (asset.ModelSpec, error) {
	shape, ok := shapes[a.Shape]
	if !ok {
		return asset.ModelSpec{}, fmt.Errorf("%w: %q shape %q: %v", ErrInvalidActor, a.Name, a.Shape, asset.ErrUnknownShape)
	}
	col, err := parseColor(a.Color)
	if err != nil {
		return asset.ModelSpec{}, err
	}
	return asset.ModelSpec{
		Name:     a.Name,
		Shape:    shape,
		Detail:   a.Detail,
		Scale:    a.Scale,
		Position: a.Position.V(),
		Rotation: a.Rotation.Euler(),
		Color:    col,
		Latency:  time.Duration(a.Latency * float64(time.Second)),
	}, nil
}

// Policy converts the motion block, nil when the actor is static
func (a ActorConfig) Policy() *scene.MotionPolicy {
	if a.Motion == nil {
		return nil
	}
	return &scene.MotionPolicy{
		Frequency: a.Motion.Frequency,
		X:         axis(a.Motion.X),
		Y:         axis(a.Motion.Y),
		Z:         axis(a.Motion.Z),
	}
}

func axis(c *AxisConfig) *scene.AxisMotion {
	if c == nil {
		return nil
	}
	return &scene.AxisMotion{Cos: c.Cos, Noise: c.Noise, Base: c.Base}
}

// BuildActors creates scene actors with fresh bindings, keyed by name for the loader
func (c *Config) BuildActors() ([]*scene.Actor, map[string]*scene.Binding) {
	actors := make([]*scene.Actor, 0, len(c.Actors))
	bindings := make(map[string]*scene.Binding, len(c.Actors))
	for _, a := range c.Actors {
		b := scene.NewBinding()
		bindings[a.Name] = b
		actors = append(actors, &scene.Actor{
			Name:          a.Name,
			Policy:        a.Policy(),
			Binding:       b,
			Reactive:      a.Reactive,
			Intersectable: a.Intersectable,
		})
	}
	return actors, bindings
}

// ModelSpecs converts every actor, Validate guarantees success on a loaded config
func (c *Config) ModelSpecs() ([]asset.ModelSpec, error) {
	specs := make([]asset.ModelSpec, 0, len(c.Actors))
	for _, a := range c.Actors {
		spec, err := a.ModelSpec()
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// RevealTimeline converts the reveal block
func (c *Config) RevealTimeline() effect.RevealConfig {
	return effect.RevealConfig{
		In:           phase(c.Reveal.In, 1),
		Out:          phase(c.Reveal.Out, 0),
		AutoInterval: c.Reveal.AutoInterval,
	}
}

func phase(p PhaseConfig, to float64) effect.Phase {
	ease, _ := tween.ByName(p.Ease)
	return effect.Phase{
		Offset:   p.Offset,
		Duration: p.Duration,
		Each:     p.Each,
		Ease:     ease,
		To:       to,
	}
}

// ScrollEase resolves the camera lift curve
func (c *Config) ScrollEase() tween.Ease {
	ease, _ := tween.ByName(c.Scene.ScrollEase)
	return ease
}

// Color resolves a validated hex color
func Color(hex string) colorful.Color {
	col, _ := parseColor(hex)
	return col
}
