package config

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/goo-scene/asset"
	"github.com/lixenwraith/goo-scene/tween"
)

// Validate checks ranges and references, returning the first violation
func (c *Config) Validate() error {
	s := c.Scene
	if s.FPS <= 0 || s.FPS > 240 {
		return fmt.Errorf("%w: fps %d", ErrInvalidRate, s.FPS)
	}
	if s.ParallaxSmoothing < 0 || s.ScrollDuration < 0 || s.ScrollStep <= 0 {
		return fmt.Errorf("%w: parallax_smoothing=%v scroll_duration=%v scroll_step=%v",
			ErrInvalidRate, s.ParallaxSmoothing, s.ScrollDuration, s.ScrollStep)
	}
	if s.LoadWorkers < 0 {
		return fmt.Errorf("%w: load_workers %d", ErrInvalidRate, s.LoadWorkers)
	}
	if s.MaxScroll < 0 {
		return fmt.Errorf("%w: max_scroll %v", ErrInvalidRate, s.MaxScroll)
	}
	if err := checkEase(s.ScrollEase); err != nil {
		return err
	}

	cam := c.Camera
	if cam.FOV <= 0 || cam.FOV >= 180 {
		return fmt.Errorf("%w: fov %v", ErrInvalidCamera, cam.FOV)
	}
	if cam.Near <= 0 || cam.Far <= cam.Near {
		return fmt.Errorf("%w: near=%v far=%v", ErrInvalidCamera, cam.Near, cam.Far)
	}
	if cam.CellAspect <= 0 {
		return fmt.Errorf("%w: cell_aspect %v", ErrInvalidCamera, cam.CellAspect)
	}
	if cam.FogFar < cam.FogNear {
		return fmt.Errorf("%w: fog_far %v before fog_near %v", ErrInvalidCamera, cam.FogFar, cam.FogNear)
	}

	if c.Grid.Rows <= 0 || c.Grid.Columns <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidGrid, c.Grid.Rows, c.Grid.Columns)
	}

	r := c.Reveal
	for _, p := range []PhaseConfig{r.In, r.Out} {
		if p.Duration < 0 || p.Each < 0 || p.Offset < 0 {
			return fmt.Errorf("%w: reveal phase %+v", ErrInvalidRate, p)
		}
		if err := checkEase(p.Ease); err != nil {
			return err
		}
	}
	if r.AutoInterval < 0 {
		return fmt.Errorf("%w: auto_interval %v", ErrInvalidRate, r.AutoInterval)
	}
	if c.Scramble.Step <= 0 {
		return fmt.Errorf("%w: scramble step %v", ErrInvalidRate, c.Scramble.Step)
	}
	if c.Particles.Count < 0 {
		return fmt.Errorf("%w: particle count %d", ErrInvalidRate, c.Particles.Count)
	}

	for _, hex := range []string{cam.FogColor, r.Color, c.Particles.Color} {
		if _, err := parseColor(hex); err != nil {
			return err
		}
	}

	seen := make(map[string]bool, len(c.Actors))
	reactive := 0
	for _, a := range c.Actors {
		if a.Name == "" {
			return fmt.Errorf("%w: missing name", ErrInvalidActor)
		}
		if seen[a.Name] {
			return fmt.Errorf("%w: duplicate name %q", ErrInvalidActor, a.Name)
		}
		seen[a.Name] = true
		if a.Reactive {
			reactive++
		}
		if a.Latency < 0 || a.Scale < 0 {
			return fmt.Errorf("%w: %q latency=%v scale=%v", ErrInvalidActor, a.Name, a.Latency, a.Scale)
		}
		if _, err := a.ModelSpec(); err != nil {
			return err
		}
	}
	if reactive > 1 {
		return fmt.Errorf("%w: %d reactive actors, at most one allowed", ErrInvalidActor, reactive)
	}
	return nil
}

func checkEase(name string) error {
	if _, ok := tween.ByName(name); !ok {
		return fmt.Errorf("%w: %q", ErrInvalidEase, name)
	}
	return nil
}

// parseColor accepts #rrggbb, empty means white
func parseColor(hex string) (colorful.Color, error) {
	if hex == "" {
		return colorful.Color{R: 1, G: 1, B: 1}, nil
	}
	col, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, hex, err)
	}
	return col, nil
}

// shapes known to the asset builder
var shapes = map[string]asset.Shape{
	string(asset.ShapeSphere):  asset.ShapeSphere,
	string(asset.ShapeTorus):   asset.ShapeTorus,
	string(asset.ShapeBox):     asset.ShapeBox,
	string(asset.ShapeRing):    asset.ShapeRing,
	string(asset.ShapeGlasses): asset.ShapeGlasses,
}
