package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lixenwraith/goo-scene/asset"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Grid.Rows != 8 || cfg.Grid.Columns != 16 {
		t.Errorf("grid = %+v", cfg.Grid)
	}
	if len(cfg.Actors) != 4 {
		t.Fatalf("actors = %d", len(cfg.Actors))
	}
	if cfg.Scene.ParallaxFactor != 0.5 || cfg.Scene.ParallaxSmoothing != 5 {
		t.Errorf("parallax = %v / %v", cfg.Scene.ParallaxFactor, cfg.Scene.ParallaxSmoothing)
	}
}

func TestBuildActors(t *testing.T) {
	cfg := Default()
	actors, bindings := cfg.BuildActors()
	if len(actors) != len(bindings) {
		t.Fatalf("%d actors, %d bindings", len(actors), len(bindings))
	}

	byName := map[string]int{}
	for i, a := range actors {
		byName[a.Name] = i
		if a.Binding != bindings[a.Name] {
			t.Errorf("actor %q binding mismatch", a.Name)
		}
		if a.Bound() {
			t.Errorf("actor %q bound before loading", a.Name)
		}
	}

	sg := actors[byName["sunglasses"]]
	if !sg.Reactive || !sg.Policy.Animated() || sg.Policy.Frequency != 4 {
		t.Errorf("sunglasses = %+v", sg)
	}
	if sg.Policy.Y == nil || math.Abs(sg.Policy.Y.Base-0.2*math.Pi) > 1e-3 {
		t.Errorf("sunglasses y axis = %+v", sg.Policy.Y)
	}
	if mask := actors[byName["mask"]]; mask.Policy != nil || !mask.Intersectable {
		t.Errorf("mask = %+v", mask)
	}
}

func TestModelSpecs(t *testing.T) {
	specs, err := Default().ModelSpecs()
	if err != nil {
		t.Fatalf("ModelSpecs: %v", err)
	}
	glass := specs[3]
	if glass.Name != "glass" || glass.Shape != asset.ShapeTorus {
		t.Errorf("glass spec = %+v", glass)
	}
	if glass.Position.Y != -40 || glass.Latency != 1600*time.Millisecond {
		t.Errorf("glass position/latency = %v / %v", glass.Position, glass.Latency)
	}
}

func TestRevealTimeline(t *testing.T) {
	rc := Default().RevealTimeline()
	if rc.In.To != 1 || rc.Out.To != 0 || rc.Out.Offset != 0.3 || rc.AutoInterval != 10 {
		t.Errorf("timeline = %+v", rc)
	}
	// power4 is the out variant: 1-(1-p)^5
	if got := rc.In.Ease(0.5); math.Abs(got-(1-1.0/32)) > 1e-9 {
		t.Errorf("in ease(0.5) = %v", got)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"zero rows", func(c *Config) { c.Grid.Rows = 0 }, ErrInvalidGrid},
		{"bad fps", func(c *Config) { c.Scene.FPS = 0 }, ErrInvalidRate},
		{"negative workers", func(c *Config) { c.Scene.LoadWorkers = -1 }, ErrInvalidRate},
		{"negative smoothing", func(c *Config) { c.Scene.ParallaxSmoothing = -1 }, ErrInvalidRate},
		{"far before near", func(c *Config) { c.Camera.Far = 0.01 }, ErrInvalidCamera},
		{"bad fog color", func(c *Config) { c.Camera.FogColor = "gray" }, ErrInvalidColor},
		{"unknown ease", func(c *Config) { c.Reveal.In.Ease = "bounce" }, ErrInvalidEase},
		{"unknown shape", func(c *Config) { c.Actors[0].Shape = "teapot" }, ErrInvalidActor},
		{"duplicate actor", func(c *Config) { c.Actors[1].Name = c.Actors[0].Name }, ErrInvalidActor},
		{"two reactive", func(c *Config) { c.Actors[2].Reactive = true }, ErrInvalidActor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	data := []byte("grid:\n  rows: 4\n  columns: 5\nscene:\n  fps: 30\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Grid.Rows != 4 || cfg.Grid.Columns != 5 || cfg.Scene.FPS != 30 {
		t.Errorf("overrides not applied: %+v %+v", cfg.Grid, cfg.Scene)
	}
	if cfg.Scene.ObjectsDistance != 4 || len(cfg.Actors) != 4 {
		t.Errorf("defaults lost: distance=%v actors=%d", cfg.Scene.ObjectsDistance, len(cfg.Actors))
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file err = %v", err)
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(path, []byte("grid:\n  rows: -3\n"), 0644)
	if _, err := Load(path); !errors.Is(err, ErrInvalidGrid) {
		t.Errorf("invalid grid err = %v", err)
	}

	if _, err := Parse([]byte("grid: [")); err == nil {
		t.Error("malformed yaml accepted")
	}
}
