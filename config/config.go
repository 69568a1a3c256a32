// Package config loads the scene description from YAML layered over built-in defaults
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/goo-scene/vmath"
)

var (
	ErrInvalidGrid   = errors.New("config: invalid grid")
	ErrInvalidRate   = errors.New("config: invalid rate")
	ErrInvalidCamera = errors.New("config: invalid camera")
	ErrInvalidColor  = errors.New("config: invalid color")
	ErrInvalidEase   = errors.New("config: invalid ease")
	ErrInvalidActor  = errors.New("config: invalid actor")
)

// Vec3 is an [x, y, z] triple
type Vec3 [3]float64

// V converts to a vector
func (v Vec3) V() vmath.Vec3F {
	return vmath.Vec3F{X: v[0], Y: v[1], Z: v[2]}
}

// Euler converts to XYZ rotation angles in radians
func (v Vec3) Euler() vmath.Euler {
	return vmath.Euler{X: v[0], Y: v[1], Z: v[2]}
}

// Config is the complete scene description
type Config struct {
	Scene     SceneConfig    `yaml:"scene"`
	Camera    CameraConfig   `yaml:"camera"`
	Grid      GridConfig     `yaml:"grid"`
	Reveal    RevealConfig   `yaml:"reveal"`
	Scramble  ScrambleConfig `yaml:"scramble"`
	Particles ParticleConfig `yaml:"particles"`
	Actors    []ActorConfig  `yaml:"actors"`
	Labels    []LabelConfig  `yaml:"labels"`
}

// SceneConfig holds frame loop, scroll and parallax settings
type SceneConfig struct {
	FPS               int     `yaml:"fps"`
	ObjectsDistance   float64 `yaml:"objects_distance"`
	MaxScroll         float64 `yaml:"max_scroll"`
	ScrollStep        float64 `yaml:"scroll_step"`
	ScrollDuration    float64 `yaml:"scroll_duration"` // seconds
	ScrollEase        string  `yaml:"scroll_ease"`
	ParallaxFactor    float64 `yaml:"parallax_factor"`
	ParallaxSmoothing float64 `yaml:"parallax_smoothing"`
	NoiseSeed         uint64  `yaml:"noise_seed"`
	// LoadWorkers bounds concurrent model builds, 0 builds every model at once
	LoadWorkers int `yaml:"load_workers"`
}

type CameraConfig struct {
	FOV        float64 `yaml:"fov"`
	Near       float64 `yaml:"near"`
	Far        float64 `yaml:"far"`
	Position   Vec3    `yaml:"position"`
	Target     Vec3    `yaml:"target"`
	CellAspect float64 `yaml:"cell_aspect"`
	FogNear    float64 `yaml:"fog_near"`
	FogFar     float64 `yaml:"fog_far"`
	FogColor   string  `yaml:"fog_color"`
}

type GridConfig struct {
	Rows    int `yaml:"rows"`
	Columns int `yaml:"columns"`
}

// PhaseConfig is one reveal track
type PhaseConfig struct {
	Offset   float64 `yaml:"offset"`
	Duration float64 `yaml:"duration"`
	Each     float64 `yaml:"each"`
	Ease     string  `yaml:"ease"`
}

type RevealConfig struct {
	Color        string      `yaml:"color"`
	AutoInterval float64     `yaml:"auto_interval"` // seconds, 0 disables
	In           PhaseConfig `yaml:"in"`
	Out          PhaseConfig `yaml:"out"`
}

type ScrambleConfig struct {
	Step float64 `yaml:"step"` // seconds per restored character
}

type ParticleConfig struct {
	Count  int     `yaml:"count"`
	Spread float64 `yaml:"spread"`
	Seed   uint64  `yaml:"seed"`
	Color  string  `yaml:"color"`
}

// AxisConfig mirrors scene.AxisMotion
type AxisConfig struct {
	Cos   float64 `yaml:"cos"`
	Noise float64 `yaml:"noise"`
	Base  float64 `yaml:"base"`
}

type MotionConfig struct {
	Frequency float64     `yaml:"frequency"`
	X         *AxisConfig `yaml:"x"`
	Y         *AxisConfig `yaml:"y"`
	Z         *AxisConfig `yaml:"z"`
}

// ActorConfig describes one model and its behavior
type ActorConfig struct {
	Name          string        `yaml:"name"`
	Shape         string        `yaml:"shape"`
	Detail        int           `yaml:"detail"`
	Scale         float64       `yaml:"scale"`
	Position      Vec3          `yaml:"position"`
	Rotation      Vec3          `yaml:"rotation"`
	Color         string        `yaml:"color"`
	Latency       float64       `yaml:"latency"` // seconds
	Reactive      bool          `yaml:"reactive"`
	Intersectable bool          `yaml:"intersectable"`
	Motion        *MotionConfig `yaml:"motion"`
}

type LabelConfig struct {
	Text string `yaml:"text"`
	Col  int    `yaml:"col"`
	Row  int    `yaml:"row"`
}

// Default returns the built-in configuration
func Default() *Config {
	cfg, err := Parse([]byte(DefaultYAML))
	if err != nil {
		panic(fmt.Sprintf("config: built-in defaults invalid: %v", err))
	}
	return cfg
}

// Parse decodes YAML and validates the result, missing keys keep zero values
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads path and layers it over the defaults
// Lists (actors, labels) replace the default lists wholesale
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
