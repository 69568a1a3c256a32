package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/goo-scene/asset"
	"github.com/lixenwraith/goo-scene/config"
	"github.com/lixenwraith/goo-scene/core"
	"github.com/lixenwraith/goo-scene/cursor"
	"github.com/lixenwraith/goo-scene/effect"
	"github.com/lixenwraith/goo-scene/engine"
	"github.com/lixenwraith/goo-scene/input"
	"github.com/lixenwraith/goo-scene/noise"
	"github.com/lixenwraith/goo-scene/parameter"
	"github.com/lixenwraith/goo-scene/render"
	"github.com/lixenwraith/goo-scene/scene"
	"github.com/lixenwraith/goo-scene/status"
	"github.com/lixenwraith/goo-scene/tween"
)

// app wires config, scene, effects and the scheduler to one tcell screen
// Scene state, grid and effects are touched only by the scheduler goroutine, the event
// loop reaches them through posted commands
type app struct {
	cfg    *config.Config
	screen tcell.Screen

	state  *scene.State
	grid   *cursor.Grid
	reveal *effect.Reveal
	labels *effect.Scramble

	pointer *input.Pointer
	machine *input.Machine
	sched   *engine.Scheduler
	status  *status.Registry

	loader   *asset.Loader
	specs    []asset.ModelSpec
	bindings map[string]*scene.Binding
}

func newApp(cfg *config.Config, screen tcell.Screen) (*app, error) {
	w, h := screen.Size()

	specs, err := cfg.ModelSpecs()
	if err != nil {
		return nil, err
	}
	actors, bindings := cfg.BuildActors()

	grid, err := cursor.NewGrid(cfg.Grid.Rows, cfg.Grid.Columns, cursor.Rect{W: float64(w), H: float64(h)})
	if err != nil {
		return nil, fmt.Errorf("cursor grid: %w", err)
	}

	st := newState(cfg, actors)
	st.Resize(w, h)

	reveal := effect.NewReveal(grid, cfg.RevealTimeline())
	labels := effect.NewScramble(cfg.Scramble.Step, cfg.Scene.NoiseSeed)
	for _, l := range cfg.Labels {
		labels.Add(l.Text, l.Col, l.Row)
	}

	reg := status.NewRegistry()
	renderer := render.NewSceneRenderer(screen, render.Options{
		Palette: palette(cfg),
		Fog:     render.Fog{Near: cfg.Camera.FogNear, Far: cfg.Camera.FogFar},
		Reveal:  reveal,
		Labels:  labels,
		HUD:     true,
		Status:  reg,
	})

	pointer := input.NewPointer()
	sched := engine.NewScheduler(st, engine.Options{
		Pointer:  pointer,
		Renderer: renderer,
		Hooks:    []engine.Hook{reveal, labels},
		Interval: time.Second / time.Duration(cfg.Scene.FPS),
		MaxDelta: parameter.MaxFrameDelta,
		Status:   reg,
	})

	return &app{
		cfg:      cfg,
		screen:   screen,
		state:    st,
		grid:     grid,
		reveal:   reveal,
		labels:   labels,
		pointer:  pointer,
		machine:  input.NewMachine(),
		sched:    sched,
		status:   reg,
		loader:   asset.NewLoader(cfg.Scene.LoadWorkers, reg),
		specs:    specs,
		bindings: bindings,
	}, nil
}

// newState assembles the scene from config, actors arrive unbound
func newState(cfg *config.Config, actors []*scene.Actor) *scene.State {
	cam := cfg.Camera
	depth := cfg.Scene.MaxScroll * cfg.Scene.ObjectsDistance
	return &scene.State{
		Actors: actors,
		Rig: scene.CameraRig{
			Camera: scene.Camera{
				Position: cam.Position.V(),
				FOV:      cam.FOV,
				Near:     cam.Near,
				Far:      cam.Far,
			},
			Target: cam.Target.V(),
			Lift:   tween.New(cam.Position[1], cfg.Scene.ScrollDuration, cfg.ScrollEase()),
		},
		Particles: asset.Particles(cfg.Particles.Count, cfg.Particles.Spread, depth, cfg.Particles.Seed),
		Noise:     noise.New(cfg.Scene.NoiseSeed),
		Parallax: scene.Parallax{
			Factor:        cfg.Scene.ParallaxFactor,
			SmoothingRate: cfg.Scene.ParallaxSmoothing,
		},
		ObjectsDistance: cfg.Scene.ObjectsDistance,
		MaxScroll:       cfg.Scene.MaxScroll,
		CellAspect:      cam.CellAspect,
	}
}

func palette(cfg *config.Config) render.Palette {
	fog := render.FromColorful(config.Color(cfg.Camera.FogColor))
	return render.Palette{
		Background: fog,
		Fog:        fog,
		Particle:   render.FromColorful(config.Color(cfg.Particles.Color)),
		Goo:        render.FromColorful(config.Color(cfg.Reveal.Color)),
		Text:       render.RGBWhite,
		HUD:        render.RGB{R: 110, G: 110, B: 110},
	}
}

// run starts loading and the frame loop, then consumes terminal events until quit or ctx ends
func (a *app) run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	core.Go(func() {
		if err := a.loader.Load(ctx, a.specs, a.bindings); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("goo-scene: loading: %v", err)
		}
	})

	a.sched.Start(ctx)
	defer a.sched.Stop()

	events := startInputReader(a.screen)
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if a.handle(ev) {
				return
			}
		}
	}
}

// handle applies one terminal event, returns true on quit
func (a *app) handle(ev tcell.Event) bool {
	for _, in := range a.machine.Process(ev) {
		switch in.Type {
		case input.IntentQuit:
			return true

		case input.IntentPointerMove:
			x, y := input.CellCenter(in.X, in.Y)
			w, h := a.screen.Size()
			a.pointer.Publish(input.Normalize(x, y, float64(w), float64(h), time.Now()))

		case input.IntentClick:
			x, y := input.CellCenter(in.X, in.Y)
			a.sched.Post(func(*scene.State) {
				a.reveal.Trigger(a.grid.IndexAt(x, y))
			})

		case input.IntentScroll, input.IntentScrollKey:
			delta := in.Delta * a.cfg.Scene.ScrollStep
			a.sched.Post(func(st *scene.State) {
				st.ScrollBy(delta)
			})

		case input.IntentResize:
			w, h := in.Width, in.Height
			a.sched.Post(func(st *scene.State) {
				st.Resize(w, h)
				a.grid.SetBounds(cursor.Rect{W: float64(w), H: float64(h)})
			})
			a.screen.Sync()
		}
	}
	return false
}

// startInputReader pumps screen events into a channel, closed when the screen is finalized
// Mouse reports are dropped under backlog since the pointer is last-writer-wins, keys and resizes are not
func startInputReader(screen tcell.Screen) chan tcell.Event {
	ch := make(chan tcell.Event, 64)
	core.Go(func() {
		defer close(ch)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			if _, mouse := ev.(*tcell.EventMouse); mouse {
				select {
				case ch <- ev:
				default:
				}
				continue
			}
			ch <- ev
		}
	})
	return ch
}
