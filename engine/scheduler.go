package engine

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/goo-scene/core"
	"github.com/lixenwraith/goo-scene/input"
	"github.com/lixenwraith/goo-scene/parameter"
	"github.com/lixenwraith/goo-scene/scene"
	"github.com/lixenwraith/goo-scene/status"
)

// Renderer draws one frame of scene state
type Renderer interface {
	Render(st *scene.State) error
}

// Hook is a per-frame collaborator run after the scene update and before rendering
type Hook interface {
	Frame(st *scene.State, in scene.FrameInput)
}

// Command mutates scene state on the scheduler goroutine
type Command func(st *scene.State)

// Options configures a Scheduler, zero values fall back to defaults
type Options struct {
	Time     TimeProvider
	Pointer  *input.Pointer
	Renderer Renderer
	Hooks    []Hook
	Interval time.Duration
	// MaxDelta caps a single frame delta in seconds, zero disables the cap
	MaxDelta  float64
	QueueSize int
	// Status receives per-frame metrics when set
	Status *status.Registry
}

// frameMetrics holds cached registry pointers written once per tick
type frameMetrics struct {
	frames     *atomic.Int64
	renderErrs *atomic.Int64
	dropped    *atomic.Int64
	bound      *atomic.Int64
	fps        *status.AtomicFloat
	hover      *status.AtomicString
}

func newFrameMetrics(reg *status.Registry) *frameMetrics {
	if reg == nil {
		return nil
	}
	return &frameMetrics{
		frames:     reg.Ints.Get(status.KeyFrames),
		renderErrs: reg.Ints.Get(status.KeyRenderErrors),
		dropped:    reg.Ints.Get(status.KeyDropped),
		bound:      reg.Ints.Get(status.KeyBound),
		fps:        reg.Floats.Get(status.KeyFPS),
		hover:      reg.Strings.Get(status.KeyHover),
	}
}

// Scheduler owns the scene state and drives it one frame per tick
// Other goroutines interact only through Post and the published pointer
type Scheduler struct {
	state    *scene.State
	clock    *Clock
	pointer  *input.Pointer
	renderer Renderer
	hooks    []Hook
	interval time.Duration
	maxDelta float64
	metrics  *frameMetrics

	commands chan Command

	frames     atomic.Uint64
	renderErrs atomic.Uint64
	dropped    atomic.Uint64
	last       atomic.Pointer[scene.Report]

	// Lifecycle
	lifeMu   sync.Mutex
	started  bool
	stopped  bool
	stopChan chan struct{}
	done     chan struct{}
	wg       sync.WaitGroup
}

// NewScheduler creates a scheduler for st, nothing runs until Start or Tick
func NewScheduler(st *scene.State, opts Options) *Scheduler {
	if opts.Interval <= 0 {
		opts.Interval = parameter.FrameUpdateInterval
	}
	if opts.QueueSize <= 0 {
		opts.QueueSize = parameter.CommandQueueSize
	}
	if opts.Pointer == nil {
		opts.Pointer = input.NewPointer()
	}
	return &Scheduler{
		state:    st,
		clock:    NewClock(opts.Time),
		pointer:  opts.Pointer,
		renderer: opts.Renderer,
		hooks:    opts.Hooks,
		interval: opts.Interval,
		maxDelta: opts.MaxDelta,
		metrics:  newFrameMetrics(opts.Status),
		commands: make(chan Command, opts.QueueSize),
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Post queues cmd for the next tick without blocking
// Returns false if the queue is full and the command was dropped
func (s *Scheduler) Post(cmd Command) bool {
	select {
	case s.commands <- cmd:
		return true
	default:
		s.dropped.Add(1)
		return false
	}
}

// Tick runs one frame: commands, clock, scene update, hooks, render
// Must only be called from the owning goroutine, Start's loop or a test
func (s *Scheduler) Tick() scene.Report {
	s.drain()

	elapsed, delta := s.clock.Advance()
	if s.maxDelta > 0 && delta > s.maxDelta {
		delta = s.maxDelta
	}
	in := scene.FrameInput{
		Elapsed: elapsed,
		Delta:   delta,
		Pointer: s.pointer.Load(),
	}

	rep := scene.Update(s.state, in)

	for _, h := range s.hooks {
		runHook(h, s.state, in)
	}

	if s.renderer != nil {
		if err := s.renderer.Render(s.state); err != nil {
			// Frame is skipped, the loop keeps going
			if n := s.renderErrs.Add(1); n == 1 || n%300 == 0 {
				log.Printf("engine: render failed (%d total): %v", n, err)
			}
		}
	}

	s.frames.Add(1)
	s.last.Store(&rep)
	s.publish(rep)
	return rep
}

// fpsSmoothing is the weight of the newest sample in the fps average
const fpsSmoothing = 0.1

func (s *Scheduler) publish(rep scene.Report) {
	m := s.metrics
	if m == nil {
		return
	}
	m.frames.Store(int64(s.frames.Load()))
	m.renderErrs.Store(int64(s.renderErrs.Load()))
	m.dropped.Store(int64(s.dropped.Load()))
	m.bound.Store(int64(rep.Bound))

	if rep.Delta > 0 {
		m.fps.Smooth(1/rep.Delta, fpsSmoothing)
	}

	hover := ""
	if rep.Hit != nil && rep.Hit.Object != nil {
		hover = rep.Hit.Object.Name
	}
	m.hover.Store(hover)
}

func (s *Scheduler) drain() {
	for {
		select {
		case cmd := <-s.commands:
			runCommand(cmd, s.state)
		default:
			return
		}
	}
}

func runCommand(cmd Command, st *scene.State) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("engine: command failed: %v", r)
		}
	}()
	cmd(st)
}

func runHook(h Hook, st *scene.State, in scene.FrameInput) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("engine: frame hook %T failed: %v", h, r)
		}
	}()
	h.Frame(st, in)
}

// Start begins ticking on its own goroutine until ctx is done or Stop is called
// A second Start, or a Start after Stop, is a no-op
func (s *Scheduler) Start(ctx context.Context) {
	s.lifeMu.Lock()
	defer s.lifeMu.Unlock()
	if s.started || s.stopped {
		return
	}
	s.started = true
	s.wg.Add(1)
	core.Go(func() { s.loop(ctx) })
}

// Stop halts the loop and waits for the in-flight tick, safe to call repeatedly
// Done is closed on return, also when the loop never started
func (s *Scheduler) Stop() {
	s.lifeMu.Lock()
	if s.stopped {
		s.lifeMu.Unlock()
		return
	}
	s.stopped = true
	close(s.stopChan)
	started := s.started
	s.lifeMu.Unlock()

	if started {
		s.wg.Wait()
	} else {
		close(s.done)
	}
}

// Done is closed when the loop exits
func (s *Scheduler) Done() <-chan struct{} {
	return s.done
}

func (s *Scheduler) loop(ctx context.Context) {
	defer s.wg.Done()
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		// Cancellation wins over a due tick, including the first one
		select {
		case <-ctx.Done():
			return
		case <-s.stopChan:
			return
		default:
		}
		s.Tick()

		select {
		case <-ctx.Done():
			return
		case <-s.stopChan:
			return
		case <-ticker.C:
		}
	}
}

// Frames returns the number of completed ticks
func (s *Scheduler) Frames() uint64 {
	return s.frames.Load()
}

// RenderErrors returns the number of frames the renderer rejected
func (s *Scheduler) RenderErrors() uint64 {
	return s.renderErrs.Load()
}

// Dropped returns the number of commands rejected by a full queue
func (s *Scheduler) Dropped() uint64 {
	return s.dropped.Load()
}

// LastReport returns the most recent tick summary, zero before the first tick
func (s *Scheduler) LastReport() scene.Report {
	if r := s.last.Load(); r != nil {
		return *r
	}
	return scene.Report{}
}
