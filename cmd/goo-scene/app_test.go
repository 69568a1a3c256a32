package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/goo-scene/config"
	"github.com/lixenwraith/goo-scene/status"
)

func newTestApp(t *testing.T) *app {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)

	a, err := newApp(config.Default(), screen)
	if err != nil {
		t.Fatalf("newApp: %v", err)
	}
	return a
}

func TestNewAppWiring(t *testing.T) {
	a := newTestApp(t)
	if a.grid.Len() != 8*16 {
		t.Errorf("grid cells = %d", a.grid.Len())
	}
	if a.state.Viewport.Width != 80 || a.state.Viewport.Height != 24 {
		t.Errorf("viewport = %+v", a.state.Viewport)
	}
	if len(a.state.Actors) != 4 || len(a.specs) != 4 || len(a.bindings) != 4 {
		t.Errorf("actors=%d specs=%d bindings=%d", len(a.state.Actors), len(a.specs), len(a.bindings))
	}
	if len(a.state.Particles) != 1000 {
		t.Errorf("particles = %d", len(a.state.Particles))
	}
	if a.loader.Workers != 2 {
		t.Errorf("loader workers = %d, want config default 2", a.loader.Workers)
	}
	if len(a.labels.Labels()) != 3 {
		t.Errorf("labels = %d", len(a.labels.Labels()))
	}
}

func TestHandlePointerAndQuit(t *testing.T) {
	a := newTestApp(t)

	if a.handle(tcell.NewEventMouse(60, 6, tcell.ButtonNone, tcell.ModNone)) {
		t.Fatal("mouse move quit")
	}
	p := a.pointer.Load()
	if p.X <= 0 || p.Y >= 0 {
		t.Errorf("pointer = %+v, want right of and above center", p)
	}

	if !a.handle(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("q did not quit")
	}
	if !a.handle(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)) {
		t.Error("ctrl-c did not quit")
	}
}

func TestHandleCommandsRunOnTick(t *testing.T) {
	a := newTestApp(t)
	a.sched.Tick()

	a.handle(tcell.NewEventMouse(79, 23, tcell.Button1, tcell.ModNone))
	a.handle(tcell.NewEventMouse(79, 23, tcell.WheelDown, tcell.ModNone))
	a.handle(tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone))
	a.handle(tcell.NewEventResize(100, 30))

	if a.state.Scroll != 0 {
		t.Fatal("commands applied before tick")
	}
	a.sched.Tick()

	if a.state.Scroll != 0.5 {
		t.Errorf("scroll = %v, want 0.5", a.state.Scroll)
	}
	if a.reveal.Origin() != a.grid.Len()-1 {
		t.Errorf("reveal origin = %d, want bottom right cell", a.reveal.Origin())
	}
	if a.state.Viewport.Width != 100 || a.grid.Bounds().W != 100 {
		t.Errorf("resize not applied: %+v %+v", a.state.Viewport, a.grid.Bounds())
	}
	if got := a.status.Ints.Get(status.KeyFrames).Load(); got != 2 {
		t.Errorf("frames metric = %d", got)
	}
}

func TestInputReaderForwardsAndCloses(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	events := startInputReader(screen)

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	deadline := time.After(2 * time.Second)
	for got := false; !got; {
		select {
		case ev := <-events:
			if k, ok := ev.(*tcell.EventKey); ok && k.Rune() == 'q' {
				got = true
			}
		case <-deadline:
			t.Fatal("injected key never arrived")
		}
	}

	screen.Fini()
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("reader did not close after Fini")
		}
	}
}
