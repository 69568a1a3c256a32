package render

import (
	"errors"
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/goo-scene/effect"
	"github.com/lixenwraith/goo-scene/parameter"
	"github.com/lixenwraith/goo-scene/scene"
	"github.com/lixenwraith/goo-scene/status"
	"github.com/lixenwraith/goo-scene/vmath"
)

// ErrNoScreen is returned when rendering without a target screen
var ErrNoScreen = errors.New("render: no screen")

// Palette holds the scene's fixed colors
type Palette struct {
	Background RGB
	Fog        RGB
	Particle   RGB
	Goo        RGB
	Text       RGB
	HUD        RGB
}

// Fog is linear depth fog: no fog before Near, full fog color at Far
type Fog struct {
	Near, Far float64
}

// Factor returns the fog amount in [0, 1] at view depth d
func (f Fog) Factor(d float64) float64 {
	if f.Far <= f.Near {
		return 0
	}
	return vmath.ClampF((d-f.Near)/(f.Far-f.Near), 0, 1)
}

// Options configures a SceneRenderer, nil effects are skipped
type Options struct {
	Palette Palette
	Fog     Fog
	Reveal  *effect.Reveal
	Labels  *effect.Scramble
	HUD     bool
	// Status feeds the HUD frame rate and hover readout, values lag one frame
	Status *status.Registry
}

// SceneRenderer projects the scene into terminal cells and flushes them to a tcell screen
type SceneRenderer struct {
	screen tcell.Screen
	buf    *RenderBuffer
	opts   Options
	ramp   []rune
}

// NewSceneRenderer creates a renderer drawing to screen
func NewSceneRenderer(screen tcell.Screen, opts Options) *SceneRenderer {
	w, h := 0, 0
	if screen != nil {
		w, h = screen.Size()
	}
	return &SceneRenderer{
		screen: screen,
		buf:    NewRenderBuffer(w, h, opts.Palette.Background),
		opts:   opts,
		ramp:   []rune(parameter.GlyphRamp),
	}
}

// Buffer exposes the last composited frame
func (r *SceneRenderer) Buffer() *RenderBuffer {
	return r.buf
}

// Render draws one frame, implements engine.Renderer
func (r *SceneRenderer) Render(st *scene.State) error {
	if r.screen == nil {
		return ErrNoScreen
	}
	w, h := r.screen.Size()
	if w <= 0 || h <= 0 {
		return nil
	}
	if bw, bh := r.buf.Bounds(); bw != w || bh != h {
		r.buf.Resize(w, h)
	} else {
		r.buf.Clear()
	}

	r.drawParticles(st)
	r.drawActors(st)
	r.drawGoo()
	r.drawLabels()
	if r.opts.HUD {
		r.drawHUD(st)
	}

	r.buf.FlushToScreen(r.screen)
	return nil
}

// toCell maps a world point to a terminal cell and view depth
func (r *SceneRenderer) toCell(st *scene.State, p vmath.Vec3F) (x, y int, depth float64, ok bool) {
	ndcX, ndcY, depth, ok := st.Rig.Project(p)
	if !ok {
		return 0, 0, depth, false
	}
	w, h := r.buf.Bounds()
	x = min(int((ndcX+1)*0.5*float64(w)), w-1)
	y = min(int((1-ndcY)*0.5*float64(h)), h-1)
	return x, y, depth, true
}

func (r *SceneRenderer) drawParticles(st *scene.State) {
	p := r.opts.Palette
	for _, pt := range st.Particles {
		x, y, depth, ok := r.toCell(st, pt)
		if !ok {
			continue
		}
		r.buf.Plot(x, y, depth, parameter.ParticleGlyph, Mix(p.Particle, p.Fog, r.opts.Fog.Factor(depth)))
	}
}

func (r *SceneRenderer) drawActors(st *scene.State) {
	for _, a := range st.Actors {
		obj := a.Object()
		if obj == nil {
			continue
		}
		base := FromColorful(obj.Mesh.Color)
		for _, lp := range obj.Mesh.Points {
			x, y, depth, ok := r.toCell(st, obj.Transform.Apply(lp))
			if !ok {
				continue
			}
			f := r.opts.Fog.Factor(depth)
			r.buf.Plot(x, y, depth, r.glyph(f), Mix(base, r.opts.Palette.Fog, f))
		}
	}
}

// glyph picks a denser rune for nearer points
func (r *SceneRenderer) glyph(fog float64) rune {
	i := int(math.Round((1 - fog) * float64(len(r.ramp)-1)))
	return r.ramp[max(0, min(i, len(r.ramp)-1))]
}

func (r *SceneRenderer) drawGoo() {
	rv := r.opts.Reveal
	if rv == nil {
		return
	}
	goo := r.opts.Palette.Goo
	for _, c := range rv.Grid().Cells() {
		o := rv.Opacity(c.Index)
		if o <= 0 {
			continue
		}
		x0, x1 := int(math.Round(c.Rect.X)), int(math.Round(c.Rect.X+c.Rect.W))
		y0, y1 := int(math.Round(c.Rect.Y)), int(math.Round(c.Rect.Y+c.Rect.H))
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				r.buf.Set(x, y, 0, goo, goo, BlendAlphaBg, o)
			}
		}
	}
}

func (r *SceneRenderer) drawLabels() {
	s := r.opts.Labels
	if s == nil {
		return
	}
	for _, l := range s.Labels() {
		r.buf.DrawText(l.Col, l.Row, s.Display(l), r.opts.Palette.Text)
	}
}

func (r *SceneRenderer) drawHUD(st *scene.State) {
	_, h := r.buf.Bounds()
	row := h - parameter.HUDRow
	bound := 0
	for _, a := range st.Actors {
		if a.Bound() {
			bound++
		}
	}
	left := fmt.Sprintf(" scroll %.2f/%.0f  models %d/%d", st.Scroll, st.MaxScroll, bound, len(st.Actors))
	if reg := r.opts.Status; reg != nil {
		left += fmt.Sprintf("  %3.0f fps", reg.Floats.Get(status.KeyFPS).Get())
		if hover := reg.Strings.Get(status.KeyHover).Load(); hover != "" {
			left += "  [" + hover + "]"
		}
	}
	// Readout wins over the key hint on narrow terminals
	r.buf.DrawTextRight(row, "wheel/j/k scroll · click goo · q quit ", r.opts.Palette.HUD)
	r.buf.DrawText(0, row, left, r.opts.Palette.HUD)
}
