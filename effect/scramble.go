package effect

import (
	"math"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/goo-scene/input"
	"github.com/lixenwraith/goo-scene/parameter"
	"github.com/lixenwraith/goo-scene/scene"
	"github.com/lixenwraith/goo-scene/vmath"
)

// Label is a line of text that decodes from random glyphs when hovered
type Label struct {
	Text string
	// Col, Row is the label origin in terminal cells
	Col, Row int

	text      []rune
	scrambled []rune
	started   float64
	running   bool
	hovered   bool
}

// Width returns the label's display width in cells
func (l *Label) Width() int {
	return runewidth.StringWidth(l.Text)
}

// Contains reports whether terminal cell (col, row) falls inside the label
func (l *Label) Contains(col, row int) bool {
	return row == l.Row && col >= l.Col && col < l.Col+l.Width()
}

// Running reports whether a decode is in progress
func (l *Label) Running() bool {
	return l.running
}

// Scramble drives hover decoding for a set of labels
type Scramble struct {
	labels  []*Label
	charset []rune
	step    float64
	rng     *vmath.FastRand
	now     float64
}

// NewScramble creates a driver restoring one character every step seconds
func NewScramble(step float64, seed uint64) *Scramble {
	if step <= 0 {
		step = parameter.ScrambleStep.Seconds()
	}
	return &Scramble{
		charset: []rune(parameter.ScrambleCharset),
		step:    step,
		rng:     vmath.NewFastRand(seed),
	}
}

// Add registers a label at the given cell origin
func (s *Scramble) Add(text string, col, row int) *Label {
	l := &Label{Text: text, Col: col, Row: row, text: []rune(text)}
	s.labels = append(s.labels, l)
	return l
}

// Labels returns registered labels in insertion order
func (s *Scramble) Labels() []*Label {
	return s.labels
}

// Hover starts decoding label l, ignored while a decode is already running
func (s *Scramble) Hover(l *Label) bool {
	if l.running || len(l.text) == 0 {
		return false
	}
	l.scrambled = make([]rune, len(l.text))
	for i := range l.scrambled {
		l.scrambled[i] = s.charset[s.rng.Intn(len(s.charset))]
	}
	l.started = s.now
	l.running = true
	return true
}

// Advance moves the decode clock forward and completes finished labels
func (s *Scramble) Advance(dt float64) {
	if dt > 0 {
		s.now += dt
	}
	for _, l := range s.labels {
		if l.running && s.revealed(l) >= len(l.text) {
			l.running = false
		}
	}
}

// revealed is how many leading characters are restored, character i returns at i*step
func (s *Scramble) revealed(l *Label) int {
	n := int(math.Floor((s.now-l.started)/s.step+1e-9)) + 1
	if n > len(l.text) {
		n = len(l.text)
	}
	return n
}

// Display returns the label text as currently shown
func (s *Scramble) Display(l *Label) string {
	if !l.running {
		return l.Text
	}
	n := s.revealed(l)
	out := make([]rune, 0, len(l.text))
	out = append(out, l.text[:n]...)
	out = append(out, l.scrambled[n:]...)
	return string(out)
}

// Frame is the scheduler hook: hover edges start decodes, then the clock advances
func (s *Scramble) Frame(st *scene.State, in scene.FrameInput) {
	s.Advance(in.Delta)

	w, h := float64(st.Viewport.Width), float64(st.Viewport.Height)
	if w <= 0 || h <= 0 {
		return
	}
	x, y := input.Denormalize(in.Pointer, w, h)
	col, row := int(math.Floor(x)), int(math.Floor(y))
	for _, l := range s.labels {
		over := l.Contains(col, row)
		if over && !l.hovered {
			s.Hover(l)
		}
		l.hovered = over
	}
}
