package input

import (
	"github.com/gdamore/tcell/v2"
)

// Machine parses tcell events into Intents
// Tracks button state across reports to turn level-triggered mouse reports into press edges
type Machine struct {
	buttons tcell.ButtonMask
}

// NewMachine creates a new input machine
func NewMachine() *Machine {
	return &Machine{}
}

// Process parses a terminal event into zero or more Intents
// A single mouse report can carry a move and a click or scroll
func (m *Machine) Process(ev tcell.Event) []Intent {
	switch e := ev.(type) {
	case *tcell.EventResize:
		w, h := e.Size()
		return []Intent{{Type: IntentResize, Width: w, Height: h}}
	case *tcell.EventKey:
		return m.processKey(e)
	case *tcell.EventMouse:
		return m.processMouse(e)
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) []Intent {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return []Intent{{Type: IntentQuit}}
	case tcell.KeyPgDn, tcell.KeyDown:
		return []Intent{{Type: IntentScrollKey, Delta: 1}}
	case tcell.KeyPgUp, tcell.KeyUp:
		return []Intent{{Type: IntentScrollKey, Delta: -1}}
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return []Intent{{Type: IntentQuit}}
		case 'j':
			return []Intent{{Type: IntentScrollKey, Delta: 1}}
		case 'k':
			return []Intent{{Type: IntentScrollKey, Delta: -1}}
		}
	}
	return nil
}

func (m *Machine) processMouse(ev *tcell.EventMouse) []Intent {
	x, y := ev.Position()
	btn := ev.Buttons()
	prev := m.buttons
	m.buttons = btn

	intents := []Intent{{Type: IntentPointerMove, X: x, Y: y}}

	if btn&tcell.Button1 != 0 && prev&tcell.Button1 == 0 {
		intents = append(intents, Intent{Type: IntentClick, X: x, Y: y})
	}
	// Wheel reports are discrete notches, not held state
	if btn&tcell.WheelDown != 0 {
		intents = append(intents, Intent{Type: IntentScroll, X: x, Y: y, Delta: 1})
	}
	if btn&tcell.WheelUp != 0 {
		intents = append(intents, Intent{Type: IntentScroll, X: x, Y: y, Delta: -1})
	}
	return intents
}
