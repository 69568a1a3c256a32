package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // q, Esc, Ctrl+C
	IntentResize // Terminal resize event

	// Pointer
	IntentPointerMove // Any mouse report carrying a position
	IntentClick       // Left button press edge
	IntentScroll      // Wheel notch, Delta carries direction

	// Keyboard scroll fallback for terminals without wheel reporting
	IntentScrollKey
)

// Intent is a parsed action with its payload
// X/Y are raw surface coordinates in cells, Width/Height are set on resize
type Intent struct {
	Type   IntentType
	X, Y   int
	Delta  float64
	Width  int
	Height int
}
