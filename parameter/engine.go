package parameter

import "time"

// Frame Loop
const (
	// FrameUpdateInterval is the scheduler tick interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// CommandQueueSize is the capacity of the scheduler command queue
	// Posts beyond capacity are dropped, never blocking the input goroutine
	CommandQueueSize = 64

	// MaxFrameDelta caps a single tick delta in seconds so a stalled terminal doesn't teleport animations
	MaxFrameDelta = 0.25
)

// Scroll
const (
	// ObjectsDistance is the world height of one scrolled viewport
	ObjectsDistance = 4.0

	// ScrollDuration is the camera lift tween duration in seconds
	ScrollDuration = 4.0

	// ScrollEase names the camera lift easing curve
	ScrollEase = "power2.out"

	// ScrollStep is the scroll delta in viewport heights per wheel notch or key press
	ScrollStep = 0.25

	// MaxScroll is the deepest scroll position in viewport heights
	MaxScroll = 10.0
)

// Parallax
const (
	// ParallaxFactor scales the normalized pointer into a rig offset
	ParallaxFactor = 0.5

	// ParallaxSmoothing is the rig approach rate per second
	ParallaxSmoothing = 5.0
)

// Assets
const (
	// ParticleCount is the number of background particles
	ParticleCount = 1000

	// ParticleSpread is the particle field extent on X and Z
	ParticleSpread = 4.0

	// ModelDetail is the default point cloud resolution per model
	ModelDetail = 24

	// NoiseSeed seeds the simplex field when none is configured
	NoiseSeed = 0x5eed
)
