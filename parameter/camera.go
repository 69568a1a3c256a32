package parameter

// Camera defaults
// Position is rig-local, the rig group carries parallax on top
const (
	CameraFOV  = 75.0
	CameraNear = 0.1
	CameraFar  = 100.0

	CameraX = 2.0
	CameraY = -2.0
	CameraZ = 2.5

	// Camera look-at target
	CameraTargetX = 0.0
	CameraTargetY = 0.75
	CameraTargetZ = 0.0

	// CellAspect is terminal cell width over height
	// Most monospace fonts render cells roughly twice as tall as wide
	CellAspect = 0.5
)

// Fog
const (
	// FogNear is the view depth where fog starts
	FogNear = 2.0

	// FogFar is the view depth where fog fully replaces the point color
	FogFar = 9.0

	// FogColor is the fog and background color as hex
	FogColor = "#1c1c1c"
)
