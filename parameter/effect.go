package parameter

import "time"

// Cursor Grid
const (
	// GridRows is the number of goo cursor rows
	GridRows = 8

	// GridColumns is the number of goo cursor columns
	GridColumns = 16
)

// Reveal timeline
const (
	// RevealInDuration is the per-cell fade in time in seconds
	RevealInDuration = 1.0

	// RevealInEach is the fade in stagger per unit grid distance in seconds
	RevealInEach = 0.02

	// RevealInEase names the fade in curve
	RevealInEase = "power4"

	// RevealOutOffset is when the fade out track starts, relative to the trigger
	RevealOutOffset = 0.3

	// RevealOutDuration is the per-cell fade out time in seconds
	RevealOutDuration = 1.0

	// RevealOutEach is the fade out stagger per unit grid distance in seconds
	RevealOutEach = 0.03

	// RevealOutEase names the fade out curve
	RevealOutEase = "power1"

	// RevealAutoInterval re-triggers the reveal without a click
	RevealAutoInterval = 10 * time.Second

	// RevealColor is the goo cell tint
	RevealColor = "#e8e8e8"
)

// Scramble text
const (
	// ScrambleStep is the delay between restoring consecutive characters
	ScrambleStep = 30 * time.Millisecond

	// ScrambleCharset is the replacement alphabet
	ScrambleCharset = "X$Y#?*01+"
)
