package parameter

// HUD
const (
	// HUDRow is the status line row counted from the bottom
	HUDRow = 1

	// LabelMarginX is the label column inset from the left edge
	LabelMarginX = 2

	// LabelMarginY is the first label row
	LabelMarginY = 1
)

// Glyphs
const (
	// GlyphRamp orders point glyphs from far to near
	GlyphRamp = ".:-=+*#%@"

	// ParticleGlyph is drawn for background particles
	ParticleGlyph = '.'

	// GooGlyph fills revealed cursor grid cells
	GooGlyph = '█'
)
