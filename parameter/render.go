package parameter

// Terminal projection of pixel space, one column is half as wide as a row is tall
const (
	PixelsPerColumn = 5.0
	PixelsPerRow    = 10.0

	// CharacterWidthPx is the sprite width used for camera centering
	CharacterWidthPx = PixelsPerColumn
)

// Glyphs
const (
	GlyphCarrier = '@'
	GlyphCarried = '&'
	GlyphFlag    = '⚑'
	GlyphDrip    = '┃'
)
