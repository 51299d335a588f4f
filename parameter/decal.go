package parameter

// Decal generator defaults
// Sizes are fractions of the nominal cell width, counts are inclusive ranges
const (
	DecalNominalCellWidth = StepWidth

	DecalBlotCountMin = 1
	DecalBlotCountMax = 2

	// DecalBlotSizeMin/Max scale the blot base size from the nominal cell width
	DecalBlotSizeMin = 0.08
	DecalBlotSizeMax = 0.18

	// DecalPieceBase is the piece count of a zero-size blot
	DecalPieceBase = 3
	// DecalPieceSizeFactor adds one piece per 1/factor pixels of blot size
	DecalPieceSizeFactor = 0.25
	// DecalPieceMax caps pieces per blot
	DecalPieceMax = 10

	DecalDripCountMin = 0
	DecalDripCountMax = 2

	// DecalDripLengthMin/Max bound the streak length in pixels
	DecalDripLengthMin = 8.0
	DecalDripLengthMax = 26.0

	// DecalDripWidthMin/Max bound the streak line width in pixels
	DecalDripWidthMin = 1.5
	DecalDripWidthMax = 3.5
)

// Fixed decal geometry, relative to the blot size or the cell
const (
	// DecalAnchorXMin/Max keep blots off the cell's side edges
	DecalAnchorXMin = 0.15
	DecalAnchorXMax = 0.85
	// DecalAnchorYMax biases blots toward the leading (top) edge of the cell
	DecalAnchorYMax = 0.35

	// DecalPieceOffsetMax bounds piece offset from the blot anchor
	DecalPieceOffsetMax = 0.8
	// DecalPieceRadiusMin/Max bound piece radii
	DecalPieceRadiusMin = 0.15
	DecalPieceRadiusMax = 0.6

	// DecalCenterRW/RH size the center ellipse every blot carries
	DecalCenterRW = 0.5
	DecalCenterRH = 0.4

	// DecalDripJitter is the max drip anchor deviation from its blot
	DecalDripJitterX = 0.03
	DecalDripJitterY = 0.05
)
