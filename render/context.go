package render

import (
	"math"

	"github.com/lixenwraith/stepclimb/climb"
	"github.com/lixenwraith/stepclimb/decal"
	"github.com/lixenwraith/stepclimb/parameter"
)

// DecalSource supplies the cached ornament for a step
type DecalSource interface {
	GetOrCreate(cell int) *decal.Record
}

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	State  *climb.State
	Decals DecalSource

	// Screen dimensions (terminal size), the last row is the status bar
	ScreenWidth  int
	ScreenHeight int

	// Viewport in pixels
	ViewWidth  float64
	ViewHeight float64

	// Camera position (top-left of viewport in pixel space)
	CameraX float64
	CameraY float64

	// Inclusive visible step window
	FirstStep int
	LastStep  int

	// FinaleLines is shown once the top step is reached
	FinaleLines []string

	Muted bool
}

// NewRenderContext centers the camera on the carrier and resolves the visible steps
func NewRenderContext(state *climb.State, decals DecalSource, width, height int, finale []string) RenderContext {
	viewW := float64(width) * parameter.PixelsPerColumn
	viewH := float64(max(height-1, 0)) * parameter.PixelsPerRow

	camX, camY := state.Layout.Camera(state.Pos, viewW, viewH, parameter.CharacterWidthPx)
	first, last := state.Layout.VisibleRange(camX, viewW)

	return RenderContext{
		State:        state,
		Decals:       decals,
		ScreenWidth:  width,
		ScreenHeight: height,
		ViewWidth:    viewW,
		ViewHeight:   viewH,
		CameraX:      camX,
		CameraY:      camY,
		FirstStep:    first,
		LastStep:     last,
		FinaleLines:  finale,
	}
}

// PlayHeight is the number of rows above the status bar
func (ctx RenderContext) PlayHeight() int {
	return max(ctx.ScreenHeight-1, 0)
}

// StepScreenPx returns step i's top-left corner relative to the camera
func (ctx RenderContext) StepScreenPx(i int) (sx, sy float64) {
	x, y := ctx.State.Layout.StepXY(i)
	return x - ctx.CameraX, y - ctx.CameraY
}

// ForEachStepCell calls fn for every on-screen cell whose center lies inside step i
// lx, ly are the cell center in pixels relative to the step's top-left corner
func (ctx RenderContext) ForEachStepCell(i int, fn func(col, row int, lx, ly float64)) {
	sx, sy := ctx.StepScreenPx(i)

	c0 := max(ColOf(sx), 0)
	c1 := min(ColOf(sx+parameter.StepWidth), ctx.ScreenWidth-1)
	r0 := max(RowOf(sy), 0)
	r1 := min(RowOf(sy+parameter.StepHeight), ctx.PlayHeight()-1)

	for row := r0; row <= r1; row++ {
		ly := RowCenter(row) - sy
		if ly < 0 || ly >= parameter.StepHeight {
			continue
		}
		for col := c0; col <= c1; col++ {
			lx := ColCenter(col) - sx
			if lx < 0 || lx >= parameter.StepWidth {
				continue
			}
			fn(col, row, lx, ly)
		}
	}
}

// StepTopRow returns the first row inside step i, which may be off screen
func (ctx RenderContext) StepTopRow(i int) int {
	_, sy := ctx.StepScreenPx(i)
	row := RowOf(sy)
	if RowCenter(row) < sy {
		row++
	}
	return row
}

// ColOf maps a screen pixel x to its column
func ColOf(px float64) int {
	return int(math.Floor(px / parameter.PixelsPerColumn))
}

// RowOf maps a screen pixel y to its row
func RowOf(py float64) int {
	return int(math.Floor(py / parameter.PixelsPerRow))
}

// ColCenter returns the pixel x at the middle of col
func ColCenter(col int) float64 {
	return (float64(col) + 0.5) * parameter.PixelsPerColumn
}

// RowCenter returns the pixel y at the middle of row
func RowCenter(row int) float64 {
	return (float64(row) + 0.5) * parameter.PixelsPerRow
}
