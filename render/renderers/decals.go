package renderers

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/stepclimb/decal"
	"github.com/lixenwraith/stepclimb/parameter"
	"github.com/lixenwraith/stepclimb/render"
	"github.com/lixenwraith/stepclimb/vmath"
)

// DecalsRenderer rasterizes the cached splatter of every climbed step
type DecalsRenderer struct{}

// NewDecalsRenderer creates a decals renderer
func NewDecalsRenderer() *DecalsRenderer {
	return &DecalsRenderer{}
}

// Render implements SystemRenderer
func (d *DecalsRenderer) Render(ctx render.RenderContext, screen tcell.Screen) {
	if ctx.Decals == nil {
		return
	}

	for i := ctx.FirstStep; i <= ctx.LastStep; i++ {
		if !ctx.State.Climbed(i) {
			continue
		}
		rec := ctx.Decals.GetOrCreate(i)

		ctx.ForEachStepCell(i, func(col, row int, lx, ly float64) {
			if BlotCovers(rec, lx, ly) {
				screen.SetContent(col, row, ' ', nil, tcell.StyleDefault.Background(render.RgbBlood))
				return
			}
			if DripHit(rec, lx, ly) {
				_, _, style, _ := screen.GetContent(col, row)
				_, bg, _ := style.Decompose()
				screen.SetContent(col, row, parameter.GlyphDrip, nil,
					tcell.StyleDefault.Background(bg).Foreground(render.RgbBloodDrip))
			}
		})
	}
}

// cellSamples are offsets from a cell center, one per quadrant plus the center itself
// Blots smaller than a cell would otherwise fall between cell centers
var cellSamples = [...][2]float64{
	{0, 0},
	{-parameter.PixelsPerColumn / 4, -parameter.PixelsPerRow / 4},
	{parameter.PixelsPerColumn / 4, -parameter.PixelsPerRow / 4},
	{-parameter.PixelsPerColumn / 4, parameter.PixelsPerRow / 4},
	{parameter.PixelsPerColumn / 4, parameter.PixelsPerRow / 4},
}

// BlotCovers reports whether any sample point of the cell centered at (lx,ly) is inside a blot
func BlotCovers(rec *decal.Record, lx, ly float64) bool {
	for _, s := range cellSamples {
		if BlotHit(rec, lx+s[0], ly+s[1]) {
			return true
		}
	}
	return false
}

// BlotHit reports whether the step-local pixel (lx,ly) is covered by any blot
func BlotHit(rec *decal.Record, lx, ly float64) bool {
	for _, b := range rec.Blots {
		bx := b.OX * parameter.StepWidth
		by := b.OY * parameter.StepHeight

		c := b.Center()
		if vmath.EllipseContains(lx, ly, bx, by, c.RW, c.RH, 0) {
			return true
		}
		for _, p := range b.Pieces {
			if vmath.EllipseContains(lx, ly, bx+p.RX, by+p.RY, p.RW, p.RH, p.Angle) {
				return true
			}
		}
	}
	return false
}

// DripHit reports whether (lx,ly) lies on a fully extended drip streak
// Streaks narrower than a column still claim the column they run through
func DripHit(rec *decal.Record, lx, ly float64) bool {
	for _, dr := range rec.Drips {
		dx := dr.OX * parameter.StepWidth
		dy := dr.OY * parameter.StepHeight
		half := math.Max(dr.Width/2, parameter.PixelsPerColumn/2)
		if math.Abs(lx-dx) <= half && ly >= dy && ly <= dy+dr.MaxLength {
			return true
		}
	}
	return false
}
