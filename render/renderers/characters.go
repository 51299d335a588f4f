package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/stepclimb/parameter"
	"github.com/lixenwraith/stepclimb/render"
)

// CharactersRenderer draws the carried and carrying characters on the current step
type CharactersRenderer struct{}

// NewCharactersRenderer creates a characters renderer
func NewCharactersRenderer() *CharactersRenderer {
	return &CharactersRenderer{}
}

// Render implements SystemRenderer
func (c *CharactersRenderer) Render(ctx render.RenderContext, screen tcell.Screen) {
	col, row := CharacterCell(ctx)
	if row < 0 || row >= ctx.PlayHeight() {
		return
	}

	bg := tcell.StyleDefault.Background(render.RgbBackground)
	carriedCol := col
	carrierCol := render.ColOf(float64(col)*parameter.PixelsPerColumn + parameter.CharacterOffsetX)

	screen.SetContent(carriedCol, row, parameter.GlyphCarried, nil, bg.Foreground(render.RgbCarried).Bold(true))
	screen.SetContent(carrierCol, row, parameter.GlyphCarrier, nil, bg.Foreground(render.RgbCarrier).Bold(true))
}

// CharacterCell returns the carried character's cell, standing just above the current step
func CharacterCell(ctx render.RenderContext) (col, row int) {
	sx, _ := ctx.StepScreenPx(ctx.State.Pos)
	return render.ColOf(sx + parameter.CharacterInsetX), ctx.StepTopRow(ctx.State.Pos) - 1
}
