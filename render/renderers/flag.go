package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/stepclimb/parameter"
	"github.com/lixenwraith/stepclimb/render"
)

// FlagRenderer plants the flag on the top step when it is visible
type FlagRenderer struct{}

// NewFlagRenderer creates a flag renderer
func NewFlagRenderer() *FlagRenderer {
	return &FlagRenderer{}
}

// Render implements SystemRenderer
func (f *FlagRenderer) Render(ctx render.RenderContext, screen tcell.Screen) {
	top := ctx.State.Layout.Last()
	if top < ctx.FirstStep || top > ctx.LastStep {
		return
	}

	col, row := FlagCell(ctx)
	if row < 0 || row >= ctx.PlayHeight() || col < 0 || col >= ctx.ScreenWidth {
		return
	}
	style := tcell.StyleDefault.Background(render.RgbBackground).Foreground(render.RgbFlag)
	screen.SetContent(col, row, parameter.GlyphFlag, nil, style)
}

// FlagCell returns the cell above the middle of the top step
func FlagCell(ctx render.RenderContext) (col, row int) {
	top := ctx.State.Layout.Last()
	sx, _ := ctx.StepScreenPx(top)
	return render.ColOf(sx + parameter.StepWidth/2), ctx.StepTopRow(top) - 1
}
