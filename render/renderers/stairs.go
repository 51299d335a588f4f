package renderers

import (
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/stepclimb/parameter"
	"github.com/lixenwraith/stepclimb/render"
)

// StairsRenderer draws step surfaces, their top and left edges, and step numbers
type StairsRenderer struct{}

// NewStairsRenderer creates a stairs renderer
func NewStairsRenderer() *StairsRenderer {
	return &StairsRenderer{}
}

// Render implements SystemRenderer
func (s *StairsRenderer) Render(ctx render.RenderContext, screen tcell.Screen) {
	surface := tcell.StyleDefault.Background(render.RgbStepSurface)
	edge := tcell.StyleDefault.Background(render.RgbStepEdge)
	label := tcell.StyleDefault.Background(render.RgbStepSurface).Foreground(render.RgbStepLabel)

	for i := ctx.FirstStep; i <= ctx.LastStep; i++ {
		topRow := ctx.StepTopRow(i)

		ctx.ForEachStepCell(i, func(col, row int, lx, ly float64) {
			style := surface
			if row == topRow || lx < parameter.PixelsPerColumn {
				style = edge
			}
			screen.SetContent(col, row, ' ', nil, style)
		})

		sx, sy := ctx.StepScreenPx(i)
		labelRow := render.RowOf(sy + parameter.StepHeight/2)
		labelCol := render.ColOf(sx + parameter.StepLabelInsetX)
		if labelRow >= 0 && labelRow < ctx.PlayHeight() {
			render.DrawText(screen, labelCol, labelRow, strconv.Itoa(i+1), label)
		}
	}
}
