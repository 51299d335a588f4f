package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/stepclimb/parameter"
	"github.com/lixenwraith/stepclimb/render"
)

// FinaleRenderer shows the wrapped finale message once the top step is reached
type FinaleRenderer struct{}

// NewFinaleRenderer creates a finale overlay renderer
func NewFinaleRenderer() *FinaleRenderer {
	return &FinaleRenderer{}
}

// Render implements SystemRenderer
func (f *FinaleRenderer) Render(ctx render.RenderContext, screen tcell.Screen) {
	if !ctx.State.AtTop() || len(ctx.FinaleLines) == 0 {
		return
	}

	x0, y0, w, h := FinaleBox(ctx)
	style := tcell.StyleDefault.Background(render.RgbFinaleBg).Foreground(render.RgbFinaleFg)

	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			screen.SetContent(x, y, ' ', nil, style)
		}
	}
	for i, line := range ctx.FinaleLines {
		render.DrawText(screen, x0+parameter.FinalePadding, y0+1+i, line, style)
	}
}

// FinaleBox returns the centered box around the finale lines
func FinaleBox(ctx render.RenderContext) (x, y, w, h int) {
	widest := 0
	for _, l := range ctx.FinaleLines {
		widest = max(widest, len([]rune(l)))
	}
	w = min(widest+2*parameter.FinalePadding, ctx.ScreenWidth)
	h = min(len(ctx.FinaleLines)+2, ctx.PlayHeight())
	x = max((ctx.ScreenWidth-w)/2, 0)
	y = max((ctx.PlayHeight()-h)/2, 0)
	return x, y, w, h
}
