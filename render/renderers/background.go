package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/stepclimb/render"
)

// BackgroundRenderer fills the play area
type BackgroundRenderer struct{}

// NewBackgroundRenderer creates a background renderer
func NewBackgroundRenderer() *BackgroundRenderer {
	return &BackgroundRenderer{}
}

// Render implements SystemRenderer
func (b *BackgroundRenderer) Render(ctx render.RenderContext, screen tcell.Screen) {
	style := tcell.StyleDefault.Background(render.RgbBackground)
	for y := 0; y < ctx.PlayHeight(); y++ {
		for x := 0; x < ctx.ScreenWidth; x++ {
			screen.SetContent(x, y, ' ', nil, style)
		}
	}
}
