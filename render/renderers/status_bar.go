package renderers

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/stepclimb/render"
)

// StatusBarRenderer draws the status bar at the bottom
type StatusBarRenderer struct{}

// NewStatusBarRenderer creates a status bar renderer
func NewStatusBarRenderer() *StatusBarRenderer {
	return &StatusBarRenderer{}
}

// Render implements SystemRenderer
func (s *StatusBarRenderer) Render(ctx render.RenderContext, screen tcell.Screen) {
	if ctx.ScreenHeight < 1 {
		return
	}
	y := ctx.ScreenHeight - 1
	style := tcell.StyleDefault.Background(render.RgbStatusBg).Foreground(render.RgbStatusBar)

	for x := 0; x < ctx.ScreenWidth; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}

	x := 0
	// Audio mute indicator - always visible
	audioBg := render.RgbAudioUnmuted
	if ctx.Muted {
		audioBg = render.RgbAudioMuted
	}
	x = render.DrawText(screen, x, y, " ♪ ", style.Background(audioBg).Foreground(tcell.ColorBlack))

	x = render.DrawText(screen, x, y, fmt.Sprintf(" Step %d/%d ", ctx.State.Pos+1, ctx.State.Layout.Steps), style)

	if ctx.State.Over {
		x = render.DrawText(screen, x, y, " STOPPED ", style.Background(render.RgbStatusStop))
	}

	render.DrawText(screen, x, y, " ↑/space climb  r restart  q quit  m mute  esc exit", style)
}
