package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38) // Tokyo Night background

	RgbStepSurface = tcell.NewRGBColor(80, 80, 80)
	RgbStepEdge    = tcell.NewRGBColor(60, 60, 60)
	RgbStepLabel   = tcell.NewRGBColor(30, 30, 30)

	RgbBlood     = tcell.NewRGBColor(138, 3, 3)
	RgbBloodDrip = tcell.NewRGBColor(100, 0, 0)

	RgbCarrier = tcell.NewRGBColor(240, 240, 255) // white robe
	RgbCarried = tcell.NewRGBColor(20, 20, 20)    // black robe
	RgbFlag    = tcell.NewRGBColor(255, 80, 80)

	RgbFinaleBg = tcell.NewRGBColor(24, 24, 24)
	RgbFinaleFg = tcell.NewRGBColor(255, 255, 255)

	RgbStatusBar    = tcell.NewRGBColor(255, 255, 255)
	RgbStatusBg     = tcell.NewRGBColor(40, 42, 54)
	RgbStatusStop   = tcell.NewRGBColor(255, 0, 0)
	RgbAudioMuted   = tcell.NewRGBColor(255, 0, 0)
	RgbAudioUnmuted = tcell.NewRGBColor(0, 255, 0)
)

// DrawText writes s left to right from (x,y), clipped to the screen width
func DrawText(screen tcell.Screen, x, y int, s string, style tcell.Style) int {
	w, _ := screen.Size()
	for _, r := range s {
		if x >= w {
			break
		}
		if x >= 0 {
			screen.SetContent(x, y, r, nil, style)
		}
		x++
	}
	return x
}
