package climb

import (
	"math"

	"github.com/lixenwraith/stepclimb/parameter"
)

// Layout places steps in pixel space, step 0 at the bottom left and the last step top right
type Layout struct {
	Steps int
}

// StepXY returns the top-left pixel of step i
func (l Layout) StepXY(i int) (x, y float64) {
	x = parameter.StairMargin + float64(i)*parameter.StepWidth
	y = parameter.StairMargin + float64(l.Steps-i-1)*parameter.StepHeight
	return x, y
}

// Last returns the index of the top step
func (l Layout) Last() int {
	return l.Steps - 1
}

// Camera returns the pixel offset that centers the carrier on step pos
// charW is the carrier sprite width in pixels
func (l Layout) Camera(pos int, viewW, viewH, charW float64) (camX, camY float64) {
	cx, cy := l.StepXY(pos)
	camX = cx + parameter.CharacterOffsetX + charW/2 - viewW/2
	camY = cy + parameter.StepHeight/2 - viewH/2
	return camX, camY
}

// VisibleRange returns the inclusive step window intersecting the viewport, with slack on both sides
func (l Layout) VisibleRange(camX, viewW float64) (first, last int) {
	first = int(math.Floor((camX-parameter.StairMargin)/parameter.StepWidth)) - parameter.VisibleSlack
	last = int(math.Ceil((camX+viewW-parameter.StairMargin)/parameter.StepWidth)) + parameter.VisibleSlack
	if first < 0 {
		first = 0
	}
	if last > l.Last() {
		last = l.Last()
	}
	return first, last
}
