package renderers

import (
	"strconv"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/stepclimb/climb"
	"github.com/lixenwraith/stepclimb/decal"
	"github.com/lixenwraith/stepclimb/parameter"
	"github.com/lixenwraith/stepclimb/render"
)

const (
	testWidth  = 80
	testHeight = 24
)

type fakeDecals struct {
	rec       *decal.Record
	requested []int
}

func (f *fakeDecals) GetOrCreate(cell int) *decal.Record {
	f.requested = append(f.requested, cell)
	return f.rec
}

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("simulation screen init: %v", err)
	}
	s.SetSize(testWidth, testHeight)
	t.Cleanup(s.Fini)
	return s
}

func stateAt(steps, pos int) *climb.State {
	s := climb.NewState(steps)
	for i := 0; i < pos; i++ {
		s.Advance()
	}
	return s
}

func bgAt(screen tcell.Screen, x, y int) tcell.Color {
	_, _, style, _ := screen.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func runeAt(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func rowText(screen tcell.Screen, y int) string {
	var sb strings.Builder
	for x := 0; x < testWidth; x++ {
		sb.WriteRune(runeAt(screen, x, y))
	}
	return sb.String()
}

func TestStairsRenderer_DrawsCurrentStep(t *testing.T) {
	screen := newSimScreen(t)
	ctx := render.NewRenderContext(stateAt(10, 3), nil, testWidth, testHeight, nil)

	NewBackgroundRenderer().Render(ctx, screen)
	NewStairsRenderer().Render(ctx, screen)

	top := ctx.StepTopRow(3)
	ctx.ForEachStepCell(3, func(col, row int, lx, ly float64) {
		bg := bgAt(screen, col, row)
		if row == top && bg != render.RgbStepEdge {
			t.Errorf("top edge cell (%d,%d) has bg %v", col, row, bg)
		}
		if bg != render.RgbStepSurface && bg != render.RgbStepEdge {
			t.Errorf("step cell (%d,%d) has bg %v", col, row, bg)
		}
	})

	sx, sy := ctx.StepScreenPx(3)
	labelCol := render.ColOf(sx + parameter.StepLabelInsetX)
	labelRow := render.RowOf(sy + parameter.StepHeight/2)
	if r := runeAt(screen, labelCol, labelRow); r != '4' {
		t.Errorf("Expected step label '4', got %q", r)
	}
}

func TestDecalsRenderer_OnlyClimbedSteps(t *testing.T) {
	screen := newSimScreen(t)
	src := &fakeDecals{rec: &decal.Record{}}
	state := stateAt(20, 10)
	ctx := render.NewRenderContext(state, src, testWidth, testHeight, nil)

	NewDecalsRenderer().Render(ctx, screen)

	if len(src.requested) == 0 {
		t.Fatal("Expected decals requested for climbed visible steps")
	}
	for _, c := range src.requested {
		if c >= state.Pos {
			t.Errorf("Requested decal for unclimbed step %d", c)
		}
		if c < ctx.FirstStep || c > ctx.LastStep {
			t.Errorf("Requested decal for off-screen step %d", c)
		}
	}
}

func TestDecalsRenderer_BlotPaintsBlood(t *testing.T) {
	screen := newSimScreen(t)
	src := &fakeDecals{rec: &decal.Record{
		Blots: []decal.Blot{{OX: 0.5, OY: 0.5, Size: 30}},
	}}
	ctx := render.NewRenderContext(stateAt(10, 3), src, testWidth, testHeight, nil)

	NewStairsRenderer().Render(ctx, screen)
	NewDecalsRenderer().Render(ctx, screen)

	blood := 0
	ctx.ForEachStepCell(2, func(col, row int, lx, ly float64) {
		covered := BlotCovers(src.rec, lx, ly)
		isBlood := bgAt(screen, col, row) == render.RgbBlood
		if covered != isBlood {
			t.Errorf("cell (%d,%d) covered=%v blood=%v", col, row, covered, isBlood)
		}
		if isBlood {
			blood++
		}
	})
	if blood == 0 {
		t.Error("Expected blood cells for a large blot")
	}
}

func TestDecalsRenderer_DripKeepsSurface(t *testing.T) {
	screen := newSimScreen(t)
	src := &fakeDecals{rec: &decal.Record{
		Drips: []decal.Drip{{OX: 0.2, OY: 0, MaxLength: 40, Width: 2}},
	}}
	ctx := render.NewRenderContext(stateAt(10, 3), src, testWidth, testHeight, nil)

	NewStairsRenderer().Render(ctx, screen)
	NewDecalsRenderer().Render(ctx, screen)

	drips := 0
	ctx.ForEachStepCell(2, func(col, row int, lx, ly float64) {
		if !DripHit(src.rec, lx, ly) {
			return
		}
		drips++
		if r := runeAt(screen, col, row); r != parameter.GlyphDrip {
			t.Errorf("cell (%d,%d) expected drip glyph, got %q", col, row, r)
		}
		if bg := bgAt(screen, col, row); bg != render.RgbStepSurface && bg != render.RgbStepEdge {
			t.Errorf("drip replaced step background with %v", bg)
		}
	})
	if drips == 0 {
		t.Error("Expected drip cells")
	}
}

func TestDecalsRenderer_RealGenerator(t *testing.T) {
	gen, err := decal.New(decal.DefaultConfig())
	if err != nil {
		t.Fatalf("decal.New: %v", err)
	}
	screen := newSimScreen(t)
	state := stateAt(50, 20)
	ctx := render.NewRenderContext(state, gen, testWidth, testHeight, nil)

	NewDecalsRenderer().Render(ctx, screen)

	for i := ctx.FirstStep; i <= ctx.LastStep; i++ {
		_, cached := gen.Peek(i)
		if cached != state.Climbed(i) {
			t.Errorf("step %d cached=%v climbed=%v", i, cached, state.Climbed(i))
		}
	}

	// A second frame reuses every record
	before := gen.Generations()
	NewDecalsRenderer().Render(ctx, screen)
	if gen.Generations() != before {
		t.Errorf("Second frame generated %d new records", gen.Generations()-before)
	}
}

func TestBlotHit_Anchor(t *testing.T) {
	gen, _ := decal.New(decal.DefaultConfig())
	rec := gen.GetOrCreate(0)
	for _, b := range rec.Blots {
		if !BlotHit(rec, b.OX*parameter.StepWidth, b.OY*parameter.StepHeight) {
			t.Errorf("blot anchor (%v,%v) not covered", b.OX, b.OY)
		}
	}
}

func TestCharactersRenderer(t *testing.T) {
	screen := newSimScreen(t)
	ctx := render.NewRenderContext(stateAt(10, 4), nil, testWidth, testHeight, nil)

	NewCharactersRenderer().Render(ctx, screen)

	col, row := CharacterCell(ctx)
	if r := runeAt(screen, col, row); r != parameter.GlyphCarried {
		t.Errorf("Expected carried glyph at (%d,%d), got %q", col, row, r)
	}
	carrierCol := col + int(parameter.CharacterOffsetX/parameter.PixelsPerColumn)
	if r := runeAt(screen, carrierCol, row); r != parameter.GlyphCarrier {
		t.Errorf("Expected carrier glyph at (%d,%d), got %q", carrierCol, row, r)
	}
	if row != ctx.StepTopRow(4)-1 {
		t.Errorf("Characters should stand above the step, row %d", row)
	}
}

func TestFlagRenderer(t *testing.T) {
	screen := newSimScreen(t)
	ctx := render.NewRenderContext(stateAt(5, 3), nil, testWidth, testHeight, nil)

	NewFlagRenderer().Render(ctx, screen)

	col, row := FlagCell(ctx)
	if r := runeAt(screen, col, row); r != parameter.GlyphFlag {
		t.Errorf("Expected flag at (%d,%d), got %q", col, row, r)
	}
}

func TestFlagRenderer_TopOffScreen(t *testing.T) {
	screen := newSimScreen(t)
	ctx := render.NewRenderContext(stateAt(500, 0), nil, testWidth, testHeight, nil)

	NewFlagRenderer().Render(ctx, screen)

	for y := 0; y < testHeight; y++ {
		if strings.ContainsRune(rowText(screen, y), parameter.GlyphFlag) {
			t.Fatalf("Flag drawn on row %d while top step is off screen", y)
		}
	}
}

func TestFinaleRenderer(t *testing.T) {
	lines := climb.WrapText(climb.FinaleText(5), parameter.FinaleWrapWidth)

	screen := newSimScreen(t)
	ctx := render.NewRenderContext(stateAt(5, 3), nil, testWidth, testHeight, lines)
	NewFinaleRenderer().Render(ctx, screen)
	x, y, _, _ := FinaleBox(ctx)
	if bgAt(screen, x, y) == render.RgbFinaleBg {
		t.Fatal("Finale drawn before reaching the top")
	}

	ctx = render.NewRenderContext(stateAt(5, 4), nil, testWidth, testHeight, lines)
	NewFinaleRenderer().Render(ctx, screen)

	x, y, w, h := FinaleBox(ctx)
	if w > testWidth || h > testHeight-1 {
		t.Fatalf("Finale box %dx%d exceeds screen", w, h)
	}
	if bgAt(screen, x, y) != render.RgbFinaleBg {
		t.Error("Expected finale background at box corner")
	}
	if got := rowText(screen, y+1); !strings.Contains(got, lines[0]) {
		t.Errorf("Expected first finale line %q in %q", lines[0], got)
	}
}

func TestStatusBarRenderer(t *testing.T) {
	screen := newSimScreen(t)
	state := stateAt(10, 3)
	state.Quit()
	ctx := render.NewRenderContext(state, nil, testWidth, testHeight, nil)

	NewStatusBarRenderer().Render(ctx, screen)

	bar := rowText(screen, testHeight-1)
	if !strings.Contains(bar, "Step 4/"+strconv.Itoa(10)) {
		t.Errorf("Expected step counter in %q", bar)
	}
	if !strings.Contains(bar, "STOPPED") {
		t.Errorf("Expected stopped marker in %q", bar)
	}
}
