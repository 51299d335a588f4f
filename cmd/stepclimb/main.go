package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/stepclimb/audio"
	"github.com/lixenwraith/stepclimb/climb"
	"github.com/lixenwraith/stepclimb/config"
	"github.com/lixenwraith/stepclimb/core"
	"github.com/lixenwraith/stepclimb/decal"
	"github.com/lixenwraith/stepclimb/input"
	"github.com/lixenwraith/stepclimb/parameter"
	"github.com/lixenwraith/stepclimb/render"
	"github.com/lixenwraith/stepclimb/render/renderers"
)

var (
	configFlag = flag.String("config", "stepclimb.yaml", "Path to YAML config")
	seedFlag   = flag.Int("seed", -1, "Decal seed override (negative keeps config)")
	stepsFlag  = flag.Int("steps", 0, "Staircase length override (0 keeps config)")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/stepclimb.log")
	muteFlag   = flag.Bool("mute", false, "Disable audio cues")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	decals, err := decal.New(cfg.Decal)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	log.Printf("stepclimb: %d steps, decal seed %d", cfg.Steps, cfg.Decal.GlobalSeed)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.SetRestore(screen.Fini)
	defer screen.Fini()
	screen.EnableMouse()

	sound := audio.NewSoundManager(cfg.Audio.Enabled && !*muteFlag, cfg.Audio.Volume)
	if err := sound.Initialize(); err != nil {
		// Non-fatal, the climb works without sound
		log.Printf("audio: %v (continuing without audio)", err)
	}
	defer sound.Cleanup()

	state := climb.NewState(cfg.Steps, decals)
	handler := input.NewHandler(state, sound)
	finale := climb.WrapText(cfg.FinaleMessage(), parameter.FinaleWrapWidth)

	orchestrator := render.NewRenderOrchestrator(screen)
	rendererList := []struct {
		renderer render.SystemRenderer
		priority render.RenderPriority
	}{
		{renderers.NewBackgroundRenderer(), render.PriorityBackground},
		{renderers.NewStairsRenderer(), render.PriorityStairs},
		{renderers.NewDecalsRenderer(), render.PriorityDecals},
		{renderers.NewFlagRenderer(), render.PriorityEntities},
		{renderers.NewCharactersRenderer(), render.PriorityEntities},
		{renderers.NewStatusBarRenderer(), render.PriorityUI},
		{renderers.NewFinaleRenderer(), render.PriorityOverlay},
	}
	for _, def := range rendererList {
		orchestrator.Register(def.renderer, def.priority)
	}

	eventChan := make(chan tcell.Event, 64)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// Nil event means the screen was finalized
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	})

	draw := func() {
		w, h := screen.Size()
		ctx := render.NewRenderContext(state, decals, w, h, finale)
		ctx.Muted = !sound.Active() || sound.Muted()
		orchestrator.RenderFrame(ctx)
	}
	draw()

	for ev := range eventChan {
		if !handler.HandleEvent(ev) {
			log.Printf("stepclimb: exit at step %d, %d decals cached", state.Pos+1, decals.Len())
			return
		}
		if input.Translate(ev) == input.IntentResize {
			orchestrator.Resize()
		}
		draw()
	}
}

// loadConfig layers flags over the config file
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return cfg, err
	}
	if *seedFlag >= 0 {
		cfg.Decal.GlobalSeed = int32(*seedFlag)
	}
	if *stepsFlag > 0 {
		cfg.Steps = *stepsFlag
	}
	return cfg, cfg.Validate()
}
