package input

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/stepclimb/climb"
)

// Cues receives the audible feedback for climb progress
type Cues interface {
	PlayStep()
	PlayFinale()
	ToggleMute() bool
}

// Handler applies intents to the climb state
type Handler struct {
	state *climb.State
	cues  Cues
}

// NewHandler binds a handler to state; cues may be nil
func NewHandler(state *climb.State, cues Cues) *Handler {
	return &Handler{state: state, cues: cues}
}

// HandleEvent processes a tcell event and returns false if the program should exit
func (h *Handler) HandleEvent(ev tcell.Event) bool {
	intent := Translate(ev)
	switch intent {
	case IntentExit:
		return false
	case IntentClimb:
		if h.state.Advance() && h.cues != nil {
			if h.state.AtTop() {
				h.cues.PlayFinale()
			} else {
				h.cues.PlayStep()
			}
		}
	case IntentQuit:
		h.state.Quit()
	case IntentRestart:
		h.state.Restart()
	case IntentToggleMute:
		if h.cues != nil {
			log.Printf("input: muted=%v", h.cues.ToggleMute())
		}
	}
	return true
}
