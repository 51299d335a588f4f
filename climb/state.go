package climb

import "log"

// Resetter is cleared on restart
type Resetter interface {
	Reset()
}

// State is the climb progress: current step and whether the player gave up
type State struct {
	Layout Layout
	Pos    int
	Over   bool

	resetters []Resetter
}

// NewState starts at step 0; resetters are cleared on every Restart
func NewState(steps int, resetters ...Resetter) *State {
	if steps < 1 {
		steps = 1
	}
	return &State{
		Layout:    Layout{Steps: steps},
		resetters: resetters,
	}
}

// Advance climbs one step, returns false at the top or after Quit
func (s *State) Advance() bool {
	if s.Over || s.AtTop() {
		return false
	}
	s.Pos++
	if s.AtTop() {
		log.Printf("climb: reached top step %d", s.Pos+1)
	}
	return true
}

// AtTop reports whether the current step is the last one
func (s *State) AtTop() bool {
	return s.Pos >= s.Layout.Last()
}

// Quit stops further climbing until Restart
func (s *State) Quit() {
	if !s.Over {
		log.Printf("climb: quit at step %d", s.Pos+1)
	}
	s.Over = true
}

// Restart returns to the bottom step and clears every resetter
func (s *State) Restart() {
	log.Printf("climb: restart from step %d", s.Pos+1)
	s.Pos = 0
	s.Over = false
	for _, r := range s.resetters {
		r.Reset()
	}
}

// Climbed reports whether step i has been left behind
func (s *State) Climbed(i int) bool {
	return i < s.Pos
}
