package input

import "github.com/gdamore/tcell/v2"

// Intent is the semantic action behind a terminal event
type Intent uint8

const (
	IntentNone Intent = iota

	IntentClimb      // Up, k, w, Space, Enter, left click
	IntentQuit       // q, stops climbing
	IntentRestart    // r
	IntentToggleMute // m
	IntentExit       // Esc, Ctrl+C, Ctrl+Q
	IntentResize     // terminal resize
)

var intentNames = [...]string{
	IntentNone:       "none",
	IntentClimb:      "climb",
	IntentQuit:       "quit",
	IntentRestart:    "restart",
	IntentToggleMute: "toggle_mute",
	IntentExit:       "exit",
	IntentResize:     "resize",
}

func (i Intent) String() string {
	if int(i) < len(intentNames) {
		return intentNames[i]
	}
	return "unknown"
}

// runeIntents binds printable keys
var runeIntents = map[rune]Intent{
	'k': IntentClimb,
	'w': IntentClimb,
	' ': IntentClimb,
	'q': IntentQuit,
	'r': IntentRestart,
	'm': IntentToggleMute,
}

// Translate maps a tcell event to its intent
func Translate(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return translateKey(ev)
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			return IntentClimb
		}
	case *tcell.EventResize:
		return IntentResize
	}
	return IntentNone
}

func translateKey(ev *tcell.EventKey) Intent {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyCtrlQ, tcell.KeyEscape:
		return IntentExit
	case tcell.KeyUp, tcell.KeyEnter:
		return IntentClimb
	case tcell.KeyRune:
		return runeIntents[ev.Rune()]
	}
	return IntentNone
}
