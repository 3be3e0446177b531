package game

import "strings"

// Action is one of the discrete inputs the resolver accepts. Validity
// depends on the current phase; actions outside the phase's set are
// silently ignored.
type Action string

const (
	ActionForward      Action = "forward"
	ActionBack         Action = "back"
	ActionCollect      Action = "collect"
	ActionQuit         Action = "quit"
	ActionFight        Action = "fight"
	ActionFlee         Action = "flee"
	ActionChooseKey    Action = "choose_key"
	ActionChoosePotion Action = "choose_potion"
	ActionAcknowledge  Action = "acknowledge"
)

// ParseAction maps an input string onto the closed action set. The
// boolean is false for anything outside the set. Keystroke mapping is
// the client's job because single letters are phase-dependent (F is
// forward while exploring and fight in combat).
func ParseAction(input string) (Action, bool) {
	known := map[string]Action{
		"forward":       ActionForward,
		"back":          ActionBack,
		"collect":       ActionCollect,
		"quit":          ActionQuit,
		"fight":         ActionFight,
		"flee":          ActionFlee,
		"choose_key":    ActionChooseKey,
		"choose_potion": ActionChoosePotion,
		"acknowledge":   ActionAcknowledge,
	}
	a, ok := known[strings.ToLower(strings.TrimSpace(input))]
	return a, ok
}
