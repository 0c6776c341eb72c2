package game

// Action is a player command, independent of the device that produced it.
type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionRotate
	ActionSoftDrop
	ActionQuit
)

var actionNames = [...]string{
	ActionNone:     "none",
	ActionLeft:     "left",
	ActionRight:    "right",
	ActionRotate:   "rotate",
	ActionSoftDrop: "soft-drop",
	ActionQuit:     "quit",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

// Actions lists every action a player can trigger.
func Actions() []Action {
	return []Action{ActionLeft, ActionRight, ActionRotate, ActionSoftDrop, ActionQuit}
}
