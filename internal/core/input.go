package core

// Action represents a semantic player intent, abstracted from physical keys.
type Action int

const (
	ActionNone     Action = iota
	ActionUp              // Move up
	ActionDown            // Move down
	ActionLeft            // Move left
	ActionRight           // Move right
	ActionBomb            // Place a bomb
	ActionDetonate        // Trigger remote bombs
	ActionPause           // Toggle pause
	ActionConfirm         // Continue to next round / new game
	ActionQuit            // Leave the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionBomb:
		return "Bomb"
	case ActionDetonate:
		return "Detonate"
	case ActionPause:
		return "Pause"
	case ActionConfirm:
		return "Confirm"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Direction returns the movement direction for a move action, or DirNone.
func (a Action) Direction() Direction {
	switch a {
	case ActionUp:
		return DirUp
	case ActionDown:
		return DirDown
	case ActionLeft:
		return DirLeft
	case ActionRight:
		return DirRight
	default:
		return DirNone
	}
}

// InputFrame holds the actions one player triggered during a tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Move returns the movement direction held this frame. When several move
// keys are down the first in Up, Down, Left, Right order wins.
func (f InputFrame) Move() Direction {
	for _, a := range [...]Action{ActionUp, ActionDown, ActionLeft, ActionRight} {
		if f.Has(a) {
			return a.Direction()
		}
	}
	return DirNone
}
