package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionLeft              // Left, H - move peg cursor left
	ActionRight             // Right, L - move peg cursor right
	ActionPeg1              // 1 - pick from or drop on the first peg
	ActionPeg2              // 2
	ActionPeg3              // 3
	ActionConfirm           // Enter, Space - act on the peg under the cursor / start
	ActionSolve             // A - replay the optimal solution
	ActionRestart           // R - restart with the same disc count
	ActionReset             // X - back to the pre-game board
	ActionMoreDiscs         // +, = - one more disc before starting
	ActionFewerDiscs        // -, _ - one less disc before starting
	ActionPause             // P - pause/unpause
	ActionBack              // B, Escape - drop the held disc, or back to menu once won or paused
	ActionQuit              // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPeg1:
		return "Peg1"
	case ActionPeg2:
		return "Peg2"
	case ActionPeg3:
		return "Peg3"
	case ActionConfirm:
		return "Confirm"
	case ActionSolve:
		return "Solve"
	case ActionRestart:
		return "Restart"
	case ActionReset:
		return "Reset"
	case ActionMoreDiscs:
		return "MoreDiscs"
	case ActionFewerDiscs:
		return "FewerDiscs"
	case ActionPause:
		return "Pause"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// PegActions lists the direct peg actions in peg order.
var PegActions = [3]Action{ActionPeg1, ActionPeg2, ActionPeg3}

// Peg returns the zero-based peg index of a direct peg action.
func (a Action) Peg() (int, bool) {
	if a < ActionPeg1 || a > ActionPeg3 {
		return 0, false
	}
	return int(a - ActionPeg1), true
}

// InputFrame represents the input state during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Pegs holds the direct peg actions in arrival order, repeats included.
	// A pick and a drop typed within one tick both land here.
	Pegs []Action
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
	if _, ok := a.Peg(); ok {
		f.Pegs = append(f.Pegs, a)
	}
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
	f.Pegs = f.Pegs[:0]
}
