package core

// Action represents a semantic input action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionSteer          // Arrow keys / WASD - request a new heading
	ActionPause          // P, Space - pause/unpause
	ActionRestart        // R - restart after game over
	ActionNext           // N, Enter - continue to the next level
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionSteer:
		return "Steer"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionNext:
		return "Next"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the input for a single tick.
// Steering requests are keyed by human player slot (0-based).
type InputFrame struct {
	Actions map[Action]bool
	Steer   map[int]Direction
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Steer:   make(map[int]Direction),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// SetSteer records a heading request for a player slot.
// The last request in a frame wins.
func (f *InputFrame) SetSteer(slot int, d Direction) {
	if f.Steer == nil {
		f.Steer = make(map[int]Direction)
	}
	f.Steer[slot] = d
	f.Set(ActionSteer)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// SteerFor returns the heading requested by a player slot, if any.
func (f InputFrame) SteerFor(slot int) (Direction, bool) {
	if f.Steer == nil {
		return DirRight, false
	}
	d, ok := f.Steer[slot]
	return d, ok
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	for k := range f.Steer {
		delete(f.Steer, k)
	}
}
