package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake-arena/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// Arrow keys steer the first human; WASD steers the second one, or the first
// when there is only one human.
type KeyMapper struct {
	humans int
}

// NewKeyMapper creates a key mapper for the given number of human players.
func NewKeyMapper(humans int) *KeyMapper {
	return &KeyMapper{humans: humans}
}

// MapKey translates a key message to an action. For ActionSteer the player
// slot and heading are returned as well.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, slot int, dir core.Direction) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, 0, 0
	case "p", " ":
		return core.ActionPause, 0, 0
	case "r":
		return core.ActionRestart, 0, 0
	case "n", "enter":
		return core.ActionNext, 0, 0
	}

	if d, ok := arrowKeys[key]; ok && km.humans > 0 {
		return core.ActionSteer, 0, d
	}
	if d, ok := wasdKeys[key]; ok && km.humans > 0 {
		if km.humans > 1 {
			return core.ActionSteer, 1, d
		}
		return core.ActionSteer, 0, d
	}

	return core.ActionNone, 0, 0
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, slot, dir := km.MapKey(msg)
	switch action {
	case core.ActionNone:
	case core.ActionSteer:
		frame.SetSteer(slot, dir)
	default:
		frame.Set(action)
	}
	return action == core.ActionQuit
}

var arrowKeys = map[string]core.Direction{
	"up":    core.DirUp,
	"down":  core.DirDown,
	"left":  core.DirLeft,
	"right": core.DirRight,
}

var wasdKeys = map[string]core.Direction{
	"w": core.DirUp,
	"s": core.DirDown,
	"a": core.DirLeft,
	"d": core.DirRight,
}
