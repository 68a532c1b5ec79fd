package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/planet-defense/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "w", "up":
		return core.ActionThrust, false
	case "s", "down":
		return core.ActionReverse, false
	case "a", "left":
		return core.ActionRotateLeft, false
	case "d", "right":
		return core.ActionRotateRight, false
	case " ":
		return core.ActionFire, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// DefaultHoldTicks is how long a key stays held after its last press.
// Terminals report presses and autorepeats but never releases, so a key
// counts as released once its repeats stop arriving.
const DefaultHoldTicks = 12

// KeyLatch turns discrete key presses into held actions. Movement and fire
// stay held while presses keep arriving; everything else lasts one frame.
type KeyLatch struct {
	hold int
	left map[core.Action]int
}

// NewKeyLatch creates a latch. hold <= 0 selects DefaultHoldTicks.
func NewKeyLatch(hold int) *KeyLatch {
	if hold <= 0 {
		hold = DefaultHoldTicks
	}
	return &KeyLatch{hold: hold, left: make(map[core.Action]int)}
}

// opposite pairs actions that cancel each other.
var opposite = map[core.Action]core.Action{
	core.ActionThrust:      core.ActionReverse,
	core.ActionReverse:     core.ActionThrust,
	core.ActionRotateLeft:  core.ActionRotateRight,
	core.ActionRotateRight: core.ActionRotateLeft,
}

func holdable(a core.Action) bool {
	switch a {
	case core.ActionThrust, core.ActionReverse, core.ActionRotateLeft, core.ActionRotateRight, core.ActionFire:
		return true
	}
	return false
}

// Press records a key press. Pressing an action releases its opposite.
func (l *KeyLatch) Press(a core.Action) {
	if a == core.ActionNone {
		return
	}
	if o, ok := opposite[a]; ok {
		delete(l.left, o)
	}
	if holdable(a) {
		l.left[a] = l.hold
		return
	}
	l.left[a] = 1
}

// Frame returns the actions held this tick and ages every latch by one.
func (l *KeyLatch) Frame() core.InputFrame {
	frame := core.NewInputFrame()
	for a, n := range l.left {
		frame.Set(a)
		if n <= 1 {
			delete(l.left, a)
		} else {
			l.left[a] = n - 1
		}
	}
	return frame
}

// Held reports whether a is currently latched.
func (l *KeyLatch) Held(a core.Action) bool {
	return l.left[a] > 0
}

// Release drops every latch.
func (l *KeyLatch) Release() {
	clear(l.left)
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
