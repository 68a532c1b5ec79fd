package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/planet-defense/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"w", runeKey("w"), core.ActionThrust, false},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionThrust, false},
		{"s", runeKey("s"), core.ActionReverse, false},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionReverse, false},
		{"a", runeKey("a"), core.ActionRotateLeft, false},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionRotateLeft, false},
		{"d", runeKey("d"), core.ActionRotateRight, false},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRotateRight, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFire, false},
		{"p", runeKey("p"), core.ActionPause, false},
		{"r", runeKey("r"), core.ActionRestart, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"q", runeKey("q"), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey("x"), core.ActionNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{runeKey("k"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey("q"), MenuActionQuit},
		{runeKey("x"), MenuActionNone},
	}
	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestKeyLatchHoldsUntilTimeout(t *testing.T) {
	l := NewKeyLatch(3)
	l.Press(core.ActionThrust)

	for i := range 3 {
		if f := l.Frame(); !f.Has(core.ActionThrust) {
			t.Fatalf("frame %d: thrust released early", i)
		}
	}
	if f := l.Frame(); f.Has(core.ActionThrust) {
		t.Error("thrust still held after the hold window")
	}
}

func TestKeyLatchRepeatExtendsHold(t *testing.T) {
	l := NewKeyLatch(2)
	l.Press(core.ActionFire)
	l.Frame()
	l.Press(core.ActionFire) // autorepeat
	l.Frame()
	if f := l.Frame(); !f.Has(core.ActionFire) {
		t.Error("repeat did not extend the hold")
	}
	if l.Held(core.ActionFire) {
		t.Error("fire still latched after the window closed")
	}
}

func TestKeyLatchOneShotActions(t *testing.T) {
	l := NewKeyLatch(10)
	l.Press(core.ActionPause)
	l.Press(core.ActionRestart)

	f := l.Frame()
	if !f.Has(core.ActionPause) || !f.Has(core.ActionRestart) {
		t.Fatal("one-shot actions missing from their frame")
	}
	if f := l.Frame(); f.Has(core.ActionPause) || f.Has(core.ActionRestart) {
		t.Error("one-shot action lasted more than one frame")
	}
}

func TestKeyLatchOppositesCancel(t *testing.T) {
	l := NewKeyLatch(10)
	l.Press(core.ActionRotateLeft)
	l.Press(core.ActionRotateRight)
	l.Press(core.ActionThrust)
	l.Press(core.ActionReverse)

	f := l.Frame()
	if f.Has(core.ActionRotateLeft) || f.Has(core.ActionThrust) {
		t.Error("opposite action survived a press")
	}
	if !f.Has(core.ActionRotateRight) || !f.Has(core.ActionReverse) {
		t.Error("latest press missing")
	}
}

func TestKeyLatchRelease(t *testing.T) {
	l := NewKeyLatch(0)
	if l.hold != DefaultHoldTicks {
		t.Errorf("hold = %d, want %d", l.hold, DefaultHoldTicks)
	}
	l.Press(core.ActionThrust)
	l.Press(core.ActionNone)
	l.Release()
	if f := l.Frame(); len(f.Actions) != 0 {
		t.Errorf("frame after Release = %v", f.Actions)
	}
}
