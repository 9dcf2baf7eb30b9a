package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/alien-invasion/internal/core"
)

func TestKeyMapperMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}, core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}}, core.ActionRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionFire},
		{"p", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}}, core.ActionPause},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart},
		{"s", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}}, core.ActionStart},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}}, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.MapKey(tc.msg); got != tc.want {
				t.Errorf("MapKey(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
			}
		})
	}
}

func TestHoldTrackerReleasesAfterWindow(t *testing.T) {
	h := newHoldTracker(60) // nudge window 3 ticks, repeat window 7
	frame := core.NewInputFrame()

	if !h.Press(core.ActionLeft, 0, &frame) {
		t.Fatal("First press should be new")
	}

	h.Expire(2, &frame)
	if frame.Has(core.ActionLeftRelease) {
		t.Fatal("Released inside the nudge window")
	}

	if h.Press(core.ActionLeft, 2, &frame) {
		t.Error("Auto-repeat reported as a new press")
	}
	h.Expire(8, &frame)
	if frame.Has(core.ActionLeftRelease) {
		t.Fatal("Released inside the repeat window")
	}

	h.Expire(9, &frame)
	if !frame.Has(core.ActionLeftRelease) {
		t.Error("Expected release once repeats stopped")
	}
	if h.Held(core.ActionLeft) {
		t.Error("Key still held after release")
	}
}

func TestHoldTrackerTapIsShort(t *testing.T) {
	tests := []struct {
		tickRate int
		maxTicks int
	}{
		{60, 3},
		{30, 1},
		{120, 6},
		{10, 1},
	}

	for _, tt := range tests {
		h := newHoldTracker(tt.tickRate)
		frame := core.NewInputFrame()
		h.Press(core.ActionRight, 0, &frame)

		released := 0
		for now := 1; now <= tt.tickRate; now++ {
			h.Expire(now, &frame)
			if frame.Has(core.ActionRightRelease) {
				released = now
				break
			}
		}
		if released == 0 || released > tt.maxTicks {
			t.Errorf("tickRate %d: tap released at tick %d, want within %d", tt.tickRate, released, tt.maxTicks)
		}
	}
}

func TestHoldTrackerRepeatAfterDelayIsNewPress(t *testing.T) {
	h := newHoldTracker(60)
	frame := core.NewInputFrame()

	h.Press(core.ActionLeft, 0, &frame)
	h.Expire(3, &frame)
	frame.Clear()

	// Terminal repeat delay elapsed: the first repeat starts movement again.
	if !h.Press(core.ActionLeft, 30, &frame) {
		t.Fatal("Repeat after the nudge ended should be a new press")
	}
	if h.Press(core.ActionLeft, 32, &frame) {
		t.Error("Following repeat reported as a new press")
	}
}

func TestHoldTrackerOppositeReleases(t *testing.T) {
	h := newHoldTracker(60)
	frame := core.NewInputFrame()

	h.Press(core.ActionLeft, 0, &frame)
	if !h.Press(core.ActionRight, 1, &frame) {
		t.Fatal("Right press should be new")
	}
	if !frame.Has(core.ActionLeftRelease) {
		t.Error("Pressing right should release left")
	}
	if h.Held(core.ActionLeft) || !h.Held(core.ActionRight) {
		t.Error("Unexpected held state after switching direction")
	}
}
