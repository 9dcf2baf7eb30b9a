package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	var f InputFrame // zero value must be usable

	if f.Has(ActionFire) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionFire)
	f.Set(ActionLeft)

	if !f.Has(ActionFire) || !f.Has(ActionLeft) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionRight) {
		t.Error("unset action should not be reported")
	}
}

func TestInputFrameClicks(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Error("new frame should be empty")
	}

	f.Click(10, 20)
	if f.Empty() {
		t.Error("frame with a click should not be empty")
	}
	if got := f.Clicks(); len(got) != 1 || got[0] != (Point{X: 10, Y: 20}) {
		t.Errorf("Clicks() = %v, expected [{10 20}]", got)
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionPause)
	f.Click(1, 2)

	f.Clear()

	if !f.Empty() {
		t.Error("Clear should remove actions and clicks")
	}
	if f.Has(ActionPause) || len(f.Clicks()) != 0 {
		t.Error("Clear left state behind")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionFire:        "Fire",
		ActionLeftRelease: "LeftRelease",
		ActionStart:       "Start",
		Action(99):        "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", a, got, want)
		}
	}
}
