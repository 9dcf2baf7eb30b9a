package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/alien-invasion/internal/core"
)

// keyBindings maps game intents to keys. Movement keys produce a press
// intent on key down and a release intent on key up.
var keyBindings = struct {
	left, right, fire, pause, start, quit []ebiten.Key
}{
	left:  []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
	right: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
	fire:  []ebiten.Key{ebiten.KeySpace},
	pause: []ebiten.Key{ebiten.KeyP},
	start: []ebiten.Key{ebiten.KeyEnter},
	quit:  []ebiten.Key{ebiten.KeyQ},
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func anyJustReleased(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustReleased(k) {
			return true
		}
	}
	return false
}

// pollInput collects this tick's intents into frame.
func pollInput(frame *core.InputFrame) {
	if anyJustPressed(keyBindings.left) {
		frame.Set(core.ActionLeft)
	}
	if anyJustReleased(keyBindings.left) {
		frame.Set(core.ActionLeftRelease)
	}
	if anyJustPressed(keyBindings.right) {
		frame.Set(core.ActionRight)
	}
	if anyJustReleased(keyBindings.right) {
		frame.Set(core.ActionRightRelease)
	}
	if anyJustPressed(keyBindings.fire) {
		frame.Set(core.ActionFire)
	}
	if anyJustPressed(keyBindings.pause) {
		frame.Set(core.ActionPause)
	}
	if anyJustPressed(keyBindings.start) {
		frame.Set(core.ActionStart)
	}
	if anyJustPressed(keyBindings.quit) {
		frame.Set(core.ActionQuit)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		frame.Click(x, y)
	}
}
