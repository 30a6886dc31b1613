package ui

import (
	"gridsnake/game/manager"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var keyBindings = map[int32]manager.Key{
	rl.KeyUp:    manager.KeyUp,
	rl.KeyW:     manager.KeyUp,
	rl.KeyDown:  manager.KeyDown,
	rl.KeyS:     manager.KeyDown,
	rl.KeyLeft:  manager.KeyLeft,
	rl.KeyA:     manager.KeyLeft,
	rl.KeyRight: manager.KeyRight,
	rl.KeyD:     manager.KeyRight,
	rl.KeySpace: manager.KeyPause,
	rl.KeyR:     manager.KeyRestart,
}

// Input polls raylib once per frame and forwards keys, the pause button and
// swipe gestures to the input manager. raylib reports a held mouse button as
// touch point 0, so a mouse drag swipes as well.
type Input struct {
	im       *manager.InputManager
	renderer *Renderer
	touching bool
	lastPos  rl.Vector2
}

func NewInput(im *manager.InputManager, renderer *Renderer) *Input {
	return &Input{im: im, renderer: renderer}
}

func (in *Input) Poll() {
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if k, ok := keyBindings[key]; ok {
			in.im.HandleKey(k)
		}
	}

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) &&
		rl.CheckCollisionPointRec(rl.GetMousePosition(), in.renderer.PauseButton()) {
		in.im.HandleKey(manager.KeyPause)
		// swallow the rest of this press so it cannot start a swipe
		in.touching = true
		in.lastPos = rl.GetMousePosition()
		in.im.TouchEnd()
		return
	}

	if rl.GetTouchPointCount() == 0 {
		if in.touching {
			in.im.TouchEnd()
			in.touching = false
		}
		return
	}

	pos := rl.GetTouchPosition(0)
	if !in.touching {
		in.touching = true
		in.lastPos = pos
		in.im.TouchStart(pos.X, pos.Y)
		return
	}
	if pos != in.lastPos {
		in.lastPos = pos
		in.im.TouchMove(pos.X, pos.Y)
	}
}
