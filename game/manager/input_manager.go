package manager

import (
	"gridsnake/game/types"
)

// Key is a logical game key, independent of the windowing backend
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPause
	KeyRestart
)

// Controller is the set of game mutators reachable from input
type Controller interface {
	SetVelocity(v types.Velocity) bool
	TogglePause()
	Restart()
	Paused() bool
}

// InputManager turns key presses and swipe gestures into velocity changes.
// Movement keys are dropped while the game is paused; the pause key and
// swipes are not.
type InputManager struct {
	ctrl Controller

	touching       bool
	touchX, touchY float32
}

func NewInputManager(ctrl Controller) *InputManager {
	return &InputManager{ctrl: ctrl}
}

// HandleKey applies one key press
func (im *InputManager) HandleKey(k Key) {
	switch k {
	case KeyPause:
		im.ctrl.TogglePause()
		return
	case KeyRestart:
		im.ctrl.Restart()
		return
	}
	if im.ctrl.Paused() {
		return
	}
	switch k {
	case KeyUp:
		im.ctrl.SetVelocity(types.Up)
	case KeyDown:
		im.ctrl.SetVelocity(types.Down)
	case KeyLeft:
		im.ctrl.SetVelocity(types.Left)
	case KeyRight:
		im.ctrl.SetVelocity(types.Right)
	}
}

// TouchStart records where a gesture began
func (im *InputManager) TouchStart(x, y float32) {
	im.touching = true
	im.touchX, im.touchY = x, y
}

// TouchMove classifies the displacement since TouchStart as one direction and
// applies it. The start point is then cleared, so one continuous swipe turns
// the snake at most once.
func (im *InputManager) TouchMove(x, y float32) {
	if !im.touching {
		return
	}
	dx := x - im.touchX
	dy := y - im.touchY
	if dx == 0 && dy == 0 {
		return
	}
	im.touching = false
	im.ctrl.SetVelocity(SwipeDirection(dx, dy))
}

// TouchEnd drops an unfinished gesture
func (im *InputManager) TouchEnd() {
	im.touching = false
}

// Touching reports whether a gesture start point is held
func (im *InputManager) Touching() bool {
	return im.touching
}

// SwipeDirection maps a displacement to a unit velocity: horizontal when
// |dx| > |dy|, vertical otherwise. Screen y grows downwards.
func SwipeDirection(dx, dy float32) types.Velocity {
	if abs(dx) > abs(dy) {
		if dx < 0 {
			return types.Left
		}
		return types.Right
	}
	if dy < 0 {
		return types.Up
	}
	return types.Down
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
