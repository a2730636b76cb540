package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/fish-clicker/internal/core"
)

// keyBindings maps keyboard keys to game actions.
var keyBindings = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeyArrowLeft, core.ActionLeft},
	{ebiten.KeyA, core.ActionLeft},
	{ebiten.KeyH, core.ActionLeft},
	{ebiten.KeyArrowRight, core.ActionRight},
	{ebiten.KeyD, core.ActionRight},
	{ebiten.KeyL, core.ActionRight},
	{ebiten.KeyEnter, core.ActionConfirm},
	{ebiten.KeyNumpadEnter, core.ActionConfirm},
	{ebiten.KeySpace, core.ActionConfirm},
}

var buttonBindings = []struct {
	button ebiten.MouseButton
	btn    core.Button
}{
	{ebiten.MouseButtonLeft, core.ButtonPrimary},
	{ebiten.MouseButtonRight, core.ButtonSecondary},
	{ebiten.MouseButtonMiddle, core.ButtonMiddle},
}

// pollInput pushes this frame's key and mouse edges in arrival order:
// keys first, then buttons. Cursor positions are already in world units
// because Layout reports the world size.
func pollInput(q *core.EventQueue) {
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			q.Push(core.KeyPress(b.action))
		}
		if inpututil.IsKeyJustReleased(b.key) {
			q.Push(core.KeyRelease(b.action))
		}
	}

	for _, b := range buttonBindings {
		if inpututil.IsMouseButtonJustPressed(b.button) {
			x, y := ebiten.CursorPosition()
			q.Push(core.Click(b.btn, float64(x), float64(y)))
		}
	}
}

// quitPressed reports whether the player asked to close the window.
func quitPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		(ebiten.IsKeyPressed(ebiten.KeyControl) && inpututil.IsKeyJustPressed(ebiten.KeyQ))
}
