package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/isodice/internal/core"
)

// keyActions maps keyboard keys to game actions.
var keyActions = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeyArrowRight, core.ActionRight},
	{ebiten.KeyD, core.ActionRight},
	{ebiten.KeyArrowLeft, core.ActionLeft},
	{ebiten.KeyA, core.ActionLeft},
	{ebiten.KeyArrowDown, core.ActionFront},
	{ebiten.KeyS, core.ActionFront},
	{ebiten.KeyArrowUp, core.ActionBack},
	{ebiten.KeyW, core.ActionBack},
	{ebiten.KeyR, core.ActionRestart},
	{ebiten.KeySpace, core.ActionRestart},
	{ebiten.KeyP, core.ActionPause},
	{ebiten.KeyEscape, core.ActionPause},
	{ebiten.KeyEnter, core.ActionConfirm},
	{ebiten.KeyQ, core.ActionQuit},
}

// readInput fills the frame with the actions whose keys were pressed this tick.
func readInput(frame *core.InputFrame) {
	frame.Clear()
	for _, ka := range keyActions {
		if inpututil.IsKeyJustPressed(ka.key) {
			frame.Set(ka.action)
		}
	}
}
