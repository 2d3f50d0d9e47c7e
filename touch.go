package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// handlePresses sends mouse clicks and new touches to the scene as pointer
// presses.
func (g *Tableau) handlePresses() error {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if err := g.scene.Press(float64(x), float64(y)); err != nil {
			return err
		}
	}

	// Use AppendJustPressedTouchIDs so a held finger presses once
	touches := make([]ebiten.TouchID, 0, 8)
	touches = inpututil.AppendJustPressedTouchIDs(touches)
	for _, id := range touches {
		x, y := ebiten.TouchPosition(id)
		if err := g.scene.Press(float64(x), float64(y)); err != nil {
			return err
		}
	}
	return nil
}
