package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/l1jgo/pong/internal/control"
	"github.com/l1jgo/pong/internal/match"
)

// Keyboard reads the player's keys. Arrow keys or W/S move, Q toggles AI.
type Keyboard struct{}

func (Keyboard) Poll(*match.State) control.Input {
	return control.Input{
		Up:       ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Down:     ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		ToggleAI: inpututil.IsKeyJustPressed(ebiten.KeyQ),
	}
}
