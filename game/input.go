package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"survivorlike/sim"
)

// Input polls the keyboard and mouse once per frame and packages the
// result as simulation intents. Nothing here touches sim state directly;
// raw flags are handed to the sim and applied at the next tick.
type Input struct{}

// NewInput creates the input poller.
func NewInput() *Input {
	return &Input{}
}

// Poll reads the current device state into an intent snapshot.
func (in *Input) Poll() sim.Intents {
	var intents sim.Intents

	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		intents.MoveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		intents.MoveX += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		intents.MoveY -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		intents.MoveY += 1
	}

	// Aim at the cursor. Layout maps the logical screen onto the playfield
	// one to one, so cursor coordinates are already world coordinates.
	cx, cy := ebiten.CursorPosition()
	intents.AimX = float64(cx)
	intents.AimY = float64(cy)

	intents.Fire = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) ||
		ebiten.IsKeyPressed(ebiten.KeySpace)

	intents.Restart = inpututil.IsKeyJustPressed(ebiten.KeyR)

	return intents
}
