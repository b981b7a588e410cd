package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"survivorlike/sim"
)

var hudFace = basicfont.Face7x13

// drawHUD paints score, lives, combo, and frenzy state along the top edge,
// plus the game-over banner when the session has ended.
func drawHUD(screen *ebiten.Image, s *sim.Sim, fps float64) {
	state := s.State()
	white := color.NRGBA{R: 230, G: 230, B: 230, A: 255}

	line := fmt.Sprintf("SCORE %d   LIVES %d   x%.1f", state.Score, state.Lives, state.Multiplier)
	if state.FrenzyTier > 0 {
		line += fmt.Sprintf("   FRENZY %d", state.FrenzyTier)
	}
	if streak := s.Streak(); streak >= 5 {
		line += fmt.Sprintf("   STREAK %d", streak)
	}
	text.Draw(screen, line, hudFace, 10, 18, white)

	fpsLabel := fmt.Sprintf("%.0f FPS", fps)
	text.Draw(screen, fpsLabel, hudFace, int(s.Config().FieldWidth)-70, 18, white)

	if state.RapidFire > 0 {
		text.Draw(screen, fmt.Sprintf("RAPID %.1fs", state.RapidFire), hudFace, 10, 36, white)
	}
	if state.Shield > 0 {
		text.Draw(screen, fmt.Sprintf("SHIELD %.1fs", state.Shield), hudFace, 110, 36, white)
	}
	if state.Doubler > 0 {
		text.Draw(screen, fmt.Sprintf("x2 %.1fs", state.Doubler), hudFace, 210, 36, white)
	}

	if state.GameOver {
		cx := int(s.Config().FieldWidth/2) - 60
		cy := int(s.Config().FieldHeight / 2)
		text.Draw(screen, "GAME OVER", hudFace, cx, cy, color.NRGBA{R: 255, G: 90, B: 90, A: 255})
		text.Draw(screen, "press R to restart", hudFace, cx-20, cy+20, white)
	}
}

func (r *Renderer) renderPopups(screen *ebiten.Image) {
	for _, p := range r.popups {
		text.Draw(screen, p.text, hudFace, int(p.x), int(p.y), colorPopupText)
	}
}
