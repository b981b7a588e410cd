package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"survivorlike/sim"
)

var (
	stylePlayer  = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleEnemy   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleBullet  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleGem     = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	stylePowerup = tcell.StyleDefault.Foreground(tcell.ColorFuchsia).Bold(true)
	styleSpark   = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleBanner  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// draw paints one frame: a HUD row on top, the scaled playfield below.
func (f *Frontend) draw() {
	f.screen.Clear()

	width, height := f.screen.Size()
	fieldRows := height - 1
	if width < 10 || fieldRows < 5 {
		f.screen.Show()
		return
	}

	cfg := f.sim.Config()
	toCol := func(x float64) int { return int(x / cfg.FieldWidth * float64(width)) }
	toRow := func(y float64) int { return 1 + int(y/cfg.FieldHeight*float64(fieldRows)) }

	plot := func(x, y float64, r rune, style tcell.Style) {
		col, row := toCol(x), toRow(y)
		if col >= 0 && col < width && row >= 1 && row < height {
			f.screen.SetContent(col, row, r, nil, style)
		}
	}

	for _, p := range f.sim.Particles() {
		plot(p.X, p.Y, '.', styleSpark)
	}
	for _, c := range f.sim.Collectibles() {
		if c.Kind == sim.CollectGem {
			plot(c.X, c.Y, 'o', styleGem)
		} else {
			plot(c.X, c.Y, '$', stylePowerup)
		}
	}
	for _, b := range f.sim.Bullets() {
		plot(b.X, b.Y, '*', styleBullet)
	}
	for _, e := range f.sim.Enemies() {
		plot(e.X, e.Y, 'x', styleEnemy)
	}
	player := f.sim.Player()
	plot(player.X, player.Y, '@', stylePlayer)

	f.drawHUD(width)

	state := f.sim.State()
	if state.GameOver {
		banner := "GAME OVER - press r to restart, q to quit"
		printAt(f.screen, (width-len(banner))/2, fieldRows/2, banner, styleBanner)
	} else if f.sim.Paused() {
		banner := "PAUSED"
		printAt(f.screen, (width-len(banner))/2, fieldRows/2, banner, styleHUD)
	}

	f.screen.Show()
}

func (f *Frontend) drawHUD(width int) {
	state := f.sim.State()
	line := fmt.Sprintf(" SCORE %d  LIVES %d  x%.1f", state.Score, state.Lives, state.Multiplier)
	if state.FrenzyTier > 0 {
		line += fmt.Sprintf("  FRENZY %d", state.FrenzyTier)
	}
	if f.status != "" {
		line += "  | " + f.status
	}
	printAt(f.screen, 0, 0, line, styleHUD)
}

func printAt(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for i, r := range s {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
