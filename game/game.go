package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"survivorlike/sim"
)

// Game is the graphical shell around the simulation core. It implements
// ebiten.Game: Update gathers input intents and advances the sim by the
// wall-clock frame delta, Draw renders the current entity snapshot.
type Game struct {
	sim      *sim.Sim
	renderer *Renderer
	input    *Input

	// FPS tracking for the HUD
	fps              float64
	fpsUpdateCounter int
	fpsUpdateTimer   float64

	lastUpdateTime time.Time

	// OnGameOver fires once when the session ends, with the final score.
	OnGameOver   func(score int)
	prevGameOver bool
}

// NewGame creates the shell around an existing simulation.
func NewGame(s *sim.Sim) *Game {
	cfg := s.Config()
	return &Game{
		sim:            s,
		renderer:       NewRenderer(cfg),
		input:          NewInput(),
		fps:            60.0,
		lastUpdateTime: time.Now(),
	}
}

// Renderer exposes the renderer so the gamification wiring can push popups.
func (g *Game) Renderer() *Renderer {
	return g.renderer
}

// Update advances the simulation by one frame.
func (g *Game) Update() error {
	now := time.Now()
	deltaTime := now.Sub(g.lastUpdateTime).Seconds()
	g.lastUpdateTime = now

	// Pause toggle. Pause and Resume are idempotent on the sim side.
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if g.sim.Paused() {
			g.sim.Resume()
		} else {
			g.sim.Pause()
		}
	}
	if g.sim.Paused() {
		return nil
	}

	// Update FPS calculation (every 0.5 seconds)
	g.fpsUpdateTimer += deltaTime
	g.fpsUpdateCounter++
	if g.fpsUpdateTimer >= 0.5 {
		if g.fpsUpdateCounter > 0 {
			g.fps = float64(g.fpsUpdateCounter) / g.fpsUpdateTimer
		}
		g.fpsUpdateCounter = 0
		g.fpsUpdateTimer = 0.0
	}

	g.sim.SetIntents(g.input.Poll())
	g.sim.Advance(deltaTime)

	state := g.sim.State()
	if state.GameOver && !g.prevGameOver && g.OnGameOver != nil {
		g.OnGameOver(state.Score)
	}
	g.prevGameOver = state.GameOver

	g.renderer.UpdateDust(deltaTime, g.sim.Player())
	g.renderer.TickPopups(deltaTime)

	return nil
}

// Draw renders the game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Render(screen, g.sim)
	drawHUD(screen, g.sim, g.fps)
}

// Layout returns the logical screen size, which equals the playfield so
// world and screen coordinates coincide.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := g.sim.Config()
	return int(cfg.FieldWidth), int(cfg.FieldHeight)
}
