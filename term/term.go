// Package term is the terminal frontend: the same simulation core drawn
// with tcell cells instead of ebiten shapes. Input events only record
// intent flags; the loop applies them at the next tick.
package term

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"survivorlike/sim"
)

const tickInterval = 33 * time.Millisecond

// Frontend drives the sim from a terminal screen.
type Frontend struct {
	sim    *sim.Sim
	screen tcell.Screen

	// Movement direction persists until changed; terminals deliver no
	// key-up events.
	dirX, dirY float64
	fire       bool
	restart    bool

	// status is a transient HUD message fed by the popup hook.
	status    string
	statusTTL float64

	// OnGameOver fires once when the session ends, with the final score.
	OnGameOver func(score int)

	prevGameOver bool
}

// New creates the frontend for an existing simulation.
func New(s *sim.Sim) *Frontend {
	return &Frontend{sim: s}
}

// ShowPopup implements the popup half of the gamification hook by putting
// the text on the HUD status slot for a moment.
func (f *Frontend) ShowPopup(text string, x, y float64) {
	f.status = text
	f.statusTTL = 1.5
}

// Run owns the screen and the loop until the player quits.
func (f *Frontend) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	f.screen = screen
	defer screen.Fini()
	screen.HideCursor()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if quit := f.handleEvent(ev); quit {
				return nil
			}
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now

			if f.sim.Paused() {
				f.draw()
				continue
			}

			f.sim.SetIntents(sim.Intents{
				MoveX:   f.dirX,
				MoveY:   f.dirY,
				Fire:    f.fire,
				AimX:    f.aimX(),
				AimY:    f.aimY(),
				Restart: f.restart,
			})
			f.restart = false
			f.sim.Advance(dt)

			f.statusTTL -= dt
			if f.statusTTL <= 0 {
				f.status = ""
			}

			state := f.sim.State()
			if state.GameOver && !f.prevGameOver && f.OnGameOver != nil {
				f.OnGameOver(state.Score)
			}
			f.prevGameOver = state.GameOver

			f.draw()
		}
	}
}

// aimX/aimY project the aim point ahead of the player along the current
// movement direction. Terminals have no pointer to aim with.
func (f *Frontend) aimX() float64 {
	return f.sim.Player().X + f.dirX*120
}

func (f *Frontend) aimY() float64 {
	p := f.sim.Player()
	if f.dirX == 0 && f.dirY == 0 {
		return p.Y - 120 // default aim: straight up
	}
	return p.Y + f.dirY*120
}

// handleEvent records intent flags from one terminal event. Returns true
// on a quit request.
func (f *Frontend) handleEvent(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		if _, resized := ev.(*tcell.EventResize); resized {
			f.screen.Sync()
		}
		return false
	}

	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		f.dirX, f.dirY = -1, 0
	case tcell.KeyRight:
		f.dirX, f.dirY = 1, 0
	case tcell.KeyUp:
		f.dirX, f.dirY = 0, -1
	case tcell.KeyDown:
		f.dirX, f.dirY = 0, 1
	case tcell.KeyRune:
		switch key.Rune() {
		case 'q':
			return true
		case 'a', 'h':
			f.dirX, f.dirY = -1, 0
		case 'd', 'l':
			f.dirX, f.dirY = 1, 0
		case 'w', 'k':
			f.dirX, f.dirY = 0, -1
		case 's', 'j':
			f.dirX, f.dirY = 0, 1
		case 'x':
			f.dirX, f.dirY = 0, 0
		case ' ':
			f.fire = !f.fire // space toggles autofire
		case 'r':
			f.restart = true
		case 'p':
			if f.sim.Paused() {
				f.sim.Resume()
			} else {
				f.sim.Pause()
			}
		}
	}
	return false
}
