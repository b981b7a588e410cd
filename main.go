package main

import (
	"flag"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"survivorlike/audio"
	"survivorlike/game"
	"survivorlike/progress"
	"survivorlike/sim"
	"survivorlike/term"
)

func main() {
	var (
		terminal    = flag.Bool("terminal", false, "run the terminal frontend instead of the window")
		configPath  = flag.String("config", "", "optional YAML tuning overrides")
		profilePath = flag.String("profile", progress.DefaultPath(), "progress profile location")
		tier        = flag.Int("tier", int(sim.TierMid), "device tier 0..2 selecting entity caps")
		mute        = flag.Bool("mute", false, "disable audio cues")
	)
	flag.Parse()

	cfg := sim.DefaultConfig()
	if *configPath != "" {
		loaded, err := sim.LoadConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}
	if *tier >= int(sim.TierLow) && *tier <= int(sim.TierHigh) {
		cfg.Tier = sim.DeviceTier(*tier)
	}

	store := progress.Open(*profilePath)
	log.Printf("profile loaded, best score %d", store.BestScore())

	hooks := sim.Hooks{}
	if !*mute {
		engine := audio.NewEngine()
		defer engine.Close()
		hooks.Audio = engine
	}

	if *terminal {
		runTerminal(cfg, hooks, store)
		return
	}
	runWindow(cfg, hooks, store)
}

func runWindow(cfg sim.Config, hooks sim.Hooks, store *progress.Store) {
	bridge := &gamifyBridge{store: store}
	hooks.Gamification = bridge

	s := sim.NewSim(cfg, hooks)
	g := game.NewGame(s)
	bridge.popup = g.Renderer().AddPopup
	g.OnGameOver = func(score int) {
		if store.RecordScore(score) {
			g.Renderer().AddPopup("NEW BEST!", cfg.FieldWidth/2-40, cfg.FieldHeight/2-40)
		}
	}

	ebiten.SetWindowSize(int(cfg.FieldWidth), int(cfg.FieldHeight))
	ebiten.SetWindowTitle("Survivorlike")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

func runTerminal(cfg sim.Config, hooks sim.Hooks, store *progress.Store) {
	bridge := &gamifyBridge{store: store}
	hooks.Gamification = bridge

	s := sim.NewSim(cfg, hooks)
	f := term.New(s)
	bridge.popup = f.ShowPopup
	f.OnGameOver = func(score int) {
		if store.RecordScore(score) {
			f.ShowPopup("NEW BEST!", 0, 0)
		}
	}

	if err := f.Run(); err != nil {
		log.Fatal(err)
	}
}

// gamifyBridge adapts the progress store plus a frontend popup sink to the
// simulation's gamification hook.
type gamifyBridge struct {
	store *progress.Store
	popup func(text string, x, y float64)
}

func (b *gamifyBridge) AddPoints(amount int, reason string) {
	b.store.AddPoints(amount)
}

func (b *gamifyBridge) UnlockAchievement(id string) {
	if strings.HasPrefix(id, "secret-") {
		if b.store.Discovered(id) {
			return
		}
		b.store.DiscoverSecret(id)
		if b.popup != nil {
			b.popup("SECRET FOUND: "+id, 20, 60)
		}
		return
	}
	if b.store.Unlocked(id) {
		return
	}
	b.store.Unlock(id)
	if b.popup != nil {
		b.popup("UNLOCKED: "+id, 20, 60)
	}
}

func (b *gamifyBridge) ShowPopup(text string, x, y float64) {
	if b.popup != nil {
		b.popup(text, x, y)
	}
}
