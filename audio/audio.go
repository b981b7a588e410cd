// Package audio plays short synthesized cues for simulation events. Cues
// are fire-and-forget: a failed speaker init or a bad cue is logged and the
// engine degrades to silence, never surfacing errors to the game loop.
package audio

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// cue maps an event name to a tone. Value-dependent cues pitch up with the
// event value (streaks, tiers).
type cue struct {
	freq     float64
	duration time.Duration
	perValue float64 // hertz added per event value unit
}

var cues = map[string]cue{
	"kill":         {freq: 520, duration: 60 * time.Millisecond, perValue: 6},
	"killstreak":   {freq: 660, duration: 140 * time.Millisecond, perValue: 4},
	"pickup":       {freq: 880, duration: 70 * time.Millisecond},
	"powerup":      {freq: 440, duration: 180 * time.Millisecond, perValue: 110},
	"hit":          {freq: 160, duration: 220 * time.Millisecond},
	"combo-end":    {freq: 240, duration: 90 * time.Millisecond},
	"frenzy-start": {freq: 740, duration: 260 * time.Millisecond, perValue: 90},
	"game-over":    {freq: 110, duration: 600 * time.Millisecond},
}

// Engine implements the simulation's audio hook on top of the beep
// speaker. The zero Engine (or one whose init failed) is silent.
type Engine struct {
	ready bool
}

// NewEngine initializes the speaker. On failure the engine is returned in
// silent mode with the cause logged once.
func NewEngine() *Engine {
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		log.Printf("audio: speaker init failed, running silent: %v", err)
		return &Engine{}
	}
	return &Engine{ready: true}
}

// Event plays the cue registered for name, if any. Unknown names are
// silently ignored so the sim can emit new event names freely.
func (e *Engine) Event(name string, value int) {
	if e == nil || !e.ready {
		return
	}
	c, ok := cues[name]
	if !ok {
		return
	}

	freq := c.freq + c.perValue*float64(value)
	tone, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		log.Printf("audio: cue %s: %v", name, err)
		return
	}
	speaker.Play(beep.Take(sampleRate.N(c.duration), tone))
}

// Close stops playback. Safe on a silent engine.
func (e *Engine) Close() {
	if e != nil && e.ready {
		speaker.Clear()
	}
}
