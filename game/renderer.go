package game

import (
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"survivorlike/sim"
)

// Color constants
var (
	colorBackground  = color.NRGBA{R: 8, G: 8, B: 24, A: 255}
	colorDust        = color.NRGBA{R: 70, G: 70, B: 90, A: 255}
	colorPlayer      = color.NRGBA{R: 120, G: 220, B: 255, A: 255}
	colorPlayerHurt  = color.NRGBA{R: 120, G: 220, B: 255, A: 110}
	colorShield      = color.NRGBA{R: 90, G: 200, B: 160, A: 180}
	colorBullet      = color.NRGBA{R: 255, G: 240, B: 160, A: 255}
	colorEnemy       = color.NRGBA{R: 255, G: 80, B: 80, A: 255}
	colorEnemyHurt   = color.NRGBA{R: 255, G: 160, B: 80, A: 255}
	colorGem         = color.NRGBA{R: 120, G: 255, B: 140, A: 255}
	colorPowerup     = color.NRGBA{R: 220, G: 140, B: 255, A: 255}
	colorPopupText   = color.NRGBA{R: 255, G: 255, B: 200, A: 255}
)

const dustCount = 70

// dustSpeck is one background speck drifting against player motion for a
// cheap parallax effect.
type dustSpeck struct {
	x, y   float64
	speed  float64
	radius float64
}

// popup is a transient score/notice label floating up from a world point.
type popup struct {
	text string
	x, y float64
	age  float64
	ttl  float64
}

// Renderer draws the simulation snapshot with plain vector shapes. It owns
// the dust field and the popup list; both are pure presentation state.
type Renderer struct {
	cfg    sim.Config
	dust   []dustSpeck
	popups []popup
}

// NewRenderer creates a renderer with a randomized dust field.
func NewRenderer(cfg sim.Config) *Renderer {
	r := &Renderer{cfg: cfg}
	r.dust = make([]dustSpeck, dustCount)
	for i := range r.dust {
		r.dust[i] = dustSpeck{
			x:      rand.Float64() * cfg.FieldWidth,
			y:      rand.Float64() * cfg.FieldHeight,
			speed:  0.2 + rand.Float64()*0.6,
			radius: 0.5 + rand.Float64()*1.2,
		}
	}
	return r
}

// UpdateDust drifts the specks opposite to player movement, wrapping at the
// field edges so the field never thins out.
func (r *Renderer) UpdateDust(dt float64, player sim.Player) {
	for i := range r.dust {
		r.dust[i].x -= player.VX * dt * r.dust[i].speed
		r.dust[i].y -= player.VY * dt * r.dust[i].speed

		if r.dust[i].x < 0 {
			r.dust[i].x += r.cfg.FieldWidth
		}
		if r.dust[i].x > r.cfg.FieldWidth {
			r.dust[i].x -= r.cfg.FieldWidth
		}
		if r.dust[i].y < 0 {
			r.dust[i].y += r.cfg.FieldHeight
		}
		if r.dust[i].y > r.cfg.FieldHeight {
			r.dust[i].y -= r.cfg.FieldHeight
		}
	}
}

// AddPopup queues a transient label at a world position.
func (r *Renderer) AddPopup(text string, x, y float64) {
	r.popups = append(r.popups, popup{text: text, x: x, y: y, ttl: 1.2})
}

// TickPopups ages the popup list and drops expired entries.
func (r *Renderer) TickPopups(dt float64) {
	alive := r.popups[:0]
	for _, p := range r.popups {
		p.age += dt
		p.y -= 24 * dt // float upward
		if p.age < p.ttl {
			alive = append(alive, p)
		}
	}
	r.popups = alive
}

// Render draws the full frame: background, dust, entities, popups.
func (r *Renderer) Render(screen *ebiten.Image, s *sim.Sim) {
	screen.Fill(colorBackground)

	for _, d := range r.dust {
		vector.DrawFilledCircle(screen, float32(d.x), float32(d.y), float32(d.radius), colorDust, false)
	}

	for _, p := range s.Particles() {
		clr := particleColor(p.Hue, p.Age/p.Lifetime)
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Size), clr, false)
	}

	for _, c := range s.Collectibles() {
		clr := colorGem
		if c.Kind != sim.CollectGem {
			clr = colorPowerup
		}
		vector.DrawFilledCircle(screen, float32(c.X), float32(c.Y), float32(c.Radius), clr, true)
	}

	for _, e := range s.Enemies() {
		clr := colorEnemy
		if e.Health < e.MaxHealth {
			clr = colorEnemyHurt
		}
		vector.DrawFilledCircle(screen, float32(e.X), float32(e.Y), float32(e.Radius), clr, true)
	}

	for _, b := range s.Bullets() {
		vector.DrawFilledCircle(screen, float32(b.X), float32(b.Y), float32(b.Radius), colorBullet, true)
	}

	r.renderPlayer(screen, s)
	r.renderPopups(screen)
}

func (r *Renderer) renderPlayer(screen *ebiten.Image, s *sim.Sim) {
	player := s.Player()
	state := s.State()

	clr := colorPlayer
	if player.Invuln > 0 {
		clr = colorPlayerHurt
	}
	vector.DrawFilledCircle(screen, float32(player.X), float32(player.Y), float32(player.Radius), clr, true)

	if state.Shield > 0 {
		vector.StrokeCircle(screen, float32(player.X), float32(player.Y), float32(player.Radius+5), 2, colorShield, true)
	}
}

// particleColor fades a warm palette entry out over the particle's life.
func particleColor(hue uint8, t float64) color.NRGBA {
	if t > 1 {
		t = 1
	}
	alpha := uint8(255 * (1 - t))
	switch hue % 3 {
	case 0:
		return color.NRGBA{R: 255, G: 200, B: 80, A: alpha}
	case 1:
		return color.NRGBA{R: 255, G: 120, B: 60, A: alpha}
	default:
		return color.NRGBA{R: 255, G: 255, B: 180, A: alpha}
	}
}
