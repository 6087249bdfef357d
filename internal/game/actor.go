package game

import (
	"github.com/tuigames/flappy/internal/assets"
	"github.com/tuigames/flappy/internal/config"
	"github.com/tuigames/flappy/internal/core"
)

// Actor is the controlled entity: a bird pulled down by gravity and
// pushed up by flap impulses. Its liveness is owned by the state
// machine, not by a field of its own.
type Actor struct {
	ctx *Context

	x, y          float64
	width, height float64
	velocity      float64 // Vertical fall velocity, positive down

	flapImpulse   float64
	rotationSpeed float64

	animSpeed float64
	animClock float64
	sprite    *assets.Resource
}

// NewActor creates the actor at its configured start position.
func NewActor(ctx *Context, cfg config.ActorConfig, sprite *assets.Resource) *Actor {
	return &Actor{
		ctx:           ctx,
		x:             cfg.X,
		y:             cfg.Y,
		width:         cfg.Width,
		height:        cfg.Height,
		flapImpulse:   cfg.FlapImpulse,
		rotationSpeed: cfg.RotationSpeed,
		animSpeed:     cfg.AnimationSpeed,
		sprite:        sprite,
	}
}

// Flap applies the upward impulse and plays the wing sound.
func (a *Actor) Flap() {
	a.velocity = -a.flapImpulse
	a.ctx.Sounds.Play(SoundWing)
}

// FallVelocity implements FallingBody.
func (a *Actor) FallVelocity() float64 { return a.velocity }

// SetFallVelocity implements FallingBody.
func (a *Actor) SetFallVelocity(v float64) { a.velocity = v }

// Y implements FallingBody.
func (a *Actor) Y() float64 { return a.y }

// SetY implements FallingBody.
func (a *Actor) SetY(y float64) { a.y = y }

// Update advances the wing animation, integrates gravity, clamps the
// actor at the ceiling and reports a floor strike as game over. The
// floor is not an entity; the check lives here.
func (a *Actor) Update(delta float64) {
	a.animClock += a.animSpeed * delta

	a.ctx.Physics.Step(a, delta)

	if a.y < 0 {
		a.y = 0
	}

	if a.y+a.height >= float64(a.ctx.Scene.Height()) {
		a.y = float64(a.ctx.Scene.Height()) - a.height
		a.ctx.NotifyGameOver()
	}
}

// Draw renders the current animation frame, with the beak tilted by the
// current velocity.
func (a *Actor) Draw(dst *core.Screen) {
	x, y := int(a.x), int(a.y)
	dst.DrawFrame(x, y, a.sprite.Frame(int(a.animClock)), core.ColorYellow)
	dst.SetColored(x+int(a.width)-1, y, a.pose(), core.ColorYellow)
}

// pose derives the tilt glyph from the fall velocity: climbing points
// up, diving points down.
func (a *Actor) pose() rune {
	switch {
	case a.velocity < -a.rotationSpeed/2:
		return '↗'
	case a.velocity > a.rotationSpeed/2:
		return '↘'
	default:
		return '>'
	}
}

// Bounds implements Entity.
func (a *Actor) Bounds() core.Rect {
	return core.NewRect(a.x, a.y, a.width, a.height)
}

// HitBoxes implements Entity.
func (a *Actor) HitBoxes() []core.Rect {
	return []core.Rect{a.Bounds()}
}

// Kind implements Entity.
func (a *Actor) Kind() Kind { return KindActor }

// Collidable implements Entity.
func (a *Actor) Collidable() bool { return true }

// ZIndex implements Entity. The actor draws above everything else.
func (a *Actor) ZIndex() int { return 10 }

// Collide reports game over when the counterpart is a tube pair.
// Tiles and other kinds are ignored.
func (a *Actor) Collide(other Entity) {
	if other.Kind() == KindTube {
		a.ctx.NotifyGameOver()
	}
}
