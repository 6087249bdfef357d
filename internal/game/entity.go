// Package game implements the simulation engine: the entity model, scene,
// physics and collision engines, procedural obstacle generation, and the
// state machine that orchestrates a play session.
package game

import (
	"github.com/tuigames/flappy/internal/core"
)

// Kind enumerates the entity variants. Collision handlers categorize
// their counterpart by kind rather than by runtime type.
type Kind int

const (
	KindActor Kind = iota
	KindTube
	KindBackground
)

// Entity is the polymorphic base for everything the scene simulates.
type Entity interface {
	// Update advances the entity by delta seconds.
	Update(delta float64)

	// Draw renders the entity onto the screen buffer.
	Draw(dst *core.Screen)

	// Bounds returns the entity's broad-phase bounding box.
	Bounds() core.Rect

	// HitBoxes returns the solid rectangles used for collision. A tube
	// pair reports its two segments; most entities report their bounds.
	HitBoxes() []core.Rect

	// Kind identifies the entity variant.
	Kind() Kind

	// Collidable reports whether the collision engine should consider
	// this entity at all.
	Collidable() bool

	// ZIndex orders drawing; lower values are drawn first.
	ZIndex() int

	// Collide is invoked by the collision engine when this entity's hit
	// boxes overlap another collidable entity's.
	Collide(other Entity)
}

// Sound identifies one of the game's sound effects.
type Sound int

const (
	SoundWing   Sound = iota // Flap
	SoundPoint               // Obstacle passed
	SoundHit                 // Collision
	SoundSwoosh              // Session transition
)

// String returns the manifest name of the sound's audio resource.
func (s Sound) String() string {
	switch s {
	case SoundWing:
		return "wing"
	case SoundPoint:
		return "point"
	case SoundHit:
		return "hit"
	case SoundSwoosh:
		return "swoosh"
	default:
		return "unknown"
	}
}

// SoundPlayer plays sound effects. Implementations must be safe to call
// from the simulation tick; playback must never block it.
type SoundPlayer interface {
	Play(s Sound)
}

// NopSounds is a SoundPlayer that does nothing. Used in tests and in
// server-side sessions with no speaker.
type NopSounds struct{}

// Play implements SoundPlayer.
func (NopSounds) Play(Sound) {}

// Context is the session context handed to entities at construction.
// It bundles the collaborators an entity may need — the owning scene for
// bounds queries, the physics engine, sounds, and the game-over hook — so
// entities never see the orchestrator's full interface. All references
// are non-owning.
type Context struct {
	Scene   *Scene
	Physics *PhysicsEngine
	Sounds  SoundPlayer

	// NotifyGameOver reports a fatal collision to the state machine.
	// Idempotent: calls outside the playing state are no-ops.
	NotifyGameOver func()
}

// accelerator is implemented by entities whose scroll speed grows on
// level-up.
type accelerator interface {
	IncreaseSpeed(delta float64)
}
