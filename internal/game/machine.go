package game

import (
	"fmt"
	"math"
	"time"

	"github.com/tuigames/flappy/internal/assets"
	"github.com/tuigames/flappy/internal/config"
	"github.com/tuigames/flappy/internal/core"
)

// Machine is the top-level orchestrator: it owns the session state, the
// score and level progression, the scene with its engines, and the tick
// contract the platform schedules against.
type Machine struct {
	cfg    config.Config
	rt     core.RuntimeConfig
	store  ScoreStore
	sounds SoundPlayer
	res    *assets.Store
	clock  func() time.Time

	state      State
	score      int
	level      int
	highScore  int
	lastUpdate time.Time // Zero before the loop's first tick

	ctx        *Context
	scene      *Scene
	physics    *PhysicsEngine
	collisions *CollisionEngine
	driver     *TubeDriver
	actor      *Actor
}

// NewMachine creates a machine in the Loading state. store may be nil
// (no persistence); sounds must not be nil — use NopSounds.
func NewMachine(cfg config.Config, rt core.RuntimeConfig, store ScoreStore, sounds SoundPlayer) *Machine {
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	return &Machine{
		cfg:    cfg,
		rt:     rt,
		store:  store,
		sounds: sounds,
		res:    assets.NewStore(),
		clock:  time.Now,
		state:  StateLoading,
	}
}

// Prepare resolves assets and the persisted high score, then enters Idle
// via a fresh session reset. A failed load is fatal: no partial start.
func (m *Machine) Prepare() error {
	if err := m.res.Load(assets.DefaultManifest()); err != nil {
		return fmt.Errorf("game: asset load failed: %w", err)
	}

	if m.store != nil {
		best, err := m.store.HighScore()
		if err != nil {
			return fmt.Errorf("game: high score load failed: %w", err)
		}
		m.highScore = best
	}

	m.Reset()
	return nil
}

// actionHandlers is the static state x primary-action transition table.
// Indexing by State over an array of exactly stateCount entries keeps
// the table exhaustive by construction.
var actionHandlers = [stateCount]func(*Machine){
	StateLoading:  func(*Machine) {}, // Loading accepts no input
	StateIdle:     (*Machine).Start,
	StatePlaying:  func(m *Machine) { m.actor.Flap() },
	StateGameOver: (*Machine).Start,
}

// HandleAction is the single input entry point: the active state decides
// what the primary action means.
func (m *Machine) HandleAction() {
	actionHandlers[m.state](m)
}

// Reset reconstructs the session: score and level to zero, fresh
// engines, scene, obstacle driver and actor, background tiling covering
// the viewport. The machine shows the Idle screen afterwards.
func (m *Machine) Reset() {
	m.score = 0
	m.level = 0

	m.physics = NewPhysicsEngine(m.cfg.Actor.Gravity)
	m.collisions = NewCollisionEngine()
	m.scene = NewScene(m.rt.ScreenW, m.rt.ScreenH)

	m.ctx = &Context{
		Scene:          m.scene,
		Physics:        m.physics,
		Sounds:         m.sounds,
		NotifyGameOver: m.gameOver,
	}

	m.spawnBackground()
	m.driver = NewTubeDriver(m.ctx, m.cfg.Tubes, m.rt.Seed)
	m.actor = NewActor(m.ctx, m.cfg.Actor, m.res.MustGet(m.cfg.Actor.Sprite))
	m.scene.Add(m.actor)

	m.state = StateIdle
}

// spawnBackground fills the viewport with a wrapping row of tiles. The
// row always covers [0, width] with no gap.
func (m *Machine) spawnBackground() {
	sprite := m.res.MustGet(m.cfg.Background.Sprite)
	tileW := float64(sprite.W)
	count := int(math.Ceil(float64(m.scene.Width())/tileW)) + 1
	span := float64(count) * tileW

	for i := 0; i < count; i++ {
		m.scene.Add(NewBackgroundTile(m.ctx, float64(i)*tileW, span, m.cfg.Background.Speed, sprite))
	}
}

// Start begins a fresh playing session: reset, transition sound, seed
// the loop timestamp, enter Playing. Valid from Idle and GameOver.
func (m *Machine) Start() {
	m.Reset()
	m.sounds.Play(SoundSwoosh)
	m.lastUpdate = m.clock()
	m.state = StatePlaying
}

// gameOver freezes the simulation. Idempotent: only the first call in a
// playing session has any effect, so a floor strike and a tube hit in
// the same tick cannot double-fire.
func (m *Machine) gameOver() {
	if m.state != StatePlaying {
		return
	}
	m.state = StateGameOver
	m.sounds.Play(SoundHit)

	if m.store != nil && m.score > 0 {
		// Best effort; a failed write must not break the session
		_ = m.store.RecordSession(m.score)
	}
}

// Tick runs one update cycle at the given wall-clock time and reports
// whether the platform should schedule another. The loop self-cancels by
// returning false once the state leaves Playing.
func (m *Machine) Tick(now time.Time) bool {
	if m.state != StatePlaying {
		return false
	}
	if m.lastUpdate.IsZero() {
		// First tick before Start seeded the timestamp; no delta yet
		m.lastUpdate = now
		return true
	}

	delta := now.Sub(m.lastUpdate).Seconds()
	m.update(delta)

	if m.state != StatePlaying {
		return false
	}
	m.lastUpdate = now
	return true
}

// update advances the simulation by delta seconds: obstacles through the
// driver first, then the scene entities including the actor, then
// collision detection and scoring.
func (m *Machine) update(delta float64) {
	m.driver.Update(delta)
	m.scene.Update(delta)
	m.collisions.Detect(m.scene.Entities())
	m.trackScore(delta)
}

// trackScore awards a point when the tube pair under the actor's center
// crosses it. The crossing window scales with current speed and delta so
// a pass registers at any frame rate; the per-pair scored latch keeps
// the award exactly-once even when the window holds across ticks.
func (m *Machine) trackScore(delta float64) {
	if m.state != StatePlaying {
		return
	}

	center := m.actor.Bounds().CenterX()
	under := m.driver.TubesBetween(center, center)
	if len(under) == 0 {
		return // No pair under the actor this tick
	}

	pair := under[0]
	if pair.Scored() {
		return
	}

	window := (m.cfg.Tubes.Speed + m.cfg.Game.LevelUpAcceleration*float64(m.level)) * delta
	if core.AbsF(pair.Bounds().CenterX()-center) > window/2 {
		return
	}

	pair.MarkScored()
	m.score++
	m.sounds.Play(SoundPoint)

	if m.score > m.highScore {
		m.highScore = m.score
		if m.store != nil {
			_ = m.store.SaveHighScore(m.highScore)
		}
	}

	if m.score >= m.cfg.Game.ScoreStep*(m.level+1) {
		m.levelUp()
	}
}

// levelUp raises the level and accelerates the whole world: alive tubes,
// future spawns, and the parallax backdrop.
func (m *Machine) levelUp() {
	m.level++
	m.driver.IncreaseSpeed(m.cfg.Game.LevelUpAcceleration)
	m.scene.IncreaseSpeed(m.cfg.Game.LevelUpAcceleration)
}

// Resize adapts the session to a new viewport without touching game
// progress: the scene resizes, background tiling is regenerated and
// obstacle gaps are pushed back inside the borders.
func (m *Machine) Resize(width, height int) {
	m.rt.ScreenW = width
	m.rt.ScreenH = height

	if m.scene == nil {
		return // Still loading; Reset will pick up the new size
	}

	m.scene.Resize(width, height)
	m.scene.RemoveKind(KindBackground)
	m.spawnBackground()
	m.driver.Reclamp()
}

// State returns the current session phase.
func (m *Machine) State() State {
	return m.state
}

// Snapshot returns the session's externally visible numbers.
func (m *Machine) Snapshot() Snapshot {
	return Snapshot{
		State:     m.state,
		Score:     m.score,
		Level:     m.level,
		HighScore: m.highScore,
	}
}
