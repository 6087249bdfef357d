package game

import (
	"testing"

	"github.com/tuigames/flappy/internal/config"
)

func testActorConfig() config.ActorConfig {
	return config.ActorConfig{
		X:              12,
		Y:              8,
		Width:          3,
		Height:         2,
		FlapImpulse:    16,
		RotationSpeed:  24,
		AnimationSpeed: 8,
		Gravity:        38,
	}
}

func newTestActor(t *testing.T) (*Actor, *int) {
	t.Helper()
	scene := NewScene(80, 24)
	gameOvers := 0
	ctx := &Context{
		Scene:          scene,
		Physics:        NewPhysicsEngine(38),
		Sounds:         NopSounds{},
		NotifyGameOver: func() { gameOvers++ },
	}
	a := NewActor(ctx, testActorConfig(), stubSprite(3, 2))
	scene.Add(a)
	return a, &gameOvers
}

func TestActorFlap(t *testing.T) {
	a, _ := newTestActor(t)

	a.Flap()

	if a.velocity != -16 {
		t.Errorf("flap velocity = %v, expected -16", a.velocity)
	}
}

func TestActorCeilingClamp(t *testing.T) {
	a, overs := newTestActor(t)
	a.y = 0.5
	a.velocity = -40 // Hard climb into the ceiling

	a.Update(0.1)

	if a.y < 0 {
		t.Errorf("y must be clamped to >= 0, got %v", a.y)
	}
	if *overs != 0 {
		t.Error("the ceiling is not fatal")
	}
}

func TestActorFloorIsFatal(t *testing.T) {
	a, overs := newTestActor(t)
	a.y = 21.5
	a.velocity = 20

	a.Update(0.1)

	if *overs != 1 {
		t.Fatalf("floor strike should report game over once, got %d", *overs)
	}
	if a.y+a.height > 24 {
		t.Errorf("actor should rest on the floor, y = %v", a.y)
	}
}

func TestActorCollideWithTube(t *testing.T) {
	a, overs := newTestActor(t)
	pair := &TubePair{ctx: a.ctx, x: 10, gapY: 8, gapHeight: 8, width: 5}

	a.Collide(pair)
	if *overs != 1 {
		t.Errorf("tube collision should report game over, got %d", *overs)
	}

	// Non-tube counterparts are ignored
	tile := NewBackgroundTile(a.ctx, 0, 80, 4, stubSprite(8, 3))
	a.Collide(tile)
	if *overs != 1 {
		t.Errorf("tile collision must be a no-op, got %d", *overs)
	}
}

func TestActorPose(t *testing.T) {
	a, _ := newTestActor(t)

	a.velocity = -20
	if a.pose() != '↗' {
		t.Errorf("climbing pose = %q", a.pose())
	}
	a.velocity = 20
	if a.pose() != '↘' {
		t.Errorf("diving pose = %q", a.pose())
	}
	a.velocity = 0
	if a.pose() != '>' {
		t.Errorf("level pose = %q", a.pose())
	}
}
