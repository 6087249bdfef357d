package game

import (
	"testing"

	"github.com/tuigames/flappy/internal/core"
)

// orderProbe records the order entities were drawn in.
type orderProbe struct {
	collideRecorder
	z   int
	log *[]int
}

func (o *orderProbe) ZIndex() int { return o.z }
func (o *orderProbe) Draw(*core.Screen) {
	*o.log = append(*o.log, o.z)
}

func TestSceneDrawsByZIndex(t *testing.T) {
	scene := NewScene(20, 10)
	var log []int

	// Insert out of z order
	scene.Add(&orderProbe{z: 10, log: &log})
	scene.Add(&orderProbe{z: 0, log: &log})
	scene.Add(&orderProbe{z: 5, log: &log})

	scene.Draw(core.NewScreen(20, 10))

	want := []int{0, 5, 10}
	for i, z := range want {
		if log[i] != z {
			t.Fatalf("draw order = %v, expected %v", log, want)
		}
	}
}

func TestSceneRemove(t *testing.T) {
	scene := NewScene(20, 10)
	a := &collideRecorder{}
	b := &collideRecorder{}
	scene.Add(a)
	scene.Add(b)

	scene.Remove(a)

	if len(scene.Entities()) != 1 || scene.Entities()[0] != Entity(b) {
		t.Errorf("Remove should leave only b, got %d entities", len(scene.Entities()))
	}
}

func TestSceneUpdateSkipsTubes(t *testing.T) {
	scene := NewScene(80, 24)
	ctx := &Context{Scene: scene, Sounds: NopSounds{}}

	pair := &TubePair{ctx: ctx, x: 40, gapY: 8, gapHeight: 8, width: 5, speed: 12}
	scene.Add(pair)

	scene.Update(1.0)

	if pair.x != 40 {
		t.Errorf("scene must not advance tube pairs, x = %v", pair.x)
	}
}

func TestSceneIncreaseSpeedReachesTiles(t *testing.T) {
	scene := NewScene(80, 24)
	ctx := &Context{Scene: scene, Sounds: NopSounds{}}

	tile := NewBackgroundTile(ctx, 0, 80, 4, stubSprite(8, 3))
	pair := &TubePair{ctx: ctx, x: 40, gapY: 8, gapHeight: 8, width: 5, speed: 12}
	scene.Add(tile)
	scene.Add(pair)

	scene.IncreaseSpeed(2)

	if tile.speed != 6 {
		t.Errorf("tile speed = %v, expected 6", tile.speed)
	}
	// Tube speed belongs to the driver; the scene leaves it alone
	if pair.speed != 12 {
		t.Errorf("tube speed = %v, expected 12", pair.speed)
	}
}

func TestBackgroundTileWraps(t *testing.T) {
	scene := NewScene(24, 10)
	ctx := &Context{Scene: scene, Sounds: NopSounds{}}

	tile := NewBackgroundTile(ctx, 0, 32, 8, stubSprite(8, 3))

	// One second at speed 8 pushes the tile fully past the left edge
	tile.Update(1.0)
	tile.Update(1.0)

	if tile.Bounds().Right() < 0 {
		t.Errorf("tile should have wrapped, bounds = %+v", tile.Bounds())
	}
	if tile.Bounds().X >= 32 {
		t.Errorf("wrapped tile should stay inside the row span, x = %v", tile.Bounds().X)
	}
}
