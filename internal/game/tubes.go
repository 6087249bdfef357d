package game

import (
	"math/rand"

	"github.com/tuigames/flappy/internal/config"
	"github.com/tuigames/flappy/internal/core"
)

// Tube rendering runes.
const (
	tubeBodyChar      = '█'
	tubeCapTopChar    = '▄'
	tubeCapBottomChar = '▀'
)

// TubePair is one obstacle: two vertically offset barrier segments with a
// passable gap, scrolling leftward. It renders as two rectangles but is a
// single collidable unit, and it scores at most once.
type TubePair struct {
	ctx *Context

	x         float64
	gapY      float64
	gapHeight float64
	width     float64
	speed     float64 // Leftward cells per second
	scored    bool
}

// Update scrolls the pair left. Called by the driver, not the scene.
func (t *TubePair) Update(delta float64) {
	t.x -= t.speed * delta
}

// Draw renders both segments with caps facing the gap.
func (t *TubePair) Draw(dst *core.Screen) {
	x := int(t.x)
	w := int(t.width)
	gapTop := int(t.gapY)
	gapBottom := int(t.gapY + t.gapHeight)
	screenH := t.ctx.Scene.Height()

	for col := 0; col < w; col++ {
		for y := 0; y < gapTop-1; y++ {
			dst.SetColored(x+col, y, tubeBodyChar, core.ColorGreen)
		}
		if gapTop > 0 {
			dst.SetColored(x+col, gapTop-1, tubeCapTopChar, core.ColorGreen)
		}

		if gapBottom < screenH {
			dst.SetColored(x+col, gapBottom, tubeCapBottomChar, core.ColorGreen)
		}
		for y := gapBottom + 1; y < screenH; y++ {
			dst.SetColored(x+col, y, tubeBodyChar, core.ColorGreen)
		}
	}
}

// Bounds returns the pair's full column extent (broad phase).
func (t *TubePair) Bounds() core.Rect {
	return core.NewRect(t.x, 0, t.width, float64(t.ctx.Scene.Height()))
}

// HitBoxes returns the two solid segments. The gap between them is
// passable space.
func (t *TubePair) HitBoxes() []core.Rect {
	screenH := float64(t.ctx.Scene.Height())
	return []core.Rect{
		core.NewRect(t.x, 0, t.width, t.gapY),
		core.NewRect(t.x, t.gapY+t.gapHeight, t.width, screenH-t.gapY-t.gapHeight),
	}
}

// Kind implements Entity.
func (t *TubePair) Kind() Kind { return KindTube }

// Collidable implements Entity.
func (t *TubePair) Collidable() bool { return true }

// ZIndex implements Entity. Tubes draw above the backdrop, below the actor.
func (t *TubePair) ZIndex() int { return 5 }

// Collide implements Entity. Tube pairs are passive; the actor reacts.
func (t *TubePair) Collide(Entity) {}

// IncreaseSpeed implements the level-up speed bump for an alive pair.
func (t *TubePair) IncreaseSpeed(delta float64) {
	t.speed += delta
}

// Scored reports whether this pair has already produced a point.
func (t *TubePair) Scored() bool { return t.scored }

// MarkScored latches the pair as counted.
func (t *TubePair) MarkScored() { t.scored = true }

// Gap returns the gap's top edge and height. Used by tests to verify the
// spacing policy.
func (t *TubePair) Gap() (y, height float64) { return t.gapY, t.gapHeight }

// TubeDriver procedurally spawns, recycles and queries tube pairs. Alive
// pairs are kept in ascending x order; the horizontal distance between
// consecutive pairs always lies within the configured range, and every
// gap respects the border offset on both sides.
type TubeDriver struct {
	ctx   *Context
	cfg   config.TubesConfig
	rng   *rand.Rand
	speed float64 // Speed assigned to future spawns
	tubes []*TubePair
}

// NewTubeDriver creates a driver with a seeded RNG. No pairs are spawned
// until the first Update.
func NewTubeDriver(ctx *Context, cfg config.TubesConfig, seed int64) *TubeDriver {
	return &TubeDriver{
		ctx:   ctx,
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(seed)),
		speed: cfg.Speed,
	}
}

// Update advances all alive pairs, recycles pairs that scrolled fully
// past the left edge, and spawns ahead of the right edge up to the
// lookahead horizon.
func (d *TubeDriver) Update(delta float64) {
	for _, t := range d.tubes {
		t.Update(delta)
	}

	// Recycle: a pair whose right edge crossed x=0 is garbage
	alive := d.tubes[:0]
	for _, t := range d.tubes {
		if t.Bounds().Right() > 0 {
			alive = append(alive, t)
		} else {
			d.ctx.Scene.Remove(t)
		}
	}
	d.tubes = alive

	// Spawn until the rightmost pair reaches past the lookahead horizon
	horizon := float64(d.ctx.Scene.Width()) + d.cfg.Lookahead
	for d.rightmostX() < horizon {
		d.spawn()
	}
}

// rightmostX returns the x position of the last alive pair, or the right
// viewport edge when none are alive.
func (d *TubeDriver) rightmostX() float64 {
	if len(d.tubes) == 0 {
		return float64(d.ctx.Scene.Width())
	}
	return d.tubes[len(d.tubes)-1].x
}

// spawn appends one pair after the current rightmost, at a random
// distance within the spacing policy and with a random gap placed inside
// the borders.
func (d *TubeDriver) spawn() {
	x := d.rightmostX() + d.cfg.Width + d.randRange(d.cfg.DistanceMin, d.cfg.DistanceMax)

	gapHeight := d.randRange(d.cfg.SpaceMin, d.cfg.SpaceMax)
	maxGapY := float64(d.ctx.Scene.Height()) - d.cfg.BorderOffset - gapHeight
	gapY := d.cfg.BorderOffset
	if maxGapY > gapY {
		gapY = d.randRange(d.cfg.BorderOffset, maxGapY)
	}

	t := &TubePair{
		ctx:       d.ctx,
		x:         x,
		gapY:      gapY,
		gapHeight: gapHeight,
		width:     d.cfg.Width,
		speed:     d.speed,
	}
	d.tubes = append(d.tubes, t)
	d.ctx.Scene.Add(t)
}

// randRange returns a uniform value in [min, max].
func (d *TubeDriver) randRange(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + d.rng.Float64()*(max-min)
}

// Tubes returns the alive pairs in ascending x order.
func (d *TubeDriver) Tubes() []*TubePair {
	return d.tubes
}

// TubesBetween returns, in ascending x order, the alive pairs whose
// horizontal span intersects [from, to]. An empty result is a normal
// outcome, not an error.
func (d *TubeDriver) TubesBetween(from, to float64) []*TubePair {
	var out []*TubePair
	for _, t := range d.tubes {
		if t.Bounds().SpansX(from, to) {
			out = append(out, t)
		}
	}
	return out
}

// IncreaseSpeed raises the scroll speed of every alive pair and of all
// future spawns, so a level-up persists across the whole obstacle stream.
func (d *TubeDriver) IncreaseSpeed(delta float64) {
	d.speed += delta
	for _, t := range d.tubes {
		t.IncreaseSpeed(delta)
	}
}

// Reclamp pushes every alive pair's gap back inside the borders after a
// viewport resize.
func (d *TubeDriver) Reclamp() {
	maxBottom := float64(d.ctx.Scene.Height()) - d.cfg.BorderOffset
	for _, t := range d.tubes {
		if t.gapY+t.gapHeight > maxBottom {
			t.gapY = maxBottom - t.gapHeight
		}
		if t.gapY < d.cfg.BorderOffset {
			t.gapY = d.cfg.BorderOffset
		}
	}
}
