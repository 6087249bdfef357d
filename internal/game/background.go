package game

import (
	"github.com/tuigames/flappy/internal/assets"
	"github.com/tuigames/flappy/internal/core"
)

// BackgroundTile is one section of the parallax backdrop. Tiles scroll
// left and wrap around their combined span, so the viewport is always
// covered with no gap. Never collidable.
type BackgroundTile struct {
	ctx *Context

	x      float64
	span   float64 // Combined width of the whole tile row
	speed  float64
	sprite *assets.Resource
}

// NewBackgroundTile creates one tile of a row covering span cells.
func NewBackgroundTile(ctx *Context, x, span, speed float64, sprite *assets.Resource) *BackgroundTile {
	return &BackgroundTile{
		ctx:    ctx,
		x:      x,
		span:   span,
		speed:  speed,
		sprite: sprite,
	}
}

// Update scrolls the tile left; a tile fully past the left edge wraps to
// the right end of the row.
func (b *BackgroundTile) Update(delta float64) {
	b.x -= b.speed * delta
	if b.x+float64(b.sprite.W) < 0 {
		b.x += b.span
	}
}

// Draw renders the tile along the bottom of the viewport.
func (b *BackgroundTile) Draw(dst *core.Screen) {
	y := b.ctx.Scene.Height() - b.sprite.H
	dst.DrawFrame(int(b.x), y, b.sprite.Frame(0), core.ColorGray)
}

// Bounds implements Entity.
func (b *BackgroundTile) Bounds() core.Rect {
	return core.NewRect(b.x, float64(b.ctx.Scene.Height()-b.sprite.H), float64(b.sprite.W), float64(b.sprite.H))
}

// HitBoxes implements Entity. Tiles are never collidable, so this is
// only here to satisfy the interface.
func (b *BackgroundTile) HitBoxes() []core.Rect {
	return nil
}

// Kind implements Entity.
func (b *BackgroundTile) Kind() Kind { return KindBackground }

// Collidable implements Entity.
func (b *BackgroundTile) Collidable() bool { return false }

// ZIndex implements Entity. The backdrop draws first.
func (b *BackgroundTile) ZIndex() int { return 0 }

// Collide implements Entity.
func (b *BackgroundTile) Collide(Entity) {}

// IncreaseSpeed keeps the parallax in step with level-ups.
func (b *BackgroundTile) IncreaseSpeed(delta float64) {
	b.speed += delta
}
