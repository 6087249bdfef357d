package game

// CollisionEngine detects overlaps among collidable entities once per
// tick. Entity counts are tiny (one actor plus a handful of tube pairs),
// so a quadratic scan is plenty.
type CollisionEngine struct{}

// NewCollisionEngine creates a collision engine.
func NewCollisionEngine() *CollisionEngine {
	return &CollisionEngine{}
}

// Detect tests every pair of collidable entities and invokes Collide on
// both parties of each overlap. The broad phase compares bounding boxes;
// the narrow phase requires a solid hit box of one to touch a solid hit
// box of the other, so an actor inside a tube pair's gap passes clean.
func (ce *CollisionEngine) Detect(entities []Entity) {
	for i := 0; i < len(entities); i++ {
		a := entities[i]
		if !a.Collidable() {
			continue
		}
		for j := i + 1; j < len(entities); j++ {
			b := entities[j]
			if !b.Collidable() {
				continue
			}
			if !a.Bounds().Intersects(b.Bounds()) {
				continue
			}
			if hitBoxesTouch(a, b) {
				a.Collide(b)
				b.Collide(a)
			}
		}
	}
}

// hitBoxesTouch reports whether any solid rectangle of a overlaps any
// solid rectangle of b. Edges are inclusive.
func hitBoxesTouch(a, b Entity) bool {
	for _, ra := range a.HitBoxes() {
		for _, rb := range b.HitBoxes() {
			if ra.Intersects(rb) {
				return true
			}
		}
	}
	return false
}
