package game

import (
	"sort"

	"github.com/tuigames/flappy/internal/core"
)

// Scene owns the live entity collection and the viewport dimensions.
// Entities are drawn in ascending z-index order regardless of insertion
// order. Tube pairs are members of the scene for drawing and collision,
// but their movement and lifecycle belong to the TubeDriver.
type Scene struct {
	width    int
	height   int
	entities []Entity
}

// NewScene creates an empty scene with the given viewport size.
func NewScene(width, height int) *Scene {
	return &Scene{
		width:  width,
		height: height,
	}
}

// Width returns the viewport width in cells.
func (s *Scene) Width() int {
	return s.width
}

// Height returns the viewport height in cells.
func (s *Scene) Height() int {
	return s.height
}

// Resize updates the viewport dimensions. The caller is responsible for
// regenerating background tiling afterwards.
func (s *Scene) Resize(width, height int) {
	s.width = width
	s.height = height
}

// Add inserts an entity into the live set.
func (s *Scene) Add(e Entity) {
	s.entities = append(s.entities, e)
}

// Remove deletes an entity from the live set. Removed entities receive no
// further Update or Draw calls.
func (s *Scene) Remove(e Entity) {
	for i, have := range s.entities {
		if have == e {
			s.entities = append(s.entities[:i], s.entities[i+1:]...)
			return
		}
	}
}

// RemoveKind deletes every entity of the given kind.
func (s *Scene) RemoveKind(k Kind) {
	kept := s.entities[:0]
	for _, e := range s.entities {
		if e.Kind() != k {
			kept = append(kept, e)
		}
	}
	s.entities = kept
}

// Entities returns the live entity slice. Callers must not mutate it.
func (s *Scene) Entities() []Entity {
	return s.entities
}

// Update advances every scene-managed entity by delta seconds. Tube pairs
// are skipped: the driver has already advanced them this tick.
func (s *Scene) Update(delta float64) {
	// Snapshot so entities removing themselves mid-update stay safe
	snapshot := make([]Entity, len(s.entities))
	copy(snapshot, s.entities)

	for _, e := range snapshot {
		if e.Kind() == KindTube {
			continue
		}
		e.Update(delta)
	}
}

// Draw clears the surface and renders all entities by ascending z-index.
func (s *Scene) Draw(dst *core.Screen) {
	dst.Clear()

	ordered := make([]Entity, len(s.entities))
	copy(ordered, s.entities)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ZIndex() < ordered[j].ZIndex()
	})

	for _, e := range ordered {
		e.Draw(dst)
	}
}

// IncreaseSpeed adds delta to the scroll speed of every moving scene
// entity that supports it. Tube speed is handled by the driver, which
// also covers future spawns.
func (s *Scene) IncreaseSpeed(delta float64) {
	for _, e := range s.entities {
		if e.Kind() == KindTube {
			continue
		}
		if acc, ok := e.(accelerator); ok {
			acc.IncreaseSpeed(delta)
		}
	}
}
