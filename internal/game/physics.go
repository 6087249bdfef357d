package game

// FallingBody is implemented by entities subject to gravity: anything
// exposing a vertical fall velocity. Obstacles and background tiles do
// not, and move solely via their own scroll speed.
type FallingBody interface {
	FallVelocity() float64
	SetFallVelocity(v float64)
	Y() float64
	SetY(y float64)
}

// PhysicsEngine integrates constant gravitational acceleration into
// falling bodies. It applies no other forces.
type PhysicsEngine struct {
	// Gravity is the downward acceleration in cells per second squared.
	Gravity float64
}

// NewPhysicsEngine creates a physics engine for the session.
func NewPhysicsEngine(gravity float64) *PhysicsEngine {
	return &PhysicsEngine{Gravity: gravity}
}

// Step advances a falling body by delta seconds using semi-implicit
// Euler: the velocity is updated first, and the new velocity moves the
// body. This keeps the integration stable under variable frame times.
func (p *PhysicsEngine) Step(body FallingBody, delta float64) {
	v := body.FallVelocity() + p.Gravity*delta
	body.SetFallVelocity(v)
	body.SetY(body.Y() + v*delta)
}
