package game

// State is the phase of a game session.
type State int

const (
	StateLoading State = iota // Assets and high score not yet resolved
	StateIdle                 // Ready, waiting for the primary action
	StatePlaying              // Simulation loop running
	StateGameOver             // Frozen after a collision

	stateCount // Sentinel for exhaustiveness checks
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "Loading"
	case StateIdle:
		return "Idle"
	case StatePlaying:
		return "Playing"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Snapshot is a read-only view of the session for the platform layer.
type Snapshot struct {
	State     State
	Score     int
	Level     int
	HighScore int
}

// ScoreStore persists the high score and finished session results.
// The sqlite store satisfies it; tests substitute a fake.
type ScoreStore interface {
	// HighScore reads the persisted best score. Zero when none exists.
	HighScore() (int, error)

	// SaveHighScore persists a new best. Called synchronously the moment
	// the running score surpasses the old best.
	SaveHighScore(score int) error

	// RecordSession stores a finished session's score for the scoreboard.
	RecordSession(score int) error
}
