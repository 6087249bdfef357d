package storage

// GameStore binds a Store to a single game ID so the simulation can load
// and persist scores without knowing about the schema.
type GameStore struct {
	store  *Store
	gameID string
}

// ForGame returns a view of the store scoped to one game.
func (s *Store) ForGame(gameID string) *GameStore {
	return &GameStore{store: s, gameID: gameID}
}

// HighScore loads the persisted best score, zero when absent.
func (g *GameStore) HighScore() (int, error) {
	return g.store.HighScore(g.gameID)
}

// SaveHighScore persists a new best score.
func (g *GameStore) SaveHighScore(score int) error {
	return g.store.SetHighScore(g.gameID, score)
}

// RecordSession appends a finished session's score to the history.
func (g *GameStore) RecordSession(score int) error {
	_, err := g.store.SaveScore(g.gameID, score)
	return err
}
