package manager

// ScoreListener is notified with the new score whenever it changes
type ScoreListener func(score int)

// StateManager keeps the score of the running game and the best score of
// the session. Nothing is persisted.
type StateManager struct {
	score     int
	highScore int
	gamesOver int
	listeners []ScoreListener
}

func NewStateManager() *StateManager {
	return &StateManager{}
}

// OnScoreChanged registers l for score-changed notifications
func (sm *StateManager) OnScoreChanged(l ScoreListener) {
	sm.listeners = append(sm.listeners, l)
}

// AddPoint increments the score for one eaten food
func (sm *StateManager) AddPoint() {
	sm.score++
	if sm.score > sm.highScore {
		sm.highScore = sm.score
	}
	sm.notify()
}

// Reset zeroes the score for a new game
func (sm *StateManager) Reset() {
	sm.score = 0
	sm.notify()
}

// RecordGameOver counts a finished game
func (sm *StateManager) RecordGameOver() {
	sm.gamesOver++
}

func (sm *StateManager) GetScore() int {
	return sm.score
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

func (sm *StateManager) GetGamesPlayed() int {
	return sm.gamesOver
}

func (sm *StateManager) notify() {
	for _, l := range sm.listeners {
		l(sm.score)
	}
}
