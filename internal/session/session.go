package session

import "sync"

// Step is the current position of a user's entry dialogue.
type Step int

const (
	StepNone Step = iota
	StepExercise
	StepHours
	StepMinutes
	StepDate
)

// Session accumulates the answers of one entry dialogue. The zero
// value is an idle session.
type Session struct {
	Step     Step
	Exercise int
	Hours    int
	Minutes  int
}

// Store keeps dialogue sessions in memory, keyed by user id. Sessions
// are never persisted; an abandoned dialogue simply stays parked at
// its last step until the user resumes or starts over.
type Store struct {
	mu       sync.RWMutex
	sessions map[int64]Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[int64]Session)}
}

// Get returns the user's session, or an idle one if none exists.
func (s *Store) Get(userID int64) Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[userID]
}

// Set replaces the user's session.
func (s *Store) Set(userID int64, sess Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[userID] = sess
}

// Clear resets the user's session to idle.
func (s *Store) Clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}
