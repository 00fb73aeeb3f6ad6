package domain_models

import (
	"math/rand"
	"sync"

	"github.com/google/uuid"
)

// TurnState tracks where one conversation turn is in its lifecycle.
type TurnState string

const (
	TurnIdle            TurnState = "idle"
	TurnPendingSubmit   TurnState = "pending_submit"
	TurnAwaitingBackend TurnState = "awaiting_backend"
)

// Session is the isolation unit: one profile, one message log, one
// identifier. Gin handlers can race on the same session id, so every
// access goes through the session's own mutex; sessions never share state
// with each other.
type Session struct {
	mu sync.Mutex

	ID            string
	Profile       *Profile
	Log           *MessageLog
	State         TurnState
	LastUserQuery string
	pendingQuery  string
	hasPending    bool
	QuickSeed     int
}

func NewSession() *Session {
	return &Session{
		ID:        uuid.New().String(),
		Profile:   DefaultProfile(),
		Log:       NewMessageLog(),
		State:     TurnIdle,
		QuickSeed: rand.Int(),
	}
}

// Do runs fn while holding the session lock. All service-layer access to
// profile, log and turn state happens inside Do.
func (s *Session) Do(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
}

// QueuePending records a question for the next controller pass and moves
// the turn to PendingSubmit. Caller must hold the lock (run inside Do).
func (s *Session) QueuePending(q string) {
	s.pendingQuery = q
	s.hasPending = true
	s.State = TurnPendingSubmit
}

// ConsumePending hands out the queued question exactly once.
func (s *Session) ConsumePending() (string, bool) {
	if !s.hasPending {
		return "", false
	}
	q := s.pendingQuery
	s.pendingQuery = ""
	s.hasPending = false
	return q, true
}

// ShortID is the first 8 characters of the identifier, used for display
// and for the export filename.
func (s *Session) ShortID() string {
	if len(s.ID) < 8 {
		return s.ID
	}
	return s.ID[:8]
}

func (s *Session) Shuffle() {
	s.QuickSeed = rand.Int()
}
