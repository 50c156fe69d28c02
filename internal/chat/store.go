package chat

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultSessionTTL is how long an idle session survives.
	DefaultSessionTTL = 24 * time.Hour
	// DefaultSweepInterval is how often expired sessions are collected.
	DefaultSweepInterval = 24 * time.Hour
)

// Message is a single conversation turn. Immutable once appended.
type Message struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// Session holds the ordered message history for one conversation.
type Session struct {
	Messages    []Message
	LastUpdated time.Time
}

// SessionStore owns the process-wide session registry. Sessions are keyed
// by an opaque random id and evicted by a periodic sweep once idle longer
// than the TTL. There is no capacity bound; the sweep is the only
// garbage collection.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session

	ttl      time.Duration
	interval time.Duration
	done     chan struct{}
	stopOnce sync.Once
}

// NewSessionStore creates a store with the given idle TTL and sweep
// interval. Zero values fall back to the 24h defaults.
func NewSessionStore(ttl, interval time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	return &SessionStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// GetOrCreate returns the session for id, or mints a fresh id and empty
// session when id is empty or unknown. A reused id after eviction is
// unknown and silently produces a fresh session.
func (s *SessionStore) GetOrCreate(id string) (*Session, string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != "" {
		if sess, ok := s.sessions[id]; ok {
			return sess, id
		}
	}

	id = uuid.NewString()
	sess := &Session{LastUpdated: time.Now()}
	s.sessions[id] = sess
	return sess, id
}

// Append pushes a message onto the session history. It deliberately does
// not bump LastUpdated; Touch is called once per completed turn.
func (s *SessionStore) Append(sess *Session, role, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess.Messages = append(sess.Messages, Message{Role: role, Content: content})
}

// Touch marks the session as active now.
func (s *SessionStore) Touch(sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess.LastUpdated = time.Now()
}

// History returns a copy of the session's messages.
func (s *SessionStore) History(sess *Session) []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(sess.Messages))
	copy(out, sess.Messages)
	return out
}

// Len reports the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep removes every session idle longer than the TTL relative to now
// and returns how many were evicted.
func (s *SessionStore) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for id, sess := range s.sessions {
		if now.Sub(sess.LastUpdated) > s.ttl {
			delete(s.sessions, id)
			n++
		}
	}
	return n
}

// Start launches the background sweeper. It runs until Stop is called.
func (s *SessionStore) Start() {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if n := s.Sweep(time.Now()); n > 0 {
					log.Printf("chat: swept %d expired sessions", n)
				}
			case <-s.done:
				return
			}
		}
	}()
}

// Stop terminates the background sweeper. Safe to call more than once.
func (s *SessionStore) Stop() {
	s.stopOnce.Do(func() { close(s.done) })
}
