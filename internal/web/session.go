package web

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/presspilot/presspilot/internal/leads"
)

// session pairs a lead controller with its creation time for TTL eviction
type session struct {
	controller *leads.Controller
	createdAt  time.Time
}

// SessionStore holds the live lead sessions. Each session owns one
// controller; all of a visitor's list and outreach state lives there and
// disappears when the session expires.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*session
	ttl      time.Duration
	done     chan struct{}
	stopOnce sync.Once
}

// NewSessionStore creates a session store and starts its eviction sweep
func NewSessionStore(ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = time.Hour
	}

	s := &SessionStore{
		sessions: make(map[string]*session),
		ttl:      ttl,
		done:     make(chan struct{}),
	}

	go s.sweep()
	return s
}

// Create registers a controller and returns its session ID
func (s *SessionStore) Create(controller *leads.Controller) string {
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = &session{
		controller: controller,
		createdAt:  time.Now(),
	}

	return id
}

// Get returns the controller for a session ID, if the session is alive
func (s *SessionStore) Get(id string) (*leads.Controller, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	return sess.controller, true
}

// Len reports the number of live sessions
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Close stops the eviction sweep
func (s *SessionStore) Close() {
	s.stopOnce.Do(func() { close(s.done) })
}

func (s *SessionStore) sweep() {
	interval := s.ttl / 4
	if interval < time.Minute {
		interval = time.Minute
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case now := <-ticker.C:
			s.mu.Lock()
			for id, sess := range s.sessions {
				if now.Sub(sess.createdAt) > s.ttl {
					delete(s.sessions, id)
				}
			}
			s.mu.Unlock()
		}
	}
}
