package cart

import (
	"sync"
	"time"

	"github.com/angelmondragon/storefront-backend/internal/notifications"
)

// DefaultSessionTTL is how long an untouched cart survives.
const DefaultSessionTTL = 24 * time.Hour

type session struct {
	machine  *Machine
	lastSeen time.Time
}

// MemoryStore holds one Machine per cart session. Carts live only as long as the process
// and expire after ttl without activity.
type MemoryStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	notifier notifications.Notifier
	sessions map[string]*session
	onEvict  func(sessionID string)
	now      func() time.Time
}

func NewMemoryStore(ttl time.Duration, notifier notifications.Notifier) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &MemoryStore{
		ttl:      ttl,
		notifier: notifier,
		sessions: make(map[string]*session),
		now:      time.Now,
	}
}

// OnEvict registers a callback run for every expired session after it is removed.
func (s *MemoryStore) OnEvict(fn func(sessionID string)) {
	s.mu.Lock()
	s.onEvict = fn
	s.mu.Unlock()
}

// Acquire returns the session's machine, creating an empty cart when none is live. An
// expired session found here is evicted first, exactly as Sweep would.
func (s *MemoryStore) Acquire(sessionID string) *Machine {
	s.mu.Lock()
	now := s.now()
	if sess, ok := s.sessions[sessionID]; ok && !s.expired(sess, now) {
		sess.lastSeen = now
		s.mu.Unlock()
		return sess.machine
	}
	evicted := s.dropExpiredLocked(sessionID, now)
	onEvict := s.onEvict
	s.mu.Unlock()

	if evicted && onEvict != nil {
		onEvict(sessionID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	now = s.now()
	if sess, ok := s.sessions[sessionID]; ok && !s.expired(sess, now) {
		sess.lastSeen = now
		return sess.machine
	}
	sess := &session{machine: NewMachine(sessionID, s.notifier), lastSeen: now}
	s.sessions[sessionID] = sess
	return sess.machine
}

// Peek returns the live machine for the session without creating one. An expired session is
// evicted.
func (s *MemoryStore) Peek(sessionID string) (*Machine, bool) {
	s.mu.Lock()
	now := s.now()
	if sess, ok := s.sessions[sessionID]; ok && !s.expired(sess, now) {
		sess.lastSeen = now
		s.mu.Unlock()
		return sess.machine, true
	}
	evicted := s.dropExpiredLocked(sessionID, now)
	onEvict := s.onEvict
	s.mu.Unlock()

	if evicted && onEvict != nil {
		onEvict(sessionID)
	}
	return nil, false
}

func (s *MemoryStore) dropExpiredLocked(sessionID string, now time.Time) bool {
	sess, ok := s.sessions[sessionID]
	if !ok || !s.expired(sess, now) {
		return false
	}
	delete(s.sessions, sessionID)
	return true
}

// Len reports how many sessions are held, expired or not.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep removes expired sessions and returns how many were dropped.
func (s *MemoryStore) Sweep() int {
	s.mu.Lock()
	now := s.now()
	var evicted []string
	for id, sess := range s.sessions {
		if s.expired(sess, now) {
			delete(s.sessions, id)
			evicted = append(evicted, id)
		}
	}
	onEvict := s.onEvict
	s.mu.Unlock()

	if onEvict != nil {
		for _, id := range evicted {
			onEvict(id)
		}
	}
	return len(evicted)
}

func (s *MemoryStore) expired(sess *session, now time.Time) bool {
	return now.Sub(sess.lastSeen) > s.ttl
}
