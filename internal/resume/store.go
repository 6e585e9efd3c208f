package resume

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultTTL bounds how long an anonymous upload stays analyzable.
const DefaultTTL = 30 * time.Minute

// Staged holds extracted resume data for an anonymous user between the
// upload call and a subsequent analysis call.
type Staged struct {
	FileName string
	Text     string
	Skills   []string
}

type entry struct {
	staged    Staged
	expiresAt time.Time
}

// Store is an in-memory, best-effort staging store with per-entry TTL and a
// periodic sweep. The clock is injected so expiry is testable. Safe for
// concurrent use.
type Store struct {
	mu      sync.Mutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
	done    chan struct{}
	once    sync.Once
}

// NewStore creates a store with the given TTL. A nil clock uses time.Now.
// The sweep goroutine starts immediately; call Stop on shutdown.
func NewStore(ttl time.Duration, clock func() time.Time) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if clock == nil {
		clock = time.Now
	}
	s := &Store{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     clock,
		done:    make(chan struct{}),
	}
	go s.sweep(ttl / 2)
	return s
}

// Put stages a resume and returns its opaque identifier.
func (s *Store) Put(staged Staged) string {
	id := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[id] = entry{staged: staged, expiresAt: s.now().Add(s.ttl)}
	return id
}

// Get returns the staged resume for id. Expired entries are removed and
// reported as missing.
func (s *Store) Get(id string) (Staged, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return Staged{}, false
	}
	if !s.now().Before(e.expiresAt) {
		delete(s.entries, id)
		return Staged{}, false
	}
	return e.staged, true
}

// Len reports the number of live entries, expired ones included until swept.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Stop halts the sweep goroutine. Idempotent.
func (s *Store) Stop() {
	s.once.Do(func() { close(s.done) })
}

func (s *Store) sweep(interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.removeExpired()
		}
	}
}

func (s *Store) removeExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now()
	for id, e := range s.entries {
		if !cutoff.Before(e.expiresAt) {
			delete(s.entries, id)
		}
	}
}
