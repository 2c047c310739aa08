package wizard

import (
	"sync"
	"time"
)

const defaultSessionTTL = 30 * time.Minute

// Store keeps active wizard sessions in memory. A session lives for the
// duration of one admin's form entry; nothing is persisted.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
}

func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

func (st *Store) Put(s *Session) {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.sessions[s.ID()] = s
}

func (st *Store) Get(id string) (*Session, bool) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()

	if !ok {
		return nil, false
	}

	s.mu.Lock()
	expired := time.Since(s.updatedAt) > st.ttl
	s.mu.Unlock()

	if expired {
		st.Delete(id)
		return nil, false
	}
	return s, true
}

func (st *Store) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()

	delete(st.sessions, id)
}

// Sweep drops sessions idle past the TTL and returns how many it
// removed. The api entrypoint runs this on a ticker.
func (st *Store) Sweep() int {
	st.mu.Lock()
	defer st.mu.Unlock()

	removed := 0
	for id, s := range st.sessions {
		s.mu.Lock()
		expired := time.Since(s.updatedAt) > st.ttl
		s.mu.Unlock()
		if expired {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}

func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()

	return len(st.sessions)
}
