// Package session keeps one form workspace per browser session in memory.
package session

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"directa/cotizador/internal/domain/form"
)

type entry struct {
	ws       *form.Workspace
	lastSeen time.Time
}

type Store struct {
	mu    sync.Mutex
	items map[string]*entry
	ttl   time.Duration
	limit int

	newWorkspace func() *form.Workspace
	now          func() time.Time
}

// NewStore keeps at most limit sessions; zero means no cap. When the store is
// full the least recently used session makes room for a new one.
func NewStore(ttl time.Duration, limit int, rates form.RateSource) *Store {
	s := &Store{
		items: make(map[string]*entry),
		ttl:   ttl,
		limit: limit,
		now:   time.Now,
	}
	s.newWorkspace = func() *form.Workspace { return form.New(rates, s.now()) }
	return s
}

// Get returns the workspace for id and marks it as used.
func (s *Store) Get(id string) (*form.Workspace, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.items[id]
	if !ok {
		return nil, false
	}
	now := s.now()
	if s.ttl > 0 && now.Sub(e.lastSeen) > s.ttl {
		delete(s.items, id)
		return nil, false
	}
	e.lastSeen = now
	return e.ws, true
}

func (s *Store) Create() (string, *form.Workspace) {
	id := uuid.NewString()
	ws := s.newWorkspace()
	s.mu.Lock()
	evicted := ""
	if s.limit > 0 && len(s.items) >= s.limit {
		evicted = s.evictOldest()
	}
	s.items[id] = &entry{ws: ws, lastSeen: s.now()}
	n := len(s.items)
	s.mu.Unlock()
	if evicted != "" {
		log.Printf("session: evicted id=%s cap=%d", evicted, s.limit)
	}
	log.Printf("session: created id=%s active=%d", id, n)
	return id, ws
}

// evictOldest drops the least recently used session. Callers hold mu.
func (s *Store) evictOldest() string {
	var oldest string
	var seen time.Time
	for id, e := range s.items {
		if oldest == "" || e.lastSeen.Before(seen) {
			oldest, seen = id, e.lastSeen
		}
	}
	delete(s.items, oldest)
	return oldest
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Sweep drops sessions idle for longer than the TTL.
func (s *Store) Sweep() int {
	if s.ttl <= 0 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	n := 0
	for id, e := range s.items {
		if now.Sub(e.lastSeen) > s.ttl {
			delete(s.items, id)
			n++
		}
	}
	return n
}

// Run sweeps periodically until ctx is done.
func (s *Store) Run(ctx context.Context, every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := s.Sweep(); n > 0 {
				log.Printf("session: expired=%d active=%d", n, s.Len())
			}
		}
	}
}
