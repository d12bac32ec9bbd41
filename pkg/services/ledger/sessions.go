package ledger

import (
	"sync"

	"github.com/google/uuid"

	"github.com/shop-tools/sales-atlas/pkg/models/domain"
)

// Sessions caches normalized transaction tables per caller session, keyed
// inside each session by the source profile's cache key. Tables never cross
// session boundaries.
type Sessions struct {
	mu     sync.RWMutex
	tables map[string]map[string][]domain.Transaction
}

func NewSessions() *Sessions {
	return &Sessions{tables: make(map[string]map[string][]domain.Transaction)}
}

// NewID mints a fresh session identifier.
func (s *Sessions) NewID() string {
	return uuid.NewString()
}

// Put replaces the cached table for a source inside a session, creating the
// session on first use.
func (s *Sessions) Put(sessionID, sourceKey string, txs []domain.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.tables[sessionID]
	if !ok {
		session = make(map[string][]domain.Transaction)
		s.tables[sessionID] = session
	}
	session[sourceKey] = txs
}

// Get returns the cached table for a source inside a session.
func (s *Sessions) Get(sessionID, sourceKey string) ([]domain.Transaction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.tables[sessionID]
	if !ok {
		return nil, false
	}
	txs, ok := session[sourceKey]
	return txs, ok
}

// Drop removes the cached table for a source inside a session.
func (s *Sessions) Drop(sessionID, sourceKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.tables[sessionID]
	if !ok {
		return
	}
	delete(session, sourceKey)
	if len(session) == 0 {
		delete(s.tables, sessionID)
	}
}
