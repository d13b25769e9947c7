// Package session holds caller-local state with no persistence lifecycle:
// the human-readable activity history and the cached record list backing
// dependent views. None of this ever reaches the ledger.
package session

import (
	"sync"

	"github.com/MKhiriev/insider-vault/models"
)

// historyLimit bounds the activity log; the oldest entries fall off.
const historyLimit = 50

// Session is the per-caller context object. Safe for concurrent use.
type Session struct {
	mu      sync.RWMutex
	history []string
	cached  []models.Record
}

// New returns an empty session.
func New() *Session {
	return &Session{}
}

// Record appends a human-readable activity entry, newest first.
// It implements the access package's ActivityRecorder.
func (s *Session) Record(entry string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = append([]string{entry}, s.history...)
	if len(s.history) > historyLimit {
		s.history = s.history[:historyLimit]
	}
}

// History returns a copy of the activity entries, newest first.
func (s *Session) History() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.history))
	copy(out, s.history)
	return out
}

// CacheRecords replaces the cached record list.
func (s *Session) CacheRecords(records []models.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cached = make([]models.Record, len(records))
	copy(s.cached, records)
}

// CachedRecords returns a copy of the last cached record list.
func (s *Session) CachedRecords() []models.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Record, len(s.cached))
	copy(out, s.cached)
	return out
}
