package events

import (
	"sort"
	"sync"
	"time"
)

const defaultMaxEvents = 500

// Store keeps a bounded, TTL-expired history of navigation events,
// newest first. Safe for concurrent use.
type Store struct {
	mu   sync.RWMutex
	ttl  time.Duration
	max  int
	data []Event
}

func NewStore(ttl time.Duration) *Store {
	return &Store{ttl: ttl, max: defaultMaxEvents}
}

// Append adds an event, trimming the history to the size bound.
func (s *Store) Append(e Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append(s.data, e)
	if len(s.data) > s.max {
		s.data = s.data[len(s.data)-s.max:]
	}
}

// Snapshot returns unexpired events, newest first.
func (s *Store) Snapshot(now time.Time) []Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ttl > 0 {
		kept := s.data[:0]
		for _, e := range s.data {
			if now.Sub(e.TS) <= s.ttl {
				kept = append(kept, e)
			}
		}
		s.data = kept
	}

	result := make([]Event, len(s.data))
	copy(result, s.data)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TS.After(result[j].TS)
	})
	return result
}

// Len returns the number of stored events, including expired ones not yet
// trimmed by Snapshot.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
